// file: internals/features/evaluation/results/dto/evaluation_result_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	rmodel "penilaianguru_backend/internals/features/evaluation/results/model"
)

type ResultResponse struct {
	EvaluationResultID        uuid.UUID `json:"evaluation_result_id"`
	EvaluationResultTeacherID uuid.UUID `json:"evaluation_result_teacher_id"`
	EvaluationResultPeriodID  uuid.UUID `json:"evaluation_result_period_id"`

	EvaluationResultStudentAvg    *float64 `json:"evaluation_result_student_avg,omitempty"`
	EvaluationResultPeerAvg       *float64 `json:"evaluation_result_peer_avg,omitempty"`
	EvaluationResultSupervisorAvg *float64 `json:"evaluation_result_supervisor_avg,omitempty"`

	EvaluationResultFinalScore    float64 `json:"evaluation_result_final_score"`
	EvaluationResultFinalScore100 float64 `json:"evaluation_result_final_score_100"`
	EvaluationResultCategory      string  `json:"evaluation_result_category"`

	EvaluationResultBreakdown datatypes.JSON `json:"evaluation_result_breakdown,omitempty"`

	EvaluationResultStudentCount    int `json:"evaluation_result_student_count"`
	EvaluationResultPeerCount       int `json:"evaluation_result_peer_count"`
	EvaluationResultSupervisorCount int `json:"evaluation_result_supervisor_count"`

	EvaluationResultComputedAt time.Time `json:"evaluation_result_computed_at"`
}

func FromModelResult(m *rmodel.EvaluationResultModel) ResultResponse {
	return ResultResponse{
		EvaluationResultID:              m.EvaluationResultID,
		EvaluationResultTeacherID:       m.EvaluationResultTeacherID,
		EvaluationResultPeriodID:        m.EvaluationResultPeriodID,
		EvaluationResultStudentAvg:      m.EvaluationResultStudentAvg,
		EvaluationResultPeerAvg:         m.EvaluationResultPeerAvg,
		EvaluationResultSupervisorAvg:   m.EvaluationResultSupervisorAvg,
		EvaluationResultFinalScore:      m.EvaluationResultFinalScore,
		EvaluationResultFinalScore100:   m.EvaluationResultFinalScore100,
		EvaluationResultCategory:        m.EvaluationResultCategory,
		EvaluationResultBreakdown:       m.EvaluationResultBreakdown,
		EvaluationResultStudentCount:    m.EvaluationResultStudentCount,
		EvaluationResultPeerCount:       m.EvaluationResultPeerCount,
		EvaluationResultSupervisorCount: m.EvaluationResultSupervisorCount,
		EvaluationResultComputedAt:      m.EvaluationResultComputedAt,
	}
}

func FromModelsResults(rows []rmodel.EvaluationResultModel) []ResultResponse {
	out := make([]ResultResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelResult(&rows[i]))
	}
	return out
}
