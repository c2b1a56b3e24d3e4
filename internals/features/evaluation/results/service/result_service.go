// file: internals/features/evaluation/results/service/result_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cservice "penilaianguru_backend/internals/features/evaluation/criteria/service"
	emodel "penilaianguru_backend/internals/features/evaluation/evaluations/model"
	rmodel "penilaianguru_backend/internals/features/evaluation/results/model"
)

var ErrResultNotFound = errors.New("hasil penilaian tidak ditemukan")

type ResultService struct {
	DB *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{DB: db}
}

/* =========================================================
   Recompute & upsert snapshot
========================================================= */

// RecomputeForTeacherPeriod menghitung ulang agregat (guru, periode) lalu
// meng-upsert snapshot-nya. Baca-hitung-tulis satu transaksi dengan
// SELECT ... FOR UPDATE di baris snapshot supaya finalisasi paralel untuk
// pasangan yang sama tidak saling menimpa dengan agregat basi.
func (s *ResultService) RecomputeForTeacherPeriod(ctx context.Context, teacherID, periodID uuid.UUID) (*rmodel.EvaluationResultModel, error) {
	catalog, err := cservice.NewCatalogService(s.DB).ListActiveCriteria(ctx)
	if err != nil {
		return nil, err
	}

	var snap rmodel.EvaluationResultModel
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(`evaluation_result_teacher_id = ? AND evaluation_result_period_id = ?`,
				teacherID, periodID).
			First(&snap)
		fresh := false
		if locked.Error != nil {
			if !errors.Is(locked.Error, gorm.ErrRecordNotFound) {
				return locked.Error
			}
			fresh = true
		}

		var evaluations []emodel.EvaluationModel
		if err := tx.Preload("Details").
			Where(`evaluation_teacher_id = ?
				AND evaluation_period_id = ?
				AND evaluation_status = ?`, teacherID, periodID, emodel.EvaluationFinal).
			Find(&evaluations).Error; err != nil {
			return err
		}

		agg := ComputeTeacherPeriodAggregate(catalog, evaluations)
		breakdown, err := sonic.Marshal(agg.PerCriterion)
		if err != nil {
			return err
		}

		snap.EvaluationResultTeacherID = teacherID
		snap.EvaluationResultPeriodID = periodID
		snap.EvaluationResultStudentAvg = agg.StudentAvg
		snap.EvaluationResultPeerAvg = agg.PeerAvg
		snap.EvaluationResultSupervisorAvg = agg.SupervisorAvg
		snap.EvaluationResultFinalScore = agg.FinalScore
		snap.EvaluationResultFinalScore100 = agg.FinalScore100
		snap.EvaluationResultCategory = agg.Category
		snap.EvaluationResultBreakdown = breakdown
		snap.EvaluationResultStudentCount = agg.StudentCount
		snap.EvaluationResultPeerCount = agg.PeerCount
		snap.EvaluationResultSupervisorCount = agg.SupervisorCount
		snap.EvaluationResultComputedAt = time.Now()

		if fresh {
			// Balapan insert pertama ditangkap unique index; kalau kalah,
			// ulangi sebagai update di bawah kunci.
			if err := tx.Create(&snap).Error; err != nil {
				return err
			}
			return nil
		}
		return tx.Save(&snap).Error
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// RecomputeForPeriod: hitung ulang semua guru yang punya penilaian final di
// periode itu. Sinkron, loop per guru; volume wajar (puluhan guru).
func (s *ResultService) RecomputeForPeriod(ctx context.Context, periodID uuid.UUID) (int, error) {
	var teacherIDs []uuid.UUID
	if err := s.DB.WithContext(ctx).
		Model(&emodel.EvaluationModel{}).
		Where("evaluation_period_id = ? AND evaluation_status = ?", periodID, emodel.EvaluationFinal).
		Distinct("evaluation_teacher_id").
		Pluck("evaluation_teacher_id", &teacherIDs).Error; err != nil {
		return 0, err
	}

	done := 0
	for _, tid := range teacherIDs {
		if _, err := s.RecomputeForTeacherPeriod(ctx, tid, periodID); err != nil {
			log.Printf("[ResultService] recompute gagal (teacher=%s period=%s): %v", tid, periodID, err)
			continue
		}
		done++
	}
	return done, nil
}

/* =========================================================
   Read surface
========================================================= */

func (s *ResultService) Get(ctx context.Context, teacherID, periodID uuid.UUID) (*rmodel.EvaluationResultModel, error) {
	var m rmodel.EvaluationResultModel
	err := s.DB.WithContext(ctx).
		Where(`evaluation_result_teacher_id = ? AND evaluation_result_period_id = ?`,
			teacherID, periodID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ListForTeacher: riwayat snapshot seorang guru, urut tanggal selesai
// periode terbaru dulu (urutan yang dipakai layer tren).
func (s *ResultService) ListForTeacher(ctx context.Context, teacherID uuid.UUID) ([]rmodel.EvaluationResultModel, error) {
	var rows []rmodel.EvaluationResultModel
	err := s.DB.WithContext(ctx).
		Joins(`JOIN evaluation_periods p ON p.evaluation_period_id = evaluation_results.evaluation_result_period_id`).
		Where("evaluation_result_teacher_id = ?", teacherID).
		Order("p.evaluation_period_end_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
