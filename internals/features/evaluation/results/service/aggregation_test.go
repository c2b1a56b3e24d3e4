package service

import (
	"math"
	"testing"

	"github.com/google/uuid"

	cmodel "penilaianguru_backend/internals/features/evaluation/criteria/model"
	emodel "penilaianguru_backend/internals/features/evaluation/evaluations/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func directCriterion(name string, weight float64) cmodel.CriterionModel {
	return cmodel.CriterionModel{
		CriterionID:       uuid.New(),
		CriterionName:     name,
		CriterionWeight:   weight,
		CriterionIsActive: true,
	}
}

func decomposedCriterion(name string, weight float64, subWeights ...float64) cmodel.CriterionModel {
	c := directCriterion(name, weight)
	for i, w := range subWeights {
		c.Subcriterias = append(c.Subcriterias, cmodel.SubcriterionModel{
			SubcriterionID:          uuid.New(),
			SubcriterionCriterionID: c.CriterionID,
			SubcriterionName:        name,
			SubcriterionWeight:      w,
			SubcriterionOrderNum:    i + 1,
			SubcriterionIsActive:    true,
		})
	}
	return c
}

func finalEvaluation(kind emodel.EvaluationKind, details ...emodel.EvaluationDetailModel) emodel.EvaluationModel {
	return emodel.EvaluationModel{
		EvaluationID:     uuid.New(),
		EvaluationKind:   kind,
		EvaluationStatus: emodel.EvaluationFinal,
		Details:          details,
	}
}

func detailFor(criterionID uuid.UUID, subID *uuid.UUID, rating float64) emodel.EvaluationDetailModel {
	return emodel.EvaluationDetailModel{
		EvaluationDetailCriterionID:    criterionID,
		EvaluationDetailSubcriterionID: subID,
		EvaluationDetailRating:         rating,
	}
}

func TestCategoryFromScale5(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{5, CategorySangatBaik},
		{4.5, CategorySangatBaik},
		{4.49, CategoryBaik},
		{3.5, CategoryBaik},
		{3.49, CategoryCukup},
		{2.5, CategoryCukup},
		{2.49, CategoryKurang},
		{1.5, CategoryKurang},
		{1.49, CategorySangatKurang},
		{0, CategorySangatKurang},
	}
	for _, tt := range tests {
		if got := CategoryFromScale5(tt.score); got != tt.want {
			t.Errorf("CategoryFromScale5(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCategoryFromScale100(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, CategorySangatBaik},
		{90, CategorySangatBaik},
		{89.99, CategoryBaik},
		{80, CategoryBaik},
		{77.5, CategoryCukup},
		{70, CategoryCukup},
		{60, CategoryKurang},
		{59.99, CategorySangatKurang},
		{0, CategorySangatKurang},
	}
	for _, tt := range tests {
		if got := CategoryFromScale100(tt.score); got != tt.want {
			t.Errorf("CategoryFromScale100(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestComputeEvaluationWeightedAverage(t *testing.T) {
	c1 := directCriterion("Kompetensi Pedagogik", 25)
	c2 := directCriterion("Kompetensi Kepribadian", 25)
	c3 := directCriterion("Kompetensi Profesional", 50)
	catalog := []cmodel.CriterionModel{c1, c2, c3}

	// input supervisor 80/90/70 sudah dinormalisasi ke 4.0/4.5/3.5
	details := []emodel.EvaluationDetailModel{
		detailFor(c1.CriterionID, nil, 4.0),
		detailFor(c2.CriterionID, nil, 4.5),
		detailFor(c3.CriterionID, nil, 3.5),
	}

	got := ComputeEvaluationWeightedAverage(details, catalog)
	if !almostEqual(got.Score100, 77.5) {
		t.Fatalf("Score100 = %v, want 77.5", got.Score100)
	}
	if !almostEqual(got.Score, 3.88) {
		t.Errorf("Score = %v, want 3.88", got.Score)
	}
	if got.Category != CategoryCukup {
		t.Errorf("Category = %q, want %q", got.Category, CategoryCukup)
	}
}

func TestComputeEvaluationWeightedAverageEmpty(t *testing.T) {
	got := ComputeEvaluationWeightedAverage(nil, nil)
	if got.Score != 0 || got.Score100 != 0 {
		t.Errorf("skor kosong harus 0, dapat %+v", got)
	}
	if got.Category != CategorySangatKurang {
		t.Errorf("Category = %q, want %q", got.Category, CategorySangatKurang)
	}
}

func TestComputeEvaluationWeightedAverageSkipsUnknownCriterion(t *testing.T) {
	c1 := directCriterion("Dikenal", 100)
	details := []emodel.EvaluationDetailModel{
		detailFor(c1.CriterionID, nil, 4),
		detailFor(uuid.New(), nil, 1), // bukan bagian katalog
	}
	got := ComputeEvaluationWeightedAverage(details, []cmodel.CriterionModel{c1})
	if !almostEqual(got.Score, 4) {
		t.Errorf("Score = %v, want 4 (baris tak dikenal dilewati)", got.Score)
	}
}

func TestComputeTeacherPeriodAggregateEmpty(t *testing.T) {
	catalog := []cmodel.CriterionModel{directCriterion("Pedagogik", 100)}

	got := ComputeTeacherPeriodAggregate(catalog, nil)
	if got.FinalScore != 0 || got.FinalScore100 != 0 {
		t.Errorf("input kosong harus degradasi ke 0, dapat final=%v final100=%v", got.FinalScore, got.FinalScore100)
	}
	if got.Category != CategorySangatKurang {
		t.Errorf("Category = %q, want %q", got.Category, CategorySangatKurang)
	}
	if got.StudentAvg != nil || got.PeerAvg != nil || got.SupervisorAvg != nil {
		t.Errorf("rata-rata bucket tanpa data harus nil")
	}
}

func TestComputeTeacherPeriodAggregateCrossKind(t *testing.T) {
	crit := decomposedCriterion("Pedagogik", 100, 100)
	sub := crit.Subcriterias[0].SubcriterionID
	catalog := []cmodel.CriterionModel{crit}

	evaluations := []emodel.EvaluationModel{
		finalEvaluation(emodel.KindStudent, detailFor(crit.CriterionID, &sub, 4)),
		finalEvaluation(emodel.KindStudent, detailFor(crit.CriterionID, &sub, 5)),
		finalEvaluation(emodel.KindPeer, detailFor(crit.CriterionID, &sub, 3)),
	}

	got := ComputeTeacherPeriodAggregate(catalog, evaluations)

	// student mean 4.5, peer mean 3, supervisor absen → (4.5+3)/2 = 3.75
	if !almostEqual(got.FinalScore, 3.75) {
		t.Fatalf("FinalScore = %v, want 3.75", got.FinalScore)
	}
	if !almostEqual(got.FinalScore100, 75) {
		t.Errorf("FinalScore100 = %v, want 75", got.FinalScore100)
	}
	if got.StudentCount != 2 || got.PeerCount != 1 || got.SupervisorCount != 0 {
		t.Errorf("counts = %d/%d/%d, want 2/1/0", got.StudentCount, got.PeerCount, got.SupervisorCount)
	}
	if got.StudentAvg == nil || !almostEqual(*got.StudentAvg, 4.5) {
		t.Errorf("StudentAvg = %v, want 4.5", got.StudentAvg)
	}
	if got.SupervisorAvg != nil {
		t.Errorf("SupervisorAvg harus nil saat tidak ada penilaian supervisor")
	}
}

func TestComputeTeacherPeriodAggregateIgnoresDraft(t *testing.T) {
	crit := directCriterion("Pedagogik", 100)
	catalog := []cmodel.CriterionModel{crit}

	draft := finalEvaluation(emodel.KindStudent, detailFor(crit.CriterionID, nil, 1))
	draft.EvaluationStatus = emodel.EvaluationDraft

	evaluations := []emodel.EvaluationModel{
		draft,
		finalEvaluation(emodel.KindStudent, detailFor(crit.CriterionID, nil, 5)),
	}

	got := ComputeTeacherPeriodAggregate(catalog, evaluations)
	if !almostEqual(got.FinalScore, 5) {
		t.Errorf("FinalScore = %v, want 5 (draft tidak ikut)", got.FinalScore)
	}
	if got.StudentCount != 1 {
		t.Errorf("StudentCount = %d, want 1", got.StudentCount)
	}
}

func TestComputeTeacherPeriodAggregateIgnoresUnratedSubcriteria(t *testing.T) {
	crit := decomposedCriterion("Pedagogik", 100, 50, 50)
	rated := crit.Subcriterias[0].SubcriterionID
	catalog := []cmodel.CriterionModel{crit}

	evaluations := []emodel.EvaluationModel{
		finalEvaluation(emodel.KindStudent, detailFor(crit.CriterionID, &rated, 4)),
	}

	got := ComputeTeacherPeriodAggregate(catalog, evaluations)
	// sub kedua tak dinilai siapa pun → tidak masuk pembagi, bukan 0
	if !almostEqual(got.FinalScore, 4) {
		t.Errorf("FinalScore = %v, want 4", got.FinalScore)
	}
}

func TestComputeTeacherPeriodAggregateBreakdownOrdering(t *testing.T) {
	low := directCriterion("A Rendah", 30)
	high := directCriterion("B Tinggi", 30)
	tieA := directCriterion("C Seri", 20)
	tieB := directCriterion("D Seri", 20)
	catalog := []cmodel.CriterionModel{low, high, tieA, tieB}

	evaluations := []emodel.EvaluationModel{
		finalEvaluation(emodel.KindStudent,
			detailFor(low.CriterionID, nil, 2),
			detailFor(high.CriterionID, nil, 5),
			detailFor(tieA.CriterionID, nil, 3),
			detailFor(tieB.CriterionID, nil, 3),
		),
	}

	got := ComputeTeacherPeriodAggregate(catalog, evaluations)
	if len(got.PerCriterion) != 4 {
		t.Fatalf("len(PerCriterion) = %d, want 4", len(got.PerCriterion))
	}

	wantOrder := []string{"B Tinggi", "C Seri", "D Seri", "A Rendah"}
	for i, name := range wantOrder {
		if got.PerCriterion[i].CriterionName != name {
			t.Errorf("PerCriterion[%d] = %q, want %q", i, got.PerCriterion[i].CriterionName, name)
		}
	}
	if got.PerCriterion[0].Category != CategorySangatBaik {
		t.Errorf("kategori breakdown memakai tabel skala 5, dapat %q", got.PerCriterion[0].Category)
	}
}
