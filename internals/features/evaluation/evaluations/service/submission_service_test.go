package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	cmodel "penilaianguru_backend/internals/features/evaluation/criteria/model"
	emodel "penilaianguru_backend/internals/features/evaluation/evaluations/model"
)

func testCatalog() (direct cmodel.CriterionModel, decomposed cmodel.CriterionModel, subID uuid.UUID) {
	direct = cmodel.CriterionModel{
		CriterionID:       uuid.New(),
		CriterionName:     "Kedisiplinan",
		CriterionWeight:   40,
		CriterionIsActive: true,
	}

	decomposed = cmodel.CriterionModel{
		CriterionID:       uuid.New(),
		CriterionName:     "Pedagogik",
		CriterionWeight:   60,
		CriterionIsActive: true,
	}
	subID = uuid.New()
	decomposed.Subcriterias = []cmodel.SubcriterionModel{{
		SubcriterionID:          subID,
		SubcriterionCriterionID: decomposed.CriterionID,
		SubcriterionName:        "Kejelasan Penyampaian",
		SubcriterionWeight:      100,
		SubcriterionOrderNum:    1,
		SubcriterionIsActive:    true,
	}}
	return direct, decomposed, subID
}

func TestBuildDetailRowsValid(t *testing.T) {
	direct, decomposed, subID := testCatalog()
	catalog := []cmodel.CriterionModel{direct, decomposed}

	rows, err := BuildDetailRows(emodel.KindStudent, []DetailInput{
		{CriterionID: direct.CriterionID, Rating: 4},
		{CriterionID: decomposed.CriterionID, SubcriterionID: &subID, Rating: 5},
	}, catalog)
	if err != nil {
		t.Fatalf("BuildDetailRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].EvaluationDetailRating != 4 || rows[1].EvaluationDetailRating != 5 {
		t.Errorf("rating siswa tidak boleh berubah: %v, %v", rows[0].EvaluationDetailRating, rows[1].EvaluationDetailRating)
	}
	if rows[1].EvaluationDetailSubcriterionID == nil || *rows[1].EvaluationDetailSubcriterionID != subID {
		t.Error("subcriterion_id harus ikut tersimpan")
	}
}

func TestBuildDetailRowsNormalizesSupervisorScale(t *testing.T) {
	direct, decomposed, _ := testCatalog()
	catalog := []cmodel.CriterionModel{direct, decomposed}

	rows, err := BuildDetailRows(emodel.KindSupervisor, []DetailInput{
		{CriterionID: direct.CriterionID, Rating: 90},
	}, catalog)
	if err != nil {
		t.Fatalf("BuildDetailRows: %v", err)
	}
	if rows[0].EvaluationDetailRating != 4.5 {
		t.Errorf("rating = %v, want 4.5 (90 ÷ 20)", rows[0].EvaluationDetailRating)
	}
}

func TestBuildDetailRowsRejections(t *testing.T) {
	direct, decomposed, subID := testCatalog()
	catalog := []cmodel.CriterionModel{direct, decomposed}
	foreignSub := uuid.New()

	tests := []struct {
		name    string
		kind    emodel.EvaluationKind
		details []DetailInput
	}{
		{
			"kriteria tak dikenal",
			emodel.KindStudent,
			[]DetailInput{{CriterionID: uuid.New(), Rating: 3}},
		},
		{
			"kriteria terdekomposisi tanpa subkriteria",
			emodel.KindStudent,
			[]DetailInput{{CriterionID: decomposed.CriterionID, Rating: 3}},
		},
		{
			"kriteria langsung dengan subkriteria",
			emodel.KindStudent,
			[]DetailInput{{CriterionID: direct.CriterionID, SubcriterionID: &subID, Rating: 3}},
		},
		{
			"subkriteria milik kriteria lain",
			emodel.KindStudent,
			[]DetailInput{{CriterionID: decomposed.CriterionID, SubcriterionID: &foreignSub, Rating: 3}},
		},
		{
			"butir ganda",
			emodel.KindStudent,
			[]DetailInput{
				{CriterionID: direct.CriterionID, Rating: 3},
				{CriterionID: direct.CriterionID, Rating: 4},
			},
		},
		{
			"rating siswa di luar rentang",
			emodel.KindStudent,
			[]DetailInput{{CriterionID: direct.CriterionID, Rating: 6}},
		},
		{
			"rating supervisor di luar rentang",
			emodel.KindSupervisor,
			[]DetailInput{{CriterionID: direct.CriterionID, Rating: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildDetailRows(tt.kind, tt.details, catalog); err == nil {
				t.Error("harus error, dapat nil")
			}
		})
	}
}

func TestValidatePeerTarget(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	tests := []struct {
		name               string
		evaluatorTeacherID *uuid.UUID
		target             uuid.UUID
		wantErr            error
	}{
		{"menilai guru lain", &self, other, nil},
		{"menilai diri sendiri", &self, self, ErrSelfEvaluation},
		{"token tanpa identitas guru", nil, other, ErrPeerIdentityMissing},
		{"token tanpa identitas guru menilai siapa pun", nil, self, ErrPeerIdentityMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePeerTarget(tt.evaluatorTeacherID, tt.target)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePeerTarget = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// Validasi ulang set butir identik menghasilkan row set identik — tumpuan
// perilaku resubmit delete-then-recreate yang idempoten.
func TestBuildDetailRowsDeterministic(t *testing.T) {
	direct, decomposed, subID := testCatalog()
	catalog := []cmodel.CriterionModel{direct, decomposed}
	details := []DetailInput{
		{CriterionID: direct.CriterionID, Rating: 4},
		{CriterionID: decomposed.CriterionID, SubcriterionID: &subID, Rating: 5},
	}

	first, err := BuildDetailRows(emodel.KindStudent, details, catalog)
	if err != nil {
		t.Fatalf("BuildDetailRows: %v", err)
	}
	second, err := BuildDetailRows(emodel.KindStudent, details, catalog)
	if err != nil {
		t.Fatalf("BuildDetailRows ulang: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("jumlah row beda: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].EvaluationDetailCriterionID != second[i].EvaluationDetailCriterionID ||
			first[i].EvaluationDetailRating != second[i].EvaluationDetailRating {
			t.Errorf("row %d beda antar pemanggilan", i)
		}
	}
}
