// file: internals/features/evaluation/results/service/aggregation.go
package service

import (
	"math"
	"sort"

	"github.com/google/uuid"

	cmodel "penilaianguru_backend/internals/features/evaluation/criteria/model"
	emodel "penilaianguru_backend/internals/features/evaluation/evaluations/model"
)

/* =============================================================================
   Matematika agregasi — fungsi murni, tanpa DB.
   Dua operasi TERPISAH, jangan digabung:
   - ComputeEvaluationWeightedAverage: rata-rata berbobot SATU evaluation
     (dipakai ringkasan/ekspor PDF per penilaian).
   - ComputeTeacherPeriodAggregate: agregat lintas evaluator per
     (guru, periode) — bahan snapshot evaluation_results.
============================================================================= */

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

/* =========================================================
   Kategori
   Dua tabel ambang untuk dua skala; JANGAN disatukan
   (70/20 = 3.5 → "Baik" di skala 5 padahal 70 = "Cukup").
========================================================= */

const (
	CategorySangatBaik   = "Sangat Baik"
	CategoryBaik         = "Baik"
	CategoryCukup        = "Cukup"
	CategoryKurang       = "Kurang"
	CategorySangatKurang = "Sangat Kurang"
)

// CategoryFromScale5: untuk skor kanonik 1–5 (agregat lintas evaluator).
func CategoryFromScale5(score float64) string {
	switch {
	case score >= 4.5:
		return CategorySangatBaik
	case score >= 3.5:
		return CategoryBaik
	case score >= 2.5:
		return CategoryCukup
	case score >= 1.5:
		return CategoryKurang
	default:
		return CategorySangatKurang
	}
}

// CategoryFromScale100: untuk skor 1–100 (nilai akhir tampilan & PDF).
func CategoryFromScale100(score float64) string {
	switch {
	case score >= 90:
		return CategorySangatBaik
	case score >= 80:
		return CategoryBaik
	case score >= 70:
		return CategoryCukup
	case score >= 60:
		return CategoryKurang
	default:
		return CategorySangatKurang
	}
}

/* =========================================================
   Per-evaluation weighted average
========================================================= */

type EvaluationSummary struct {
	Score    float64 `json:"score"`     // kanonik 1–5
	Score100 float64 `json:"score_100"` // ×20 untuk tampilan
	Category string  `json:"category"`  // dari tabel skala 100
}

// ComputeEvaluationWeightedAverage: Σ(rating × bobot/100) / Σ(bobot/100)
// atas baris detail milik satu evaluation saja. Bobot diambil dari kriteria
// baris itu; kriteria yang tidak dikenal di katalog dilewati. Tanpa baris
// berbobot hasilnya 0 (degradasi, bukan error).
func ComputeEvaluationWeightedAverage(details []emodel.EvaluationDetailModel, catalog []cmodel.CriterionModel) EvaluationSummary {
	weightByID := make(map[uuid.UUID]float64, len(catalog))
	for i := range catalog {
		weightByID[catalog[i].CriterionID] = catalog[i].CriterionWeight
	}

	var num, den float64
	for i := range details {
		w, ok := weightByID[details[i].EvaluationDetailCriterionID]
		if !ok || w <= 0 {
			continue
		}
		num += details[i].EvaluationDetailRating * (w / 100)
		den += w / 100
	}

	if den == 0 {
		return EvaluationSummary{Score: 0, Score100: 0, Category: CategoryFromScale100(0)}
	}
	// score100 dihitung dari nilai mentah, bukan dari score yang sudah
	// dibulatkan (3.875 → 77.5, bukan 3.88 → 77.6)
	raw := num / den
	score100 := round2(raw * emodel.ScaleFactor100)
	return EvaluationSummary{Score: round2(raw), Score100: score100, Category: CategoryFromScale100(score100)}
}

/* =========================================================
   Cross-evaluator aggregate
========================================================= */

type CriterionScore struct {
	CriterionID   uuid.UUID `json:"criterion_id"`
	CriterionName string    `json:"criterion_name"`
	Weight        float64   `json:"weight"`
	Score         float64   `json:"score"`    // kanonik 1–5
	Category      string    `json:"category"` // tabel skala 5
}

type TeacherPeriodAggregate struct {
	PerCriterion []CriterionScore

	StudentAvg    *float64
	PeerAvg       *float64
	SupervisorAvg *float64

	StudentCount    int
	PeerCount       int
	SupervisorCount int

	FinalScore    float64 // kanonik 1–5
	FinalScore100 float64
	Category      string // tabel skala 100, mengikuti final_score_100
}

// meanAcc: akumulator rata-rata sederhana.
type meanAcc struct {
	sum float64
	n   int
}

func (a *meanAcc) add(v float64) { a.sum += v; a.n++ }
func (a *meanAcc) mean() (float64, bool) {
	if a.n == 0 {
		return 0, false
	}
	return a.sum / float64(a.n), true
}

// targetKey: sasaran rating — kriteria langsung atau subkriteria.
type targetKey struct {
	criterionID    uuid.UUID
	subcriterionID uuid.UUID // uuid.Nil untuk rating kriteria langsung
}

// crossKindValue: rata-rata dari kind-mean yang ADA saja (1–3 nilai);
// kind tanpa rating dianggap absen, bukan nol. Semua absen → 0 (sentinel
// lama yang sengaja dipertahankan; lihat kebijakan ignore-zero di bawah).
func crossKindValue(byKind map[emodel.EvaluationKind]*meanAcc) float64 {
	var acc meanAcc
	for _, kind := range []emodel.EvaluationKind{emodel.KindStudent, emodel.KindPeer, emodel.KindSupervisor} {
		if a, ok := byKind[kind]; ok {
			if m, ok := a.mean(); ok {
				acc.add(m)
			}
		}
	}
	v, ok := acc.mean()
	if !ok {
		return 0
	}
	return v
}

// ComputeTeacherPeriodAggregate menghitung agregat lintas evaluator dari
// penilaian FINAL saja:
// - per sasaran: mean rating per kind, lalu mean lintas kind yang ada;
// - kriteria terdekomposisi: mean nilai subkriterianya, hanya yang > 0
//   masuk pembagi (kebijakan ignore-zero: sub yang tak dinilai siapa pun
//   tidak menyeret skor ke bawah); kriteria langsung dinilai sendiri;
// - final: mean berbobot skor kriteria > 0;
// - input kosong → semua 0, kategori lantai. Tidak pernah error.
func ComputeTeacherPeriodAggregate(catalog []cmodel.CriterionModel, evaluations []emodel.EvaluationModel) TeacherPeriodAggregate {
	perTarget := make(map[targetKey]map[emodel.EvaluationKind]*meanAcc)
	perKindAll := make(map[emodel.EvaluationKind]*meanAcc)
	counts := make(map[emodel.EvaluationKind]int)

	for i := range evaluations {
		ev := &evaluations[i]
		if !ev.IsFinal() {
			continue
		}
		counts[ev.EvaluationKind]++

		for j := range ev.Details {
			d := &ev.Details[j]

			key := targetKey{criterionID: d.EvaluationDetailCriterionID}
			if d.EvaluationDetailSubcriterionID != nil {
				key.subcriterionID = *d.EvaluationDetailSubcriterionID
			}

			byKind, ok := perTarget[key]
			if !ok {
				byKind = make(map[emodel.EvaluationKind]*meanAcc)
				perTarget[key] = byKind
			}
			acc, ok := byKind[ev.EvaluationKind]
			if !ok {
				acc = &meanAcc{}
				byKind[ev.EvaluationKind] = acc
			}
			acc.add(d.EvaluationDetailRating)

			all, ok := perKindAll[ev.EvaluationKind]
			if !ok {
				all = &meanAcc{}
				perKindAll[ev.EvaluationKind] = all
			}
			all.add(d.EvaluationDetailRating)
		}
	}

	out := TeacherPeriodAggregate{
		StudentCount:    counts[emodel.KindStudent],
		PeerCount:       counts[emodel.KindPeer],
		SupervisorCount: counts[emodel.KindSupervisor],
	}

	kindAvg := func(kind emodel.EvaluationKind) *float64 {
		if a, ok := perKindAll[kind]; ok {
			if m, ok := a.mean(); ok {
				v := round2(m)
				return &v
			}
		}
		return nil
	}
	out.StudentAvg = kindAvg(emodel.KindStudent)
	out.PeerAvg = kindAvg(emodel.KindPeer)
	out.SupervisorAvg = kindAvg(emodel.KindSupervisor)

	// Skor per kriteria
	out.PerCriterion = make([]CriterionScore, 0, len(catalog))
	for i := range catalog {
		crit := &catalog[i]

		var score float64
		if subs := crit.ActiveSubcriterias(); len(subs) > 0 {
			var acc meanAcc
			for _, s := range subs {
				v := crossKindValue(perTarget[targetKey{
					criterionID:    crit.CriterionID,
					subcriterionID: s.SubcriterionID,
				}])
				if v > 0 {
					acc.add(v)
				}
			}
			score, _ = acc.mean()
		} else {
			score = crossKindValue(perTarget[targetKey{criterionID: crit.CriterionID}])
		}

		score = round2(score)
		out.PerCriterion = append(out.PerCriterion, CriterionScore{
			CriterionID:   crit.CriterionID,
			CriterionName: crit.CriterionName,
			Weight:        crit.CriterionWeight,
			Score:         score,
			Category:      CategoryFromScale5(score),
		})
	}

	// Skor akhir: mean berbobot kriteria yang skornya > 0
	var num, den float64
	for _, cs := range out.PerCriterion {
		if cs.Score > 0 && cs.Weight > 0 {
			num += cs.Score * (cs.Weight / 100)
			den += cs.Weight / 100
		}
	}
	if den > 0 {
		raw := num / den
		out.FinalScore = round2(raw)
		out.FinalScore100 = round2(raw * emodel.ScaleFactor100)
	}
	out.Category = CategoryFromScale100(out.FinalScore100)

	// Rincian terurut skor desc; seri dipecah nama asc (urutan seri memang
	// tidak dijanjikan ke pemakai, ini sekadar determinisme internal)
	sort.SliceStable(out.PerCriterion, func(i, j int) bool {
		if out.PerCriterion[i].Score != out.PerCriterion[j].Score {
			return out.PerCriterion[i].Score > out.PerCriterion[j].Score
		}
		return out.PerCriterion[i].CriterionName < out.PerCriterion[j].CriterionName
	})

	return out
}
