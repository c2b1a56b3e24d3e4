// file: internals/features/evaluation/criteria/service/catalog_service.go
package service

import (
	"context"
	"fmt"
	"math"

	"gorm.io/gorm"

	cmodel "penilaianguru_backend/internals/features/evaluation/criteria/model"
)

// WeightSumEpsilon: toleransi pembulatan saat cek total bobot 100.
const WeightSumEpsilon = 0.01

/* =========================================================
   SERVICE: Criteria Catalog (read surface untuk form & agregasi)
========================================================= */

type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ListActiveCriteria: kriteria aktif urut nama, masing-masing membawa
// subkriteria aktif urut order_num. Dipakai form penilaian & mesin agregasi.
func (s *CatalogService) ListActiveCriteria(ctx context.Context) ([]cmodel.CriterionModel, error) {
	var rows []cmodel.CriterionModel
	err := s.DB.WithContext(ctx).
		Where("criterion_is_active = ?", true).
		Preload("Subcriterias", func(db *gorm.DB) *gorm.DB {
			return db.Where("subcriterion_is_active = ?", true).
				Order("subcriterion_order_num ASC")
		}).
		Order("criterion_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

/* =========================================================
   Validasi bobot (pure; dipakai write path & aktivasi periode)
========================================================= */

// SumActiveCriterionWeights menjumlahkan bobot kriteria aktif.
func SumActiveCriterionWeights(criterias []cmodel.CriterionModel) float64 {
	var sum float64
	for _, c := range criterias {
		if c.CriterionIsActive {
			sum += c.CriterionWeight
		}
	}
	return sum
}

// SumActiveSubcriterionWeights menjumlahkan bobot subkriteria aktif satu parent.
func SumActiveSubcriterionWeights(subs []cmodel.SubcriterionModel) float64 {
	var sum float64
	for _, s := range subs {
		if s.SubcriterionIsActive {
			sum += s.SubcriterionWeight
		}
	}
	return sum
}

// ValidateCatalogWeights: invariant Σ bobot = 100 (±epsilon) untuk set kriteria
// aktif, dan untuk tiap set subkriteria aktif di bawah satu kriteria.
// Return nil kalau katalog konsisten; error dengan detail kalau tidak.
func ValidateCatalogWeights(criterias []cmodel.CriterionModel) error {
	active := make([]cmodel.CriterionModel, 0, len(criterias))
	for _, c := range criterias {
		if c.CriterionIsActive {
			active = append(active, c)
		}
	}
	if len(active) == 0 {
		return fmt.Errorf("katalog kriteria kosong: tidak ada kriteria aktif")
	}

	if sum := SumActiveCriterionWeights(active); math.Abs(sum-100) > WeightSumEpsilon {
		return fmt.Errorf("total bobot kriteria aktif %.2f, harus 100", sum)
	}

	for _, c := range active {
		subs := c.ActiveSubcriterias()
		if len(subs) == 0 {
			continue // dinilai langsung di level kriteria
		}
		if sum := SumActiveSubcriterionWeights(subs); math.Abs(sum-100) > WeightSumEpsilon {
			return fmt.Errorf("total bobot subkriteria aktif %q %.2f, harus 100", c.CriterionName, sum)
		}
	}
	return nil
}

// ValidateActiveCatalog: load katalog aktif lalu cek invariant bobot.
// Dipanggil service aktivasi periode — periode tidak boleh aktif di atas
// katalog yang bobotnya belum konsisten.
func (s *CatalogService) ValidateActiveCatalog(ctx context.Context) error {
	rows, err := s.ListActiveCriteria(ctx)
	if err != nil {
		return err
	}
	return ValidateCatalogWeights(rows)
}
