// file: internals/features/evaluation/periods/service/period_lifecycle_service.go
package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cservice "penilaianguru_backend/internals/features/evaluation/criteria/service"
	pmodel "penilaianguru_backend/internals/features/evaluation/periods/model"
)

var (
	ErrPeriodNotFound      = errors.New("periode tidak ditemukan")
	ErrInvalidTransition   = errors.New("transisi status periode tidak valid")
	ErrCatalogInconsistent = errors.New("katalog kriteria belum konsisten")
)

/* =========================================================
   SERVICE: lifecycle periode
========================================================= */

type PeriodLifecycleService struct {
	DB *gorm.DB
}

func NewPeriodLifecycleService(db *gorm.DB) *PeriodLifecycleService {
	return &PeriodLifecycleService{DB: db}
}

// Activate:
// - validasi bobot katalog aktif (Σ=100 level kriteria & per parent subkriteria)
// - dalam SATU transaksi: selesaikan periode aktif lain, lalu aktifkan target.
// Hasilnya: maksimal satu periode 'active' pada titik commit mana pun.
func (s *PeriodLifecycleService) Activate(ctx context.Context, periodID uuid.UUID) (*pmodel.EvaluationPeriodModel, error) {
	if err := cservice.NewCatalogService(s.DB).ValidateActiveCatalog(ctx); err != nil {
		log.Printf("[PeriodLifecycleService] katalog belum konsisten: %v", err)
		return nil, errors.Join(ErrCatalogInconsistent, err)
	}

	var target pmodel.EvaluationPeriodModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&target, "evaluation_period_id = ?", periodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPeriodNotFound
			}
			return err
		}
		if !target.CanTransitionTo(pmodel.PeriodActive) {
			return ErrInvalidTransition
		}

		// tutup periode aktif lain dulu
		if err := tx.Model(&pmodel.EvaluationPeriodModel{}).
			Where("evaluation_period_status = ? AND evaluation_period_id <> ?", pmodel.PeriodActive, periodID).
			Update("evaluation_period_status", pmodel.PeriodCompleted).Error; err != nil {
			return err
		}

		target.EvaluationPeriodStatus = pmodel.PeriodActive
		return tx.Save(&target).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[PeriodLifecycleService] periode %s aktif", target.EvaluationPeriodID)
	return &target, nil
}

// Complete: active → completed.
func (s *PeriodLifecycleService) Complete(ctx context.Context, periodID uuid.UUID) (*pmodel.EvaluationPeriodModel, error) {
	var target pmodel.EvaluationPeriodModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&target, "evaluation_period_id = ?", periodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPeriodNotFound
			}
			return err
		}
		if !target.CanTransitionTo(pmodel.PeriodCompleted) {
			return ErrInvalidTransition
		}
		target.EvaluationPeriodStatus = pmodel.PeriodCompleted
		return tx.Save(&target).Error
	})
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// GetActive: periode yang sedang aktif (nil kalau tidak ada).
func (s *PeriodLifecycleService) GetActive(ctx context.Context) (*pmodel.EvaluationPeriodModel, error) {
	var m pmodel.EvaluationPeriodModel
	err := s.DB.WithContext(ctx).
		First(&m, "evaluation_period_status = ?", pmodel.PeriodActive).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
