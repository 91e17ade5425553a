package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type medicineStore struct {
	db *gorm.DB
}

func NewMedicineStore(s *Store) domain.MedicineRepository {
	return &medicineStore{db: s.db}
}

func (s *medicineStore) GetMedicinesForUser(ctx context.Context, userID string) ([]domain.Medicine, error) {
	var rows []medicineRow
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list medicines: %w", err)
	}

	medicines := make([]domain.Medicine, 0, len(rows))
	for i := range rows {
		medicines = append(medicines, rows[i].toDomain())
	}
	return medicines, nil
}

func (s *medicineStore) GetMedicine(ctx context.Context, userID, medicineID string) (*domain.Medicine, error) {
	var row medicineRow
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", medicineID, userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMedicineNotFound
		}
		return nil, fmt.Errorf("failed to get medicine: %w", err)
	}

	m := row.toDomain()
	return &m, nil
}

// CreateMedicine inserts the medicine and writes the generated id back.
func (s *medicineStore) CreateMedicine(ctx context.Context, medicine *domain.Medicine) error {
	row := medicineRowFrom(medicine)
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create medicine: %w", err)
	}
	medicine.ID = row.ID
	return nil
}

// UpdateMedicine overwrites every column, clearing slots that are no longer
// set.
func (s *medicineStore) UpdateMedicine(ctx context.Context, medicine *domain.Medicine) error {
	row := medicineRowFrom(medicine)

	result := s.db.WithContext(ctx).
		Model(&medicineRow{}).
		Where("id = ? AND user_id = ?", medicine.ID, medicine.UserID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(row)
	if result.Error != nil {
		return fmt.Errorf("failed to update medicine: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMedicineNotFound
	}
	return nil
}

func (s *medicineStore) DeleteMedicine(ctx context.Context, userID, medicineID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", medicineID, userID).
		Delete(&medicineRow{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete medicine: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMedicineNotFound
	}
	return nil
}
