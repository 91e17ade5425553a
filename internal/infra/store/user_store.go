package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type userStore struct {
	db *gorm.DB
}

func NewUserStore(s *Store) domain.UserRepository {
	return &userStore{db: s.db}
}

func (s *userStore) CreateUser(ctx context.Context, user *domain.User) error {
	row := userRowFrom(user)
	if err := s.db.WithContext(ctx).Omit("Medicines").Create(row).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = row.ID
	return nil
}

func (s *userStore) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var row userRow
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return row.toDomain(), nil
}

func (s *userStore) ListUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := s.db.WithContext(ctx).Model(&userRow{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return ids, nil
}

// DeleteUser removes the user and all of its medicines in one transaction.
func (s *userStore) DeleteUser(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&medicineRow{}).Error; err != nil {
			return fmt.Errorf("failed to delete medicines: %w", err)
		}

		result := tx.Where("id = ?", userID).Delete(&userRow{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}
