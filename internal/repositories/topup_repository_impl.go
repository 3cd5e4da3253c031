package repositories

import (
	"errors"
	"fmt"

	"paygate/internal/models"

	"gorm.io/gorm"
)

type topupRepository struct {
	db *gorm.DB
}

func NewTopupRepository(db *gorm.DB) TopupRepository {
	return &topupRepository{db: db}
}

func (r *topupRepository) Create(topup *models.Topup) error {
	if err := r.db.Create(topup).Error; err != nil {
		return fmt.Errorf("failed to create topup: %w", err)
	}
	return nil
}

func (r *topupRepository) GetByID(id uint) (*models.Topup, error) {
	var topup models.Topup
	if err := r.db.First(&topup, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopupNotFound
		}
		return nil, fmt.Errorf("failed to get topup: %w", err)
	}
	return &topup, nil
}

func (r *topupRepository) GetByUserID(userID uint) (*models.Topup, error) {
	var topup models.Topup
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&topup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopupNotFound
		}
		return nil, fmt.Errorf("failed to get topup: %w", err)
	}
	return &topup, nil
}

func (r *topupRepository) ListByUserID(userID uint) ([]models.Topup, error) {
	var topups []models.Topup
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&topups).Error; err != nil {
		return nil, fmt.Errorf("failed to list topups: %w", err)
	}
	return topups, nil
}

func (r *topupRepository) FindAll(page, pageSize int, search string) ([]models.Topup, int64, error) {
	var topups []models.Topup
	var total int64

	query := r.db.Model(&models.Topup{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("topup_no ILIKE ? OR topup_method ILIKE ?", pattern, pattern)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count topups: %w", err)
	}
	if err := query.Order("id").Limit(pageSize).Offset((page - 1) * pageSize).Find(&topups).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list topups: %w", err)
	}
	return topups, total, nil
}

func (r *topupRepository) UpdateAmount(id uint, amount int64) error {
	result := r.db.Model(&models.Topup{}).Where("id = ?", id).Update("topup_amount", amount)
	if result.Error != nil {
		return fmt.Errorf("failed to update topup amount: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTopupNotFound
	}
	return nil
}

func (r *topupRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Topup{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete topup: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTopupNotFound
	}
	return nil
}
