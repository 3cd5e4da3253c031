package repositories

import (
	"errors"
	"fmt"
	"time"

	"paygate/internal/models"

	"gorm.io/gorm"
)

type withdrawRepository struct {
	db *gorm.DB
}

func NewWithdrawRepository(db *gorm.DB) WithdrawRepository {
	return &withdrawRepository{db: db}
}

func (r *withdrawRepository) Create(withdraw *models.Withdraw) error {
	if err := r.db.Create(withdraw).Error; err != nil {
		return fmt.Errorf("failed to create withdraw: %w", err)
	}
	return nil
}

func (r *withdrawRepository) GetByID(id uint) (*models.Withdraw, error) {
	var withdraw models.Withdraw
	if err := r.db.First(&withdraw, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWithdrawNotFound
		}
		return nil, fmt.Errorf("failed to get withdraw: %w", err)
	}
	return &withdraw, nil
}

func (r *withdrawRepository) GetByUserID(userID uint) (*models.Withdraw, error) {
	var withdraw models.Withdraw
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&withdraw).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWithdrawNotFound
		}
		return nil, fmt.Errorf("failed to get withdraw: %w", err)
	}
	return &withdraw, nil
}

func (r *withdrawRepository) ListByUserID(userID uint) ([]models.Withdraw, error) {
	var withdraws []models.Withdraw
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&withdraws).Error; err != nil {
		return nil, fmt.Errorf("failed to list withdraws: %w", err)
	}
	return withdraws, nil
}

func (r *withdrawRepository) FindAll(page, pageSize int, search string) ([]models.Withdraw, int64, error) {
	var withdraws []models.Withdraw
	var total int64

	query := r.db.Model(&models.Withdraw{})
	if search != "" {
		query = query.Where("CAST(user_id AS TEXT) LIKE ?", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count withdraws: %w", err)
	}
	if err := query.Order("id").Limit(pageSize).Offset((page - 1) * pageSize).Find(&withdraws).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list withdraws: %w", err)
	}
	return withdraws, total, nil
}

func (r *withdrawRepository) Update(id uint, amount int64, withdrawTime time.Time) (*models.Withdraw, error) {
	result := r.db.Model(&models.Withdraw{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"withdraw_amount": amount,
			"withdraw_time":   withdrawTime,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update withdraw: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrWithdrawNotFound
	}
	return r.GetByID(id)
}

func (r *withdrawRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Withdraw{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete withdraw: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWithdrawNotFound
	}
	return nil
}
