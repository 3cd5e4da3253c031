package repositories

import (
	"errors"
	"fmt"
	"time"

	"paygate/internal/models"

	"gorm.io/gorm"
)

type saldoRepository struct {
	db *gorm.DB
}

func NewSaldoRepository(db *gorm.DB) SaldoRepository {
	return &saldoRepository{db: db}
}

func (r *saldoRepository) Create(saldo *models.Saldo) error {
	if err := r.db.Create(saldo).Error; err != nil {
		return fmt.Errorf("failed to create saldo: %w", err)
	}
	return nil
}

func (r *saldoRepository) GetByID(id uint) (*models.Saldo, error) {
	var saldo models.Saldo
	if err := r.db.First(&saldo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaldoNotFound
		}
		return nil, fmt.Errorf("failed to get saldo: %w", err)
	}
	return &saldo, nil
}

func (r *saldoRepository) GetByUserID(userID uint) (*models.Saldo, error) {
	var saldo models.Saldo
	if err := r.db.Where("user_id = ?", userID).First(&saldo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaldoNotFound
		}
		return nil, fmt.Errorf("failed to get saldo: %w", err)
	}
	return &saldo, nil
}

func (r *saldoRepository) ListByUserID(userID uint) ([]models.Saldo, error) {
	var saldos []models.Saldo
	if err := r.db.Where("user_id = ?", userID).Find(&saldos).Error; err != nil {
		return nil, fmt.Errorf("failed to list saldos: %w", err)
	}
	return saldos, nil
}

func (r *saldoRepository) FindAll(page, pageSize int, search string) ([]models.Saldo, int64, error) {
	var saldos []models.Saldo
	var total int64

	query := r.db.Model(&models.Saldo{})
	if search != "" {
		query = query.Where("CAST(user_id AS TEXT) LIKE ?", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count saldos: %w", err)
	}
	if err := query.Order("id").Limit(pageSize).Offset((page - 1) * pageSize).Find(&saldos).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list saldos: %w", err)
	}
	return saldos, total, nil
}

func (r *saldoRepository) UpdateBalance(userID uint, totalBalance int64) (*models.Saldo, error) {
	result := r.db.Model(&models.Saldo{}).
		Where("user_id = ?", userID).
		Update("total_balance", totalBalance)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update saldo balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrSaldoNotFound
	}
	return r.GetByUserID(userID)
}

func (r *saldoRepository) UpdateWithdraw(userID uint, totalBalance int64, withdrawAmount *int64, withdrawTime *time.Time) (*models.Saldo, error) {
	result := r.db.Model(&models.Saldo{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"total_balance":   totalBalance,
			"withdraw_amount": withdrawAmount,
			"withdraw_time":   withdrawTime,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update saldo withdraw: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrSaldoNotFound
	}
	return r.GetByUserID(userID)
}

func (r *saldoRepository) Update(saldo *models.Saldo) error {
	if err := r.db.Save(saldo).Error; err != nil {
		return fmt.Errorf("failed to update saldo: %w", err)
	}
	return nil
}

func (r *saldoRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Saldo{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete saldo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSaldoNotFound
	}
	return nil
}
