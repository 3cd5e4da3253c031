package repositories

import (
	"errors"
	"fmt"

	"paygate/internal/models"

	"gorm.io/gorm"
)

type transferRepository struct {
	db *gorm.DB
}

func NewTransferRepository(db *gorm.DB) TransferRepository {
	return &transferRepository{db: db}
}

func (r *transferRepository) Create(transfer *models.Transfer) error {
	if err := r.db.Create(transfer).Error; err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}
	return nil
}

func (r *transferRepository) GetByID(id uint) (*models.Transfer, error) {
	var transfer models.Transfer
	if err := r.db.First(&transfer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return &transfer, nil
}

func (r *transferRepository) GetByUserID(userID uint) (*models.Transfer, error) {
	var transfer models.Transfer
	err := r.db.Where("transfer_from = ? OR transfer_to = ?", userID, userID).
		Order("created_at DESC").
		First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return &transfer, nil
}

func (r *transferRepository) ListByUserID(userID uint) ([]models.Transfer, error) {
	var transfers []models.Transfer
	err := r.db.Where("transfer_from = ? OR transfer_to = ?", userID, userID).
		Order("created_at DESC").
		Find(&transfers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, nil
}

func (r *transferRepository) FindAll(page, pageSize int, search string) ([]models.Transfer, int64, error) {
	var transfers []models.Transfer
	var total int64

	query := r.db.Model(&models.Transfer{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("CAST(transfer_from AS TEXT) LIKE ? OR CAST(transfer_to AS TEXT) LIKE ?", pattern, pattern)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transfers: %w", err)
	}
	if err := query.Order("id").Limit(pageSize).Offset((page - 1) * pageSize).Find(&transfers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, total, nil
}

func (r *transferRepository) UpdateAmount(id uint, amount int64) (*models.Transfer, error) {
	result := r.db.Model(&models.Transfer{}).Where("id = ?", id).Update("transfer_amount", amount)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update transfer amount: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrTransferNotFound
	}
	return r.GetByID(id)
}

func (r *transferRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Transfer{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transfer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransferNotFound
	}
	return nil
}
