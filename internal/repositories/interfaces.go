package repositories

import (
	"time"

	"paygate/internal/models"
)

// UserRepository resolves and manages user records. The ledger services use
// it only for existence checks; the user/auth services own the rest.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	FindAll(page, pageSize int, search string) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uint) error
}

// SaldoRepository owns the single balance row per user. No operation spans
// more than one row.
type SaldoRepository interface {
	Create(saldo *models.Saldo) error
	GetByID(id uint) (*models.Saldo, error)
	GetByUserID(userID uint) (*models.Saldo, error)
	ListByUserID(userID uint) ([]models.Saldo, error)
	FindAll(page, pageSize int, search string) ([]models.Saldo, int64, error)
	// UpdateBalance sets the absolute balance for the user's row.
	UpdateBalance(userID uint, totalBalance int64) (*models.Saldo, error)
	// UpdateWithdraw sets the absolute balance together with the withdraw
	// metadata; nil amount and time clear the metadata.
	UpdateWithdraw(userID uint, totalBalance int64, withdrawAmount *int64, withdrawTime *time.Time) (*models.Saldo, error)
	Update(saldo *models.Saldo) error
	Delete(id uint) error
}

type TopupRepository interface {
	Create(topup *models.Topup) error
	GetByID(id uint) (*models.Topup, error)
	// GetByUserID returns the user's most recent topup.
	GetByUserID(userID uint) (*models.Topup, error)
	ListByUserID(userID uint) ([]models.Topup, error)
	FindAll(page, pageSize int, search string) ([]models.Topup, int64, error)
	UpdateAmount(id uint, amount int64) error
	Delete(id uint) error
}

type WithdrawRepository interface {
	Create(withdraw *models.Withdraw) error
	GetByID(id uint) (*models.Withdraw, error)
	// GetByUserID returns the user's most recent withdraw.
	GetByUserID(userID uint) (*models.Withdraw, error)
	ListByUserID(userID uint) ([]models.Withdraw, error)
	FindAll(page, pageSize int, search string) ([]models.Withdraw, int64, error)
	Update(id uint, amount int64, withdrawTime time.Time) (*models.Withdraw, error)
	Delete(id uint) error
}

type TransferRepository interface {
	Create(transfer *models.Transfer) error
	GetByID(id uint) (*models.Transfer, error)
	// GetByUserID returns the most recent transfer the user participated in,
	// on either side.
	GetByUserID(userID uint) (*models.Transfer, error)
	ListByUserID(userID uint) ([]models.Transfer, error)
	FindAll(page, pageSize int, search string) ([]models.Transfer, int64, error)
	UpdateAmount(id uint, amount int64) (*models.Transfer, error)
	Delete(id uint) error
}
