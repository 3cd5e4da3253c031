// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"time"

	"paygate/internal/models"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *UserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func (m *UserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func (m *UserRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) FindAll(page, pageSize int, search string) ([]models.User, int64, error) {
	args := m.Called(page, pageSize, search)
	var users []models.User
	if args.Get(0) != nil {
		users = args.Get(0).([]models.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *UserRepository) Update(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *UserRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}

type SaldoRepository struct {
	mock.Mock
}

func (m *SaldoRepository) Create(saldo *models.Saldo) error {
	return m.Called(saldo).Error(0)
}

func (m *SaldoRepository) GetByID(id uint) (*models.Saldo, error) {
	args := m.Called(id)
	var saldo *models.Saldo
	if args.Get(0) != nil {
		saldo = args.Get(0).(*models.Saldo)
	}
	return saldo, args.Error(1)
}

func (m *SaldoRepository) GetByUserID(userID uint) (*models.Saldo, error) {
	args := m.Called(userID)
	var saldo *models.Saldo
	if args.Get(0) != nil {
		saldo = args.Get(0).(*models.Saldo)
	}
	return saldo, args.Error(1)
}

func (m *SaldoRepository) ListByUserID(userID uint) ([]models.Saldo, error) {
	args := m.Called(userID)
	var saldos []models.Saldo
	if args.Get(0) != nil {
		saldos = args.Get(0).([]models.Saldo)
	}
	return saldos, args.Error(1)
}

func (m *SaldoRepository) FindAll(page, pageSize int, search string) ([]models.Saldo, int64, error) {
	args := m.Called(page, pageSize, search)
	var saldos []models.Saldo
	if args.Get(0) != nil {
		saldos = args.Get(0).([]models.Saldo)
	}
	return saldos, args.Get(1).(int64), args.Error(2)
}

func (m *SaldoRepository) UpdateBalance(userID uint, totalBalance int64) (*models.Saldo, error) {
	args := m.Called(userID, totalBalance)
	var saldo *models.Saldo
	if args.Get(0) != nil {
		saldo = args.Get(0).(*models.Saldo)
	}
	return saldo, args.Error(1)
}

func (m *SaldoRepository) UpdateWithdraw(userID uint, totalBalance int64, withdrawAmount *int64, withdrawTime *time.Time) (*models.Saldo, error) {
	args := m.Called(userID, totalBalance, withdrawAmount, withdrawTime)
	var saldo *models.Saldo
	if args.Get(0) != nil {
		saldo = args.Get(0).(*models.Saldo)
	}
	return saldo, args.Error(1)
}

func (m *SaldoRepository) Update(saldo *models.Saldo) error {
	return m.Called(saldo).Error(0)
}

func (m *SaldoRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}

type TopupRepository struct {
	mock.Mock
}

func (m *TopupRepository) Create(topup *models.Topup) error {
	return m.Called(topup).Error(0)
}

func (m *TopupRepository) GetByID(id uint) (*models.Topup, error) {
	args := m.Called(id)
	var topup *models.Topup
	if args.Get(0) != nil {
		topup = args.Get(0).(*models.Topup)
	}
	return topup, args.Error(1)
}

func (m *TopupRepository) GetByUserID(userID uint) (*models.Topup, error) {
	args := m.Called(userID)
	var topup *models.Topup
	if args.Get(0) != nil {
		topup = args.Get(0).(*models.Topup)
	}
	return topup, args.Error(1)
}

func (m *TopupRepository) ListByUserID(userID uint) ([]models.Topup, error) {
	args := m.Called(userID)
	var topups []models.Topup
	if args.Get(0) != nil {
		topups = args.Get(0).([]models.Topup)
	}
	return topups, args.Error(1)
}

func (m *TopupRepository) FindAll(page, pageSize int, search string) ([]models.Topup, int64, error) {
	args := m.Called(page, pageSize, search)
	var topups []models.Topup
	if args.Get(0) != nil {
		topups = args.Get(0).([]models.Topup)
	}
	return topups, args.Get(1).(int64), args.Error(2)
}

func (m *TopupRepository) UpdateAmount(id uint, amount int64) error {
	return m.Called(id, amount).Error(0)
}

func (m *TopupRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}

type WithdrawRepository struct {
	mock.Mock
}

func (m *WithdrawRepository) Create(withdraw *models.Withdraw) error {
	return m.Called(withdraw).Error(0)
}

func (m *WithdrawRepository) GetByID(id uint) (*models.Withdraw, error) {
	args := m.Called(id)
	var withdraw *models.Withdraw
	if args.Get(0) != nil {
		withdraw = args.Get(0).(*models.Withdraw)
	}
	return withdraw, args.Error(1)
}

func (m *WithdrawRepository) GetByUserID(userID uint) (*models.Withdraw, error) {
	args := m.Called(userID)
	var withdraw *models.Withdraw
	if args.Get(0) != nil {
		withdraw = args.Get(0).(*models.Withdraw)
	}
	return withdraw, args.Error(1)
}

func (m *WithdrawRepository) ListByUserID(userID uint) ([]models.Withdraw, error) {
	args := m.Called(userID)
	var withdraws []models.Withdraw
	if args.Get(0) != nil {
		withdraws = args.Get(0).([]models.Withdraw)
	}
	return withdraws, args.Error(1)
}

func (m *WithdrawRepository) FindAll(page, pageSize int, search string) ([]models.Withdraw, int64, error) {
	args := m.Called(page, pageSize, search)
	var withdraws []models.Withdraw
	if args.Get(0) != nil {
		withdraws = args.Get(0).([]models.Withdraw)
	}
	return withdraws, args.Get(1).(int64), args.Error(2)
}

func (m *WithdrawRepository) Update(id uint, amount int64, withdrawTime time.Time) (*models.Withdraw, error) {
	args := m.Called(id, amount, withdrawTime)
	var withdraw *models.Withdraw
	if args.Get(0) != nil {
		withdraw = args.Get(0).(*models.Withdraw)
	}
	return withdraw, args.Error(1)
}

func (m *WithdrawRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}

type TransferRepository struct {
	mock.Mock
}

func (m *TransferRepository) Create(transfer *models.Transfer) error {
	return m.Called(transfer).Error(0)
}

func (m *TransferRepository) GetByID(id uint) (*models.Transfer, error) {
	args := m.Called(id)
	var transfer *models.Transfer
	if args.Get(0) != nil {
		transfer = args.Get(0).(*models.Transfer)
	}
	return transfer, args.Error(1)
}

func (m *TransferRepository) GetByUserID(userID uint) (*models.Transfer, error) {
	args := m.Called(userID)
	var transfer *models.Transfer
	if args.Get(0) != nil {
		transfer = args.Get(0).(*models.Transfer)
	}
	return transfer, args.Error(1)
}

func (m *TransferRepository) ListByUserID(userID uint) ([]models.Transfer, error) {
	args := m.Called(userID)
	var transfers []models.Transfer
	if args.Get(0) != nil {
		transfers = args.Get(0).([]models.Transfer)
	}
	return transfers, args.Error(1)
}

func (m *TransferRepository) FindAll(page, pageSize int, search string) ([]models.Transfer, int64, error) {
	args := m.Called(page, pageSize, search)
	var transfers []models.Transfer
	if args.Get(0) != nil {
		transfers = args.Get(0).([]models.Transfer)
	}
	return transfers, args.Get(1).(int64), args.Error(2)
}

func (m *TransferRepository) UpdateAmount(id uint, amount int64) (*models.Transfer, error) {
	args := m.Called(id, amount)
	var transfer *models.Transfer
	if args.Get(0) != nil {
		transfer = args.Get(0).(*models.Transfer)
	}
	return transfer, args.Error(1)
}

func (m *TransferRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}
