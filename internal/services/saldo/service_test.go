package saldo

import (
	"context"
	"testing"

	domain "paygate/internal/errors"
	"paygate/internal/models"
	"paygate/internal/repositories"
	"paygate/internal/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) GetSaldo(ctx context.Context, userID uint) (*models.Saldo, bool, error) {
	args := m.Called(ctx, userID)
	var saldo *models.Saldo
	if args.Get(0) != nil {
		saldo = args.Get(0).(*models.Saldo)
	}
	return saldo, args.Bool(1), args.Error(2)
}

func (m *mockCache) SetSaldo(ctx context.Context, saldo *models.Saldo) error {
	return m.Called(ctx, saldo).Error(0)
}

func (m *mockCache) InvalidateSaldo(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

func TestGetSaldoUser_ServesFromCache(t *testing.T) {
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	cache := new(mockCache)
	svc := NewService(saldos, users, cache, zap.NewNop())

	users.On("GetByID", uint(1)).Return(&models.User{ID: 1}, nil)
	cached := &models.Saldo{UserID: 1, TotalBalance: 100000}
	cache.On("GetSaldo", mock.Anything, uint(1)).Return(cached, true, nil)

	got, err := svc.GetSaldoUser(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, cached, got)
	saldos.AssertNotCalled(t, "GetByUserID", mock.Anything)
}

func TestGetSaldoUser_CacheMissFallsThroughAndWarms(t *testing.T) {
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	cache := new(mockCache)
	svc := NewService(saldos, users, cache, zap.NewNop())

	users.On("GetByID", uint(1)).Return(&models.User{ID: 1}, nil)
	cache.On("GetSaldo", mock.Anything, uint(1)).Return(nil, false, nil)
	stored := &models.Saldo{UserID: 1, TotalBalance: 100000}
	saldos.On("GetByUserID", uint(1)).Return(stored, nil)
	cache.On("SetSaldo", mock.Anything, stored).Return(nil)

	got, err := svc.GetSaldoUser(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, stored, got)
	cache.AssertExpectations(t)
}

func TestGetSaldoUser_AbsentSaldoIsNotFound(t *testing.T) {
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := NewService(saldos, users, nil, zap.NewNop())

	users.On("GetByID", uint(1)).Return(&models.User{ID: 1}, nil)
	saldos.On("GetByUserID", uint(1)).Return(nil, repositories.ErrSaldoNotFound)

	_, err := svc.GetSaldoUser(context.Background(), 1)

	var de *domain.DomainError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, "NOT_FOUND", de.Code)
}

func TestCreateSaldo_RequiresExistingUser(t *testing.T) {
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := NewService(saldos, users, nil, zap.NewNop())

	users.On("GetByID", uint(9)).Return(nil, repositories.ErrUserNotFound)

	_, err := svc.CreateSaldo(context.Background(), &CreateSaldoRequest{UserID: 9, TotalBalance: 1000})

	var de *domain.DomainError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, "NOT_FOUND", de.Code)
	saldos.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateSaldo_InvalidatesCache(t *testing.T) {
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	cache := new(mockCache)
	svc := NewService(saldos, users, cache, zap.NewNop())

	users.On("GetByID", uint(1)).Return(&models.User{ID: 1}, nil)
	saldos.On("GetByID", uint(2)).Return(&models.Saldo{ID: 2, UserID: 1, TotalBalance: 50000}, nil)
	saldos.On("Update", mock.MatchedBy(func(s *models.Saldo) bool {
		return s.ID == 2 && s.TotalBalance == 75000
	})).Return(nil)
	cache.On("InvalidateSaldo", mock.Anything, uint(1)).Return(nil)

	updated, err := svc.UpdateSaldo(context.Background(), &UpdateSaldoRequest{
		UserID:       1,
		SaldoID:      2,
		TotalBalance: 75000,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(75000), updated.TotalBalance)
	cache.AssertExpectations(t)
}

func TestDeleteSaldo_RemovesRowOwnedByUser(t *testing.T) {
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := NewService(saldos, users, nil, zap.NewNop())

	users.On("GetByID", uint(1)).Return(&models.User{ID: 1}, nil)
	saldos.On("GetByUserID", uint(1)).Return(&models.Saldo{ID: 2, UserID: 1}, nil)
	saldos.On("Delete", uint(2)).Return(nil)

	err := svc.DeleteSaldo(context.Background(), 1)

	assert.NoError(t, err)
	saldos.AssertExpectations(t)
}
