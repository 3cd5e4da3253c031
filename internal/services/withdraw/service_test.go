package withdraw

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "paygate/internal/errors"
	"paygate/internal/models"
	"paygate/internal/repositories"
	"paygate/internal/repositories/mocks"
	"paygate/internal/saga"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestService(withdraws *mocks.WithdrawRepository, saldos *mocks.SaldoRepository, users *mocks.UserRepository) *service {
	return NewService(withdraws, saldos, users, nil, saga.New(zap.NewNop()), zap.NewNop()).(*service)
}

func amountPtr(v int64) interface{} {
	return mock.MatchedBy(func(p *int64) bool { return p != nil && *p == v })
}

func anyTimePtr() interface{} {
	return mock.MatchedBy(func(p *time.Time) bool { return p != nil })
}

func TestCreateWithdraw_DebitsBalance(t *testing.T) {
	withdraws := new(mocks.WithdrawRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(withdraws, saldos, users)

	saldos.On("GetByUserID", uint(1)).Return(&models.Saldo{UserID: 1, TotalBalance: 100000}, nil)
	saldos.On("UpdateWithdraw", uint(1), int64(40000), amountPtr(60000), anyTimePtr()).
		Return(&models.Saldo{UserID: 1, TotalBalance: 40000}, nil)
	withdraws.On("Create", mock.AnythingOfType("*models.Withdraw")).Return(nil)

	created, err := svc.CreateWithdraw(context.Background(), &CreateWithdrawRequest{
		UserID:         1,
		WithdrawAmount: 60000,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(60000), created.WithdrawAmount)
	saldos.AssertExpectations(t)
	withdraws.AssertExpectations(t)
}

func TestCreateWithdraw_InsufficientBalanceLeavesStateUntouched(t *testing.T) {
	withdraws := new(mocks.WithdrawRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(withdraws, saldos, users)

	// Balance after a prior 60000 withdraw from 100000.
	saldos.On("GetByUserID", uint(1)).Return(&models.Saldo{UserID: 1, TotalBalance: 40000}, nil)

	_, err := svc.CreateWithdraw(context.Background(), &CreateWithdrawRequest{
		UserID:         1,
		WithdrawAmount: 60000,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	saldos.AssertNotCalled(t, "UpdateWithdraw", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	withdraws.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateWithdraw_MissingSaldo(t *testing.T) {
	withdraws := new(mocks.WithdrawRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(withdraws, saldos, users)

	saldos.On("GetByUserID", uint(1)).Return(nil, repositories.ErrSaldoNotFound)

	_, err := svc.CreateWithdraw(context.Background(), &CreateWithdrawRequest{
		UserID:         1,
		WithdrawAmount: 60000,
	})

	var de *domain.DomainError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, "NOT_FOUND", de.Code)
}

// The debit is written before the record. When the record write fails the
// debit stays: the balance is reduced with no journal entry to show for it.
func TestCreateWithdraw_RecordFailureLeavesDebitInPlace(t *testing.T) {
	withdraws := new(mocks.WithdrawRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(withdraws, saldos, users)

	boom := errors.New("insert failed")
	saldos.On("GetByUserID", uint(1)).Return(&models.Saldo{UserID: 1, TotalBalance: 100000}, nil)
	saldos.On("UpdateWithdraw", uint(1), int64(40000), amountPtr(60000), anyTimePtr()).
		Return(&models.Saldo{UserID: 1, TotalBalance: 40000}, nil)
	withdraws.On("Create", mock.AnythingOfType("*models.Withdraw")).Return(boom)

	_, err := svc.CreateWithdraw(context.Background(), &CreateWithdrawRequest{
		UserID:         1,
		WithdrawAmount: 60000,
	})

	assert.ErrorIs(t, err, boom)
	// No restoring write happens.
	saldos.AssertNumberOfCalls(t, "UpdateWithdraw", 1)
}

// The new balance is current total minus the new amount. The previously
// debited amount is not credited back first, so updating a 60000 withdraw
// to 10000 on a 40000 balance yields 30000, not 90000.
func TestUpdateWithdraw_DebitsAgainstCurrentBalance(t *testing.T) {
	withdraws := new(mocks.WithdrawRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(withdraws, saldos, users)

	withdraws.On("GetByID", uint(3)).Return(&models.Withdraw{ID: 3, UserID: 1, WithdrawAmount: 60000}, nil)
	saldos.On("GetByUserID", uint(1)).Return(&models.Saldo{UserID: 1, TotalBalance: 40000}, nil)
	withdraws.On("Update", uint(3), int64(10000), mock.AnythingOfType("time.Time")).
		Return(&models.Withdraw{ID: 3, UserID: 1, WithdrawAmount: 10000}, nil)
	saldos.On("UpdateWithdraw", uint(1), int64(30000), amountPtr(10000), anyTimePtr()).
		Return(&models.Saldo{UserID: 1, TotalBalance: 30000}, nil)

	updated, err := svc.UpdateWithdraw(context.Background(), &UpdateWithdrawRequest{
		UserID:         1,
		WithdrawID:     3,
		WithdrawAmount: 10000,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10000), updated.WithdrawAmount)
	saldos.AssertExpectations(t)
}

func TestUpdateWithdraw_RecordFailureResetsSaldoMetadata(t *testing.T) {
	withdraws := new(mocks.WithdrawRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(withdraws, saldos, users)

	boom := errors.New("update failed")
	nilAmount := mock.MatchedBy(func(p *int64) bool { return p == nil })
	nilTime := mock.MatchedBy(func(p *time.Time) bool { return p == nil })

	withdraws.On("GetByID", uint(3)).Return(&models.Withdraw{ID: 3, UserID: 1, WithdrawAmount: 60000}, nil)
	saldos.On("GetByUserID", uint(1)).Return(&models.Saldo{UserID: 1, TotalBalance: 40000}, nil)
	withdraws.On("Update", uint(3), int64(10000), mock.AnythingOfType("time.Time")).Return(nil, boom)
	saldos.On("UpdateWithdraw", uint(1), int64(40000), nilAmount, nilTime).
		Return(&models.Saldo{UserID: 1, TotalBalance: 40000}, nil)

	_, err := svc.UpdateWithdraw(context.Background(), &UpdateWithdrawRequest{
		UserID:         1,
		WithdrawID:     3,
		WithdrawAmount: 10000,
	})

	assert.ErrorIs(t, err, boom)
	saldos.AssertExpectations(t)
}

func TestDeleteWithdraw_RemovesLatestRecordOwnedByUser(t *testing.T) {
	withdraws := new(mocks.WithdrawRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(withdraws, saldos, users)

	users.On("GetByID", uint(1)).Return(&models.User{ID: 1}, nil)
	withdraws.On("GetByUserID", uint(1)).Return(&models.Withdraw{ID: 5, UserID: 1, WithdrawAmount: 60000}, nil)
	withdraws.On("Delete", uint(5)).Return(nil)

	err := svc.DeleteWithdraw(context.Background(), 1)

	assert.NoError(t, err)
	withdraws.AssertExpectations(t)
	// Deleting the record does not credit the amount back.
	saldos.AssertNotCalled(t, "UpdateWithdraw", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	saldos.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything)
}
