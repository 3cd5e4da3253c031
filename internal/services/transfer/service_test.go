package transfer

import (
	"context"
	"errors"
	"testing"

	domain "paygate/internal/errors"
	"paygate/internal/models"
	"paygate/internal/repositories"
	"paygate/internal/repositories/mocks"
	"paygate/internal/saga"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestService(transfers *mocks.TransferRepository, saldos *mocks.SaldoRepository, users *mocks.UserRepository) *service {
	return NewService(transfers, saldos, users, nil, saga.New(zap.NewNop()), zap.NewNop()).(*service)
}

func expectUsers(users *mocks.UserRepository, ids ...uint) {
	for _, id := range ids {
		users.On("GetByID", id).Return(&models.User{ID: id}, nil)
	}
}

func TestCreateTransfer_MovesAmountBetweenBalances(t *testing.T) {
	transfers := new(mocks.TransferRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(transfers, saldos, users)

	expectUsers(users, 1, 2)
	transfers.On("Create", mock.AnythingOfType("*models.Transfer")).Return(nil)
	saldos.On("GetByUserID", uint(1)).Return(&models.Saldo{UserID: 1, TotalBalance: 100000}, nil)
	saldos.On("UpdateBalance", uint(1), int64(70000)).Return(&models.Saldo{UserID: 1, TotalBalance: 70000}, nil)
	saldos.On("GetByUserID", uint(2)).Return(&models.Saldo{UserID: 2, TotalBalance: 50000}, nil)
	saldos.On("UpdateBalance", uint(2), int64(80000)).Return(&models.Saldo{UserID: 2, TotalBalance: 80000}, nil)

	created, err := svc.CreateTransfer(context.Background(), &CreateTransferRequest{
		TransferFrom:   1,
		TransferTo:     2,
		TransferAmount: 30000,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(30000), created.TransferAmount)
	// 100000 + 50000 == 70000 + 80000: the amount moved, nothing was minted.
	saldos.AssertExpectations(t)
}

func TestCreateTransfer_InsufficientBalanceLeavesNoRecord(t *testing.T) {
	transfers := new(mocks.TransferRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(transfers, saldos, users)

	expectUsers(users, 1, 2)
	transfers.On("Create", mock.AnythingOfType("*models.Transfer")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Transfer).ID = 4
	})
	saldos.On("GetByUserID", uint(1)).Return(&models.Saldo{UserID: 1, TotalBalance: 20000}, nil)
	transfers.On("Delete", uint(4)).Return(nil)

	_, err := svc.CreateTransfer(context.Background(), &CreateTransferRequest{
		TransferFrom:   1,
		TransferTo:     2,
		TransferAmount: 30000,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	transfers.AssertCalled(t, "Delete", uint(4))
	saldos.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything)
}

func TestCreateTransfer_ReceiverWriteFailureRestoresSenderAndRecord(t *testing.T) {
	transfers := new(mocks.TransferRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(transfers, saldos, users)

	boom := errors.New("receiver write failed")
	expectUsers(users, 1, 2)
	transfers.On("Create", mock.AnythingOfType("*models.Transfer")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Transfer).ID = 4
	})
	saldos.On("GetByUserID", uint(1)).Return(&models.Saldo{UserID: 1, TotalBalance: 100000}, nil)
	saldos.On("UpdateBalance", uint(1), int64(70000)).Return(&models.Saldo{UserID: 1, TotalBalance: 70000}, nil)
	saldos.On("GetByUserID", uint(2)).Return(&models.Saldo{UserID: 2, TotalBalance: 50000}, nil)
	saldos.On("UpdateBalance", uint(2), int64(80000)).Return(nil, boom)
	// Reverse-order compensation: sender restored, then record removed.
	saldos.On("UpdateBalance", uint(1), int64(100000)).Return(&models.Saldo{UserID: 1, TotalBalance: 100000}, nil)
	transfers.On("Delete", uint(4)).Return(nil)

	_, err := svc.CreateTransfer(context.Background(), &CreateTransferRequest{
		TransferFrom:   1,
		TransferTo:     2,
		TransferAmount: 30000,
	})

	assert.ErrorIs(t, err, boom)
	saldos.AssertCalled(t, "UpdateBalance", uint(1), int64(100000))
	transfers.AssertCalled(t, "Delete", uint(4))
}

func TestCreateTransfer_MissingReceiverSaldoRollsBack(t *testing.T) {
	transfers := new(mocks.TransferRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(transfers, saldos, users)

	expectUsers(users, 1, 2)
	transfers.On("Create", mock.AnythingOfType("*models.Transfer")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Transfer).ID = 4
	})
	saldos.On("GetByUserID", uint(1)).Return(&models.Saldo{UserID: 1, TotalBalance: 100000}, nil)
	saldos.On("UpdateBalance", uint(1), int64(70000)).Return(&models.Saldo{UserID: 1, TotalBalance: 70000}, nil)
	saldos.On("GetByUserID", uint(2)).Return(nil, repositories.ErrSaldoNotFound)
	saldos.On("UpdateBalance", uint(1), int64(100000)).Return(&models.Saldo{UserID: 1, TotalBalance: 100000}, nil)
	transfers.On("Delete", uint(4)).Return(nil)

	_, err := svc.CreateTransfer(context.Background(), &CreateTransferRequest{
		TransferFrom:   1,
		TransferTo:     2,
		TransferAmount: 30000,
	})

	var de *domain.DomainError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, "NOT_FOUND", de.Code)
	saldos.AssertCalled(t, "UpdateBalance", uint(1), int64(100000))
	transfers.AssertCalled(t, "Delete", uint(4))
}

func TestCreateTransfer_SelfTransferRejected(t *testing.T) {
	transfers := new(mocks.TransferRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(transfers, saldos, users)

	_, err := svc.CreateTransfer(context.Background(), &CreateTransferRequest{
		TransferFrom:   1,
		TransferTo:     1,
		TransferAmount: 30000,
	})

	var de *domain.DomainError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, "VALIDATION_ERROR", de.Code)
	transfers.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateTransfer_MovesBalancesByDifference(t *testing.T) {
	transfers := new(mocks.TransferRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(transfers, saldos, users)

	transfers.On("GetByID", uint(4)).
		Return(&models.Transfer{ID: 4, TransferFrom: 1, TransferTo: 2, TransferAmount: 30000}, nil)
	saldos.On("GetByUserID", uint(1)).Return(&models.Saldo{UserID: 1, TotalBalance: 70000}, nil)
	saldos.On("UpdateBalance", uint(1), int64(60000)).Return(&models.Saldo{UserID: 1, TotalBalance: 60000}, nil)
	saldos.On("GetByUserID", uint(2)).Return(&models.Saldo{UserID: 2, TotalBalance: 80000}, nil)
	saldos.On("UpdateBalance", uint(2), int64(90000)).Return(&models.Saldo{UserID: 2, TotalBalance: 90000}, nil)
	transfers.On("UpdateAmount", uint(4), int64(40000)).
		Return(&models.Transfer{ID: 4, TransferFrom: 1, TransferTo: 2, TransferAmount: 40000}, nil)

	updated, err := svc.UpdateTransfer(context.Background(), &UpdateTransferRequest{
		TransferID:     4,
		TransferAmount: 40000,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(40000), updated.TransferAmount)
	saldos.AssertExpectations(t)
}

func TestUpdateTransfer_ReceiverWriteFailureRestoresSender(t *testing.T) {
	transfers := new(mocks.TransferRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(transfers, saldos, users)

	boom := errors.New("receiver write failed")
	transfers.On("GetByID", uint(4)).
		Return(&models.Transfer{ID: 4, TransferFrom: 1, TransferTo: 2, TransferAmount: 30000}, nil)
	saldos.On("GetByUserID", uint(1)).Return(&models.Saldo{UserID: 1, TotalBalance: 70000}, nil)
	saldos.On("UpdateBalance", uint(1), int64(60000)).Return(&models.Saldo{UserID: 1, TotalBalance: 60000}, nil)
	saldos.On("GetByUserID", uint(2)).Return(&models.Saldo{UserID: 2, TotalBalance: 80000}, nil)
	saldos.On("UpdateBalance", uint(2), int64(90000)).Return(nil, boom)
	saldos.On("UpdateBalance", uint(1), int64(70000)).Return(&models.Saldo{UserID: 1, TotalBalance: 70000}, nil)

	_, err := svc.UpdateTransfer(context.Background(), &UpdateTransferRequest{
		TransferID:     4,
		TransferAmount: 40000,
	})

	assert.ErrorIs(t, err, boom)
	saldos.AssertCalled(t, "UpdateBalance", uint(1), int64(70000))
	transfers.AssertNotCalled(t, "UpdateAmount", mock.Anything, mock.Anything)
}

func TestUpdateTransfer_InsufficientSenderBalance(t *testing.T) {
	transfers := new(mocks.TransferRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(transfers, saldos, users)

	transfers.On("GetByID", uint(4)).
		Return(&models.Transfer{ID: 4, TransferFrom: 1, TransferTo: 2, TransferAmount: 30000}, nil)
	saldos.On("GetByUserID", uint(1)).Return(&models.Saldo{UserID: 1, TotalBalance: 5000}, nil)

	_, err := svc.UpdateTransfer(context.Background(), &UpdateTransferRequest{
		TransferID:     4,
		TransferAmount: 40000,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	saldos.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything)
}

func TestDeleteTransfer_RemovesLatestRecordInvolvingUser(t *testing.T) {
	transfers := new(mocks.TransferRepository)
	saldos := new(mocks.SaldoRepository)
	users := new(mocks.UserRepository)
	svc := newTestService(transfers, saldos, users)

	expectUsers(users, 2)
	transfers.On("GetByUserID", uint(2)).
		Return(&models.Transfer{ID: 4, TransferFrom: 1, TransferTo: 2, TransferAmount: 30000}, nil)
	transfers.On("Delete", uint(4)).Return(nil)

	err := svc.DeleteTransfer(context.Background(), 2)

	assert.NoError(t, err)
	transfers.AssertExpectations(t)
	// Neither balance moves when the journal entry is removed.
	saldos.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything)
}
