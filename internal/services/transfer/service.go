// Package transfer orchestrates transfers between two users. A transfer is
// the only operation touching two balance rows, and there is no transaction
// spanning them: the journal record is written first, the sender debited,
// the receiver credited, and any failure compensates the completed steps in
// reverse order.
package transfer

import (
	"context"
	"errors"
	"math"
	"time"

	domain "paygate/internal/errors"
	"paygate/internal/metrics"
	"paygate/internal/models"
	"paygate/internal/repositories"
	"paygate/internal/saga"
	"paygate/internal/utils"
	"paygate/internal/validation"

	"go.uber.org/zap"
)

type CreateTransferRequest struct {
	TransferFrom   uint  `json:"transfer_from" validate:"required"`
	TransferTo     uint  `json:"transfer_to" validate:"required,nefield=TransferFrom"`
	TransferAmount int64 `json:"transfer_amount" validate:"required,gt=0"`
}

type UpdateTransferRequest struct {
	TransferID     uint  `json:"transfer_id" validate:"required"`
	TransferAmount int64 `json:"transfer_amount" validate:"required,gt=0"`
}

type Service interface {
	GetTransfers(page, pageSize int, search string) ([]models.Transfer, utils.Pagination, error)
	GetTransfer(id uint) (*models.Transfer, error)
	GetTransferUser(userID uint) (*models.Transfer, error)
	GetTransferUsers(userID uint) ([]models.Transfer, error)
	CreateTransfer(ctx context.Context, req *CreateTransferRequest) (*models.Transfer, error)
	UpdateTransfer(ctx context.Context, req *UpdateTransferRequest) (*models.Transfer, error)
	DeleteTransfer(ctx context.Context, userID uint) error
}

type saldoCache interface {
	InvalidateSaldo(ctx context.Context, userID uint) error
}

type service struct {
	transfers repositories.TransferRepository
	saldos    repositories.SaldoRepository
	users     repositories.UserRepository
	cache     saldoCache
	sagas     *saga.Runner
	log       *zap.Logger

	// see topup.service: hook for forcing the read-modify-write race in tests.
	beforeBalanceWrite func()
}

func NewService(
	transfers repositories.TransferRepository,
	saldos repositories.SaldoRepository,
	users repositories.UserRepository,
	cache saldoCache,
	sagas *saga.Runner,
	log *zap.Logger,
) Service {
	return &service{
		transfers: transfers,
		saldos:    saldos,
		users:     users,
		cache:     cache,
		sagas:     sagas,
		log:       log,
	}
}

func (s *service) GetTransfers(page, pageSize int, search string) ([]models.Transfer, utils.Pagination, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	transfers, total, err := s.transfers.FindAll(page, pageSize, search)
	if err != nil {
		return nil, utils.Pagination{}, domain.Store(err)
	}

	s.log.Info("transfers retrieved", zap.Int("count", len(transfers)), zap.Int64("total", total))
	return transfers, utils.NewPagination(page, pageSize, total), nil
}

func (s *service) GetTransfer(id uint) (*models.Transfer, error) {
	transfer, err := s.transfers.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransferNotFound) {
			return nil, domain.NotFound("transfer", id)
		}
		return nil, domain.Store(err)
	}
	return transfer, nil
}

func (s *service) GetTransferUser(userID uint) (*models.Transfer, error) {
	if err := s.checkUser(userID, "user"); err != nil {
		return nil, err
	}

	transfer, err := s.transfers.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransferNotFound) {
			return nil, domain.NotFound("transfer for user", userID)
		}
		return nil, domain.Store(err)
	}
	return transfer, nil
}

func (s *service) GetTransferUsers(userID uint) ([]models.Transfer, error) {
	if err := s.checkUser(userID, "user"); err != nil {
		return nil, err
	}

	transfers, err := s.transfers.ListByUserID(userID)
	if err != nil {
		return nil, domain.Store(err)
	}
	return transfers, nil
}

func (s *service) CreateTransfer(ctx context.Context, req *CreateTransferRequest) (*models.Transfer, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := s.checkUser(req.TransferFrom, "sender"); err != nil {
		metrics.RecordOperation("transfer.create", "error")
		return nil, err
	}
	if err := s.checkUser(req.TransferTo, "receiver"); err != nil {
		metrics.RecordOperation("transfer.create", "error")
		return nil, err
	}

	transfer := &models.Transfer{
		TransferFrom:   req.TransferFrom,
		TransferTo:     req.TransferTo,
		TransferAmount: req.TransferAmount,
		TransferTime:   time.Now(),
	}

	// Captured by debit-sender so its compensation restores the balance read
	// at debit time.
	var senderBalance int64

	steps := []saga.Step{
		{
			Name: "create-record",
			Run: func(ctx context.Context) error {
				if err := s.transfers.Create(transfer); err != nil {
					return domain.Store(err)
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.transfers.Delete(transfer.ID)
			},
		},
		{
			Name: "debit-sender",
			Run: func(ctx context.Context) error {
				saldo, err := s.saldos.GetByUserID(req.TransferFrom)
				if err != nil {
					return domain.NotFound("saldo for sender", req.TransferFrom)
				}
				senderBalance = saldo.TotalBalance

				if saldo.TotalBalance < req.TransferAmount {
					return domain.ErrInsufficientBalance
				}

				if s.beforeBalanceWrite != nil {
					s.beforeBalanceWrite()
				}
				if _, err := s.saldos.UpdateBalance(req.TransferFrom, saldo.TotalBalance-req.TransferAmount); err != nil {
					return domain.Store(err)
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				_, err := s.saldos.UpdateBalance(req.TransferFrom, senderBalance)
				return err
			},
		},
		{
			Name: "credit-receiver",
			Run: func(ctx context.Context) error {
				saldo, err := s.saldos.GetByUserID(req.TransferTo)
				if err != nil {
					return domain.NotFound("saldo for receiver", req.TransferTo)
				}

				if saldo.TotalBalance > math.MaxInt64-req.TransferAmount {
					return domain.ErrBalanceOverflow
				}

				if s.beforeBalanceWrite != nil {
					s.beforeBalanceWrite()
				}
				if _, err := s.saldos.UpdateBalance(req.TransferTo, saldo.TotalBalance+req.TransferAmount); err != nil {
					return domain.Store(err)
				}
				return nil
			},
		},
	}

	if err := s.sagas.Execute(ctx, "transfer.create", steps); err != nil {
		metrics.RecordOperation("transfer.create", "error")
		return nil, err
	}

	s.invalidate(ctx, req.TransferFrom)
	s.invalidate(ctx, req.TransferTo)
	metrics.RecordOperation("transfer.create", "success")
	s.log.Info("transfer completed",
		zap.Uint("transfer_id", transfer.ID),
		zap.Uint("from", req.TransferFrom),
		zap.Uint("to", req.TransferTo),
		zap.Int64("amount", req.TransferAmount),
	)
	return transfer, nil
}

// UpdateTransfer moves both balances by the difference between the new and
// recorded amount, then rewrites the record. The balances move before the
// record: a failed record write leaves the balances at their new values, and
// a failed receiver lookup leaves the sender already debited. Only a failed
// receiver write restores the sender, best effort.
func (s *service) UpdateTransfer(ctx context.Context, req *UpdateTransferRequest) (*models.Transfer, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	transfer, err := s.transfers.GetByID(req.TransferID)
	if err != nil {
		metrics.RecordOperation("transfer.update", "error")
		return nil, domain.NotFound("transfer", req.TransferID)
	}

	difference := req.TransferAmount - transfer.TransferAmount

	senderSaldo, err := s.saldos.GetByUserID(transfer.TransferFrom)
	if err != nil {
		metrics.RecordOperation("transfer.update", "error")
		return nil, domain.NotFound("saldo for sender", transfer.TransferFrom)
	}

	newSenderBalance := senderSaldo.TotalBalance - difference
	if newSenderBalance < 0 {
		metrics.RecordOperation("transfer.update", "error")
		return nil, domain.ErrInsufficientBalance
	}

	if s.beforeBalanceWrite != nil {
		s.beforeBalanceWrite()
	}
	if _, err := s.saldos.UpdateBalance(transfer.TransferFrom, newSenderBalance); err != nil {
		metrics.RecordOperation("transfer.update", "error")
		return nil, domain.Store(err)
	}

	receiverSaldo, err := s.saldos.GetByUserID(transfer.TransferTo)
	if err != nil {
		metrics.RecordOperation("transfer.update", "error")
		return nil, domain.NotFound("saldo for receiver", transfer.TransferTo)
	}

	if _, err := s.saldos.UpdateBalance(transfer.TransferTo, receiverSaldo.TotalBalance+difference); err != nil {
		metrics.CompensationsTotal.WithLabelValues("transfer.update", "debit-sender").Inc()
		if _, rbErr := s.saldos.UpdateBalance(transfer.TransferFrom, senderSaldo.TotalBalance); rbErr != nil {
			metrics.CompensationFailures.WithLabelValues("transfer.update", "debit-sender").Inc()
			s.log.Error("failed to restore sender balance after receiver write failure",
				zap.Uint("sender", transfer.TransferFrom),
				zap.Error(rbErr),
			)
		}
		metrics.RecordOperation("transfer.update", "error")
		return nil, domain.Store(err)
	}

	updated, err := s.transfers.UpdateAmount(req.TransferID, req.TransferAmount)
	if err != nil {
		metrics.RecordOperation("transfer.update", "error")
		return nil, domain.Store(err)
	}

	s.invalidate(ctx, transfer.TransferFrom)
	s.invalidate(ctx, transfer.TransferTo)
	metrics.RecordOperation("transfer.update", "success")
	return updated, nil
}

// DeleteTransfer removes the most recent transfer the user participated in.
// Neither balance moves.
func (s *service) DeleteTransfer(ctx context.Context, userID uint) error {
	if err := s.checkUser(userID, "user"); err != nil {
		metrics.RecordOperation("transfer.delete", "error")
		return err
	}

	existing, err := s.transfers.GetByUserID(userID)
	if err != nil {
		metrics.RecordOperation("transfer.delete", "error")
		if errors.Is(err, repositories.ErrTransferNotFound) {
			return domain.NotFound("transfer for user", userID)
		}
		return domain.Store(err)
	}

	if err := s.transfers.Delete(existing.ID); err != nil {
		metrics.RecordOperation("transfer.delete", "error")
		return domain.Store(err)
	}

	metrics.RecordOperation("transfer.delete", "success")
	s.log.Info("transfer deleted", zap.Uint("user_id", userID), zap.Uint("transfer_id", existing.ID))
	return nil
}

func (s *service) checkUser(userID uint, role string) error {
	if _, err := s.users.GetByID(userID); err != nil {
		return domain.NotFound(role, userID)
	}
	return nil
}

func (s *service) invalidate(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSaldo(ctx, userID); err != nil {
		s.log.Warn("saldo cache invalidation failed", zap.Uint("user_id", userID), zap.Error(err))
	}
}
