// Package withdraw orchestrates withdraw journal entries. Unlike topups and
// transfers, a withdraw is balance-first: the saldo is debited before the
// journal record is written, and the debit step carries no compensation, so
// a failed record write leaves the balance already reduced.
package withdraw

import (
	"context"
	"errors"
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

type CreateWithdrawRequest struct {
	UserID         uint      `json:"user_id" validate:"required"`
	WithdrawAmount int64     `json:"withdraw_amount" validate:"required,gt=0"`
	WithdrawTime   time.Time `json:"withdraw_time"`
}

type UpdateWithdrawRequest struct {
	UserID         uint  `json:"user_id" validate:"required"`
	WithdrawID     uint  `json:"withdraw_id" validate:"required"`
	WithdrawAmount int64 `json:"withdraw_amount" validate:"required,gt=0"`
}

type Service interface {
	GetWithdraws(page, pageSize int, search string) ([]models.Withdraw, utils.Pagination, error)
	GetWithdraw(id uint) (*models.Withdraw, error)
	GetWithdrawUser(userID uint) (*models.Withdraw, error)
	GetWithdrawUsers(userID uint) ([]models.Withdraw, error)
	CreateWithdraw(ctx context.Context, req *CreateWithdrawRequest) (*models.Withdraw, error)
	UpdateWithdraw(ctx context.Context, req *UpdateWithdrawRequest) (*models.Withdraw, error)
	DeleteWithdraw(ctx context.Context, userID uint) error
}

type saldoCache interface {
	InvalidateSaldo(ctx context.Context, userID uint) error
}

type service struct {
	withdraws repositories.WithdrawRepository
	saldos    repositories.SaldoRepository
	users     repositories.UserRepository
	cache     saldoCache
	sagas     *saga.Runner
	log       *zap.Logger

	// see topup.service: hook for forcing the read-modify-write race in tests.
	beforeBalanceWrite func()
}

func NewService(
	withdraws repositories.WithdrawRepository,
	saldos repositories.SaldoRepository,
	users repositories.UserRepository,
	cache saldoCache,
	sagas *saga.Runner,
	log *zap.Logger,
) Service {
	return &service{
		withdraws: withdraws,
		saldos:    saldos,
		users:     users,
		cache:     cache,
		sagas:     sagas,
		log:       log,
	}
}

func (s *service) GetWithdraws(page, pageSize int, search string) ([]models.Withdraw, utils.Pagination, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	withdraws, total, err := s.withdraws.FindAll(page, pageSize, search)
	if err != nil {
		return nil, utils.Pagination{}, domain.Store(err)
	}

	s.log.Info("withdraws retrieved", zap.Int("count", len(withdraws)), zap.Int64("total", total))
	return withdraws, utils.NewPagination(page, pageSize, total), nil
}

func (s *service) GetWithdraw(id uint) (*models.Withdraw, error) {
	withdraw, err := s.withdraws.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrWithdrawNotFound) {
			return nil, domain.NotFound("withdraw", id)
		}
		return nil, domain.Store(err)
	}
	return withdraw, nil
}

func (s *service) GetWithdrawUser(userID uint) (*models.Withdraw, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}

	withdraw, err := s.withdraws.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrWithdrawNotFound) {
			return nil, domain.NotFound("withdraw for user", userID)
		}
		return nil, domain.Store(err)
	}
	return withdraw, nil
}

func (s *service) GetWithdrawUsers(userID uint) ([]models.Withdraw, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}

	withdraws, err := s.withdraws.ListByUserID(userID)
	if err != nil {
		return nil, domain.Store(err)
	}
	return withdraws, nil
}

func (s *service) CreateWithdraw(ctx context.Context, req *CreateWithdrawRequest) (*models.Withdraw, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	withdrawTime := req.WithdrawTime
	if withdrawTime.IsZero() {
		withdrawTime = time.Now()
	}
	withdraw := &models.Withdraw{
		UserID:         req.UserID,
		WithdrawAmount: req.WithdrawAmount,
		WithdrawTime:   withdrawTime,
	}

	steps := []saga.Step{
		{
			// Compensate is nil: once the balance is debited it stays
			// debited, even if the record write below fails.
			Name: "debit-balance",
			Run: func(ctx context.Context) error {
				return s.debitBalance(req.UserID, req.WithdrawAmount)
			},
		},
		{
			Name: "create-record",
			Run: func(ctx context.Context) error {
				if err := s.withdraws.Create(withdraw); err != nil {
					return domain.Store(err)
				}
				return nil
			},
		},
	}

	if err := s.sagas.Execute(ctx, "withdraw.create", steps); err != nil {
		metrics.RecordOperation("withdraw.create", "error")
		return nil, err
	}

	s.invalidate(ctx, req.UserID)
	metrics.RecordOperation("withdraw.create", "success")
	s.log.Info("withdraw created",
		zap.Uint("user_id", req.UserID),
		zap.Int64("amount", req.WithdrawAmount),
	)
	return withdraw, nil
}

func (s *service) debitBalance(userID uint, amount int64) error {
	saldo, err := s.saldos.GetByUserID(userID)
	if err != nil {
		return domain.NotFound("saldo for user", userID)
	}

	if saldo.TotalBalance < amount {
		s.log.Warn("insufficient balance for withdraw",
			zap.Uint("user_id", userID),
			zap.Int64("balance", saldo.TotalBalance),
			zap.Int64("amount", amount),
		)
		return domain.ErrInsufficientBalance
	}

	if s.beforeBalanceWrite != nil {
		s.beforeBalanceWrite()
	}
	now := time.Now()
	if _, err := s.saldos.UpdateWithdraw(userID, saldo.TotalBalance-amount, &amount, &now); err != nil {
		return domain.Store(err)
	}
	return nil
}

// UpdateWithdraw rewrites a withdraw record and debits the new amount
// against the current balance. The new balance is current minus the new
// amount; the old withdraw is not credited back first. The record is
// rewritten before the balance; if the record write fails the balance is
// rewritten at its current total with the withdraw metadata cleared.
func (s *service) UpdateWithdraw(ctx context.Context, req *UpdateWithdrawRequest) (*models.Withdraw, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.withdraws.GetByID(req.WithdrawID); err != nil {
		metrics.RecordOperation("withdraw.update", "error")
		return nil, domain.NotFound("withdraw", req.WithdrawID)
	}

	saldo, err := s.saldos.GetByUserID(req.UserID)
	if err != nil {
		metrics.RecordOperation("withdraw.update", "error")
		return nil, domain.NotFound("saldo for user", req.UserID)
	}

	newTotal := saldo.TotalBalance - req.WithdrawAmount

	updated, err := s.withdraws.Update(req.WithdrawID, req.WithdrawAmount, time.Now())
	if err != nil {
		metrics.CompensationsTotal.WithLabelValues("withdraw.update", "update-record").Inc()
		if _, rbErr := s.saldos.UpdateWithdraw(req.UserID, saldo.TotalBalance, nil, nil); rbErr != nil {
			metrics.CompensationFailures.WithLabelValues("withdraw.update", "update-record").Inc()
			s.log.Error("failed to reset saldo after withdraw update failure",
				zap.Uint("user_id", req.UserID),
				zap.Error(rbErr),
			)
			metrics.RecordOperation("withdraw.update", "error")
			return nil, domain.Store(rbErr)
		}
		s.log.Error("withdraw update failed, saldo reset",
			zap.Uint("withdraw_id", req.WithdrawID),
			zap.Error(err),
		)
		metrics.RecordOperation("withdraw.update", "error")
		return nil, domain.Store(err)
	}

	if s.beforeBalanceWrite != nil {
		s.beforeBalanceWrite()
	}
	now := time.Now()
	if _, err := s.saldos.UpdateWithdraw(req.UserID, newTotal, &req.WithdrawAmount, &now); err != nil {
		metrics.RecordOperation("withdraw.update", "error")
		return nil, domain.Store(err)
	}

	s.invalidate(ctx, req.UserID)
	metrics.RecordOperation("withdraw.update", "success")
	return updated, nil
}

// DeleteWithdraw removes the most recent withdraw record owned by the user.
// The balance is not credited back.
func (s *service) DeleteWithdraw(ctx context.Context, userID uint) error {
	if err := s.checkUser(userID); err != nil {
		metrics.RecordOperation("withdraw.delete", "error")
		return err
	}

	existing, err := s.withdraws.GetByUserID(userID)
	if err != nil {
		metrics.RecordOperation("withdraw.delete", "error")
		if errors.Is(err, repositories.ErrWithdrawNotFound) {
			return domain.NotFound("withdraw for user", userID)
		}
		return domain.Store(err)
	}

	if err := s.withdraws.Delete(existing.ID); err != nil {
		metrics.RecordOperation("withdraw.delete", "error")
		return domain.Store(err)
	}

	metrics.RecordOperation("withdraw.delete", "success")
	s.log.Info("withdraw deleted", zap.Uint("user_id", userID), zap.Uint("withdraw_id", existing.ID))
	return nil
}

func (s *service) checkUser(userID uint) error {
	if _, err := s.users.GetByID(userID); err != nil {
		return domain.NotFound("user", userID)
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
