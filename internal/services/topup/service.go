// Package topup orchestrates topup journal entries and the balance updates
// they imply. A topup is journal-first: the record is written before the
// balance, and a failed balance write compensates by deleting the record.
package topup

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

type CreateTopupRequest struct {
	UserID      uint   `json:"user_id" validate:"required"`
	TopupNo     string `json:"topup_no"`
	TopupAmount int64  `json:"topup_amount" validate:"required,gt=0"`
	TopupMethod string `json:"topup_method" validate:"required,topup_method"`
}

type UpdateTopupRequest struct {
	UserID      uint  `json:"user_id" validate:"required"`
	TopupID     uint  `json:"topup_id" validate:"required"`
	TopupAmount int64 `json:"topup_amount" validate:"required,gt=0"`
}

type Service interface {
	GetTopups(page, pageSize int, search string) ([]models.Topup, utils.Pagination, error)
	GetTopup(id uint) (*models.Topup, error)
	GetTopupUser(userID uint) (*models.Topup, error)
	GetTopupUsers(userID uint) ([]models.Topup, error)
	CreateTopup(ctx context.Context, req *CreateTopupRequest) (*models.Topup, error)
	UpdateTopup(ctx context.Context, req *UpdateTopupRequest) (*models.Topup, error)
	DeleteTopup(ctx context.Context, userID uint) error
}

// saldoCache is the slice of the cache layer this service needs: every
// balance mutation invalidates the owning user's cached saldo.
type saldoCache interface {
	InvalidateSaldo(ctx context.Context, userID uint) error
}

type service struct {
	topups repositories.TopupRepository
	saldos repositories.SaldoRepository
	users  repositories.UserRepository
	cache  saldoCache
	sagas  *saga.Runner
	log    *zap.Logger

	// beforeBalanceWrite runs between reading a balance and writing it back.
	// Balance updates are read-modify-write without row locking, so two
	// concurrent writers can lose an update; tests hook this to force the
	// interleaving.
	beforeBalanceWrite func()
}

func NewService(
	topups repositories.TopupRepository,
	saldos repositories.SaldoRepository,
	users repositories.UserRepository,
	cache saldoCache,
	sagas *saga.Runner,
	log *zap.Logger,
) Service {
	return &service{
		topups: topups,
		saldos: saldos,
		users:  users,
		cache:  cache,
		sagas:  sagas,
		log:    log,
	}
}

func (s *service) GetTopups(page, pageSize int, search string) ([]models.Topup, utils.Pagination, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	topups, total, err := s.topups.FindAll(page, pageSize, search)
	if err != nil {
		return nil, utils.Pagination{}, domain.Store(err)
	}

	s.log.Info("topups retrieved", zap.Int("count", len(topups)), zap.Int64("total", total))
	return topups, utils.NewPagination(page, pageSize, total), nil
}

func (s *service) GetTopup(id uint) (*models.Topup, error) {
	topup, err := s.topups.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTopupNotFound) {
			return nil, domain.NotFound("topup", id)
		}
		return nil, domain.Store(err)
	}
	return topup, nil
}

func (s *service) GetTopupUser(userID uint) (*models.Topup, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}

	topup, err := s.topups.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTopupNotFound) {
			return nil, domain.NotFound("topup for user", userID)
		}
		return nil, domain.Store(err)
	}
	return topup, nil
}

func (s *service) GetTopupUsers(userID uint) ([]models.Topup, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}

	topups, err := s.topups.ListByUserID(userID)
	if err != nil {
		return nil, domain.Store(err)
	}
	return topups, nil
}

func (s *service) CreateTopup(ctx context.Context, req *CreateTopupRequest) (*models.Topup, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := s.checkUser(req.UserID); err != nil {
		metrics.RecordOperation("topup.create", "error")
		return nil, err
	}

	topupNo := req.TopupNo
	if topupNo == "" {
		topupNo = utils.GenerateTopupNo()
	}
	topup := &models.Topup{
		UserID:      req.UserID,
		TopupNo:     topupNo,
		TopupAmount: req.TopupAmount,
		TopupMethod: req.TopupMethod,
		TopupTime:   time.Now(),
	}

	steps := []saga.Step{
		{
			Name: "create-record",
			Run: func(ctx context.Context) error {
				if err := s.topups.Create(topup); err != nil {
					return domain.Store(err)
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.topups.Delete(topup.ID)
			},
		},
		{
			Name: "apply-balance",
			Run: func(ctx context.Context) error {
				return s.applyTopup(ctx, req.UserID, topup.TopupAmount)
			},
		},
	}

	if err := s.sagas.Execute(ctx, "topup.create", steps); err != nil {
		metrics.RecordOperation("topup.create", "error")
		return nil, err
	}

	s.invalidate(ctx, req.UserID)
	metrics.RecordOperation("topup.create", "success")
	s.log.Info("topup created",
		zap.Uint("user_id", req.UserID),
		zap.Int64("amount", topup.TopupAmount),
	)
	return topup, nil
}

// applyTopup credits the user's balance, creating the saldo row when the
// user has none yet.
func (s *service) applyTopup(ctx context.Context, userID uint, amount int64) error {
	current, err := s.saldos.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrSaldoNotFound) {
			saldo := &models.Saldo{UserID: userID, TotalBalance: amount}
			if createErr := s.saldos.Create(saldo); createErr != nil {
				return domain.Store(createErr)
			}
			return nil
		}
		// A failed lookup reads as a missing saldo here.
		return domain.NotFound("saldo for user", userID)
	}

	if s.beforeBalanceWrite != nil {
		s.beforeBalanceWrite()
	}
	if _, err := s.saldos.UpdateBalance(userID, current.TotalBalance+amount); err != nil {
		return domain.Store(err)
	}
	return nil
}

// UpdateTopup changes a topup's amount and moves the balance by the
// difference. The record is rewritten first; if the balance write then
// fails, the record amount is restored best effort. A missing saldo leaves
// the rewritten record in place.
func (s *service) UpdateTopup(ctx context.Context, req *UpdateTopupRequest) (*models.Topup, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := s.checkUser(req.UserID); err != nil {
		metrics.RecordOperation("topup.update", "error")
		return nil, err
	}

	existing, err := s.topups.GetByID(req.TopupID)
	if err != nil {
		metrics.RecordOperation("topup.update", "error")
		if errors.Is(err, repositories.ErrTopupNotFound) {
			return nil, domain.NotFound("topup", req.TopupID)
		}
		return nil, domain.Store(err)
	}

	difference := req.TopupAmount - existing.TopupAmount
	if err := s.topups.UpdateAmount(existing.ID, req.TopupAmount); err != nil {
		metrics.RecordOperation("topup.update", "error")
		return nil, domain.Store(err)
	}

	current, err := s.saldos.GetByUserID(req.UserID)
	if err != nil {
		metrics.RecordOperation("topup.update", "error")
		if errors.Is(err, repositories.ErrSaldoNotFound) {
			return nil, domain.NotFound("saldo for user", req.UserID)
		}
		return nil, domain.Store(err)
	}

	if s.beforeBalanceWrite != nil {
		s.beforeBalanceWrite()
	}
	if _, err := s.saldos.UpdateBalance(req.UserID, current.TotalBalance+difference); err != nil {
		metrics.CompensationsTotal.WithLabelValues("topup.update", "update-record").Inc()
		if rbErr := s.topups.UpdateAmount(existing.ID, existing.TopupAmount); rbErr != nil {
			metrics.CompensationFailures.WithLabelValues("topup.update", "update-record").Inc()
			s.log.Error("failed to restore topup amount after balance write failure",
				zap.Uint("topup_id", existing.ID),
				zap.Error(rbErr),
			)
		}
		metrics.RecordOperation("topup.update", "error")
		return nil, domain.Store(err)
	}

	s.invalidate(ctx, req.UserID)
	metrics.RecordOperation("topup.update", "success")

	updated, err := s.topups.GetByID(req.TopupID)
	if err != nil {
		if errors.Is(err, repositories.ErrTopupNotFound) {
			return nil, domain.NotFound("topup", req.TopupID)
		}
		return nil, domain.Store(err)
	}
	return updated, nil
}

// DeleteTopup removes the most recent topup record owned by the user. The
// balance is left as is: deleting a journal entry does not refund it.
func (s *service) DeleteTopup(ctx context.Context, userID uint) error {
	if err := s.checkUser(userID); err != nil {
		metrics.RecordOperation("topup.delete", "error")
		return err
	}

	existing, err := s.topups.GetByUserID(userID)
	if err != nil {
		metrics.RecordOperation("topup.delete", "error")
		if errors.Is(err, repositories.ErrTopupNotFound) {
			return domain.NotFound("topup for user", userID)
		}
		return domain.Store(err)
	}

	if err := s.topups.Delete(existing.ID); err != nil {
		metrics.RecordOperation("topup.delete", "error")
		return domain.Store(err)
	}

	metrics.RecordOperation("topup.delete", "success")
	s.log.Info("topup deleted", zap.Uint("user_id", userID), zap.Uint("topup_id", existing.ID))
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
