// Package saldo manages the balance rows directly. The ledger services move
// balances as side effects of journal entries; this service is the
// administrative surface for the rows themselves, plus the cached read path.
package saldo

import (
	"context"
	"errors"

	domain "paygate/internal/errors"
	"paygate/internal/metrics"
	"paygate/internal/models"
	"paygate/internal/repositories"
	"paygate/internal/utils"
	"paygate/internal/validation"

	"go.uber.org/zap"
)

type CreateSaldoRequest struct {
	UserID       uint  `json:"user_id" validate:"required"`
	TotalBalance int64 `json:"total_balance" validate:"gte=0"`
}

type UpdateSaldoRequest struct {
	UserID       uint  `json:"user_id" validate:"required"`
	SaldoID      uint  `json:"saldo_id" validate:"required"`
	TotalBalance int64 `json:"total_balance" validate:"gte=0"`
}

type Service interface {
	GetSaldos(page, pageSize int, search string) ([]models.Saldo, utils.Pagination, error)
	GetSaldo(id uint) (*models.Saldo, error)
	GetSaldoUser(ctx context.Context, userID uint) (*models.Saldo, error)
	GetSaldoUsers(userID uint) ([]models.Saldo, error)
	CreateSaldo(ctx context.Context, req *CreateSaldoRequest) (*models.Saldo, error)
	UpdateSaldo(ctx context.Context, req *UpdateSaldoRequest) (*models.Saldo, error)
	DeleteSaldo(ctx context.Context, userID uint) error
}

// saldoCache is the read-through cache for balance rows.
type saldoCache interface {
	GetSaldo(ctx context.Context, userID uint) (*models.Saldo, bool, error)
	SetSaldo(ctx context.Context, saldo *models.Saldo) error
	InvalidateSaldo(ctx context.Context, userID uint) error
}

type service struct {
	saldos repositories.SaldoRepository
	users  repositories.UserRepository
	cache  saldoCache
	log    *zap.Logger
}

func NewService(
	saldos repositories.SaldoRepository,
	users repositories.UserRepository,
	cacheService saldoCache,
	log *zap.Logger,
) Service {
	return &service{
		saldos: saldos,
		users:  users,
		cache:  cacheService,
		log:    log,
	}
}

func (s *service) GetSaldos(page, pageSize int, search string) ([]models.Saldo, utils.Pagination, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	saldos, total, err := s.saldos.FindAll(page, pageSize, search)
	if err != nil {
		return nil, utils.Pagination{}, domain.Store(err)
	}

	s.log.Info("saldos retrieved", zap.Int("count", len(saldos)), zap.Int64("total", total))
	return saldos, utils.NewPagination(page, pageSize, total), nil
}

func (s *service) GetSaldo(id uint) (*models.Saldo, error) {
	saldo, err := s.saldos.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrSaldoNotFound) {
			return nil, domain.NotFound("saldo", id)
		}
		return nil, domain.Store(err)
	}
	return saldo, nil
}

// GetSaldoUser returns a user's balance, serving from the redis cache when
// warm. The cache is only a read accelerator: any error on it falls through
// to the store.
func (s *service) GetSaldoUser(ctx context.Context, userID uint) (*models.Saldo, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, ok, err := s.cache.GetSaldo(ctx, userID); err == nil && ok {
			return cached, nil
		} else if err != nil {
			s.log.Warn("saldo cache read failed", zap.Uint("user_id", userID), zap.Error(err))
		}
	}

	saldo, err := s.saldos.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrSaldoNotFound) {
			return nil, domain.NotFound("saldo for user", userID)
		}
		return nil, domain.Store(err)
	}

	if s.cache != nil {
		if err := s.cache.SetSaldo(ctx, saldo); err != nil {
			s.log.Warn("saldo cache write failed", zap.Uint("user_id", userID), zap.Error(err))
		}
	}
	return saldo, nil
}

func (s *service) GetSaldoUsers(userID uint) ([]models.Saldo, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}

	saldos, err := s.saldos.ListByUserID(userID)
	if err != nil {
		return nil, domain.Store(err)
	}
	return saldos, nil
}

func (s *service) CreateSaldo(ctx context.Context, req *CreateSaldoRequest) (*models.Saldo, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := s.checkUser(req.UserID); err != nil {
		metrics.RecordOperation("saldo.create", "error")
		return nil, err
	}

	saldo := &models.Saldo{
		UserID:       req.UserID,
		TotalBalance: req.TotalBalance,
	}
	if err := s.saldos.Create(saldo); err != nil {
		metrics.RecordOperation("saldo.create", "error")
		return nil, domain.Store(err)
	}

	metrics.RecordOperation("saldo.create", "success")
	s.log.Info("saldo created", zap.Uint("user_id", req.UserID), zap.Int64("balance", req.TotalBalance))
	return saldo, nil
}

func (s *service) UpdateSaldo(ctx context.Context, req *UpdateSaldoRequest) (*models.Saldo, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := s.checkUser(req.UserID); err != nil {
		metrics.RecordOperation("saldo.update", "error")
		return nil, err
	}

	existing, err := s.saldos.GetByID(req.SaldoID)
	if err != nil {
		metrics.RecordOperation("saldo.update", "error")
		if errors.Is(err, repositories.ErrSaldoNotFound) {
			return nil, domain.NotFound("saldo", req.SaldoID)
		}
		return nil, domain.Store(err)
	}

	existing.UserID = req.UserID
	existing.TotalBalance = req.TotalBalance
	if err := s.saldos.Update(existing); err != nil {
		metrics.RecordOperation("saldo.update", "error")
		return nil, domain.Store(err)
	}

	s.invalidate(ctx, req.UserID)
	metrics.RecordOperation("saldo.update", "success")
	s.log.Info("saldo updated", zap.Uint("saldo_id", req.SaldoID), zap.Int64("balance", req.TotalBalance))
	return existing, nil
}

// DeleteSaldo removes the balance row owned by the user.
func (s *service) DeleteSaldo(ctx context.Context, userID uint) error {
	if err := s.checkUser(userID); err != nil {
		metrics.RecordOperation("saldo.delete", "error")
		return err
	}

	existing, err := s.saldos.GetByUserID(userID)
	if err != nil {
		metrics.RecordOperation("saldo.delete", "error")
		if errors.Is(err, repositories.ErrSaldoNotFound) {
			return domain.NotFound("saldo for user", userID)
		}
		return domain.Store(err)
	}

	if err := s.saldos.Delete(existing.ID); err != nil {
		metrics.RecordOperation("saldo.delete", "error")
		return domain.Store(err)
	}

	s.invalidate(ctx, userID)
	metrics.RecordOperation("saldo.delete", "success")
	s.log.Info("saldo deleted", zap.Uint("user_id", userID), zap.Uint("saldo_id", existing.ID))
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
