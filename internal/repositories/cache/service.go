// Package cache holds the redis-backed read cache for saldo rows. Every
// balance mutation must invalidate the owning user's entry; reads tolerate a
// cold or unreachable cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"paygate/internal/models"

	"github.com/redis/go-redis/v9"
)

type Service struct {
	client *redis.Client
	ttl    time.Duration
}

func NewService(client *redis.Client, defaultTTL time.Duration) *Service {
	return &Service{client: client, ttl: defaultTTL}
}

func saldoKey(userID uint) string {
	return fmt.Sprintf("saldo:user:%d", userID)
}

// GetSaldo returns the cached saldo for the user, or (nil, false, nil) on a
// cache miss.
func (s *Service) GetSaldo(ctx context.Context, userID uint) (*models.Saldo, bool, error) {
	data, err := s.client.Get(ctx, saldoKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached saldo: %w", err)
	}

	var saldo models.Saldo
	if err := json.Unmarshal(data, &saldo); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached saldo: %w", err)
	}
	return &saldo, true, nil
}

func (s *Service) SetSaldo(ctx context.Context, saldo *models.Saldo) error {
	data, err := json.Marshal(saldo)
	if err != nil {
		return fmt.Errorf("failed to marshal saldo: %w", err)
	}
	return s.client.Set(ctx, saldoKey(saldo.UserID), data, s.ttl).Err()
}

func (s *Service) InvalidateSaldo(ctx context.Context, userID uint) error {
	return s.client.Del(ctx, saldoKey(userID)).Err()
}

func (s *Service) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *Service) Close() error {
	return s.client.Close()
}
