package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "frontdesk/errors"
)

// SessionStore holds the operator's directory token.
type SessionStore interface {
	GetToken(ctx context.Context) (string, error)
	// RefreshSession exchanges the current token for a new one and stores it.
	RefreshSession(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// TokenRefresher asks the directory for a fresh token.
type TokenRefresher interface {
	RefreshToken(ctx context.Context, token string) (string, error)
}

// MemorySessionStore keeps the token in process memory.
type MemorySessionStore struct {
	mu        sync.RWMutex
	token     string
	refresher TokenRefresher
}

func NewMemorySessionStore(token string, refresher TokenRefresher) *MemorySessionStore {
	return &MemorySessionStore{token: token, refresher: refresher}
}

func (s *MemorySessionStore) GetToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", apperrors.NewAppError(apperrors.ErrCodeMissingToken, "chưa đăng nhập", nil)
	}
	return s.token, nil
}

func (s *MemorySessionStore) RefreshSession(ctx context.Context) (string, error) {
	if s.refresher == nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeAuthExpired, "không thể làm mới phiên", nil)
	}
	s.mu.RLock()
	current := s.token
	s.mu.RUnlock()

	next, err := s.refresher.RefreshToken(ctx, current)
	if err != nil {
		return "", err
	}
	if next == "" {
		return "", apperrors.NewAppError(apperrors.ErrCodeAuthExpired, "directory trả về token rỗng", nil)
	}

	s.mu.Lock()
	s.token = next
	s.mu.Unlock()
	return next, nil
}

func (s *MemorySessionStore) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *MemorySessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}

const sessionKeyPrefix = "frontdesk:session:"

// RedisSessionStore keeps one token per operator session in redis.
type RedisSessionStore struct {
	client    *redis.Client
	sessionID string
	ttl       time.Duration
	refresher TokenRefresher
}

func NewRedisSessionStore(client *redis.Client, sessionID string, ttl time.Duration, refresher TokenRefresher) *RedisSessionStore {
	return &RedisSessionStore{client: client, sessionID: sessionID, ttl: ttl, refresher: refresher}
}

func (s *RedisSessionStore) key() string {
	return sessionKeyPrefix + s.sessionID
}

func (s *RedisSessionStore) GetToken(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key()).Result()
	if err == redis.Nil || (err == nil && token == "") {
		return "", apperrors.NewAppError(apperrors.ErrCodeMissingToken, "chưa đăng nhập", nil)
	}
	if err != nil {
		return "", fmt.Errorf("get session %s: %w", s.sessionID, err)
	}
	return token, nil
}

// SetToken stores the token handed over by the login screen.
func (s *RedisSessionStore) SetToken(ctx context.Context, token string) error {
	return s.client.Set(ctx, s.key(), token, s.ttl).Err()
}

func (s *RedisSessionStore) RefreshSession(ctx context.Context) (string, error) {
	if s.refresher == nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeAuthExpired, "không thể làm mới phiên", nil)
	}
	current, err := s.GetToken(ctx)
	if err != nil {
		return "", err
	}
	next, err := s.refresher.RefreshToken(ctx, current)
	if err != nil {
		return "", err
	}
	if next == "" {
		return "", apperrors.NewAppError(apperrors.ErrCodeAuthExpired, "directory trả về token rỗng", nil)
	}
	if err := s.SetToken(ctx, next); err != nil {
		return "", fmt.Errorf("store refreshed session %s: %w", s.sessionID, err)
	}
	return next, nil
}

func (s *RedisSessionStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key()).Err()
}

// SeedToken stores the token the operator authenticated with.
func SeedToken(ctx context.Context, store SessionStore, token string) error {
	switch s := store.(type) {
	case *MemorySessionStore:
		s.SetToken(token)
		return nil
	case *RedisSessionStore:
		return s.SetToken(ctx, token)
	}
	return fmt.Errorf("session store %T không hỗ trợ đặt token", store)
}
