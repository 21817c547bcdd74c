package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/incial/stockflow/internal/config"
	"github.com/incial/stockflow/internal/domain"
	"github.com/redis/go-redis/v9"
)

// sessionKeyPrefix mirrors the identity key space of the original client,
// which stored the signed-in user under "sm_user".
const sessionKeyPrefix = "sm_user:"

// SessionStore persists the signed-in identity. Records have no expiry;
// they live until an explicit sign-out deletes them.
type SessionStore interface {
	Save(ctx context.Context, user domain.User) error
	Load(ctx context.Context, userID string) (domain.User, bool, error)
	Delete(ctx context.Context, userID string) error
}

type redisSessionStore struct {
	client *redis.Client
}

type memorySessionStore struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewSessionStore returns the redis-backed store when configured, otherwise
// an in-memory fallback that lives for the process lifetime.
func NewSessionStore(cfg config.SessionConfig) (SessionStore, error) {
	if !cfg.RedisEnabled {
		return NewMemorySessionStore(), nil
	}

	opts, err := buildSessionRedisOptions(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("session redis ping failed: %w", err)
	}
	return &redisSessionStore{client: client}, nil
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{users: make(map[string]domain.User)}
}

func buildSessionRedisOptions(cfg config.SessionConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid session redis url: %w", err)
		}
		return opt, nil
	}
	return &redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

func (s *redisSessionStore) Save(ctx context.Context, user domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	// No TTL: sessions survive until sign-out.
	if err := s.client.Set(ctx, sessionKeyPrefix+user.ID, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Load(ctx context.Context, userID string) (domain.User, bool, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+userID).Bytes()
	if err == redis.Nil {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, fmt.Errorf("redis get failed: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return domain.User{}, false, fmt.Errorf("decode session user: %w", err)
	}
	return user, true, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, userID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+userID).Err()
}

func (s *memorySessionStore) Save(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *memorySessionStore) Load(ctx context.Context, userID string) (domain.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	return user, ok, nil
}

func (s *memorySessionStore) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
	return nil
}
