package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	pkgerrors "github.com/ovees/eleganza-backend/pkg/errors"
	"github.com/ovees/eleganza-backend/pkg/redis"
	"github.com/ovees/eleganza-backend/pkg/types"
)

// Store persists session cart snapshots. A missing cart is not an error; it
// loads as an empty snapshot.
type Store interface {
	Load(ctx context.Context, sessionID string) (types.LineItems, error)
	Save(ctx context.Context, sessionID string, items types.LineItems) error
	Clear(ctx context.Context, sessionID string) error
}

type keyValue interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(sessionID string) string
}

// RedisStore keeps cart snapshots in Redis under a per-session key with a
// sliding TTL, mirroring the storefront's historical 30-day cart expiry.
type RedisStore struct {
	kv  keyValue
	ttl time.Duration
}

// NewRedisStore wires a cart store over the shared Redis client.
func NewRedisStore(kv keyValue, ttl time.Duration) *RedisStore {
	return &RedisStore{kv: kv, ttl: ttl}
}

// Load reads the session's snapshot. A missing key yields an empty cart; a
// snapshot that no longer parses is surfaced as a conflict so the caller can
// decide to discard it.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (types.LineItems, error) {
	raw, err := s.kv.Get(ctx, s.kv.CartKey(sessionID))
	if errors.Is(err, redis.Nil) {
		return types.LineItems{}, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart snapshot")
	}

	var items types.LineItems
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "decode cart snapshot")
	}
	if items == nil {
		items = types.LineItems{}
	}
	return items, nil
}

// Save writes the snapshot and refreshes the TTL.
func (s *RedisStore) Save(ctx context.Context, sessionID string, items types.LineItems) error {
	if items == nil {
		items = types.LineItems{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart snapshot")
	}
	if err := s.kv.Set(ctx, s.kv.CartKey(sessionID), payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart snapshot")
	}
	return nil
}

// Clear drops the session's snapshot.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.kv.Del(ctx, s.kv.CartKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart snapshot")
	}
	return nil
}
