package reorder

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ovees/eleganza-backend/pkg/enums"
	pkgerrors "github.com/ovees/eleganza-backend/pkg/errors"
	"github.com/ovees/eleganza-backend/pkg/redis"
	"github.com/ovees/eleganza-backend/pkg/types"
)

// Pending is a staged reorder waiting for the cart to pick it up. Staging and
// consumption are separate requests, so the payload lives in its own slot
// rather than being applied to the cart immediately.
type Pending struct {
	Items    types.LineItems   `json:"items"`
	Mode     enums.ReorderMode `json:"mode"`
	StagedAt time.Time         `json:"staged_at"`
}

// SlotStore holds at most one pending reorder per session. Consuming the slot
// empties it; a second consume finds nothing.
type SlotStore interface {
	Stage(ctx context.Context, sessionID string, pending Pending) error
	Consume(ctx context.Context, sessionID string) (*Pending, error)
}

type slotKV interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	GetDel(ctx context.Context, key string) (string, error)
	PendingReorderKey(sessionID string) string
}

// RedisSlot keeps the pending reorder in Redis with a short TTL so abandoned
// handoffs expire on their own.
type RedisSlot struct {
	kv  slotKV
	ttl time.Duration
}

func NewRedisSlot(kv slotKV, ttl time.Duration) *RedisSlot {
	return &RedisSlot{kv: kv, ttl: ttl}
}

func (s *RedisSlot) Stage(ctx context.Context, sessionID string, pending Pending) error {
	payload, err := json.Marshal(pending)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode pending reorder")
	}
	if err := s.kv.Set(ctx, s.kv.PendingReorderKey(sessionID), payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "stage pending reorder")
	}
	return nil
}

// Consume atomically reads and clears the slot. An empty slot yields nil.
func (s *RedisSlot) Consume(ctx context.Context, sessionID string) (*Pending, error) {
	raw, err := s.kv.GetDel(ctx, s.kv.PendingReorderKey(sessionID))
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "consume pending reorder")
	}

	var pending Pending
	if err := json.Unmarshal([]byte(raw), &pending); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "decode pending reorder")
	}
	return &pending, nil
}
