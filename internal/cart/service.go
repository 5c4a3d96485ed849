package cart

import (
	"context"

	"github.com/ovees/eleganza-backend/pkg/logger"
	"github.com/ovees/eleganza-backend/pkg/types"
)

// Service applies cart mutations for a session. Every mutation follows the
// same shape: load the current snapshot, reduce it, persist the result.
//
// Persistence is deliberately forgiving. A snapshot that fails to load (store
// down, payload corrupt) degrades to an empty cart, and a failed save is
// logged but still returns the reduced snapshot, so the shopper's view keeps
// moving even when the store is having a bad moment.
type Service struct {
	store Store
	logg  *logger.Logger
}

func NewService(store Store, logg *logger.Logger) *Service {
	return &Service{store: store, logg: logg}
}

// Items returns the session's current snapshot.
func (s *Service) Items(ctx context.Context, sessionID string) types.LineItems {
	return s.load(ctx, sessionID)
}

// Add adjusts the quantity of the given line by delta, creating it from the
// snapshot when absent and delta is positive.
func (s *Service) Add(ctx context.Context, sessionID string, item types.LineItem, delta int) types.LineItems {
	return s.commit(ctx, sessionID, AddDelta(s.load(ctx, sessionID), item, delta))
}

// SetQuantity pins a line to an absolute quantity; zero or less removes it.
func (s *Service) SetQuantity(ctx context.Context, sessionID, key string, quantity int) types.LineItems {
	return s.commit(ctx, sessionID, SetQuantity(s.load(ctx, sessionID), key, quantity))
}

// Remove drops a line from the cart.
func (s *Service) Remove(ctx context.Context, sessionID, key string) types.LineItems {
	return s.commit(ctx, sessionID, Remove(s.load(ctx, sessionID), key))
}

// Replace swaps the whole snapshot.
func (s *Service) Replace(ctx context.Context, sessionID string, items types.LineItems) types.LineItems {
	return s.commit(ctx, sessionID, ReplaceAll(nil, items))
}

// Clear empties the session's cart.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		s.logg.Error(ctx, "clearing cart", err)
		return err
	}
	return nil
}

func (s *Service) load(ctx context.Context, sessionID string) types.LineItems {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart snapshot unreadable, starting empty")
		return types.LineItems{}
	}
	return items
}

func (s *Service) commit(ctx context.Context, sessionID string, next types.LineItems) types.LineItems {
	if err := s.store.Save(ctx, sessionID, next); err != nil {
		s.logg.Error(ctx, "persisting cart snapshot", err)
	}
	return next
}
