package reorder

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ovees/eleganza-backend/pkg/db/models"
	"github.com/ovees/eleganza-backend/pkg/enums"
	pkgerrors "github.com/ovees/eleganza-backend/pkg/errors"
	"github.com/ovees/eleganza-backend/pkg/logger"
	"github.com/ovees/eleganza-backend/pkg/types"
)

type orderGetter interface {
	Get(ctx context.Context, sessionID string, orderID uuid.UUID) (*models.OrderRecord, error)
}

type cartAccess interface {
	Items(ctx context.Context, sessionID string) types.LineItems
	Replace(ctx context.Context, sessionID string, items types.LineItems) types.LineItems
}

// Service stages past orders for reordering and folds them back into the
// cart when the storefront next reads it.
type Service struct {
	slots  SlotStore
	orders orderGetter
	carts  cartAccess
	logg   *logger.Logger
	now    func() time.Time
}

func NewService(slots SlotStore, orders orderGetter, carts cartAccess, logg *logger.Logger) *Service {
	return &Service{
		slots:  slots,
		orders: orders,
		carts:  carts,
		logg:   logg,
		now:    time.Now,
	}
}

// Stage records the intent to reorder a past order. The order must belong to
// the session; the actual cart change happens on the next Hydrate.
func (s *Service) Stage(ctx context.Context, sessionID string, orderID uuid.UUID, mode enums.ReorderMode) error {
	if !mode.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown reorder mode")
	}

	record, err := s.orders.Get(ctx, sessionID, orderID)
	if err != nil {
		return err
	}

	pending := Pending{Items: record.Items, Mode: mode, StagedAt: s.now()}
	if err := s.slots.Stage(ctx, sessionID, pending); err != nil {
		return err
	}

	ctx = s.logg.WithFields(ctx, map[string]any{"order_id": orderID.String(), "mode": mode.String()})
	s.logg.Info(ctx, "reorder staged")
	return nil
}

// Hydrate returns the session's cart, applying a pending reorder first if one
// is staged. The boolean reports whether a reorder was folded in. A slot that
// cannot be read is skipped so a broken handoff never blocks the cart.
func (s *Service) Hydrate(ctx context.Context, sessionID string) (types.LineItems, bool) {
	pending, err := s.slots.Consume(ctx, sessionID)
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "pending reorder unreadable, skipping")
		return s.carts.Items(ctx, sessionID), false
	}
	if pending == nil {
		return s.carts.Items(ctx, sessionID), false
	}

	current := s.carts.Items(ctx, sessionID)
	next := Reconcile(current, pending.Items, pending.Mode)
	return s.carts.Replace(ctx, sessionID, next), true
}
