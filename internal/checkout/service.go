package checkout

import (
	"context"

	"github.com/ovees/eleganza-backend/pkg/db/models"
	pkgerrors "github.com/ovees/eleganza-backend/pkg/errors"
	"github.com/ovees/eleganza-backend/pkg/logger"
	"github.com/ovees/eleganza-backend/pkg/types"
)

type cartAccess interface {
	Items(ctx context.Context, sessionID string) types.LineItems
	Clear(ctx context.Context, sessionID string) error
}

type orderAppender interface {
	Append(ctx context.Context, sessionID string, items types.LineItems) (*models.OrderRecord, error)
}

// Result is the checkout handoff returned to the storefront. The client opens
// the WhatsApp URL; the order itself is already recorded server-side.
type Result struct {
	OrderID     string          `json:"order_id"`
	Items       types.LineItems `json:"items"`
	Summary     Summary         `json:"summary"`
	WhatsAppURL string          `json:"whatsapp_url"`
}

// Service turns a session cart into a recorded order plus a WhatsApp handoff
// link, then empties the cart.
type Service struct {
	carts          cartAccess
	orders         orderAppender
	logg           *logger.Logger
	whatsappNumber string
}

func NewService(carts cartAccess, orders orderAppender, whatsappNumber string, logg *logger.Logger) *Service {
	return &Service{
		carts:          carts,
		orders:         orders,
		whatsappNumber: whatsappNumber,
		logg:           logg,
	}
}

// Quote prices the session's current cart without committing anything.
func (s *Service) Quote(ctx context.Context, sessionID string) (types.LineItems, Summary) {
	items := s.carts.Items(ctx, sessionID)
	return items, Summarize(items)
}

// Checkout records the current cart as an order, clears the cart and returns
// the WhatsApp handoff. An empty cart cannot check out.
func (s *Service) Checkout(ctx context.Context, sessionID string) (*Result, error) {
	items := s.carts.Items(ctx, sessionID)
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	summary := Summarize(items)
	record, err := s.orders.Append(ctx, sessionID, items)
	if err != nil {
		return nil, err
	}

	// The order is already durable; a failed cart clear only risks the
	// shopper seeing stale lines, so it is logged and not surfaced.
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "clearing cart after checkout")
	}

	message := BuildOrderMessage(items, summary)
	result := &Result{
		OrderID:     record.ID.String(),
		Items:       items,
		Summary:     summary,
		WhatsAppURL: BuildWhatsAppURL(s.whatsappNumber, message),
	}

	ctx = s.logg.WithFields(ctx, map[string]any{"order_id": result.OrderID, "total": summary.Total})
	s.logg.Info(ctx, "checkout completed")
	return result, nil
}
