package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/ovees/eleganza-backend/pkg/db/models"
	pkgerrors "github.com/ovees/eleganza-backend/pkg/errors"
	"github.com/ovees/eleganza-backend/pkg/logger"
	"github.com/ovees/eleganza-backend/pkg/pagination"
	"github.com/ovees/eleganza-backend/pkg/types"
)

// Service exposes a session's order history.
type Service struct {
	repo Repo
	logg *logger.Logger
}

func NewService(repo Repo, logg *logger.Logger) *Service {
	return &Service{repo: repo, logg: logg}
}

// Append records a checked-out cart against the session.
func (s *Service) Append(ctx context.Context, sessionID string, items types.LineItems) (*models.OrderRecord, error) {
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "an order needs at least one item")
	}

	record, err := s.repo.Append(ctx, sessionID, items)
	if err != nil {
		return nil, err
	}

	ctx = s.logg.WithFields(ctx, map[string]any{"order_id": record.ID.String(), "items": len(items)})
	s.logg.Info(ctx, "order recorded")
	return record, nil
}

// List returns the session's past orders, newest first.
func (s *Service) List(ctx context.Context, sessionID string, p pagination.Params) ([]models.OrderRecord, pagination.Meta, error) {
	return s.repo.List(ctx, sessionID, p)
}

// Get fetches one past order scoped to the session.
func (s *Service) Get(ctx context.Context, sessionID string, orderID uuid.UUID) (*models.OrderRecord, error) {
	return s.repo.Get(ctx, sessionID, orderID)
}
