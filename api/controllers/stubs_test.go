package controllers

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/ovees/eleganza-backend/internal/cart"
	"github.com/ovees/eleganza-backend/internal/catalog"
	"github.com/ovees/eleganza-backend/internal/checkout"
	"github.com/ovees/eleganza-backend/pkg/db/models"
	"github.com/ovees/eleganza-backend/pkg/enums"
	pkgerrors "github.com/ovees/eleganza-backend/pkg/errors"
	"github.com/ovees/eleganza-backend/pkg/logger"
	"github.com/ovees/eleganza-backend/pkg/pagination"
	"github.com/ovees/eleganza-backend/pkg/types"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

type stubCartService struct {
	items types.LineItems
}

func (s *stubCartService) Add(_ context.Context, _ string, item types.LineItem, delta int) types.LineItems {
	s.items = cart.AddDelta(s.items, item, delta)
	return s.items
}

func (s *stubCartService) SetQuantity(_ context.Context, _ string, key string, quantity int) types.LineItems {
	s.items = cart.SetQuantity(s.items, key, quantity)
	return s.items
}

func (s *stubCartService) Remove(_ context.Context, _ string, key string) types.LineItems {
	s.items = cart.Remove(s.items, key)
	return s.items
}

func (s *stubCartService) Replace(_ context.Context, _ string, items types.LineItems) types.LineItems {
	s.items = cart.ReplaceAll(s.items, items)
	return s.items
}

func (s *stubCartService) Clear(context.Context, string) error {
	s.items = types.LineItems{}
	return nil
}

type stubHydrator struct {
	items   types.LineItems
	applied bool
}

func (s *stubHydrator) Hydrate(context.Context, string) (types.LineItems, bool) {
	return s.items, s.applied
}

type stubSnapshotter struct {
	products map[int64]catalog.Product
	combos   map[int64]catalog.Combo
}

func (s *stubSnapshotter) Product(_ context.Context, id int64) (*catalog.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "catalog entry not found")
	}
	return &product, nil
}

func (s *stubSnapshotter) Combo(_ context.Context, id int64) (*catalog.Combo, error) {
	combo, ok := s.combos[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "catalog entry not found")
	}
	return &combo, nil
}

type stubCheckout struct {
	items  types.LineItems
	result *checkout.Result
	err    error
}

func (s *stubCheckout) Quote(context.Context, string) (types.LineItems, checkout.Summary) {
	return s.items, checkout.Summarize(s.items)
}

func (s *stubCheckout) Checkout(context.Context, string) (*checkout.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubOrdersService struct {
	records []models.OrderRecord
}

func (s *stubOrdersService) List(_ context.Context, _ string, p pagination.Params) ([]models.OrderRecord, pagination.Meta, error) {
	return s.records, pagination.BuildMeta(p, int64(len(s.records))), nil
}

func (s *stubOrdersService) Get(_ context.Context, _ string, orderID uuid.UUID) (*models.OrderRecord, error) {
	for i := range s.records {
		if s.records[i].ID == orderID {
			return &s.records[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

type stubStager struct {
	orderID uuid.UUID
	mode    enums.ReorderMode
	err     error
}

func (s *stubStager) Stage(_ context.Context, _ string, orderID uuid.UUID, mode enums.ReorderMode) error {
	if s.err != nil {
		return s.err
	}
	s.orderID = orderID
	s.mode = mode
	return nil
}

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(context.Context) error { return s.err }

var errDown = errors.New("dependency down")
