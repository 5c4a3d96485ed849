package orders

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ovees/eleganza-backend/pkg/db/models"
	pkgerrors "github.com/ovees/eleganza-backend/pkg/errors"
	"github.com/ovees/eleganza-backend/pkg/pagination"
	"github.com/ovees/eleganza-backend/pkg/types"
)

// Repo is the order history persistence surface. History is append-only.
type Repo interface {
	Append(ctx context.Context, sessionID string, items types.LineItems) (*models.OrderRecord, error)
	List(ctx context.Context, sessionID string, p pagination.Params) ([]models.OrderRecord, pagination.Meta, error)
	Get(ctx context.Context, sessionID string, orderID uuid.UUID) (*models.OrderRecord, error)
}

type gormRepo struct {
	conn *gorm.DB
}

// NewRepo builds the GORM-backed order history repository.
func NewRepo(conn *gorm.DB) Repo {
	return &gormRepo{conn: conn}
}

func (r *gormRepo) Append(ctx context.Context, sessionID string, items types.LineItems) (*models.OrderRecord, error) {
	record := &models.OrderRecord{
		ID:        uuid.New(),
		SessionID: sessionID,
		Items:     items,
	}
	if err := r.conn.WithContext(ctx).Create(record).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "append order record")
	}
	return record, nil
}

func (r *gormRepo) List(ctx context.Context, sessionID string, p pagination.Params) ([]models.OrderRecord, pagination.Meta, error) {
	p = pagination.Normalize(p)

	query := r.conn.WithContext(ctx).
		Model(&models.OrderRecord{}).
		Where("session_id = ?", sessionID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, pagination.Meta{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count order records")
	}

	var records []models.OrderRecord
	err := query.
		Order("created_at DESC").
		Limit(p.PageSize).
		Offset((p.Page - 1) * p.PageSize).
		Find(&records).Error
	if err != nil {
		return nil, pagination.Meta{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list order records")
	}

	return records, pagination.BuildMeta(p, total), nil
}

func (r *gormRepo) Get(ctx context.Context, sessionID string, orderID uuid.UUID) (*models.OrderRecord, error) {
	var record models.OrderRecord
	err := r.conn.WithContext(ctx).
		Where("id = ? AND session_id = ?", orderID, sessionID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "get order record")
	}
	return &record, nil
}
