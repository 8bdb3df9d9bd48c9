package repository

import (
	"context"

	"github.com/dmontes/ipogen/internal/domain"
)

// CatalogRepo provides read access to the predefined task catalog.
type CatalogRepo interface {
	List(ctx context.Context) ([]*domain.CatalogTask, error)
	GetByCode(ctx context.Context, code string) (*domain.CatalogTask, error)
}

// OrderRepo records metadata about generated orders.
type OrderRepo interface {
	Create(ctx context.Context, rec *domain.OrderRecord) error
	List(ctx context.Context) ([]*domain.OrderRecord, error)
}
