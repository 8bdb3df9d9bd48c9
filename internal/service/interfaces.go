package service

import (
	"context"

	"github.com/dmontes/ipogen/internal/domain"
)

// GeneratedOrder is the result of one successful generation: the
// document bytes, the download filename, and the recorded history row.
type GeneratedOrder struct {
	Document []byte
	Filename string
	Record   *domain.OrderRecord
}

// OrderPreview summarizes a request for UI display before generation.
type OrderPreview struct {
	Selected   []domain.TaskLine
	TotalCents int64
}

// OrderService validates requests and turns them into documents.
type OrderService interface {
	// Generate validates the request, renders the document and
	// records the generation. All-or-nothing: on any error no
	// document is returned and no history row is written.
	Generate(ctx context.Context, req *domain.OrderRequest) (*GeneratedOrder, error)
	// Preview returns the selected tasks and computed total without
	// rendering.
	Preview(req *domain.OrderRequest) OrderPreview
	// History lists previously generated orders, newest first.
	History(ctx context.Context) ([]*domain.OrderRecord, error)
}

// CatalogService exposes the predefined task catalog.
type CatalogService interface {
	List(ctx context.Context) ([]*domain.CatalogTask, error)
	GetByCode(ctx context.Context, code string) (*domain.CatalogTask, error)
	// TaskLines returns one unselected task line per catalog task,
	// pre-filled with catalog defaults, in catalog order.
	TaskLines(ctx context.Context) ([]domain.TaskLine, error)
}
