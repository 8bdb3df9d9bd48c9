package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmontes/ipogen/internal/domain"
	"github.com/dmontes/ipogen/internal/render"
	"github.com/dmontes/ipogen/internal/repository"
	"github.com/google/uuid"
)

type orderService struct {
	renderer *render.Renderer
	orders   repository.OrderRepo
}

func NewOrderService(renderer *render.Renderer, orders repository.OrderRepo) OrderService {
	return &orderService{renderer: renderer, orders: orders}
}

func (s *orderService) Generate(ctx context.Context, req *domain.OrderRequest) (*GeneratedOrder, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.renderer.Render(req)
	if err != nil {
		return nil, err
	}

	rec := &domain.OrderRecord{
		ID:         uuid.New().String(),
		IPONumber:  req.IPONumber,
		Title:      req.Title,
		ClientName: req.ClientName,
		TotalCents: req.TotalFee(),
		Filename:   render.Filename(req),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.orders.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("recording generated order: %w", err)
	}

	return &GeneratedOrder{
		Document: doc,
		Filename: rec.Filename,
		Record:   rec,
	}, nil
}

func (s *orderService) Preview(req *domain.OrderRequest) OrderPreview {
	return OrderPreview{
		Selected:   req.SelectedTasks(),
		TotalCents: req.TotalFee(),
	}
}

func (s *orderService) History(ctx context.Context) ([]*domain.OrderRecord, error) {
	return s.orders.List(ctx)
}
