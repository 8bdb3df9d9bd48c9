package service

import (
	"context"

	"github.com/dmontes/ipogen/internal/domain"
	"github.com/dmontes/ipogen/internal/repository"
)

type catalogService struct {
	catalog repository.CatalogRepo
}

func NewCatalogService(catalog repository.CatalogRepo) CatalogService {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) List(ctx context.Context) ([]*domain.CatalogTask, error) {
	return s.catalog.List(ctx)
}

func (s *catalogService) GetByCode(ctx context.Context, code string) (*domain.CatalogTask, error) {
	return s.catalog.GetByCode(ctx, code)
}

func (s *catalogService) TaskLines(ctx context.Context) ([]domain.TaskLine, error) {
	tasks, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]domain.TaskLine, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, t.TaskLine())
	}
	return lines, nil
}
