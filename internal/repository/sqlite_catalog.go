package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmontes/ipogen/internal/domain"
)

// SQLiteCatalogRepo implements CatalogRepo using a SQLite database.
type SQLiteCatalogRepo struct {
	db *sql.DB
}

// NewSQLiteCatalogRepo creates a new SQLiteCatalogRepo.
func NewSQLiteCatalogRepo(db *sql.DB) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: db}
}

func (r *SQLiteCatalogRepo) List(ctx context.Context) ([]*domain.CatalogTask, error) {
	query := `SELECT code, name, default_fee_cents, fee_basis FROM catalog_tasks ORDER BY position, code`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing catalog tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.CatalogTask
	for rows.Next() {
		var t domain.CatalogTask
		if err := rows.Scan(&t.Code, &t.Name, &t.DefaultFeeCents, &t.FeeBasis); err != nil {
			return nil, fmt.Errorf("scanning catalog task: %w", err)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog tasks: %w", err)
	}

	for _, t := range tasks {
		if t.Paragraphs, err = r.paragraphs(ctx, t.Code); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

func (r *SQLiteCatalogRepo) GetByCode(ctx context.Context, code string) (*domain.CatalogTask, error) {
	query := `SELECT code, name, default_fee_cents, fee_basis FROM catalog_tasks WHERE code = ?`
	var t domain.CatalogTask
	err := r.db.QueryRowContext(ctx, query, code).Scan(&t.Code, &t.Name, &t.DefaultFeeCents, &t.FeeBasis)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("catalog task not found: %q", code)
		}
		return nil, fmt.Errorf("scanning catalog task: %w", err)
	}
	if t.Paragraphs, err = r.paragraphs(ctx, t.Code); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SQLiteCatalogRepo) paragraphs(ctx context.Context, code string) ([]string, error) {
	query := `SELECT body FROM catalog_paragraphs WHERE task_code = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("listing paragraphs for task %s: %w", code, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scanning paragraph for task %s: %w", code, err)
		}
		out = append(out, body)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating paragraphs for task %s: %w", code, err)
	}
	return out, nil
}
