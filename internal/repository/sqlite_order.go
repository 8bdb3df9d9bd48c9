package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmontes/ipogen/internal/domain"
)

// SQLiteOrderRepo implements OrderRepo using a SQLite database.
type SQLiteOrderRepo struct {
	db *sql.DB
}

// NewSQLiteOrderRepo creates a new SQLiteOrderRepo.
func NewSQLiteOrderRepo(db *sql.DB) *SQLiteOrderRepo {
	return &SQLiteOrderRepo{db: db}
}

func (r *SQLiteOrderRepo) Create(ctx context.Context, rec *domain.OrderRecord) error {
	query := `INSERT INTO orders (id, ipo_number, title, client_name, total_cents, filename, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.IPONumber,
		rec.Title,
		rec.ClientName,
		rec.TotalCents,
		rec.Filename,
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting order record: %w", err)
	}
	return nil
}

func (r *SQLiteOrderRepo) List(ctx context.Context) ([]*domain.OrderRecord, error) {
	query := `SELECT id, ipo_number, title, client_name, total_cents, filename, created_at
		FROM orders ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing order records: %w", err)
	}
	defer rows.Close()

	var records []*domain.OrderRecord
	for rows.Next() {
		var rec domain.OrderRecord
		var createdAtStr string
		if err := rows.Scan(&rec.ID, &rec.IPONumber, &rec.Title, &rec.ClientName,
			&rec.TotalCents, &rec.Filename, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning order record: %w", err)
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order records: %w", err)
	}
	return records, nil
}
