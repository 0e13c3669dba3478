package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

const defaultLimit = 100

type PostgresMovementRepository struct {
	db *sql.DB
}

func NewPostgresMovementRepository(db *sql.DB) *PostgresMovementRepository {
	return &PostgresMovementRepository{db: db}
}

// Log inserts a new inventory movement
func (r *PostgresMovementRepository) Log(ctx context.Context, m models.Movement) error {
	query := `INSERT INTO movements (product_id, delta, reason, created_at) VALUES ($1, $2, $3, $4)`
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if _, err := r.db.ExecContext(ctx, query, m.ProductID, m.Delta, m.Reason, m.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert movement: %w", err)
	}
	return nil
}

// GetByProductID returns all movements for a specific product
func (r *PostgresMovementRepository) GetByProductID(ctx context.Context, productID int, mf MovementFilter) ([]models.Movement, int, error) {
	var c conditions
	c.add("product_id = $%d", productID)
	if mf.Since != nil {
		c.add("created_at >= $%d", *mf.Since)
	}
	if mf.Until != nil {
		c.add("created_at <= $%d", *mf.Until)
	}

	if mf.Offset != nil && *mf.Offset < 0 {
		return nil, 0, fmt.Errorf("offset must be non-negative")
	}

	total, err := r.getTotal(ctx, c)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}

	// Early return if offset is beyond total
	if mf.Offset != nil && *mf.Offset >= total {
		return []models.Movement{}, total, nil
	}

	query := "SELECT id, product_id, delta, reason, created_at FROM movements" + c.where() + " ORDER BY created_at DESC, id DESC"
	args := c.args

	limit := defaultLimit
	if mf.Limit != nil && *mf.Limit > 0 {
		limit = min(*mf.Limit, defaultLimit)
	}
	query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
	args = append(args, limit)

	if mf.Offset != nil && *mf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *mf.Offset)
	}

	movements, err := r.executeQuery(ctx, query, args)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return movements, total, nil
}

func (r *PostgresMovementRepository) getTotal(ctx context.Context, c conditions) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var total int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM movements"+c.where(), c.args...).Scan(&total)
	return total, err
}

func (r *PostgresMovementRepository) executeQuery(ctx context.Context, query string, args []any) ([]models.Movement, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := []models.Movement{}
	for rows.Next() {
		var m models.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Delta, &m.Reason, &m.CreatedAt); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}

	// Check for iteration errors
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}
