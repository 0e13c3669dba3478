package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

const orderColumns = `id, user_id, shipping_info, order_items, subtotal, tax, shipping_charges, discount, total, status, created_at, updated_at`

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func scanOrder(row rowScanner) (models.Order, error) {
	var (
		o        models.Order
		shipping []byte
		items    []byte
	)
	err := row.Scan(&o.ID, &o.User, &shipping, &items, &o.Subtotal, &o.Tax, &o.ShippingCharges,
		&o.Discount, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return models.Order{}, err
	}
	if err := json.Unmarshal(shipping, &o.ShippingInfo); err != nil {
		return models.Order{}, fmt.Errorf("failed to decode shipping info of order %d: %w", o.ID, err)
	}
	if err := json.Unmarshal(items, &o.OrderItems); err != nil {
		return models.Order{}, fmt.Errorf("failed to decode items of order %d: %w", o.ID, err)
	}
	return o, nil
}

func encodeOrderDocuments(o models.Order) (string, string, error) {
	shipping, err := json.Marshal(o.ShippingInfo)
	if err != nil {
		return "", "", err
	}
	items, err := json.Marshal(o.OrderItems)
	if err != nil {
		return "", "", err
	}
	return string(shipping), string(items), nil
}

func (r *PostgresOrderRepository) Create(ctx context.Context, o models.Order) (models.Order, error) {
	shipping, items, err := encodeOrderDocuments(o)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to encode order: %w", err)
	}
	if o.Status == "" {
		o.Status = models.StatusProcessing
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO orders (user_id, shipping_info, order_items, subtotal, tax, shipping_charges, discount, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10) RETURNING ` + orderColumns
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return scanOrder(r.db.QueryRowContext(ctx, query, o.User, shipping, items, o.Subtotal, o.Tax,
		o.ShippingCharges, o.Discount, o.Total, string(o.Status), o.CreatedAt))
}

func (r *PostgresOrderRepository) GetByID(ctx context.Context, id int) (models.Order, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	o, err := scanOrder(r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	return o, err
}

func (r *PostgresOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	return r.Find(ctx, OrderQuery{})
}

func (r *PostgresOrderRepository) Update(ctx context.Context, o models.Order) (models.Order, error) {
	shipping, items, err := encodeOrderDocuments(o)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to encode order: %w", err)
	}

	query := `UPDATE orders SET shipping_info = $1, order_items = $2, subtotal = $3, tax = $4, shipping_charges = $5,
		discount = $6, total = $7, status = $8, updated_at = $9 WHERE id = $10 RETURNING ` + orderColumns
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	updated, err := scanOrder(r.db.QueryRowContext(ctx, query, shipping, items, o.Subtotal, o.Tax, o.ShippingCharges,
		o.Discount, o.Total, string(o.Status), time.Now().UTC(), o.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	return updated, err
}

func (r *PostgresOrderRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func orderConditions(q OrderQuery) conditions {
	var c conditions
	if q.User != nil {
		c.add("user_id = $%d", *q.User)
	}
	if q.Status != nil {
		c.add("status = $%d", string(*q.Status))
	}
	c.addRange("created_at", q.CreatedIn)
	return c
}

func (r *PostgresOrderRepository) Find(ctx context.Context, q OrderQuery) ([]models.Order, error) {
	c := orderConditions(q)
	query := "SELECT " + orderColumns + " FROM orders" + c.where() + " ORDER BY id"
	if q.NewestFirst {
		query += " DESC"
	}
	args := c.args
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, q.Limit)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) Count(ctx context.Context, q OrderQuery) (int, error) {
	c := orderConditions(q)
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders"+c.where(), c.args...).Scan(&n)
	return n, err
}
