package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

const productColumns = `id, name, photo, price, stock, category, created_at, updated_at`

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Photo, &p.Price, &p.Stock, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PostgresProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	query := `INSERT INTO products (name, photo, price, stock, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING ` + productColumns
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	created, err := scanProduct(r.db.QueryRowContext(ctx, query, p.Name, p.Photo, p.Price, p.Stock, p.Category, p.CreatedAt))
	if isUniqueViolation(err) {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	return created, err
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) GetByName(ctx context.Context, name string) (models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE lower(name) = lower($1)`, name))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

func (r *PostgresProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, photo = $2, price = $3, stock = $4, category = $5, updated_at = $6
		WHERE id = $7 RETURNING ` + productColumns
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	updated, err := scanProduct(r.db.QueryRowContext(ctx, query, p.Name, p.Photo, p.Price, p.Stock, p.Category, time.Now().UTC(), p.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if isUniqueViolation(err) {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	return updated, err
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Search(ctx context.Context, f ProductFilter) ([]models.Product, int, error) {
	var c conditions
	if f.Name != "" {
		c.add("name ILIKE $%d", "%"+f.Name+"%")
	}
	if f.Category != "" {
		c.add("category = $%d", f.Category)
	}
	if f.MaxPrice != nil {
		c.add("price <= $%d", *f.MaxPrice)
	}

	var total int
	countCtx, cancel := withTimeout(ctx)
	err := r.db.QueryRowContext(countCtx, "SELECT COUNT(*) FROM products"+c.where(), c.args...).Scan(&total)
	cancel()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := "SELECT " + productColumns + " FROM products" + c.where()
	switch f.Sort {
	case "asc":
		query += " ORDER BY price ASC, id"
	case "desc":
		query += " ORDER BY price DESC, id"
	default:
		query += " ORDER BY id"
	}

	args := c.args
	if f.Limit != nil && *f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *f.Limit)
	}
	if f.Offset != nil && *f.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *f.Offset)
	}

	products, err := r.queryProducts(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}
	return products, total, nil
}

func (r *PostgresProductRepository) Latest(ctx context.Context, n int) ([]models.Product, error) {
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC, id DESC LIMIT $1`, n)
}

func productConditions(q ProductQuery) conditions {
	var c conditions
	if q.Category != nil {
		c.add("category = $%d", *q.Category)
	}
	if q.Stock != nil {
		c.add("stock = $%d", *q.Stock)
	}
	c.addRange("created_at", q.CreatedIn)
	return c
}

func (r *PostgresProductRepository) Find(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	c := productConditions(q)
	return r.queryProducts(ctx, "SELECT "+productColumns+" FROM products"+c.where()+" ORDER BY id", c.args...)
}

func (r *PostgresProductRepository) Count(ctx context.Context, q ProductQuery) (int, error) {
	c := productConditions(q)
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products"+c.where(), c.args...).Scan(&n)
	return n, err
}

func (r *PostgresProductRepository) Categories(ctx context.Context) ([]string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// AdjustStock locks the affected rows in ascending id order so concurrent
// batches touching the same products serialize instead of deadlocking.
func (r *PostgresProductRepository) AdjustStock(ctx context.Context, deltas []StockDelta, allowNegative bool) ([]models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin stock transaction: %w", err)
	}
	defer tx.Rollback()

	ordered := slices.Clone(deltas)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ProductID < ordered[j].ProductID })

	pending := map[int]int{}
	for _, d := range ordered {
		var stock int
		err := tx.QueryRowContext(ctx, `SELECT stock FROM products WHERE id = $1 FOR UPDATE`, d.ProductID).Scan(&stock)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, d.ProductID)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to lock product %d: %w", d.ProductID, err)
		}
		pending[d.ProductID] += d.Delta
		if !allowNegative && stock+pending[d.ProductID] < 0 {
			return nil, fmt.Errorf("%w: product %d has %d, needs %d", ErrInsufficientStock, d.ProductID, stock, -pending[d.ProductID])
		}
	}

	now := time.Now().UTC()
	updated := make([]models.Product, 0, len(ordered))
	for _, d := range ordered {
		row := tx.QueryRowContext(ctx, `UPDATE products SET stock = stock + $1, updated_at = $2 WHERE id = $3 RETURNING `+productColumns,
			d.Delta, now, d.ProductID)
		p, err := scanProduct(row)
		if err != nil {
			return nil, fmt.Errorf("failed to update stock of product %d: %w", d.ProductID, err)
		}
		updated = append(updated, p)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit stock transaction: %w", err)
	}
	return updated, nil
}
