package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

const userColumns = `id, name, email, photo, role, gender, dob, created_at, updated_at`

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Photo, &u.Role, &u.Gender, &u.DOB, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *PostgresUserRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	query := `INSERT INTO users (id, name, email, photo, role, gender, dob, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8) RETURNING ` + userColumns
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	created, err := scanUser(r.db.QueryRowContext(ctx, query, u.ID, u.Name, u.Email, u.Photo, u.Role, u.Gender, u.DOB, u.CreatedAt))
	if isUniqueViolation(err) {
		return models.User{}, ErrDuplicatedValueUnique
	}
	return created, err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return u, err
}

func (r *PostgresUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	return r.Find(ctx, UserQuery{})
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func userConditions(q UserQuery) conditions {
	var c conditions
	if q.Gender != nil {
		c.add("gender = $%d", *q.Gender)
	}
	if q.Role != nil {
		c.add("role = $%d", *q.Role)
	}
	c.addRange("created_at", q.CreatedIn)
	return c
}

func (r *PostgresUserRepository) Find(ctx context.Context, q UserQuery) ([]models.User, error) {
	c := userConditions(q)
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users"+c.where()+" ORDER BY created_at, id", c.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PostgresUserRepository) Count(ctx context.Context, q UserQuery) (int, error) {
	c := userConditions(q)
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users"+c.where(), c.args...).Scan(&n)
	return n, err
}
