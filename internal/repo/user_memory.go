package repo

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: []models.User{},
	}
}

func (r *InMemoryUserRepository) Create(_ context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == u.ID || user.Email == u.Email {
			return models.User{}, ErrDuplicatedValueUnique
		}
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}
	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryUserRepository) GetByID(_ context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) GetAll(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.users), nil
}

func (r *InMemoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if user.ID == id {
			r.users = slices.Delete(r.users, i, i+1)
			return nil
		}
	}
	return ErrUserNotFound
}

func (r *InMemoryUserRepository) Find(_ context.Context, q UserQuery) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := []models.User{}
	for _, user := range r.users {
		if q.matches(user) {
			found = append(found, user)
		}
	}
	return found, nil
}

func (r *InMemoryUserRepository) Count(ctx context.Context, q UserQuery) (int, error) {
	found, err := r.Find(ctx, q)
	return len(found), err
}

func (r *InMemoryUserRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = []models.User{}
}
