package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/freshmart/grocery-api/internal/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
}

type memCategoryRepo struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*model.Category
	order []uuid.UUID
}

func NewCategoryRepository() CategoryRepository {
	return &memCategoryRepo{byID: make(map[uuid.UUID]*model.Category)}
}

func (r *memCategoryRepo) Create(_ context.Context, category *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	category.ID = uuid.New()
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	stored := *category
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	category := *stored
	return &category, nil
}

// List returns every category in insertion order, active or not.
func (r *memCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]model.Category, 0, len(r.order))
	for _, id := range r.order {
		categories = append(categories, *r.byID[id])
	}
	return categories, nil
}
