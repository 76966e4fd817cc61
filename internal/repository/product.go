package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/freshmart/grocery-api/internal/model"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type ProductFilter struct {
	CategoryID uuid.UUID // uuid.Nil matches any category
	Search     string    // case-insensitive substring over name and description
}

// StockChange is one product-quantity pair in a stock reservation.
type StockChange struct {
	ProductID uuid.UUID
	Quantity  int
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ReserveStock decrements stock for every change or none of them.
	ReserveStock(ctx context.Context, changes []StockChange) error
	// ReleaseStock returns previously reserved quantities to stock.
	ReleaseStock(ctx context.Context, changes []StockChange) error
}

type memProductRepo struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*model.Product
	order []uuid.UUID
}

func NewProductRepository() ProductRepository {
	return &memProductRepo{byID: make(map[uuid.UUID]*model.Product)}
}

func (r *memProductRepo) Create(_ context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = uuid.New()
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	stored := *product
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	product := *stored
	return &product, nil
}

func (r *memProductRepo) List(_ context.Context, filter ProductFilter) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filter.Search)

	var products []model.Product
	for _, id := range r.order {
		p := r.byID[id]
		if filter.CategoryID != uuid.Nil && p.CategoryID != filter.CategoryID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		products = append(products, *p)
	}
	return products, nil
}

func (r *memProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memProductRepo) ReserveStock(_ context.Context, changes []StockChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Validate every line before touching anything so a shortfall on the
	// last line cannot leave earlier lines decremented.
	for _, c := range changes {
		p, ok := r.byID[c.ProductID]
		if !ok {
			return fmt.Errorf("product %s: %w", c.ProductID, ErrNotFound)
		}
		if p.Stock < c.Quantity {
			return fmt.Errorf("product %s: %w", c.ProductID, ErrInsufficientStock)
		}
	}

	now := time.Now()
	for _, c := range changes {
		p := r.byID[c.ProductID]
		p.Stock -= c.Quantity
		p.UpdatedAt = now
	}
	return nil
}

func (r *memProductRepo) ReleaseStock(_ context.Context, changes []StockChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, c := range changes {
		// Products deleted since the reservation simply drop the quantity.
		if p, ok := r.byID[c.ProductID]; ok {
			p.Stock += c.Quantity
			p.UpdatedAt = now
		}
	}
	return nil
}
