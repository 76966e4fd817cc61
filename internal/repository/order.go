package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/freshmart/grocery-api/internal/model"
)

type OrderFilter struct {
	CustomerID uuid.UUID         // uuid.Nil matches any customer
	Status     model.OrderStatus // empty matches any status
}

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)
	// UpdateStatus applies a lifecycle transition atomically. It returns
	// model.ErrInvalidTransition when the edge is not in the allowed set
	// and nil-order when the id is unknown.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, deliveryTime string) (*model.Order, error)
}

type memOrderRepo struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*model.Order
	order []uuid.UUID
}

func NewOrderRepository() OrderRepository {
	return &memOrderRepo{byID: make(map[uuid.UUID]*model.Order)}
}

func (r *memOrderRepo) Create(_ context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = uuid.New()
	now := time.Now()
	order.OrderDate = now
	order.UpdatedAt = now

	stored := *order
	stored.Items = append([]model.OrderItem(nil), order.Items...)
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	order := copyOrder(stored)
	return &order, nil
}

func (r *memOrderRepo) List(_ context.Context, filter OrderFilter) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []model.Order
	for _, id := range r.order {
		o := r.byID[id]
		if filter.CustomerID != uuid.Nil && o.CustomerID != filter.CustomerID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		orders = append(orders, copyOrder(o))
	}
	return orders, nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.OrderStatus, deliveryTime string) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	if !stored.Status.CanTransition(status) {
		return nil, model.ErrInvalidTransition
	}

	stored.Status = status
	stored.UpdatedAt = time.Now()
	if deliveryTime != "" {
		stored.DeliveryTime = deliveryTime
	}

	order := copyOrder(stored)
	return &order, nil
}

func copyOrder(o *model.Order) model.Order {
	order := *o
	order.Items = append([]model.OrderItem(nil), o.Items...)
	return order
}
