package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freshmart/grocery-api/internal/dto"
	"github.com/freshmart/grocery-api/internal/model"
	"github.com/freshmart/grocery-api/internal/notify"
	"github.com/freshmart/grocery-api/internal/repository"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrTotalMismatch = errors.New("total amount does not match line items")
	ErrUnknownStatus = errors.New("unknown order status")
	ErrInvalidLine   = errors.New("invalid order line")
)

// totalTolerance absorbs client-side rounding when comparing a submitted
// total against the recomputed one.
var totalTolerance = decimal.NewFromFloat(0.01)

type OrderService struct {
	orderRepo       repository.OrderRepository
	productRepo     repository.ProductRepository
	userRepo        repository.UserRepository
	notifier        notify.Notifier
	reserveStock    bool
	defaultDelivery string
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository, notifier notify.Notifier, reserveStock bool, defaultDelivery string) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		reserveStock:    reserveStock,
		defaultDelivery: defaultDelivery,
	}
}

// CreateOrder builds an order from the submitted cart snapshot. Unit
// prices are read from the catalog, never from the client; a submitted
// totalAmount is cross-checked against the recomputed total. When stock
// reservation is on, every line's quantity is decremented atomically.
func (s *OrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	var (
		items   []model.OrderItem
		changes []repository.StockChange
		total   decimal.Decimal
	)
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity %d", ErrInvalidLine, line.Quantity)
		}

		product, err := s.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("get product: %w", err)
		}
		if product == nil {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductID)
		}
		// The catalog rejects negative prices on creation; guard here too
		// so a bad record can never produce a negative total.
		if product.Price.IsNegative() {
			return nil, fmt.Errorf("%w: negative unit price for product %s", ErrInvalidLine, product.ID)
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(lineTotal)
		items = append(items, model.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
			LineTotal:   lineTotal,
		})
		changes = append(changes, repository.StockChange{
			ProductID: product.ID,
			Quantity:  line.Quantity,
		})
	}

	if req.TotalAmount != nil && total.Sub(*req.TotalAmount).Abs().GreaterThan(totalTolerance) {
		return nil, fmt.Errorf("%w: submitted %s, computed %s", ErrTotalMismatch, req.TotalAmount, total)
	}

	if s.reserveStock {
		if err := s.productRepo.ReserveStock(ctx, changes); err != nil {
			// A product deleted between the price read and the
			// reservation is still a missing product to the caller.
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: %w", ErrProductNotFound, err)
			}
			return nil, err
		}
	}

	order := &model.Order{
		CustomerID:    req.CustomerID,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		Items:         items,
		TotalAmount:   total,
		Status:        model.StatusPending,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		if s.reserveStock {
			_ = s.productRepo.ReleaseStock(ctx, changes)
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.notifyAdmin(ctx, order)

	resp := toOrderResponse(order)
	return &resp, nil
}

// SetStatus drives the order through its lifecycle. Illegal edges are
// rejected, CONFIRMED notifies the customer, CANCELLED returns reserved
// stock.
func (s *OrderService) SetStatus(ctx context.Context, id uuid.UUID, req dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	status, err := model.ParseOrderStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, req.Status)
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, status, req.DeliveryTime)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	switch status {
	case model.StatusConfirmed:
		estimate := req.DeliveryTime
		if estimate == "" {
			estimate = s.defaultDelivery
		}
		body := fmt.Sprintf("Your order #%s has been confirmed!\nTotal: ₹%s\nEstimated delivery: %s",
			shortID(order.ID), order.TotalAmount, estimate)
		s.notifier.Notify(ctx, order.CustomerEmail, "Order Confirmed", body)
	case model.StatusCancelled:
		if s.reserveStock {
			_ = s.productRepo.ReleaseStock(ctx, stockChanges(order.Items))
		}
	}

	resp := toOrderResponse(order)
	return &resp, nil
}

// List returns orders filtered by customer and/or status; filters
// compose with AND. An unrecognized status simply matches nothing,
// mirroring plain value filtering.
func (s *OrderService) List(ctx context.Context, customerID uuid.UUID, status string) ([]dto.OrderResponse, error) {
	orders, err := s.orderRepo.List(ctx, repository.OrderFilter{
		CustomerID: customerID,
		Status:     model.OrderStatus(status),
	})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderResponse(&o))
	}
	return items, nil
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]dto.OrderResponse, error) {
	return s.List(ctx, customerID, "")
}

// notifyAdmin summarizes a new order for the administrator. Having no
// admin registered is not an error.
func (s *OrderService) notifyAdmin(ctx context.Context, order *model.Order) {
	admin, err := s.userRepo.Admin(ctx)
	if err != nil || admin == nil {
		return
	}
	body := fmt.Sprintf("New order from %s\nTotal: ₹%s\nItems: %d",
		order.CustomerEmail, order.TotalAmount, len(order.Items))
	s.notifier.Notify(ctx, admin.Email, "New Order Received", body)
}

func stockChanges(items []model.OrderItem) []repository.StockChange {
	changes := make([]repository.StockChange, 0, len(items))
	for _, item := range items {
		changes = append(changes, repository.StockChange{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return changes
}

func shortID(id uuid.UUID) string {
	s := id.String()
	return s[len(s)-8:]
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}
	return dto.OrderResponse{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Address:       order.Address,
		Items:         items,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status,
		DeliveryTime:  order.DeliveryTime,
		OrderDate:     order.OrderDate,
		UpdatedAt:     order.UpdatedAt,
	}
}
