package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshmart/grocery-api/internal/dto"
	"github.com/freshmart/grocery-api/internal/model"
	"github.com/freshmart/grocery-api/internal/repository"
	"github.com/freshmart/grocery-api/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Failed to create order: "+err.Error())
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondErr(c, http.StatusNotFound, "Failed to create order: "+err.Error())
		case errors.Is(err, service.ErrInvalidLine),
			errors.Is(err, service.ErrTotalMismatch),
			errors.Is(err, repository.ErrInsufficientStock):
			respondErr(c, http.StatusBadRequest, "Failed to create order: "+err.Error())
		default:
			respondErr(c, http.StatusInternalServerError, "Failed to create order: "+err.Error())
		}
		return
	}

	respondOK(c, "Order created successfully", order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Failed to retrieve orders: "+err.Error())
		return
	}

	customerID := uuid.Nil
	if req.CustomerID != "" {
		id, err := uuid.Parse(req.CustomerID)
		if err != nil {
			respondErr(c, http.StatusBadRequest, "Invalid customer ID")
			return
		}
		customerID = id
	}

	orders, err := h.orderService.List(c.Request.Context(), customerID, req.Status)
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "Failed to retrieve orders: "+err.Error())
		return
	}

	respondOK(c, "Orders retrieved successfully", orders)
}

func (h *OrderHandler) ListCustomerOrders(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	orders, err := h.orderService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "Failed to retrieve customer orders: "+err.Error())
		return
	}

	respondOK(c, "Customer orders retrieved successfully", orders)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "Failed to update order status: "+err.Error())
		return
	}

	order, err := h.orderService.SetStatus(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondErr(c, http.StatusNotFound, "Order not found")
		case errors.Is(err, service.ErrUnknownStatus),
			errors.Is(err, model.ErrInvalidTransition):
			respondErr(c, http.StatusBadRequest, "Failed to update order status: "+err.Error())
		default:
			respondErr(c, http.StatusInternalServerError, "Failed to update order status: "+err.Error())
		}
		return
	}

	respondOK(c, "Order status updated successfully", order)
}
