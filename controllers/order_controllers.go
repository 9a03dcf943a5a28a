package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nush-eats/storefront-app/notifier"
	"github.com/nush-eats/storefront-app/services"
	"github.com/nush-eats/storefront-app/utils"
)

type OrderController struct {
	Service *services.OrderService
	Hub     *notifier.Hub
}

func NewOrderController(db *gorm.DB, hub *notifier.Hub) *OrderController {
	return &OrderController{
		Service: services.NewOrderService(db),
		Hub:     hub,
	}
}

func respondOrderError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.RespondValidationError(c, vErr.Message, vErr.Field)
	case errors.Is(err, services.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	default:
		utils.ErrorLogger.Printf("order operation failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

// CreateOrder -> customer submits an order from the storefront. The
// broadcast runs after the response is written and never affects it.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	details, err := oc.Service.Create(req)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, details)

	go oc.Hub.BroadcastNewOrder(details)
}

// GetAllOrders -> admin dashboard listing, newest first.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Service.List()
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus -> admin moves an order through its lifecycle.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondValidationError(c, "Invalid order id", "id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
