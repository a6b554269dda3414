package order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateSupplementOrder godoc
// @Summary      Create supplement order
// @Description  Places a pending order for a basket of supplement products.
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateSupplementOrderRequest  true  "Order basket"
// @Success      201      {object}  Order
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /orders/supplements [post]
func (h *Handler) CreateSupplementOrder(c *gin.Context) {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateSupplementOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.service.CreateSupplementOrder(c.Request.Context(), ident.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyBasket):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Basket cannot be empty"})
		case errors.Is(err, ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, ErrProductNotSellable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is not sellable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		}
		return
	}

	c.JSON(http.StatusCreated, o)
}

// CreateSubscriptionOrder godoc
// @Summary      Create subscription order
// @Description  Places a pending order for a subscription plan; the plan price is snapshotted as the order total.
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateSubscriptionOrderRequest  true  "Plan purchase"
// @Success      201      {object}  Order
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /orders/subscriptions [post]
func (h *Handler) CreateSubscriptionOrder(c *gin.Context) {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateSubscriptionOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.service.CreateSubscriptionOrder(c.Request.Context(), ident.UserID, req)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, o)
}

// Confirm godoc
// @Summary      Confirm order
// @Description  Marks a pending order delivered. For subscription orders this also issues the membership atomically.
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        orderID  path      int  true  "Order ID"
// @Success      200      {object}  Order
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Router       /orders/{orderID}/confirm [post]
func (h *Handler) Confirm(c *gin.Context) {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	orderID, err := strconv.Atoi(c.Param("orderID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	o, err := h.service.Confirm(c.Request.Context(), ident.UserID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, ErrNotOrderOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only confirm your own orders"})
		case errors.Is(err, ErrAlreadyDelivered):
			c.JSON(http.StatusConflict, gin.H{"error": "Order already delivered"})
		case errors.Is(err, ErrMembershipConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Membership conflict, please retry"})
		case errors.Is(err, ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm order"})
		}
		return
	}

	c.JSON(http.StatusOK, o)
}

// Cancel godoc
// @Summary      Cancel order
// @Description  Cancels a pending order of the current user.
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        orderID  path      int  true  "Order ID"
// @Success      200      {object}  gin.H
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Router       /orders/{orderID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	orderID, err := strconv.Atoi(c.Param("orderID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	err = h.service.Cancel(c.Request.Context(), ident.UserID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, ErrNotOrderOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only cancel your own orders"})
		case errors.Is(err, ErrOrderNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "Order is not pending"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
}

// ListMy godoc
// @Summary      List my orders
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Order
// @Failure      401  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /orders [get]
func (h *Handler) ListMy(c *gin.Context) {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	orders, err := h.service.ListMy(c.Request.Context(), ident.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Get godoc
// @Summary      Get order
// @Description  Returns one order with its supplement lines. Allowed for its owner or an admin.
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        orderID  path      int  true  "Order ID"
// @Success      200      {object}  OrderWithItems
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /orders/{orderID} [get]
func (h *Handler) Get(c *gin.Context) {
	ident, ok := auth.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	orderID, err := strconv.Atoi(c.Param("orderID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	o, err := h.service.Get(c.Request.Context(), ident.UserID, ident.Role, orderID)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, ErrNotOrderOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own orders"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		}
		return
	}

	c.JSON(http.StatusOK, o)
}
