package controllers

import (
	"net/http"

	"bookstore/identity"
	"bookstore/models"
	"bookstore/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders services.OrderService
}

func NewOrderController(orders services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

func (oc *OrderController) AddToOrder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var body models.AddToOrderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail[any](invalidBody))
		return
	}

	res := oc.orders.AddToOrder(c.Request.Context(), userID, body, identity.BearerToken(c))
	respond(c, res, http.StatusBadRequest)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	res := oc.orders.DeleteOrder(c.Request.Context(), c.Param("orderId"), userID)
	respond(c, res, http.StatusBadRequest)
}

// GetAllOrders answers 404 when the listing itself fails. Panics are left to
// the recovery middleware, which answers 500.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	res := oc.orders.GetAllOrders(c.Request.Context(), userID)
	respond(c, res, http.StatusNotFound)
}
