package controllers

import (
	"net/http"

	"bookstore/models"
	"bookstore/services"

	"github.com/gin-gonic/gin"
)

// CustomerDetailsController serves /api/customerDetails. Every failure is a
// 400 carrying the service envelope.
type CustomerDetailsController struct {
	details services.CustomerDetailsService
}

func NewCustomerDetailsController(details services.CustomerDetailsService) *CustomerDetailsController {
	return &CustomerDetailsController{details: details}
}

func (cc *CustomerDetailsController) Add(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var body models.CustomerDetailsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail[any](invalidBody))
		return
	}

	respond(c, cc.details.AddCustomerDetails(c.Request.Context(), userID, body), http.StatusBadRequest)
}

func (cc *CustomerDetailsController) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	respond(c, cc.details.GetCustomerDetails(c.Request.Context(), userID), http.StatusBadRequest)
}

func (cc *CustomerDetailsController) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	respond(c, cc.details.DeleteCustomerDetails(c.Request.Context(), c.Param("addressId"), userID), http.StatusBadRequest)
}

func (cc *CustomerDetailsController) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var body models.CustomerDetailsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail[any](invalidBody))
		return
	}

	res := cc.details.UpdateCustomerDetails(c.Request.Context(), c.Param("addressId"), userID, body)
	respond(c, res, http.StatusBadRequest)
}

func (cc *CustomerDetailsController) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	respond(c, cc.details.GetAddress(c.Request.Context(), c.Param("addressId"), userID), http.StatusBadRequest)
}
