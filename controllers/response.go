package controllers

import (
	"net/http"

	"bookstore/identity"
	"bookstore/models"

	"github.com/gin-gonic/gin"
)

const invalidBody = "Invalid request body."

// currentUser resolves the caller. On failure the error is left on the
// context for the auth middleware to answer and the handler must return.
func currentUser(c *gin.Context) (int, bool) {
	userID, err := identity.UserID(c)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return 0, false
	}
	return userID, true
}

func respond[T any](c *gin.Context, res models.APIResponse[T], failStatus int) {
	if res.Success {
		c.JSON(http.StatusOK, res)
		return
	}
	c.JSON(failStatus, res)
}
