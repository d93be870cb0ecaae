package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hbnb/internal/httperr"
)

// bindJSON decodes the body and reports malformed payloads as 400.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, httperr.HTTPError{
			Code:    "invalid_request",
			Message: err.Error(),
		})
		return false
	}
	return true
}
