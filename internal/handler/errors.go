package handler

import (
	"net/http"

	"facturation/internal/billing"
	"facturation/pkg/response"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP statuses: rejected input is 400,
// a missing entity is 404, everything else is 500.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case billing.IsValidation(err):
		status = http.StatusBadRequest
	case billing.IsNotFound(err):
		status = http.StatusNotFound
	}
	c.JSON(status, response.Error(status, err.Error()))
}
