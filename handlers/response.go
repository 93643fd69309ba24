package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cemention-gateway/clients"
	"cemention-gateway/models"
)

// writeBackendError maps a failed backend call onto the response: API errors
// keep their status and message, transport errors become a 502. The screen
// stays interactive either way; retry is up to the user.
func writeBackendError(c *gin.Context, err error) {
	var apiErr *clients.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, models.ErrorResponse{
			Error:   "BACKEND_ERROR",
			Message: apiErr.Message,
		})
		return
	}
	c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:   "BACKEND_UNREACHABLE",
		Message: "Could not reach the Cemention backend",
		Details: err.Error(),
	})
}

func writeInvalidInput(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "INVALID_INPUT",
		Message: "Invalid request body",
		Details: err.Error(),
	})
}
