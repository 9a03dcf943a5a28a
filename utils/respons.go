package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body used across the API: validation
// failures carry the offending field, everything else just a message.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResponse{Message: err.Error()})
}

func RespondValidationError(c *gin.Context, message, field string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message, Field: field})
}
