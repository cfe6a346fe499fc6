// File: /utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   err,
	})
}

func SendValidationError(c *gin.Context, err string) {
	SendError(c, http.StatusBadRequest, err)
}

func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func SendSuccessMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

// SendList attaches a count alongside the payload, matching the shape
// the web client expects from collection endpoints.
func SendList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}
