package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// envelope is the uniform response shape every endpoint returns.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Message: message, Data: data})
}

func respondErr(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{Success: false, Message: message})
}
