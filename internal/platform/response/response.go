package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokoapi/internal/platform/query"
)

// Body adalah amplop JSON seragam untuk semua endpoint.
type Body struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       interface{}     `json:"data,omitempty"`
	Pagination *query.PageInfo `json:"pagination,omitempty"`
	Error      string          `json:"error,omitempty"`
	Errors     []string        `json:"errors,omitempty"`
}

func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Body{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Body{Success: true, Message: message, Data: data})
}

func Page(c *gin.Context, message string, data interface{}, info query.PageInfo) {
	c.JSON(http.StatusOK, Body{Success: true, Message: message, Data: data, Pagination: &info})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Body{Success: false, Message: message})
}

func ErrorDetail(c *gin.Context, status int, message, detail string) {
	c.JSON(status, Body{Success: false, Message: message, Error: detail})
}

func ValidationFailed(c *gin.Context, message string, errs []string) {
	c.JSON(http.StatusBadRequest, Body{Success: false, Message: message, Errors: errs})
}
