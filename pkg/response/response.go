package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response represents a standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a successful response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error sends an error response. The first error, if any, is reported alongside the message.
func Error(c *gin.Context, code int, message string, errs ...error) {
	resp := Response{
		Code:    code,
		Message: message,
	}
	if len(errs) > 0 && errs[0] != nil {
		resp.Error = errs[0].Error()
		c.Error(errs[0])
	}
	c.JSON(code, resp)
}

// BadRequest sends a 400 bad request response
func BadRequest(c *gin.Context, message string, errs ...error) {
	Error(c, http.StatusBadRequest, message, errs...)
}

// InternalError sends a 500 internal server error response
func InternalError(c *gin.Context, message string, errs ...error) {
	Error(c, http.StatusInternalServerError, message, errs...)
}
