package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Detail    string   `json:"detail"`
	Errors    []string `json:"errors,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// OK is the body returned by write endpoints that carry no data.
type OK struct {
	OK bool `json:"ok"`
}

// Message is a single human readable status line.
type Message struct {
	Message string `json:"message"`
}

// JSON sends data as the whole response body
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Error sends an error response
func Error(c *gin.Context, code int, detail string, errs []string) {
	c.JSON(code, ErrorBody{
		Detail:    detail,
		Errors:    errs,
		RequestID: c.GetString(RequestIDKey),
	})
}

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "RequestID"
