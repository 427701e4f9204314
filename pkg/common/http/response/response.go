package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Application codes carried in the response envelope.
const (
	CodeSuccess        = 20000
	CodeNotFound       = 40400
	CodeInternalServer = 50000
	CodeUnavailable    = 50300
)

var httpStatus = map[int]int{
	CodeSuccess:        http.StatusOK,
	CodeNotFound:       http.StatusNotFound,
	CodeInternalServer: http.StatusInternalServerError,
	CodeUnavailable:    http.StatusServiceUnavailable,
}

var messages = map[int]string{
	CodeSuccess:        "success",
	CodeNotFound:       "not found",
	CodeInternalServer: "internal server error",
	CodeUnavailable:    "service unavailable",
}

// Response is the JSON envelope of every endpoint.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Status returns the HTTP status for an application code.
func Status(code int) int {
	if s, ok := httpStatus[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// SuccessResponse writes data with the given code.
func SuccessResponse(c *gin.Context, code int, data any) {
	c.JSON(Status(code), Response{Code: code, Message: messages[code], Data: data})
}

// ErrorResponse writes err's message with the given code and aborts the chain.
func ErrorResponse(c *gin.Context, code int, err error) {
	msg := messages[code]
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(Status(code), Response{Code: code, Message: msg})
}
