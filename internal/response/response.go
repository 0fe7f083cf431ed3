package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/eventi-api/internal/apperrors"
	"github.com/gravadigital/eventi-api/internal/logger"
)

// ErrorBody is the structured error payload returned on every failure
type ErrorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// Created sends a 201 response with the given payload
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// OK sends a 200 response with the given payload
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// NoContent sends a 204 response
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error maps a service error onto its HTTP status and structured body.
// Unknown errors are logged and surfaced as a generic 500.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	kind := "Internal Server Error"
	message := "unexpected internal error"

	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
		kind = "Not Found"
		message = err.Error()
	case apperrors.IsValidation(err):
		status = http.StatusUnprocessableEntity
		kind = "Validation Error"
		message = err.Error()
	case apperrors.IsPermission(err):
		status = http.StatusForbidden
		kind = "Forbidden"
		message = err.Error()
	case apperrors.IsConflict(err):
		status = http.StatusConflict
		kind = "Conflict"
		message = err.Error()
	default:
		logger.HTTP().Error("Unhandled error", "path", c.Request.URL.Path, "error", err)
	}

	c.JSON(status, ErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     kind,
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}

// BadRequest sends a 400 for malformed request payloads
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    http.StatusBadRequest,
		Error:     "Bad Request",
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}

// Unauthorized sends a 401
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    http.StatusUnauthorized,
		Error:     "Unauthorized",
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}

// Forbidden sends a 403
func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, ErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    http.StatusForbidden,
		Error:     "Forbidden",
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}
