package apperr

import (
	"errors"
	"net/http" // HTTP status codes
	"strings"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// AppError is an error that maps to a specific HTTP status and response body.
// Messages holds one entry per violated field for validation errors, or a
// single generic message otherwise.
type AppError struct {
	Status   int      // HTTP status code
	Messages []string // One message per violation
}

func (e *AppError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Validation creates a 400 error carrying one message per violated field
func Validation(messages ...string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Messages: messages}
}

// Unauthorized creates a 401 error with a generic message
func Unauthorized(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Messages: []string{message}}
}

// NotFound creates a 404 error. Nonexistent and not-owned resources render
// identically so callers cannot probe other users' data.
func NotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Messages: []string{message}}
}

// Handle renders err as {"errors": ...} on c. Known AppErrors keep their
// status and messages; anything else is logged and rendered as a generic 500.
func Handle(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"errors": payload(appErr.Messages)})
		return
	}
	logrus.WithFields(logrus.Fields{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	}).Error("Unexpected error")
	c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
}

// payload renders a single message as a string and several as an array
func payload(messages []string) any {
	if len(messages) == 1 {
		return messages[0]
	}
	return messages
}
