package api

import (
	"strconv" // String conversion

	"contact_system/internal/apperr"

	"github.com/gin-gonic/gin" // Gin web framework
)

// pathID parses a positive integer path parameter. Malformed and
// non-positive values are validation errors, mirroring payload ids.
func pathID(c *gin.Context, param, field string) (uint, error) {
	v, err := strconv.Atoi(c.Param(param))
	if err != nil || v <= 0 {
		return 0, apperr.Validation(field + " must be a positive number")
	}
	return uint(v), nil
}
