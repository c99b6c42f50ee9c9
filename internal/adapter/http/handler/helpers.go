package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaginationParams holds history pagination parameters
type PaginationParams struct {
	Limit  int
	Offset int
}

// Default pagination values
const (
	DefaultLimit  = 20
	MaxLimit      = 100
	DefaultOffset = 0
)

// ParsePagination reads ?limit and ?offset. Malformed or out-of-range values
// fall back to the defaults and limit is capped at MaxLimit.
func ParsePagination(c *gin.Context) *PaginationParams {
	limit := queryInt(c, "limit", DefaultLimit)
	if limit < 1 {
		limit = DefaultLimit
	}

	offset := queryInt(c, "offset", DefaultOffset)
	if offset < 0 {
		offset = DefaultOffset
	}

	return &PaginationParams{
		Limit:  min(limit, MaxLimit),
		Offset: offset,
	}
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw, ok := c.GetQuery(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// ExtractUUIDParam parses the UUID path parameter param
func ExtractUUIDParam(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", param, err)
	}
	return id, nil
}
