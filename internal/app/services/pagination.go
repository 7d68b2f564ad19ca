package services

import (
	"github.com/ademsari/coursehub/internal/pkg/helpers"
)

// calculatePage converts 1-based page parameters into an SQL offset and
// limit, clamping the size to the configured bounds.
func calculatePage(page, size int) (offset uint64, limit int) {
	return helpers.CalculateOffsetLimit(page, size)
}
