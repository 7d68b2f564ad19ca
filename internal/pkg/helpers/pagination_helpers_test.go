package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page default size", 1, 5, 0, 5},
		{"third page", 3, 5, 10, 5},
		{"zero size falls back to default", 1, 0, 0, DefaultPageSize},
		{"oversized page size falls back to default", 1, 500, 0, DefaultPageSize},
		{"page below one treated as first", 0, 10, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(12, 1, 5)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 5, info.PageSize)
	assert.Equal(t, int64(12), info.TotalItems)

	empty := NewPaginationInfo(0, 1, 5)
	assert.Equal(t, 1, empty.TotalPages)

	beyond := NewPaginationInfo(12, 9, 5)
	assert.Equal(t, 3, beyond.CurrentPage)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query    string
		wantPage int
		wantSize int
	}{
		{"", 1, DefaultPageSize},
		{"?page=2&size=10", 2, 10},
		{"?page=abc&size=xyz", 1, DefaultPageSize},
		{"?page=-1&size=1000", 1, DefaultPageSize},
		{"?size=100", 1, 100},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/"+tt.query, nil)

		page, size := ParsePaginationParams(c)
		assert.Equal(t, tt.wantPage, page, tt.query)
		assert.Equal(t, tt.wantSize, size, tt.query)
	}
}
