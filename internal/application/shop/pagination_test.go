package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequestSanitize(t *testing.T) {
	t.Run("fills defaults", func(t *testing.T) {
		req := PageRequest{}
		req.Sanitize()

		assert.Equal(t, 1, req.Page)
		assert.Equal(t, defaultPageSize, req.Size)
		assert.Equal(t, "id", req.SortBy)
		assert.Equal(t, "asc", req.Direction)
	})

	t.Run("clamps oversized pages", func(t *testing.T) {
		req := PageRequest{Page: -3, Size: 9999, Direction: "sideways"}
		req.Sanitize()

		assert.Equal(t, 1, req.Page)
		assert.Equal(t, maxPageSize, req.Size)
		assert.Equal(t, "asc", req.Direction)
	})
}

func TestNewPagedResponse(t *testing.T) {
	base := "/api/v1/customers"

	t.Run("middle page carries all four links", func(t *testing.T) {
		req := PageRequest{Page: 2, Size: 2, SortBy: "id", Direction: "asc"}
		resp := NewPagedResponse([]string{"a", "b"}, 5, req, base)

		assert.Equal(t, int64(5), resp.TotalElements)
		assert.Equal(t, 3, resp.TotalPages)
		assert.False(t, resp.Last)
		assert.Equal(t, "/api/v1/customers?page=1&size=2&sortBy=id&direction=asc", resp.Links["first"])
		assert.Equal(t, "/api/v1/customers?page=1&size=2&sortBy=id&direction=asc", resp.Links["prev"])
		assert.Equal(t, "/api/v1/customers?page=3&size=2&sortBy=id&direction=asc", resp.Links["next"])
		assert.Equal(t, "/api/v1/customers?page=3&size=2&sortBy=id&direction=asc", resp.Links["last"])
	})

	t.Run("first page has no prev link", func(t *testing.T) {
		req := PageRequest{Page: 1, Size: 2, SortBy: "id", Direction: "asc"}
		resp := NewPagedResponse([]string{"a", "b"}, 5, req, base)

		_, hasPrev := resp.Links["prev"]
		assert.False(t, hasPrev)
		assert.Contains(t, resp.Links, "next")
	})

	t.Run("last page has no next link", func(t *testing.T) {
		req := PageRequest{Page: 3, Size: 2, SortBy: "id", Direction: "asc"}
		resp := NewPagedResponse([]string{"e"}, 5, req, base)

		assert.True(t, resp.Last)
		_, hasNext := resp.Links["next"]
		assert.False(t, hasNext)
	})

	t.Run("empty result keeps first link only besides no last", func(t *testing.T) {
		req := PageRequest{Page: 1, Size: 2, SortBy: "id", Direction: "asc"}
		resp := NewPagedResponse([]string{}, 0, req, base)

		require.Contains(t, resp.Links, "first")
		assert.NotContains(t, resp.Links, "last")
		assert.NotContains(t, resp.Links, "next")
		assert.NotContains(t, resp.Links, "prev")
		assert.True(t, resp.Last)
		assert.Equal(t, 0, resp.TotalPages)
	})
}
