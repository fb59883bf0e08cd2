package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "ASC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "DESC" {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CustomerSortFields contains allowed sort fields for customers
var CustomerSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"timezone":   true,
}

// BasketSortFields contains allowed sort fields for shopping baskets
var BasketSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"status":      true,
	"status_date": true,
}

// ViewSortFields contains allowed sort fields for the customer-basket-item
// view. The names are the column aliases of the joined projection.
var ViewSortFields = map[string]bool{
	"customer_id":      true,
	"customer_name":    true,
	"customer_created": true,
	"basket_id":        true,
	"basket_status":    true,
	"basket_created":   true,
	"item_id":          true,
	"item_description": true,
	"item_amount":      true,
	"item_created":     true,
}

// ItemSortFields contains allowed sort fields for basket items
var ItemSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"description": true,
	"amount":      true,
}
