package postgres

import (
	"gorm.io/gorm"

	"github.com/SAP-F-2025/learning-service/internal/repositories"
)

// getDB returns tx when the caller runs inside a transaction, otherwise the base handle
func getDB(base, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return base
}

// applyAttemptFilters applies the optional attempt filters to a query
func applyAttemptFilters(query *gorm.DB, filters repositories.AttemptFilters) *gorm.DB {
	if filters.AttemptType != nil {
		query = query.Where("attempt_type = ?", *filters.AttemptType)
	}
	return query
}

// applySort orders by a whitelisted column with id as tie-breaker
func applySort(query *gorm.DB, sortBy, sortOrder string) *gorm.DB {
	// Whitelist allowed sort columns
	allowedSortColumns := map[string]bool{
		"created_at": true,
		"id":         true,
		"name":       true,
		"email":      true,
		"grade":      true,
	}

	if sortBy == "" || !allowedSortColumns[sortBy] {
		sortBy = "created_at"
	}

	if sortOrder != "asc" && sortOrder != "ASC" {
		sortOrder = "DESC"
	} else {
		sortOrder = "ASC"
	}

	// id keeps the order total when the sort column has ties
	query = query.Order(sortBy + " " + sortOrder)
	if sortBy != "id" {
		query = query.Order("id " + sortOrder)
	}

	return query
}
