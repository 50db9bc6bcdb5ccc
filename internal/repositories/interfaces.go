package repositories

import (
	"github.com/SAP-F-2025/learning-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type StudentFilters struct {
	SortBy    string `json:"sort_by"`    // "created_at", "name", "id"
	SortOrder string `json:"sort_order"` // "asc", "desc"
}

type AttemptFilters struct {
	AttemptType *models.AttemptType `json:"attempt_type"`
}

// ===== SHARED STATISTICS STRUCTS =====

// AttemptCounts is the raw aggregate behind a ScoreSummary.
type AttemptCounts struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}
