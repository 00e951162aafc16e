package repository

import "context"

// PlatformStats aggregates row counts across the platform's main tables.
type PlatformStats struct {
	TotalUsers           int64 `json:"total_users"`
	ActiveUsers          int64 `json:"active_users"`
	TotalSuppliers       int64 `json:"total_suppliers"`
	VerifiedSuppliers    int64 `json:"verified_suppliers"`
	PendingSuppliers     int64 `json:"pending_suppliers"`
	TotalProducts        int64 `json:"total_products"`
	ActiveProducts       int64 `json:"active_products"`
	PublishedContent     int64 `json:"published_content"`
	TotalConsultations   int64 `json:"total_consultations"`
	PendingConsultations int64 `json:"pending_consultations"`
	TotalReviews         int64 `json:"total_reviews"`
}

// StatsRepository defines the interface for platform-wide aggregate queries.
type StatsRepository interface {
	// Platform retrieves the current counts across all tracked tables.
	Platform(ctx context.Context) (*PlatformStats, error)
}
