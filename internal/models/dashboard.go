package models

import "time"

// DashboardSummary aggregates the counters shown on the landing screen.
// Every figure is recomputed from the student store on demand; only the
// assembled summary is cached.
type DashboardSummary struct {
	TotalStudents    int            `json:"total_students"`
	ClearanceCounts  map[string]int `json:"clearance_counts"`
	PaymentCounts    map[string]int `json:"payment_counts"`
	EligibleCount    int            `json:"eligible_count"`
	EligibleRate     string         `json:"eligible_rate"`
	ByFaculty        []FacultyCount `json:"by_faculty"`
	PendingDocuments int            `json:"pending_documents"`
	GeneratedAt      time.Time      `json:"generated_at"`
}

// FacultyCount is one faculty's slice of the student population.
type FacultyCount struct {
	Faculty  string `json:"faculty"`
	Total    int    `json:"total"`
	Eligible int    `json:"eligible"`
}

// SystemMetrics is a lightweight snapshot of runtime instrumentation for
// the settings screen.
type SystemMetrics struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
