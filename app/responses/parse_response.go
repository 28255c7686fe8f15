package responses

import (
	"github.com/freight-parser/app/models"
	"github.com/freight-parser/app/services"
	"github.com/freight-parser/internal/gazetteer"
)

// ParseMessageResponse is the single-message parse result envelope.
type ParseMessageResponse struct {
	Result           *models.ParseResult `json:"result"`
	CacheHit         bool                `json:"cache_hit"`
	ProcessingTimeMs int64               `json:"processing_time_ms"`
}

// BatchParseResponse acknowledges an accepted batch job.
type BatchParseResponse struct {
	JobID         string `json:"job_id"`
	TotalMessages int    `json:"total_messages"`
	Message       string `json:"message"`
}

// JobStatusResponse reports batch job progress.
type JobStatusResponse struct {
	JobID     string  `json:"job_id"`
	Status    string  `json:"status"`
	Progress  float64 `json:"progress"`
	Processed int     `json:"processed"`
	Total     int     `json:"total"`
	Message   string  `json:"message,omitempty"`
}

// JobResultsResponse carries completed batch results in input order.
type JobResultsResponse struct {
	JobID   string                `json:"job_id"`
	Total   int                   `json:"total"`
	Results []*models.ParseResult `json:"results"`
}

// SuggestResponse lists fuzzy location candidates for a token.
type SuggestResponse struct {
	Token       string                 `json:"token"`
	Suggestions []gazetteer.Suggestion `json:"suggestions"`
}

// ReviewListResponse is the paginated review queue.
type ReviewListResponse struct {
	Reviews []models.ParseReview `json:"reviews"`
	Counts  map[string]int64     `json:"counts"`
	Limit   int                  `json:"limit"`
}

// ReviewActionResponse acknowledges an approve/reject/correct action.
type ReviewActionResponse struct {
	Success   bool   `json:"success"`
	ReviewID  string `json:"review_id"`
	Action    string `json:"action"`
	Message   string `json:"message,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

// AdminStatsResponse wraps the system stats payload.
type AdminStatsResponse struct {
	Stats *services.SystemStats `json:"stats"`
}

// SeedResponse reports a search-index reseed.
type SeedResponse struct {
	DocsIndexed      int    `json:"docs_indexed"`
	ProcessingTimeMs int64  `json:"processing_time_ms"`
	Message          string `json:"message"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ErrorResponse is the generic error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
