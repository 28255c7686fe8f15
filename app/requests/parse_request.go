package requests

import "github.com/freight-parser/app/models"

// ParseMessageRequest is the single-message parse payload.
type ParseMessageRequest struct {
	Message string       `json:"message" binding:"required"`
	Options ParseOptions `json:"options,omitempty"`
}

// ParseOptions controls parse behavior per request.
type ParseOptions struct {
	UseCache bool `json:"use_cache,omitempty"`
}

// BatchParseRequest submits a batch of chat messages as an async job.
type BatchParseRequest struct {
	Messages []string     `json:"messages" binding:"required,min=1,max=20000"`
	Options  ParseOptions `json:"options,omitempty"`
}

// SuggestRequest asks for fuzzy location candidates for one token.
type SuggestRequest struct {
	Token string `json:"token" binding:"required"`
	Max   int    `json:"max,omitempty"`
}

// ReviewApproveRequest approves or rejects a queued review.
type ReviewApproveRequest struct {
	ReviewerID string `json:"reviewer_id" binding:"required"`
}

// ReviewCorrectRequest replaces an automatic result with a manual one.
type ReviewCorrectRequest struct {
	ManualResult models.ParseResult `json:"manual_result" binding:"required"`
	ReviewerID   string             `json:"reviewer_id" binding:"required"`
}
