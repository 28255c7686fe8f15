package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review status constants.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusInReview = "in_review"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// ParseReview is a low-confidence or operator-flagged extraction queued
// for human review. Approving or correcting it feeds the moderation
// workflow; the engine itself never reads reviews back.
type ParseReview struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RawMessage   string             `bson:"raw_message" json:"raw_message"`
	Normalized   string             `bson:"normalized" json:"normalized"`
	AutoResult   ParseResult        `bson:"auto_result" json:"auto_result"`
	Confidence   float64            `bson:"confidence" json:"confidence"`
	Status       string             `bson:"status" json:"status"`
	ManualResult *ParseResult       `bson:"manual_result,omitempty" json:"manual_result,omitempty"`
	ReviewerID   *string            `bson:"reviewer_id,omitempty" json:"reviewer_id,omitempty"`
	ReviewedAt   *time.Time         `bson:"reviewed_at,omitempty" json:"reviewed_at,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// NewParseReview queues an automatic result for review. Confidence is the
// origin confidence when present, otherwise zero.
func NewParseReview(result *ParseResult) *ParseReview {
	conf := 0.0
	if result.Locations.Origin != nil {
		conf = result.Locations.Origin.Confidence
	}
	return &ParseReview{
		RawMessage: result.Raw,
		Normalized: result.Normalized,
		AutoResult: *result,
		Confidence: conf,
		Status:     ReviewStatusPending,
		CreatedAt:  time.Now(),
	}
}

// IsValidStatus reports whether Status is one of the known values.
func (r *ParseReview) IsValidStatus() bool {
	switch r.Status {
	case ReviewStatusPending, ReviewStatusInReview, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

// Approve accepts the automatic result as-is.
func (r *ParseReview) Approve(reviewerID string) {
	r.Status = ReviewStatusApproved
	r.ReviewerID = &reviewerID
	now := time.Now()
	r.ReviewedAt = &now
}

// Reject discards the automatic result.
func (r *ParseReview) Reject(reviewerID string) {
	r.Status = ReviewStatusRejected
	r.ReviewerID = &reviewerID
	now := time.Now()
	r.ReviewedAt = &now
}

// SetManualResult replaces the automatic result with a corrected one and
// marks the review approved.
func (r *ParseReview) SetManualResult(result ParseResult, reviewerID string) {
	r.ManualResult = &result
	r.Status = ReviewStatusApproved
	r.ReviewerID = &reviewerID
	now := time.Now()
	r.ReviewedAt = &now
}

// IsPending reports whether the review still awaits an operator.
func (r *ParseReview) IsPending() bool { return r.Status == ReviewStatusPending }

// IsCompleted reports whether a final decision was recorded.
func (r *ParseReview) IsCompleted() bool {
	return r.Status == ReviewStatusApproved || r.Status == ReviewStatusRejected
}
