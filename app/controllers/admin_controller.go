package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/freight-parser/app/models"
	"github.com/freight-parser/app/requests"
	"github.com/freight-parser/app/responses"
	"github.com/freight-parser/app/services"
)

// AdminController handles the operational and review-queue endpoints.
type AdminController struct {
	adminService  *services.AdminService
	reviewService *services.ReviewService
	logger        *zap.Logger
}

// NewAdminController creates an AdminController. reviewService may be nil
// when MongoDB is disabled; the review endpoints then return 503.
func NewAdminController(adminService *services.AdminService, reviewService *services.ReviewService, logger *zap.Logger) *AdminController {
	return &AdminController{
		adminService:  adminService,
		reviewService: reviewService,
		logger:        logger,
	}
}

// GetStats returns runtime, cache and review-queue statistics.
func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.adminService.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "STATS_ERROR",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, responses.AdminStatsResponse{Stats: stats})
}

// InvalidateCache drops every cached parse result.
func (ac *AdminController) InvalidateCache(c *gin.Context) {
	if err := ac.adminService.InvalidateCache(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "CACHE_ERROR",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "cache invalidated"})
}

// ReseedSearchIndex rebuilds the Meilisearch location index.
func (ac *AdminController) ReseedSearchIndex(c *gin.Context) {
	result, err := ac.adminService.ReseedSearchIndex(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "SEED_ERROR",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, responses.SeedResponse{
		DocsIndexed:      result.DocsIndexed,
		ProcessingTimeMs: result.ProcessingTimeMs,
		Message:          "search index reseeded",
	})
}

// ListReviews returns the review queue, optionally filtered by status.
func (ac *AdminController) ListReviews(c *gin.Context) {
	if !ac.requireReviews(c) {
		return
	}
	status := c.Query("status")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := ac.reviewService.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "REVIEW_LIST_ERROR",
			Details: err.Error(),
		})
		return
	}

	counts := map[string]int64{}
	if total, pending, inReview, completed, err := ac.reviewService.Counts(c.Request.Context()); err == nil {
		counts["total"] = total
		counts["pending"] = pending
		counts["in_review"] = inReview
		counts["completed"] = completed
	}

	c.JSON(http.StatusOK, responses.ReviewListResponse{
		Reviews: reviews,
		Counts:  counts,
		Limit:   limit,
	})
}

// ApproveReview marks a queued review approved.
func (ac *AdminController) ApproveReview(c *gin.Context) {
	if !ac.requireReviews(c) {
		return
	}
	var req requests.ReviewApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Details: err.Error(),
		})
		return
	}

	review, err := ac.reviewService.Approve(c.Request.Context(), c.Param("reviewID"), req.ReviewerID)
	ac.respondReviewAction(c, review, err, "approve")
}

// RejectReview marks a queued review rejected.
func (ac *AdminController) RejectReview(c *gin.Context) {
	if !ac.requireReviews(c) {
		return
	}
	var req requests.ReviewApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Details: err.Error(),
		})
		return
	}

	review, err := ac.reviewService.Reject(c.Request.Context(), c.Param("reviewID"), req.ReviewerID)
	ac.respondReviewAction(c, review, err, "reject")
}

// CorrectReview replaces an automatic result with a reviewer-supplied one.
func (ac *AdminController) CorrectReview(c *gin.Context) {
	if !ac.requireReviews(c) {
		return
	}
	var req requests.ReviewCorrectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Details: err.Error(),
		})
		return
	}

	review, err := ac.reviewService.Correct(c.Request.Context(), c.Param("reviewID"), req.ReviewerID, req.ManualResult)
	ac.respondReviewAction(c, review, err, "correct")
}

func (ac *AdminController) requireReviews(c *gin.Context) bool {
	if ac.reviewService == nil {
		c.JSON(http.StatusServiceUnavailable, responses.ErrorResponse{
			Error:   "REVIEWS_DISABLED",
			Details: "review storage is not configured",
		})
		return false
	}
	return true
}

func (ac *AdminController) respondReviewAction(c *gin.Context, review *models.ParseReview, err error, action string) {
	if err != nil {
		ac.logger.Warn("review action failed",
			zap.String("action", action), zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "REVIEW_ACTION_ERROR",
			Details: err.Error(),
		})
		return
	}
	if review == nil {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error: "REVIEW_NOT_FOUND",
		})
		return
	}
	c.JSON(http.StatusOK, responses.ReviewActionResponse{
		Success:   true,
		ReviewID:  review.ID.Hex(),
		Action:    action,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
