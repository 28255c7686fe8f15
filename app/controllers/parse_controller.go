package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/freight-parser/app/requests"
	"github.com/freight-parser/app/responses"
	"github.com/freight-parser/app/services"
)

// ParseController handles message parse, suggest and batch job requests.
type ParseController struct {
	parseService *services.ParseService
	logger       *zap.Logger
}

// NewParseController creates a ParseController.
func NewParseController(parseService *services.ParseService, logger *zap.Logger) *ParseController {
	return &ParseController{
		parseService: parseService,
		logger:       logger,
	}
}

// ParseMessage parses a single chat message.
func (pc *ParseController) ParseMessage(c *gin.Context) {
	var req requests.ParseMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Details: err.Error(),
		})
		return
	}

	start := time.Now()
	result, cacheHit, err := pc.parseService.ParseMessage(c.Request.Context(), req.Message, req.Options.UseCache)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, responses.ErrorResponse{
				Error:   "EMPTY_MESSAGE",
				Details: err.Error(),
			})
			return
		}
		pc.logger.Error("parse failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "PARSE_ERROR",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.ParseMessageResponse{
		Result:           result,
		CacheHit:         cacheHit,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	})
}

// BatchParse accepts a batch of messages and returns a job id.
func (pc *ParseController) BatchParse(c *gin.Context) {
	var req requests.BatchParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Details: err.Error(),
		})
		return
	}

	jobID, err := pc.parseService.StartBatch(req.Messages, req.Options.UseCache)
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_BATCH",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, responses.BatchParseResponse{
		JobID:         jobID,
		TotalMessages: len(req.Messages),
		Message:       "job accepted",
	})
}

// GetJobStatus reports batch job progress.
func (pc *ParseController) GetJobStatus(c *gin.Context) {
	jobID := c.Param("jobID")
	job, ok := pc.parseService.GetJob(jobID)
	if !ok {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error: "JOB_NOT_FOUND",
		})
		return
	}

	c.JSON(http.StatusOK, responses.JobStatusResponse{
		JobID:     job.JobID,
		Status:    job.Status,
		Progress:  job.Progress,
		Processed: job.Processed,
		Total:     job.Total,
		Message:   job.Message,
	})
}

// GetJobResults returns the results of a finished batch job.
func (pc *ParseController) GetJobResults(c *gin.Context) {
	jobID := c.Param("jobID")
	results, ok := pc.parseService.GetJobResults(jobID)
	if !ok {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "RESULTS_NOT_READY",
			Details: "job does not exist or has not finished",
		})
		return
	}

	c.JSON(http.StatusOK, responses.JobResultsResponse{
		JobID:   jobID,
		Total:   len(results),
		Results: results,
	})
}

// HealthCheck answers liveness and readiness probes.
func (pc *ParseController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthResponse{
		Status:  "ok",
		Service: "freight-message-parser",
		Version: "1.0.0",
	})
}

// Suggest returns fuzzy location candidates for an unresolved token.
func (pc *ParseController) Suggest(c *gin.Context) {
	var req requests.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Details: err.Error(),
		})
		return
	}

	suggestions := pc.parseService.Suggest(c.Request.Context(), req.Token, req.Max)
	c.JSON(http.StatusOK, responses.SuggestResponse{
		Token:       req.Token,
		Suggestions: suggestions,
	})
}
