package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/justsurfingit/jobboard-api/internal/apperrors"
	"github.com/justsurfingit/jobboard-api/internal/dtos"
	"github.com/justsurfingit/jobboard-api/internal/services"
)

type JobHandler struct {
	log        *zap.Logger
	jobService *services.JobService
}

func NewJobHandler(log *zap.Logger, jobService *services.JobService) *JobHandler {
	return &JobHandler{
		log:        log,
		jobService: jobService,
	}
}

// CreateJob is POST /api/jobs.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": dtos.NewJobResponse(job)})
}

// GetAllJobs is GET /api/jobs. ?_limit=N truncates the result; no _limit
// means up to DefaultListLimit; a zero or unparseable _limit means all.
func (h *JobHandler) GetAllJobs(c *gin.Context) {
	limit := services.DefaultListLimit
	if raw, ok := c.GetQuery("_limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			limit = 0
		} else {
			limit = n
		}
	}

	jobs, err := h.jobService.ListJobs(c.Request.Context(), limit)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewJobListResponse(jobs))
}

// GetJobByID is GET /api/jobs/:id.
func (h *JobHandler) GetJobByID(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewJobResponse(job))
}

// EditJob is PUT /api/jobs/:id. Only the fields present in the body change.
func (h *JobHandler) EditJob(c *gin.Context) {
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.jobService.EditJob(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewJobResponse(job))
}

// DeleteJob is DELETE /api/jobs/:id.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	deleted, err := h.jobService.DeleteJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}

// renderError translates the error taxonomy into the JSON error body.
// Store/transport failures are logged but never leaked to the caller.
func (h *JobHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error("store operation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not process request"})
	}
}
