package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigfit/backend/agent"
	"github.com/gigfit/backend/auth"
	"github.com/gigfit/backend/fit"
	"github.com/gigfit/backend/guardrail"
	"github.com/gigfit/backend/models"
	"github.com/gigfit/backend/normalize"
	"github.com/gigfit/backend/storage"
)

// TriageHandler handles posting triage and saved-job requests
type TriageHandler struct {
	agent           *agent.TriageAgent
	firestoreClient *storage.FirestoreClient
	storageClient   *storage.CloudStorageClient
	maxJobResults   int
}

// NewTriageHandler creates a new triage handler
func NewTriageHandler(
	triageAgent *agent.TriageAgent,
	firestoreClient *storage.FirestoreClient,
	storageClient *storage.CloudStorageClient,
	maxJobResults int,
) *TriageHandler {
	return &TriageHandler{
		agent:           triageAgent,
		firestoreClient: firestoreClient,
		storageClient:   storageClient,
		maxJobResults:   maxJobResults,
	}
}

// TriagePosting handles posting triage requests
// @Summary Triage a pasted job posting
// @Description Extract structured fields from raw pasted posting text, classify client fit, and flag off-platform contact solicitation. Authentication optional - if authenticated and save=true, the triaged job is saved.
// @Tags Triage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.TriageRequest true "Triage request"
// @Success 200 {object} models.TriageResponse "Triage result"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /triage [post]
func (h *TriageHandler) TriagePosting(c *gin.Context) {
	var req models.TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	var aiMatch *float64
	if v, ok := normalize.Percent(req.AIMatch); ok {
		aiMatch = &v
	}

	claims := auth.GetAuthClaims(c)

	log.Printf("[Handler] TriagePosting request: textLen=%d, save=%v, hasAIMatch=%v, authenticated=%v",
		len(req.RawText), req.Save, aiMatch != nil, claims != nil)

	result := h.agent.TriagePosting(req.RawText, aiMatch)

	response := models.TriageResponse{
		Posting:      result.Posting,
		Fit:          result.Fit,
		Solicitation: result.Solicitation,
	}

	// Save the triaged job if authenticated and requested
	if req.Save && claims != nil && h.firestoreClient != nil {
		now := time.Now()
		job := &models.Job{
			OwnerEmail:   claims.Email,
			RawText:      req.RawText,
			Posting:      result.Posting,
			Fit:          &result.Fit,
			Solicitation: &result.Solicitation,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		jobID, err := h.firestoreClient.SaveJob(c.Request.Context(), job)
		if err != nil {
			log.Printf("[Handler] Failed to save triaged job: %v", err)
		} else {
			response.JobID = jobID
			if h.storageClient != nil {
				if _, err := h.storageClient.ArchiveRawPosting(c.Request.Context(), claims.Email, jobID, []byte(req.RawText)); err != nil {
					log.Printf("[Handler] Failed to archive raw posting: %v", err)
				}
			}
			log.Printf("[Handler] Saved triaged job %s for user: %s", jobID, claims.Email)
		}
	}

	log.Printf("[Handler] TriagePosting success: bucket=%s, solicitation=%v",
		result.Fit.Bucket, result.Solicitation.Requested)
	c.JSON(http.StatusOK, response)
}

// EvaluateFit handles standalone fit classification requests
// @Summary Classify client fit
// @Description Classify client-quality fields into NOT_FIT, MEDIUM_FIT or BEST_FIT with reasons. Fields tolerate mixed representations: booleans as Yes/No, amounts as $15K, percentages as 60% or 0.6. Absent optional fields are treated as not provided, not zero.
// @Tags Triage
// @Accept json
// @Produce json
// @Param request body models.EvaluateFitRequest true "Client-quality fields"
// @Success 200 {object} models.FitResult "Fit classification"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /evaluate-fit [post]
func (h *TriageHandler) EvaluateFit(c *gin.Context) {
	var req models.EvaluateFitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	input := models.FitInput{ClientCountry: req.ClientCountry}

	if v, ok := normalize.Bool(req.PaymentVerified); ok {
		input.PaymentVerified = v
	}
	if v, ok := normalize.Number(req.ClientRating); ok {
		input.ClientRating = v
	}
	if v, ok := normalize.Number(req.JobsPosted); ok {
		input.JobsPostedCount = int(v)
	}
	if v, ok := normalize.Percent(req.HireRate); ok {
		input.HireRate = &v
	}
	if v, ok := normalize.Number(req.TotalSpent); ok {
		input.TotalSpentUSD = v
	}
	if v, ok := normalize.Percent(req.AIMatch); ok {
		input.AIMatch = &v
	}

	result := fit.EvaluateFit(input)

	log.Printf("[Handler] EvaluateFit: country=%q, bucket=%s", input.ClientCountry, result.Bucket)
	c.JSON(http.StatusOK, result)
}

// SanitizeText handles standalone contact sanitization requests
// @Summary Sanitize text for off-platform contact details
// @Description Redact emails, phone numbers, websites, social handles and addresses from text, replacing each with a redaction marker. Running the output through again is a no-op.
// @Tags Triage
// @Accept json
// @Produce json
// @Param request body models.SanitizeRequest true "Text to sanitize"
// @Success 200 {object} models.SanitizationResult "Sanitized text and found contacts"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /sanitize [post]
func (h *TriageHandler) SanitizeText(c *gin.Context) {
	var req models.SanitizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	opts := guardrail.DefaultOptions()
	opts.AllowGithub = req.AllowGithub

	result := guardrail.SanitizeContacts(req.Text, opts)

	log.Printf("[Handler] SanitizeText: textLen=%d, contactsFound=%d", len(req.Text), len(result.FoundContacts))
	c.JSON(http.StatusOK, result)
}

// ListJobs returns the authenticated user's saved jobs
// @Summary List saved jobs
// @Description Get the authenticated user's saved triaged jobs, newest first
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.JobListResponse "Saved jobs"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /jobs [get]
func (h *TriageHandler) ListJobs(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Authentication required",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	jobs, err := h.firestoreClient.ListJobsByOwner(c.Request.Context(), claims.Email, h.maxJobResults)
	if err != nil {
		log.Printf("[Handler] ListJobs error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to list jobs",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.JobListResponse{
		Jobs:  jobs,
		Total: len(jobs),
	})
}

// GetJob returns one saved job by ID
// @Summary Get a saved job
// @Description Get a single saved triaged job by its ID
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} models.Job "Saved job"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (h *TriageHandler) GetJob(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Authentication required",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	job, err := h.firestoreClient.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Job not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	if job.OwnerEmail != claims.Email {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error: "Access denied",
			Code:  http.StatusForbidden,
		})
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob removes a saved job and its archived artifacts
// @Summary Delete a saved job
// @Description Delete a saved triaged job along with its archived posting and proposal
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]string "Job deleted"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /jobs/{id} [delete]
func (h *TriageHandler) DeleteJob(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Authentication required",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	job, err := h.firestoreClient.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Job not found",
			Code:  http.StatusNotFound,
		})
		return
	}
	if job.OwnerEmail != claims.Email {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error: "Access denied",
			Code:  http.StatusForbidden,
		})
		return
	}

	// Archived artifacts go first; a leftover object is better than a
	// dangling document reference
	if h.storageClient != nil && job.ProposalURL != "" {
		if err := h.storageClient.Delete(c.Request.Context(), job.ProposalURL); err != nil {
			log.Printf("[Handler] Failed to delete archived proposal: %v", err)
		}
	}

	if err := h.firestoreClient.DeleteJob(c.Request.Context(), job.ID); err != nil {
		log.Printf("[Handler] DeleteJob error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to delete job",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	log.Printf("[Handler] Deleted job %s for user: %s", job.ID, claims.Email)
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// ReclassifyJobs re-runs fit classification over the user's saved jobs
// @Summary Reclassify saved jobs
// @Description Re-run the fit classifier over all of the authenticated user's saved jobs and persist changed results. Useful after threshold or country-list updates.
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} agent.ReclassifyStats "Reclassification summary"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /jobs/reclassify [post]
func (h *TriageHandler) ReclassifyJobs(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Authentication required",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	stats, err := h.agent.ReclassifyJobs(c.Request.Context(), h.firestoreClient, claims.Email)
	if err != nil {
		log.Printf("[Handler] ReclassifyJobs error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Reclassification failed",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and healthy
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   "1.0.0",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
