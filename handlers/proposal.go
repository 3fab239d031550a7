package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigfit/backend/auth"
	"github.com/gigfit/backend/extract"
	"github.com/gigfit/backend/gemini"
	"github.com/gigfit/backend/guardrail"
	"github.com/gigfit/backend/models"
	"github.com/gigfit/backend/storage"
)

// ProposalHandler handles proposal drafting requests
type ProposalHandler struct {
	geminiClient    *gemini.Client
	firestoreClient *storage.FirestoreClient
	storageClient   *storage.CloudStorageClient
	allowGithub     bool
}

// NewProposalHandler creates a new proposal handler. allowGithub is the
// server-wide default for keeping github.com portfolio links in sanitized
// proposals; a request can enable it but never disable the server default.
func NewProposalHandler(
	geminiClient *gemini.Client,
	firestoreClient *storage.FirestoreClient,
	storageClient *storage.CloudStorageClient,
	allowGithub bool,
) *ProposalHandler {
	return &ProposalHandler{
		geminiClient:    geminiClient,
		firestoreClient: firestoreClient,
		storageClient:   storageClient,
		allowGithub:     allowGithub,
	}
}

// GenerateProposal handles proposal generation requests
// @Summary Generate a proposal
// @Description Draft a cover letter and screening-question answers for a saved job or raw posting text. The draft is always sanitized for off-platform contact details before it is returned or archived.
// @Tags Proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.GenerateProposalRequest true "Proposal request"
// @Success 200 {object} models.GenerateProposalResponse "Sanitized proposal"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /proposals/generate [post]
func (h *ProposalHandler) GenerateProposal(c *gin.Context) {
	var req models.GenerateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	if req.JobID == "" && req.RawText == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Please provide a job_id or raw posting text",
			Code:  http.StatusBadRequest,
		})
		return
	}

	claims := auth.GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: "Authentication required",
			Code:  http.StatusUnauthorized,
		})
		return
	}

	// Resolve the posting: saved job wins over pasted text
	var posting models.JobPosting
	var job *models.Job
	if req.JobID != "" {
		var err error
		job, err = h.firestoreClient.GetJob(c.Request.Context(), req.JobID)
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
		posting = job.Posting
	} else {
		posting = extract.ExtractPosting(req.RawText)
	}

	// Freelancer overview personalises the draft when present
	var overview string
	if user, err := h.firestoreClient.GetUserByEmail(c.Request.Context(), claims.Email); err == nil {
		overview = user.Overview
	}

	log.Printf("[Handler] GenerateProposal: user=%s, jobID=%q, title=%q, tone=%q",
		claims.Email, req.JobID, posting.Title, req.Tone)

	draft, err := h.geminiClient.DraftProposal(c.Request.Context(), posting, overview, req.Skills, req.Tone)
	if err != nil {
		log.Printf("[Handler] GenerateProposal error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Proposal generation failed",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	// LLM output is untrusted: sanitize the cover letter and every answer
	opts := guardrail.DefaultOptions()
	opts.AllowGithub = req.AllowGithub || h.allowGithub

	sanitized := guardrail.SanitizeContacts(draft.CoverLetter, opts)
	response := models.GenerateProposalResponse{
		CoverLetter:   sanitized.SanitizedText,
		FoundContacts: sanitized.FoundContacts,
	}
	for _, answer := range draft.QuestionAnswers {
		res := guardrail.SanitizeContacts(answer, opts)
		response.QuestionAnswers = append(response.QuestionAnswers, res.SanitizedText)
		response.FoundContacts = append(response.FoundContacts, res.FoundContacts...)
	}

	if len(response.FoundContacts) > 0 {
		log.Printf("[Handler] GenerateProposal: redacted %d contact(s) from draft for user: %s",
			len(response.FoundContacts), claims.Email)
	}

	// Archive the sanitized proposal alongside the saved job
	if job != nil && h.storageClient != nil {
		archiveURL, err := h.storageClient.ArchiveProposal(
			c.Request.Context(), claims.Email, job.ID, []byte(h.renderArchive(posting, response)))
		if err != nil {
			log.Printf("[Handler] Failed to archive proposal: %v", err)
		} else {
			response.ProposalURL = archiveURL
			if err := h.firestoreClient.UpdateJobProposalURL(c.Request.Context(), job.ID, archiveURL); err != nil {
				log.Printf("[Handler] Failed to record proposal URL: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, response)
}

// RefineProposal rewrites an existing proposal
// @Summary Refine a proposal
// @Description Rewrite an existing proposal following free-form instructions. The rewritten text is sanitized for off-platform contact details before it is returned.
// @Tags Proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RefineProposalRequest true "Refine request"
// @Success 200 {object} models.RefineProposalResponse "Sanitized rewritten proposal"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /proposals/refine [post]
func (h *ProposalHandler) RefineProposal(c *gin.Context) {
	var req models.RefineProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	refined, err := h.geminiClient.RefineProposal(c.Request.Context(), req.Proposal, req.Instructions)
	if err != nil {
		log.Printf("[Handler] RefineProposal error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Proposal refinement failed",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	opts := guardrail.DefaultOptions()
	opts.AllowGithub = req.AllowGithub || h.allowGithub

	sanitized := guardrail.SanitizeContacts(refined, opts)
	c.JSON(http.StatusOK, models.RefineProposalResponse{
		Proposal:      sanitized.SanitizedText,
		FoundContacts: sanitized.FoundContacts,
	})
}

// GetArchivedProposal fetches a job's archived proposal back from storage
// @Summary Get an archived proposal
// @Description Fetch the archived proposal for a saved job, with a temporary signed link for sharing
// @Tags Proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} models.ProposalArchiveResponse "Archived proposal"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "No archived proposal"
// @Router /jobs/{id}/proposal [get]
func (h *ProposalHandler) GetArchivedProposal(c *gin.Context) {
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
	if job.ProposalURL == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "No proposal has been archived for this job",
			Code:  http.StatusNotFound,
		})
		return
	}

	content, err := h.storageClient.Download(c.Request.Context(), job.ProposalURL)
	if err != nil {
		log.Printf("[Handler] Failed to download archived proposal: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to fetch archived proposal",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	signedURL, err := h.storageClient.GetSignedURL(c.Request.Context(), job.ProposalURL, 15*time.Minute)
	if err != nil {
		// The content is still useful without a share link
		log.Printf("[Handler] Failed to sign proposal URL: %v", err)
	}

	c.JSON(http.StatusOK, models.ProposalArchiveResponse{
		JobID:     job.ID,
		Content:   string(content),
		SignedURL: signedURL,
	})
}

// renderArchive flattens a proposal into the plain-text archive format
func (h *ProposalHandler) renderArchive(posting models.JobPosting, p models.GenerateProposalResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Proposal for: %s\n\n", posting.Title)
	b.WriteString(p.CoverLetter)
	for i, answer := range p.QuestionAnswers {
		question := ""
		if i < len(posting.ScreeningQuestions) {
			question = posting.ScreeningQuestions[i]
		}
		fmt.Fprintf(&b, "\n\nQ: %s\nA: %s", question, answer)
	}
	return b.String()
}
