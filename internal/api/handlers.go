// Package api wires Gin HTTP handlers for job submission and inspection
// on top of internal/store and pkg/search, following the teacher's
// Handlers struct and gin.H error-response idiom from internal/api/handlers.go.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Hayk10002/crossword-generator/internal/auth"
	"github.com/Hayk10002/crossword-generator/internal/middleware"
	"github.com/Hayk10002/crossword-generator/internal/realtime"
	"github.com/Hayk10002/crossword-generator/internal/store"
)

// Handlers holds the dependencies every job endpoint needs.
type Handlers struct {
	store       store.JobStore
	authService *auth.Service
	hub         *realtime.Hub
}

func NewHandlers(jobStore store.JobStore, authService *auth.Service, hub *realtime.Hub) *Handlers {
	return &Handlers{store: jobStore, authService: authService, hub: hub}
}

// AuthRequest is the body of POST /api/auth/login.
type AuthRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on a successful admin login.
type AuthResponse struct {
	Token string `json:"token"`
}

// Login validates the single admin account's credentials against the
// bcrypt hash configured at startup and returns a signed JWT.
func (h *Handlers) Login(adminEmail, adminPasswordHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AuthRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.Email != adminEmail || !h.authService.CheckPassword(req.Password, adminPasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		token, err := h.authService.GenerateToken(adminEmail, req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}

// CreateJobRequest is the body of POST /api/jobs.
type CreateJobRequest struct {
	Words       []string       `json:"words" binding:"required,min=1"`
	Policy      PolicySpec     `json:"policy"`
	Constraints ConstraintSpec `json:"constraints"`
	Strategy    string         `json:"strategy" binding:"omitempty,oneof=sorted randomized"`
}

// PolicySpec mirrors crossword.Policy so it can carry binding tags and
// JSON-omit-friendly defaults independent of the domain type.
type PolicySpec struct {
	SideBySide     bool `json:"sideBySide"`
	HeadByHead     bool `json:"headByHead"`
	SideByHead     bool `json:"sideByHead"`
	CornerByCorner bool `json:"cornerByCorner"`
}

// ConstraintSpec is the wire form of a constraint.Set: each field that is
// present (zero included) becomes one non-recoverable constraint, matching
// spec.md's Data Model.
type ConstraintSpec struct {
	MaxLength *uint16 `json:"maxLength,omitempty"`
	MaxHeight *uint16 `json:"maxHeight,omitempty"`
	MaxArea   *uint32 `json:"maxArea,omitempty"`
}

// JobResponse is the representation of a Job returned to API clients.
type JobResponse struct {
	ID       string       `json:"id"`
	Words    []string     `json:"words"`
	Strategy string       `json:"strategy"`
	Status   store.Status `json:"status"`
}

func jobResponse(job *store.Job) JobResponse {
	return JobResponse{ID: job.ID, Words: job.Words, Strategy: job.Strategy, Status: job.Status}
}

// CreateJob persists a new job record. The search itself only starts once
// a client opens the job's WebSocket, per §4.9.
func (h *Handlers) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = "sorted"
	}

	policyJSON, err := marshalPolicy(req.Policy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode policy"})
		return
	}
	constraintsJSON, err := marshalConstraints(req.Constraints)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode constraints"})
		return
	}

	job := &store.Job{
		ID:              uuid.New().String(),
		Words:           req.Words,
		PolicyJSON:      policyJSON,
		ConstraintsJSON: constraintsJSON,
		Strategy:        strategy,
		Status:          store.StatusPending,
	}

	if err := h.store.CreateJob(job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create job"})
		return
	}

	c.JSON(http.StatusCreated, jobResponse(job))
}

// GetJob returns one job's metadata.
func (h *Handlers) GetJob(c *gin.Context) {
	job, err := h.store.GetJob(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	c.JSON(http.StatusOK, jobResponse(job))
}

// ListJobs is admin-only: it lists every job in the store.
func (h *Handlers) ListJobs(c *gin.Context) {
	jobs, err := h.store.ListJobs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	out := make([]JobResponse, len(jobs))
	for i, job := range jobs {
		out[i] = jobResponse(job)
	}
	c.JSON(http.StatusOK, gin.H{"jobs": out})
}

// CancelJob is admin-only: it marks a job cancelled and, if a search is
// currently streaming over a WebSocket, posts Stop to it.
func (h *Handlers) CancelJob(c *gin.Context) {
	claims := middleware.GetAuthUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	jobID := c.Param("id")
	job, err := h.store.GetJob(jobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}

	h.hub.Cancel(jobID)
	if err := h.store.UpdateJobStatus(jobID, store.StatusCancelled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel job"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "job cancelled"})
}

// StreamJob upgrades the connection and starts the job's search from the
// beginning over the realtime hub.
func (h *Handlers) StreamJob(c *gin.Context) {
	jobID := c.Param("id")
	job, err := h.store.GetJob(jobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}

	s, err := buildSearch(job)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := realtime.ServeWs(h.hub, h.store, jobID, s, c.Writer, c.Request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "websocket upgrade failed"})
	}
}
