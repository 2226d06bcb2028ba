package handler

import (
	"github.com/gin-gonic/gin"

	"routine-tracker/internal/service"
	"routine-tracker/pkg/response"
)

// InterviewHandler handles HTTP requests for interview tracking.
type InterviewHandler struct {
	interviewService *service.InterviewService
}

func NewInterviewHandler(interviewService *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewService: interviewService}
}

type createInterviewRequest struct {
	UserID string `json:"user_id"`
	service.InterviewInput
}

// Create handles POST /api/v1/interviews
func (h *InterviewHandler) Create(c *gin.Context) {
	var req createInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if !requireUser(c, req.UserID) {
		return
	}

	interview, err := h.interviewService.Create(c.Request.Context(), req.UserID, req.InterviewInput)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, interview)
}

// Get handles GET /api/v1/interviews/:id
func (h *InterviewHandler) Get(c *gin.Context) {
	interview, err := h.interviewService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !requireUser(c, interview.UserID) {
		return
	}
	response.Success(c, interview)
}

// ListByUser handles GET /api/v1/interviews/user/:userID?status=&priority=
func (h *InterviewHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userID")
	if !requireUser(c, userID) {
		return
	}
	interviews, err := h.interviewService.ListByUser(
		c.Request.Context(), userID, c.Query("status"), c.Query("priority"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, interviews)
}

// Update handles PUT /api/v1/interviews/:id with a partial body.
func (h *InterviewHandler) Update(c *gin.Context) {
	id := c.Param("id")
	interview, err := h.interviewService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !requireUser(c, interview.UserID) {
		return
	}

	var req service.InterviewUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	updated, err := h.interviewService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, updated)
}

// Delete handles DELETE /api/v1/interviews/:id
func (h *InterviewHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	interview, err := h.interviewService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !requireUser(c, interview.UserID) {
		return
	}

	if err := h.interviewService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "interview deleted"})
}
