package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"routine-tracker/internal/service"
	"routine-tracker/pkg/response"
)

// LogHandler handles HTTP requests for daily logs.
type LogHandler struct {
	logService *service.LogService
	generator  *service.GeneratorService
}

func NewLogHandler(logService *service.LogService, generator *service.GeneratorService) *LogHandler {
	return &LogHandler{logService: logService, generator: generator}
}

// GenerateToday handles POST /api/v1/logs/generate-today/:userID.
// Safe to call on every page load; repeat calls return an empty list.
func (h *LogHandler) GenerateToday(c *gin.Context) {
	userID := c.Param("userID")
	if !requireUser(c, userID) {
		return
	}
	created, err := h.generator.GenerateToday(c.Request.Context(), userID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, created)
}

// ListByUserAndDate handles GET /api/v1/logs/user/:userID/date/:date
func (h *LogHandler) ListByUserAndDate(c *gin.Context) {
	userID := c.Param("userID")
	if !requireUser(c, userID) {
		return
	}
	logs, err := h.logService.ListForDate(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, logs)
}

// ListByUser handles GET /api/v1/logs/user/:userID
func (h *LogHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userID")
	if !requireUser(c, userID) {
		return
	}
	logs, err := h.logService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, logs)
}

// ListByTask handles GET /api/v1/logs/routine-task/:taskID. Ownership is
// checked against the task row, not the result set, so a foreign task with
// no logs is still rejected.
func (h *LogHandler) ListByTask(c *gin.Context) {
	taskID := c.Param("taskID")
	task, err := h.logService.Task(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !requireUser(c, task.UserID) {
		return
	}

	logs, err := h.logService.ListByTask(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, logs)
}

// Get handles GET /api/v1/logs/:id
func (h *LogHandler) Get(c *gin.Context) {
	log, err := h.logService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !requireUser(c, log.UserID) {
		return
	}
	response.Success(c, log)
}

type createLogRequest struct {
	UserID        string  `json:"user_id"`
	RoutineTaskID string  `json:"routine_task_id"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	ActualMinutes int     `json:"actual_minutes"`
	Notes         *string `json:"notes"`
}

// Create handles POST /api/v1/logs
func (h *LogHandler) Create(c *gin.Context) {
	var req createLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if !requireUser(c, req.UserID) {
		return
	}

	log, err := h.logService.Create(c.Request.Context(), req.UserID, service.LogInput{
		RoutineTaskID: req.RoutineTaskID,
		Date:          req.Date,
		Status:        req.Status,
		ActualMinutes: req.ActualMinutes,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, log)
}

// Update handles PUT /api/v1/logs/:id with a partial body.
func (h *LogHandler) Update(c *gin.Context) {
	id := c.Param("id")
	log, err := h.logService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !requireUser(c, log.UserID) {
		return
	}

	var req service.LogUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	updated, err := h.logService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, updated)
}

// Delete handles DELETE /api/v1/logs/:id
func (h *LogHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	log, err := h.logService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !requireUser(c, log.UserID) {
		return
	}

	if err := h.logService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "daily log deleted"})
}
