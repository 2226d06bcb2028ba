package handler

import (
	"github.com/gin-gonic/gin"

	"routine-tracker/internal/service"
	"routine-tracker/pkg/response"
)

// TaskHandler handles HTTP requests for routine task templates.
type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type createTaskRequest struct {
	UserID         string   `json:"user_id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	PlannedMinutes int      `json:"planned_minutes"`
	ActiveDays     []string `json:"active_days"`
}

// Create handles POST /api/v1/routine-tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if !requireUser(c, req.UserID) {
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), req.UserID, service.TaskInput{
		Name:           req.Name,
		Category:       req.Category,
		PlannedMinutes: req.PlannedMinutes,
		ActiveDays:     req.ActiveDays,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, task)
}

// Get handles GET /api/v1/routine-tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.taskService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !requireUser(c, task.UserID) {
		return
	}
	response.Success(c, task)
}

// ListByUser handles GET /api/v1/routine-tasks/user/:userID
func (h *TaskHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userID")
	if !requireUser(c, userID) {
		return
	}
	tasks, err := h.taskService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, tasks)
}

// ListByDay handles GET /api/v1/routine-tasks/user/:userID/day/:day
func (h *TaskHandler) ListByDay(c *gin.Context) {
	userID := c.Param("userID")
	if !requireUser(c, userID) {
		return
	}
	tasks, err := h.taskService.ListForDay(c.Request.Context(), userID, c.Param("day"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, tasks)
}

// Update handles PUT /api/v1/routine-tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id := c.Param("id")
	task, err := h.taskService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !requireUser(c, task.UserID) {
		return
	}

	var req service.TaskUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	updated, err := h.taskService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, updated)
}

// Delete handles DELETE /api/v1/routine-tasks/:id. Cascades to logs.
func (h *TaskHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	task, err := h.taskService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !requireUser(c, task.UserID) {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "routine task deleted"})
}
