package handler

import (
	"github.com/gin-gonic/gin"

	"routine-tracker/internal/service"
	"routine-tracker/pkg/response"
)

// UserHandler handles HTTP requests for users and goals.
type UserHandler struct {
	userService *service.UserService
	goalService *service.GoalService
}

func NewUserHandler(userService *service.UserService, goalService *service.GoalService) *UserHandler {
	return &UserHandler{userService: userService, goalService: goalService}
}

type upsertUserRequest struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Upsert handles PUT /api/v1/users. The collaborator calls this once after
// sign-in to ensure the backend row exists; no 404-then-create dance.
func (h *UserHandler) Upsert(c *gin.Context) {
	var req upsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if !requireUser(c, req.ID) {
		return
	}

	user, err := h.userService.Upsert(c.Request.Context(), req.ID, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, user)
}

// Get handles GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !requireUser(c, id) {
		return
	}
	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, user)
}

// GetByEmail handles GET /api/v1/users/email/:email
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.userService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !requireUser(c, user.ID) {
		return
	}
	response.Success(c, user)
}

// Delete handles DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !requireUser(c, id) {
		return
	}
	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "user deleted"})
}

type setGoalRequest struct {
	GoalType         string  `json:"goal_type"`
	TargetPercentage float64 `json:"target_percentage"`
}

// SetGoal handles PUT /api/v1/goals/:userID
func (h *UserHandler) SetGoal(c *gin.Context) {
	userID := c.Param("userID")
	if !requireUser(c, userID) {
		return
	}

	var req setGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	goal, err := h.goalService.Set(c.Request.Context(), userID, req.GoalType, req.TargetPercentage)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, goal)
}

// ListGoals handles GET /api/v1/goals/:userID
func (h *UserHandler) ListGoals(c *gin.Context) {
	userID := c.Param("userID")
	if !requireUser(c, userID) {
		return
	}
	goals, err := h.goalService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, goals)
}
