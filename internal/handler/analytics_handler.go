package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"routine-tracker/internal/model"
	"routine-tracker/internal/service"
	"routine-tracker/pkg/response"
)

// AnalyticsHandler handles HTTP requests for reports and streaks.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	streakService    *service.StreakService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService, streakService *service.StreakService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, streakService: streakService}
}

// Weekly handles GET /api/v1/analytics/weekly/:userID
func (h *AnalyticsHandler) Weekly(c *gin.Context) {
	h.window(c, model.WindowWeekly)
}

// Monthly handles GET /api/v1/analytics/monthly/:userID
func (h *AnalyticsHandler) Monthly(c *gin.Context) {
	h.window(c, model.WindowMonthly)
}

func (h *AnalyticsHandler) window(c *gin.Context, window model.Window) {
	userID := c.Param("userID")
	if !requireUser(c, userID) {
		return
	}
	snapshot, err := h.analyticsService.ComputeAnalytics(c.Request.Context(), userID, window, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, snapshot)
}

// Streak handles GET /api/v1/analytics/streak/:userID
func (h *AnalyticsHandler) Streak(c *gin.Context) {
	userID := c.Param("userID")
	if !requireUser(c, userID) {
		return
	}
	streak, err := h.streakService.ComputeStreak(c.Request.Context(), userID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, streak)
}
