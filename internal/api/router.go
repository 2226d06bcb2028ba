package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"routine-tracker/internal/handler"
	"routine-tracker/internal/middleware"
)

// Handlers bundles the route handlers the router mounts.
type Handlers struct {
	Task      *handler.TaskHandler
	Log       *handler.LogHandler
	Analytics *handler.AnalyticsHandler
	User      *handler.UserHandler
	Interview *handler.InterviewHandler
}

// SetupRouter builds the gin engine. An empty jwtSecret disables the auth
// middleware, leaving the API open for local single-user setups.
func SetupRouter(h Handlers, jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Routine Tracker API is running",
		})
	})

	api := r.Group("/api/v1")
	if jwtSecret != "" {
		api.Use(middleware.Auth(jwtSecret))
	}

	tasks := api.Group("/routine-tasks")
	{
		tasks.POST("", h.Task.Create)
		tasks.GET("/:id", h.Task.Get)
		tasks.GET("/user/:userID", h.Task.ListByUser)
		tasks.GET("/user/:userID/day/:day", h.Task.ListByDay)
		tasks.PUT("/:id", h.Task.Update)
		tasks.DELETE("/:id", h.Task.Delete)
	}

	logs := api.Group("/logs")
	{
		logs.POST("/generate-today/:userID", h.Log.GenerateToday)
		logs.GET("/user/:userID", h.Log.ListByUser)
		logs.GET("/user/:userID/date/:date", h.Log.ListByUserAndDate)
		logs.GET("/routine-task/:taskID", h.Log.ListByTask)
		logs.GET("/:id", h.Log.Get)
		logs.POST("", h.Log.Create)
		logs.PUT("/:id", h.Log.Update)
		logs.DELETE("/:id", h.Log.Delete)
	}

	analytics := api.Group("/analytics")
	{
		analytics.GET("/weekly/:userID", h.Analytics.Weekly)
		analytics.GET("/monthly/:userID", h.Analytics.Monthly)
		analytics.GET("/streak/:userID", h.Analytics.Streak)
	}

	users := api.Group("/users")
	{
		users.PUT("", h.User.Upsert)
		users.GET("/:id", h.User.Get)
		users.GET("/email/:email", h.User.GetByEmail)
		users.DELETE("/:id", h.User.Delete)
	}

	goals := api.Group("/goals")
	{
		goals.PUT("/:userID", h.User.SetGoal)
		goals.GET("/:userID", h.User.ListGoals)
	}

	interviews := api.Group("/interviews")
	{
		interviews.POST("", h.Interview.Create)
		interviews.GET("/:id", h.Interview.Get)
		interviews.GET("/user/:userID", h.Interview.ListByUser)
		interviews.PUT("/:id", h.Interview.Update)
		interviews.DELETE("/:id", h.Interview.Delete)
	}

	return r
}
