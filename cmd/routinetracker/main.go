package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"routine-tracker/internal/api"
	"routine-tracker/internal/config"
	"routine-tracker/internal/handler"
	"routine-tracker/internal/repository"
	"routine-tracker/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewRoutineTaskRepository(db)
	logRepo := repository.NewDailyLogRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)

	userSvc := service.NewUserService(userRepo)
	taskSvc := service.NewTaskService(taskRepo)
	logSvc := service.NewLogService(logRepo, taskRepo)
	generatorSvc := service.NewGeneratorService(taskRepo, logRepo)
	streakSvc := service.NewStreakService(logRepo, service.StreakRule(cfg.StreakRule))
	analyticsSvc := service.NewAnalyticsService(logRepo, goalRepo, cfg.GoalTargetPercent)
	goalSvc := service.NewGoalService(goalRepo)
	interviewSvc := service.NewInterviewService(interviewRepo)

	router := api.SetupRouter(api.Handlers{
		Task:      handler.NewTaskHandler(taskSvc),
		Log:       handler.NewLogHandler(logSvc, generatorSvc),
		Analytics: handler.NewAnalyticsHandler(analyticsSvc, streakSvc),
		User:      handler.NewUserHandler(userSvc, goalSvc),
		Interview: handler.NewInterviewHandler(interviewSvc),
	}, cfg.JWTSecret)

	if cfg.MaintenanceTime != "" {
		scheduler := service.NewSchedulerService(time.Local)
		if _, err := scheduler.ScheduleDaily(cfg.MaintenanceTime, func() {
			if err := repository.Maintain(db); err != nil {
				log.Printf("maintenance: %v", err)
			}
		}); err != nil {
			log.Fatalf("schedule maintenance: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	server := &http.Server{
		Addr:    cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("Shutdown complete.")
}
