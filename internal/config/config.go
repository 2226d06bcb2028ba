package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the server.
type Config struct {
	Port              string
	DatabaseURL       string
	JWTSecret         string
	GoalTargetPercent float64
	StreakRule        string
	MaintenanceTime   string
}

// Load reads configuration from environment variables with sane defaults.
// A .env file in the working directory is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:              strings.TrimSpace(os.Getenv("PORT")),
		DatabaseURL:       strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:         strings.TrimSpace(os.Getenv("JWT_SECRET")),
		StreakRule:        strings.TrimSpace(os.Getenv("STREAK_RULE")),
		MaintenanceTime:   strings.TrimSpace(os.Getenv("MAINTENANCE_TIME")),
		GoalTargetPercent: parsePercent(strings.TrimSpace(os.Getenv("GOAL_TARGET_PERCENT"))),
	}

	if cfg.Port == "" {
		cfg.Port = ":8080"
	}
	if !strings.HasPrefix(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "routine_tracker.db"
	}
	if cfg.StreakRule == "" {
		cfg.StreakRule = "any"
	}
	if cfg.StreakRule != "any" && cfg.StreakRule != "all" {
		return cfg, fmt.Errorf("STREAK_RULE must be \"any\" or \"all\", got %q", cfg.StreakRule)
	}

	return cfg, nil
}

func parsePercent(raw string) float64 {
	if raw == "" {
		return 80
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || v > 100 {
		return 80
	}
	return v
}
