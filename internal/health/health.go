package health

import (
	"context"
	"time"

	"rental-backend/internal/cache"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthChecker struct {
	db      *pgxpool.Pool
	started time.Time
}

type HealthStatus struct {
	Status        string         `json:"status"`
	UptimeSeconds int64          `json:"uptime_seconds"`
	Database      DatabaseHealth `json:"database"`
	Cache         string         `json:"cache"`
}

type DatabaseHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewHealthChecker(db *pgxpool.Pool) *HealthChecker {
	return &HealthChecker{db: db, started: time.Now()}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	dbHealth := h.checkDatabase()

	status := "healthy"
	if dbHealth.Status != "healthy" {
		status = "unhealthy"
	}

	// Redis is optional; a disabled cache does not degrade overall status
	cacheStatus := "disabled"
	if cache.Enabled() {
		cacheStatus = "healthy"
		if err := cache.Ping(); err != nil {
			cacheStatus = "unhealthy"
		}
	}

	return HealthStatus{
		Status:        status,
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
		Database:      dbHealth,
		Cache:         cacheStatus,
	}
}

func (h *HealthChecker) checkDatabase() DatabaseHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return DatabaseHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
		}
	}

	return DatabaseHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}
