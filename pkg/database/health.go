package database

import (
	"context"
	"database/sql"
	"time"
)

// Ping latency above this marks the database degraded rather than healthy.
// The queue keeps claiming work either way; it is a signal for operators.
const slowPingThreshold = 250 * time.Millisecond

// HealthStatus reports database reachability and connection pool pressure.
type HealthStatus struct {
	Status          string `json:"status"`
	ResponseTime    int64  `json:"response_time_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    int64  `json:"wait_duration_ms"`
	MaxOpenConns    int    `json:"max_open_conns"`
}

// Health pings the database and snapshots pool statistics. The returned
// status is "healthy", "degraded" (slow ping), or "unhealthy" (ping failed,
// with the error returned alongside).
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	elapsed := time.Since(start)
	status := "healthy"
	if elapsed > slowPingThreshold {
		status = "degraded"
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:          status,
		ResponseTime:    elapsed.Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}
