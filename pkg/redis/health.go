package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Healthy bool              `json:"healthy"`
	Details map[string]string `json:"details"`
}

// HealthCheck pings Redis and reports the connection pool state
func (c *Client) HealthCheck(ctx context.Context) RedisHealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	healthy := true
	lastError := ""
	if err := c.Ping(ctx); err != nil {
		healthy = false
		lastError = fmt.Sprintf("ping failed: %v", err)
	}

	stats := c.rdb.PoolStats()
	return RedisHealthCheck{
		Healthy: healthy,
		Details: map[string]string{
			"address":     c.config.Addr(),
			"database":    strconv.Itoa(c.config.Database),
			"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
			"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
			"last_error":  lastError,
		},
	}
}
