package health

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const probeTimeout = 2 * time.Second

// Pinger is the liveness probe the monitor runs against the store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Status is the result of one health check.
type Status struct {
	Healthy   bool
	Database  string
	Timestamp time.Time
}

// Monitor polls store connectivity on an interval and answers
// synchronous health queries.
type Monitor struct {
	store    Pinger
	interval time.Duration
	logger   *zap.Logger
}

// NewMonitor builds a monitor for the given store handle.
func NewMonitor(store Pinger, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Monitor{store: store, interval: interval, logger: logger}
}

// Check performs a lightweight liveness probe against the store.
func (m *Monitor) Check(ctx context.Context) Status {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	status := Status{Timestamp: time.Now().UTC()}
	if err := m.store.Ping(probeCtx); err != nil {
		status.Database = "disconnected"
		return status
	}
	status.Healthy = true
	status.Database = "connected"
	return status
}

// Start runs the background probe loop until the context is canceled.
// Interval failures are logged, never escalated.
func (m *Monitor) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if status := m.Check(ctx); !status.Healthy {
					m.logger.Warn("store health check failed", zap.String("database", status.Database))
				}
			}
		}
	}()
}
