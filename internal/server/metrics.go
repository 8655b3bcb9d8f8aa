package server

import (
	"sync/atomic"
	"time"
)

// Metrics tracks request statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal atomic.Int64
	InFlight      atomic.Int32
	ClientErrors  atomic.Int64
	ServerErrors  atomic.Int64
	StartTime     time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

func (m *Metrics) requestStarted() {
	m.InFlight.Add(1)
}

func (m *Metrics) requestFinished(status int) {
	m.InFlight.Add(-1)
	m.RequestsTotal.Add(1)
	switch {
	case status >= 500:
		m.ServerErrors.Add(1)
	case status >= 400:
		m.ClientErrors.Add(1)
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Status        string `json:"status"`
	RequestsTotal int64  `json:"requests_total"`
	InFlight      int32  `json:"in_flight"`
	ClientErrors  int64  `json:"client_errors"`
	ServerErrors  int64  `json:"server_errors"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// Snapshot returns a point-in-time copy of the counters
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Status:        "ok",
		RequestsTotal: m.RequestsTotal.Load(),
		InFlight:      m.InFlight.Load(),
		ClientErrors:  m.ClientErrors.Load(),
		ServerErrors:  m.ServerErrors.Load(),
		UptimeSeconds: int64(time.Since(m.StartTime).Seconds()),
	}
}
