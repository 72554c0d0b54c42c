// Package metrics counts board mutations and persistence outcomes so that
// failures which never reach the user stay observable.
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics tracks board statistics using atomic operations for thread-safety
type Metrics struct {
	TasksAdded       atomic.Int64
	TasksMoved       atomic.Int64
	RejectedMutation atomic.Int64
	Saves            atomic.Int64
	SaveFailures     atomic.Int64
	Loads            atomic.Int64
	LoadFallbacks    atomic.Int64
	StartTime        time.Time
}

// New creates a new Metrics instance
func New() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncTasksAdded increments the added tasks counter
func (m *Metrics) IncTasksAdded() {
	m.TasksAdded.Add(1)
}

// IncTasksMoved increments the moved tasks counter
func (m *Metrics) IncTasksMoved() {
	m.TasksMoved.Add(1)
}

// IncRejected increments the counter of add/move requests that were no-ops
func (m *Metrics) IncRejected() {
	m.RejectedMutation.Add(1)
}

// IncSaves increments the successful saves counter
func (m *Metrics) IncSaves() {
	m.Saves.Add(1)
}

// IncSaveFailures increments the failed saves counter
func (m *Metrics) IncSaveFailures() {
	m.SaveFailures.Add(1)
}

// IncLoads increments the loads counter
func (m *Metrics) IncLoads() {
	m.Loads.Add(1)
}

// IncLoadFallbacks increments the counter of loads that fell back to the default board
func (m *Metrics) IncLoadFallbacks() {
	m.LoadFallbacks.Add(1)
}

// Snapshot represents a point-in-time snapshot of metrics
type Snapshot struct {
	TasksAdded    int64     `json:"tasks_added"`
	TasksMoved    int64     `json:"tasks_moved"`
	Rejected      int64     `json:"rejected"`
	Saves         int64     `json:"saves"`
	SaveFailures  int64     `json:"save_failures"`
	Loads         int64     `json:"loads"`
	LoadFallbacks int64     `json:"load_fallbacks"`
	StartTime     time.Time `json:"start_time"`
	Uptime        string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics.
// A nil receiver yields an empty snapshot.
func (m *Metrics) GetSnapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	return Snapshot{
		TasksAdded:    m.TasksAdded.Load(),
		TasksMoved:    m.TasksMoved.Load(),
		Rejected:      m.RejectedMutation.Load(),
		Saves:         m.Saves.Load(),
		SaveFailures:  m.SaveFailures.Load(),
		Loads:         m.Loads.Load(),
		LoadFallbacks: m.LoadFallbacks.Load(),
		StartTime:     m.StartTime,
		Uptime:        time.Since(m.StartTime).Round(time.Second).String(),
	}
}
