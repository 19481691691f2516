package orchestrator

import "sync"

// Status is the in-memory generation status probe exposed by the control
// plane: whether a run is in progress, its completion percentage, and
// a short human-readable message.
type Status struct {
	InProgress bool    `json:"in_progress"`
	Percent    float64 `json:"percent"`
	Message    string  `json:"message"`
}

// StatusTracker is a thread-safe holder for the single current Status,
// updated by the generation goroutine and read by the status HTTP handler.
type StatusTracker struct {
	mu     sync.RWMutex
	status Status
}

// NewStatusTracker returns a tracker in the idle state.
func NewStatusTracker() *StatusTracker {
	return &StatusTracker{status: Status{Message: "idle"}}
}

// Get returns a snapshot of the current status.
func (t *StatusTracker) Get() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

// Set replaces the current status, called as generation progresses.
func (t *StatusTracker) Set(s Status) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = s
}

// Update mutates percent/message while a run is in progress.
func (t *StatusTracker) Update(percent float64, message string) {
	t.Set(Status{InProgress: true, Percent: percent, Message: message})
}

// Finish marks the tracker idle with a final message.
func (t *StatusTracker) Finish(message string) {
	t.Set(Status{InProgress: false, Percent: 100, Message: message})
}
