package service

import (
	"context"
	"fairvalue/internal/domain"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RunStatusRegistry tracks step events for in-flight valuation runs. Each
// run holds an append-only event log plus a broadcast channel. A single
// streaming consumer reads the log through its own cursor, so a slow
// consumer never blocks the pipeline, and a completed run's events stay
// readable until the consumer drains them and calls Remove.
type RunStatusRegistry struct {
	mu   sync.Mutex
	runs map[uuid.UUID]*runStatus
}

type runStatus struct {
	events   []domain.StepEvent
	complete bool
	// closed and replaced on every append, waking any waiting consumer
	signal chan struct{}
}

func NewRunStatusRegistry() *RunStatusRegistry {
	return &RunStatusRegistry{
		runs: map[uuid.UUID]*runStatus{},
	}
}

// Register creates the event log for a run. Publishing to an unregistered
// run is a no-op, so the pipeline registers before its first step.
func (r *RunStatusRegistry) Register(runID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.runs[runID]; ok {
		return
	}
	r.runs[runID] = &runStatus{
		events: []domain.StepEvent{},
		signal: make(chan struct{}),
	}
}

// Publish appends an event and wakes the waiting consumer, if any. Events
// are never mutated or reordered after the append.
func (r *RunStatusRegistry) Publish(runID uuid.UUID, event domain.StepEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rs, ok := r.runs[runID]
	if !ok {
		return
	}
	rs.events = append(rs.events, event)
	close(rs.signal)
	rs.signal = make(chan struct{})
}

// MarkComplete seals the run's event log. Waits on a sealed, fully-read
// log return immediately instead of blocking out the timeout.
func (r *RunStatusRegistry) MarkComplete(runID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rs, ok := r.runs[runID]
	if !ok {
		return
	}
	rs.complete = true
	close(rs.signal)
	rs.signal = make(chan struct{})
}

// WaitForEvents returns the events past cursor, waiting up to timeout when
// the consumer has caught up. The bool reports run completion. An empty
// slice with complete=false means the wait timed out; the caller should
// poll again with the same cursor.
func (r *RunStatusRegistry) WaitForEvents(ctx context.Context, runID uuid.UUID, cursor int, timeout time.Duration) ([]domain.StepEvent, bool, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		r.mu.Lock()
		rs, ok := r.runs[runID]
		if !ok {
			r.mu.Unlock()
			return nil, false, fmt.Errorf("no active run %s", runID.String())
		}
		if cursor < 0 || cursor > len(rs.events) {
			r.mu.Unlock()
			return nil, false, fmt.Errorf("cursor %d out of range for run with %d events", cursor, len(rs.events))
		}
		if len(rs.events) > cursor {
			events := append([]domain.StepEvent{}, rs.events[cursor:]...)
			complete := rs.complete
			r.mu.Unlock()
			return events, complete, nil
		}
		if rs.complete {
			r.mu.Unlock()
			return []domain.StepEvent{}, true, nil
		}
		signal := rs.signal
		r.mu.Unlock()

		select {
		case <-signal:
		case <-deadline.C:
			return []domain.StepEvent{}, false, nil
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	}
}

// Snapshot returns everything logged so far without waiting.
func (r *RunStatusRegistry) Snapshot(runID uuid.UUID) ([]domain.StepEvent, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rs, ok := r.runs[runID]
	if !ok {
		return nil, false, fmt.Errorf("no active run %s", runID.String())
	}
	return append([]domain.StepEvent{}, rs.events...), rs.complete, nil
}

// Remove drops a run's event log. The streaming consumer calls this after
// draining a completed run.
func (r *RunStatusRegistry) Remove(runID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.runs, runID)
}
