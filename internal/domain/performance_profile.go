package domain

import (
	"context"
	"encoding/json"
	"time"
)

// ContextProfileKey is where request middleware stashes a profile so the
// resolvers and pipeline can add checkpoints without plumbing it through.
const ContextProfileKey = "performanceProfile"

type PerformanceProfileEvent struct {
	Name      string    `json:"name"`
	ElapsedMs int64     `json:"elapsedMs"`
	Time      time.Time `json:"time"`
}

type PerformanceProfile struct {
	StartTime time.Time                 `json:"-"`
	Events    []PerformanceProfileEvent `json:"events"`
	TotalMs   int64                     `json:"totalMs"`
}

func NewPerformanceProfile() *PerformanceProfile {
	return &PerformanceProfile{
		StartTime: time.Now(),
	}
}

// GetPerformanceProfile returns the profile on ctx, or nil when the entry
// point didn't attach one (lambda cold paths, tests).
func GetPerformanceProfile(ctx context.Context) *PerformanceProfile {
	profile, ok := ctx.Value(ContextProfileKey).(*PerformanceProfile)
	if !ok {
		return nil
	}
	return profile
}

func (p *PerformanceProfile) End() {
	if p == nil {
		return
	}
	p.TotalMs = time.Since(p.StartTime).Milliseconds()
}

// Add records a named checkpoint. No-op on a nil profile so callers
// don't have to guard the untracked paths.
func (p *PerformanceProfile) Add(name string) {
	if p == nil {
		return
	}
	now := time.Now()
	elapsed := int64(0)
	if len(p.Events) > 0 {
		elapsed = now.Sub(p.Events[len(p.Events)-1].Time).Milliseconds()
	}
	p.Events = append(p.Events, PerformanceProfileEvent{
		Name:      name,
		ElapsedMs: elapsed,
		Time:      now,
	})
}

func (p PerformanceProfile) ToJsonBytes() ([]byte, error) {
	return json.Marshal(p)
}
