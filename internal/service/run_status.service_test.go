package service

import (
	"context"
	"testing"
	"time"

	"fairvalue/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRunStatusRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("already-published events return without waiting", func(t *testing.T) {
		registry := NewRunStatusRegistry()
		runID := uuid.New()
		registry.Register(runID)
		registry.Publish(runID, domain.StepEvent{StepName: domain.StepValidate, Status: domain.StepStatusRunning})
		registry.Publish(runID, domain.StepEvent{StepName: domain.StepValidate, Status: domain.StepStatusCompleted})

		start := time.Now()
		events, complete, err := registry.WaitForEvents(ctx, runID, 0, 5*time.Second)
		require.NoError(t, err)
		require.False(t, complete)
		require.Len(t, events, 2)
		require.Less(t, time.Since(start), time.Second)
	})

	t.Run("cursor skips already-read events", func(t *testing.T) {
		registry := NewRunStatusRegistry()
		runID := uuid.New()
		registry.Register(runID)
		registry.Publish(runID, domain.StepEvent{StepName: domain.StepValidate, Status: domain.StepStatusCompleted})
		registry.Publish(runID, domain.StepEvent{StepName: domain.StepEnrich, Status: domain.StepStatusRunning})
		registry.Publish(runID, domain.StepEvent{StepName: domain.StepEnrich, Status: domain.StepStatusCompleted})

		events, _, err := registry.WaitForEvents(ctx, runID, 1, time.Second)
		require.NoError(t, err)
		require.Len(t, events, 2)
		require.Equal(t, domain.StepEnrich, events[0].StepName)
		require.Equal(t, domain.StepStatusRunning, events[0].Status)
	})

	t.Run("caught-up consumer is woken by a publish", func(t *testing.T) {
		registry := NewRunStatusRegistry()
		runID := uuid.New()
		registry.Register(runID)

		go func() {
			time.Sleep(50 * time.Millisecond)
			registry.Publish(runID, domain.StepEvent{StepName: domain.StepFetch, Status: domain.StepStatusRunning})
		}()

		events, complete, err := registry.WaitForEvents(ctx, runID, 0, 5*time.Second)
		require.NoError(t, err)
		require.False(t, complete)
		require.Len(t, events, 1)
		require.Equal(t, domain.StepFetch, events[0].StepName)
	})

	t.Run("wait times out with an empty batch", func(t *testing.T) {
		registry := NewRunStatusRegistry()
		runID := uuid.New()
		registry.Register(runID)

		start := time.Now()
		events, complete, err := registry.WaitForEvents(ctx, runID, 0, 50*time.Millisecond)
		require.NoError(t, err)
		require.False(t, complete)
		require.Empty(t, events)
		require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("fully-read completed run returns immediately", func(t *testing.T) {
		registry := NewRunStatusRegistry()
		runID := uuid.New()
		registry.Register(runID)
		registry.Publish(runID, domain.StepEvent{StepName: domain.StepPersist, Status: domain.StepStatusCompleted})
		registry.MarkComplete(runID)

		events, complete, err := registry.WaitForEvents(ctx, runID, 1, 5*time.Second)
		require.NoError(t, err)
		require.True(t, complete)
		require.Empty(t, events)
	})

	t.Run("unknown run is an error", func(t *testing.T) {
		registry := NewRunStatusRegistry()

		_, _, err := registry.WaitForEvents(ctx, uuid.New(), 0, time.Millisecond)
		require.Error(t, err)
		require.Contains(t, err.Error(), "no active run")
	})

	t.Run("removed run is unknown", func(t *testing.T) {
		registry := NewRunStatusRegistry()
		runID := uuid.New()
		registry.Register(runID)
		registry.Remove(runID)

		_, _, err := registry.Snapshot(runID)
		require.Error(t, err)
	})

	t.Run("cursor past the log is an error", func(t *testing.T) {
		registry := NewRunStatusRegistry()
		runID := uuid.New()
		registry.Register(runID)

		_, _, err := registry.WaitForEvents(ctx, runID, 3, time.Millisecond)
		require.Error(t, err)
		require.Contains(t, err.Error(), "out of range")
	})

	t.Run("consumer drains a concurrent publisher in order", func(t *testing.T) {
		registry := NewRunStatusRegistry()
		runID := uuid.New()
		registry.Register(runID)

		steps := []string{
			domain.StepValidate, domain.StepEnrich, domain.StepFetch,
			domain.StepValuate, domain.StepNarrate, domain.StepPersist,
		}
		go func() {
			for _, step := range steps {
				registry.Publish(runID, domain.StepEvent{StepName: step, Status: domain.StepStatusCompleted})
				time.Sleep(5 * time.Millisecond)
			}
			registry.MarkComplete(runID)
		}()

		received := []domain.StepEvent{}
		cursor := 0
		for {
			events, complete, err := registry.WaitForEvents(ctx, runID, cursor, 5*time.Second)
			require.NoError(t, err)
			received = append(received, events...)
			cursor += len(events)
			if complete && len(events) == 0 {
				break
			}
		}

		require.Len(t, received, len(steps))
		for i, step := range steps {
			require.Equal(t, step, received[i].StepName)
		}
	})
}
