// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/lead-pulse/internal/config"
	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Workers ──────────────────────────────────────────────────────────────────

// recordingWorker tracks the contexts it was started with.
type recordingWorker struct {
	id    int
	order *[]int
	ctx   context.Context
}

func (w *recordingWorker) Run(ctx context.Context) {
	w.ctx = ctx
	*w.order = append(*w.order, w.id)
}

func TestWorkers_Run_StartsAllInOrder(t *testing.T) {
	var order []int
	w1 := &recordingWorker{id: 1, order: &order}
	w2 := &recordingWorker{id: 2, order: &order}
	w3 := &recordingWorker{id: 3, order: &order}

	ctx := t.Context()
	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(ctx)

	assert.Equal(t, []int{1, 2, 3}, order)
	for _, w := range []*recordingWorker{w1, w2, w3} {
		assert.Equal(t, ctx, w.ctx)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NotPanics(t, func() { (&Workers{}).Run(t.Context()) })
}

func TestNewWorkers_ContainsJanitor(t *testing.T) {
	ws := NewWorkers(store.NewStorages(logger.Nop()), config.Session{CleanupInterval: time.Hour}, logger.Nop())

	require.Len(t, ws.workers, 1)
	assert.IsType(t, &SessionJanitor{}, ws.workers[0])
}

// ── SessionJanitor ───────────────────────────────────────────────────────────

type janitorEnv struct {
	now      time.Time
	storages *store.Storages
}

func newJanitorEnv() *janitorEnv {
	env := &janitorEnv{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	env.storages = store.NewStorages(logger.Nop(), store.WithClock(func() time.Time { return env.now }))
	return env
}

func TestSessionJanitor_SweepEvictsExpired(t *testing.T) {
	env := newJanitorEnv()
	ctx := t.Context()
	sessions := env.storages.SessionStorage

	short, err := sessions.Create(ctx, 1, time.Minute)
	require.NoError(t, err)
	long, err := sessions.Create(ctx, 2, time.Hour)
	require.NoError(t, err)

	j := NewSessionJanitor(sessions, time.Minute, logger.Nop())
	j.now = func() time.Time { return env.now.Add(2 * time.Minute) }

	j.sweep(ctx)

	assert.Equal(t, 1, sessions.Count(ctx))
	env.now = env.now.Add(2 * time.Minute)
	_, found := sessions.Get(ctx, short.Token)
	assert.False(t, found)
	_, found = sessions.Get(ctx, long.Token)
	assert.True(t, found)
}

func TestSessionJanitor_RunStopsOnCancel(t *testing.T) {
	env := newJanitorEnv()
	ctx, cancel := context.WithCancel(t.Context())

	_, err := env.storages.SessionStorage.Create(ctx, 1, time.Nanosecond)
	require.NoError(t, err)

	j := NewSessionJanitor(env.storages.SessionStorage, 5*time.Millisecond, logger.Nop())
	j.now = func() time.Time { return env.now.Add(time.Second) }
	j.Run(ctx)

	assert.Eventually(t, func() bool {
		return env.storages.SessionStorage.Count(context.Background()) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-j.Done():
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}

func TestSessionJanitor_DisabledInterval(t *testing.T) {
	j := NewSessionJanitor(store.NewStorages(logger.Nop()).SessionStorage, 0, logger.Nop())
	j.Run(t.Context())

	select {
	case <-j.Done():
	default:
		t.Fatal("disabled janitor must report done immediately")
	}
}
