// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*CatalogService)(nil)

type fakeReloader struct {
	calls   atomic.Int32
	err     error
	changed bool
}

func (f *fakeReloader) Reload(ctx context.Context) (bool, error) {
	f.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return false, errors.New("reload without deadline")
	}
	return f.changed, f.err
}

type fakeSweeper struct {
	calls atomic.Int32
}

func (f *fakeSweeper) SweepCache() int {
	f.calls.Add(1)
	return 1
}

func runFor(t *testing.T, svc *CatalogService, d time.Duration) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return svc.Serve(ctx)
}

func TestCatalogService_ReloadsOnSchedule(t *testing.T) {
	reloader := &fakeReloader{changed: true}
	sweeper := &fakeSweeper{}
	svc := NewCatalogService(reloader, sweeper, CatalogServiceConfig{
		ReloadInterval: 20 * time.Millisecond,
		SweepInterval:  20 * time.Millisecond,
	}, zerolog.Nop())

	err := runFor(t, svc, 150*time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if got := reloader.calls.Load(); got < 2 {
		t.Errorf("Reload called %d times, want at least 2", got)
	}
	if got := sweeper.calls.Load(); got < 2 {
		t.Errorf("SweepCache called %d times, want at least 2", got)
	}
}

func TestCatalogService_SurvivesReloadFailures(t *testing.T) {
	reloader := &fakeReloader{err: errors.New("source unreachable")}
	svc := NewCatalogService(reloader, nil, CatalogServiceConfig{
		ReloadInterval: 10 * time.Millisecond,
	}, zerolog.Nop())

	err := runFor(t, svc, 100*time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if got := reloader.calls.Load(); got < 2 {
		t.Errorf("Reload called %d times, want repeated attempts", got)
	}
}

func TestCatalogService_DisabledIntervals(t *testing.T) {
	reloader := &fakeReloader{}
	sweeper := &fakeSweeper{}
	svc := NewCatalogService(reloader, sweeper, CatalogServiceConfig{}, zerolog.Nop())

	_ = runFor(t, svc, 50*time.Millisecond)

	if reloader.calls.Load() != 0 || sweeper.calls.Load() != 0 {
		t.Errorf("reloads = %d, sweeps = %d, want none", reloader.calls.Load(), sweeper.calls.Load())
	}
	if svc.config.ReloadTimeout != time.Minute {
		t.Errorf("ReloadTimeout = %v, want 1m default", svc.config.ReloadTimeout)
	}
	if svc.String() != "catalog-service" {
		t.Errorf("String() = %q", svc.String())
	}
}
