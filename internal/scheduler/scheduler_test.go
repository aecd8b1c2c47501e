// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PinkuChanda/frankfurter-rebels/internal/testutil"
)

func TestAdd_ValidatesSpec(t *testing.T) {
	s := New(testutil.TestLogger())
	noop := func(context.Context) error { return nil }

	tests := []struct {
		spec    string
		wantErr bool
	}{
		{"0 3 * * *", false},
		{"@daily", false},
		{"*/15 * * * *", false},
		{"", true},
		{"every day", true},
		{"0 3 * *", true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			err := s.Add("job", tt.spec, noop)
			if (err != nil) != tt.wantErr {
				t.Errorf("Add(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
		})
	}
}

func TestStartStop(t *testing.T) {
	s := New(testutil.TestLogger())
	if err := s.Add("job", "@hourly", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("Add: %v", err)
	}
	s.Start()
	s.Stop()
}

func TestRun_LogsFailure(t *testing.T) {
	s := New(testutil.TestLogger())
	ran := false
	s.run("failing", func(ctx context.Context) error {
		ran = true
		if _, ok := ctx.Deadline(); !ok {
			t.Error("job context has no deadline")
		}
		return errors.New("boom")
	})
	if !ran {
		t.Error("job did not run")
	}
}

func TestPruneEvents(t *testing.T) {
	var got time.Duration
	job := PruneEvents(func(_ context.Context, retention time.Duration) (int64, error) {
		got = retention
		return 3, nil
	}, 48*time.Hour, testutil.TestLogger())

	if err := job(context.Background()); err != nil {
		t.Fatalf("job: %v", err)
	}
	if got != 48*time.Hour {
		t.Errorf("retention = %v, want 48h", got)
	}

	failing := PruneEvents(func(context.Context, time.Duration) (int64, error) {
		return 0, errors.New("db locked")
	}, time.Hour, testutil.TestLogger())
	if err := failing(context.Background()); err == nil {
		t.Error("expected error from failing prune")
	}
}
