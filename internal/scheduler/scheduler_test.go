package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSweeper struct {
	calls int
	n     int
	err   error
}

func (f *fakeSweeper) EvictIdle(context.Context) (int, error) {
	f.calls++
	return f.n, f.err
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStartRejectsInvalidSpec(t *testing.T) {
	s := New("not a cron spec", &fakeSweeper{}, discard())
	assert.Error(t, s.Start(context.Background()))
}

func TestStartAndStop(t *testing.T) {
	s := New("*/5 * * * *", &fakeSweeper{}, discard())
	assert.NoError(t, s.Start(context.Background()))
	s.Stop()
}

func TestSweepCallsSweeper(t *testing.T) {
	f := &fakeSweeper{n: 3}
	s := New("@every 1h", f, discard())
	s.Sweep(context.Background())
	assert.Equal(t, 1, f.calls)

	f.err = errors.New("boom")
	s.Sweep(context.Background())
	assert.Equal(t, 2, f.calls)
}
