package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (c *countingSweeper) Sweep(context.Context) (int, error) {
	c.calls.Add(1)
	return 1, c.err
}

func TestSessionSweeperRunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sweeper := &countingSweeper{}
	done := StartSessionSweeper(ctx, sweeper, 5*time.Millisecond, nil)

	deadline := time.Now().Add(time.Second)
	for sweeper.calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
	if sweeper.calls.Load() < 2 {
		t.Fatalf("calls = %d, want at least 2", sweeper.calls.Load())
	}
}

func TestSessionSweeperKeepsGoingOnError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper := &countingSweeper{err: errors.New("store down")}
	StartSessionSweeper(ctx, sweeper, 5*time.Millisecond, nil)

	deadline := time.Now().Add(time.Second)
	for sweeper.calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if sweeper.calls.Load() < 3 {
		t.Fatalf("calls = %d, want sweeps to continue after errors", sweeper.calls.Load())
	}
}

func TestSessionSweeperDisabled(t *testing.T) {
	done := StartSessionSweeper(context.Background(), &countingSweeper{}, 0, nil)
	select {
	case <-done:
	default:
		t.Fatal("disabled sweeper should report done immediately")
	}
}
