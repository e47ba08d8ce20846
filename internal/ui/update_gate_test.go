package ui

import (
	"sync"
	"testing"
	"time"
)

type runCounter struct {
	mu   sync.Mutex
	runs int
}

func (c *runCounter) bump() {
	c.mu.Lock()
	c.runs++
	c.mu.Unlock()
}

func (c *runCounter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runs
}

func (c *runCounter) waitFor(t *testing.T, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if c.count() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d runs, got %d", want, c.count())
}

func TestUpdateGateRunsImmediatelyWhenIdle(t *testing.T) {
	c := &runCounter{}
	g := newUpdateGate(50*time.Millisecond, c.bump)

	g.Trigger()
	if c.count() != 1 {
		t.Errorf("expected an immediate run, got %d", c.count())
	}
}

func TestUpdateGateMergesBurstIntoOneTrailingRun(t *testing.T) {
	c := &runCounter{}
	g := newUpdateGate(30*time.Millisecond, c.bump)

	g.Trigger()
	g.Trigger()
	g.Trigger()
	g.Trigger()

	if c.count() != 1 {
		t.Fatalf("expected only the leading run so far, got %d", c.count())
	}

	// The last change of the burst still lands, exactly once.
	c.waitFor(t, 2)
	time.Sleep(60 * time.Millisecond)
	if c.count() != 2 {
		t.Errorf("expected no further runs after the trailing one, got %d", c.count())
	}
}

func TestUpdateGateSeparatedTriggersEachRun(t *testing.T) {
	c := &runCounter{}
	g := newUpdateGate(10*time.Millisecond, c.bump)

	g.Trigger()
	time.Sleep(20 * time.Millisecond)
	g.Trigger()

	if c.count() != 2 {
		t.Errorf("expected two immediate runs outside the window, got %d", c.count())
	}
}
