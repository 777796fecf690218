package engine

import (
	"fmt"
	"testing"
	"time"
)

func TestSchedulerEveryRunsOnMultiples(t *testing.T) {
	s := NewScheduler()
	runs := 0
	s.Every("tick", 10*time.Millisecond, func() { runs++ })

	if n := s.Advance(35 * time.Millisecond); n != 3 || runs != 3 {
		t.Errorf("Advance(35ms) ran %d (counter %d), want 3", n, runs)
	}

	// Remainder carries over: 35 + 5 = 40 crosses the fourth deadline
	s.Advance(5 * time.Millisecond)
	if runs != 4 {
		t.Errorf("runs = %d after 40ms, want 4", runs)
	}
	if s.Now() != 40*time.Millisecond {
		t.Errorf("Now() = %v, want 40ms", s.Now())
	}
}

func TestSchedulerInterleavesByDueTime(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.Every("a", 3*time.Millisecond, func() { order = append(order, fmt.Sprintf("a%d", s.Now()/time.Millisecond)) })
	s.Every("b", 5*time.Millisecond, func() { order = append(order, fmt.Sprintf("b%d", s.Now()/time.Millisecond)) })

	s.Advance(15 * time.Millisecond)

	want := []string{"a3", "b5", "a6", "a9", "b10", "a12", "a15", "b15"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestSchedulerAfterRunsExactlyOnce(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After("once", 50*time.Millisecond, func() { fired++ })

	s.Advance(49 * time.Millisecond)
	if fired != 0 {
		t.Fatal("One-shot fired early")
	}
	if s.Pending("once") != 1 {
		t.Errorf("Pending(once) = %d, want 1", s.Pending("once"))
	}

	s.Advance(1 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d at deadline, want 1", fired)
	}

	s.Advance(200 * time.Millisecond)
	if fired != 1 {
		t.Errorf("One-shot fired %d times, want 1", fired)
	}
	if s.Pending("once") != 0 {
		t.Errorf("One-shot still pending after firing")
	}
}

func TestSchedulerTaskScheduledDuringAdvance(t *testing.T) {
	s := NewScheduler()
	var order []string
	scheduled := false

	s.Every("step", 10*time.Millisecond, func() {
		order = append(order, fmt.Sprintf("step%d", s.Now()/time.Millisecond))
		if !scheduled {
			scheduled = true
			s.After("delayed", 5*time.Millisecond, func() {
				order = append(order, fmt.Sprintf("delayed%d", s.Now()/time.Millisecond))
			})
		}
	})

	s.Advance(20 * time.Millisecond)

	want := []string{"step10", "delayed15", "step20"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestSchedulerTieBreaksByRegistration(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.Every("first", 10*time.Millisecond, func() { order = append(order, "first") })
	s.After("second", 10*time.Millisecond, func() { order = append(order, "second") })

	s.Advance(10 * time.Millisecond)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order = %v, want [first second]", order)
	}
}

func TestSchedulerClampsLargeDelta(t *testing.T) {
	s := NewScheduler()
	runs := 0
	s.Every("tick", 10*time.Millisecond, func() { runs++ })

	s.Advance(time.Second)

	if s.Now() != s.maxDelta {
		t.Errorf("Now() = %v, want %v", s.Now(), s.maxDelta)
	}
	if runs != int(s.maxDelta/(10*time.Millisecond)) {
		t.Errorf("runs = %d, want %d", runs, s.maxDelta/(10*time.Millisecond))
	}
	if s.Clamped() != time.Second-s.maxDelta {
		t.Errorf("Clamped() = %v, want %v", s.Clamped(), time.Second-s.maxDelta)
	}
}

func TestSchedulerIgnoresNonPositiveDelta(t *testing.T) {
	s := NewScheduler()
	s.Every("tick", time.Millisecond, func() {})

	if n := s.Advance(0); n != 0 {
		t.Errorf("Advance(0) ran %d tasks", n)
	}
	if n := s.Advance(-time.Second); n != 0 || s.Now() != 0 {
		t.Errorf("Advance(-1s) ran %d tasks, now %v", n, s.Now())
	}
}

func TestSchedulerEveryRejectsZeroInterval(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero interval")
		}
	}()
	NewScheduler().Every("bad", 0, func() {})
}
