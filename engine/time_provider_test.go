package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	mock.Advance(1 * time.Hour)
	mock.Advance(30 * time.Minute)
	expected := newTime.Add(90 * time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after Advance, got %v", expected, now)
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)

	mock.Advance(2 * time.Second)
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Fatalf("Elapsed() = %v, want 2s", got)
	}

	clock.Pause()
	mock.Advance(5 * time.Second)
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Errorf("Elapsed() while paused = %v, want 2s", got)
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("TotalPauseDuration() = %v, want 5s", got)
	}

	clock.Resume()
	mock.Advance(1 * time.Second)
	if got := clock.Elapsed(); got != 3*time.Second {
		t.Errorf("Elapsed() after resume = %v, want 3s", got)
	}
	if clock.RealTime().Sub(clock.Now()) != 5*time.Second {
		t.Errorf("Real time should lead game time by the pause duration")
	}
}

func TestPausableClockToggleIdempotent(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	clock := NewPausableClock(mock)

	if !clock.Toggle() || !clock.IsPaused() {
		t.Fatal("Expected first toggle to pause")
	}

	// Second Pause is a no-op and keeps the original pause start
	mock.Advance(time.Second)
	clock.Pause()
	mock.Advance(time.Second)

	if clock.Toggle() || clock.IsPaused() {
		t.Fatal("Expected second toggle to resume")
	}
	if got := clock.TotalPauseDuration(); got != 2*time.Second {
		t.Errorf("TotalPauseDuration() = %v, want 2s", got)
	}

	// Resume when running is a no-op
	clock.Resume()
	if got := clock.TotalPauseDuration(); got != 2*time.Second {
		t.Errorf("TotalPauseDuration() after extra resume = %v, want 2s", got)
	}
}
