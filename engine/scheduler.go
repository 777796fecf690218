package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
)

// task is a unit of scheduled work in virtual time
type task struct {
	name     string
	interval time.Duration // 0 for one-shot
	due      time.Duration
	seq      uint64 // Registration order, breaks ties between equal due times
	fn       func()
}

// Scheduler interleaves periodic and one-shot tasks on one logical thread
// Virtual time only moves through Advance; tasks never preempt each other and
// run in due-time order, so a long Advance replays exactly what a steady clock would
// Not safe for concurrent use; callers serialize through World.RunSafe
type Scheduler struct {
	now   time.Duration
	tasks []*task
	seq   uint64

	maxDelta time.Duration
	clamped  time.Duration // Total virtual time dropped by the delta cap
}

// NewScheduler creates a scheduler at virtual time zero
func NewScheduler() *Scheduler {
	return &Scheduler{
		maxDelta: constant.MaxFrameDelta,
	}
}

// Now returns the current virtual time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every registers a periodic task whose first run is one interval from now
func (s *Scheduler) Every(name string, interval time.Duration, fn func()) {
	if interval <= 0 {
		panic(fmt.Sprintf("scheduler: task %q needs a positive interval, got %v", name, interval))
	}
	s.add(&task{name: name, interval: interval, due: s.now + interval, fn: fn})
}

// After registers a one-shot task that runs exactly once, delay from now
// One-shot tasks cannot be cancelled
func (s *Scheduler) After(name string, delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.add(&task{name: name, due: s.now + delay, fn: fn})
}

func (s *Scheduler) add(t *task) {
	s.seq++
	t.seq = s.seq
	s.tasks = append(s.tasks, t)
}

// Pending returns the number of registered tasks with the given name
func (s *Scheduler) Pending(name string) int {
	n := 0
	for _, t := range s.tasks {
		if t.name == name {
			n++
		}
	}
	return n
}

// Clamped returns the virtual time discarded by the per-call delta cap
func (s *Scheduler) Clamped() time.Duration {
	return s.clamped
}

// Advance moves virtual time forward by dt, running every task that falls due
// Tasks scheduled by running tasks are eligible in the same call
// Returns the number of task runs
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	if s.maxDelta > 0 && dt > s.maxDelta {
		log.Printf("scheduler: frame delta %v clamped to %v", dt, s.maxDelta)
		s.clamped += dt - s.maxDelta
		dt = s.maxDelta
	}

	target := s.now + dt
	runs := 0
	for {
		idx := s.nextDue(target)
		if idx < 0 {
			break
		}

		t := s.tasks[idx]
		s.now = t.due
		if t.interval > 0 {
			t.due += t.interval
		} else {
			s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
		}

		t.fn()
		runs++
	}

	s.now = target
	return runs
}

// nextDue returns the index of the earliest task due at or before target, -1 if none
func (s *Scheduler) nextDue(target time.Duration) int {
	best := -1
	for i, t := range s.tasks {
		if t.due > target {
			continue
		}
		if best < 0 || t.due < s.tasks[best].due ||
			(t.due == s.tasks[best].due && t.seq < s.tasks[best].seq) {
			best = i
		}
	}
	return best
}
