package core

import "sort"

// Task is a one-shot deferred callback owned by a Scheduler.
type Task struct {
	id  uint64
	due float64 // Scheduler clock (ms) at which the task runs
	fn  func()
}

// Scheduler runs one-shot callbacks against a simulated millisecond clock.
// It never starts goroutines: callbacks run inside Advance, on the caller's
// update loop, in due order (ties in scheduling order).
type Scheduler struct {
	now    float64
	nextID uint64
	tasks  []Task
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler clock in milliseconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// After schedules fn to run once delayMs from now and returns its id.
func (s *Scheduler) After(delayMs float64, fn func()) uint64 {
	s.nextID++
	s.tasks = append(s.tasks, Task{id: s.nextID, due: s.now + delayMs, fn: fn})
	return s.nextID
}

// Cancel removes a pending task. It reports whether the task was pending.
func (s *Scheduler) Cancel(id uint64) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of tasks that have not run yet.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves the clock forward and runs every task that became due.
// Tasks scheduled by a running callback are considered in the same call
// if they are already due.
func (s *Scheduler) Advance(deltaMs float64) {
	if deltaMs > 0 {
		s.now += deltaMs
	}

	for {
		due := s.dueTasks()
		if len(due) == 0 {
			return
		}
		for _, t := range due {
			t.fn()
		}
	}
}

// dueTasks removes and returns the due tasks, ordered by due time then id.
func (s *Scheduler) dueTasks() []Task {
	var due []Task
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.tasks = kept

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})
	return due
}
