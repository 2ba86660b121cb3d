package core

import "testing"

func TestSchedulerRunsOnceWhenDue(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.After(1000, func() { calls++ })

	s.Advance(999)
	if calls != 0 {
		t.Fatalf("task ran early at %vms", s.Now())
	}

	s.Advance(1)
	if calls != 1 {
		t.Fatalf("task should run exactly at its due time, calls=%d", calls)
	}

	s.Advance(5000)
	if calls != 1 {
		t.Errorf("one-shot task ran %d times", calls)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(300, func() { order = append(order, "c") })
	s.After(100, func() { order = append(order, "a") })
	s.After(100, func() { order = append(order, "b") })

	s.Advance(500)

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, expected %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, expected %v", order, want)
			break
		}
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	ran := false
	id := s.After(10, func() { ran = true })

	if !s.Cancel(id) {
		t.Fatal("Cancel should report a pending task")
	}
	if s.Cancel(id) {
		t.Error("second Cancel should report false")
	}

	s.Advance(100)
	if ran {
		t.Error("cancelled task should not run")
	}
}

func TestSchedulerChainedTask(t *testing.T) {
	s := NewScheduler()
	ran := false
	s.After(10, func() {
		s.After(0, func() { ran = true })
	})

	s.Advance(10)
	if !ran {
		t.Error("task scheduled with zero delay from a callback should run in the same Advance")
	}
}

func TestSchedulerIgnoresNegativeDelta(t *testing.T) {
	s := NewScheduler()
	s.Advance(50)
	s.Advance(-20)
	if s.Now() != 50 {
		t.Errorf("Now() = %v, expected 50", s.Now())
	}
}
