package game

import "testing"

func TestScheduledActionsRunInOrder(t *testing.T) {
	s := NewSession("sched", SessionConfig{})
	var order []int
	s.Mu.Lock()
	s.ScheduleAfter(0, 0, func(*Session) { order = append(order, 1) })
	s.ScheduleAfter(0, 0, func(*Session) { order = append(order, 2) })
	s.ScheduleAfter(0.5, 0, func(*Session) { order = append(order, 3) })
	s.Mu.Unlock()

	s.Tick()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("same-tick actions out of order: %v", order)
	}

	tickSeconds(s, 0.6)
	if len(order) != 3 || order[2] != 3 {
		t.Fatalf("delayed action did not run after its deadline: %v", order)
	}
}

func TestScheduledActionDroppedWithEntity(t *testing.T) {
	s := NewSession("sched-drop", SessionConfig{})
	id := s.SpawnPlayer("p1", Vec2{X: 100, Y: 100}, KindDefault)

	fired := false
	s.Mu.Lock()
	s.ScheduleAfter(0.2, id, func(*Session) { fired = true })
	s.removeEntity(id)
	s.Mu.Unlock()

	tickSeconds(s, 0.5)
	if fired {
		t.Fatal("action bound to a removed entity still fired")
	}
}

func TestRemoveEntityCancelsPendingActions(t *testing.T) {
	s := NewSession("sched-cancel", SessionConfig{})
	id := s.SpawnPlayer("p1", Vec2{X: 100, Y: 100}, KindDefault)

	s.Mu.Lock()
	s.ScheduleAfter(1.0, id, func(*Session) {})
	s.ScheduleAfter(1.0, 0, func(*Session) {})
	s.removeEntity(id)
	pending := len(s.timers.pending)
	s.Mu.Unlock()

	if pending != 1 {
		t.Fatalf("expected only the unbound action to remain, got %d pending", pending)
	}
}

func TestStopDropsPendingActions(t *testing.T) {
	s := NewSession("sched-stop", SessionConfig{})
	s.Mu.Lock()
	s.ScheduleAfter(0.1, 0, func(*Session) { t.Fatal("action ran after stop") })
	s.Mu.Unlock()

	s.Stop()
	tickSeconds(s, 0.5)

	s.Mu.Lock()
	pending := len(s.timers.pending)
	s.Mu.Unlock()
	if pending != 0 {
		t.Fatalf("stop left %d pending actions", pending)
	}
}

func TestZeroDelayChainIsBounded(t *testing.T) {
	s := NewSession("sched-chain", SessionConfig{})
	runs := 0
	var reschedule func(*Session)
	reschedule = func(inner *Session) {
		runs++
		inner.ScheduleAfter(0, 0, reschedule)
	}
	s.Mu.Lock()
	s.ScheduleAfter(0, 0, reschedule)
	s.Mu.Unlock()

	s.Tick()
	if runs == 0 {
		t.Fatal("chain never ran")
	}
	if runs > 8 {
		t.Fatalf("self-rescheduling action ran %d times in one tick", runs)
	}
}
