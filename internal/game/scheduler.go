package game

import "sort"

// The scheduler is the session-owned replacement for OS timers. Burst fire,
// staggered rift strikes, delayed detonations and barrier cadence all enqueue
// actions that run inside a later tick, which keeps the simulation
// single-threaded and makes cancellation a queue sweep instead of a race.
//
// Actions bound to an entity are dropped if the entity is gone at fire time;
// the closure itself must still re-fetch any other entity it touches by id.

type scheduledAction struct {
	fireAt float64
	seq    int64
	entity EntityID // 0 when not bound to an entity's liveness
	fn     func(*Session)
}

type scheduler struct {
	pending []scheduledAction
	nextSeq int64
}

// ScheduleAfter enqueues fn to run once delay seconds of simulated time have
// passed. If entity is nonzero the action is discarded when that entity no
// longer exists at fire time.
func (s *Session) ScheduleAfter(delay float64, entity EntityID, fn func(*Session)) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	s.timers.nextSeq++
	s.timers.pending = append(s.timers.pending, scheduledAction{
		fireAt: s.Now + delay,
		seq:    s.timers.nextSeq,
		entity: entity,
		fn:     fn,
	})
}

func (sc *scheduler) clear() {
	sc.pending = nil
}

// cancelFor drops every pending action bound to the given entity.
func (sc *scheduler) cancelFor(entity EntityID) {
	if entity == 0 {
		return
	}
	kept := sc.pending[:0]
	for _, a := range sc.pending {
		if a.entity != entity {
			kept = append(kept, a)
		}
	}
	sc.pending = kept
}

// processDue runs all actions whose deadline has passed, ordered by
// (fireAt, seq) so same-tick actions fire in scheduling order. Actions may
// enqueue further actions; zero-delay chains run within the same tick, capped
// to avoid a livelock from a self-rescheduling action.
func (sc *scheduler) processDue(s *Session) {
	for rounds := 0; rounds < 8; rounds++ {
		var due []scheduledAction
		kept := sc.pending[:0]
		for _, a := range sc.pending {
			if a.fireAt <= s.Now {
				due = append(due, a)
			} else {
				kept = append(kept, a)
			}
		}
		sc.pending = kept
		if len(due) == 0 {
			return
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].fireAt != due[j].fireAt {
				return due[i].fireAt < due[j].fireAt
			}
			return due[i].seq < due[j].seq
		})
		for _, a := range due {
			if a.entity != 0 && !s.World.Exists(a.entity) {
				continue
			}
			a.fn(s)
		}
	}
}
