package engine

import (
	"runeclicker/internal/catalog"
	"runeclicker/internal/state"
)

// EventStatus is a read-only view of the world event cycle.
type EventStatus struct {
	Active      string `json:"active,omitempty"`
	EndsAt      int64  `json:"ends_at,omitempty"`
	NextEventAt int64  `json:"next_event_at"`
}

// EventStatus reports the current event without mutating anything.
func (e *Engine) EventStatus() EventStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return EventStatus{
		Active:      e.st.ActiveEvent,
		EndsAt:      e.st.EventEndsAt,
		NextEventAt: e.st.NextEventAt,
	}
}

// startEvent picks a uniformly random eligible event and activates it.
// An event is eligible once its element has been unlocked. With nothing
// eligible the attempt is re-armed a full interval out, so locked-out
// players are not rerolled every tick.
func (e *Engine) startEvent(st *state.GameState, nowUnix int64) string {
	eligible := make([]catalog.WorldEvent, 0, len(e.cat.WorldEvents))
	for _, ev := range e.cat.WorldEvents {
		if st.ElementUnlocked[ev.Element] {
			eligible = append(eligible, ev)
		}
	}

	ev, ok := e.rolls.PickEvent(eligible)
	if !ok {
		st.NextEventAt = nowUnix + catalog.EventIntervalSeconds
		return ""
	}

	st.ActiveEvent = ev.ID
	st.EventEndsAt = nowUnix + ev.DurationSeconds
	st.NextEventAt = st.EventEndsAt + catalog.EventIntervalSeconds
	return ev.ID
}
