package calendar

import (
	"sync"
	"time"

	"alcyxob/workout-planner/internal/domain"
)

// DefaultRevealDelay is how long after drag-start the time-slot drop targets
// are revealed. Revealing immediately would disturb the browser's native
// drag image, so it happens on a short deferred timer instead.
const DefaultRevealDelay = 50 * time.Millisecond

// DraggedWorkout is the payload captured at drag-start: the workout's id and
// its current placement, which Drop compares against the target.
type DraggedWorkout struct {
	ID        string
	Day       domain.DateOnly
	TimeOfDay domain.TimeOfDay
}

// DropTarget is the cell currently hovered: a date plus an optional time
// slot. A nil Slot means the bare day cell, i.e. unscheduled.
type DropTarget struct {
	Date domain.DateOnly
	Slot *domain.TimeOfDay
}

// DragCallbacks are invoked by the session on state transitions. Only Drop
// triggers the two persistence callbacks; hover events never do.
type DragCallbacks struct {
	// DateChanged fires when a drop lands on a different day.
	DateChanged func(workoutID string, newDate domain.DateOnly)
	// TimeOfDayChanged fires when a drop lands in a different slot. A nil
	// slot means the workout becomes unscheduled; callers persist that as
	// an absent value, never the literal string.
	TimeOfDayChanged func(workoutID string, slot *domain.TimeOfDay)
	// RevealSlots fires once per drag, after the reveal delay, unless the
	// drag ended first.
	RevealSlots func()
	// HideSlots fires on every reset back to idle.
	HideSlots func()
}

// DragSession is the drag-and-drop state machine:
//
//	idle -> dragging -> dragging(hover) -> idle
//
// All state is owned by the session and mutated only through its methods.
// Drop and DragEnd always reset to idle and cancel the pending reveal task.
type DragSession struct {
	mu          sync.Mutex
	callbacks   DragCallbacks
	revealDelay time.Duration

	dragged     *DraggedWorkout
	hover       *DropTarget
	revealTimer *time.Timer
	generation  uint64 // invalidates reveal timers from finished drags
}

// NewDragSession creates an idle session. A non-positive delay falls back to
// DefaultRevealDelay.
func NewDragSession(callbacks DragCallbacks, revealDelay time.Duration) *DragSession {
	if revealDelay <= 0 {
		revealDelay = DefaultRevealDelay
	}
	return &DragSession{callbacks: callbacks, revealDelay: revealDelay}
}

// DragStart captures the dragged workout and schedules the deferred reveal.
// Starting a new drag while one is active resets the previous one first.
func (s *DragSession) DragStart(w DraggedWorkout) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dragged != nil {
		s.resetLocked()
	}
	s.dragged = &w

	gen := s.generation
	s.revealTimer = time.AfterFunc(s.revealDelay, func() {
		s.mu.Lock()
		stale := s.generation != gen || s.dragged == nil
		s.mu.Unlock()
		if stale {
			return
		}
		if s.callbacks.RevealSlots != nil {
			s.callbacks.RevealSlots()
		}
	})
}

// DragOver updates the hover target. It is idempotent, fires no persistence
// callbacks and may be called many times per drag.
func (s *DragSession) DragOver(date domain.DateOnly, slot *domain.TimeOfDay) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dragged == nil {
		return
	}
	s.hover = &DropTarget{Date: date, Slot: slot}
}

// DragLeave clears the hover target without ending the drag.
func (s *DragSession) DragLeave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hover = nil
}

// Drop compares the dragged workout's placement with the target and emits at
// most one date-change and one time-of-day-change request, then resets to
// idle. A drop with no active drag is a no-op.
func (s *DragSession) Drop(date domain.DateOnly, slot *domain.TimeOfDay) {
	s.mu.Lock()
	if s.dragged == nil {
		s.mu.Unlock()
		return
	}
	w := *s.dragged
	s.resetLocked()
	s.mu.Unlock()

	if s.callbacks.HideSlots != nil {
		s.callbacks.HideSlots()
	}

	if !w.Day.Equal(date) && s.callbacks.DateChanged != nil {
		s.callbacks.DateChanged(w.ID, date)
	}

	targetSlot := domain.TimeUnscheduled
	if slot != nil {
		targetSlot = *slot
	}
	if w.TimeOfDay != targetSlot && s.callbacks.TimeOfDayChanged != nil {
		s.callbacks.TimeOfDayChanged(w.ID, domain.TimeOfDayForStorage(targetSlot))
	}
}

// DragEnd handles a drag aborted without a drop: reset to idle, emit nothing.
func (s *DragSession) DragEnd() {
	s.mu.Lock()
	active := s.dragged != nil
	s.resetLocked()
	s.mu.Unlock()

	if active && s.callbacks.HideSlots != nil {
		s.callbacks.HideSlots()
	}
}

// Dragging reports whether a drag is in progress.
func (s *DragSession) Dragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dragged != nil
}

// Hover returns the current hover target, or nil when nothing is hovered.
func (s *DragSession) Hover() *DropTarget {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hover == nil {
		return nil
	}
	h := *s.hover
	return &h
}

func (s *DragSession) resetLocked() {
	s.generation++
	if s.revealTimer != nil {
		s.revealTimer.Stop()
		s.revealTimer = nil
	}
	s.dragged = nil
	s.hover = nil
}
