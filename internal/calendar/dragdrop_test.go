package calendar

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/workout-planner/internal/domain"
)

// dragRecorder captures callback invocations for assertions.
type dragRecorder struct {
	mu          sync.Mutex
	dateChanges []struct {
		ID   string
		Date domain.DateOnly
	}
	timeChanges []struct {
		ID   string
		Slot *domain.TimeOfDay
	}
	reveals int
	hides   int
}

func (r *dragRecorder) callbacks() DragCallbacks {
	return DragCallbacks{
		DateChanged: func(id string, d domain.DateOnly) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.dateChanges = append(r.dateChanges, struct {
				ID   string
				Date domain.DateOnly
			}{id, d})
		},
		TimeOfDayChanged: func(id string, s *domain.TimeOfDay) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.timeChanges = append(r.timeChanges, struct {
				ID   string
				Slot *domain.TimeOfDay
			}{id, s})
		},
		RevealSlots: func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.reveals++
		},
		HideSlots: func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.hides++
		},
	}
}

func (r *dragRecorder) revealCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reveals
}

func dragged(id string, day domain.DateOnly, tod domain.TimeOfDay) DraggedWorkout {
	return DraggedWorkout{ID: id, Day: day, TimeOfDay: tod}
}

func TestDrop_DifferentDateEmitsOneDateChange(t *testing.T) {
	rec := &dragRecorder{}
	s := NewDragSession(rec.callbacks(), time.Hour) // reveal never fires in-test

	s.DragStart(dragged("w1", date(2026, 1, 15), domain.TimeMorning))
	s.Drop(date(2026, 1, 16), slot(domain.TimeMorning))

	require.Len(t, rec.dateChanges, 1)
	assert.Equal(t, "w1", rec.dateChanges[0].ID)
	assert.Equal(t, date(2026, 1, 16), rec.dateChanges[0].Date)
	assert.Empty(t, rec.timeChanges, "same slot emits no time-of-day change")
	assert.False(t, s.Dragging(), "session resets to idle after drop")
}

func TestDrop_SameDateAndSlotEmitsNothing(t *testing.T) {
	rec := &dragRecorder{}
	s := NewDragSession(rec.callbacks(), time.Hour)

	s.DragStart(dragged("w1", date(2026, 1, 15), domain.TimeEvening))
	s.Drop(date(2026, 1, 15), slot(domain.TimeEvening))

	assert.Empty(t, rec.dateChanges)
	assert.Empty(t, rec.timeChanges)
	assert.False(t, s.Dragging())
	assert.Equal(t, 1, rec.hides, "drop targets hidden even when nothing changed")
}

func TestDrop_SlotChangeEmitsTimeOfDay(t *testing.T) {
	rec := &dragRecorder{}
	s := NewDragSession(rec.callbacks(), time.Hour)

	s.DragStart(dragged("w1", date(2026, 1, 15), domain.TimeMorning))
	s.Drop(date(2026, 1, 15), slot(domain.TimeEvening))

	assert.Empty(t, rec.dateChanges)
	require.Len(t, rec.timeChanges, 1)
	require.NotNil(t, rec.timeChanges[0].Slot)
	assert.Equal(t, domain.TimeEvening, *rec.timeChanges[0].Slot)
}

func TestDrop_ToBareDayCellUnschedulesAsAbsent(t *testing.T) {
	rec := &dragRecorder{}
	s := NewDragSession(rec.callbacks(), time.Hour)

	s.DragStart(dragged("w1", date(2026, 1, 15), domain.TimeMorning))
	s.Drop(date(2026, 1, 15), nil)

	require.Len(t, rec.timeChanges, 1)
	assert.Nil(t, rec.timeChanges[0].Slot, "unscheduled crosses the boundary as absent, not a literal")
}

func TestDrop_FromUnscheduledToSlot(t *testing.T) {
	rec := &dragRecorder{}
	s := NewDragSession(rec.callbacks(), time.Hour)

	s.DragStart(dragged("w1", date(2026, 1, 15), domain.TimeUnscheduled))
	s.Drop(date(2026, 1, 15), slot(domain.TimeMorning))

	require.Len(t, rec.timeChanges, 1)
	require.NotNil(t, rec.timeChanges[0].Slot)
	assert.Equal(t, domain.TimeMorning, *rec.timeChanges[0].Slot)
}

func TestDrop_DateAndSlotBothChange(t *testing.T) {
	rec := &dragRecorder{}
	s := NewDragSession(rec.callbacks(), time.Hour)

	s.DragStart(dragged("w1", date(2026, 1, 15), domain.TimeMorning))
	s.Drop(date(2026, 1, 17), slot(domain.TimeEvening))

	assert.Len(t, rec.dateChanges, 1)
	assert.Len(t, rec.timeChanges, 1)
}

func TestDragOver_NeverEmitsPersistenceCallbacks(t *testing.T) {
	rec := &dragRecorder{}
	s := NewDragSession(rec.callbacks(), time.Hour)

	s.DragStart(dragged("w1", date(2026, 1, 15), domain.TimeMorning))
	for i := 0; i < 25; i++ {
		s.DragOver(date(2026, 1, 16), slot(domain.TimeEvening))
		s.DragOver(date(2026, 1, 17), nil)
	}

	assert.Empty(t, rec.dateChanges, "hover must not trigger network calls")
	assert.Empty(t, rec.timeChanges)

	hover := s.Hover()
	require.NotNil(t, hover)
	assert.Equal(t, date(2026, 1, 17), hover.Date)
}

func TestDragLeave_ClearsHoverOnly(t *testing.T) {
	rec := &dragRecorder{}
	s := NewDragSession(rec.callbacks(), time.Hour)

	s.DragStart(dragged("w1", date(2026, 1, 15), domain.TimeMorning))
	s.DragOver(date(2026, 1, 16), nil)
	s.DragLeave()

	assert.Nil(t, s.Hover())
	assert.True(t, s.Dragging(), "drag-leave does not end the drag")
}

func TestDragEnd_ResetsAndEmitsNothing(t *testing.T) {
	rec := &dragRecorder{}
	s := NewDragSession(rec.callbacks(), time.Hour)

	s.DragStart(dragged("w1", date(2026, 1, 15), domain.TimeMorning))
	s.DragOver(date(2026, 1, 16), nil)
	s.DragEnd()

	assert.False(t, s.Dragging())
	assert.Nil(t, s.Hover())
	assert.Empty(t, rec.dateChanges)
	assert.Empty(t, rec.timeChanges)
	assert.Equal(t, 1, rec.hides)
}

func TestDrop_WithoutActiveDragIsNoOp(t *testing.T) {
	rec := &dragRecorder{}
	s := NewDragSession(rec.callbacks(), time.Hour)

	s.Drop(date(2026, 1, 16), slot(domain.TimeMorning))

	assert.Empty(t, rec.dateChanges)
	assert.Empty(t, rec.timeChanges)
	assert.Zero(t, rec.hides)
}

func TestRevealSlots_FiresAfterDelay(t *testing.T) {
	rec := &dragRecorder{}
	s := NewDragSession(rec.callbacks(), 5*time.Millisecond)

	s.DragStart(dragged("w1", date(2026, 1, 15), domain.TimeMorning))

	assert.Eventually(t, func() bool { return rec.revealCount() == 1 },
		time.Second, time.Millisecond)
}

func TestRevealSlots_CanceledByDragEnd(t *testing.T) {
	rec := &dragRecorder{}
	s := NewDragSession(rec.callbacks(), 20*time.Millisecond)

	s.DragStart(dragged("w1", date(2026, 1, 15), domain.TimeMorning))
	s.DragEnd()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, rec.revealCount(), "canceled reveal task must not fire")
}

func TestRevealSlots_CanceledByDrop(t *testing.T) {
	rec := &dragRecorder{}
	s := NewDragSession(rec.callbacks(), 20*time.Millisecond)

	s.DragStart(dragged("w1", date(2026, 1, 15), domain.TimeMorning))
	s.Drop(date(2026, 1, 15), nil)

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, rec.revealCount())
}
