package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_IsBlocking(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCompleted, false},
		{StatusCancelledByClient, false},
		{StatusCancelledBySalon, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.IsBlocking())
		})
	}
}

func TestBooking_OverlapsInstant(t *testing.T) {
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	b := &Booking{StartInstant: start, DurationMinutes: 60}

	assert.Equal(t, start.Add(time.Hour), b.EndInstant())

	// touching boundaries do not overlap
	assert.False(t, b.OverlapsInstant(start.Add(-time.Hour), start))
	assert.False(t, b.OverlapsInstant(start.Add(time.Hour), start.Add(2*time.Hour)))

	assert.True(t, b.OverlapsInstant(start.Add(30*time.Minute), start.Add(90*time.Minute)))
	assert.True(t, b.OverlapsInstant(start.Add(-30*time.Minute), start.Add(30*time.Minute)))
	assert.True(t, b.OverlapsInstant(start.Add(-time.Hour), start.Add(2*time.Hour)))
}

func TestBooking_Transitions(t *testing.T) {
	t.Run("pending can be cancelled and confirmed", func(t *testing.T) {
		b := &Booking{Status: StatusPending}
		assert.True(t, b.CanBeCancelled())
		assert.True(t, b.CanBeConfirmed())
	})

	t.Run("cancelled can be re-confirmed but not re-cancelled", func(t *testing.T) {
		b := &Booking{Status: StatusCancelledByClient}
		assert.True(t, b.IsCancelled())
		assert.True(t, b.CanBeConfirmed())
		assert.False(t, b.CanBeCancelled())
	})

	t.Run("completed is terminal", func(t *testing.T) {
		b := &Booking{Status: StatusCompleted}
		assert.False(t, b.CanBeCancelled())
		assert.False(t, b.CanBeConfirmed())
		assert.False(t, b.IsCancelled())
	})
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []BookingStatus{
		StatusPending, StatusConfirmed, StatusCompleted,
		StatusCancelledByClient, StatusCancelledBySalon, StatusNoShow,
	} {
		assert.True(t, IsValidStatus(s), string(s))
	}

	assert.False(t, IsValidStatus("cancelled"))
	assert.False(t, IsValidStatus(""))
}
