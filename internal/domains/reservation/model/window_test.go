package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"facilio/internal/domains/reservation/model"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestWindow_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    model.Window
		b    model.Window
		want bool
	}{
		{
			name: "identical windows overlap",
			a:    model.Window{Start: day(1), End: day(5)},
			b:    model.Window{Start: day(1), End: day(5)},
			want: true,
		},
		{
			name: "partial overlap",
			a:    model.Window{Start: day(1), End: day(5)},
			b:    model.Window{Start: day(4), End: day(8)},
			want: true,
		},
		{
			name: "containment overlaps",
			a:    model.Window{Start: day(1), End: day(10)},
			b:    model.Window{Start: day(3), End: day(5)},
			want: true,
		},
		{
			name: "touching windows do not overlap",
			a:    model.Window{Start: day(1), End: day(5)},
			b:    model.Window{Start: day(5), End: day(8)},
			want: false,
		},
		{
			name: "disjoint windows do not overlap",
			a:    model.Window{Start: day(1), End: day(3)},
			b:    model.Window{Start: day(6), End: day(8)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestWindow_Valid(t *testing.T) {
	assert.True(t, model.Window{Start: day(1), End: day(2)}.Valid())
	assert.False(t, model.Window{Start: day(2), End: day(1)}.Valid())
	assert.False(t, model.Window{Start: day(1), End: day(1)}.Valid())
}

func TestWindow_DurationDays(t *testing.T) {
	assert.Equal(t, 4, model.Window{Start: day(1), End: day(5)}.DurationDays())
	assert.Equal(t, 1, model.Window{Start: day(1), End: day(2)}.DurationDays())

	// Partial days round up.
	halfDay := model.Window{Start: day(1), End: day(1).Add(30 * time.Hour)}
	assert.Equal(t, 2, halfDay.DurationDays())
}

func TestWindow_ShiftDays(t *testing.T) {
	w := model.Window{Start: day(1), End: day(4)}

	shifted := w.ShiftDays(2)

	assert.Equal(t, day(3), shifted.Start)
	assert.Equal(t, day(6), shifted.End)
	assert.Equal(t, w.DurationDays(), shifted.DurationDays())
}

func TestReservation_Active(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		isDeleted   bool
		wantsActive bool
	}{
		{name: "pending holds the window", status: model.StatusPending, wantsActive: true},
		{name: "confirmed holds the window", status: model.StatusConfirmed, wantsActive: true},
		{name: "cancelled releases the window", status: model.StatusCancelled, wantsActive: false},
		{name: "completed releases the window", status: model.StatusCompleted, wantsActive: false},
		{name: "deleted pending releases the window", status: model.StatusPending, isDeleted: true, wantsActive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := model.Reservation{Status: tt.status, IsDeleted: tt.isDeleted}
			assert.Equal(t, tt.wantsActive, r.Active())
		})
	}
}
