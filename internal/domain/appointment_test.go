package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusPredicates(t *testing.T) {
	tests := []struct {
		status     AppointmentStatus
		scheduled  bool
		cancelled  bool
		completed  bool
		canTransit bool
	}{
		{StatusScheduled, true, false, false, true},
		{StatusCancelledByPatient, false, true, false, false},
		{StatusCancelledByDoctor, false, true, false, false},
		{StatusCompleted, false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Appointment{Status: tt.status}

			assert.Equal(t, tt.scheduled, a.IsScheduled())
			assert.Equal(t, tt.cancelled, a.IsCancelled())
			assert.Equal(t, tt.completed, a.IsCompleted())
			assert.Equal(t, tt.canTransit, a.CanBeCancelled())
			assert.Equal(t, tt.canTransit, a.CanBeCompleted())
		})
	}
}

func TestStatusListsCoverEnum(t *testing.T) {
	assert.Len(t, ValidStatuses, 4)
	for _, status := range CancelledStatuses {
		assert.Contains(t, ValidStatuses, status)
	}
	assert.NotContains(t, CancelledStatuses, StatusScheduled)
	assert.NotContains(t, CancelledStatuses, StatusCompleted)
}
