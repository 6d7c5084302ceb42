package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Doctor represents a clinic doctor in the directory
type Doctor struct {
	ID         int64
	Name       string
	Speciality string
	Fee        float64
	Available  bool // Global on/off switch for accepting new bookings

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotsBooked is a doctor's booked-slot registry: date key to the list
// of taken time labels. Within one date key no label appears twice —
// the storage layer enforces this with a unique constraint.
type SlotsBooked map[types.SlotDate][]types.TimeLabel

// Contains reports whether the given slot is already taken
func (s SlotsBooked) Contains(date types.SlotDate, label types.TimeLabel) bool {
	for _, taken := range s[date] {
		if taken == label {
			return true
		}
	}
	return false
}
