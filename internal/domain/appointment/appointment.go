package appointment

import "time"

// Appointment binds a patient, a doctor, and a room to the half-open time
// interval [StartsAt, FinishesAt). Patient, doctor, and room are referenced
// by key; their lifecycles are independent and deleting one of them does not
// cascade to appointments.
type Appointment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	PatientID int64  `gorm:"column:patient_id;not null;index" json:"patientId"`
	DoctorID  int64  `gorm:"column:doctor_id;not null;index" json:"doctorId"`
	RoomName  string `gorm:"column:room_name;type:varchar(100);not null;index" json:"roomName"`

	StartsAt   time.Time `gorm:"column:starts_at;not null;index" json:"startsAt"`
	FinishesAt time.Time `gorm:"column:finishes_at;not null" json:"finishesAt"`
}

func (Appointment) TableName() string {
	return "clinical.appointments"
}

// Overlaps reports whether the half-open intervals of a and b intersect:
//
//	a.StartsAt < b.FinishesAt && b.StartsAt < a.FinishesAt
//
// Two appointments that only touch at a boundary do not overlap. The
// comparison ignores the room; callers restrict the comparison set to
// appointments sharing one room.
func (a *Appointment) Overlaps(b *Appointment) bool {
	return a.StartsAt.Before(b.FinishesAt) && b.StartsAt.Before(a.FinishesAt)
}

// FindConflict returns the first appointment in existing that overlaps the
// candidate, or nil when the candidate fits. The gorm store runs this inside
// the scheduling transaction so there is exactly one overlap predicate.
func FindConflict(candidate *Appointment, existing []*Appointment) *Appointment {
	for _, other := range existing {
		if candidate.Overlaps(other) {
			return other
		}
	}
	return nil
}

// Validate checks the create-time invariants. Reversed and empty intervals
// are rejected here so Overlaps never receives degenerate input.
func (a *Appointment) Validate() error {
	if a.PatientID == 0 {
		return ErrPatientRequired
	}
	if a.DoctorID == 0 {
		return ErrDoctorRequired
	}
	if a.RoomName == "" {
		return ErrRoomRequired
	}
	if !a.StartsAt.Before(a.FinishesAt) {
		return ErrInvalidInterval
	}
	return nil
}

type CreateAppointmentCommand struct {
	PatientID  int64
	DoctorID   int64
	RoomName   string
	StartsAt   time.Time
	FinishesAt time.Time
}
