package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentConflict = errors.New("appointment overlaps an existing appointment in the same room")

	ErrPatientRequired = errors.New("patient reference is required")
	ErrDoctorRequired  = errors.New("doctor reference is required")
	ErrRoomRequired    = errors.New("room reference is required")
	ErrInvalidInterval = errors.New("appointment must start before it finishes")

	ErrUnknownPatient = errors.New("referenced patient does not exist")
	ErrUnknownDoctor  = errors.New("referenced doctor does not exist")
	ErrUnknownRoom    = errors.New("referenced room does not exist")
)
