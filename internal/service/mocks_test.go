package service

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/clinicdesk/clinicdesk/internal/domain/appointment"
	"github.com/clinicdesk/clinicdesk/internal/domain/clinic"
	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/domain/room"
	"github.com/clinicdesk/clinicdesk/pkg/metrics"
)

// -- Mock repositories --

type mockDoctorRepo struct {
	nextID  int64
	doctors map[int64]*doctor.Doctor
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[int64]*doctor.Doctor)}
}

func (m *mockDoctorRepo) FindAll(_ context.Context) ([]*doctor.Doctor, error) {
	out := make([]*doctor.Doctor, 0, len(m.doctors))
	for _, d := range m.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (m *mockDoctorRepo) FindByID(_ context.Context, id int64) (*doctor.Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, doctor.ErrDoctorNotFound
	}
	return d, nil
}

func (m *mockDoctorRepo) Save(_ context.Context, d *doctor.Doctor) error {
	m.nextID++
	d.ID = m.nextID
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) DeleteByID(_ context.Context, id int64) error {
	if _, ok := m.doctors[id]; !ok {
		return doctor.ErrDoctorNotFound
	}
	delete(m.doctors, id)
	return nil
}

func (m *mockDoctorRepo) DeleteAll(_ context.Context) error {
	m.doctors = make(map[int64]*doctor.Doctor)
	return nil
}

type mockPatientRepo struct {
	nextID   int64
	patients map[int64]*patient.Patient
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[int64]*patient.Patient)}
}

func (m *mockPatientRepo) FindAll(_ context.Context) ([]*patient.Patient, error) {
	out := make([]*patient.Patient, 0, len(m.patients))
	for _, p := range m.patients {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPatientRepo) FindByID(_ context.Context, id int64) (*patient.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, patient.ErrPatientNotFound
	}
	return p, nil
}

func (m *mockPatientRepo) Save(_ context.Context, p *patient.Patient) error {
	m.nextID++
	p.ID = m.nextID
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) DeleteByID(_ context.Context, id int64) error {
	if _, ok := m.patients[id]; !ok {
		return patient.ErrPatientNotFound
	}
	delete(m.patients, id)
	return nil
}

func (m *mockPatientRepo) DeleteAll(_ context.Context) error {
	m.patients = make(map[int64]*patient.Patient)
	return nil
}

type mockRoomRepo struct {
	rooms map[string]*room.Room
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[string]*room.Room)}
}

func (m *mockRoomRepo) FindAll(_ context.Context) ([]*room.Room, error) {
	out := make([]*room.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRoomRepo) FindByName(_ context.Context, name string) (*room.Room, error) {
	r, ok := m.rooms[name]
	if !ok {
		return nil, room.ErrRoomNotFound
	}
	return r, nil
}

func (m *mockRoomRepo) Save(_ context.Context, r *room.Room) error {
	if _, ok := m.rooms[r.RoomName]; ok {
		return room.ErrRoomAlreadyExists
	}
	m.rooms[r.RoomName] = r
	return nil
}

func (m *mockRoomRepo) DeleteByName(_ context.Context, name string) error {
	if _, ok := m.rooms[name]; !ok {
		return room.ErrRoomNotFound
	}
	delete(m.rooms, name)
	return nil
}

func (m *mockRoomRepo) DeleteAll(_ context.Context) error {
	m.rooms = make(map[string]*room.Room)
	return nil
}

// mockAppointmentRepo mirrors the gorm store: Schedule verifies the room and
// runs the shared conflict predicate before inserting.
type mockAppointmentRepo struct {
	rooms        *mockRoomRepo
	nextID       int64
	appointments map[int64]*appointment.Appointment
}

func newMockAppointmentRepo(rooms *mockRoomRepo) *mockAppointmentRepo {
	return &mockAppointmentRepo{rooms: rooms, appointments: make(map[int64]*appointment.Appointment)}
}

func (m *mockAppointmentRepo) FindAll(_ context.Context) ([]*appointment.Appointment, error) {
	out := make([]*appointment.Appointment, 0, len(m.appointments))
	for _, a := range m.appointments {
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAppointmentRepo) FindByID(_ context.Context, id int64) (*appointment.Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, appointment.ErrAppointmentNotFound
	}
	return a, nil
}

func (m *mockAppointmentRepo) ListByRoom(_ context.Context, roomName string) ([]*appointment.Appointment, error) {
	var out []*appointment.Appointment
	for _, a := range m.appointments {
		if a.RoomName == roomName {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) Schedule(ctx context.Context, a *appointment.Appointment) error {
	if _, ok := m.rooms.rooms[a.RoomName]; !ok {
		return appointment.ErrUnknownRoom
	}
	existing, _ := m.ListByRoom(ctx, a.RoomName)
	if conflict := appointment.FindConflict(a, existing); conflict != nil {
		return appointment.ErrAppointmentConflict
	}
	m.nextID++
	a.ID = m.nextID
	m.appointments[a.ID] = a
	return nil
}

func (m *mockAppointmentRepo) DeleteByID(_ context.Context, id int64) error {
	if _, ok := m.appointments[id]; !ok {
		return appointment.ErrAppointmentNotFound
	}
	delete(m.appointments, id)
	return nil
}

func (m *mockAppointmentRepo) DeleteAll(_ context.Context) error {
	m.appointments = make(map[int64]*appointment.Appointment)
	return nil
}

// mockAuditRepo is safe for the audit worker goroutine.
type mockAuditRepo struct {
	mu      sync.Mutex
	entries []*clinic.AuditLog
}

func (m *mockAuditRepo) Create(_ context.Context, entry *clinic.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAuditRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *mockAuditRepo) last() *clinic.AuditLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		return nil
	}
	return m.entries[len(m.entries)-1]
}

// -- Shared fixtures --

func newTestAudit() (*AuditService, *mockAuditRepo, *metrics.Collector) {
	repo := &mockAuditRepo{}
	col := metrics.New(prometheus.NewRegistry(), "test")
	return NewAuditService(repo, zap.NewNop(), col), repo, col
}
