package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinicdesk/internal/domain/appointment"
	"github.com/clinicdesk/clinicdesk/internal/service"
)

type AppointmentHandler struct {
	svc *service.AppointmentService
}

func NewAppointmentHandler(svc *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func (h *AppointmentHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/appointments", h.Create)
	rg.GET("/appointments", h.List)
	rg.GET("/appointments/:id", h.Get)
	rg.DELETE("/appointments/:id", h.Delete)
	rg.DELETE("/appointments", h.DeleteAll)
}

type createAppointmentRequest struct {
	PatientID  int64     `json:"patientId"`
	DoctorID   int64     `json:"doctorId"`
	RoomName   string    `json:"roomName"`
	StartsAt   time.Time `json:"startsAt"`
	FinishesAt time.Time `json:"finishesAt"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req createAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.svc.Schedule(c.Request.Context(), &appointment.CreateAppointmentCommand{
		PatientID:  req.PatientID,
		DoctorID:   req.DoctorID,
		RoomName:   req.RoomName,
		StartsAt:   req.StartsAt,
		FinishesAt: req.FinishesAt,
	}, requestMeta(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, a)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	// ?room=<name> narrows the listing to one room's bookings.
	var (
		appointments []*appointment.Appointment
		err          error
	)
	if roomName := c.Query("room"); roomName != "" {
		appointments, err = h.svc.ListByRoom(c.Request.Context(), roomName)
	} else {
		appointments, err = h.svc.List(c.Request.Context())
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, appointments)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	a, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, a)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, requestMeta(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil)
}

func (h *AppointmentHandler) DeleteAll(c *gin.Context) {
	if err := h.svc.DeleteAll(c.Request.Context(), requestMeta(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil)
}
