package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinicdesk/internal/domain/appointment"
	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/domain/room"
	"github.com/clinicdesk/clinicdesk/internal/middleware"
	"github.com/clinicdesk/clinicdesk/internal/service"
)

type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type ValidationErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse[any]{Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse[any]{Data: data})
}

// respondList renders the collection, or 204 with no body when it is empty.
func respondList[T any](c *gin.Context, items []T) {
	if len(items) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, APIResponse[[]T]{Data: items})
}

func respondServiceError(c *gin.Context, err error) {
	var validErr *service.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: validErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, doctor.ErrDoctorNotFound),
		errors.Is(err, patient.ErrPatientNotFound),
		errors.Is(err, room.ErrRoomNotFound),
		errors.Is(err, appointment.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appointment.ErrAppointmentConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "SCHEDULING_CONFLICT"})

	case errors.Is(err, room.ErrRoomAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appointment.ErrPatientRequired),
		errors.Is(err, appointment.ErrDoctorRequired),
		errors.Is(err, appointment.ErrRoomRequired),
		errors.Is(err, appointment.ErrInvalidInterval),
		errors.Is(err, appointment.ErrUnknownPatient),
		errors.Is(err, appointment.ErrUnknownDoctor),
		errors.Is(err, appointment.ErrUnknownRoom):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context, param string) (int64, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param + ": must be a non-negative integer"})
		return 0, false
	}
	return id, true
}

func requestMeta(c *gin.Context) service.RequestMeta {
	return service.RequestMeta{
		RequestID: middleware.GetRequestID(c),
		IPAddress: c.ClientIP(),
	}
}
