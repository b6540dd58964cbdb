package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/service"
)

type PatientHandler struct {
	svc *service.PatientService
}

func NewPatientHandler(svc *service.PatientService) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func (h *PatientHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/patients", h.Create)
	rg.GET("/patients", h.List)
	rg.GET("/patients/:id", h.Get)
	rg.DELETE("/patients/:id", h.Delete)
	rg.DELETE("/patients", h.DeleteAll)
}

type createPatientRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req createPatientRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.svc.Create(c.Request.Context(), &patient.CreatePatientCommand{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		Email:     req.Email,
	}, requestMeta(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, p)
}

func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, patients)
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, p)
}

func (h *PatientHandler) Delete(c *gin.Context) {
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

func (h *PatientHandler) DeleteAll(c *gin.Context) {
	if err := h.svc.DeleteAll(c.Request.Context(), requestMeta(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil)
}
