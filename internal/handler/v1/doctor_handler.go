package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/service"
)

type DoctorHandler struct {
	svc *service.DoctorService
}

func NewDoctorHandler(svc *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

func (h *DoctorHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/doctors", h.Create)
	rg.GET("/doctors", h.List)
	rg.GET("/doctors/:id", h.Get)
	rg.DELETE("/doctors/:id", h.Delete)
	rg.DELETE("/doctors", h.DeleteAll)
}

type createDoctorRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req createDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.svc.Create(c.Request.Context(), &doctor.CreateDoctorCommand{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		Email:     req.Email,
	}, requestMeta(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, d)
}

func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, doctors)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	d, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, d)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
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

func (h *DoctorHandler) DeleteAll(c *gin.Context) {
	if err := h.svc.DeleteAll(c.Request.Context(), requestMeta(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil)
}
