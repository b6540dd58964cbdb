package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinicdesk/internal/domain/room"
	"github.com/clinicdesk/clinicdesk/internal/service"
)

type RoomHandler struct {
	svc *service.RoomService
}

func NewRoomHandler(svc *service.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

// Register wires the room routes. Rooms are addressed by name, not by a
// numeric id.
func (h *RoomHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/rooms", h.Create)
	rg.GET("/rooms", h.List)
	rg.GET("/rooms/:name", h.Get)
	rg.DELETE("/rooms/:name", h.Delete)
	rg.DELETE("/rooms", h.DeleteAll)
}

type createRoomRequest struct {
	RoomName string `json:"roomName"`
}

func (h *RoomHandler) Create(c *gin.Context) {
	var req createRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.svc.Create(c.Request.Context(), &room.CreateRoomCommand{RoomName: req.RoomName}, requestMeta(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, r)
}

func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, rooms)
}

func (h *RoomHandler) Get(c *gin.Context) {
	r, err := h.svc.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, r)
}

func (h *RoomHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("name"), requestMeta(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil)
}

func (h *RoomHandler) DeleteAll(c *gin.Context) {
	if err := h.svc.DeleteAll(c.Request.Context(), requestMeta(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, nil)
}
