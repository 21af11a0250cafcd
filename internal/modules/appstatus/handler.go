package appstatus

import (
	"errors"
	"net/http"

	"photoorders/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// RegisterRoutes wires the public status surface. The websocket endpoint
// lets clients react to maintenance flips without polling.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/app-status", h.Get)
	rg.GET("/app-status/ws", h.Subscribe)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/app-status", h.Update)
}

func (h *Handler) Get(c *gin.Context) {
	status, err := h.service.Get(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("app status read failed")
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": status})
}

type statusInput struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) Update(c *gin.Context) {
	var in statusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	status, err := h.service.Update(c.Request.Context(), in.Status)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown app status")
			return
		}
		logrus.WithError(err).Error("app status update failed")
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": status})
}

// Subscribe upgrades the connection, replays the current status and keeps
// the socket registered until the client hangs up.
func (h *Handler) Subscribe(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	id := h.hub.Register(conn)

	status, err := h.service.Get(c.Request.Context())
	if err == nil {
		_ = h.hub.Send(id, StatusEvent{Event: "app_status", Status: status})
	}

	go func() {
		defer h.hub.Unregister(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
