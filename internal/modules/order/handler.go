package order

import (
	"errors"
	"net/http"
	"strconv"

	"photoorders/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orders", h.List)
	rg.GET("/orders/count", h.Count)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	skip, _ := strconv.Atoi(c.Query("skip"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	orders, err := h.service.List(c.Request.Context(), userID, c.Query("status"), skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) Count(c *gin.Context) {
	userID := c.GetInt64("user_id")

	count, err := h.service.Count(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": count})
}

func writeServiceError(c *gin.Context, err error) {
	if errors.Is(err, ErrValidation) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	logrus.WithError(err).Error("order listing failed")
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
}
