package request

import (
	"errors"
	"net/http"
	"strconv"

	"photoorders/internal/domain"
	"photoorders/internal/modules/pricing"
	"photoorders/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// User-facing message shown when a closed request is touched.
const msgRequestClosed = "لا يمكن تعديل هذا الطلب"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the user-facing endpoints. All require authentication.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/kindergarten-requests", h.ListKindergarten)
	rg.GET("/kindergarten-requests/:id", h.GetKindergarten)
	rg.POST("/kindergarten-requests", h.CreateKindergarten)
	rg.PUT("/kindergarten-requests/:id", h.UpdateKindergarten)
	rg.POST("/kindergarten-requests/:id/cancel", h.CancelKindergarten)

	rg.GET("/service-requests", h.ListService)
	rg.GET("/service-requests/:id", h.GetService)
	rg.POST("/service-requests", h.CreateService)
	rg.PUT("/service-requests/:id", h.UpdateService)
	rg.POST("/service-requests/:id/cancel", h.CancelService)
}

// RegisterAdminRoutes wires the admin-only endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/kindergarten-requests/count", h.CountKindergarten)
	rg.DELETE("/kindergarten-requests/:id", h.DeleteKindergarten)
	rg.PATCH("/kindergarten-requests/:id/status", h.TransitionKindergarten)
	rg.PATCH("/kindergarten-requests/status", h.BulkTransitionKindergarten)
	rg.PATCH("/kindergarten-requests/:id/fees", h.UpdateKindergartenFees)

	rg.GET("/service-requests/count", h.CountService)
	rg.DELETE("/service-requests/:id", h.DeleteService)
	rg.PATCH("/service-requests/:id/status", h.TransitionService)
	rg.PATCH("/service-requests/status", h.BulkTransitionService)
	rg.PATCH("/service-requests/:id/fees", h.UpdateServiceFees)
}

func actorFrom(c *gin.Context) Actor {
	return Actor{
		UserID: c.GetInt64("user_id"),
		Role:   domain.UserRole(c.GetString("role")),
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return 0, false
	}
	return id, true
}

func skipLimit(c *gin.Context) (int, int) {
	skip, _ := strconv.Atoi(c.Query("skip"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return skip, limit
}

// writeServiceError maps engine/service sentinels onto the HTTP surface.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, pricing.ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, pricing.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request does not exist")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "No authorization")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusBadRequest, "INVALID_TRANSITION", "Status transition is not allowed")
	case errors.Is(err, ErrRequestClosed), errors.Is(err, ErrInvalidState):
		response.Error(c, http.StatusBadRequest, "REQUEST_CLOSED", msgRequestClosed)
	case errors.Is(err, ErrNothingToUpdate):
		response.Error(c, http.StatusBadRequest, "NOTHING_TO_UPDATE", "No modifiable requests matched")
	default:
		logrus.WithError(err).Error("request operation failed")
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

/* ---------- kindergarten ---------- */

func (h *Handler) CreateKindergarten(c *gin.Context) {
	var in KindergartenRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	req, err := h.service.CreateKindergarten(c.Request.Context(), actorFrom(c), in.toDomain())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, req)
}

func (h *Handler) GetKindergarten(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, err := h.service.GetKindergarten(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}

func (h *Handler) ListKindergarten(c *gin.Context) {
	skip, limit := skipLimit(c)
	reqs, err := h.service.ListKindergarten(c.Request.Context(), actorFrom(c), c.Query("status"), skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reqs)
}

func (h *Handler) CountKindergarten(c *gin.Context) {
	cnt, err := h.service.CountKindergarten(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": cnt})
}

func (h *Handler) UpdateKindergarten(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in KindergartenRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	req, err := h.service.UpdateKindergarten(c.Request.Context(), actorFrom(c), id, in.toDomain())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}

func (h *Handler) DeleteKindergarten(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteKindergarten(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Request was deleted"})
}

func (h *Handler) TransitionKindergarten(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in StatusUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	req, err := h.service.TransitionKindergarten(c.Request.Context(), id, in.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}

func (h *Handler) BulkTransitionKindergarten(c *gin.Context) {
	var in BulkStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updated, err := h.service.BulkTransitionKindergarten(c.Request.Context(), in.IDs, in.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}

func (h *Handler) UpdateKindergartenFees(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in FeeUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	req, err := h.service.UpdateKindergartenFees(c.Request.Context(), id, in.AdditionalFees)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}

func (h *Handler) CancelKindergarten(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, err := h.service.CancelKindergarten(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}

/* ---------- service ---------- */

func (h *Handler) CreateService(c *gin.Context) {
	var in ServiceRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	req, err := h.service.CreateService(c.Request.Context(), actorFrom(c), in.toDomain())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, req)
}

func (h *Handler) GetService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, err := h.service.GetService(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}

func (h *Handler) ListService(c *gin.Context) {
	skip, limit := skipLimit(c)
	reqs, err := h.service.ListService(c.Request.Context(), actorFrom(c), c.Query("status"), skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reqs)
}

func (h *Handler) CountService(c *gin.Context) {
	cnt, err := h.service.CountService(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": cnt})
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in ServiceRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	req, err := h.service.UpdateService(c.Request.Context(), actorFrom(c), id, in.toDomain())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}

func (h *Handler) CancelService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, err := h.service.CancelService(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteService(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Service request was deleted"})
}

func (h *Handler) TransitionService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in StatusUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	req, err := h.service.TransitionService(c.Request.Context(), id, in.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}

func (h *Handler) BulkTransitionService(c *gin.Context) {
	var in BulkStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updated, err := h.service.BulkTransitionService(c.Request.Context(), in.IDs, in.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}

func (h *Handler) UpdateServiceFees(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in FeeUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	req, err := h.service.UpdateServiceFees(c.Request.Context(), id, in.AdditionalFees)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}
