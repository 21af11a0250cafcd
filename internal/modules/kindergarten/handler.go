package kindergarten

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

// RegisterRoutes wires the public read surface. Clients browse active
// kindergartens and their classes when filling a request form.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/kindergartens", h.ListKindergartens)
	rg.GET("/kindergartens/:id", h.GetKindergarten)
	rg.GET("/kindergartens/:id/classes", h.ListClasses)
	rg.GET("/preschools", h.ListPreschools)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/kindergartens", h.CreateKindergarten)
	rg.PUT("/kindergartens/:id", h.UpdateKindergarten)
	rg.DELETE("/kindergartens/:id", h.DeleteKindergarten)
	rg.POST("/kindergartens/:id/classes", h.CreateClass)
	rg.PUT("/classes/:id", h.UpdateClass)
	rg.DELETE("/classes/:id", h.DeleteClass)
	rg.POST("/preschools", h.CreatePreschool)
	rg.PUT("/preschools/:id", h.UpdatePreschool)
	rg.DELETE("/preschools/:id", h.DeletePreschool)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func skipLimit(c *gin.Context) (int, int) {
	skip, _ := strconv.Atoi(c.Query("skip"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return skip, limit
}

func writeServiceError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Kindergarten does not exist")
		return
	}
	logrus.WithError(err).Error("kindergarten operation failed")
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
}

func (h *Handler) CreateKindergarten(c *gin.Context) {
	var in KindergartenInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	k, err := h.service.CreateKindergarten(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"kindergarten": k})
}

func (h *Handler) UpdateKindergarten(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in KindergartenInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	k, err := h.service.UpdateKindergarten(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"kindergarten": k})
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
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) GetKindergarten(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	k, err := h.service.GetKindergarten(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"kindergarten": k})
}

// ListKindergartens returns active kindergartens unless ?all=true.
func (h *Handler) ListKindergartens(c *gin.Context) {
	skip, limit := skipLimit(c)
	activeOnly := c.Query("all") != "true"
	ks, err := h.service.ListKindergartens(c.Request.Context(), activeOnly, skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"kindergartens": ks})
}

func (h *Handler) CreateClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in ClassInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	class, err := h.service.CreateClass(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"class": class})
}

func (h *Handler) UpdateClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in ClassInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	class, err := h.service.UpdateClass(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"class": class})
}

func (h *Handler) DeleteClass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteClass(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) ListClasses(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	classes, err := h.service.ListClasses(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

func (h *Handler) CreatePreschool(c *gin.Context) {
	var in PreschoolInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	p, err := h.service.CreatePreschool(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"preschool": p})
}

func (h *Handler) UpdatePreschool(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in PreschoolInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	p, err := h.service.UpdatePreschool(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"preschool": p})
}

func (h *Handler) DeletePreschool(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePreschool(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) ListPreschools(c *gin.Context) {
	skip, limit := skipLimit(c)
	ps, err := h.service.ListPreschools(c.Request.Context(), skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"preschools": ps})
}
