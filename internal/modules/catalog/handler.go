package catalog

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

// RegisterRoutes wires the public read surface of the catalog.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/paper-sizes", h.ListPaperSizes)
	rg.GET("/paper-sizes/:id", h.GetPaperSize)
	rg.GET("/additions", h.ListAdditions)
	rg.GET("/additions/:id", h.GetAddition)
	rg.GET("/packages", h.ListPackages)
	rg.GET("/packages/:id", h.GetPackage)
	rg.GET("/themes", h.ListThemes)
	rg.GET("/themes/:id", h.GetTheme)
	rg.GET("/service-types", h.ListServiceTypes)
	rg.GET("/service-types/:id", h.GetServiceType)
	rg.GET("/costumes", h.ListCostumes)
	rg.GET("/costumes/:id", h.GetCostume)
	rg.GET("/studio-samples", h.ListSamples)
	rg.GET("/studio-samples/:id", h.GetSample)
}

// RegisterAdminRoutes wires the write surface.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/paper-sizes", h.CreatePaperSize)
	rg.PUT("/paper-sizes/:id", h.UpdatePaperSize)
	rg.DELETE("/paper-sizes/:id", h.DeletePaperSize)
	rg.POST("/additions", h.CreateAddition)
	rg.PUT("/additions/:id", h.UpdateAddition)
	rg.DELETE("/additions/:id", h.DeleteAddition)
	rg.POST("/packages", h.CreatePackage)
	rg.PUT("/packages/:id", h.UpdatePackage)
	rg.DELETE("/packages/:id", h.DeletePackage)
	rg.POST("/themes", h.CreateTheme)
	rg.PUT("/themes/:id", h.UpdateTheme)
	rg.DELETE("/themes/:id", h.DeleteTheme)
	rg.POST("/service-types", h.CreateServiceType)
	rg.PUT("/service-types/:id", h.UpdateServiceType)
	rg.DELETE("/service-types/:id", h.DeleteServiceType)
	rg.POST("/costumes", h.CreateCostume)
	rg.PUT("/costumes/:id", h.UpdateCostume)
	rg.DELETE("/costumes/:id", h.DeleteCostume)
	rg.POST("/studio-samples", h.CreateSample)
	rg.DELETE("/studio-samples/:id", h.DeleteSample)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid catalog ID")
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
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Catalog entry does not exist")
	default:
		logrus.WithError(err).Error("catalog operation failed")
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

/* ---------- paper sizes ---------- */

func (h *Handler) CreatePaperSize(c *gin.Context) {
	var in PaperSizeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	size, err := h.service.CreatePaperSize(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"paper_size": size})
}

func (h *Handler) UpdatePaperSize(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in PaperSizeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	size, err := h.service.UpdatePaperSize(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"paper_size": size})
}

func (h *Handler) DeletePaperSize(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePaperSize(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) GetPaperSize(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	size, err := h.service.GetPaperSize(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"paper_size": size})
}

func (h *Handler) ListPaperSizes(c *gin.Context) {
	skip, limit := skipLimit(c)
	sizes, err := h.service.ListPaperSizes(c.Request.Context(), skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"paper_sizes": sizes})
}

/* ---------- additions ---------- */

func (h *Handler) CreateAddition(c *gin.Context) {
	var in ServiceAdditionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	addition, err := h.service.CreateAddition(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"addition": addition})
}

func (h *Handler) UpdateAddition(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in ServiceAdditionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	addition, err := h.service.UpdateAddition(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"addition": addition})
}

func (h *Handler) DeleteAddition(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAddition(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) GetAddition(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	addition, err := h.service.GetAddition(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"addition": addition})
}

// ListAdditions supports ?service=K|O to narrow to one request family.
func (h *Handler) ListAdditions(c *gin.Context) {
	skip, limit := skipLimit(c)
	additions, err := h.service.ListAdditions(c.Request.Context(), c.Query("service"), skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"additions": additions})
}

/* ---------- packages ---------- */

func (h *Handler) CreatePackage(c *gin.Context) {
	var in PackageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	pkg, err := h.service.CreatePackage(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"package": pkg})
}

func (h *Handler) UpdatePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in PackageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	pkg, err := h.service.UpdatePackage(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"package": pkg})
}

func (h *Handler) DeletePackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePackage(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) GetPackage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pkg, err := h.service.GetPackage(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"package": pkg})
}

func (h *Handler) ListPackages(c *gin.Context) {
	skip, limit := skipLimit(c)
	pkgs, err := h.service.ListPackages(c.Request.Context(), skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"packages": pkgs})
}

/* ---------- themes ---------- */

func (h *Handler) CreateTheme(c *gin.Context) {
	var in ThemeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	theme, err := h.service.CreateTheme(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"theme": theme})
}

func (h *Handler) UpdateTheme(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in ThemeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	theme, err := h.service.UpdateTheme(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"theme": theme})
}

func (h *Handler) DeleteTheme(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteTheme(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) GetTheme(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	theme, err := h.service.GetTheme(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"theme": theme})
}

// ListThemes supports ?studio=true to narrow to themes shown in the studio
// gallery.
func (h *Handler) ListThemes(c *gin.Context) {
	skip, limit := skipLimit(c)
	studioOnly := c.Query("studio") == "true"
	themes, err := h.service.ListThemes(c.Request.Context(), studioOnly, skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"themes": themes})
}

/* ---------- service types ---------- */

func (h *Handler) CreateServiceType(c *gin.Context) {
	var in ServiceTypeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	st, err := h.service.CreateServiceType(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"service_type": st})
}

func (h *Handler) UpdateServiceType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in ServiceTypeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	st, err := h.service.UpdateServiceType(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service_type": st})
}

func (h *Handler) DeleteServiceType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteServiceType(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) GetServiceType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	st, err := h.service.GetServiceType(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service_type": st})
}

func (h *Handler) ListServiceTypes(c *gin.Context) {
	skip, limit := skipLimit(c)
	types, err := h.service.ListServiceTypes(c.Request.Context(), skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service_types": types})
}

/* ---------- costumes ---------- */

func (h *Handler) CreateCostume(c *gin.Context) {
	var in CostumeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	costume, err := h.service.CreateCostume(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"costume": costume})
}

func (h *Handler) UpdateCostume(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in CostumeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	costume, err := h.service.UpdateCostume(c.Request.Context(), id, in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"costume": costume})
}

func (h *Handler) DeleteCostume(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCostume(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) GetCostume(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	costume, err := h.service.GetCostume(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"costume": costume})
}

func (h *Handler) ListCostumes(c *gin.Context) {
	skip, limit := skipLimit(c)
	costumes, err := h.service.ListCostumes(c.Request.Context(), skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"costumes": costumes})
}

/* ---------- studio samples ---------- */

func (h *Handler) CreateSample(c *gin.Context) {
	var in StudioSampleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	sample, err := h.service.CreateSample(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"sample": sample})
}

func (h *Handler) DeleteSample(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteSample(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) GetSample(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sample, err := h.service.GetSample(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sample": sample})
}

func (h *Handler) ListSamples(c *gin.Context) {
	skip, limit := skipLimit(c)
	samples, err := h.service.ListSamples(c.Request.Context(), skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"samples": samples})
}
