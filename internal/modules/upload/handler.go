package upload

import (
	"net/http"

	"photoorders/internal/pkg/response"
	"photoorders/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxUploadBytes = 10 << 20 // 10 MB

// allowed image kinds map onto object name prefixes
var allowedKinds = map[string]bool{
	"costume": true, "theme": true, "sample": true, "thumbnail": true,
}

type Handler struct {
	store *storage.Client
}

func NewHandler(store *storage.Client) *Handler {
	return &Handler{store: store}
}

// RegisterAdminRoutes wires the image upload endpoint. Admins upload an
// image first, then reference the returned object name from a catalog write.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads/:kind", h.Upload)
}

func (h *Handler) Upload(c *gin.Context) {
	kind := c.Param("kind")
	if !allowedKinds[kind] {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown upload kind")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "file field is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File too large")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unreadable file")
		return
	}
	defer f.Close()

	objectName, err := h.store.Upload(c.Request.Context(), kind, fileHeader.Filename, f, fileHeader.Size)
	if err != nil {
		logrus.WithError(err).Error("image upload failed")
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Upload failed")
		return
	}

	url, err := h.store.URL(c.Request.Context(), objectName)
	if err != nil {
		logrus.WithError(err).Warn("presign after upload failed")
	}

	response.Success(c, http.StatusCreated, gin.H{
		"object": objectName,
		"url":    url,
	})
}
