package auth

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

// RegisterRoutes wires the unauthenticated auth surface.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/exists", h.Exists)
	rg.POST("/auth/verify", h.StartVerification)
	rg.POST("/auth/verify/check", h.CheckVerification)
	rg.POST("/auth/admin/login", h.AdminLogin)
}

// RegisterAdminRoutes wires the admin user browser.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.ListUsers)
	rg.GET("/users/count", h.CountUsers)
	rg.GET("/users/:id", h.GetUser)
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User does not exist")
	case errors.Is(err, ErrPhoneAlreadyExists):
		response.Error(c, http.StatusConflict, "PHONE_EXISTS", "Phone already registered")
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, ErrVerificationFailed):
		response.Error(c, http.StatusUnauthorized, "VERIFICATION_FAILED", "Wrong or expired code")
	case errors.Is(err, ErrTooManyRequests):
		response.Error(c, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Code already sent, retry later")
	default:
		logrus.WithError(err).Error("auth operation failed")
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func (h *Handler) Register(c *gin.Context) {
	var in RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	user, err := h.service.RegisterClient(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) Exists(c *gin.Context) {
	var in PhoneInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	exists, err := h.service.Exists(c.Request.Context(), in.Phone)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exists": exists})
}

func (h *Handler) StartVerification(c *gin.Context) {
	var in PhoneInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if err := h.service.StartVerification(c.Request.Context(), in.Phone); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sent": true})
}

func (h *Handler) CheckVerification(c *gin.Context) {
	var in CheckInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	result, err := h.service.CheckVerification(c.Request.Context(), in.Phone, in.Code)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var in AdminLoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	result, err := h.service.AdminLogin(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

// ListUsers accepts filter[col]=val and sort[col]=asc|desc query pairs.
func (h *Handler) ListUsers(c *gin.Context) {
	skip, _ := strconv.Atoi(c.Query("skip"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	users, err := h.service.ListUsers(c.Request.Context(), c.QueryMap("filter"), c.QueryMap("sort"), skip, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

func (h *Handler) CountUsers(c *gin.Context) {
	count, err := h.service.CountUsers(c.Request.Context(), c.QueryMap("filter"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": count})
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}
	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}
