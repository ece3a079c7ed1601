package manager

import (
	"net/http"

	"go-mrf/internal/middleware"
	"go-mrf/internal/shared/apperror"
	"go-mrf/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("manager.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("manager.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	companyID := c.GetString(middleware.KeyCompanyID)

	resp, err := h.service.GetAll(c.Request.Context(), companyID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Fail(c, httpErr)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Upsert(c *gin.Context) {
	companyID := c.GetString(middleware.KeyCompanyID)

	var req UpsertManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http upsert manager validation failed", zap.Error(err))
		response.Fail(c, apperror.ValidationHTTP(err))
		return
	}

	resp, err := h.service.Upsert(c.Request.Context(), companyID, c.Param("employeeId"), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("upsert manager failed", zap.Int("status", httpErr.Status), zap.String("code", httpErr.Code))
		response.Fail(c, httpErr)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
