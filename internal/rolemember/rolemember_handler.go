package rolemember

import (
	"net/http"

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
	l := zap.L().Named("rolemember.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rolemember.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("role member request failed",
		zap.String("method", c.Request.Method),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Fail(c, httpErr)
}

func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Assign(c *gin.Context) {
	var req AssignMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http assign role member validation failed", zap.Error(err))
		response.Fail(c, apperror.ValidationHTTP(err))
		return
	}

	resp, err := h.service.Assign(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Revoke(c *gin.Context) {
	if err := h.service.Revoke(c.Request.Context(), c.Param("role"), c.Param("employeeId")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
