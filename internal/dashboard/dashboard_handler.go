package dashboard

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
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Get(c *gin.Context) {
	companyID := c.GetString(middleware.KeyCompanyID)

	resp, err := h.service.Get(c.Request.Context(), companyID, middleware.ActorFromContext(c))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("dashboard request failed", zap.Int("status", httpErr.Status), zap.String("code", httpErr.Code))
		response.Fail(c, httpErr)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
