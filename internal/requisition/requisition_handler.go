package requisition

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
	l := zap.L().Named("requisition.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("requisition.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("requisition request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Fail(c, httpErr)
}

func (h *Handler) writeValidationError(c *gin.Context, op string, err error) {
	h.logger.Warn("http "+op+" requisition validation failed", zap.Error(err))
	response.Fail(c, apperror.ValidationHTTP(err))
}

func (h *Handler) Create(c *gin.Context) {
	companyID := c.GetString(middleware.KeyCompanyID)
	actor := middleware.ActorFromContext(c)

	var req CreateRequisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, "create", err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), companyID, actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	companyID := c.GetString(middleware.KeyCompanyID)
	actor := middleware.ActorFromContext(c)

	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.writeValidationError(c, "list", err)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), companyID, actor, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	start, end, meta := response.PageBounds(c, len(resp))
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(
		c.Request.Context(),
		c.GetString(middleware.KeyCompanyID),
		middleware.ActorFromContext(c),
		c.Param("id"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, "update", err)
		return
	}

	resp, err := h.service.Update(
		c.Request.Context(),
		c.GetString(middleware.KeyCompanyID),
		middleware.ActorFromContext(c),
		c.Param("id"),
		req,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	resp, err := h.service.Submit(
		c.Request.Context(),
		c.GetString(middleware.KeyCompanyID),
		middleware.ActorFromContext(c),
		c.Param("id"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Withdraw(c *gin.Context) {
	resp, err := h.service.Withdraw(
		c.Request.Context(),
		c.GetString(middleware.KeyCompanyID),
		middleware.ActorFromContext(c),
		c.Param("id"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Transition(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	h.logger.Debug("http transition requisition",
		zap.String("requisition_id", c.Param("id")),
		zap.String("company_id", c.GetString(middleware.KeyCompanyID)),
	)

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, "transition", err)
		return
	}

	resp, err := h.service.Transition(
		c.Request.Context(),
		c.GetString(middleware.KeyCompanyID),
		actor,
		c.Param("id"),
		req,
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListQueries(c *gin.Context) {
	resp, err := h.service.ListQueries(
		c.Request.Context(),
		c.GetString(middleware.KeyCompanyID),
		middleware.ActorFromContext(c),
		c.Param("id"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeactivateQuery(c *gin.Context) {
	err := h.service.DeactivateQuery(
		c.Request.Context(),
		c.GetString(middleware.KeyCompanyID),
		middleware.ActorFromContext(c),
		c.Param("id"),
		c.Param("queryId"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"query_is_delete": "Inactive"}, nil)
}
