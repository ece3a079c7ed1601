package rolemember

import (
	"go-mrf/internal/middleware"
	"go-mrf/internal/rolegate"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	jwtSecret string,
	gate middleware.CapabilityChecker,
) {
	group := r.Group("/role-members")
	group.Use(
		middleware.AuthMiddleware(jwtSecret),
		middleware.RequireCapability(gate, rolegate.CapManageRoles),
	)
	{
		group.GET("", h.List)
		group.POST("", h.Assign)
		group.DELETE("/:role/:employeeId", h.Revoke)
	}
}
