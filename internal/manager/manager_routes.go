package manager

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
	managers := r.Group("/managers")

	managers.Use(middleware.AuthMiddleware(jwtSecret))

	{
		managers.GET("", h.GetAll)
		managers.PUT("/:employeeId", middleware.RequireCapability(gate, rolegate.CapSyncManagers), h.Upsert)
	}
}
