package dashboard

import (
	"go-mrf/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, jwtSecret string) {
	dashboard := r.Group("/dashboard")

	dashboard.Use(middleware.AuthMiddleware(jwtSecret))

	{
		dashboard.GET("", h.Get)
	}
}
