package requisition

import (
	"go-mrf/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	jwtSecret string,
	rdb *redis.Client,
) {
	reqs := r.Group("/requisitions")
	reqs.Use(middleware.AuthMiddleware(jwtSecret), middleware.RateLimitByUser(rate.Limit(10), 20))

	write := []gin.HandlerFunc{}
	if rdb != nil {
		write = append(write, middleware.Idempotency(rdb))
	}
	{
		reqs.GET("", handler.GetAll)
		reqs.GET("/:id", handler.GetByID)
		reqs.POST("", append(write, handler.Create)...)
		reqs.PUT("/:id", handler.Update)
		reqs.POST("/:id/submit", append(write, handler.Submit)...)
		reqs.POST("/:id/withdraw", append(write, handler.Withdraw)...)
		reqs.POST("/:id/transition", append(write, handler.Transition)...)
		reqs.GET("/:id/queries", handler.ListQueries)
		reqs.DELETE("/:id/queries/:queryId", handler.DeactivateQuery)
	}
}
