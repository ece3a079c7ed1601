package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go-mrf/internal/shared/apperror"
	"go-mrf/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"

	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored 2xx response of a POST that carried the same
// Idempotency-Key for the same user and request path. The concrete path is
// keyed, so one key sent to two requisitions runs both. A duplicate that arrives while
// the first is still running gets 409.
func Idempotency(rdb *redis.Client, logger ...*zap.Logger) gin.HandlerFunc {
	l := zap.L().Named("middleware.idempotency")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("middleware.idempotency")
	}

	return func(c *gin.Context) {
		idempKey := c.GetHeader(HeaderIdempotencyKey)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		userID := c.GetString(KeyUserID)
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.Request.URL.Path, userID, idempKey)
		lockKey := cacheKey + ":lock"

		if cached, err := rdb.HGetAll(ctx, cacheKey).Result(); err == nil && cached["body"] != "" {
			status, err := strconv.Atoi(cached["status"])
			if err != nil {
				status = http.StatusOK
			}
			c.Header("Idempotent-Replayed", "true")
			c.Data(status, "application/json; charset=utf-8", []byte(cached["body"]))
			c.Abort()
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			l.Warn("idempotency lock unavailable, passing through", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Abort(c, apperror.ToHTTP(apperror.ErrRequestInFlight))
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		status := rec.Status()
		if status >= 200 && status < 300 {
			if err := rdb.HSet(ctx, cacheKey, "status", status, "body", rec.body.String()).Err(); err != nil {
				l.Error("idempotency store failed", zap.String("key", cacheKey), zap.Error(err))
			} else if err := rdb.Expire(ctx, cacheKey, idempotencyResultTTL).Err(); err != nil {
				l.Error("idempotency expire failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			l.Error("idempotency unlock failed", zap.String("key", lockKey), zap.Error(err))
		}
	}
}
