package contextutil_test

import (
	"context"
	"testing"

	"go-mrf/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMetadata(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithEmployeeID(ctx, "E-100")

	md := contextutil.ExtractMetadata(ctx)
	assert.Equal(t, "rid-1", md.RequestID)
	assert.Equal(t, "E-100", md.EmployeeID)
	assert.Len(t, md.Fields(), 2)

	assert.Equal(t, "", contextutil.GetRequestID(context.Background()))
	assert.Empty(t, contextutil.ExtractMetadata(context.Background()).Fields())
}

func TestGetLogger(t *testing.T) {
	fallback := zap.NewExample()
	scoped := zap.NewNop().Named("scoped")

	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.Same(t, scoped, contextutil.GetLogger(contextutil.WithLogger(context.Background(), scoped), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core)

	assert.Same(t, base, contextutil.Logger(context.Background(), base))

	ctx := contextutil.WithRequestID(context.Background(), "rid-9")
	contextutil.Logger(ctx, base).Info("hello")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "rid-9", entries[0].ContextMap()["request_id"])
	}
}
