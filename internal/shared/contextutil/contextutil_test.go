package contextutil_test

import (
	"context"
	"testing"

	"go-workforce/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestActorRoundTrip(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithActor(ctx, "actor-1", "company-1", "HR")

	meta := contextutil.ExtractMetadata(ctx)
	assert.Equal(t, "rid-1", meta.RequestID)
	assert.Equal(t, "actor-1", meta.ActorID)
	assert.Equal(t, "company-1", meta.CompanyID)
	assert.Equal(t, "HR", contextutil.GetRole(ctx))
}

func TestGetLogger_Fallbacks(t *testing.T) {
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	def := zap.NewNop()
	assert.Same(t, def, contextutil.GetLogger(context.Background(), def))

	scoped := zap.NewNop()
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, def))
}
