package middleware

import (
	"strings"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Identity headers are set by the upstream gateway after it authenticated the caller.
const (
	HeaderCompanyID = "X-Company-ID"
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"
)

// GatewayIdentity trusts the gateway headers and exposes them to handlers as company_id,
// employee_id and role.
func GatewayIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := strings.TrimSpace(c.GetHeader(HeaderCompanyID))
		actorID := strings.TrimSpace(c.GetHeader(HeaderActorID))
		role := strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderActorRole)))

		if companyID == "" || actorID == "" {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}
		if _, err := uuid.Parse(companyID); err != nil {
			response.FromError(c, apperror.InvalidField("company_id"))
			c.Abort()
			return
		}
		if _, err := uuid.Parse(actorID); err != nil {
			response.FromError(c, apperror.InvalidField("actor_id"))
			c.Abort()
			return
		}

		c.Set("company_id", companyID)
		c.Set("employee_id", actorID)
		c.Set("role", role)

		ctx := contextutil.WithActor(c.Request.Context(), actorID, companyID, role)
		reqLogger := contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("actor_id", actorID),
			zap.String("company_id", companyID),
		)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
