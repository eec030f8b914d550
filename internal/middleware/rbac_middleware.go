package middleware

import (
	"go-workforce/internal/domain"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is anything that can answer an enforce request.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.GetString("company_id")
		if companyID == "" {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:      c.GetString("role"),
			CompanyID: companyID,
			Resource:  resource,
			Action:    action,
		})
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		if !allowed {
			contextutil.GetLogger(c.Request.Context(), zap.L()).Warn("rbac denied",
				zap.String("role", c.GetString("role")),
				zap.String("required", resource+":"+action),
			)
			response.FromError(c, apperror.ErrForbidden.WithDetails(map[string]string{"required": resource + ":" + action}))
			c.Abort()
			return
		}
		c.Next()
	}
}
