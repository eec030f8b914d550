package rbac

import (
	"sort"
	"strings"
	"sync"

	"go-workforce/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	PermissionsForRole(role, companyID string) (domain.RolePermissionsResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{enforcer: enforcer, logger: l}
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		return false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(role, req.CompanyID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("company_id", req.CompanyID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role),
		zap.String("company_id", req.CompanyID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// PermissionsForRole lists resource:action pairs granted to role directly or through inheritance.
func (s *service) PermissionsForRole(role, companyID string) (domain.RolePermissionsResponse, error) {
	role = strings.ToLower(strings.TrimSpace(role))

	s.mu.RLock()
	defer s.mu.RUnlock()

	roles, err := s.enforcer.GetImplicitRolesForUser(role)
	if err != nil {
		return domain.RolePermissionsResponse{}, err
	}
	perms, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return domain.RolePermissionsResponse{}, err
	}

	seen := make(map[string]struct{}, len(perms))
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		// p = [sub, dom, obj, act]
		if len(p) < 4 || (p[1] != "*" && p[1] != companyID) {
			continue
		}
		key := p[2] + ":" + p[3]
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	sort.Strings(roles)

	return domain.RolePermissionsResponse{Role: role, Roles: roles, Permissions: out}, nil
}
