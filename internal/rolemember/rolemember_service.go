package rolemember

import (
	"context"
	"strings"
	"time"

	"go-mrf/internal/rolegate"
	rolemembererrors "go-mrf/internal/rolemember/errors"

	"go.uber.org/zap"
)

type MembershipSetter interface {
	SetMembership(m rolegate.Membership)
}

type Service interface {
	List(ctx context.Context) ([]MemberResponse, error)
	Assign(ctx context.Context, req AssignMemberRequest) (MemberResponse, error)
	Revoke(ctx context.Context, role, employeeID string) error
	Reload(ctx context.Context) error
}

type service struct {
	repo   Repository
	gate   MembershipSetter
	base   rolegate.Membership
	logger *zap.Logger
	now    func() time.Time
}

// NewService manages the stored role rows. base is the configured membership
// the rows are merged onto whenever the gate is refreshed.
func NewService(repo Repository, gate MembershipSetter, base rolegate.Membership, logger ...*zap.Logger) Service {
	l := zap.L().Named("rolemember.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rolemember.service")
	}
	return &service{repo: repo, gate: gate, base: base, logger: l, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]MemberResponse, error) {
	rows, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]MemberResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, MemberResponse{EmployeeID: row.EmployeeID, Role: row.Role})
	}
	return resp, nil
}

func (s *service) Assign(ctx context.Context, req AssignMemberRequest) (MemberResponse, error) {
	role, employeeID, err := parseMember(req.Role, req.EmployeeID)
	if err != nil {
		return MemberResponse{}, err
	}

	if err := s.repo.Assign(ctx, employeeID, role); err != nil {
		s.logger.Error("assign role member failed",
			zap.String("employee_id", employeeID),
			zap.String("role", string(role)),
			zap.Error(err),
		)
		return MemberResponse{}, err
	}

	if err := s.Reload(ctx); err != nil {
		return MemberResponse{}, err
	}

	s.logger.Info("role member assigned", zap.String("employee_id", employeeID), zap.String("role", string(role)))
	return MemberResponse{EmployeeID: employeeID, Role: string(role)}, nil
}

func (s *service) Revoke(ctx context.Context, roleName, employeeID string) error {
	role, employeeID, err := parseMember(roleName, employeeID)
	if err != nil {
		return err
	}

	revoked, err := s.repo.Revoke(ctx, employeeID, role, s.now())
	if err != nil {
		return err
	}
	if !revoked {
		return rolemembererrors.ErrMemberNotFound
	}

	if err := s.Reload(ctx); err != nil {
		return err
	}

	s.logger.Info("role member revoked", zap.String("employee_id", employeeID), zap.String("role", string(role)))
	return nil
}

// Reload re-reads role_members and swaps the gate's membership.
func (s *service) Reload(ctx context.Context) error {
	rows, err := s.repo.ListMembers(ctx)
	if err != nil {
		s.logger.Error("reload role members failed", zap.Error(err))
		return err
	}
	s.gate.SetMembership(s.base.WithMembers(rows))
	s.logger.Debug("role membership reloaded", zap.Int("rows", len(rows)))
	return nil
}

func parseMember(roleName, employeeID string) (rolegate.Role, string, error) {
	role, ok := rolegate.ParseRole(strings.TrimSpace(roleName))
	if !ok {
		return "", "", rolemembererrors.ErrRoleNotAssignable
	}
	switch role {
	case rolegate.RoleDirector, rolegate.RoleHR, rolegate.RoleSuperAdmin:
	default:
		return "", "", rolemembererrors.ErrRoleNotAssignable
	}

	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return "", "", rolemembererrors.ErrEmployeeIDRequired
	}
	return role, employeeID, nil
}
