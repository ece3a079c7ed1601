package rolegate

import (
	"strings"
	"sync"

	rolegateerrors "go-mrf/internal/rolegate/errors"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"
)

const (
	ObjectDirectorStatus = "director_status"
	ObjectHRStatus       = "hr_status"
)

// Capability is an (object, action) pair checked against the policy table.
type Capability struct {
	Object string
	Action string
}

func (c Capability) String() string {
	return c.Object + ":" + c.Action
}

var (
	CapReadAllRequisitions = Capability{Object: "requisition", Action: "read_all"}
	CapAdminDashboard      = Capability{Object: "dashboard", Action: "admin"}
	CapDeactivateQuery     = Capability{Object: "query", Action: "deactivate"}
	CapManageRoles         = Capability{Object: "role_member", Action: "manage"}
	CapSyncManagers        = Capability{Object: "manager", Action: "sync"}
)

// Transition asks whether Role may move its sub-status to Target.
type Transition struct {
	Role   Role
	Target string
}

func (t Transition) Capability() Capability {
	switch t.Role {
	case RoleDirector:
		return Capability{Object: ObjectDirectorStatus, Action: t.Target}
	case RoleHR:
		return Capability{Object: ObjectHRStatus, Action: t.Target}
	default:
		return Capability{Object: strings.ToLower(string(t.Role)) + "_status", Action: t.Target}
	}
}

var defaultPolicies = [][]string{
	{string(RoleDirector), ObjectDirectorStatus, "Approve"},
	{string(RoleDirector), ObjectDirectorStatus, "Reject"},
	{string(RoleDirector), ObjectDirectorStatus, "Raise Query"},
	{string(RoleDirector), ObjectDirectorStatus, "On Hold"},

	{string(RoleHR), ObjectHRStatus, "Approve"},
	{string(RoleHR), ObjectHRStatus, "HR Approve"},
	{string(RoleHR), ObjectHRStatus, "Reject"},
	{string(RoleHR), ObjectHRStatus, "Raise Query"},
	{string(RoleHR), ObjectHRStatus, "On Hold"},
	{string(RoleHR), ObjectHRStatus, "Pending"},

	{string(RoleSeniorManager), CapReadAllRequisitions.Object, CapReadAllRequisitions.Action},
	{string(RoleDirector), CapReadAllRequisitions.Object, CapReadAllRequisitions.Action},
	{string(RoleHR), CapReadAllRequisitions.Object, CapReadAllRequisitions.Action},
	{string(RoleSuperAdmin), CapReadAllRequisitions.Object, CapReadAllRequisitions.Action},

	{string(RoleSuperAdmin), CapAdminDashboard.Object, CapAdminDashboard.Action},
	{string(RoleHR), CapDeactivateQuery.Object, CapDeactivateQuery.Action},

	{string(RoleSuperAdmin), CapManageRoles.Object, CapManageRoles.Action},
	{string(RoleSuperAdmin), CapSyncManagers.Object, CapSyncManagers.Action},
	{string(RoleHR), CapSyncManagers.Object, CapSyncManagers.Action},
}

// DefaultModel matches model.conf and is used when no model file is configured.
const DefaultModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// NewEnforcer builds a casbin enforcer from a model file, or from
// DefaultModel when modelPath is empty.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	if modelPath == "" {
		m, err := model.NewModelFromString(DefaultModel)
		if err != nil {
			return nil, err
		}
		return casbin.NewEnforcer(m)
	}
	return casbin.NewEnforcer(modelPath)
}

type Gate struct {
	enforcer *casbin.Enforcer
	idx      index
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewGate loads the built-in policy table into enforcer and indexes m.
func NewGate(enforcer *casbin.Enforcer, m Membership, logger ...*zap.Logger) (*Gate, error) {
	l := zap.L().Named("rolegate")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rolegate")
	}

	enforcer.ClearPolicy()
	if _, err := enforcer.AddPolicies(defaultPolicies); err != nil {
		return nil, err
	}

	l.Info("role gate ready",
		zap.Int("policies", len(defaultPolicies)),
		zap.Int("admin_positions", len(m.AdminPositions)),
		zap.Int("directors", len(m.Directors)),
		zap.Int("hr", len(m.HR)),
		zap.Int("super_admins", len(m.SuperAdmins)),
	)

	return &Gate{enforcer: enforcer, idx: newIndex(m), logger: l}, nil
}

// SetMembership swaps the role table, e.g. after re-reading role_members.
func (g *Gate) SetMembership(m Membership) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.idx = newIndex(m)
}

// Classify returns every role the actor holds. Any signed-in actor is a
// Requester; nil yields an empty set.
func (g *Gate) Classify(actor *Actor) RoleSet {
	roles := NewRoleSet()
	if actor == nil {
		return roles
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	roles[RoleRequester] = struct{}{}
	if _, ok := g.idx.positions[strings.TrimSpace(actor.EmpPos)]; ok {
		roles[RoleSeniorManager] = struct{}{}
	}
	if _, ok := g.idx.directors[actor.EmpID]; ok {
		roles[RoleDirector] = struct{}{}
	}
	if _, ok := g.idx.hr[actor.EmpID]; ok {
		roles[RoleHR] = struct{}{}
	}
	if _, ok := g.idx.superAdmins[actor.EmpID]; ok {
		roles[RoleSuperAdmin] = struct{}{}
	}
	return roles
}

// Authorize checks that the actor holds t.Role and that the role is granted
// t.Target. It fails closed.
func (g *Gate) Authorize(actor *Actor, t Transition) error {
	if actor == nil {
		return rolegateerrors.ErrUnauthenticated
	}
	roles := g.Classify(actor)
	if !roles.Has(t.Role) {
		g.logger.Warn("transition denied: role not held",
			zap.String("emp_id", actor.EmpID),
			zap.String("role", string(t.Role)),
			zap.Strings("roles", roles.Strings()),
		)
		return rolegateerrors.ErrForbidden
	}
	if !g.allowed(NewRoleSet(t.Role), t.Capability()) {
		g.logger.Warn("transition denied: not granted to role",
			zap.String("emp_id", actor.EmpID),
			zap.String("role", string(t.Role)),
			zap.String("target", t.Target),
		)
		return rolegateerrors.ErrForbidden
	}
	return nil
}

// Can checks a non-transition capability for any of the actor's roles.
func (g *Gate) Can(actor *Actor, c Capability) error {
	if actor == nil {
		return rolegateerrors.ErrUnauthenticated
	}
	if !g.allowed(g.Classify(actor), c) {
		return rolegateerrors.ErrForbidden
	}
	return nil
}

func (g *Gate) allowed(roles RoleSet, c Capability) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, role := range roles.Slice() {
		ok, err := g.enforcer.Enforce(string(role), c.Object, c.Action)
		if err != nil {
			g.logger.Error("casbin enforce failed",
				zap.String("role", string(role)),
				zap.String("capability", c.String()),
				zap.Error(err),
			)
			return false
		}
		if ok {
			return true
		}
	}
	return false
}
