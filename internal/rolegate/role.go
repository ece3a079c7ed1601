package rolegate

import "strings"

type Role string

const (
	RoleRequester     Role = "Requester"
	RoleSeniorManager Role = "SeniorManager"
	RoleDirector      Role = "Director"
	RoleHR            Role = "HR"
	RoleSuperAdmin    Role = "SuperAdmin"
)

var roleOrder = []Role{RoleRequester, RoleSeniorManager, RoleDirector, RoleHR, RoleSuperAdmin}

func ParseRole(v string) (Role, bool) {
	for _, r := range roleOrder {
		if strings.EqualFold(string(r), strings.TrimSpace(v)) {
			return r, true
		}
	}
	return "", false
}

// Actor is the authenticated caller. A nil *Actor means nobody is signed in.
type Actor struct {
	EmpID  string
	EmpPos string
}

type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

// Slice returns the roles in a stable order.
func (s RoleSet) Slice() []Role {
	out := make([]Role, 0, len(s))
	for _, r := range roleOrder {
		if s.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s RoleSet) Strings() []string {
	roles := s.Slice()
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}
