package rolegate

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Membership is the role table injected from configuration. Positions are
// job titles; the other lists hold employee ids.
type Membership struct {
	AdminPositions []string `yaml:"admin_positions"`
	Directors      []string `yaml:"directors"`
	HR             []string `yaml:"hr"`
	SuperAdmins    []string `yaml:"super_admins"`
}

type MemberRow struct {
	EmployeeID string
	Role       string
}

// WithMembers returns a copy of m extended with rows loaded from storage.
// Rows with an unknown role are skipped.
func (m Membership) WithMembers(rows []MemberRow) Membership {
	out := Membership{
		AdminPositions: append([]string(nil), m.AdminPositions...),
		Directors:      append([]string(nil), m.Directors...),
		HR:             append([]string(nil), m.HR...),
		SuperAdmins:    append([]string(nil), m.SuperAdmins...),
	}
	for _, row := range rows {
		role, ok := ParseRole(row.Role)
		if !ok || strings.TrimSpace(row.EmployeeID) == "" {
			continue
		}
		id := strings.TrimSpace(row.EmployeeID)
		switch role {
		case RoleDirector:
			out.Directors = append(out.Directors, id)
		case RoleHR:
			out.HR = append(out.HR, id)
		case RoleSuperAdmin:
			out.SuperAdmins = append(out.SuperAdmins, id)
		}
	}
	return out
}

type index struct {
	positions   map[string]struct{}
	directors   map[string]struct{}
	hr          map[string]struct{}
	superAdmins map[string]struct{}
}

func newIndex(m Membership) index {
	return index{
		positions:   toSet(m.AdminPositions),
		directors:   toSet(m.Directors),
		hr:          toSet(m.HR),
		superAdmins: toSet(m.SuperAdmins),
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

type Repository interface {
	ListMembers(ctx context.Context) ([]MemberRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListMembers(ctx context.Context) ([]MemberRow, error) {
	var result []MemberRow
	err := r.db.WithContext(ctx).
		Table("role_members").
		Select("employee_id, role").
		Where("deleted_at IS NULL").
		Scan(&result).Error
	return result, err
}
