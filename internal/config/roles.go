package config

import (
	"fmt"
	"os"
	"strings"

	"go-mrf/internal/rolegate"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type rolesFile struct {
	Membership rolegate.Membership `yaml:"membership"`
}

// LoadRoles reads the role membership table. Entries are trimmed and
// de-duplicated; blank entries are rejected.
func LoadRoles(path string) (rolegate.Membership, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return rolegate.Membership{}, fmt.Errorf("config: read roles %s: %w", path, err)
	}
	return ParseRoles(b)
}

func ParseRoles(b []byte) (rolegate.Membership, error) {
	var f rolesFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return rolegate.Membership{}, fmt.Errorf("config: parse roles yaml: %w", err)
	}

	m := f.Membership
	var err error
	if m.AdminPositions, err = normalize("admin_positions", m.AdminPositions); err != nil {
		return rolegate.Membership{}, err
	}
	if m.Directors, err = normalize("directors", m.Directors); err != nil {
		return rolegate.Membership{}, err
	}
	if m.HR, err = normalize("hr", m.HR); err != nil {
		return rolegate.Membership{}, err
	}
	if m.SuperAdmins, err = normalize("super_admins", m.SuperAdmins); err != nil {
		return rolegate.Membership{}, err
	}
	return m, nil
}

func normalize(field string, values []string) ([]string, error) {
	out := make([]string, 0, len(values))
	for i, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, fmt.Errorf("config: membership.%s[%d] is blank", field, i)
		}
		out = append(out, v)
	}
	return lo.Uniq(out), nil
}
