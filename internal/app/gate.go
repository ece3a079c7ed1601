package app

import (
	"go-mrf/internal/config"
	"go-mrf/internal/rolegate"
)

// buildGate loads the casbin model and the configured membership. Stored
// role_members rows are merged later by the rolemember service.
func buildGate(cfg *config.Config) (*rolegate.Gate, rolegate.Membership, error) {
	enforcer, err := rolegate.NewEnforcer(cfg.RBACModel)
	if err != nil {
		return nil, rolegate.Membership{}, err
	}

	membership, err := config.LoadRoles(cfg.RolesConfig)
	if err != nil {
		return nil, rolegate.Membership{}, err
	}

	gate, err := rolegate.NewGate(enforcer, membership)
	if err != nil {
		return nil, rolegate.Membership{}, err
	}
	return gate, membership, nil
}
