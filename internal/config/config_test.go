package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromLookup(t *testing.T) {
	env := map[string]string{
		"DB_HOST":    "localhost",
		"DB_USER":    "mrf",
		"DB_NAME":    "mrf",
		"JWT_SECRET": "secret",
	}
	lookup := func(k string) string { return env[k] }

	t.Run("defaults", func(t *testing.T) {
		cfg, err := fromLookup(lookup)

		assert.NoError(t, err)
		assert.Equal(t, "5432", cfg.Database.Port)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, EnvDevelopment, cfg.Env)
		assert.Equal(t, "config/roles.yaml", cfg.RolesConfig)
		assert.Empty(t, cfg.RBACModel)
		assert.Zero(t, cfg.Outbox)
		assert.Equal(t, time.Minute, cfg.RoleReload)
	})

	t.Run("role reload interval", func(t *testing.T) {
		cfg, err := fromLookup(func(k string) string {
			if k == "ROLE_RELOAD_INTERVAL" {
				return "15s"
			}
			return env[k]
		})

		assert.NoError(t, err)
		assert.Equal(t, 15*time.Second, cfg.RoleReload)
	})

	t.Run("bad role reload interval", func(t *testing.T) {
		_, err := fromLookup(func(k string) string {
			if k == "ROLE_RELOAD_INTERVAL" {
				return "-1s"
			}
			return env[k]
		})

		assert.ErrorContains(t, err, "ROLE_RELOAD_INTERVAL")
	})

	t.Run("outbox settings", func(t *testing.T) {
		cfg, err := fromLookup(func(k string) string {
			switch k {
			case "OUTBOX_POLL_INTERVAL":
				return "500ms"
			case "OUTBOX_BATCH_SIZE":
				return "20"
			case "OUTBOX_RETENTION":
				return "72h"
			}
			return env[k]
		})

		assert.NoError(t, err)
		assert.Equal(t, 500*time.Millisecond, cfg.Outbox.PollInterval)
		assert.Equal(t, 20, cfg.Outbox.BatchSize)
		assert.Equal(t, 72*time.Hour, cfg.Outbox.Retention)
	})

	t.Run("bad batch size", func(t *testing.T) {
		_, err := fromLookup(func(k string) string {
			if k == "OUTBOX_BATCH_SIZE" {
				return "0"
			}
			return env[k]
		})

		assert.ErrorContains(t, err, "OUTBOX_BATCH_SIZE")
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		_, err := fromLookup(func(k string) string {
			if k == "JWT_SECRET" {
				return ""
			}
			return env[k]
		})

		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("unknown app env", func(t *testing.T) {
		_, err := fromLookup(func(k string) string {
			if k == "APP_ENV" {
				return "staging"
			}
			return env[k]
		})

		assert.ErrorContains(t, err, "APP_ENV")
	})

	t.Run("missing db host", func(t *testing.T) {
		_, err := fromLookup(func(k string) string {
			if k == "DB_HOST" {
				return ""
			}
			return env[k]
		})

		assert.ErrorContains(t, err, "DB_HOST")
	})
}

func TestLoadRoles(t *testing.T) {
	t.Run("trims and de-duplicates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roles.yaml")
		content := `
membership:
  admin_positions: ["Senior Manager", " Senior Manager "]
  directors: [D-1]
  hr: [H-1, H-2]
  super_admins: [SA-1]
`
		assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		m, err := LoadRoles(path)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Senior Manager"}, m.AdminPositions)
		assert.Equal(t, []string{"D-1"}, m.Directors)
		assert.Equal(t, []string{"H-1", "H-2"}, m.HR)
		assert.Equal(t, []string{"SA-1"}, m.SuperAdmins)
	})

	t.Run("blank entry", func(t *testing.T) {
		_, err := ParseRoles([]byte("membership:\n  hr: [\"\"]\n"))

		assert.ErrorContains(t, err, "membership.hr[0]")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRoles(filepath.Join(t.TempDir(), "nope.yaml"))

		assert.Error(t, err)
	})

	t.Run("bundled file parses", func(t *testing.T) {
		m, err := LoadRoles(filepath.Join("..", "..", "config", "roles.yaml"))

		assert.NoError(t, err)
		assert.NotEmpty(t, m.AdminPositions)
	})
}
