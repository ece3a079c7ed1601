package rolemember

import (
	"context"
	"time"

	"go-mrf/internal/rolegate"

	"gorm.io/gorm"
)

// Repository writes role_members. Reads go through the role gate's own
// repository so both sides agree on which rows are live.
type Repository interface {
	rolegate.Repository
	Assign(ctx context.Context, employeeID string, role rolegate.Role) error
	Revoke(ctx context.Context, employeeID string, role rolegate.Role, at time.Time) (bool, error)
}

type repository struct {
	rolegate.Repository
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{Repository: rolegate.NewRepository(db), db: db}
}

func (r *repository) Assign(ctx context.Context, employeeID string, role rolegate.Role) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO role_members (employee_id, role, deleted_at)
		VALUES (?, ?, NULL)
		ON CONFLICT (employee_id, role) DO UPDATE SET deleted_at = NULL
	`, employeeID, string(role)).Error
}

func (r *repository) Revoke(ctx context.Context, employeeID string, role rolegate.Role, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Table("role_members").
		Where("employee_id = ? AND role = ? AND deleted_at IS NULL", employeeID, string(role)).
		Update("deleted_at", at)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
