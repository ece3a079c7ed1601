package manager

import (
	"context"
	"database/sql"

	"go-mrf/internal/shared/dbtx"
	"go-mrf/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=manager_repo.go -destination=mock/manager_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAllByCompany(ctx context.Context, companyID string) ([]Manager, error)
	Upsert(ctx context.Context, m *Manager) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Manager, error) {
	var managers []Manager
	err := dbtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&managers).Error
	return managers, err
}

func (r *repository) Upsert(ctx context.Context, m *Manager) error {
	return dbtx.Conn(ctx, r.db, r.tx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "company_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "reporting_manager", "updated_at"}),
		}).
		Create(m).Error
}
