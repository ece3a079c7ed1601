package requisition

import (
	"context"
	"database/sql"
	"errors"

	"go-mrf/internal/shared/dbtx"
	"go-mrf/internal/tenant"
	"go-mrf/internal/workflow"

	"gorm.io/gorm"
)

// ErrStaleVersion means the row changed since it was read.
var ErrStaleVersion = errors.New("requisition version is stale")

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Requisition) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Requisition, error)
	FindAllByCompany(ctx context.Context, companyID string, filter ListFilter) ([]Requisition, error)
	CountByStatus(ctx context.Context, companyID string, filter ListFilter) (map[string]any, error)
	UpdateDetails(ctx context.Context, r *Requisition) error
	UpdateWorkflow(ctx context.Context, r *Requisition) error
	AppendQuery(ctx context.Context, q *Query) error
	ListQueries(ctx context.Context, companyID, requisitionID string) ([]Query, error)
	DeactivateQuery(ctx context.Context, companyID, requisitionID, queryID string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, req *Requisition) error {
	return r.conn(ctx).Create(req).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Requisition, error) {
	var req Requisition
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) filtered(ctx context.Context, companyID string, filter ListFilter) *gorm.DB {
	scope := tenant.Scope(companyID)
	if filter.CreatedBy != "" {
		scope = tenant.Owned(companyID, filter.CreatedBy)
	}
	db := r.conn(ctx).Model(&Requisition{}).Scopes(scope)
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	return db
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter ListFilter) ([]Requisition, error) {
	var reqs []Requisition
	err := r.filtered(ctx, companyID, filter).Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

// CountByStatus returns the driver's per-status counts keyed by the stored
// status text. Values are left as scanned; read them with
// aggregator.CountsFromRaw.
func (r *repository) CountByStatus(ctx context.Context, companyID string, filter ListFilter) (map[string]any, error) {
	var rows []map[string]any
	err := r.filtered(ctx, companyID, filter).
		Select("status, COUNT(*) AS total").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]any, len(rows))
	for _, row := range rows {
		switch status := row["status"].(type) {
		case string:
			counts[status] = row["total"]
		case []byte:
			counts[string(status)] = row["total"]
		}
	}
	return counts, nil
}

// UpdateDetails writes the requester-editable fields if req.Version still
// matches the stored row, then bumps req.Version.
func (r *repository) UpdateDetails(ctx context.Context, req *Requisition) error {
	return r.compareAndSwap(ctx, req, map[string]any{
		"department":          req.Department,
		"designation":         req.Designation,
		"employment_type":     req.EmploymentType,
		"requirement_type":    req.RequirementType,
		"project_name":        req.ProjectName,
		"headcount":           req.Headcount,
		"job_description":     req.JobDescription,
		"education":           req.Education,
		"experience":          req.Experience,
		"ctc_min":             req.CTCMin,
		"ctc_max":             req.CTCMax,
		"hiring_tat":          req.HiringTAT,
		"requestor_signature": req.RequestorSignature,
		"ramp_up_file":        req.RampUpFile,
	})
}

// UpdateWorkflow writes the status triple and approver fields under the same
// version check as UpdateDetails.
func (r *repository) UpdateWorkflow(ctx context.Context, req *Requisition) error {
	return r.compareAndSwap(ctx, req, map[string]any{
		"status":             req.Status,
		"director_status":    req.DirectorStatus,
		"hr_status":          req.HRStatus,
		"director_comments":  req.DirectorComments,
		"hr_comments":        req.HRComments,
		"director_action_at": req.DirectorActionAt,
		"hr_action_at":       req.HRActionAt,
		"director_signature": req.DirectorSignature,
	})
}

func (r *repository) compareAndSwap(ctx context.Context, req *Requisition, fields map[string]any) error {
	fields["version"] = gorm.Expr("version + 1")
	fields["updated_at"] = req.UpdatedAt

	res := r.conn(ctx).
		Model(&Requisition{}).
		Where("id = ? AND company_id = ? AND version = ?", req.ID, req.CompanyID, req.Version).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleVersion
	}
	req.Version++
	return nil
}

func (r *repository) AppendQuery(ctx context.Context, q *Query) error {
	return r.conn(ctx).Create(q).Error
}

func (r *repository) ListQueries(ctx context.Context, companyID, requisitionID string) ([]Query, error) {
	var queries []Query
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("requisition_id = ?", requisitionID).
		Order("created_at ASC").
		Find(&queries).Error
	return queries, err
}

// DeactivateQuery soft-deletes an active query. It reports false when no
// active query matched.
func (r *repository) DeactivateQuery(ctx context.Context, companyID, requisitionID, queryID string) (bool, error) {
	res := r.conn(ctx).
		Model(&Query{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ? AND requisition_id = ? AND query_is_delete = ?", queryID, requisitionID, workflow.QueryActive).
		Update("query_is_delete", workflow.QueryInactive)
	return res.RowsAffected > 0, res.Error
}
