package requisition

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Requisition struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_requisitions_company_status;uniqueIndex:uq_requisition_mrf_number"`
	MRFNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_requisition_mrf_number"`
	CreatedBy string    `gorm:"type:varchar(64);not null;index:idx_requisitions_created_by"`

	Department      string          `gorm:"type:varchar(120);not null"`
	Designation     string          `gorm:"type:varchar(120);not null"`
	EmploymentType  string          `gorm:"type:varchar(60);not null"`
	RequirementType string          `gorm:"type:varchar(30);not null"`
	ProjectName     string          `gorm:"type:varchar(160)"`
	Headcount       int             `gorm:"type:int;not null;default:1"`
	JobDescription  string          `gorm:"type:text"`
	Education       string          `gorm:"type:varchar(255)"`
	Experience      string          `gorm:"type:varchar(120)"`
	CTCMin          decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CTCMax          decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	HiringTAT       string          `gorm:"type:varchar(20);not null"`

	// path references owned by the file store
	RequestorSignature string `gorm:"type:varchar(512)"`
	DirectorSignature  string `gorm:"type:varchar(512)"`
	RampUpFile         string `gorm:"type:varchar(512)"`

	Status           string `gorm:"type:varchar(20);not null;default:'Pending';index:idx_requisitions_company_status"`
	DirectorStatus   string `gorm:"type:varchar(20);not null;default:'Pending'"`
	HRStatus         string `gorm:"column:hr_status;type:varchar(20);not null;default:'Pending'"`
	DirectorComments string `gorm:"type:text"`
	HRComments       string `gorm:"column:hr_comments;type:text"`
	DirectorActionAt *time.Time
	HRActionAt       *time.Time `gorm:"column:hr_action_at"`

	Version   int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Requisition) TableName() string {
	return "requisitions"
}

// Query is one entry of a requisition's query log. Rows are never updated
// except for QueryIsDelete.
type Query struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequisitionID    uuid.UUID `gorm:"type:uuid;not null;index:idx_requisition_queries_requisition"`
	CompanyID        uuid.UUID `gorm:"type:uuid;not null"`
	QueryName        string    `gorm:"type:text;not null"`
	QueryCreatedBy   string    `gorm:"type:varchar(64);not null"`
	QueryCreatedDate string    `gorm:"type:varchar(10);not null"`
	QueryCreatedTime string    `gorm:"type:varchar(8);not null"`
	QueryIsDelete    string    `gorm:"type:varchar(10);not null;default:'Active'"`
	CreatedAt        time.Time
}

func (Query) TableName() string {
	return "requisition_queries"
}
