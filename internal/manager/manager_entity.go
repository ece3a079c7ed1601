package manager

import (
	"time"

	"github.com/google/uuid"
)

// Manager mirrors one row of the external employee directory. Only the
// fields the dashboard needs are kept.
type Manager struct {
	EmployeeID       string    `gorm:"type:varchar(64);primaryKey"`
	CompanyID        uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_managers_company"`
	Name             string    `gorm:"type:varchar(150);not null"`
	ReportingManager string    `gorm:"type:varchar(150)"`
	UpdatedAt        time.Time
}

func (Manager) TableName() string {
	return "managers"
}
