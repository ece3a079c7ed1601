// Package tenant holds gorm scopes that keep queries inside one company.
package tenant

import "gorm.io/gorm"

// Scope limits a query to one company's rows.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// Owned narrows Scope to rows raised by one employee.
func Owned(companyID, createdBy string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ? AND created_by = ?", companyID, createdBy)
	}
}
