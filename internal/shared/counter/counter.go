// Package counter hands out gap-free, per-company document numbers.
package counter

import (
	"context"
	"database/sql"
	"fmt"

	"go-mrf/internal/shared/dbtx"

	"gorm.io/gorm"
)

// Sequence names a counter and how its values are rendered.
type Sequence struct {
	Name   string
	Prefix string
	Width  int
}

// MRFNumber renders 42 as MRF-000042.
var MRFNumber = Sequence{Name: "mrf_number", Prefix: "MRF-", Width: 6}

// Format pads n to the sequence width. Wider values are kept whole.
func (s Sequence) Format(n int64) string {
	return fmt.Sprintf("%s%0*d", s.Prefix, s.Width, n)
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Next(ctx context.Context, companyID string, seq Sequence) (int64, error)
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

const nextValueSQL = `
INSERT INTO company_counters AS c (company_id, counter_type, last_value, updated_at)
VALUES (?, ?, 1, now())
ON CONFLICT (company_id, counter_type)
DO UPDATE SET last_value = c.last_value + 1, updated_at = now()
RETURNING c.last_value`

// Next bumps the counter row. Inside a tx the row lock is held until commit,
// so a rolled-back create does not burn a number.
func (r *repository) Next(ctx context.Context, companyID string, seq Sequence) (int64, error) {
	if companyID == "" || seq.Name == "" {
		return 0, fmt.Errorf("counter: company and sequence are required")
	}

	var next int64
	err := dbtx.Conn(ctx, r.db, r.tx).Raw(nextValueSQL, companyID, seq.Name).Scan(&next).Error
	if err != nil {
		return 0, fmt.Errorf("counter %s: %w", seq.Name, err)
	}
	return next, nil
}
