package requisition_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-mrf/internal/aggregator"
	"go-mrf/internal/requisition"
	"go-mrf/internal/workflow"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)
	return gdb, sqlDB, mock
}

func TestRequisitionRepository_UpdateWorkflow(t *testing.T) {
	ctx := context.Background()

	newReq := func() *requisition.Requisition {
		return &requisition.Requisition{
			ID:             uuid.New(),
			CompanyID:      uuid.New(),
			Status:         string(workflow.StatusApprove),
			DirectorStatus: string(workflow.StatusApprove),
			HRStatus:       string(workflow.StatusPending),
			Version:        4,
			UpdatedAt:      time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		}
	}

	t.Run("bumps version on match", func(t *testing.T) {
		gdb, sqlDB, mock := newGormMock(t)
		defer sqlDB.Close()

		mock.ExpectExec(`UPDATE "requisitions" SET .*"version"=version \+ 1.* WHERE \(?id = \$\d+ AND company_id = \$\d+ AND version = \$\d+\)?`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		r := newReq()
		err := requisition.NewRepository(gdb).UpdateWorkflow(ctx, r)

		assert.NoError(t, err)
		assert.Equal(t, 5, r.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version", func(t *testing.T) {
		gdb, sqlDB, mock := newGormMock(t)
		defer sqlDB.Close()

		mock.ExpectExec(`UPDATE "requisitions" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		r := newReq()
		err := requisition.NewRepository(gdb).UpdateWorkflow(ctx, r)

		assert.ErrorIs(t, err, requisition.ErrStaleVersion)
		assert.Equal(t, 4, r.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("runs inside caller tx", func(t *testing.T) {
		gdb, sqlDB, mock := newGormMock(t)
		defer sqlDB.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "requisitions" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := sqlDB.BeginTx(ctx, nil)
		assert.NoError(t, err)

		err = requisition.NewRepository(gdb).WithTx(tx).UpdateWorkflow(ctx, newReq())
		assert.NoError(t, err)
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequisitionRepository_FindAllByCompany(t *testing.T) {
	gdb, sqlDB, mock := newGormMock(t)
	defer sqlDB.Close()

	companyID := uuid.NewString()
	mock.ExpectQuery(`SELECT \* FROM "requisitions" WHERE .*company_id = \$\d+ AND created_by = \$\d+.* ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "created_by"}).
			AddRow(uuid.NewString(), "Pending", "E-1"))

	got, err := requisition.NewRepository(gdb).FindAllByCompany(context.Background(), companyID, requisition.ListFilter{
		Status:    "Pending",
		CreatedBy: "E-1",
	})

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequisitionRepository_CountByStatus(t *testing.T) {
	t.Run("groups the owner's requisitions", func(t *testing.T) {
		gdb, sqlDB, mock := newGormMock(t)
		defer sqlDB.Close()

		mock.ExpectQuery(`SELECT status, COUNT\(\*\) AS total FROM "requisitions" WHERE .*company_id = \$\d+ AND created_by = \$\d+.* GROUP BY "?status"?`).
			WillReturnRows(sqlmock.NewRows([]string{"status", "total"}).
				AddRow("Pending", int64(2)).
				AddRow("Reject", int64(1)))

		got, err := requisition.NewRepository(gdb).CountByStatus(context.Background(), uuid.NewString(), requisition.ListFilter{CreatedBy: "E-1"})

		assert.NoError(t, err)
		counts := aggregator.CountsFromRaw(got)
		assert.Equal(t, 2, counts[workflow.StatusPending])
		assert.Equal(t, 1, counts[workflow.StatusReject])
		assert.Equal(t, 0, counts[workflow.StatusApprove])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		gdb, sqlDB, mock := newGormMock(t)
		defer sqlDB.Close()

		mock.ExpectQuery(`SELECT status, COUNT`).WillReturnError(sql.ErrConnDone)

		got, err := requisition.NewRepository(gdb).CountByStatus(context.Background(), uuid.NewString(), requisition.ListFilter{})

		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.Nil(t, got)
	})
}

func TestRequisitionRepository_DeactivateQuery(t *testing.T) {
	gdb, sqlDB, mock := newGormMock(t)
	defer sqlDB.Close()

	companyID, reqID, queryID := uuid.NewString(), uuid.NewString(), uuid.NewString()
	mock.ExpectExec(`UPDATE "requisition_queries" SET "query_is_delete"=\$1 WHERE .*company_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := requisition.NewRepository(gdb).DeactivateQuery(context.Background(), companyID, reqID, queryID)

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
