package manager_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-mrf/internal/manager"
	managererrors "go-mrf/internal/manager/errors"
	managerMock "go-mrf/internal/manager/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   manager.Service
	repo      *managerMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	rdb, redisMock := redismock.NewClientMock()
	repo := managerMock.NewMockRepository(ctrl)

	svc := manager.NewService(db, repo, rdb, zap.NewNop())

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		redisMock: redisMock,
		service:   svc,
		repo:      repo,
	}
}

func TestManagerService_GetAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	cacheKey := manager.GetManagerAllKey(companyID)

	stored := []manager.Manager{
		{EmployeeID: "E-1", Name: "Asha", ReportingManager: "Vikram"},
		{EmployeeID: "E-2", Name: "Ravi"},
	}
	expected := []manager.ManagerResponse{
		{EmployeeID: "E-1", Name: "Asha", ReportingManager: "Vikram"},
		{EmployeeID: "E-2", Name: "Ravi"},
	}

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		payload, _ := json.Marshal(expected)
		deps.redisMock.ExpectGet(cacheKey).SetVal(string(payload))

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		payload, _ := json.Marshal(expected)
		deps.redisMock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindAllByCompany(gomock.Any(), companyID).Return(stored, nil)
		deps.redisMock.ExpectSet(cacheKey, payload, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindAllByCompany(gomock.Any(), companyID).Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx, companyID)

		assert.Error(t, err)
	})

	t.Run("invalid company id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetAll(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, managererrors.ErrInvalidCompanyID)
	})
}

func TestManagerService_Upsert(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	cacheKey := manager.GetManagerAllKey(companyID)

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *manager.Manager) error {
				assert.Equal(t, "E-9", m.EmployeeID)
				assert.Equal(t, companyID, m.CompanyID.String())
				assert.Equal(t, "Meera", m.Name)
				return nil
			})
		deps.redisMock.ExpectDel(cacheKey).SetVal(1)

		resp, err := deps.service.Upsert(ctx, companyID, " E-9 ", manager.UpsertManagerRequest{Name: " Meera "})

		assert.NoError(t, err)
		assert.Equal(t, "E-9", resp.EmployeeID)
		assert.Equal(t, "Meera", resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("repository error rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		_, err := deps.service.Upsert(ctx, companyID, "E-9", manager.UpsertManagerRequest{Name: "Meera"})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("blank employee id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Upsert(ctx, companyID, "  ", manager.UpsertManagerRequest{Name: "Meera"})

		assert.ErrorIs(t, err, managererrors.ErrEmployeeIDRequired)
	})
}
