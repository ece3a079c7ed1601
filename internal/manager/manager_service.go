package manager

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	managererrors "go-mrf/internal/manager/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	ManagerAllKeyPrefix = "managers:all:"
	managerCacheTTL     = 30 * time.Minute
)

func GetManagerAllKey(companyID string) string {
	return ManagerAllKeyPrefix + companyID
}

//go:generate mockgen -source=manager_service.go -destination=mock/manager_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, companyID string) ([]ManagerResponse, error)
	Upsert(ctx context.Context, companyID, employeeID string, req UpsertManagerRequest) (ManagerResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("manager.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("manager.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
		now:    time.Now,
	}
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]ManagerResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, managererrors.ErrInvalidCompanyID
	}

	cacheKey := GetManagerAllKey(companyID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []ManagerResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		managers, err := s.repo.FindAllByCompany(ctx, companyID)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(managers)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, managerCacheTTL).Err(); err != nil {
					s.logger.Warn("cache managers failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("list managers failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}

	return v.([]ManagerResponse), nil
}

func (s *service) Upsert(
	ctx context.Context,
	companyID, employeeID string,
	req UpsertManagerRequest,
) (ManagerResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ManagerResponse{}, managererrors.ErrInvalidCompanyID
	}
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return ManagerResponse{}, managererrors.ErrEmployeeIDRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ManagerResponse{}, err
	}
	defer tx.Rollback()

	m := &Manager{
		EmployeeID:       employeeID,
		CompanyID:        companyUUID,
		Name:             strings.TrimSpace(req.Name),
		ReportingManager: strings.TrimSpace(req.ReportingManager),
		UpdatedAt:        s.now(),
	}

	if err := s.repo.WithTx(tx).Upsert(ctx, m); err != nil {
		s.logger.Error("upsert manager failed", zap.String("employee_id", employeeID), zap.Error(err))
		return ManagerResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ManagerResponse{}, err
	}

	s.invalidate(ctx, companyID)

	s.logger.Info("manager upserted",
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
	)
	return mapToResponse(*m), nil
}

func (s *service) invalidate(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetManagerAllKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("invalidate manager cache failed", zap.String("key", cacheKey), zap.Error(err))
	}
}

func mapToResponse(m Manager) ManagerResponse {
	return ManagerResponse{
		EmployeeID:       m.EmployeeID,
		Name:             m.Name,
		ReportingManager: m.ReportingManager,
	}
}

func mapToListResponse(managers []Manager) []ManagerResponse {
	resp := make([]ManagerResponse, 0, len(managers))
	for _, m := range managers {
		resp = append(resp, mapToResponse(m))
	}
	return resp
}
