package requisition

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-mrf/internal/events"
	"go-mrf/internal/messaging/kafka"
	requisitionerrors "go-mrf/internal/requisition/errors"
	"go-mrf/internal/rolegate"
	rolegateerrors "go-mrf/internal/rolegate/errors"
	"go-mrf/internal/shared/contextutil"
	"go-mrf/internal/shared/counter"
	"go-mrf/internal/workflow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AccessChecker answers non-transition capability questions.
type AccessChecker interface {
	Can(actor *rolegate.Actor, c rolegate.Capability) error
}

type Service interface {
	Create(ctx context.Context, companyID string, actor *rolegate.Actor, req CreateRequisitionRequest) (RequisitionResponse, error)
	GetAll(ctx context.Context, companyID string, actor *rolegate.Actor, filter ListFilter) ([]RequisitionResponse, error)
	GetByID(ctx context.Context, companyID string, actor *rolegate.Actor, id string) (RequisitionResponse, error)
	Update(ctx context.Context, companyID string, actor *rolegate.Actor, id string, req UpdateRequisitionRequest) (RequisitionResponse, error)
	Submit(ctx context.Context, companyID string, actor *rolegate.Actor, id string) (RequisitionResponse, error)
	Withdraw(ctx context.Context, companyID string, actor *rolegate.Actor, id string) (RequisitionResponse, error)
	Transition(ctx context.Context, companyID string, actor *rolegate.Actor, id string, req TransitionRequest) (RequisitionResponse, error)
	ListQueries(ctx context.Context, companyID string, actor *rolegate.Actor, id string) ([]QueryResponse, error)
	DeactivateQuery(ctx context.Context, companyID string, actor *rolegate.Actor, id, queryID string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	gate    AccessChecker
	engine  *workflow.Engine
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	gate AccessChecker,
	engine *workflow.Engine,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("requisition.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("requisition.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		gate:    gate,
		engine:  engine,
		now:     time.Now,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, actor *rolegate.Actor, req CreateRequisitionRequest) (RequisitionResponse, error) {
	if actor == nil {
		return RequisitionResponse{}, rolegateerrors.ErrUnauthenticated
	}
	s.log(ctx).Debug("create requisition requested",
		zap.String("company_id", companyID),
		zap.String("actor_id", actor.EmpID),
		zap.String("requirement_type", req.RequirementType),
		zap.Bool("save_as_draft", req.SaveAsDraft),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RequisitionResponse{}, requisitionerrors.ErrInvalidCompanyID
	}
	details := detailsFromCreate(req)
	if err := validateDetails(details); err != nil {
		s.log(ctx).Warn("create requisition validation failed", zap.Error(err))
		return RequisitionResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.log(ctx).Error("create requisition begin tx failed", zap.Error(err))
		return RequisitionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	seq, err := s.counter.WithTx(tx).Next(ctx, companyID, counter.MRFNumber)
	if err != nil {
		s.log(ctx).Error("create requisition generate number failed", zap.Error(err))
		return RequisitionResponse{}, err
	}

	initial := workflow.Initial(req.SaveAsDraft)
	now := s.now().UTC()
	r := &Requisition{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		MRFNumber:      counter.MRFNumber.Format(seq),
		CreatedBy:      actor.EmpID,
		Status:         string(initial.Status),
		DirectorStatus: string(initial.DirectorStatus),
		HRStatus:       string(initial.HRStatus),
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	details.applyTo(r)

	if err := qtx.Create(ctx, r); err != nil {
		s.log(ctx).Error("create requisition persist failed", zap.Error(err))
		return RequisitionResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueue(ctx, tx, r, actor, events.RequisitionCreated, ""); err != nil {
		s.log(ctx).Error("create requisition outbox persist failed",
			zap.String("requisition_id", r.ID.String()),
			zap.Error(err),
		)
		return RequisitionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.log(ctx).Error("create requisition commit failed", zap.Error(err))
		return RequisitionResponse{}, err
	}
	s.log(ctx).Info("create requisition success",
		zap.String("requisition_id", r.ID.String()),
		zap.String("mrf_number", r.MRFNumber),
		zap.String("status", r.Status),
	)

	return mapToResponse(*r), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, actor *rolegate.Actor, filter ListFilter) ([]RequisitionResponse, error) {
	if actor == nil {
		return nil, rolegateerrors.ErrUnauthenticated
	}
	if filter.Status != "" {
		if _, err := workflow.ParseStatus(filter.Status); err != nil {
			return nil, err
		}
	}
	if err := s.gate.Can(actor, rolegate.CapReadAllRequisitions); err != nil {
		filter.CreatedBy = actor.EmpID
	}
	s.log(ctx).Debug("get all requisitions requested",
		zap.String("company_id", companyID),
		zap.String("actor_id", actor.EmpID),
		zap.String("status", filter.Status),
		zap.String("created_by", filter.CreatedBy),
	)

	reqs, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		s.log(ctx).Error("get all requisitions failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(reqs), nil
}

func (s *service) GetByID(ctx context.Context, companyID string, actor *rolegate.Actor, id string) (RequisitionResponse, error) {
	if actor == nil {
		return RequisitionResponse{}, rolegateerrors.ErrUnauthenticated
	}
	if _, err := uuid.Parse(id); err != nil {
		return RequisitionResponse{}, requisitionerrors.ErrInvalidRequisitionID
	}

	r, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return RequisitionResponse{}, mapRepositoryError(err)
	}
	if err := s.canView(actor, r); err != nil {
		s.log(ctx).Warn("get requisition forbidden",
			zap.String("requisition_id", id),
			zap.String("actor_id", actor.EmpID),
		)
		return RequisitionResponse{}, err
	}
	return mapToResponse(*r), nil
}

func (s *service) Update(ctx context.Context, companyID string, actor *rolegate.Actor, id string, req UpdateRequisitionRequest) (RequisitionResponse, error) {
	if actor == nil {
		return RequisitionResponse{}, rolegateerrors.ErrUnauthenticated
	}
	s.log(ctx).Debug("update requisition requested",
		zap.String("requisition_id", id),
		zap.String("company_id", companyID),
		zap.String("actor_id", actor.EmpID),
	)

	if _, err := uuid.Parse(id); err != nil {
		return RequisitionResponse{}, requisitionerrors.ErrInvalidRequisitionID
	}
	details := detailsFromUpdate(req)
	if err := validateDetails(details); err != nil {
		s.log(ctx).Warn("update requisition validation failed", zap.String("requisition_id", id), zap.Error(err))
		return RequisitionResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.log(ctx).Error("update requisition begin tx failed", zap.Error(err))
		return RequisitionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	r, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return RequisitionResponse{}, mapRepositoryError(err)
	}
	if r.CreatedBy != actor.EmpID {
		return RequisitionResponse{}, requisitionerrors.ErrNotOwner
	}
	if !workflow.Editable(workflow.Status(r.Status)) {
		s.log(ctx).Warn("update requisition not editable",
			zap.String("requisition_id", id),
			zap.String("status", r.Status),
		)
		return RequisitionResponse{}, requisitionerrors.ErrNotEditable
	}

	details.applyTo(r)
	r.UpdatedAt = s.now().UTC()

	if err := qtx.UpdateDetails(ctx, r); err != nil {
		s.log(ctx).Error("update requisition persist failed",
			zap.String("requisition_id", id),
			zap.Error(err),
		)
		return RequisitionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.log(ctx).Error("update requisition commit failed", zap.String("requisition_id", id), zap.Error(err))
		return RequisitionResponse{}, err
	}
	s.log(ctx).Info("update requisition success",
		zap.String("requisition_id", id),
		zap.Int("version", r.Version),
	)

	return mapToResponse(*r), nil
}

func (s *service) Submit(ctx context.Context, companyID string, actor *rolegate.Actor, id string) (RequisitionResponse, error) {
	return s.requesterAction(ctx, companyID, actor, id, events.RequisitionSubmitted, workflow.Submit)
}

func (s *service) Withdraw(ctx context.Context, companyID string, actor *rolegate.Actor, id string) (RequisitionResponse, error) {
	return s.requesterAction(ctx, companyID, actor, id, events.RequisitionWithdrawn, workflow.Withdraw)
}

func (s *service) requesterAction(
	ctx context.Context,
	companyID string,
	actor *rolegate.Actor,
	id string,
	eventType string,
	apply func(workflow.Snapshot) (workflow.Snapshot, error),
) (RequisitionResponse, error) {
	if actor == nil {
		return RequisitionResponse{}, rolegateerrors.ErrUnauthenticated
	}
	s.log(ctx).Debug("requester action requested",
		zap.String("requisition_id", id),
		zap.String("actor_id", actor.EmpID),
		zap.String("event_type", eventType),
	)
	if _, err := uuid.Parse(id); err != nil {
		return RequisitionResponse{}, requisitionerrors.ErrInvalidRequisitionID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.log(ctx).Error("requester action begin tx failed", zap.Error(err))
		return RequisitionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	r, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return RequisitionResponse{}, mapRepositoryError(err)
	}
	if r.CreatedBy != actor.EmpID {
		return RequisitionResponse{}, requisitionerrors.ErrNotOwner
	}

	previous := r.Status
	next, err := apply(toSnapshot(r))
	if err != nil {
		s.log(ctx).Warn("requester action rejected",
			zap.String("requisition_id", id),
			zap.String("status", previous),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return RequisitionResponse{}, err
	}
	next.UpdatedAt = s.now().UTC()
	applySnapshot(r, next)

	if err := qtx.UpdateWorkflow(ctx, r); err != nil {
		s.log(ctx).Error("requester action persist failed", zap.String("requisition_id", id), zap.Error(err))
		return RequisitionResponse{}, mapRepositoryError(err)
	}
	if err := s.enqueue(ctx, tx, r, actor, eventType, previous); err != nil {
		s.log(ctx).Error("requester action outbox persist failed", zap.String("requisition_id", id), zap.Error(err))
		return RequisitionResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.log(ctx).Error("requester action commit failed", zap.String("requisition_id", id), zap.Error(err))
		return RequisitionResponse{}, err
	}
	s.log(ctx).Info("requester action success",
		zap.String("requisition_id", id),
		zap.String("from_status", previous),
		zap.String("to_status", r.Status),
	)

	return mapToResponse(*r), nil
}

func (s *service) Transition(ctx context.Context, companyID string, actor *rolegate.Actor, id string, req TransitionRequest) (RequisitionResponse, error) {
	if actor == nil {
		return RequisitionResponse{}, rolegateerrors.ErrUnauthenticated
	}
	s.log(ctx).Debug("transition requisition requested",
		zap.String("requisition_id", id),
		zap.String("actor_id", actor.EmpID),
		zap.String("role", req.Role),
		zap.String("target_status", req.Status),
	)

	role, ok := rolegate.ParseRole(req.Role)
	if !ok || (role != rolegate.RoleDirector && role != rolegate.RoleHR) {
		return RequisitionResponse{}, requisitionerrors.ErrInvalidRole
	}
	target, err := workflow.ParseStatus(req.Status)
	if err != nil {
		return RequisitionResponse{}, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return RequisitionResponse{}, requisitionerrors.ErrInvalidRequisitionID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.log(ctx).Error("transition requisition begin tx failed", zap.Error(err))
		return RequisitionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	r, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return RequisitionResponse{}, mapRepositoryError(err)
	}

	out, err := s.engine.Transition(actor, toSnapshot(r), workflow.Command{
		Role:      role,
		Target:    target,
		Comment:   req.Comment,
		QueryText: req.QueryText,
	})
	if err != nil {
		s.log(ctx).Warn("transition requisition rejected",
			zap.String("requisition_id", id),
			zap.String("status", r.Status),
			zap.String("role", string(role)),
			zap.String("target_status", string(target)),
			zap.Error(err),
		)
		return RequisitionResponse{}, err
	}

	applySnapshot(r, out.Snapshot)
	if role == rolegate.RoleDirector && req.DirectorSignature != "" {
		r.DirectorSignature = req.DirectorSignature
	}

	if err := qtx.UpdateWorkflow(ctx, r); err != nil {
		s.log(ctx).Error("transition requisition persist failed",
			zap.String("requisition_id", id),
			zap.Error(err),
		)
		return RequisitionResponse{}, mapRepositoryError(err)
	}

	if out.Query != nil {
		q := &Query{
			ID:               uuid.New(),
			RequisitionID:    r.ID,
			CompanyID:        r.CompanyID,
			QueryName:        out.Query.QueryName,
			QueryCreatedBy:   out.Query.CreatedBy,
			QueryCreatedDate: out.Query.CreatedDate,
			QueryCreatedTime: out.Query.CreatedTime,
			QueryIsDelete:    out.Query.IsDelete,
			CreatedAt:        out.Query.CreatedAt,
		}
		if err := qtx.AppendQuery(ctx, q); err != nil {
			s.log(ctx).Error("transition requisition append query failed",
				zap.String("requisition_id", id),
				zap.Error(err),
			)
			return RequisitionResponse{}, err
		}
	}

	if err := s.enqueue(ctx, tx, r, actor, events.RequisitionStatusChanged, string(out.Previous)); err != nil {
		s.log(ctx).Error("transition requisition outbox persist failed",
			zap.String("requisition_id", id),
			zap.Error(err),
		)
		return RequisitionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.log(ctx).Error("transition requisition commit failed", zap.Error(err))
		return RequisitionResponse{}, err
	}
	s.log(ctx).Info("transition requisition success",
		zap.String("requisition_id", id),
		zap.String("from_status", string(out.Previous)),
		zap.String("to_status", r.Status),
		zap.String("director_status", r.DirectorStatus),
		zap.String("hr_status", r.HRStatus),
	)

	return mapToResponse(*r), nil
}

func (s *service) ListQueries(ctx context.Context, companyID string, actor *rolegate.Actor, id string) ([]QueryResponse, error) {
	if actor == nil {
		return nil, rolegateerrors.ErrUnauthenticated
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, requisitionerrors.ErrInvalidRequisitionID
	}

	r, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if err := s.canView(actor, r); err != nil {
		return nil, err
	}

	queries, err := s.repo.ListQueries(ctx, companyID, id)
	if err != nil {
		s.log(ctx).Error("list queries failed", zap.String("requisition_id", id), zap.Error(err))
		return nil, err
	}
	resp := make([]QueryResponse, len(queries))
	for i, q := range queries {
		resp[i] = mapQueryToResponse(q)
	}
	return resp, nil
}

func (s *service) DeactivateQuery(ctx context.Context, companyID string, actor *rolegate.Actor, id, queryID string) error {
	if err := s.gate.Can(actor, rolegate.CapDeactivateQuery); err != nil {
		return err
	}
	if _, err := uuid.Parse(id); err != nil {
		return requisitionerrors.ErrInvalidRequisitionID
	}
	if _, err := uuid.Parse(queryID); err != nil {
		return requisitionerrors.ErrQueryNotFound
	}

	ok, err := s.repo.DeactivateQuery(ctx, companyID, id, queryID)
	if err != nil {
		s.log(ctx).Error("deactivate query failed",
			zap.String("requisition_id", id),
			zap.String("query_id", queryID),
			zap.Error(err),
		)
		return err
	}
	if !ok {
		return requisitionerrors.ErrQueryNotFound
	}
	s.log(ctx).Info("deactivate query success",
		zap.String("requisition_id", id),
		zap.String("query_id", queryID),
		zap.String("actor_id", actor.EmpID),
	)
	return nil
}

func (s *service) canView(actor *rolegate.Actor, r *Requisition) error {
	if r.CreatedBy == actor.EmpID {
		return nil
	}
	return s.gate.Can(actor, rolegate.CapReadAllRequisitions)
}

// log tags the service logger with the request metadata in ctx.
func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.Logger(ctx, s.logger)
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, r *Requisition, actor *rolegate.Actor, eventType, from string) error {
	if s.outbox == nil {
		return nil
	}
	rid := contextutil.GetRequestID(ctx)
	event := events.RequisitionStatusChangedEvent{
		EventType:      eventType,
		RequestID:      rid,
		RequisitionID:  r.ID.String(),
		CompanyID:      r.CompanyID.String(),
		ActorID:        actor.EmpID,
		FromStatus:     from,
		ToStatus:       r.Status,
		DirectorStatus: r.DirectorStatus,
		HRStatus:       r.HRStatus,
		OccurredAt:     s.now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "requisition",
		AggregateID:   event.RequisitionID,
		EventType:     eventType,
		Topic:         events.RequisitionLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// details is the requester-owned part of a requisition, shared by create and
// update.
type details struct {
	Department         string
	Designation        string
	EmploymentType     string
	RequirementType    string
	ProjectName        string
	Headcount          int
	JobDescription     string
	Education          string
	Experience         string
	CTCMin             decimal.Decimal
	CTCMax             decimal.Decimal
	HiringTAT          string
	RequestorSignature string
	RampUpFile         string
}

func detailsFromCreate(req CreateRequisitionRequest) details {
	return details{
		Department:         req.Department,
		Designation:        req.Designation,
		EmploymentType:     req.EmploymentType,
		RequirementType:    req.RequirementType,
		ProjectName:        req.ProjectName,
		Headcount:          req.Headcount,
		JobDescription:     req.JobDescription,
		Education:          req.Education,
		Experience:         req.Experience,
		CTCMin:             req.CTCMin,
		CTCMax:             req.CTCMax,
		HiringTAT:          req.HiringTAT,
		RequestorSignature: req.RequestorSignature,
		RampUpFile:         req.RampUpFile,
	}
}

func detailsFromUpdate(req UpdateRequisitionRequest) details {
	return details{
		Department:         req.Department,
		Designation:        req.Designation,
		EmploymentType:     req.EmploymentType,
		RequirementType:    req.RequirementType,
		ProjectName:        req.ProjectName,
		Headcount:          req.Headcount,
		JobDescription:     req.JobDescription,
		Education:          req.Education,
		Experience:         req.Experience,
		CTCMin:             req.CTCMin,
		CTCMax:             req.CTCMax,
		HiringTAT:          req.HiringTAT,
		RequestorSignature: req.RequestorSignature,
		RampUpFile:         req.RampUpFile,
	}
}

func (d details) applyTo(r *Requisition) {
	r.Department = d.Department
	r.Designation = d.Designation
	r.EmploymentType = d.EmploymentType
	r.RequirementType = d.RequirementType
	r.ProjectName = d.ProjectName
	r.Headcount = d.Headcount
	r.JobDescription = d.JobDescription
	r.Education = d.Education
	r.Experience = d.Experience
	r.CTCMin = d.CTCMin
	r.CTCMax = d.CTCMax
	r.HiringTAT = d.HiringTAT
	r.RequestorSignature = d.RequestorSignature
	r.RampUpFile = d.RampUpFile
}

func validateDetails(d details) error {
	if !IsRequirementType(d.RequirementType) {
		return requisitionerrors.ErrInvalidRequirementType
	}
	if _, ok := HiringTATDays(d.HiringTAT); !ok {
		return requisitionerrors.ErrInvalidHiringTAT
	}
	if d.Headcount < 1 {
		return requisitionerrors.ErrInvalidHeadcount
	}
	if d.CTCMin.IsNegative() || d.CTCMin.GreaterThan(d.CTCMax) {
		return requisitionerrors.ErrInvalidCTCRange
	}
	if d.RequirementType == RequirementRampUp && d.RampUpFile == "" {
		return requisitionerrors.ErrRampUpFileRequired
	}
	return nil
}

func toSnapshot(r *Requisition) workflow.Snapshot {
	return workflow.Snapshot{
		ID:               r.ID.String(),
		CreatedBy:        r.CreatedBy,
		Status:           workflow.Status(r.Status),
		DirectorStatus:   workflow.Status(r.DirectorStatus),
		HRStatus:         workflow.Status(r.HRStatus),
		DirectorComments: r.DirectorComments,
		HRComments:       r.HRComments,
		DirectorActionAt: r.DirectorActionAt,
		HRActionAt:       r.HRActionAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func applySnapshot(r *Requisition, snap workflow.Snapshot) {
	r.Status = string(snap.Status)
	r.DirectorStatus = string(snap.DirectorStatus)
	r.HRStatus = string(snap.HRStatus)
	r.DirectorComments = snap.DirectorComments
	r.HRComments = snap.HRComments
	r.DirectorActionAt = snap.DirectorActionAt
	r.HRActionAt = snap.HRActionAt
	r.UpdatedAt = snap.UpdatedAt
}

func mapToResponse(r Requisition) RequisitionResponse {
	days, _ := HiringTATDays(r.HiringTAT)
	resp := RequisitionResponse{
		ID:                 r.ID.String(),
		CompanyID:          r.CompanyID.String(),
		MRFNumber:          r.MRFNumber,
		CreatedBy:          r.CreatedBy,
		Department:         r.Department,
		Designation:        r.Designation,
		EmploymentType:     r.EmploymentType,
		RequirementType:    r.RequirementType,
		ProjectName:        r.ProjectName,
		Headcount:          r.Headcount,
		JobDescription:     r.JobDescription,
		Education:          r.Education,
		Experience:         r.Experience,
		CTCMin:             r.CTCMin.StringFixed(2),
		CTCMax:             r.CTCMax.StringFixed(2),
		HiringTAT:          r.HiringTAT,
		HiringTATDays:      days,
		RequestorSignature: r.RequestorSignature,
		DirectorSignature:  r.DirectorSignature,
		RampUpFile:         r.RampUpFile,
		Status:             r.Status,
		DirectorStatus:     r.DirectorStatus,
		HRStatus:           r.HRStatus,
		DirectorComments:   r.DirectorComments,
		HRComments:         r.HRComments,
		Version:            r.Version,
	}
	if r.DirectorActionAt != nil {
		v := r.DirectorActionAt.Format(time.RFC3339)
		resp.DirectorActionAt = &v
	}
	if r.HRActionAt != nil {
		v := r.HRActionAt.Format(time.RFC3339)
		resp.HRActionAt = &v
	}
	if !r.CreatedAt.IsZero() {
		resp.CreatedAt = r.CreatedAt.Format(time.RFC3339)
	}
	if !r.UpdatedAt.IsZero() {
		resp.UpdatedAt = r.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(reqs []Requisition) []RequisitionResponse {
	resp := make([]RequisitionResponse, len(reqs))
	for i, r := range reqs {
		resp[i] = mapToResponse(r)
	}
	return resp
}

func mapQueryToResponse(q Query) QueryResponse {
	return QueryResponse{
		ID:               q.ID.String(),
		RequisitionID:    q.RequisitionID.String(),
		QueryName:        q.QueryName,
		QueryCreatedBy:   q.QueryCreatedBy,
		QueryCreatedDate: q.QueryCreatedDate,
		QueryCreatedTime: q.QueryCreatedTime,
		QueryIsDelete:    q.QueryIsDelete,
	}
}
