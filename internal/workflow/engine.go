package workflow

import (
	"strings"
	"time"

	"go-mrf/internal/rolegate"
	rolegateerrors "go-mrf/internal/rolegate/errors"
	workflowerrors "go-mrf/internal/workflow/errors"
)

const (
	QueryActive   = "Active"
	QueryInactive = "Inactive"
)

// Snapshot is the workflow-relevant slice of a requisition.
type Snapshot struct {
	ID               string
	CreatedBy        string
	Status           Status
	DirectorStatus   Status
	HRStatus         Status
	DirectorComments string
	HRComments       string
	DirectorActionAt *time.Time
	HRActionAt       *time.Time
	UpdatedAt        time.Time
}

type Command struct {
	Role      rolegate.Role
	Target    Status
	Comment   string
	QueryText string
}

// QueryRecord is one entry of the append-only query log.
type QueryRecord struct {
	RequisitionID string
	QueryName     string
	CreatedBy     string
	CreatedDate   string
	CreatedTime   string
	IsDelete      string
	CreatedAt     time.Time
}

type Outcome struct {
	Snapshot Snapshot
	Previous Status
	Query    *QueryRecord
}

type Authorizer interface {
	Classify(actor *rolegate.Actor) rolegate.RoleSet
	Authorize(actor *rolegate.Actor, t rolegate.Transition) error
}

var legalTargets = map[rolegate.Role][]Status{
	rolegate.RoleDirector: {StatusApprove, StatusReject, StatusRaiseQuery, StatusOnHold},
	rolegate.RoleHR:       {StatusApprove, StatusHRApprove, StatusReject, StatusRaiseQuery, StatusOnHold, StatusPending},
}

// LegalTargets returns the statuses role may set, or nil for a role that
// owns no sub-status.
func LegalTargets(role rolegate.Role) []Status {
	return append([]Status(nil), legalTargets[role]...)
}

func isLegal(role rolegate.Role, target Status) bool {
	for _, s := range legalTargets[role] {
		if s == target {
			return true
		}
	}
	return false
}

type Engine struct {
	gate Authorizer
	now  func() time.Time
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(gate Authorizer, opts ...Option) *Engine {
	e := &Engine{gate: gate, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Transition applies cmd to snap and returns the new snapshot. snap itself is
// not modified. Raising a query also returns the record to append.
//
// An actor that does not hold cmd.Role is refused before the snapshot is
// looked at, so the error never reveals the requisition's state.
func (e *Engine) Transition(actor *rolegate.Actor, snap Snapshot, cmd Command) (Outcome, error) {
	if actor == nil {
		return Outcome{}, rolegateerrors.ErrUnauthenticated
	}
	if !e.gate.Classify(actor).Has(cmd.Role) {
		return Outcome{}, rolegateerrors.ErrForbidden
	}

	current, err := normalize(snap)
	if err != nil {
		return Outcome{}, err
	}
	if current.Status.IsTerminal() {
		return Outcome{}, workflowerrors.ErrAlreadyTerminal
	}
	if current.Status == StatusDraft {
		return Outcome{}, workflowerrors.ErrInvalidTransition
	}
	if !isLegal(cmd.Role, cmd.Target) {
		return Outcome{}, workflowerrors.ErrInvalidTransition
	}

	if err := e.gate.Authorize(actor, rolegate.Transition{Role: cmd.Role, Target: string(cmd.Target)}); err != nil {
		return Outcome{}, err
	}

	queryText := strings.TrimSpace(cmd.QueryText)
	if cmd.Target == StatusRaiseQuery && queryText == "" {
		return Outcome{}, workflowerrors.ErrMissingComment
	}

	now := e.now().UTC()
	next := current
	comment := strings.TrimSpace(cmd.Comment)

	switch cmd.Role {
	case rolegate.RoleDirector:
		next.DirectorStatus = cmd.Target
		next.DirectorActionAt = &now
		if comment != "" {
			next.DirectorComments = comment
		}
	case rolegate.RoleHR:
		target := cmd.Target
		if target == StatusHRApprove {
			target = StatusApprove
		}
		next.HRStatus = target
		next.HRActionAt = &now
		if comment != "" {
			next.HRComments = comment
		}
	}

	next.Status = Derive(current.Status, next.DirectorStatus, next.HRStatus)
	next.UpdatedAt = now

	out := Outcome{Snapshot: next, Previous: current.Status}
	if cmd.Target == StatusRaiseQuery {
		out.Query = &QueryRecord{
			RequisitionID: snap.ID,
			QueryName:     queryText,
			CreatedBy:     actor.EmpID,
			CreatedDate:   now.Format("2006-01-02"),
			CreatedTime:   now.Format("15:04:05"),
			IsDelete:      QueryActive,
			CreatedAt:     now,
		}
	}

	return out, nil
}

// normalize treats an unset sub-status as Pending and rejects values outside
// the vocabulary.
func normalize(snap Snapshot) (Snapshot, error) {
	if snap.DirectorStatus == "" {
		snap.DirectorStatus = StatusPending
	}
	if snap.HRStatus == "" {
		snap.HRStatus = StatusPending
	}
	if !snap.DirectorStatus.IsSubStatus() || !snap.HRStatus.IsSubStatus() || !snap.Status.Valid() {
		return Snapshot{}, workflowerrors.ErrUnknownStatus
	}
	return snap, nil
}
