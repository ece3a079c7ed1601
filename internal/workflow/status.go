// Package workflow holds the requisition status vocabulary, the derivation
// of the overall status from the director and HR sub-statuses, and the
// transition engine.
package workflow

import workflowerrors "go-mrf/internal/workflow/errors"

type Status string

const (
	StatusPending    Status = "Pending"
	StatusApprove    Status = "Approve"
	StatusReject     Status = "Reject"
	StatusOnHold     Status = "On Hold"
	StatusRaiseQuery Status = "Raise Query"
	StatusHRApprove  Status = "HR Approve"
	StatusDraft      Status = "Draft"
	StatusWithdraw   Status = "Withdraw"
)

// All lists the vocabulary in display order.
var All = []Status{
	StatusPending,
	StatusApprove,
	StatusHRApprove,
	StatusReject,
	StatusOnHold,
	StatusRaiseQuery,
	StatusDraft,
	StatusWithdraw,
}

// SubStatuses are the values director_status and hr_status may hold.
var SubStatuses = []Status{
	StatusPending,
	StatusApprove,
	StatusReject,
	StatusOnHold,
	StatusRaiseQuery,
}

// ParseStatus matches the exact, case-sensitive literal.
func ParseStatus(v string) (Status, error) {
	for _, s := range All {
		if string(s) == v {
			return s, nil
		}
	}
	return "", workflowerrors.ErrUnknownStatus
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

func (s Status) IsSubStatus() bool {
	for _, sub := range SubStatuses {
		if s == sub {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further approver transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusReject || s == StatusWithdraw || s == StatusHRApprove
}

func (s Status) String() string {
	return string(s)
}

// Derive computes the overall status from the sub-statuses. current only
// matters when the requester holds the requisition in Draft or Withdraw and
// neither approver has approved yet.
func Derive(current, director, hr Status) Status {
	if (current == StatusDraft || current == StatusWithdraw) &&
		director != StatusApprove && hr != StatusApprove {
		return current
	}

	switch {
	case director == StatusRaiseQuery || hr == StatusRaiseQuery:
		return StatusRaiseQuery
	case director == StatusOnHold || hr == StatusOnHold:
		return StatusOnHold
	case director == StatusReject || hr == StatusReject:
		return StatusReject
	case director == StatusApprove && hr == StatusApprove:
		return StatusHRApprove
	case director == StatusApprove && hr == StatusPending:
		return StatusApprove
	default:
		return StatusPending
	}
}
