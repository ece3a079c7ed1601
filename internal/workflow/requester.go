package workflow

import workflowerrors "go-mrf/internal/workflow/errors"

// Initial returns the status a new requisition starts in.
func Initial(asDraft bool) Snapshot {
	status := StatusPending
	if asDraft {
		status = StatusDraft
	}
	return Snapshot{
		Status:         status,
		DirectorStatus: StatusPending,
		HRStatus:       StatusPending,
	}
}

// Submit moves a Draft into the approval chain.
func Submit(snap Snapshot) (Snapshot, error) {
	current, err := normalize(snap)
	if err != nil {
		return Snapshot{}, err
	}
	if current.Status.IsTerminal() {
		return Snapshot{}, workflowerrors.ErrAlreadyTerminal
	}
	if current.Status != StatusDraft {
		return Snapshot{}, workflowerrors.ErrInvalidTransition
	}
	current.Status = Derive(StatusPending, current.DirectorStatus, current.HRStatus)
	return current, nil
}

// Withdraw is the requester's logical delete. It is refused once either
// approver has approved.
func Withdraw(snap Snapshot) (Snapshot, error) {
	current, err := normalize(snap)
	if err != nil {
		return Snapshot{}, err
	}
	if current.Status.IsTerminal() {
		return Snapshot{}, workflowerrors.ErrAlreadyTerminal
	}
	if current.DirectorStatus == StatusApprove || current.HRStatus == StatusApprove {
		return Snapshot{}, workflowerrors.ErrInvalidTransition
	}
	current.Status = Derive(StatusWithdraw, current.DirectorStatus, current.HRStatus)
	return current, nil
}

// Editable reports whether the requester may still change narrative fields.
func Editable(s Status) bool {
	return s == StatusDraft || s == StatusRaiseQuery
}
