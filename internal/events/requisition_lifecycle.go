package events

import "time"

const RequisitionLifecycleTopic = "mrf.requisition.lifecycle.v1"

const (
	RequisitionCreated       = "requisition_created"
	RequisitionSubmitted     = "requisition_submitted"
	RequisitionWithdrawn     = "requisition_withdrawn"
	RequisitionStatusChanged = "requisition_status_changed"
)

type RequisitionStatusChangedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	RequisitionID  string    `json:"requisition_id"`
	CompanyID      string    `json:"company_id"`
	ActorID        string    `json:"actor_id"`
	FromStatus     string    `json:"from_status,omitempty"`
	ToStatus       string    `json:"to_status"`
	DirectorStatus string    `json:"director_status"`
	HRStatus       string    `json:"hr_status"`
	OccurredAt     time.Time `json:"occurred_at"`
}
