package dashboard

import "go-mrf/internal/aggregator"

type View string

const (
	ViewAdmin          View = "admin"
	ViewFunctionalHead View = "functional_head"
)

// Response carries either dashboard. Managers is only filled for the admin
// view. DataAvailable is false when the requisition snapshot could not be
// loaded and the figures are zero placeholders.
type Response struct {
	View          View                        `json:"view"`
	DataAvailable bool                        `json:"data_available"`
	Totals        aggregator.Summary          `json:"totals"`
	Breakdown     []aggregator.Slice          `json:"breakdown"`
	Managers      []aggregator.ManagerSummary `json:"managers,omitempty"`
}
