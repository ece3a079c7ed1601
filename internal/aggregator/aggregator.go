// Package aggregator derives dashboard and report figures from a snapshot of
// requisitions. Every function is pure and fail-soft: bad input degrades to
// zero counts, never to an error.
package aggregator

import (
	"go-mrf/internal/workflow"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type Item struct {
	ID        string          `json:"id"`
	CreatedBy string          `json:"created_by"`
	Status    workflow.Status `json:"status"`
}

type Manager struct {
	EmployeeID       string `json:"employee_id"`
	Name             string `json:"name"`
	ReportingManager string `json:"reporting_manager"`
}

type Counts map[workflow.Status]int

type ManagerSummary struct {
	EmployeeID       string `json:"employee_id"`
	Name             string `json:"name"`
	ReportingManager string `json:"reporting_manager"`
	Total            int    `json:"total"`
	Counts           Counts `json:"counts"`
}

type Slice struct {
	Status  workflow.Status `json:"status"`
	Count   int             `json:"count"`
	Color   string          `json:"color"`
	Percent float64         `json:"percent"`
}

type Summary struct {
	Total            int `json:"total"`
	Pending          int `json:"pending"`
	DirectorApproved int `json:"director_approved"`
	Approved         int `json:"approved"`
	Rejected         int `json:"rejected"`
	OnHold           int `json:"on_hold"`
	Queried          int `json:"queried"`
	Draft            int `json:"draft"`
	Withdrawn        int `json:"withdrawn"`
}

// managerStatuses is the per-manager breakdown. Draft, Withdraw and Raise
// Query count towards a manager's Total but get no bucket of their own.
var managerStatuses = []workflow.Status{
	workflow.StatusPending,
	workflow.StatusApprove,
	workflow.StatusHRApprove,
	workflow.StatusReject,
	workflow.StatusOnHold,
}

var breakdownOrder = []workflow.Status{
	workflow.StatusPending,
	workflow.StatusApprove,
	workflow.StatusHRApprove,
	workflow.StatusReject,
	workflow.StatusOnHold,
	workflow.StatusRaiseQuery,
}

var colors = map[workflow.Status]string{
	workflow.StatusPending:    "warning",
	workflow.StatusApprove:    "info",
	workflow.StatusHRApprove:  "success",
	workflow.StatusReject:     "error",
	workflow.StatusOnHold:     "secondary",
	workflow.StatusRaiseQuery: "primary",
	workflow.StatusDraft:      "default",
	workflow.StatusWithdraw:   "default",
}

func Color(s workflow.Status) string {
	if c, ok := colors[s]; ok {
		return c
	}
	return "default"
}

// CountByStatus counts exact status matches. Empty or unknown statuses are
// skipped, so the sum never exceeds len(items).
func CountByStatus(items []Item) Counts {
	counts := Counts{}
	for _, it := range items {
		if !it.Status.Valid() {
			continue
		}
		counts[it.Status]++
	}
	return counts
}

// CountByManager returns one summary per manager, in the order given.
func CountByManager(items []Item, managers []Manager) []ManagerSummary {
	byCreator := lo.GroupBy(items, func(it Item) string {
		return it.CreatedBy
	})

	return lo.Map(managers, func(m Manager, _ int) ManagerSummary {
		own := byCreator[m.EmployeeID]
		counts := make(Counts, len(managerStatuses))
		for _, s := range managerStatuses {
			counts[s] = 0
		}
		for _, it := range own {
			if _, tracked := counts[it.Status]; tracked {
				counts[it.Status]++
			}
		}
		return ManagerSummary{
			EmployeeID:       m.EmployeeID,
			Name:             m.Name,
			ReportingManager: m.ReportingManager,
			Total:            len(own),
			Counts:           counts,
		}
	})
}

// PendingBreakdown returns the non-zero statuses in display order with their
// share of the shown total. Shares are truncated to two decimals and are all
// zero when the total is zero.
func PendingBreakdown(counts Counts) []Slice {
	shown := lo.Filter(breakdownOrder, func(s workflow.Status, _ int) bool {
		return counts[s] > 0
	})

	sum := lo.SumBy(shown, func(s workflow.Status) int {
		return counts[s]
	})

	hundred := decimal.NewFromInt(100)
	return lo.Map(shown, func(s workflow.Status, _ int) Slice {
		pct := decimal.Zero
		if sum > 0 {
			pct = decimal.NewFromInt(int64(counts[s])).
				Div(decimal.NewFromInt(int64(sum))).
				Mul(hundred).
				Truncate(2)
		}
		return Slice{
			Status:  s,
			Count:   counts[s],
			Color:   Color(s),
			Percent: pct.InexactFloat64(),
		}
	})
}

func Totals(counts Counts) Summary {
	return Summary{
		Total: lo.SumBy(workflow.All, func(s workflow.Status) int {
			return counts[s]
		}),
		Pending:          counts[workflow.StatusPending],
		DirectorApproved: counts[workflow.StatusApprove],
		Approved:         counts[workflow.StatusHRApprove],
		Rejected:         counts[workflow.StatusReject],
		OnHold:           counts[workflow.StatusOnHold],
		Queried:          counts[workflow.StatusRaiseQuery],
		Draft:            counts[workflow.StatusDraft],
		Withdrawn:        counts[workflow.StatusWithdraw],
	}
}
