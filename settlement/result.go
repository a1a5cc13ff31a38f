package settlement

import (
	"github.com/shopspring/decimal"
	"github.com/warp/settlement-engine/calendar"
)

// =============================================================================
// RESULT - Immutable structured breakdown of one calculation
// =============================================================================

// Component is one labeled line of a breakdown. Components are kept as an
// ordered slice rather than a map: the display order is part of the
// contract.
type Component struct {
	Label  string
	Amount decimal.Decimal
}

// PastBreakdown covers the retrospective window from calculation start to
// join date.
type PastBreakdown struct {
	Window           calendar.Period
	Days             int
	Components       []Component
	CompanyTotal     decimal.Decimal
	StakeholderTotal decimal.Decimal
}

// RevenueBreakdown covers the projected revenue streams (revenue-in-view)
// active during the projection window.
type RevenueBreakdown struct {
	Components       []Component
	CompanyTotal     decimal.Decimal
	StakeholderTotal decimal.Decimal
}

// ProjectionBreakdown covers the forward-looking window of N calendar
// months from the projection start.
type ProjectionBreakdown struct {
	Window     calendar.Period
	Months     int
	Components []Component

	CompanyTotal     decimal.Decimal
	StakeholderTotal decimal.Decimal

	// StakeholderMonthlyAverage is StakeholderTotal / Months, zero when
	// the window is empty.
	StakeholderMonthlyAverage decimal.Decimal

	Revenue RevenueBreakdown
}

// Summary is the stakeholder's net position.
type Summary struct {
	// StakeholderDueAtJoin is the past-period share owed at the join date.
	StakeholderDueAtJoin decimal.Decimal

	// StakeholderProjectedCosts is the share of projected costs over the
	// projection window.
	StakeholderProjectedCosts decimal.Decimal

	// StakeholderTotalCosts = due at join + projected costs.
	StakeholderTotalCosts decimal.Decimal

	// StakeholderRevenueShare is the share of projected revenue.
	StakeholderRevenueShare decimal.Decimal

	// StakeholderNetAfterRevenue is total costs less the revenue share:
	// what the stakeholder is owed once projected revenue offsets their
	// share of the costs.
	StakeholderNetAfterRevenue decimal.Decimal
}

// Result is the full output of one calculation. It echoes the normalized
// input so callers can render exactly what was computed.
type Result struct {
	Inputs     Input
	Past       PastBreakdown
	Projection ProjectionBreakdown
	Summary    Summary
}
