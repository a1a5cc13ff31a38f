/*
Package settlement computes the financial settlement between a company and
a minority stakeholder holding a fixed share percentage.

PURPOSE:
  The calculation covers two windows: a retrospective "past" period bounded
  by the calculation start and the stakeholder's join date, and a
  forward-looking projection of a configurable number of calendar months.
  Recurring revenue streams active during the projection window are
  projected as well, and the summary reports the stakeholder's net position
  after their share of projected revenue offsets their share of costs.

ACCRUAL RULES:
  Past period:
    - cash contributions and asset valuations are flat, never prorated
    - operating cost accrues per day at monthly * 12 / 365.25
    - director time accrues per day at salary / 365.25, from the later of
      the director start and the calculation start
    - the legal fee counts only if its date falls on or before the join date

  Projection period:
    - operating cost is straight-line monthly * months
    - director cost is salary * months / 12
    - the legal fee counts only if its date falls inside the window
    - revenue streams accrue per day at annual / 365.25 over the portion of
      the window they are active in

  The 365.25 divisor is a fixed convention for deriving daily rates from
  annual figures, not true calendar-day counting.

DESIGN PRINCIPLES:
  1. Purity: Calculate is a pure function of its Input; no I/O, no shared
     state, safe for any number of concurrent calls.
  2. Precision: decimal.Decimal throughout, no binary floating point.
  3. No failure modes: degenerate input (reversed ranges, zero months)
     degrades to zero contributions rather than errors.

SEE ALSO:
  - input.go: The typed input record and its defaults
  - result.go: The structured breakdown returned to callers
  - revenue.go: Revenue-stream accrual over the projection window
*/
package settlement

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/settlement-engine/calendar"
)

// daysPerYear is the fixed daily-rate convention: every per-day rate is an
// annual figure divided by 365.25.
var daysPerYear = decimal.RequireFromString("365.25")

var monthsPerYear = decimal.NewFromInt(12)

// Calculate runs the full settlement: past accrual, projection accrual,
// revenue projection, and the stakeholder summary. It never fails; see the
// package comment for how degenerate input degrades.
func Calculate(in Input) Result {
	share := in.shareFraction()

	past := pastBreakdown(in, share)
	projection := projectionBreakdown(in, share)

	totalCosts := past.StakeholderTotal.Add(projection.StakeholderTotal)

	return Result{
		Inputs:     in,
		Past:       past,
		Projection: projection,
		Summary: Summary{
			StakeholderDueAtJoin:       past.StakeholderTotal,
			StakeholderProjectedCosts:  projection.StakeholderTotal,
			StakeholderTotalCosts:      totalCosts,
			StakeholderRevenueShare:    projection.Revenue.StakeholderTotal,
			StakeholderNetAfterRevenue: totalCosts.Sub(projection.Revenue.StakeholderTotal),
		},
	}
}

// =============================================================================
// PAST-PERIOD ACCRUAL
// =============================================================================

func pastBreakdown(in Input, share decimal.Decimal) PastBreakdown {
	window := calendar.Period{Start: in.CalcStart, End: in.JoinDate}
	days := window.Days()

	perDayOps := in.MonthlyOps.Mul(monthsPerYear).Div(daysPerYear)
	opsCost := perDayOps.Mul(decimal.NewFromInt(int64(days)))

	// Director time accrues only once both the role and the accounting
	// window exist.
	directorFrom := calendar.MaxDate(in.DirectorStart, in.CalcStart)
	directorDays := calendar.DaysInclusive(directorFrom, in.JoinDate)
	perDayDirector := in.DirectorSalaryYear.Div(daysPerYear)
	directorCost := perDayDirector.Mul(decimal.NewFromInt(int64(directorDays)))

	legal := decimal.Zero
	if !in.LegalFeeDate.IsZero() && in.LegalFeeDate.BeforeOrEqual(in.JoinDate) {
		legal = in.LegalFee
	}

	assets := in.PortalValue.Add(in.FinanceValue).Add(in.WebsiteValue)

	components := []Component{
		{Label: "Past cash contributions", Amount: in.PastCashTotal},
		{Label: "Asset valuation (portal + finance + website)", Amount: assets},
		{Label: fmt.Sprintf("Operating costs (%s to %s)", displayDate(in.CalcStart), displayDate(in.JoinDate)), Amount: opsCost},
		{Label: fmt.Sprintf("Director time (%s to %s)", displayDate(directorFrom), displayDate(in.JoinDate)), Amount: directorCost},
		{Label: "Legal fee (on or before join date)", Amount: legal},
	}

	companyTotal := in.PastCashTotal.Add(assets).Add(opsCost).Add(directorCost).Add(legal)

	return PastBreakdown{
		Window:           window,
		Days:             days,
		Components:       components,
		CompanyTotal:     companyTotal,
		StakeholderTotal: companyTotal.Mul(share),
	}
}

// =============================================================================
// PROJECTION-PERIOD ACCRUAL
// =============================================================================

func projectionBreakdown(in Input, share decimal.Decimal) ProjectionBreakdown {
	window := calendar.Period{
		Start: in.ProjectionStart,
		End:   calendar.AddMonths(in.ProjectionStart, in.ProjectionMonths),
	}
	months := decimal.NewFromInt(int64(in.ProjectionMonths))

	// Straight-line per month here, unlike the past period's daily rate.
	opsCost := in.MonthlyOps.Mul(months)
	directorCost := in.DirectorSalaryYear.Mul(months).Div(monthsPerYear)

	legal := decimal.Zero
	if !in.LegalFeeDate.IsZero() && window.Contains(in.LegalFeeDate) {
		legal = in.LegalFee
	}

	components := []Component{
		{Label: fmt.Sprintf("Operating costs (%d months)", in.ProjectionMonths), Amount: opsCost},
		{Label: fmt.Sprintf("Director time (%d months)", in.ProjectionMonths), Amount: directorCost},
		{Label: "Legal fee within projection window", Amount: legal},
	}

	companyTotal := opsCost.Add(directorCost).Add(legal)
	stakeholderTotal := companyTotal.Mul(share)

	monthlyAverage := decimal.Zero
	if in.ProjectionMonths > 0 {
		monthlyAverage = stakeholderTotal.Div(months)
	}

	return ProjectionBreakdown{
		Window:                    window,
		Months:                    in.ProjectionMonths,
		Components:                components,
		CompanyTotal:              companyTotal,
		StakeholderTotal:          stakeholderTotal,
		StakeholderMonthlyAverage: monthlyAverage,
		Revenue:                   revenueBreakdown(in, window, share),
	}
}
