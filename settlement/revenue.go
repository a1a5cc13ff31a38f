package settlement

import (
	"github.com/shopspring/decimal"
	"github.com/warp/settlement-engine/calendar"
)

// =============================================================================
// REVENUE PROJECTION (revenue-in-view)
// =============================================================================

// revenueBreakdown projects each configured revenue stream over the
// projection window and attributes the stakeholder's share of the total.
func revenueBreakdown(in Input, window calendar.Period, share decimal.Decimal) RevenueBreakdown {
	companyTotal := decimal.Zero
	components := make([]Component, 0, 3)

	for _, src := range in.revenueSources() {
		amount := streamRevenue(src, window, in.ProjectionMonths)
		components = append(components, Component{Label: src.Label(), Amount: amount})
		companyTotal = companyTotal.Add(amount)
	}

	return RevenueBreakdown{
		Components:       components,
		CompanyTotal:     companyTotal,
		StakeholderTotal: companyTotal.Mul(share),
	}
}

// streamRevenue accrues one stream's daily rate over the part of the
// projection window the stream is active in. A stream starting before the
// window counts from the window start; one starting inside the window
// counts from its own start; one starting after the window ends counts
// zero.
func streamRevenue(src RevenueSource, window calendar.Period, projectionMonths int) decimal.Decimal {
	start := src.StreamStart()
	if start.IsZero() || projectionMonths <= 0 {
		return decimal.Zero
	}
	if start.After(window.End) {
		return decimal.Zero
	}

	activeStart := calendar.MaxDate(start, window.Start)
	activeDays := calendar.DaysInclusive(activeStart, window.End)
	if activeDays <= 0 {
		return decimal.Zero
	}

	daily := src.AnnualRevenue().Div(daysPerYear)
	return daily.Mul(decimal.NewFromInt(int64(activeDays)))
}
