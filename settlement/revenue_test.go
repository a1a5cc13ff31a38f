package settlement_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/warp/settlement-engine/calendar"
	"github.com/warp/settlement-engine/settlement"
)

// =============================================================================
// REVENUE-IN-VIEW PROJECTION
// =============================================================================

func TestRevenue_StreamStartingMidWindow(t *testing.T) {
	// GIVEN: a bootcamp stream starting one month into a 24-month window
	// THEN:  only the active portion accrues, at annual/365.25 per day

	in := baseInput()
	in.ProjectionStart = date(2026, time.January, 1)
	in.ProjectionMonths = 24
	in.Bootcamp = settlement.EngagementStream{
		Name:    "Bootcamps",
		Start:   date(2026, time.February, 1),
		PerYear: dec(4),
		Amount:  dec(7000), // implied 28000/yr
	}

	result := settlement.Calculate(in)

	activeDays := calendar.DaysInclusive(date(2026, time.February, 1), date(2028, time.January, 1))
	assert.Equal(t, 700, activeDays)
	assertAmount(t, 28000.0/365.25*float64(activeDays), result.Projection.Revenue.Components[0].Amount)
}

func TestRevenue_StreamStartingBeforeWindow_CountsFromWindowStart(t *testing.T) {
	in := baseInput()
	in.ProjectionStart = date(2026, time.January, 1)
	in.ProjectionMonths = 24
	in.Coaching = settlement.EngagementStream{
		Name:    "1:1 sessions",
		Start:   date(2025, time.June, 1),
		PerYear: dec(20),
		Amount:  dec(900), // implied 18000/yr
	}

	result := settlement.Calculate(in)

	fullWindowDays := calendar.DaysInclusive(date(2026, time.January, 1), date(2028, time.January, 1))
	assertAmount(t, 18000.0/365.25*float64(fullWindowDays), result.Projection.Revenue.Components[1].Amount,
		"pre-window start accrues over the full window")
}

func TestRevenue_StreamStartingAfterWindowEnd_IsZero(t *testing.T) {
	in := baseInput()
	in.ProjectionStart = date(2026, time.January, 1)
	in.ProjectionMonths = 24
	in.Bootcamp.Start = date(2028, time.February, 1)

	result := settlement.Calculate(in)

	assert.True(t, result.Projection.Revenue.Components[0].Amount.IsZero())
}

func TestRevenue_UnsetStreamStart_IsZero(t *testing.T) {
	in := baseInput()
	in.Bootcamp.Start = calendar.Date{}

	result := settlement.Calculate(in)

	assert.True(t, result.Projection.Revenue.Components[0].Amount.IsZero())
}

func TestRevenue_ZeroProjectionMonths_AllStreamsZero(t *testing.T) {
	in := baseInput()
	in.ProjectionMonths = 0

	result := settlement.Calculate(in)

	assert.True(t, result.Projection.Revenue.CompanyTotal.IsZero())
	for _, c := range result.Projection.Revenue.Components {
		assert.True(t, c.Amount.IsZero(), c.Label)
	}
}

func TestRevenue_SubscriptionImpliedAnnual(t *testing.T) {
	// 5 clients x 300/month implies 18000/year.
	s := settlement.SubscriptionStream{
		Name:          "Analysis subscriptions",
		Start:         date(2026, time.March, 1),
		Clients:       dec(5),
		MonthlyAmount: dec(300),
	}

	assert.True(t, s.AnnualRevenue().Equal(decimal.NewFromInt(18000)))
}

func TestRevenue_EngagementImpliedAnnual(t *testing.T) {
	s := settlement.EngagementStream{
		Name:    "Bootcamps",
		Start:   date(2026, time.February, 1),
		PerYear: dec(4),
		Amount:  dec(7000),
	}

	assert.True(t, s.AnnualRevenue().Equal(decimal.NewFromInt(28000)))
}

func TestRevenue_CompanyTotalIsSumOfStreams(t *testing.T) {
	in := baseInput()

	result := settlement.Calculate(in)

	sum := decimal.Zero
	for _, c := range result.Projection.Revenue.Components {
		sum = sum.Add(c.Amount)
	}
	assert.True(t, sum.Equal(result.Projection.Revenue.CompanyTotal))
}

func TestRevenue_StreamLabelsDescribeConfiguration(t *testing.T) {
	in := baseInput()
	result := settlement.Calculate(in)

	assert.Equal(t, "Bootcamps (4/yr from 01 Feb 2026)", result.Projection.Revenue.Components[0].Label)
	assert.Equal(t, "Analysis subscriptions (5 clients x 300/mo from 01 Mar 2026)",
		result.Projection.Revenue.Components[2].Label)
}
