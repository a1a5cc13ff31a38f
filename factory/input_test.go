package factory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/warp/settlement-engine/calendar"
	"github.com/warp/settlement-engine/factory"
	"github.com/warp/settlement-engine/settlement"
)

// =============================================================================
// PARSE-OR-FALL-BACK BEHAVIOR
// =============================================================================

func TestFromParams_EmptyMap_YieldsDefaults(t *testing.T) {
	f := factory.NewInputFactory()

	got := f.FromParams(map[string]string{})
	want := settlement.DefaultInput()

	// JoinDate defaults to today on both sides; pin it for comparison.
	got.JoinDate = want.JoinDate
	assert.Equal(t, want, got)
}

func TestFromParams_DecimalCommaAccepted(t *testing.T) {
	f := factory.NewInputFactory()

	got := f.FromParams(map[string]string{"monthly_ops": "512,50"})

	assert.True(t, got.MonthlyOps.Equal(decimal.RequireFromString("512.50")))
}

func TestFromParams_WhitespaceTrimmed(t *testing.T) {
	f := factory.NewInputFactory()

	got := f.FromParams(map[string]string{"legal_fee": "  2750.25  "})

	assert.True(t, got.LegalFee.Equal(decimal.RequireFromString("2750.25")))
}

func TestFromParams_GarbageFallsBackToDefault(t *testing.T) {
	// GIVEN: a malformed amount, date, and months count
	// THEN:  each field keeps its documented default; no error surfaces

	f := factory.NewInputFactory()

	got := f.FromParams(map[string]string{
		"monthly_ops":       "five hundred",
		"projection_start":  "01/01/2026",
		"projection_months": "two dozen",
	})
	want := settlement.DefaultInput()

	assert.True(t, got.MonthlyOps.Equal(want.MonthlyOps))
	assert.Equal(t, want.ProjectionStart, got.ProjectionStart)
	assert.Equal(t, want.ProjectionMonths, got.ProjectionMonths)
}

func TestFromParams_DatesParsed(t *testing.T) {
	f := factory.NewInputFactory()

	got := f.FromParams(map[string]string{
		"calc_start": "2024-09-01",
		"join_date":  "2025-08-31",
	})

	assert.Equal(t, calendar.NewDate(2024, time.September, 1), got.CalcStart)
	assert.Equal(t, calendar.NewDate(2025, time.August, 31), got.JoinDate)
}

func TestFromParams_MonthsCoercedFromFloat(t *testing.T) {
	// The form sends months as a numeric field; fractional values truncate.
	f := factory.NewInputFactory()

	got := f.FromParams(map[string]string{"projection_months": "18.9"})

	assert.Equal(t, 18, got.ProjectionMonths)
}

func TestFromParams_RevenueStreamFields(t *testing.T) {
	f := factory.NewInputFactory()

	got := f.FromParams(map[string]string{
		"riv_bootcamp_start":       "2026-05-01",
		"riv_bootcamp_per_year":    "6",
		"riv_bootcamp_amount":      "6500",
		"riv_subscription_clients": "8",
	})

	assert.Equal(t, calendar.NewDate(2026, time.May, 1), got.Bootcamp.Start)
	assert.True(t, got.Bootcamp.AnnualRevenue().Equal(decimal.NewFromInt(39000)))
	assert.True(t, got.Subscription.Clients.Equal(decimal.NewFromInt(8)))
}

func TestFromParams_ParsedInputFlowsThroughCalculator(t *testing.T) {
	f := factory.NewInputFactory()

	in := f.FromParams(map[string]string{
		"share_pct":            "50",
		"calc_start":           "2024-09-01",
		"join_date":            "2024-09-01",
		"projection_start":     "2026-01-01",
		"projection_months":    "24",
		"monthly_ops":          "500",
		"director_salary_year": "56000",
	})

	result := settlement.Calculate(in)
	assert.Equal(t, 1, result.Past.Days)
	assert.Equal(t, calendar.NewDate(2028, time.January, 1), result.Projection.Window.End)
}
