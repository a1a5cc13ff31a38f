/*
input.go - Typed calculation input and documented defaults

PURPOSE:
  Defines the strongly-typed input record consumed by the settlement
  calculator. The boundary layers (factory, api) coerce raw string values
  into this record; the calculator itself never sees unparsed data.

DESIGN:
  Every field has a documented default, applied by DefaultInput(). Callers
  that receive partial or malformed input overlay what parsed successfully
  on top of the defaults ("parse or fall back") rather than erroring.

  Revenue streams are modeled behind the RevenueSource interface so that
  per-engagement streams (bootcamps, coaching) and subscription streams
  (clients x monthly fee) share one accrual rule.

SEE ALSO:
  - calculator.go: The accrual formulas consuming this record
  - factory/input.go: String-keyed form values -> Input
*/
package settlement

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/settlement-engine/calendar"
)

// =============================================================================
// INPUT - One settlement calculation request
// =============================================================================

// Input holds every figure and date the calculator needs. It is built once
// per calculation and never mutated.
type Input struct {
	// SharePercent is the stakeholder's ownership share, 0-100. It is
	// applied as a fraction to every company-level total.
	SharePercent decimal.Decimal

	// Past period bounds: costs accrue from CalcStart through JoinDate,
	// both days included.
	CalcStart calendar.Date
	JoinDate  calendar.Date

	// DirectorStart is when director time begins accruing. It may fall
	// after CalcStart; accrual starts at the later of the two.
	DirectorStart calendar.Date

	// Projection window: ProjectionMonths calendar months starting at
	// ProjectionStart.
	ProjectionStart  calendar.Date
	ProjectionMonths int

	// Flat past contributions and asset valuations, not time-prorated.
	PastCashTotal decimal.Decimal
	PortalValue   decimal.Decimal
	FinanceValue  decimal.Decimal
	WebsiteValue  decimal.Decimal

	// MonthlyOps is the recurring operating cost. The past period prorates
	// it per day, the projection period takes it straight per month.
	MonthlyOps decimal.Decimal

	// LegalFee is a one-time fee attributed to whichever period contains
	// LegalFeeDate, or to neither.
	LegalFee     decimal.Decimal
	LegalFeeDate calendar.Date

	// DirectorSalaryYear is the annualized director compensation.
	DirectorSalaryYear decimal.Decimal

	// The three projected revenue streams (revenue-in-view).
	Bootcamp     EngagementStream
	Coaching     EngagementStream
	Subscription SubscriptionStream
}

// shareFraction converts the 0-100 percentage to a multiplier.
func (in Input) shareFraction() decimal.Decimal {
	return in.SharePercent.Div(decimal.NewFromInt(100))
}

// revenueSources returns the streams in display order.
func (in Input) revenueSources() []RevenueSource {
	return []RevenueSource{in.Bootcamp, in.Coaching, in.Subscription}
}

// =============================================================================
// REVENUE STREAMS
// =============================================================================

// RevenueSource is a recurring revenue stream whose future contribution is
// projected over the projection window. Implementations derive an implied
// annual revenue; the calculator turns that into a daily rate.
type RevenueSource interface {
	// Label describes the stream for the labeled breakdown.
	Label() string

	// StreamStart is the date the stream becomes active. A zero date means
	// the stream is not configured and contributes nothing.
	StreamStart() calendar.Date

	// AnnualRevenue is the implied revenue per year once active.
	AnnualRevenue() decimal.Decimal
}

// EngagementStream earns a fixed amount per engagement, a fixed number of
// times per year (e.g. 4 bootcamps/year at 7000 each).
type EngagementStream struct {
	Name    string
	Start   calendar.Date
	PerYear decimal.Decimal
	Amount  decimal.Decimal
}

func (s EngagementStream) Label() string {
	return fmt.Sprintf("%s (%s/yr from %s)", s.Name, s.PerYear.StringFixed(0), displayDate(s.Start))
}

func (s EngagementStream) StreamStart() calendar.Date { return s.Start }

func (s EngagementStream) AnnualRevenue() decimal.Decimal {
	return s.PerYear.Mul(s.Amount)
}

// SubscriptionStream earns a monthly fee per client (e.g. 5 clients at
// 300/month).
type SubscriptionStream struct {
	Name          string
	Start         calendar.Date
	Clients       decimal.Decimal
	MonthlyAmount decimal.Decimal
}

func (s SubscriptionStream) Label() string {
	return fmt.Sprintf("%s (%s clients x %s/mo from %s)",
		s.Name, s.Clients.StringFixed(0), s.MonthlyAmount.StringFixed(0), displayDate(s.Start))
}

func (s SubscriptionStream) StreamStart() calendar.Date { return s.Start }

func (s SubscriptionStream) AnnualRevenue() decimal.Decimal {
	return s.Clients.Mul(s.MonthlyAmount).Mul(decimal.NewFromInt(12))
}

func displayDate(d calendar.Date) string {
	if d.IsZero() {
		return "unset"
	}
	return d.Time.Format("02 Jan 2006")
}

// =============================================================================
// DEFAULTS
// =============================================================================

// DefaultInput returns the documented default for every field. Boundary
// layers overlay parsed values on top of this record.
func DefaultInput() Input {
	projectionStart := calendar.NewDate(2026, time.January, 1)

	return Input{
		SharePercent: decimal.NewFromInt(40),

		CalcStart:     calendar.NewDate(2024, time.September, 1),
		JoinDate:      calendar.Today(),
		DirectorStart: calendar.NewDate(2025, time.January, 1),

		ProjectionStart:  projectionStart,
		ProjectionMonths: 24,

		PastCashTotal: decimal.NewFromInt(4000),
		PortalValue:   decimal.NewFromInt(6000),
		FinanceValue:  decimal.NewFromInt(5000),
		WebsiteValue:  decimal.NewFromInt(2000),

		MonthlyOps:   decimal.NewFromInt(500),
		LegalFee:     decimal.NewFromInt(2500),
		LegalFeeDate: calendar.NewDate(2026, time.January, 15),

		DirectorSalaryYear: decimal.NewFromInt(56000),

		Bootcamp: EngagementStream{
			Name:    "Bootcamps",
			Start:   calendar.NewDate(2026, time.February, 1),
			PerYear: decimal.NewFromInt(4),
			Amount:  decimal.NewFromInt(7000),
		},
		Coaching: EngagementStream{
			Name:    "1:1 sessions",
			Start:   calendar.NewDate(2026, time.January, 15),
			PerYear: decimal.NewFromInt(20),
			Amount:  decimal.NewFromInt(900),
		},
		Subscription: SubscriptionStream{
			Name:          "Analysis subscriptions",
			Start:         calendar.NewDate(2026, time.March, 1),
			Clients:       decimal.NewFromInt(5),
			MonthlyAmount: decimal.NewFromInt(300),
		},
	}
}
