/*
Package factory converts raw string-keyed form values into a typed
settlement.Input.

PURPOSE:
  The calculator consumes already-typed numbers and dates. This package is
  the boundary that gets them there: it trims whitespace, normalizes
  decimal commas to dots, parses ISO dates, and coerces the months count to
  an integer.

PARSE-OR-FALL-BACK:
  Malformed values never produce errors. Each field that fails to parse
  falls back to its documented default (settlement.DefaultInput), so a
  half-filled form still yields a complete calculation. This mirrors the
  calculator's own no-failure-mode contract.

FIELD KEYS:
  share_pct, calc_start, join_date, projection_start, projection_months,
  director_start, past_cash_total, portal_val, finance_val, website_val,
  monthly_ops, legal_fee, legal_fee_date, director_salary_year,
  riv_bootcamp_start, riv_bootcamp_per_year, riv_bootcamp_amount,
  riv_coaching_start, riv_coaching_per_year, riv_coaching_amount,
  riv_subscription_start, riv_subscription_clients, riv_subscription_monthly

USAGE:
  f := factory.NewInputFactory()
  input := f.FromParams(map[string]string{
      "share_pct":   "40",
      "monthly_ops": "512,50", // decimal comma accepted
  })
  result := settlement.Calculate(input)

SEE ALSO:
  - settlement/input.go: The typed record and its defaults
  - api/handlers.go: Feeds form and JSON bodies through this factory
*/
package factory

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/settlement-engine/calendar"
	"github.com/warp/settlement-engine/settlement"
)

// =============================================================================
// INPUT FACTORY
// =============================================================================

// InputFactory builds settlement inputs from raw form values.
type InputFactory struct{}

// NewInputFactory creates a new input factory.
func NewInputFactory() *InputFactory {
	return &InputFactory{}
}

// FromParams overlays the parseable values in params on top of the
// documented defaults. Missing, blank, or malformed fields keep their
// default.
func (f *InputFactory) FromParams(params map[string]string) settlement.Input {
	in := settlement.DefaultInput()

	in.SharePercent = parseAmount(params["share_pct"], in.SharePercent)

	in.CalcStart = parseDate(params["calc_start"], in.CalcStart)
	in.JoinDate = parseDate(params["join_date"], in.JoinDate)
	in.DirectorStart = parseDate(params["director_start"], in.DirectorStart)
	in.ProjectionStart = parseDate(params["projection_start"], in.ProjectionStart)
	in.ProjectionMonths = parseMonths(params["projection_months"], in.ProjectionMonths)

	in.PastCashTotal = parseAmount(params["past_cash_total"], in.PastCashTotal)
	in.PortalValue = parseAmount(params["portal_val"], in.PortalValue)
	in.FinanceValue = parseAmount(params["finance_val"], in.FinanceValue)
	in.WebsiteValue = parseAmount(params["website_val"], in.WebsiteValue)
	in.MonthlyOps = parseAmount(params["monthly_ops"], in.MonthlyOps)
	in.LegalFee = parseAmount(params["legal_fee"], in.LegalFee)
	in.LegalFeeDate = parseDate(params["legal_fee_date"], in.LegalFeeDate)
	in.DirectorSalaryYear = parseAmount(params["director_salary_year"], in.DirectorSalaryYear)

	// Revenue streams default their start to the projection start when the
	// field is absent, like everything else they keep the documented
	// default on a parse failure.
	in.Bootcamp.Start = parseDate(params["riv_bootcamp_start"], in.Bootcamp.Start)
	in.Bootcamp.PerYear = parseAmount(params["riv_bootcamp_per_year"], in.Bootcamp.PerYear)
	in.Bootcamp.Amount = parseAmount(params["riv_bootcamp_amount"], in.Bootcamp.Amount)

	in.Coaching.Start = parseDate(params["riv_coaching_start"], in.Coaching.Start)
	in.Coaching.PerYear = parseAmount(params["riv_coaching_per_year"], in.Coaching.PerYear)
	in.Coaching.Amount = parseAmount(params["riv_coaching_amount"], in.Coaching.Amount)

	in.Subscription.Start = parseDate(params["riv_subscription_start"], in.Subscription.Start)
	in.Subscription.Clients = parseAmount(params["riv_subscription_clients"], in.Subscription.Clients)
	in.Subscription.MonthlyAmount = parseAmount(params["riv_subscription_monthly"], in.Subscription.MonthlyAmount)

	return in
}

// =============================================================================
// PARSE HELPERS
// =============================================================================

// parseAmount parses a monetary or numeric field. Both "1234.56" and
// "1234,56" are accepted; surrounding whitespace is ignored.
func parseAmount(s string, fallback decimal.Decimal) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return fallback
	}
	return d
}

// parseDate parses an ISO YYYY-MM-DD field.
func parseDate(s string, fallback calendar.Date) calendar.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}

	d, err := calendar.Parse(s)
	if err != nil {
		return fallback
	}
	return d
}

// parseMonths coerces the projection length to a whole number of months.
// Fractional input is truncated toward zero, matching float-to-int
// coercion at the original form boundary.
func parseMonths(s string, fallback int) int {
	d := parseAmount(s, decimal.NewFromInt(int64(fallback)))
	return int(d.IntPart())
}
