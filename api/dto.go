/*
dto.go - Data Transfer Objects for API responses

PURPOSE:
  Defines the JSON shapes returned to clients and the conversion from the
  engine's decimal-based Result. Amounts are exposed twice: as plain
  numbers for machine consumption and as EUR display strings for direct
  rendering, so no client has to re-implement locale formatting.

NAMING CONVENTION:
  - *DTO: Response types returned to clients

CURRENCY FORMATTING:
  EUR with thousands dots and a decimal comma (1234567.89 -> "1.234.567,89").
  This lives here, never in the settlement package: the engine's output is
  display-ready in numeric form only.

SEE ALSO:
  - handlers.go: Builds these from settlement.Result
  - settlement/result.go: The engine-side structure
*/
package api

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/settlement-engine/calendar"
	"github.com/warp/settlement-engine/settlement"
)

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ComponentDTO is one labeled breakdown line.
type ComponentDTO struct {
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

// WindowDTO is a closed date interval.
type WindowDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PastDTO is the retrospective breakdown.
type PastDTO struct {
	Window           WindowDTO      `json:"window"`
	Days             int            `json:"days"`
	Components       []ComponentDTO `json:"components"`
	CompanyTotal     float64        `json:"company_total"`
	StakeholderTotal float64        `json:"stakeholder_total"`
}

// RevenueDTO is the projected revenue sub-breakdown.
type RevenueDTO struct {
	Components       []ComponentDTO `json:"components"`
	CompanyTotal     float64        `json:"company_total"`
	StakeholderTotal float64        `json:"stakeholder_total"`
}

// ProjectionDTO is the forward-looking breakdown.
type ProjectionDTO struct {
	Window                    WindowDTO      `json:"window"`
	Months                    int            `json:"months"`
	Components                []ComponentDTO `json:"components"`
	CompanyTotal              float64        `json:"company_total"`
	StakeholderTotal          float64        `json:"stakeholder_total"`
	StakeholderMonthlyAverage float64        `json:"stakeholder_monthly_average"`
	Revenue                   RevenueDTO     `json:"revenue"`
}

// SummaryDTO is the stakeholder's net position, with display strings.
type SummaryDTO struct {
	DueAtJoin       float64 `json:"due_at_join"`
	ProjectedCosts  float64 `json:"projected_costs"`
	TotalCosts      float64 `json:"total_costs"`
	RevenueShare    float64 `json:"revenue_share"`
	NetAfterRevenue float64 `json:"net_after_revenue"`
	DueAtJoinEUR    string  `json:"due_at_join_eur"`
	TotalCostsEUR   string  `json:"total_costs_eur"`
	NetAfterRevEUR  string  `json:"net_after_revenue_eur"`
}

// InputsDTO echoes the normalized input the engine actually computed with.
type InputsDTO struct {
	SharePercent       float64       `json:"share_pct"`
	CalcStart          string        `json:"calc_start"`
	JoinDate           string        `json:"join_date"`
	DirectorStart      string        `json:"director_start"`
	ProjectionStart    string        `json:"projection_start"`
	ProjectionMonths   int           `json:"projection_months"`
	PastCashTotal      float64       `json:"past_cash_total"`
	PortalValue        float64       `json:"portal_val"`
	FinanceValue       float64       `json:"finance_val"`
	WebsiteValue       float64       `json:"website_val"`
	MonthlyOps         float64       `json:"monthly_ops"`
	LegalFee           float64       `json:"legal_fee"`
	LegalFeeDate       string        `json:"legal_fee_date"`
	DirectorSalaryYear float64       `json:"director_salary_year"`
	Revenue            RevenueInputs `json:"riv"`
}

// RevenueInputs echoes the revenue stream configuration.
type RevenueInputs struct {
	BootcampStart       string  `json:"bootcamp_start"`
	BootcampPerYear     float64 `json:"bootcamp_per_year"`
	BootcampAmount      float64 `json:"bootcamp_amount"`
	CoachingStart       string  `json:"coaching_start"`
	CoachingPerYear     float64 `json:"coaching_per_year"`
	CoachingAmount      float64 `json:"coaching_amount"`
	SubscriptionStart   string  `json:"subscription_start"`
	SubscriptionClients float64 `json:"subscription_clients"`
	SubscriptionMonthly float64 `json:"subscription_monthly"`
}

// SettlementDTO is the full calculation response.
type SettlementDTO struct {
	ID         string        `json:"id"`
	Inputs     InputsDTO     `json:"inputs"`
	Past       PastDTO       `json:"past"`
	Projection ProjectionDTO `json:"projection"`
	Summary    SummaryDTO    `json:"summary"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// =============================================================================
// CONVERSION
// =============================================================================

func toSettlementDTO(id string, result settlement.Result) SettlementDTO {
	in := result.Inputs

	return SettlementDTO{
		ID: id,
		Inputs: InputsDTO{
			SharePercent:       toFloat(in.SharePercent),
			CalcStart:          in.CalcStart.String(),
			JoinDate:           in.JoinDate.String(),
			DirectorStart:      in.DirectorStart.String(),
			ProjectionStart:    in.ProjectionStart.String(),
			ProjectionMonths:   in.ProjectionMonths,
			PastCashTotal:      toFloat(in.PastCashTotal),
			PortalValue:        toFloat(in.PortalValue),
			FinanceValue:       toFloat(in.FinanceValue),
			WebsiteValue:       toFloat(in.WebsiteValue),
			MonthlyOps:         toFloat(in.MonthlyOps),
			LegalFee:           toFloat(in.LegalFee),
			LegalFeeDate:       in.LegalFeeDate.String(),
			DirectorSalaryYear: toFloat(in.DirectorSalaryYear),
			Revenue: RevenueInputs{
				BootcampStart:       in.Bootcamp.Start.String(),
				BootcampPerYear:     toFloat(in.Bootcamp.PerYear),
				BootcampAmount:      toFloat(in.Bootcamp.Amount),
				CoachingStart:       in.Coaching.Start.String(),
				CoachingPerYear:     toFloat(in.Coaching.PerYear),
				CoachingAmount:      toFloat(in.Coaching.Amount),
				SubscriptionStart:   in.Subscription.Start.String(),
				SubscriptionClients: toFloat(in.Subscription.Clients),
				SubscriptionMonthly: toFloat(in.Subscription.MonthlyAmount),
			},
		},
		Past: PastDTO{
			Window:           toWindowDTO(result.Past.Window),
			Days:             result.Past.Days,
			Components:       toComponentDTOs(result.Past.Components),
			CompanyTotal:     toFloat(result.Past.CompanyTotal),
			StakeholderTotal: toFloat(result.Past.StakeholderTotal),
		},
		Projection: ProjectionDTO{
			Window:                    toWindowDTO(result.Projection.Window),
			Months:                    result.Projection.Months,
			Components:                toComponentDTOs(result.Projection.Components),
			CompanyTotal:              toFloat(result.Projection.CompanyTotal),
			StakeholderTotal:          toFloat(result.Projection.StakeholderTotal),
			StakeholderMonthlyAverage: toFloat(result.Projection.StakeholderMonthlyAverage),
			Revenue: RevenueDTO{
				Components:       toComponentDTOs(result.Projection.Revenue.Components),
				CompanyTotal:     toFloat(result.Projection.Revenue.CompanyTotal),
				StakeholderTotal: toFloat(result.Projection.Revenue.StakeholderTotal),
			},
		},
		Summary: SummaryDTO{
			DueAtJoin:       toFloat(result.Summary.StakeholderDueAtJoin),
			ProjectedCosts:  toFloat(result.Summary.StakeholderProjectedCosts),
			TotalCosts:      toFloat(result.Summary.StakeholderTotalCosts),
			RevenueShare:    toFloat(result.Summary.StakeholderRevenueShare),
			NetAfterRevenue: toFloat(result.Summary.StakeholderNetAfterRevenue),
			DueAtJoinEUR:    FormatEUR(result.Summary.StakeholderDueAtJoin),
			TotalCostsEUR:   FormatEUR(result.Summary.StakeholderTotalCosts),
			NetAfterRevEUR:  FormatEUR(result.Summary.StakeholderNetAfterRevenue),
		},
	}
}

func toWindowDTO(p calendar.Period) WindowDTO {
	return WindowDTO{Start: p.Start.String(), End: p.End.String()}
}

func toComponentDTOs(components []settlement.Component) []ComponentDTO {
	dtos := make([]ComponentDTO, len(components))
	for i, c := range components {
		dtos[i] = ComponentDTO{
			Label:   c.Label,
			Amount:  toFloat(c.Amount),
			Display: FormatEUR(c.Amount),
		}
	}
	return dtos
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// =============================================================================
// EUR FORMATTING
// =============================================================================

// FormatEUR renders an amount as euros with thousands dots and a decimal
// comma: 1234567.891 -> "€1.234.567,89".
func FormatEUR(d decimal.Decimal) string {
	s := d.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteRune('€')
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
