/*
handlers.go - HTTP handlers for the settlement calculator

PURPOSE:
  Exposes the settlement engine over REST. Handlers own everything the
  engine deliberately does not: reading raw request data, string parsing
  (via the factory), and display formatting.

ENDPOINTS:
  POST /api/settlements          Compute a settlement from form or JSON
  GET  /api/settlements/defaults The default form values
  GET  /api/settlements/preview  Compute with pure defaults
  GET  /api/health               Liveness probe

INPUT HANDLING:
  The original tool is an HTML form, so the compute endpoint accepts both
  application/x-www-form-urlencoded bodies and a JSON object of
  string-valued fields. Either way the values go through the factory's
  parse-or-fall-back coercion; a completely empty body computes the
  defaults. Bad field values therefore never produce a 4xx - the engine
  has no failure modes and the boundary honors that.

SEE ALSO:
  - dto.go: Response shapes
  - factory/input.go: Field coercion and defaults
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/warp/settlement-engine/factory"
	"github.com/warp/settlement-engine/metrics"
	"github.com/warp/settlement-engine/settlement"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Factory *factory.InputFactory
}

// NewHandler creates a new handler.
func NewHandler() *Handler {
	return &Handler{Factory: factory.NewInputFactory()}
}

// =============================================================================
// SETTLEMENT HANDLERS
// =============================================================================

// ComputeSettlement computes a settlement from the request body.
func (h *Handler) ComputeSettlement(w http.ResponseWriter, r *http.Request) {
	params, source, err := readParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	input := h.Factory.FromParams(params)
	dto := compute(input, source)

	writeJSON(w, http.StatusOK, dto)
}

// GetDefaults returns the default form values, string-keyed the way the
// compute endpoint accepts them.
func (h *Handler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, defaultParams())
}

// PreviewSettlement computes with pure defaults, so a client can show
// numbers before the user has touched the form.
func (h *Handler) PreviewSettlement(w http.ResponseWriter, r *http.Request) {
	dto := compute(settlement.DefaultInput(), "defaults")
	writeJSON(w, http.StatusOK, dto)
}

// Health is a liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func compute(input settlement.Input, source string) SettlementDTO {
	start := time.Now()
	result := settlement.Calculate(input)
	metrics.CalculationDuration.Observe(time.Since(start).Seconds())
	metrics.Settlements.WithLabelValues(source).Inc()

	return toSettlementDTO(uuid.NewString(), result)
}

// =============================================================================
// REQUEST PARSING
// =============================================================================

// readParams extracts string-keyed field values from a form or JSON body.
// An empty body yields an empty map, which the factory turns into the
// defaults.
func readParams(r *http.Request) (map[string]string, string, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return nil, "", err
		}
		params := make(map[string]string, len(r.PostForm))
		for key := range r.PostForm {
			params[key] = r.PostForm.Get(key)
		}
		return params, "form", nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, "", err
	}
	if len(body) == 0 {
		return map[string]string{}, "defaults", nil
	}

	// Accept numbers as well as strings in the JSON object.
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, "", err
	}
	params := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			params[key] = v
		case float64:
			params[key] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return params, "json", nil
}

// defaultParams renders the documented defaults as form values.
func defaultParams() map[string]string {
	in := settlement.DefaultInput()

	return map[string]string{
		"share_pct":                in.SharePercent.String(),
		"calc_start":               in.CalcStart.String(),
		"join_date":                in.JoinDate.String(),
		"director_start":           in.DirectorStart.String(),
		"projection_start":         in.ProjectionStart.String(),
		"projection_months":        strconv.Itoa(in.ProjectionMonths),
		"past_cash_total":          in.PastCashTotal.String(),
		"portal_val":               in.PortalValue.String(),
		"finance_val":              in.FinanceValue.String(),
		"website_val":              in.WebsiteValue.String(),
		"monthly_ops":              in.MonthlyOps.String(),
		"legal_fee":                in.LegalFee.String(),
		"legal_fee_date":           in.LegalFeeDate.String(),
		"director_salary_year":     in.DirectorSalaryYear.String(),
		"riv_bootcamp_start":       in.Bootcamp.Start.String(),
		"riv_bootcamp_per_year":    in.Bootcamp.PerYear.String(),
		"riv_bootcamp_amount":      in.Bootcamp.Amount.String(),
		"riv_coaching_start":       in.Coaching.Start.String(),
		"riv_coaching_per_year":    in.Coaching.PerYear.String(),
		"riv_coaching_amount":      in.Coaching.Amount.String(),
		"riv_subscription_start":   in.Subscription.Start.String(),
		"riv_subscription_clients": in.Subscription.Clients.String(),
		"riv_subscription_monthly": in.Subscription.MonthlyAmount.String(),
	}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Code = err.Error()
	}
	writeJSON(w, status, resp)
}
