package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/settlement-engine/api"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestRouter() http.Handler {
	return api.NewRouter(api.NewHandler(), []string{"*"})
}

func decodeSettlement(t *testing.T, rec *httptest.ResponseRecorder) api.SettlementDTO {
	t.Helper()
	var dto api.SettlementDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	return dto
}

// =============================================================================
// COMPUTE ENDPOINT
// =============================================================================

func TestComputeSettlement_JSONBody(t *testing.T) {
	router := newTestRouter()

	body := `{
		"share_pct":            "50",
		"calc_start":           "2024-09-01",
		"join_date":            "2024-09-01",
		"projection_start":     "2026-01-01",
		"projection_months":    24,
		"monthly_ops":          500,
		"director_salary_year": "56000"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/settlements", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	dto := decodeSettlement(t, rec)

	assert.NotEmpty(t, dto.ID)
	assert.Equal(t, 1, dto.Past.Days)
	assert.Equal(t, "2028-01-01", dto.Projection.Window.End)
	assert.InDelta(t, 12000, dto.Projection.Components[0].Amount, 0.01)
	assert.InDelta(t, 112000, dto.Projection.Components[1].Amount, 0.01)
	assert.InDelta(t, dto.Projection.CompanyTotal*0.5, dto.Projection.StakeholderTotal, 0.01)
}

func TestComputeSettlement_FormBody(t *testing.T) {
	// The original tool is an HTML form; form-encoded bodies go through
	// the same coercion, decimal commas included.

	router := newTestRouter()

	form := url.Values{}
	form.Set("share_pct", "40")
	form.Set("join_date", "2025-08-31")
	form.Set("monthly_ops", "512,50")
	req := httptest.NewRequest(http.MethodPost, "/api/settlements", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	dto := decodeSettlement(t, rec)

	assert.InDelta(t, 512.50, dto.Inputs.MonthlyOps, 0.001)
	assert.Equal(t, "2025-08-31", dto.Inputs.JoinDate)
}

func TestComputeSettlement_EmptyBody_UsesDefaults(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/settlements", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	dto := decodeSettlement(t, rec)

	assert.Equal(t, 24, dto.Projection.Months)
	assert.InDelta(t, 40, dto.Inputs.SharePercent, 0.001)
}

func TestComputeSettlement_MalformedJSON_Rejected(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/settlements", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComputeSettlement_SummaryIsInternallyConsistent(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/settlements", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	dto := decodeSettlement(t, rec)

	s := dto.Summary
	assert.InDelta(t, s.DueAtJoin+s.ProjectedCosts, s.TotalCosts, 0.01)
	assert.InDelta(t, s.TotalCosts-s.RevenueShare, s.NetAfterRevenue, 0.01)
	assert.InDelta(t, dto.Past.StakeholderTotal, s.DueAtJoin, 0.01)
	assert.InDelta(t, dto.Projection.Revenue.StakeholderTotal, s.RevenueShare, 0.01)
}

// =============================================================================
// DEFAULTS AND PREVIEW
// =============================================================================

func TestGetDefaults_ReturnsFormValues(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/settlements/defaults", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var params map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &params))

	assert.Equal(t, "40", params["share_pct"])
	assert.Equal(t, "2024-09-01", params["calc_start"])
	assert.Equal(t, "24", params["projection_months"])
	assert.Equal(t, "2026-02-01", params["riv_bootcamp_start"])
}

func TestPreviewSettlement_MatchesEmptyPost(t *testing.T) {
	router := newTestRouter()

	previewReq := httptest.NewRequest(http.MethodGet, "/api/settlements/preview", nil)
	previewRec := httptest.NewRecorder()
	router.ServeHTTP(previewRec, previewReq)
	require.Equal(t, http.StatusOK, previewRec.Code)
	preview := decodeSettlement(t, previewRec)

	postReq := httptest.NewRequest(http.MethodPost, "/api/settlements", nil)
	postRec := httptest.NewRecorder()
	router.ServeHTTP(postRec, postReq)
	posted := decodeSettlement(t, postRec)

	// IDs differ per calculation; the numbers must not.
	assert.Equal(t, preview.Summary.NetAfterRevenue, posted.Summary.NetAfterRevenue)
	assert.Equal(t, preview.Projection.Window, posted.Projection.Window)
}

func TestHealth(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

// =============================================================================
// EUR FORMATTING
// =============================================================================

func TestFormatEUR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "€0,00"},
		{"16.4271", "€16,43"},
		{"1234.5", "€1.234,50"},
		{"1234567.891", "€1.234.567,89"},
		{"-2500", "-€2.500,00"},
	}

	for _, tc := range cases {
		got := api.FormatEUR(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, tc.in)
	}
}
