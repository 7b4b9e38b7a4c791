package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"loan-predictor/internal/api/handler/dto"
	"loan-predictor/internal/config"
	"loan-predictor/internal/domain/decision"
	"loan-predictor/internal/domain/eligibility"
	"loan-predictor/internal/infrastructure/model"
	"loan-predictor/internal/presentation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	classifier, err := model.Load("../../models/loan_approval_model.json", logger)
	require.NoError(t, err)
	charts, err := presentation.NewChartRenderer(config.ChartConfig{Width: 320, Height: 200}, logger)
	require.NoError(t, err)
	pages, err := presentation.NewPages()
	require.NoError(t, err)

	deps := Dependencies{
		Decisions:    decision.NewDecisionService(eligibility.DefaultPolicy(), decision.NewEngine(classifier, logger), logger),
		Charts:       charts,
		Pages:        pages,
		ModelVersion: classifier.Version(),
	}
	cfg := &config.Config{
		Server:  config.ServerConfig{RateLimit: config.RateLimitConfig{Enabled: false}},
		Metrics: config.MetricsConfig{Path: "/metrics"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return SetupRouter(ctx, deps, cfg, logger)
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func postJSON(t *testing.T, router http.Handler, body string) dto.PredictionResponse {
	t.Helper()
	rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp dto.PredictionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRouterPredictions(t *testing.T) {
	router := newTestRouter(t)

	t.Run("low credit score is rejected before the model", func(t *testing.T) {
		resp := postJSON(t, router, `{"creditScore":550,"annualIncome":1000000,"loanAmount":500000}`)
		assert.Equal(t, "reject_low_credit", resp.Outcome)
		assert.Equal(t, "Credit score is too low", resp.Reason)
		assert.Nil(t, resp.Confidence)
		assert.Nil(t, resp.Financials)
	})

	t.Run("insufficient income is rejected before the model", func(t *testing.T) {
		resp := postJSON(t, router, `{"creditScore":700,"annualIncome":100000,"loanAmount":500000}`)
		assert.Equal(t, "reject_insufficient_income", resp.Outcome)
		assert.Equal(t, "Income is insufficient for requested loan", resp.Reason)
		assert.Nil(t, resp.Confidence)
	})

	t.Run("credit check takes precedence", func(t *testing.T) {
		resp := postJSON(t, router, `{"creditScore":550,"annualIncome":100000,"loanAmount":500000}`)
		assert.Equal(t, "reject_low_credit", resp.Outcome)
	})

	t.Run("passing the gate reaches the model", func(t *testing.T) {
		body := `{
			"dependents": 2, "education": "Graduate", "selfEmployed": "No",
			"annualIncome": 9600000, "loanAmount": 29900000, "loanTermMonths": 12,
			"creditScore": 778, "residentialAssets": 2400000, "commercialAssets": 17600000,
			"luxuryAssets": 22700000, "bankAssets": 8000000
		}`
		resp := postJSON(t, router, body)
		assert.Contains(t, []string{"model_approved", "model_rejected"}, resp.Outcome)
		require.NotNil(t, resp.Confidence)
		assert.GreaterOrEqual(t, *resp.Confidence, 0.5)
		assert.LessOrEqual(t, *resp.Confidence, 1.0)
		require.NotNil(t, resp.Financials)
		assert.Equal(t, "60700000.00", resp.Financials.TotalAssets)
		require.NotNil(t, resp.CreditInsight)
		assert.Equal(t, "low_risk", resp.CreditInsight.Band)

		chart := serve(router, httptest.NewRequest(http.MethodGet, resp.Financials.ChartURL, nil))
		assert.Equal(t, http.StatusOK, chart.Code)
		assert.Equal(t, "image/png", chart.Header().Get("Content-Type"))
	})

	t.Run("identical submissions give identical results", func(t *testing.T) {
		body := `{"creditScore":720,"annualIncome":5000000,"loanAmount":10000000,"loanTermMonths":10}`
		first := postJSON(t, router, body)
		second := postJSON(t, router, body)
		assert.Equal(t, first, second)
	})
}

func TestRouterPages(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Predict Loan Status")

	form := url.Values{
		presentation.FieldCreditScore:  {"550"},
		presentation.FieldAnnualIncome: {"1000000"},
		presentation.FieldLoanAmount:   {"500000"},
	}
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = serve(router, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Credit score is too low")
}

func TestRouterOperationalEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	postJSON(t, router, `{"creditScore":550}`)
	rec = serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	metrics, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `loan_predictor_outcomes_total{outcome="reject_low_credit"}`)
	assert.Contains(t, string(metrics), "loan_predictor_http_requests_total")

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/swagger", nil))
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/swagger/index.html", rec.Header().Get("Location"))

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/predictions")
}
