package handler

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"loan-predictor/internal/api/handler/dto"
	"loan-predictor/internal/domain/application"
	"loan-predictor/internal/domain/decision"
	"loan-predictor/internal/pkg/apperrors"
	"loan-predictor/internal/presentation"

	"github.com/shopspring/decimal"
)

const FinancialChartPath = "/api/v1/charts/financial-overview.png"

// ChartRenderer draws the financial overview chart.
type ChartRenderer interface {
	Render(f decision.FinancialOverview) ([]byte, error)
	RenderDataURI(f decision.FinancialOverview) (string, error)
}

type PredictionHandler struct {
	service decision.DecisionService
	charts  ChartRenderer
	pages   *presentation.Pages
	logger  *slog.Logger
}

func NewPredictionHandler(s decision.DecisionService, charts ChartRenderer, pages *presentation.Pages, l *slog.Logger) *PredictionHandler {
	if s == nil {
		panic("decision service cannot be nil")
	}
	if charts == nil || pages == nil {
		panic("presentation dependencies cannot be nil")
	}
	return &PredictionHandler{
		service: s,
		charts:  charts,
		pages:   pages,
		logger:  l.With("component", "PredictionHandler"),
	}
}

// ShowForm handles GET /
func (h *PredictionHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, presentation.Page{Form: presentation.NewForm(presentation.DefaultApplication())})
}

// SubmitForm handles POST /predict and renders the result next to the
// submitted form.
func (h *PredictionHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	app := collectApplication(r)

	assessment, err := h.service.Assess(r.Context(), app)
	if err != nil {
		status, _, message, _ := errorStatus(err)
		http.Error(w, message, status)
		return
	}

	view := presentation.NewResultView(assessment)
	page := presentation.Page{
		Form:   presentation.NewForm(assessment.Application),
		Result: &view,
	}
	if view.Financials != nil {
		uri, err := h.charts.RenderDataURI(*view.Financials)
		if err != nil {
			h.logger.ErrorContext(r.Context(), "Failed to render financial chart", "error", err)
		} else {
			page.ChartURI = template.URL(uri)
		}
	}
	h.renderPage(w, page)
}

func (h *PredictionHandler) renderPage(w http.ResponseWriter, page presentation.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.RenderIndex(w, page); err != nil {
		h.logger.Error("Failed to render page", "error", err)
	}
}

// Predict assesses a loan application.
//
// @Summary Assess a loan application
// @Description Applies the credit score and income policy rules and, when both pass, scores the application with the approval model. Rule rejections carry a reason and no confidence.
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body dto.PredictionRequest true "Applicant details"
// @Success 200 {object} dto.PredictionResponse "Assessment outcome"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 500 {object} dto.ErrorResponse "Model failure"
// @Router /api/v1/predictions [post]
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req dto.PredictionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, err)
		return
	}

	assessment, err := h.service.Assess(r.Context(), req.ToApplication())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewPredictionResponse(assessment, chartURL))
}

// FinancialChart renders the financial overview bar chart.
//
// @Summary Financial overview chart
// @Description Renders income, requested loan amount and total assets as a PNG bar chart.
// @Tags Charts
// @Produce png
// @Param income query string false "Annual income"
// @Param loanAmount query string false "Requested loan amount"
// @Param totalAssets query string false "Sum of all assets"
// @Success 200 {file} binary "PNG image"
// @Failure 400 {object} dto.ErrorResponse "Invalid amount"
// @Router /api/v1/charts/financial-overview.png [get]
func (h *PredictionHandler) FinancialChart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f decision.FinancialOverview
	for _, p := range []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"income", &f.Income},
		{"loanAmount", &f.LoanAmount},
		{"totalAssets", &f.TotalAssets},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			*p.dst = decimal.Zero
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			respondError(w, apperrors.NewValidationError(p.name, "must be a decimal amount"))
			return
		}
		*p.dst = application.BoundAmount(d)
	}

	png, err := h.charts.Render(f)
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInternalServer, err))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.DebugContext(r.Context(), "Failed to write chart response", "error", err)
	}
}

func chartURL(f decision.FinancialOverview) string {
	q := url.Values{}
	q.Set("income", f.Income.String())
	q.Set("loanAmount", f.LoanAmount.String())
	q.Set("totalAssets", f.TotalAssets.String())
	return FinancialChartPath + "?" + q.Encode()
}
