package dto

import (
	"strings"

	"loan-predictor/internal/domain/application"
	"loan-predictor/internal/domain/decision"
	"loan-predictor/internal/pkg/apperrors"
	"loan-predictor/internal/presentation"

	"github.com/shopspring/decimal"
)

// PredictionRequest mirrors the applicant form. Amounts accept JSON numbers or
// decimal strings. Omitted fields take the form defaults.
type PredictionRequest struct {
	Dependents        int             `json:"dependents"`
	Education         string          `json:"education" example:"Graduate"`
	SelfEmployed      string          `json:"selfEmployed" example:"No"`
	AnnualIncome      decimal.Decimal `json:"annualIncome" swaggertype:"string" example:"9600000"`
	LoanAmount        decimal.Decimal `json:"loanAmount" swaggertype:"string" example:"29900000"`
	LoanTermMonths    int             `json:"loanTermMonths" example:"12"`
	CreditScore       *int            `json:"creditScore,omitempty" example:"778"`
	ResidentialAssets decimal.Decimal `json:"residentialAssets" swaggertype:"string" example:"2400000"`
	CommercialAssets  decimal.Decimal `json:"commercialAssets" swaggertype:"string" example:"17600000"`
	LuxuryAssets      decimal.Decimal `json:"luxuryAssets" swaggertype:"string" example:"22700000"`
	BankAssets        decimal.Decimal `json:"bankAssets" swaggertype:"string" example:"8000000"`
}

func (r *PredictionRequest) Validate() error {
	switch strings.ToLower(strings.TrimSpace(r.Education)) {
	case "", "graduate", "not graduate":
	default:
		return apperrors.NewValidationError("education", "must be 'Graduate' or 'Not Graduate'")
	}
	switch strings.ToLower(strings.TrimSpace(r.SelfEmployed)) {
	case "", "yes", "no":
	default:
		return apperrors.NewValidationError("selfEmployed", "must be 'Yes' or 'No'")
	}
	return nil
}

// ToApplication bounds amounts before anything can do arithmetic on them; the
// decision service normalizes the rest.
func (r *PredictionRequest) ToApplication() application.Application {
	creditScore := application.DefaultCreditScore
	if r.CreditScore != nil {
		creditScore = *r.CreditScore
	}
	return application.Application{
		Dependents:        r.Dependents,
		Education:         application.ParseEducation(r.Education),
		SelfEmployed:      application.ParseSelfEmployment(r.SelfEmployed),
		AnnualIncome:      application.BoundAmount(r.AnnualIncome),
		LoanAmount:        application.BoundAmount(r.LoanAmount),
		LoanTermMonths:    r.LoanTermMonths,
		CreditScore:       creditScore,
		ResidentialAssets: application.BoundAmount(r.ResidentialAssets),
		CommercialAssets:  application.BoundAmount(r.CommercialAssets),
		LuxuryAssets:      application.BoundAmount(r.LuxuryAssets),
		BankAssets:        application.BoundAmount(r.BankAssets),
	}
}

type FinancialsResponse struct {
	Income      string `json:"income"`
	LoanAmount  string `json:"loanAmount"`
	TotalAssets string `json:"totalAssets"`
	ChartURL    string `json:"chartUrl"`
}

type CreditInsightResponse struct {
	Band    string `json:"band"`
	Level   string `json:"level"`
	Comment string `json:"comment"`
}

type PredictionResponse struct {
	Outcome       string                 `json:"outcome"`
	Approved      bool                   `json:"approved"`
	Heading       string                 `json:"heading"`
	Reason        string                 `json:"reason,omitempty"`
	Confidence    *float64               `json:"confidence,omitempty"`
	ConfidenceStr string                 `json:"confidencePercent,omitempty"`
	Financials    *FinancialsResponse    `json:"financials,omitempty"`
	CreditInsight *CreditInsightResponse `json:"creditInsight,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	ModelVersion string `json:"modelVersion,omitempty"`
}

func NewPredictionResponse(a *decision.Assessment, chartURL func(decision.FinancialOverview) string) PredictionResponse {
	view := presentation.NewResultView(a)
	resp := PredictionResponse{
		Outcome:       view.Outcome,
		Approved:      view.Approved,
		Heading:       view.Heading,
		Reason:        view.Reason,
		ConfidenceStr: view.Confidence,
	}

	if a.Outcome.Decision != nil {
		confidence := a.Outcome.Decision.Confidence
		resp.Confidence = &confidence
	}
	if view.Financials != nil {
		resp.Financials = &FinancialsResponse{
			Income:      view.Financials.Income.StringFixed(2),
			LoanAmount:  view.Financials.LoanAmount.StringFixed(2),
			TotalAssets: view.Financials.TotalAssets.StringFixed(2),
			ChartURL:    chartURL(*view.Financials),
		}
	}
	if view.Credit != nil {
		resp.CreditInsight = &CreditInsightResponse{
			Band:    string(a.CreditBand),
			Level:   string(view.Credit.Level),
			Comment: view.Credit.Text,
		}
	}
	return resp
}
