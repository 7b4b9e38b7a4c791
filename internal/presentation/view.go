// Package presentation turns an assessment into what the user sees: the
// verdict card, the financial overview chart and the credit score insight.
package presentation

import (
	"fmt"

	"loan-predictor/internal/domain/decision"
	"loan-predictor/internal/domain/eligibility"
)

type Level string

const (
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
)

type CreditComment struct {
	Level Level
	Text  string
}

func CreditCommentFor(band eligibility.CreditBand) CreditComment {
	switch band {
	case eligibility.BandHighRisk:
		return CreditComment{Level: LevelWarning, Text: "Low credit score — high risk"}
	case eligibility.BandModerateRisk:
		return CreditComment{Level: LevelInfo, Text: "Average credit score — moderate risk"}
	default:
		return CreditComment{Level: LevelSuccess, Text: "Excellent credit score — low risk"}
	}
}

type ResultView struct {
	Outcome    string
	Approved   bool
	Heading    string
	Reason     string
	Confidence string
	// Financials and Credit are nil when the rule gate stopped the pipeline.
	Financials *decision.FinancialOverview
	Credit     *CreditComment
}

const (
	headingApproved = "Loan Approved"
	headingRejected = "Loan Rejected"
)

func NewResultView(a *decision.Assessment) ResultView {
	view := ResultView{Outcome: a.Outcome.MetricLabel()}

	switch a.Outcome.Kind {
	case decision.OutcomeRejectLowCredit, decision.OutcomeRejectInsufficientIncome:
		view.Heading = headingRejected
		view.Reason = a.Outcome.Reason()
	case decision.OutcomeModelDecision:
		d := a.Outcome.Decision
		view.Approved = d.Approved
		view.Heading = headingRejected
		if d.Approved {
			view.Heading = headingApproved
		}
		view.Confidence = FormatConfidence(d.Confidence)
		financials := a.Financials
		view.Financials = &financials
		comment := CreditCommentFor(a.CreditBand)
		view.Credit = &comment
	default:
		panic(fmt.Sprintf("presentation: unhandled outcome %s", a.Outcome.Kind))
	}
	return view
}

func FormatConfidence(c float64) string {
	return fmt.Sprintf("%.2f%%", c*100)
}
