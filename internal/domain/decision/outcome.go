package decision

import (
	"fmt"

	"loan-predictor/internal/domain/application"
	"loan-predictor/internal/domain/eligibility"

	"github.com/shopspring/decimal"
)

type OutcomeKind int

const (
	OutcomeRejectLowCredit OutcomeKind = iota + 1
	OutcomeRejectInsufficientIncome
	OutcomeModelDecision
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRejectLowCredit:
		return "reject_low_credit"
	case OutcomeRejectInsufficientIncome:
		return "reject_insufficient_income"
	case OutcomeModelDecision:
		return "model_decision"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the terminal result of the pipeline. Decision is set only when
// Kind is OutcomeModelDecision.
type Outcome struct {
	Kind     OutcomeKind
	Decision *Decision
}

func (o Outcome) Reason() string {
	switch o.Kind {
	case OutcomeRejectLowCredit:
		return eligibility.RejectLowCredit.Reason()
	case OutcomeRejectInsufficientIncome:
		return eligibility.RejectInsufficientIncome.Reason()
	default:
		return ""
	}
}

// MetricLabel splits model decisions into approved/rejected for counting.
func (o Outcome) MetricLabel() string {
	if o.Kind == OutcomeModelDecision && o.Decision != nil {
		if o.Decision.Approved {
			return "model_approved"
		}
		return "model_rejected"
	}
	return o.Kind.String()
}

func gateOutcome(g eligibility.GateResult) (Outcome, bool) {
	switch g {
	case eligibility.RejectLowCredit:
		return Outcome{Kind: OutcomeRejectLowCredit}, true
	case eligibility.RejectInsufficientIncome:
		return Outcome{Kind: OutcomeRejectInsufficientIncome}, true
	default:
		return Outcome{}, false
	}
}

type FinancialOverview struct {
	Income      decimal.Decimal
	LoanAmount  decimal.Decimal
	TotalAssets decimal.Decimal
}

// Assessment is everything the presentation layer needs for one submission.
// CreditBand is only meaningful for model decisions.
type Assessment struct {
	Application application.Application
	Outcome     Outcome
	Financials  FinancialOverview
	CreditBand  eligibility.CreditBand
}
