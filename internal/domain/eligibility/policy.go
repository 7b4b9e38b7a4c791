package eligibility

import (
	"fmt"

	"loan-predictor/internal/config"
	"loan-predictor/internal/domain/application"
	"loan-predictor/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
)

const (
	DefaultMinCreditScore     = 600
	DefaultLowRiskCreditScore = 750
)

var DefaultIncomeToLoanRatio = decimal.RequireFromString("0.3")

type GateResult int

const (
	Pass GateResult = iota
	RejectLowCredit
	RejectInsufficientIncome
)

func (g GateResult) String() string {
	switch g {
	case Pass:
		return "pass"
	case RejectLowCredit:
		return "reject_low_credit"
	case RejectInsufficientIncome:
		return "reject_insufficient_income"
	default:
		return fmt.Sprintf("gate_result(%d)", int(g))
	}
}

// Reason is the user-facing explanation for a gate rejection. Pass has none.
func (g GateResult) Reason() string {
	switch g {
	case RejectLowCredit:
		return "Credit score is too low"
	case RejectInsufficientIncome:
		return "Income is insufficient for requested loan"
	default:
		return ""
	}
}

// Policy holds the hard underwriting cutoffs applied before the model is
// consulted. The zero value is not usable; build one with NewPolicy or
// DefaultPolicy.
type Policy struct {
	MinCreditScore     int
	LowRiskCreditScore int
	IncomeToLoanRatio  decimal.Decimal
}

func DefaultPolicy() Policy {
	return Policy{
		MinCreditScore:     DefaultMinCreditScore,
		LowRiskCreditScore: DefaultLowRiskCreditScore,
		IncomeToLoanRatio:  DefaultIncomeToLoanRatio,
	}
}

func NewPolicy(cfg config.PolicyConfig) (Policy, error) {
	p := DefaultPolicy()
	if cfg.MinCreditScore != 0 {
		p.MinCreditScore = cfg.MinCreditScore
	}
	if cfg.LowRiskCreditScore != 0 {
		p.LowRiskCreditScore = cfg.LowRiskCreditScore
	}
	if cfg.IncomeToLoanRatio != "" {
		ratio, err := decimal.NewFromString(cfg.IncomeToLoanRatio)
		if err != nil {
			return Policy{}, apperrors.NewValidationError("policy.incomeToLoanRatio", err.Error())
		}
		p.IncomeToLoanRatio = ratio
	}

	if p.IncomeToLoanRatio.IsNegative() {
		return Policy{}, apperrors.NewValidationError("policy.incomeToLoanRatio", "must not be negative")
	}
	if p.LowRiskCreditScore < p.MinCreditScore {
		return Policy{}, apperrors.NewValidationError("policy.lowRiskCreditScore",
			fmt.Sprintf("must be >= minCreditScore (%d)", p.MinCreditScore))
	}
	return p, nil
}

// Evaluate applies the rules in fixed order; the first match wins.
func (p Policy) Evaluate(app application.Application) GateResult {
	if app.CreditScore < p.MinCreditScore {
		return RejectLowCredit
	}
	if app.AnnualIncome.LessThan(app.LoanAmount.Mul(p.IncomeToLoanRatio)) {
		return RejectInsufficientIncome
	}
	return Pass
}
