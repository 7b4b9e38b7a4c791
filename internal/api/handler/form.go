package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"loan-predictor/internal/domain/application"
	"loan-predictor/internal/presentation"

	"github.com/shopspring/decimal"
)

// collectApplication reads the applicant form. It never fails: missing or
// unparsable numbers become zero and the decision service clamps the rest.
func collectApplication(r *http.Request) application.Application {
	_ = r.ParseForm()
	get := func(name string) string {
		return strings.TrimSpace(r.PostFormValue(name))
	}

	creditScore := application.DefaultCreditScore
	if raw := get(presentation.FieldCreditScore); raw != "" {
		creditScore = parseInt(raw, application.MinCreditScore)
	}

	return application.Application{
		Dependents:        parseInt(get(presentation.FieldDependents), 0),
		Education:         application.ParseEducation(get(presentation.FieldEducation)),
		SelfEmployed:      application.ParseSelfEmployment(get(presentation.FieldSelfEmployed)),
		AnnualIncome:      parseAmount(get(presentation.FieldAnnualIncome)),
		LoanAmount:        parseAmount(get(presentation.FieldLoanAmount)),
		LoanTermMonths:    parseInt(get(presentation.FieldLoanTerm), 0),
		CreditScore:       creditScore,
		ResidentialAssets: parseAmount(get(presentation.FieldResidentialAssets)),
		CommercialAssets:  parseAmount(get(presentation.FieldCommercialAssets)),
		LuxuryAssets:      parseAmount(get(presentation.FieldLuxuryAssets)),
		BankAssets:        parseAmount(get(presentation.FieldBankAssets)),
	}
}

// parseInt saturates at the int32 range so out-of-range input clamps toward
// the right end instead of wrapping.
func parseInt(raw string, fallback int) int {
	if n, err := strconv.ParseInt(raw, 10, 32); err == nil {
		return int(n)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fallback
	}
	n := min(application.BoundAmount(d.Abs()).IntPart(), math.MaxInt32)
	if d.Sign() < 0 {
		n = -n
	}
	return int(n)
}

func parseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return application.BoundAmount(d)
}
