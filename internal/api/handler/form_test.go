package handler

import (
	"math"
	"net/url"
	"testing"
	"time"

	"loan-predictor/internal/domain/application"
	"loan-predictor/internal/domain/eligibility"
	"loan-predictor/internal/presentation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCollectApplication(t *testing.T) {
	t.Run("reads every field", func(t *testing.T) {
		req := formRequest(url.Values{
			presentation.FieldDependents:        {"3"},
			presentation.FieldEducation:         {"Not Graduate"},
			presentation.FieldSelfEmployed:      {"Yes"},
			presentation.FieldAnnualIncome:      {"9600000"},
			presentation.FieldLoanAmount:        {"29900000"},
			presentation.FieldLoanTerm:          {"12"},
			presentation.FieldCreditScore:       {"778"},
			presentation.FieldResidentialAssets: {"2400000"},
			presentation.FieldCommercialAssets:  {"17600000"},
			presentation.FieldLuxuryAssets:      {"22700000"},
			presentation.FieldBankAssets:        {"8000000.75"},
		})

		app := collectApplication(req)
		assert.Equal(t, 3, app.Dependents)
		assert.Equal(t, application.EducationNotGraduate, app.Education)
		assert.Equal(t, application.SelfEmployedYes, app.SelfEmployed)
		assert.True(t, app.AnnualIncome.Equal(decimal.NewFromInt(9_600_000)))
		assert.True(t, app.LoanAmount.Equal(decimal.NewFromInt(29_900_000)))
		assert.Equal(t, 12, app.LoanTermMonths)
		assert.Equal(t, 778, app.CreditScore)
		assert.True(t, app.BankAssets.Equal(decimal.RequireFromString("8000000.75")))
	})

	t.Run("empty form takes defaults", func(t *testing.T) {
		app := collectApplication(formRequest(url.Values{}))
		assert.Equal(t, 0, app.Dependents)
		assert.Equal(t, application.EducationGraduate, app.Education)
		assert.Equal(t, application.SelfEmployedNo, app.SelfEmployed)
		assert.True(t, app.AnnualIncome.IsZero())
		assert.Equal(t, application.DefaultCreditScore, app.CreditScore)
	})

	t.Run("garbage becomes zero or the low end", func(t *testing.T) {
		app := collectApplication(formRequest(url.Values{
			presentation.FieldDependents:   {"two"},
			presentation.FieldAnnualIncome: {"a lot"},
			presentation.FieldLoanTerm:     {"12.0"},
			presentation.FieldCreditScore:  {"excellent"},
		}))
		assert.Equal(t, 0, app.Dependents)
		assert.True(t, app.AnnualIncome.IsZero())
		assert.Equal(t, 12, app.LoanTermMonths)
		assert.Equal(t, application.MinCreditScore, app.CreditScore)
	})

	t.Run("out of range integers saturate instead of wrapping", func(t *testing.T) {
		app := collectApplication(formRequest(url.Values{
			presentation.FieldDependents:  {"1e19"},
			presentation.FieldCreditScore: {"1e19"},
			presentation.FieldLoanTerm:    {"-1e19"},
		})).Normalize()
		assert.Equal(t, application.MaxCreditScore, app.CreditScore)
		assert.Equal(t, math.MaxInt32, app.Dependents)
		assert.Equal(t, 0, app.LoanTermMonths)

		app = collectApplication(formRequest(url.Values{
			presentation.FieldCreditScore: {"9223372036854775808"},
		}))
		assert.Equal(t, math.MaxInt32, app.CreditScore)
	})

	t.Run("huge exponents are clamped without arithmetic blowup", func(t *testing.T) {
		start := time.Now()
		app := collectApplication(formRequest(url.Values{
			presentation.FieldAnnualIncome: {"1e300000000"},
			presentation.FieldLoanAmount:   {"1e300000000"},
			presentation.FieldBankAssets:   {"1e300000000"},
		}))

		assert.True(t, app.AnnualIncome.Equal(application.MaxAmount))
		assert.True(t, app.LoanAmount.Equal(application.MaxAmount))
		assert.True(t, app.TotalAssets().Equal(application.MaxAmount))
		assert.Equal(t, eligibility.Pass, eligibility.DefaultPolicy().Evaluate(app.Normalize()))
		assert.Less(t, time.Since(start), time.Second)
	})
}
