package application

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MinCreditScore     = 300
	MaxCreditScore     = 900
	DefaultCreditScore = 700
)

type Education string

const (
	EducationGraduate    Education = "Graduate"
	EducationNotGraduate Education = "Not Graduate"
)

// ParseEducation accepts the form labels case-insensitively. Anything it does
// not recognise falls back to the form default.
func ParseEducation(s string) Education {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "not graduate", "not_graduate", "not-graduate", "notgraduate":
		return EducationNotGraduate
	default:
		return EducationGraduate
	}
}

type SelfEmployment string

const (
	SelfEmployedNo  SelfEmployment = "No"
	SelfEmployedYes SelfEmployment = "Yes"
)

func ParseSelfEmployment(s string) SelfEmployment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return SelfEmployedYes
	default:
		return SelfEmployedNo
	}
}

// Application is a single form submission. It lives for one request and is
// never stored.
type Application struct {
	Dependents        int
	Education         Education
	SelfEmployed      SelfEmployment
	AnnualIncome      decimal.Decimal
	LoanAmount        decimal.Decimal
	LoanTermMonths    int
	CreditScore       int
	ResidentialAssets decimal.Decimal
	CommercialAssets  decimal.Decimal
	LuxuryAssets      decimal.Decimal
	BankAssets        decimal.Decimal
}

// Normalize clamps every field into its declared domain so nothing negative or
// out of range reaches the gate or the model. Amounts go through BoundAmount.
func (a Application) Normalize() Application {
	a.Dependents = max(a.Dependents, 0)
	a.LoanTermMonths = max(a.LoanTermMonths, 0)
	a.CreditScore = min(max(a.CreditScore, MinCreditScore), MaxCreditScore)

	if a.Education != EducationNotGraduate {
		a.Education = EducationGraduate
	}
	if a.SelfEmployed != SelfEmployedYes {
		a.SelfEmployed = SelfEmployedNo
	}

	a.AnnualIncome = BoundAmount(a.AnnualIncome)
	a.LoanAmount = BoundAmount(a.LoanAmount)
	a.ResidentialAssets = BoundAmount(a.ResidentialAssets)
	a.CommercialAssets = BoundAmount(a.CommercialAssets)
	a.LuxuryAssets = BoundAmount(a.LuxuryAssets)
	a.BankAssets = BoundAmount(a.BankAssets)
	return a
}

func (a Application) TotalAssets() decimal.Decimal {
	return decimal.Sum(a.ResidentialAssets, a.CommercialAssets, a.LuxuryAssets, a.BankAssets)
}
