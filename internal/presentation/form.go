package presentation

import (
	"strconv"

	"loan-predictor/internal/domain/application"
)

// Form field names shared by the template and the input collector.
const (
	FieldDependents        = "no_of_dependents"
	FieldEducation         = "education"
	FieldSelfEmployed      = "self_employed"
	FieldAnnualIncome      = "income_annum"
	FieldLoanAmount        = "loan_amount"
	FieldLoanTerm          = "loan_term"
	FieldCreditScore       = "cibil_score"
	FieldResidentialAssets = "residential_assets_value"
	FieldCommercialAssets  = "commercial_assets_value"
	FieldLuxuryAssets      = "luxury_assets_value"
	FieldBankAssets        = "bank_asset_value"
)

type FieldKind string

const (
	KindNumber FieldKind = "number"
	KindSelect FieldKind = "select"
	KindRange  FieldKind = "range"
)

type FormField struct {
	Name    string
	Label   string
	Help    string
	Kind    FieldKind
	Value   string
	Min     string
	Max     string
	Step    string
	Options []string
}

type Form struct {
	Applicant []FormField
	Assets    []FormField
}

// NewForm builds the applicant form pre-filled with app. Pass the zero
// Application (with DefaultCreditScore) for an empty form.
func NewForm(app application.Application) Form {
	amount := func(name, label, help, value string) FormField {
		return FormField{Name: name, Label: label, Help: help, Kind: KindNumber, Value: value, Min: "0", Step: "1"}
	}
	education := string(app.Education)
	if education == "" {
		education = string(application.EducationGraduate)
	}
	selfEmployed := string(app.SelfEmployed)
	if selfEmployed == "" {
		selfEmployed = string(application.SelfEmployedNo)
	}

	return Form{
		Applicant: []FormField{
			{
				Name: FieldDependents, Label: "Number of Dependents", Kind: KindNumber, Min: "0", Step: "1",
				Help:  "Number of people financially dependent on the applicant",
				Value: strconv.Itoa(app.Dependents),
			},
			{
				Name: FieldEducation, Label: "Education Level", Kind: KindSelect,
				Help:    "Highest education qualification",
				Value:   education,
				Options: []string{string(application.EducationGraduate), string(application.EducationNotGraduate)},
			},
			{
				Name: FieldSelfEmployed, Label: "Employment Type", Kind: KindSelect,
				Help:    "Is the applicant self-employed?",
				Value:   selfEmployed,
				Options: []string{string(application.SelfEmployedNo), string(application.SelfEmployedYes)},
			},
			amount(FieldAnnualIncome, "Annual Income (₹)", "Total yearly income before tax", app.AnnualIncome.String()),
			amount(FieldLoanAmount, "Loan Amount (₹)", "Total loan amount requested", app.LoanAmount.String()),
			{
				Name: FieldLoanTerm, Label: "Loan Term (months)", Kind: KindNumber, Min: "0", Step: "1",
				Help:  "Loan repayment duration in months",
				Value: strconv.Itoa(app.LoanTermMonths),
			},
			{
				Name: FieldCreditScore, Label: "CIBIL Score", Kind: KindRange, Step: "1",
				Min:   strconv.Itoa(application.MinCreditScore),
				Max:   strconv.Itoa(application.MaxCreditScore),
				Help:  "Credit score indicating repayment history",
				Value: strconv.Itoa(app.CreditScore),
			},
		},
		Assets: []FormField{
			amount(FieldResidentialAssets, "Residential Assets (₹)", "Value of owned residential property", app.ResidentialAssets.String()),
			amount(FieldCommercialAssets, "Commercial Assets (₹)", "Value of owned commercial property", app.CommercialAssets.String()),
			amount(FieldLuxuryAssets, "Luxury Assets (₹)", "Value of luxury items like cars or jewelry", app.LuxuryAssets.String()),
			amount(FieldBankAssets, "Bank Assets (₹)", "Savings, fixed deposits, and bank balances", app.BankAssets.String()),
		},
	}
}

// DefaultApplication is what an untouched form submits.
func DefaultApplication() application.Application {
	return application.Application{
		Education:    application.EducationGraduate,
		SelfEmployed: application.SelfEmployedNo,
		CreditScore:  application.DefaultCreditScore,
	}
}
