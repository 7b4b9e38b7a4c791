package application

import "github.com/shopspring/decimal"

const FeatureCount = 11

// FeatureNames is the column order the classifier was trained on. The model is
// positional, so this order must never change independently of the artifact.
var FeatureNames = [FeatureCount]string{
	"no_of_dependents",
	"education",
	"self_employed",
	"income_annum",
	"loan_amount",
	"loan_term",
	"cibil_score",
	"residential_assets_value",
	"commercial_assets_value",
	"luxury_assets_value",
	"bank_asset_value",
}

type FeatureVector [FeatureCount]float64

func Encode(a Application) FeatureVector {
	return FeatureVector{
		float64(a.Dependents),
		boolFeature(a.Education == EducationGraduate),
		boolFeature(a.SelfEmployed == SelfEmployedYes),
		amount(a.AnnualIncome),
		amount(a.LoanAmount),
		float64(a.LoanTermMonths),
		float64(a.CreditScore),
		amount(a.ResidentialAssets),
		amount(a.CommercialAssets),
		amount(a.LuxuryAssets),
		amount(a.BankAssets),
	}
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func amount(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
