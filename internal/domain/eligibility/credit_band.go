package eligibility

type CreditBand string

const (
	BandHighRisk     CreditBand = "high_risk"
	BandModerateRisk CreditBand = "moderate_risk"
	BandLowRisk      CreditBand = "low_risk"
)

// Band classifies a credit score. The bands are half-open intervals sharing the
// policy thresholds, so every score lands in exactly one of them.
func (p Policy) Band(creditScore int) CreditBand {
	switch {
	case creditScore < p.MinCreditScore:
		return BandHighRisk
	case creditScore < p.LowRiskCreditScore:
		return BandModerateRisk
	default:
		return BandLowRisk
	}
}
