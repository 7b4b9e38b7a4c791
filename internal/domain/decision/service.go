package decision

import (
	"context"
	"fmt"
	"log/slog"

	"loan-predictor/internal/domain/application"
	"loan-predictor/internal/domain/eligibility"
	"loan-predictor/internal/infrastructure/monitoring"
)

type DecisionService interface {
	Assess(ctx context.Context, app application.Application) (*Assessment, error)
}

type decisionServiceImpl struct {
	policy eligibility.Policy
	engine *Engine
	logger *slog.Logger
}

func NewDecisionService(policy eligibility.Policy, engine *Engine, logger *slog.Logger) DecisionService {
	return &decisionServiceImpl{
		policy: policy,
		engine: engine,
		logger: logger.With("component", "DecisionService"),
	}
}

// Assess normalizes the application, applies the rule gate and, only if the
// gate passes, consults the classifier.
func (s *decisionServiceImpl) Assess(ctx context.Context, app application.Application) (*Assessment, error) {
	app = app.Normalize()
	assessment := &Assessment{
		Application: app,
		Financials: FinancialOverview{
			Income:      app.AnnualIncome,
			LoanAmount:  app.LoanAmount,
			TotalAssets: app.TotalAssets(),
		},
	}

	gate := s.policy.Evaluate(app)
	if outcome, rejected := gateOutcome(gate); rejected {
		s.logger.InfoContext(ctx, "Application rejected by policy", "gate", gate.String(), "creditScore", app.CreditScore)
		assessment.Outcome = outcome
		monitoring.RecordOutcome(outcome.MetricLabel())
		return assessment, nil
	}

	d, err := s.engine.Decide(ctx, application.Encode(app))
	if err != nil {
		return nil, fmt.Errorf("failed to decide application: %w", err)
	}

	assessment.Outcome = Outcome{Kind: OutcomeModelDecision, Decision: &d}
	assessment.CreditBand = s.policy.Band(app.CreditScore)
	monitoring.RecordOutcome(assessment.Outcome.MetricLabel())
	s.logger.InfoContext(ctx, "Application decided by model",
		"approved", d.Approved,
		"confidence", d.Confidence,
		"creditBand", string(assessment.CreditBand),
	)
	return assessment, nil
}
