package decision

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"loan-predictor/internal/domain/application"
	"loan-predictor/internal/infrastructure/monitoring"
	"loan-predictor/internal/pkg/apperrors"
)

// Classifier is a pre-trained binary model over the fixed feature schema.
// Implementations must be safe for concurrent use.
type Classifier interface {
	// Predict returns the predicted class, 0 or 1.
	Predict(fv application.FeatureVector) (int, error)
	// PositiveProbability returns P(class=1).
	PositiveProbability(fv application.FeatureVector) (float64, error)
}

type Decision struct {
	Approved            bool
	Confidence          float64
	PositiveProbability float64
}

type Engine struct {
	classifier Classifier
	logger     *slog.Logger
}

func NewEngine(c Classifier, logger *slog.Logger) *Engine {
	if c == nil {
		panic("classifier cannot be nil")
	}
	return &Engine{
		classifier: c,
		logger:     logger.With("component", "DecisionEngine"),
	}
}

// Decide runs the classifier. Confidence is the probability of whichever class
// was predicted.
func (e *Engine) Decide(ctx context.Context, fv application.FeatureVector) (Decision, error) {
	start := time.Now()
	d, err := e.decide(fv)
	status := "success"
	if err != nil {
		status = "error"
		e.logger.ErrorContext(ctx, "Classifier failed", "error", err)
	}
	monitoring.RecordInference(status, time.Since(start))
	return d, err
}

func (e *Engine) decide(fv application.FeatureVector) (Decision, error) {
	label, err := e.classifier.Predict(fv)
	if err != nil {
		return Decision{}, apperrors.WrapModelError(err, "prediction failed")
	}
	if label != 0 && label != 1 {
		return Decision{}, apperrors.WrapModelError(fmt.Errorf("unexpected class label %d", label), "prediction failed")
	}

	p, err := e.classifier.PositiveProbability(fv)
	if err != nil {
		return Decision{}, apperrors.WrapModelError(err, "probability estimation failed")
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return Decision{}, apperrors.WrapModelError(fmt.Errorf("probability %v outside [0,1]", p), "probability estimation failed")
	}

	d := Decision{
		Approved:            label == 1,
		PositiveProbability: p,
		Confidence:          p,
	}
	if !d.Approved {
		d.Confidence = 1 - p
	}
	return d, nil
}
