package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"loan-predictor/internal/domain/application"
	"loan-predictor/internal/pkg/apperrors"
)

const defaultThreshold = 0.5

type artifact struct {
	Format       string    `json:"format"`
	Version      string    `json:"version"`
	FeatureNames []string  `json:"feature_names"`
	Means        []float64 `json:"means"`
	Scales       []float64 `json:"scales"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Threshold    *float64  `json:"threshold"`
}

// LogisticClassifier is an immutable logistic regression model with optional
// per-feature standardization. All methods are safe for concurrent use.
type LogisticClassifier struct {
	version      string
	means        [application.FeatureCount]float64
	scales       [application.FeatureCount]float64
	coefficients [application.FeatureCount]float64
	intercept    float64
	threshold    float64
}

// Load reads and validates the artifact at path. Any failure means the
// service must not start.
func Load(path string, logger *slog.Logger) (*LogisticClassifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", apperrors.ErrModelUnavailable, path, err)
	}

	clf, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	logger.Info("Model artifact loaded",
		"path", path,
		"version", clf.version,
		"features", application.FeatureCount,
		"threshold", clf.threshold,
	)
	return clf, nil
}

func Parse(raw []byte) (*LogisticClassifier, error) {
	if err := validateArtifact(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSchemaMismatch, err)
	}

	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("%w: decode artifact: %w", apperrors.ErrSchemaMismatch, err)
	}

	for i, name := range a.FeatureNames {
		if name != application.FeatureNames[i] {
			return nil, fmt.Errorf("%w: feature %d is %q, expected %q",
				apperrors.ErrSchemaMismatch, i, name, application.FeatureNames[i])
		}
	}

	clf := &LogisticClassifier{
		version:   a.Version,
		intercept: a.Intercept,
		threshold: defaultThreshold,
	}
	if a.Threshold != nil {
		clf.threshold = *a.Threshold
	}
	copy(clf.coefficients[:], a.Coefficients)

	for i := range clf.scales {
		clf.scales[i] = 1
	}
	if a.Means != nil {
		copy(clf.means[:], a.Means)
	}
	if a.Scales != nil {
		copy(clf.scales[:], a.Scales)
	}
	return clf, nil
}

func (c *LogisticClassifier) Version() string {
	return c.version
}

func (c *LogisticClassifier) PositiveProbability(fv application.FeatureVector) (float64, error) {
	z := c.intercept
	for i, x := range fv {
		z += c.coefficients[i] * (x - c.means[i]) / c.scales[i]
	}
	if math.IsNaN(z) {
		return 0, errors.New("decision function is NaN")
	}
	return sigmoid(z), nil
}

func (c *LogisticClassifier) Predict(fv application.FeatureVector) (int, error) {
	p, err := c.PositiveProbability(fv)
	if err != nil {
		return 0, err
	}
	if p >= c.threshold {
		return 1, nil
	}
	return 0, nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
