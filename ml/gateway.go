package ml

import (
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"heartrisk/clinical"
)

// Risk verdicts derived from the binary predicted class.
const (
	HighRisk = "High Risk"
	LowRisk  = "Low Risk"
)

// Result is the response produced for one prediction request. It is built
// per request and never persisted.
type Result struct {
	PredictedCategory    int     `json:"predicted_category"`
	RiskScoreProbability float64 `json:"risk_score_probability"`
	RiskLevel            string  `json:"risk_level"`
}

// Gateway runs encoded observations through the shared read-only model and
// shapes the output for transport. Encoding and the model are both
// deterministic, so identical vectors are memoized in a small LRU cache.
type Gateway struct {
	model Classifier
	cache *lru.Cache[clinical.FeatureVector, Result]
	log   *zap.Logger
}

// NewGateway wraps a loaded classifier. A nil model puts the gateway in
// degraded mode: every Predict fails with ErrModelUnavailable.
func NewGateway(model Classifier, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	cache, _ := lru.New[clinical.FeatureVector, Result](256)
	return &Gateway{model: model, cache: cache, log: logger}
}

// Available reports whether the model artifact loaded at startup.
func (g *Gateway) Available() bool {
	return g.model != nil
}

// Predict classifies one encoded observation. The probability is rounded to
// 4 decimal digits for transport.
func (g *Gateway) Predict(vec clinical.FeatureVector) (Result, error) {
	if g.model == nil {
		return Result{}, ErrModelUnavailable
	}
	if res, ok := g.cache.Get(vec); ok {
		return res, nil
	}

	features := vec.Values()
	label, err := g.model.Classify(features)
	if err != nil {
		return Result{}, err
	}
	prob, err := g.model.Score(features)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		PredictedCategory:    label,
		RiskScoreProbability: round4(prob),
		RiskLevel:            riskLevel(label),
	}
	g.cache.Add(vec, res)
	g.log.Debug("prediction served",
		zap.Int("predicted_category", res.PredictedCategory),
		zap.Float64("risk_score_probability", res.RiskScoreProbability))
	return res, nil
}

func riskLevel(label int) string {
	if label == 1 {
		return HighRisk
	}
	return LowRisk
}

func round4(p float64) float64 {
	return math.Round(p*1e4) / 1e4
}
