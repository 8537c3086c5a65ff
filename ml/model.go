package ml

import "errors"

// ErrModelUnavailable is returned for every prediction when the artifact
// failed to load at startup. The service keeps running in degraded mode.
var ErrModelUnavailable = errors.New("model not loaded")

// Classifier is the narrow surface the gateway needs from a trained model.
// The concrete algorithm behind it is swappable; only positional feature
// binding is assumed.
type Classifier interface {
	// Classify returns the discrete class label for one feature vector.
	Classify(features []float64) (int, error)
	// Score returns the probability mass assigned to class 1.
	Score(features []float64) (float64, error)
}
