package clinical

import (
	"fmt"
	"strings"
)

// FeatureCount is the width of the vector the model was trained on.
const FeatureCount = 13

// FeatureOrder is the positional layout the model expects. The model binds by
// position only, so this order must never change.
var FeatureOrder = [FeatureCount]string{
	"age", "sex", "cp", "trestbps", "chol", "fbs", "restecg",
	"thalachh", "exang", "oldpeak", "slope", "ca", "thal",
}

// FeatureVector is one encoded observation in FeatureOrder layout.
type FeatureVector [FeatureCount]float64

// Values returns the vector as a slice for model consumption.
func (v FeatureVector) Values() []float64 {
	return v[:]
}

var cpCodes = map[string]int{
	"Typical angina":   0,
	"Atypical angina":  1,
	"Non-anginal pain": 2,
	"Asymptomatic":     3,
}

var restECGCodes = map[string]int{
	"Normal":                       0,
	"ST-T wave abnormality":        1,
	"Left ventricular hypertrophy": 2,
}

// thalCodes is 1-indexed; the training data never used code 0.
var thalCodes = map[string]int{
	"Normal":            1,
	"Fixed defect":      2,
	"Reversible defect": 3,
}

func sexCode(label string) (int, error) {
	switch strings.ToLower(label) {
	case "male":
		return 1, nil
	case "female":
		return 0, nil
	default:
		return 0, fmt.Errorf("invalid gender label %q: must be Male or Female", label)
	}
}

func cpCode(label string) (int, error) {
	if code, ok := cpCodes[label]; ok {
		return code, nil
	}
	return 0, fmt.Errorf("invalid chest pain label %q", label)
}

func restECGCode(label string) (int, error) {
	if code, ok := restECGCodes[label]; ok {
		return code, nil
	}
	return 0, fmt.Errorf("invalid resting ECG label %q", label)
}

func exangCode(label string) (int, error) {
	switch strings.ToLower(label) {
	case "yes":
		return 1, nil
	case "no":
		return 0, nil
	default:
		return 0, fmt.Errorf("invalid exercise angina label %q: must be Yes or No", label)
	}
}

func thalCode(label string) (int, error) {
	if code, ok := thalCodes[label]; ok {
		return code, nil
	}
	return 0, fmt.Errorf("invalid thalassemia label %q", label)
}

// fbsFlag derives the binary fasting blood sugar feature from the raw
// measurement: 1 when above 120 mg/dl.
func fbsFlag(raw int) int {
	if raw > 120 {
		return 1
	}
	return 0
}

// Encode maps the observation to its feature vector. Numeric fields pass
// through unchanged; label fields map to their numeric codes. Callers are
// expected to run Validate first; Encode still rejects unknown labels so a
// bad value can never reach the model.
func (o Observation) Encode() (FeatureVector, error) {
	var vec FeatureVector

	sex, err := sexCode(o.SexLabel)
	if err != nil {
		return vec, err
	}
	cp, err := cpCode(o.CPLabel)
	if err != nil {
		return vec, err
	}
	restecg, err := restECGCode(o.RestECGLabel)
	if err != nil {
		return vec, err
	}
	exang, err := exangCode(o.ExangLabel)
	if err != nil {
		return vec, err
	}
	thal, err := thalCode(o.ThalLabel)
	if err != nil {
		return vec, err
	}

	vec = FeatureVector{
		float64(o.Age),
		float64(sex),
		float64(cp),
		o.Trestbps,
		o.Chol,
		float64(fbsFlag(o.FbsRaw)),
		float64(restecg),
		o.Thalachh,
		float64(exang),
		o.Oldpeak,
		float64(o.Slope),
		float64(o.CA),
		float64(thal),
	}
	return vec, nil
}
