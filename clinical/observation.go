// Package clinical defines the raw observation accepted from callers and the
// encoding that turns it into the numeric feature vector the classifier expects.
package clinical

import "fmt"

// Valid ranges for the numeric inputs. Values outside these fail validation
// before any label mapping runs.
const (
	AgeMin, AgeMax           = 25, 90
	TrestbpsMin, TrestbpsMax = 80.0, 250.0
	CholMin, CholMax         = 100.0, 600.0
	FbsRawMin, FbsRawMax     = 60, 150
	ThalachhMin, ThalachhMax = 60.0, 220.0
	OldpeakMin, OldpeakMax   = 0.0, 6.5
	SlopeMax                 = 2
	CAMax                    = 3
)

// Closed option sets for the categorical inputs. The form client builds its
// dropdowns from these so the accepted domains cannot drift from validation.
var (
	SexLabels     = []string{"Male", "Female"}
	CPLabels      = []string{"Typical angina", "Atypical angina", "Non-anginal pain", "Asymptomatic"}
	RestECGLabels = []string{"Normal", "ST-T wave abnormality", "Left ventricular hypertrophy"}
	ExangLabels   = []string{"No", "Yes"}
	ThalLabels    = []string{"Normal", "Fixed defect", "Reversible defect"}
	SlopeValues   = []int{0, 1, 2}
	CAValues      = []int{0, 1, 2, 3}
)

// Observation holds one prediction request's raw clinical inputs.
// Field names follow the wire contract: categorical inputs carry a _label
// suffix and fasting blood sugar arrives as the raw measurement.
type Observation struct {
	Age          int     `json:"age"`
	SexLabel     string  `json:"sex_label"`
	CPLabel      string  `json:"cp_label"`
	Trestbps     float64 `json:"trestbps"`
	Chol         float64 `json:"chol"`
	FbsRaw       int     `json:"fbs_raw"`
	RestECGLabel string  `json:"restecg_label"`
	Thalachh     float64 `json:"thalachh"`
	ExangLabel   string  `json:"exang_label"`
	Oldpeak      float64 `json:"oldpeak"`
	Slope        int     `json:"slope"`
	CA           int     `json:"ca"`
	ThalLabel    string  `json:"thal_label"`
}

// FieldError reports a single violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"error"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks every field against its declared range or closed label set
// and returns all violations. An empty result means Encode cannot fail.
func (o Observation) Validate() []FieldError {
	var errs []FieldError

	if o.Age < AgeMin || o.Age > AgeMax {
		errs = append(errs, FieldError{"age", fmt.Sprintf("must be between %d and %d", AgeMin, AgeMax)})
	}
	if o.Trestbps < TrestbpsMin || o.Trestbps > TrestbpsMax {
		errs = append(errs, FieldError{"trestbps", fmt.Sprintf("must be between %g and %g", TrestbpsMin, TrestbpsMax)})
	}
	if o.Chol < CholMin || o.Chol > CholMax {
		errs = append(errs, FieldError{"chol", fmt.Sprintf("must be between %g and %g", CholMin, CholMax)})
	}
	if o.FbsRaw < FbsRawMin || o.FbsRaw > FbsRawMax {
		errs = append(errs, FieldError{"fbs_raw", fmt.Sprintf("must be between %d and %d", FbsRawMin, FbsRawMax)})
	}
	if o.Thalachh < ThalachhMin || o.Thalachh > ThalachhMax {
		errs = append(errs, FieldError{"thalachh", fmt.Sprintf("must be between %g and %g", ThalachhMin, ThalachhMax)})
	}
	if o.Oldpeak < OldpeakMin || o.Oldpeak > OldpeakMax {
		errs = append(errs, FieldError{"oldpeak", fmt.Sprintf("must be between %g and %g", OldpeakMin, OldpeakMax)})
	}
	if o.Slope < 0 || o.Slope > SlopeMax {
		errs = append(errs, FieldError{"slope", fmt.Sprintf("must be one of 0..%d", SlopeMax)})
	}
	if o.CA < 0 || o.CA > CAMax {
		errs = append(errs, FieldError{"ca", fmt.Sprintf("must be one of 0..%d", CAMax)})
	}

	if _, err := sexCode(o.SexLabel); err != nil {
		errs = append(errs, FieldError{"sex_label", err.Error()})
	}
	if _, err := cpCode(o.CPLabel); err != nil {
		errs = append(errs, FieldError{"cp_label", err.Error()})
	}
	if _, err := restECGCode(o.RestECGLabel); err != nil {
		errs = append(errs, FieldError{"restecg_label", err.Error()})
	}
	if _, err := exangCode(o.ExangLabel); err != nil {
		errs = append(errs, FieldError{"exang_label", err.Error()})
	}
	if _, err := thalCode(o.ThalLabel); err != nil {
		errs = append(errs, FieldError{"thal_label", err.Error()})
	}

	return errs
}
