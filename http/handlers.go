package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"heartrisk/clinical"
	"heartrisk/ml"
)

var (
	gateway *ml.Gateway
	logger  = zap.NewNop()
)

// SetGateway installs the shared inference gateway before the server starts.
func SetGateway(gw *ml.Gateway) {
	gateway = gw
}

// SetLogger installs the handler logger.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// RegisterHandlers wires the two API operations.
func RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handleHome)
	mux.HandleFunc("POST /predict", handlePredict)
}

func handleHome(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "this is the home page"})
}

// predictRequest uses pointer fields so absent keys are reported as missing
// rather than silently defaulting to zero values.
type predictRequest struct {
	Age          *int     `json:"age"`
	SexLabel     *string  `json:"sex_label"`
	CPLabel      *string  `json:"cp_label"`
	Trestbps     *float64 `json:"trestbps"`
	Chol         *float64 `json:"chol"`
	FbsRaw       *int     `json:"fbs_raw"`
	RestECGLabel *string  `json:"restecg_label"`
	Thalachh     *float64 `json:"thalachh"`
	ExangLabel   *string  `json:"exang_label"`
	Oldpeak      *float64 `json:"oldpeak"`
	Slope        *int     `json:"slope"`
	CA           *int     `json:"ca"`
	ThalLabel    *string  `json:"thal_label"`
}

func (req predictRequest) missingFields() []clinical.FieldError {
	var errs []clinical.FieldError
	required := []struct {
		name string
		set  bool
	}{
		{"age", req.Age != nil},
		{"sex_label", req.SexLabel != nil},
		{"cp_label", req.CPLabel != nil},
		{"trestbps", req.Trestbps != nil},
		{"chol", req.Chol != nil},
		{"fbs_raw", req.FbsRaw != nil},
		{"restecg_label", req.RestECGLabel != nil},
		{"thalachh", req.Thalachh != nil},
		{"exang_label", req.ExangLabel != nil},
		{"oldpeak", req.Oldpeak != nil},
		{"slope", req.Slope != nil},
		{"ca", req.CA != nil},
		{"thal_label", req.ThalLabel != nil},
	}
	for _, f := range required {
		if !f.set {
			errs = append(errs, clinical.FieldError{Field: f.name, Message: "field is required"})
		}
	}
	return errs
}

func (req predictRequest) observation() clinical.Observation {
	return clinical.Observation{
		Age:          *req.Age,
		SexLabel:     *req.SexLabel,
		CPLabel:      *req.CPLabel,
		Trestbps:     *req.Trestbps,
		Chol:         *req.Chol,
		FbsRaw:       *req.FbsRaw,
		RestECGLabel: *req.RestECGLabel,
		Thalachh:     *req.Thalachh,
		ExangLabel:   *req.ExangLabel,
		Oldpeak:      *req.Oldpeak,
		Slope:        *req.Slope,
		CA:           *req.CA,
		ThalLabel:    *req.ThalLabel,
	}
}

func handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, http.StatusBadRequest, []clinical.FieldError{
			{Field: "body", Message: "malformed JSON body"},
		})
		return
	}

	if missing := req.missingFields(); len(missing) > 0 {
		respondDetail(w, http.StatusUnprocessableEntity, missing)
		return
	}

	obs := req.observation()
	if errs := obs.Validate(); len(errs) > 0 {
		respondDetail(w, http.StatusUnprocessableEntity, errs)
		return
	}

	vec, err := obs.Encode()
	if err != nil {
		// Unreachable after Validate, kept as a guard.
		respondDetail(w, http.StatusUnprocessableEntity, []clinical.FieldError{
			{Field: "body", Message: err.Error()},
		})
		return
	}

	if gateway == nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Model not loaded."})
		return
	}

	res, err := gateway.Predict(vec)
	if err != nil {
		if errors.Is(err, ml.ErrModelUnavailable) {
			respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Model not loaded."})
			return
		}
		logger.Error("prediction failed",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "prediction failed"})
		return
	}

	respondJSON(w, http.StatusOK, res)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondDetail(w http.ResponseWriter, status int, errs []clinical.FieldError) {
	respondJSON(w, status, map[string][]clinical.FieldError{"detail": errs})
}
