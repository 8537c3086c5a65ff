package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"heartrisk/clinical"
	"heartrisk/ml"
)

func testObservation() clinical.Observation {
	return clinical.Observation{
		Age:          63,
		SexLabel:     "Male",
		CPLabel:      "Asymptomatic",
		Trestbps:     145,
		Chol:         233,
		FbsRaw:       150,
		RestECGLabel: "Left ventricular hypertrophy",
		Thalachh:     150,
		ExangLabel:   "No",
		Oldpeak:      2.3,
		Slope:        0,
		CA:           0,
		ThalLabel:    "Fixed defect",
	}
}

func TestClientPredict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var obs clinical.Observation
		if err := json.NewDecoder(r.Body).Decode(&obs); err != nil {
			t.Fatalf("invalid request body: %v", err)
		}
		if obs.SexLabel != "Male" || obs.Age != 63 {
			t.Fatalf("request body lost fields: %+v", obs)
		}
		json.NewEncoder(w).Encode(ml.Result{
			PredictedCategory:    1,
			RiskScoreProbability: 0.8765,
			RiskLevel:            ml.HighRisk,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	res, err := c.Predict(context.Background(), testObservation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RiskLevel != ml.HighRisk || res.RiskScoreProbability != 0.8765 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestClientPredictServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "Model not loaded."})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Predict(context.Background(), testObservation())
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusInternalServerError || apiErr.Message != "Model not loaded." {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestClientPredictValidationDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string][]clinical.FieldError{
			"detail": {{Field: "age", Message: "must be between 25 and 90"}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Predict(context.Background(), testObservation())
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if !strings.Contains(apiErr.Message, "age") {
		t.Fatalf("expected field name in message, got %q", apiErr.Message)
	}
}

func TestClientPredictConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := New(srv.URL, nil)
	_, err := c.Predict(context.Background(), testObservation())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if _, ok := err.(*APIError); ok {
		t.Fatal("transport failure must not be an APIError")
	}
}

func TestFormRendersDomains(t *testing.T) {
	app := NewFormApp(New("http://127.0.0.1:1", nil), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	app.Routes().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, label := range clinical.ThalLabels {
		if !strings.Contains(body, label) {
			t.Fatalf("form is missing option %q", label)
		}
	}
	if !strings.Contains(body, `min="25"`) || !strings.Contains(body, `max="90"`) {
		t.Fatal("age input does not carry the documented range")
	}
}

func TestFormSubmitRendersVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ml.Result{
			PredictedCategory:    1,
			RiskScoreProbability: 0.91,
			RiskLevel:            ml.HighRisk,
		})
	}))
	defer srv.Close()

	app := NewFormApp(New(srv.URL, nil), nil)
	form := "age=63&sex_label=Male&cp_label=Asymptomatic&trestbps=145&chol=233&fbs_raw=150" +
		"&restecg_label=Normal&thalachh=150&exang_label=No&oldpeak=2.3&slope=0&ca=0&thal_label=Fixed+defect"

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	app.Routes().ServeHTTP(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "High Risk") {
		t.Fatalf("expected verdict in page, got: %s", body)
	}
	if !strings.Contains(body, `verdict error`) {
		t.Fatal("high risk verdict should use error styling")
	}
}

func TestFormSubmitTransportFailureKeepsFormUsable(t *testing.T) {
	app := NewFormApp(New("http://127.0.0.1:1", nil), nil)
	form := "age=63&sex_label=Male&cp_label=Asymptomatic&trestbps=145&chol=233&fbs_raw=150" +
		"&restecg_label=Normal&thalachh=150&exang_label=No&oldpeak=2.3&slope=0&ca=0&thal_label=Normal"

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	app.Routes().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("form page should still render, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Could not reach the prediction service") {
		t.Fatal("expected a transport error message")
	}
	if !strings.Contains(body, "<form") {
		t.Fatal("form must remain usable after a failure")
	}
}
