package client

import (
	"html/template"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"heartrisk/clinical"
	"heartrisk/ml"
)

// FormApp serves the risk assessment form and renders verdicts. Field
// constraints come straight from the clinical package so the form can never
// offer a value the codec rejects.
type FormApp struct {
	api  *Client
	log  *zap.Logger
	tmpl *template.Template
}

// NewFormApp builds the form front end on top of an API client.
func NewFormApp(api *Client, logger *zap.Logger) *FormApp {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormApp{
		api:  api,
		log:  logger,
		tmpl: template.Must(template.New("form").Parse(formTemplate)),
	}
}

// Routes returns the form app's mux.
func (a *FormApp) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", a.handleForm)
	mux.HandleFunc("POST /{$}", a.handleSubmit)
	return mux
}

type formPage struct {
	Obs      clinical.Observation
	Result   *ml.Result
	HighRisk bool
	Error    string

	SexOptions     []string
	CPOptions      []string
	RestECGOptions []string
	ExangOptions   []string
	ThalOptions    []string
	SlopeOptions   []int
	CAOptions      []int

	AgeMin, AgeMax           int
	TrestbpsMin, TrestbpsMax float64
	CholMin, CholMax         float64
	FbsRawMin, FbsRawMax     int
	ThalachhMin, ThalachhMax float64
	OldpeakMin, OldpeakMax   float64
}

func (a *FormApp) newPage(obs clinical.Observation) formPage {
	return formPage{
		Obs:            obs,
		SexOptions:     clinical.SexLabels,
		CPOptions:      clinical.CPLabels,
		RestECGOptions: clinical.RestECGLabels,
		ExangOptions:   clinical.ExangLabels,
		ThalOptions:    clinical.ThalLabels,
		SlopeOptions:   clinical.SlopeValues,
		CAOptions:      clinical.CAValues,
		AgeMin:         clinical.AgeMin,
		AgeMax:         clinical.AgeMax,
		TrestbpsMin:    clinical.TrestbpsMin,
		TrestbpsMax:    clinical.TrestbpsMax,
		CholMin:        clinical.CholMin,
		CholMax:        clinical.CholMax,
		FbsRawMin:      clinical.FbsRawMin,
		FbsRawMax:      clinical.FbsRawMax,
		ThalachhMin:    clinical.ThalachhMin,
		ThalachhMax:    clinical.ThalachhMax,
		OldpeakMin:     clinical.OldpeakMin,
		OldpeakMax:     clinical.OldpeakMax,
	}
}

// defaultObservation pre-fills the form with mid-range values.
func defaultObservation() clinical.Observation {
	return clinical.Observation{
		Age:          50,
		SexLabel:     "Male",
		CPLabel:      "Asymptomatic",
		Trestbps:     120,
		Chol:         200,
		FbsRaw:       90,
		RestECGLabel: "Normal",
		Thalachh:     150,
		ExangLabel:   "No",
		Oldpeak:      1.0,
		Slope:        1,
		CA:           0,
		ThalLabel:    "Normal",
	}
}

func (a *FormApp) handleForm(w http.ResponseWriter, r *http.Request) {
	a.render(w, a.newPage(defaultObservation()))
}

func (a *FormApp) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		page := a.newPage(defaultObservation())
		page.Error = "Could not read the submitted form."
		a.render(w, page)
		return
	}

	obs, err := observationFromForm(r)
	page := a.newPage(obs)
	if err != nil {
		page.Error = err.Error()
		a.render(w, page)
		return
	}

	result, err := a.api.Predict(r.Context(), obs)
	if err != nil {
		a.log.Warn("prediction call failed", zap.Error(err))
		page.Error = userMessage(err)
		a.render(w, page)
		return
	}

	page.Result = &result
	page.HighRisk = result.RiskLevel == ml.HighRisk
	a.render(w, page)
}

func (a *FormApp) render(w http.ResponseWriter, page formPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.tmpl.Execute(w, page); err != nil {
		a.log.Error("template render failed", zap.Error(err))
	}
}

// userMessage keeps transport errors readable without leaking internals.
func userMessage(err error) string {
	if apiErr, ok := err.(*APIError); ok {
		return "The prediction service rejected the request: " + apiErr.Message
	}
	return "Could not reach the prediction service. Please ensure the server is running and try again."
}

func observationFromForm(r *http.Request) (clinical.Observation, error) {
	obs := defaultObservation()

	age, err := strconv.Atoi(r.FormValue("age"))
	if err != nil {
		return obs, errFieldNumber("Age")
	}
	trestbps, err := strconv.ParseFloat(r.FormValue("trestbps"), 64)
	if err != nil {
		return obs, errFieldNumber("Resting Blood Pressure")
	}
	chol, err := strconv.ParseFloat(r.FormValue("chol"), 64)
	if err != nil {
		return obs, errFieldNumber("Serum Cholesterol")
	}
	fbsRaw, err := strconv.Atoi(r.FormValue("fbs_raw"))
	if err != nil {
		return obs, errFieldNumber("Fasting Blood Sugar")
	}
	thalachh, err := strconv.ParseFloat(r.FormValue("thalachh"), 64)
	if err != nil {
		return obs, errFieldNumber("Max Heart Rate")
	}
	oldpeak, err := strconv.ParseFloat(r.FormValue("oldpeak"), 64)
	if err != nil {
		return obs, errFieldNumber("Oldpeak")
	}
	slope, err := strconv.Atoi(r.FormValue("slope"))
	if err != nil {
		return obs, errFieldNumber("ST Segment Slope")
	}
	ca, err := strconv.Atoi(r.FormValue("ca"))
	if err != nil {
		return obs, errFieldNumber("Number of Major Vessels")
	}

	obs = clinical.Observation{
		Age:          age,
		SexLabel:     r.FormValue("sex_label"),
		CPLabel:      r.FormValue("cp_label"),
		Trestbps:     trestbps,
		Chol:         chol,
		FbsRaw:       fbsRaw,
		RestECGLabel: r.FormValue("restecg_label"),
		Thalachh:     thalachh,
		ExangLabel:   r.FormValue("exang_label"),
		Oldpeak:      oldpeak,
		Slope:        slope,
		CA:           ca,
		ThalLabel:    r.FormValue("thal_label"),
	}
	return obs, nil
}

type formError string

func (e formError) Error() string { return string(e) }

func errFieldNumber(label string) error {
	return formError(label + " must be a number.")
}
