package client

const formTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Heart Disease Risk Assessment</title>
<style>
  body { font-family: sans-serif; max-width: 880px; margin: 2rem auto; color: #222; }
  form { display: grid; grid-template-columns: repeat(3, 1fr); gap: 1rem; }
  label { display: block; font-size: 0.85rem; margin-bottom: 0.25rem; }
  input, select { width: 100%; padding: 0.4rem; box-sizing: border-box; }
  .actions { grid-column: 1 / -1; }
  button { padding: 0.6rem 1.4rem; background: #c62828; color: #fff; border: 0; cursor: pointer; }
  .verdict { margin-top: 1.5rem; padding: 1rem; border-radius: 4px; }
  .verdict.error { background: #fdecea; color: #b71c1c; border: 1px solid #b71c1c; }
  .verdict.success { background: #edf7ed; color: #1b5e20; border: 1px solid #1b5e20; }
  .message { margin-top: 1.5rem; padding: 1rem; background: #fff3e0; border: 1px solid #e65100; }
  .note { margin-top: 1rem; font-size: 0.8rem; color: #666; }
</style>
</head>
<body>
<h1>Heart Disease Risk Assessment</h1>
<p>Enter the patient's clinical parameters to get a risk prediction.</p>

<form method="post" action="/">
  <div>
    <label for="age">Age (years)</label>
    <input type="number" id="age" name="age" min="{{.AgeMin}}" max="{{.AgeMax}}" step="1" value="{{.Obs.Age}}" required>
  </div>
  <div>
    <label for="sex_label">Gender</label>
    <select id="sex_label" name="sex_label">
      {{range .SexOptions}}<option value="{{.}}" {{if eq . $.Obs.SexLabel}}selected{{end}}>{{.}}</option>{{end}}
    </select>
  </div>
  <div>
    <label for="cp_label">Chest Pain Type</label>
    <select id="cp_label" name="cp_label">
      {{range .CPOptions}}<option value="{{.}}" {{if eq . $.Obs.CPLabel}}selected{{end}}>{{.}}</option>{{end}}
    </select>
  </div>
  <div>
    <label for="trestbps">Resting Blood Pressure (mm Hg)</label>
    <input type="number" id="trestbps" name="trestbps" min="{{.TrestbpsMin}}" max="{{.TrestbpsMax}}" step="0.5" value="{{.Obs.Trestbps}}" required>
  </div>
  <div>
    <label for="chol">Serum Cholesterol (mg/dl)</label>
    <input type="number" id="chol" name="chol" min="{{.CholMin}}" max="{{.CholMax}}" step="0.5" value="{{.Obs.Chol}}" required>
  </div>
  <div>
    <label for="fbs_raw">Fasting Blood Sugar (mg/dl)</label>
    <input type="number" id="fbs_raw" name="fbs_raw" min="{{.FbsRawMin}}" max="{{.FbsRawMax}}" step="1" value="{{.Obs.FbsRaw}}" required>
  </div>
  <div>
    <label for="restecg_label">Resting ECG Results</label>
    <select id="restecg_label" name="restecg_label">
      {{range .RestECGOptions}}<option value="{{.}}" {{if eq . $.Obs.RestECGLabel}}selected{{end}}>{{.}}</option>{{end}}
    </select>
  </div>
  <div>
    <label for="thalachh">Max Heart Rate Achieved</label>
    <input type="number" id="thalachh" name="thalachh" min="{{.ThalachhMin}}" max="{{.ThalachhMax}}" step="0.5" value="{{.Obs.Thalachh}}" required>
  </div>
  <div>
    <label for="exang_label">Exercise Induced Angina</label>
    <select id="exang_label" name="exang_label">
      {{range .ExangOptions}}<option value="{{.}}" {{if eq . $.Obs.ExangLabel}}selected{{end}}>{{.}}</option>{{end}}
    </select>
  </div>
  <div>
    <label for="oldpeak">Oldpeak (ST Depression)</label>
    <input type="number" id="oldpeak" name="oldpeak" min="{{.OldpeakMin}}" max="{{.OldpeakMax}}" step="0.1" value="{{.Obs.Oldpeak}}" required>
  </div>
  <div>
    <label for="slope">Peak Exercise ST Segment Slope</label>
    <select id="slope" name="slope">
      {{range .SlopeOptions}}<option value="{{.}}" {{if eq . $.Obs.Slope}}selected{{end}}>{{.}}</option>{{end}}
    </select>
  </div>
  <div>
    <label for="ca">Number of Major Vessels (0-3)</label>
    <select id="ca" name="ca">
      {{range .CAOptions}}<option value="{{.}}" {{if eq . $.Obs.CA}}selected{{end}}>{{.}}</option>{{end}}
    </select>
  </div>
  <div>
    <label for="thal_label">Thalassemia Type</label>
    <select id="thal_label" name="thal_label">
      {{range .ThalOptions}}<option value="{{.}}" {{if eq . $.Obs.ThalLabel}}selected{{end}}>{{.}}</option>{{end}}
    </select>
  </div>
  <div class="actions">
    <button type="submit">Predict Heart Risk</button>
  </div>
</form>

{{if .Error}}
<div class="message">{{.Error}}</div>
{{end}}

{{with .Result}}
<div class="verdict {{if $.HighRisk}}error{{else}}success{{end}}">
  <strong>{{if $.HighRisk}}WARNING: {{end}}{{.RiskLevel}} detected</strong><br>
  Probability of high risk: {{printf "%.2f" .RiskScoreProbability}}
</div>
<p class="note">This prediction is generated by an ML model and is not a substitute for professional medical advice.</p>
{{end}}

</body>
</html>
`
