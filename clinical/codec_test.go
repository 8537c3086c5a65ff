package clinical

import "testing"

func validObservation() Observation {
	return Observation{
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

func TestEncodeFixedOrder(t *testing.T) {
	vec, err := validObservation().Encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := FeatureVector{63, 1, 3, 145, 233, 1, 2, 150, 0, 2.3, 0, 0, 2}
	if vec != want {
		t.Fatalf("expected %v, got %v", want, vec)
	}
}

func TestEncodeIdempotent(t *testing.T) {
	obs := validObservation()
	first, err := obs.Encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := obs.Encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("encoding is not deterministic: %v vs %v", first, second)
	}
}

func TestSexMapping(t *testing.T) {
	cases := []struct {
		label   string
		want    int
		wantErr bool
	}{
		{"Male", 1, false},
		{"male", 1, false},
		{"FEMALE", 0, false},
		{"Female", 0, false},
		{"Unknown", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := sexCode(tc.label)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tc.label)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.label, err)
		}
		if got != tc.want {
			t.Fatalf("sexCode(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

func TestExangMappingCaseInsensitive(t *testing.T) {
	if code, err := exangCode("YES"); err != nil || code != 1 {
		t.Fatalf("expected 1, got %d (%v)", code, err)
	}
	if code, err := exangCode("no"); err != nil || code != 0 {
		t.Fatalf("expected 0, got %d (%v)", code, err)
	}
	if _, err := exangCode("maybe"); err == nil {
		t.Fatal("expected error for unknown label")
	}
}

func TestChestPainMappingIsExact(t *testing.T) {
	if code, err := cpCode("Typical angina"); err != nil || code != 0 {
		t.Fatalf("expected 0, got %d (%v)", code, err)
	}
	if code, err := cpCode("Asymptomatic"); err != nil || code != 3 {
		t.Fatalf("expected 3, got %d (%v)", code, err)
	}
	// Case matters for the exact-match labels.
	if _, err := cpCode("asymptomatic"); err == nil {
		t.Fatal("expected error for lowercased label")
	}
}

func TestThalMappingIsOneIndexed(t *testing.T) {
	cases := map[string]int{
		"Normal":            1,
		"Fixed defect":      2,
		"Reversible defect": 3,
	}
	for label, want := range cases {
		got, err := thalCode(label)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", label, err)
		}
		if got != want {
			t.Fatalf("thalCode(%q) = %d, want %d", label, got, want)
		}
	}
	if _, err := thalCode("Unknown"); err == nil {
		t.Fatal("expected error for unknown label")
	}
}

func TestFbsThreshold(t *testing.T) {
	if got := fbsFlag(120); got != 0 {
		t.Fatalf("fbs_raw=120 should derive 0, got %d", got)
	}
	if got := fbsFlag(121); got != 1 {
		t.Fatalf("fbs_raw=121 should derive 1, got %d", got)
	}
}

func TestEncodedDomains(t *testing.T) {
	obs := validObservation()
	obs.SexLabel = "Female"
	obs.ThalLabel = "Reversible defect"
	vec, err := obs.Encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sex := vec[1]; sex != 0 && sex != 1 {
		t.Fatalf("sex out of domain: %v", sex)
	}
	if thal := vec[12]; thal < 1 || thal > 3 {
		t.Fatalf("thal out of domain: %v", thal)
	}
	if fbs := vec[5]; fbs != 0 && fbs != 1 {
		t.Fatalf("fbs out of domain: %v", fbs)
	}
}

func TestEncodeRejectsUnknownLabel(t *testing.T) {
	obs := validObservation()
	obs.SexLabel = "Unknown"
	if _, err := obs.Encode(); err == nil {
		t.Fatal("expected encode to fail on invalid gender label")
	}
}
