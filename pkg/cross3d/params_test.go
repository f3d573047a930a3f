package cross3d

import "testing"

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.InclinationThresholdDeg != 35.0 {
		t.Errorf("InclinationThresholdDeg = %v, want 35.0", p.InclinationThresholdDeg)
	}
	if p.BendSuppressSq != 100 {
		t.Errorf("BendSuppressSq = %v, want 100", p.BendSuppressSq)
	}
}

func TestLoadParamsEmptySource(t *testing.T) {
	p, err := LoadParams("")
	if err != nil {
		t.Fatalf("LoadParams(\"\") error: %v", err)
	}
	if p != DefaultParams() {
		t.Errorf("LoadParams(\"\") = %+v, want defaults", p)
	}

	p, err = LoadParams("   \n\t")
	if err != nil {
		t.Fatalf("LoadParams(whitespace) error: %v", err)
	}
	if p != DefaultParams() {
		t.Errorf("LoadParams(whitespace) = %+v, want defaults", p)
	}
}

func TestLoadParamsOverridesBoth(t *testing.T) {
	p, err := LoadParams(`(tunables "inclination-deg" 40.0 "bend-suppress-sq" 200)`)
	if err != nil {
		t.Fatalf("LoadParams error: %v", err)
	}
	if p.InclinationThresholdDeg != 40.0 {
		t.Errorf("InclinationThresholdDeg = %v, want 40.0", p.InclinationThresholdDeg)
	}
	if p.BendSuppressSq != 200 {
		t.Errorf("BendSuppressSq = %v, want 200", p.BendSuppressSq)
	}
}

func TestLoadParamsPartialOverrideKeepsOtherDefault(t *testing.T) {
	p, err := LoadParams(`(tunables "inclination-deg" 50.0)`)
	if err != nil {
		t.Fatalf("LoadParams error: %v", err)
	}
	if p.InclinationThresholdDeg != 50.0 {
		t.Errorf("InclinationThresholdDeg = %v, want 50.0", p.InclinationThresholdDeg)
	}
	if p.BendSuppressSq != 100 {
		t.Errorf("BendSuppressSq = %v, want unchanged default 100", p.BendSuppressSq)
	}
}

func TestLoadParamsMalformedScript(t *testing.T) {
	if _, err := LoadParams(`(tunables "inclination-deg"`); err == nil {
		t.Fatal("expected error for malformed script")
	}
}

func TestLoadParamsNonNumericValue(t *testing.T) {
	if _, err := LoadParams(`(tunables "inclination-deg" "not-a-number")`); err == nil {
		t.Fatal("expected error for non-numeric tunable value")
	}
}
