package cycles

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/cyclelab/internal/thermo"
)

func TestDieselDirectBranch(t *testing.T) {
	in := thermo.Inputs{
		CompressionRatio: thermo.Known(18),
		P1:               thermo.Known(100),
		T1:               thermo.Known(300),
		T3:               thermo.Known(2000),
	}

	res, err := thermo.Solve(NewDiesel(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t2 := mustGet(t, res, "T2")
	wantT2 := 300 * math.Pow(18, 0.4)
	if math.Abs(t2-wantT2) > 1e-9 {
		t.Errorf("T2: expected %f, got %f", wantT2, t2)
	}

	// Combustion at constant pressure.
	p2 := mustGet(t, res, "P2")
	p3 := mustGet(t, res, "P3")
	if p2 != p3 {
		t.Errorf("expected P2 == P3, got %f and %f", p2, p3)
	}

	rc := mustGet(t, res, "rc")
	if math.Abs(rc-2000/wantT2) > 1e-9 {
		t.Errorf("rc: expected %f, got %f", 2000/wantT2, rc)
	}

	eff := mustGet(t, res, "eff")
	if eff <= 0 || eff >= 100 {
		t.Errorf("efficiency out of range: %f", eff)
	}
}

func TestDieselPressureInferenceRoundTrip(t *testing.T) {
	direct := thermo.Inputs{
		CompressionRatio: thermo.Known(18),
		P1:               thermo.Known(100),
		T1:               thermo.Known(300),
		T3:               thermo.Known(2000),
	}
	res1, err := thermo.Solve(NewDiesel(), direct)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inferred := thermo.Inputs{
		P1: thermo.Known(100),
		P3: thermo.Known(mustGet(t, res1, "P3")),
		T1: thermo.Known(300),
		T3: thermo.Known(2000),
	}
	res2, err := thermo.Solve(NewDiesel(), inferred)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := mustGet(t, res2, "r")
	if math.Abs(r-18) > 18*1e-9 {
		t.Errorf("inferred r: expected 18, got %.12f", r)
	}

	for _, name := range res1.Names() {
		a, _ := res1.Get(name)
		b, ok := res2.Get(name)
		if !ok {
			t.Errorf("%s missing from inferred result", name)
			continue
		}
		if math.Abs(a-b) > 1e-9*math.Max(math.Abs(a), 1) {
			t.Errorf("%s: round trip mismatch %g vs %g", name, a, b)
		}
	}
}

func TestDieselHeatInputBranch(t *testing.T) {
	in := thermo.Inputs{
		CompressionRatio: thermo.Known(18),
		P1:               thermo.Known(100),
		T1:               thermo.Known(300),
		HeatIn:           thermo.Known(1300),
	}

	res, err := thermo.Solve(NewDiesel(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t2 := mustGet(t, res, "T2")
	t3 := mustGet(t, res, "T3")
	if math.Abs(t3-(t2+1300/1.005)) > 1e-9 {
		t.Errorf("T3: expected %f, got %f", t2+1300/1.005, t3)
	}
}

func TestDieselNoCombustionDegenerate(t *testing.T) {
	// Peak temperature at the compression temperature means no heat added.
	t2 := 300 * math.Pow(18, 0.4)
	in := thermo.Inputs{
		CompressionRatio: thermo.Known(18),
		P1:               thermo.Known(100),
		T1:               thermo.Known(300),
		T3:               thermo.Known(t2),
	}
	_, err := thermo.Solve(NewDiesel(), in)
	if !errors.Is(err, thermo.ErrDegenerate) {
		t.Errorf("expected ErrDegenerate, got %v", err)
	}
}

func TestDieselInsufficientInputs(t *testing.T) {
	in := thermo.Inputs{T1: thermo.Known(300), T3: thermo.Known(2000)}
	_, err := thermo.Solve(NewDiesel(), in)
	if !errors.Is(err, thermo.ErrInsufficientInputs) {
		t.Errorf("expected ErrInsufficientInputs, got %v", err)
	}
}
