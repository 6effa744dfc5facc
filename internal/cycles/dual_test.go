package cycles

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/cyclelab/internal/thermo"
)

func TestDualDirectBranch(t *testing.T) {
	in := thermo.Inputs{
		CompressionRatio: thermo.Known(14),
		P1:               thermo.Known(100),
		T1:               thermo.Known(300),
		P3:               thermo.Known(7000),
	}

	res, err := thermo.Solve(NewDual(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t2 := mustGet(t, res, "T2")
	p2 := mustGet(t, res, "P2")
	t3 := mustGet(t, res, "T3")

	// Constant-volume pressure rise fixes T3.
	if math.Abs(t3-7000*t2/p2) > 1e-9 {
		t.Errorf("T3: expected %f, got %f", 7000*t2/p2, t3)
	}

	// Constant-pressure leg holds peak pressure.
	p4 := mustGet(t, res, "P4")
	if p4 != 7000 {
		t.Errorf("P4: expected 7000, got %f", p4)
	}

	t4 := mustGet(t, res, "T4")
	if t4 <= t3 {
		t.Errorf("expected T4 > T3, got %f <= %f", t4, t3)
	}

	eff := mustGet(t, res, "eff")
	if eff <= 0 || eff >= 100 {
		t.Errorf("efficiency out of range: %f", eff)
	}
	if w := mustGet(t, res, "w_net"); w <= 0 {
		t.Errorf("expected positive net work, got %f", w)
	}
}

func TestDualHeatInputConsistency(t *testing.T) {
	direct := thermo.Inputs{
		CompressionRatio: thermo.Known(14),
		P1:               thermo.Known(100),
		T1:               thermo.Known(300),
		P3:               thermo.Known(7000),
	}
	res1, err := thermo.Solve(NewDual(), direct)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Feeding the total heat back through the heat branch must land
	// on the same cycle.
	heat := thermo.Inputs{
		CompressionRatio: thermo.Known(14),
		P1:               thermo.Known(100),
		T1:               thermo.Known(300),
		HeatIn:           thermo.Known(mustGet(t, res1, "q_in")),
	}
	res2, err := thermo.Solve(NewDual(), heat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"T3", "T4", "T5", "P3", "eff", "w_net"} {
		a, b := mustGet(t, res1, name), mustGet(t, res2, name)
		if math.Abs(a-b) > 1e-9*math.Max(math.Abs(a), 1) {
			t.Errorf("%s: heat branch mismatch %g vs %g", name, a, b)
		}
	}
}

func TestDualNoPressureRiseDegenerate(t *testing.T) {
	// Peak pressure at the compression pressure leaves no room for
	// constant-volume heat addition.
	p2 := 100 * math.Pow(14, 1.4)
	in := thermo.Inputs{
		CompressionRatio: thermo.Known(14),
		P1:               thermo.Known(100),
		T1:               thermo.Known(300),
		P3:               thermo.Known(p2),
	}
	_, err := thermo.Solve(NewDual(), in)
	if !errors.Is(err, thermo.ErrDegenerate) {
		t.Errorf("expected ErrDegenerate, got %v", err)
	}
}

func TestDualInsufficientInputs(t *testing.T) {
	in := thermo.Inputs{
		CompressionRatio: thermo.Known(14),
		T1:               thermo.Known(300),
	}
	_, err := thermo.Solve(NewDual(), in)
	if !errors.Is(err, thermo.ErrInsufficientInputs) {
		t.Errorf("expected ErrInsufficientInputs, got %v", err)
	}
}
