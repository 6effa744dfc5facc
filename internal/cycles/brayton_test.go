package cycles

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/cyclelab/internal/thermo"
)

func TestBraytonIdealDirectBranch(t *testing.T) {
	in := thermo.Inputs{
		PressureRatio: thermo.Known(10),
		T1:            thermo.Known(300),
		T3:            thermo.Known(1200),
	}

	res, err := thermo.Solve(NewBrayton(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		want float64
		tol  float64
	}{
		{"T2s", 579.21, 0.01},
		{"T4s", 621.54, 0.01},
		{"eff", 48.21, 0.01},
	}
	for _, tt := range tests {
		got := mustGet(t, res, tt.name)
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("%s: expected %.2f, got %.4f", tt.name, tt.want, got)
		}
	}

	// With no device efficiencies the actual states are the
	// isentropic ones.
	if a, s := mustGet(t, res, "T2a"), mustGet(t, res, "T2s"); a != s {
		t.Errorf("expected T2a == T2s, got %f and %f", a, s)
	}
	if a, s := mustGet(t, res, "T4a"), mustGet(t, res, "T4s"); a != s {
		t.Errorf("expected T4a == T4s, got %f and %f", a, s)
	}
}

func TestBraytonUnityEfficiencyMatchesIdeal(t *testing.T) {
	ideal := thermo.Inputs{
		PressureRatio: thermo.Known(10),
		T1:            thermo.Known(300),
		T3:            thermo.Known(1200),
	}
	unity := ideal
	unity.EtaCompressor = thermo.Known(100)
	unity.EtaTurbine = thermo.Known(100)

	res1, err := thermo.Solve(NewBrayton(), ideal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res2, err := thermo.Solve(NewBrayton(), unity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range res1.Names() {
		a, _ := res1.Get(name)
		b, ok := res2.Get(name)
		if !ok {
			t.Errorf("%s missing from unity-efficiency result", name)
			continue
		}
		if a != b {
			t.Errorf("%s: expected identical values, got %g and %g", name, a, b)
		}
	}
}

func TestBraytonDeviceEfficiencies(t *testing.T) {
	in := thermo.Inputs{
		PressureRatio: thermo.Known(10),
		T1:            thermo.Known(300),
		T3:            thermo.Known(1200),
		EtaCompressor: thermo.Known(85),
		EtaTurbine:    thermo.Known(90),
	}

	res, err := thermo.Solve(NewBrayton(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t2s := mustGet(t, res, "T2s")
	t2a := mustGet(t, res, "T2a")
	if math.Abs(t2a-(300+(t2s-300)/0.85)) > 1e-9 {
		t.Errorf("T2a: expected %f, got %f", 300+(t2s-300)/0.85, t2a)
	}

	t4s := mustGet(t, res, "T4s")
	t4a := mustGet(t, res, "T4a")
	if math.Abs(t4a-(1200-(1200-t4s)*0.90)) > 1e-9 {
		t.Errorf("T4a: expected %f, got %f", 1200-(1200-t4s)*0.90, t4a)
	}

	if got := mustGet(t, res, "eta_c"); got != 85 {
		t.Errorf("eta_c: expected 85, got %f", got)
	}
	if got := mustGet(t, res, "eta_t"); got != 90 {
		t.Errorf("eta_t: expected 90, got %f", got)
	}
}

func TestBraytonExhaustTemperatureBacksolvesEta(t *testing.T) {
	in := thermo.Inputs{
		PressureRatio: thermo.Known(10),
		T1:            thermo.Known(300),
		T3:            thermo.Known(1200),
		T4:            thermo.Known(680),
	}

	res, err := thermo.Solve(NewBrayton(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t4s := mustGet(t, res, "T4s")
	want := (1200 - 680) / (1200 - t4s) * 100
	if got := mustGet(t, res, "eta_t"); math.Abs(got-want) > 1e-9 {
		t.Errorf("eta_t: expected %f, got %f", want, got)
	}
}

func TestBraytonMassFlowDerivesPower(t *testing.T) {
	in := thermo.Inputs{
		PressureRatio: thermo.Known(10),
		T1:            thermo.Known(300),
		T3:            thermo.Known(1200),
		MassFlow:      thermo.Known(10),
	}

	res, err := thermo.Solve(NewBrayton(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wnet := mustGet(t, res, "w_net")
	if got := mustGet(t, res, "P_net"); math.Abs(got-10*wnet) > 1e-9 {
		t.Errorf("P_net: expected %f, got %f", 10*wnet, got)
	}
}

func TestBraytonPowerMassFlowBranch(t *testing.T) {
	// Construct shaft power for an 85% efficient compressor feeding an
	// ideal turbine, then check the branch recovers that efficiency.
	k, cp := 1.4, 1.005
	t2s := 300 * math.Pow(10, (k-1)/k)
	t4s := 1200 / math.Pow(10, (k-1)/k)
	wt := cp * (1200 - t4s)
	wc := cp * (t2s - 300) / 0.85
	pnet := 10 * (wt - wc)

	in := thermo.Inputs{
		PressureRatio: thermo.Known(10),
		T1:            thermo.Known(300),
		T3:            thermo.Known(1200),
		NetPower:      thermo.Known(pnet),
		MassFlow:      thermo.Known(10),
	}

	res, err := thermo.Solve(NewBrayton(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := mustGet(t, res, "eta_c"); math.Abs(got-85) > 1e-9 {
		t.Errorf("eta_c: expected 85, got %f", got)
	}
	if got := mustGet(t, res, "w_net"); math.Abs(got-pnet/10) > 1e-9 {
		t.Errorf("w_net: expected %f, got %f", pnet/10, got)
	}
}

func TestBraytonPowerExceedsTurbineDegenerate(t *testing.T) {
	in := thermo.Inputs{
		PressureRatio: thermo.Known(10),
		T1:            thermo.Known(300),
		T3:            thermo.Known(1200),
		NetPower:      thermo.Known(1e6),
		MassFlow:      thermo.Known(1),
	}
	_, err := thermo.Solve(NewBrayton(), in)
	if !errors.Is(err, thermo.ErrDegenerate) {
		t.Errorf("expected ErrDegenerate, got %v", err)
	}
}

func TestBraytonPressureInference(t *testing.T) {
	in := thermo.Inputs{
		P1: thermo.Known(100),
		P3: thermo.Known(1000),
		T1: thermo.Known(300),
		T3: thermo.Known(1200),
	}

	res, err := thermo.Solve(NewBrayton(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := mustGet(t, res, "rp"); math.Abs(got-10) > 1e-12 {
		t.Errorf("rp: expected 10, got %f", got)
	}
}

func TestBraytonHeatInputBranch(t *testing.T) {
	in := thermo.Inputs{
		PressureRatio: thermo.Known(10),
		T1:            thermo.Known(300),
		HeatIn:        thermo.Known(623.89),
	}

	res, err := thermo.Solve(NewBrayton(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t2a := mustGet(t, res, "T2a")
	t3 := mustGet(t, res, "T3")
	if math.Abs(t3-(t2a+623.89/1.005)) > 1e-9 {
		t.Errorf("T3: expected %f, got %f", t2a+623.89/1.005, t3)
	}
	if got := mustGet(t, res, "eff"); math.Abs(got-48.21) > 0.01 {
		t.Errorf("eff: expected 48.21, got %f", got)
	}
}

func TestBraytonInsufficientInputs(t *testing.T) {
	in := thermo.Inputs{PressureRatio: thermo.Known(10)}
	_, err := thermo.Solve(NewBrayton(), in)
	if !errors.Is(err, thermo.ErrInsufficientInputs) {
		t.Errorf("expected ErrInsufficientInputs, got %v", err)
	}
}
