package cycles

import (
	"math"

	"github.com/san-kum/cyclelab/internal/thermo"
)

// Dual is the air-standard dual cycle: isentropic compression, heat
// addition split between a constant-volume leg (2→3) and a
// constant-pressure leg (3→4), isentropic expansion (4→5) and
// constant-volume rejection. The two heat legs carry equal amounts.
type Dual struct {
	gas thermo.Gas
}

func NewDual() *Dual {
	return &Dual{gas: thermo.Air}
}

func (d *Dual) Family() string { return "dual" }

func (d *Dual) Branches() []thermo.Branch {
	return []thermo.Branch{
		{
			Name:     "direct",
			Requires: []thermo.Field{thermo.FieldCompressionRatio, thermo.FieldP1, thermo.FieldT1, thermo.FieldP3},
			Eval:     d.solveDirect,
		},
		{
			Name:     "heat-input",
			Requires: []thermo.Field{thermo.FieldCompressionRatio, thermo.FieldP1, thermo.FieldT1, thermo.FieldHeatIn},
			Eval:     d.solveHeat,
		},
	}
}

// solveDirect fixes the constant-volume leg by the peak pressure:
// T3 = P3·T2/P2.
func (d *Dual) solveDirect(in thermo.Inputs) (*thermo.Result, error) {
	r := in.CompressionRatio.Val
	if err := positive(r, "r"); err != nil {
		return nil, err
	}
	if err := positive(in.P1.Val, "P1"); err != nil {
		return nil, err
	}
	t2 := in.T1.Val * math.Pow(r, d.gas.K-1)
	p2 := in.P1.Val * math.Pow(r, d.gas.K)
	t3 := in.P3.Val * t2 / p2
	return d.solveFrom(r, in.P1.Val, in.T1.Val, t2, p2, t3)
}

// solveHeat splits a given total heat input evenly between the two
// legs, consistent with the equal-leg assumption of the direct
// branch.
func (d *Dual) solveHeat(in thermo.Inputs) (*thermo.Result, error) {
	if in.HeatIn.Val <= 0 {
		return nil, &thermo.DegenerateError{Quantity: "q_in", Reason: "non-positive heat input"}
	}
	r := in.CompressionRatio.Val
	if err := positive(r, "r"); err != nil {
		return nil, err
	}
	if err := positive(in.P1.Val, "P1"); err != nil {
		return nil, err
	}
	t2 := in.T1.Val * math.Pow(r, d.gas.K-1)
	p2 := in.P1.Val * math.Pow(r, d.gas.K)
	t3 := t2 + (in.HeatIn.Val/2)/d.gas.Cv
	return d.solveFrom(r, in.P1.Val, in.T1.Val, t2, p2, t3)
}

func (d *Dual) solveFrom(r, p1, t1, t2, p2, t3 float64) (*thermo.Result, error) {
	k := d.gas.K
	v1 := d.gas.R * t1 / p1

	p3 := p2 * t3 / t2
	qin1 := d.gas.Cv * (t3 - t2)

	// The pressure-leg heat matches the volume-leg heat.
	p4 := p3
	qin2 := qin1
	t4 := qin2/d.gas.Cp + t3
	v4 := d.gas.R * t4 / p4

	v5 := v1
	t5 := t4 * math.Pow(v4/v5, k-1)
	p5 := p4 * math.Pow(v4/v5, k)

	qin := qin1 + qin2
	qout := d.gas.Cv * (t5 - t1)
	wnet := qin - qout
	if qin <= 0 {
		return nil, &thermo.DegenerateError{Quantity: "q_in", Reason: "non-positive heat input"}
	}
	eff := wnet / qin * 100

	res := thermo.NewResult()
	res.Set("r", r)
	res.Set("T1", t1)
	res.Set("T2", t2)
	res.Set("T3", t3)
	res.Set("T4", t4)
	res.Set("T5", t5)
	res.Set("P1", p1)
	res.Set("P2", p2)
	res.Set("P3", p3)
	res.Set("P4", p4)
	res.Set("P5", p5)
	res.Set("q_in", qin)
	res.Set("q_out", qout)
	res.Set("w_net", wnet)
	res.Set("eff", eff)
	return res, nil
}
