package cycles

import (
	"math"

	"github.com/san-kum/cyclelab/internal/thermo"
)

// Diesel is the air-standard Diesel cycle: isentropic compression,
// constant-pressure heat addition up to the cutoff ratio, isentropic
// expansion, constant-volume heat rejection.
type Diesel struct {
	gas thermo.Gas
}

func NewDiesel() *Diesel {
	return &Diesel{gas: thermo.Air}
}

func (d *Diesel) Family() string { return "diesel" }

func (d *Diesel) Branches() []thermo.Branch {
	return []thermo.Branch{
		{
			Name:     "direct",
			Requires: []thermo.Field{thermo.FieldCompressionRatio, thermo.FieldP1, thermo.FieldT1, thermo.FieldT3},
			Eval:     d.solveDirect,
		},
		{
			Name:     "pressure-inference",
			Requires: []thermo.Field{thermo.FieldP1, thermo.FieldT1, thermo.FieldP3, thermo.FieldT3},
			Eval:     d.solvePressure,
		},
		{
			Name:     "heat-input",
			Requires: []thermo.Field{thermo.FieldCompressionRatio, thermo.FieldP1, thermo.FieldT1, thermo.FieldHeatIn},
			Eval:     d.solveHeat,
		},
	}
}

func (d *Diesel) solveDirect(in thermo.Inputs) (*thermo.Result, error) {
	return d.solveFrom(in.CompressionRatio.Val, in.P1.Val, in.T1.Val, in.T3.Val)
}

// solvePressure back-solves the compression ratio from the isentropic
// compression relation P3/P1 = r^k and replays the direct branch.
func (d *Diesel) solvePressure(in thermo.Inputs) (*thermo.Result, error) {
	if err := positive(in.P1.Val, "P1"); err != nil {
		return nil, err
	}
	if err := positive(in.P3.Val, "P3"); err != nil {
		return nil, err
	}
	r := math.Pow(in.P3.Val/in.P1.Val, 1/d.gas.K)
	return d.solveFrom(r, in.P1.Val, in.T1.Val, in.T3.Val)
}

// solveHeat derives the peak temperature from the constant-pressure
// heat addition T3 = T2 + Qin/cp.
func (d *Diesel) solveHeat(in thermo.Inputs) (*thermo.Result, error) {
	if in.HeatIn.Val <= 0 {
		return nil, &thermo.DegenerateError{Quantity: "q_in", Reason: "non-positive heat input"}
	}
	r := in.CompressionRatio.Val
	if err := positive(r, "r"); err != nil {
		return nil, err
	}
	t2 := in.T1.Val * math.Pow(r, d.gas.K-1)
	t3 := t2 + in.HeatIn.Val/d.gas.Cp
	return d.solveFrom(r, in.P1.Val, in.T1.Val, t3)
}

func (d *Diesel) solveFrom(r, p1, t1, t3 float64) (*thermo.Result, error) {
	if err := positive(r, "r"); err != nil {
		return nil, err
	}
	if err := positive(p1, "P1"); err != nil {
		return nil, err
	}
	k := d.gas.K

	v1 := d.gas.R * t1 / p1
	v2 := v1 / r
	t2 := t1 * math.Pow(r, k-1)
	p2 := p1 * math.Pow(r, k)
	p3 := p2
	v3 := d.gas.R * t3 / p3
	rc := v3 / v2

	t4 := t3 * math.Pow(v3/v1, k-1)
	p4 := p3 * math.Pow(v3/v1, k)

	qin := d.gas.Cp * (t3 - t2)
	qout := d.gas.Cv * (t4 - t1)
	wnet := qin - qout
	if qin <= 0 {
		return nil, &thermo.DegenerateError{Quantity: "q_in", Reason: "non-positive heat input"}
	}
	eff := wnet / qin * 100

	res := thermo.NewResult()
	res.Set("r", r)
	res.Set("rc", rc)
	res.Set("T1", t1)
	res.Set("T2", t2)
	res.Set("T3", t3)
	res.Set("T4", t4)
	res.Set("P1", p1)
	res.Set("P2", p2)
	res.Set("P3", p3)
	res.Set("P4", p4)
	res.Set("q_in", qin)
	res.Set("q_out", qout)
	res.Set("w_net", wnet)
	res.Set("eff", eff)
	return res, nil
}
