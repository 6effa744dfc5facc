package cycles

import (
	"math"

	"github.com/san-kum/cyclelab/internal/thermo"
)

// Otto is the air-standard Otto cycle: isentropic compression,
// constant-volume heat addition, isentropic expansion, constant-volume
// heat rejection.
type Otto struct {
	gas thermo.Gas
}

func NewOtto() *Otto {
	return &Otto{gas: thermo.Air}
}

func (o *Otto) Family() string { return "otto" }

func (o *Otto) Branches() []thermo.Branch {
	return []thermo.Branch{
		{
			Name:     "peak-temperature",
			Requires: []thermo.Field{thermo.FieldCompressionRatio, thermo.FieldT1, thermo.FieldT3},
			Eval:     o.solvePeakTemp,
		},
		{
			Name:     "pressure-inference",
			Requires: []thermo.Field{thermo.FieldP1, thermo.FieldP3, thermo.FieldT1, thermo.FieldT3},
			Eval:     o.solvePressure,
		},
		{
			Name:     "heat-input",
			Requires: []thermo.Field{thermo.FieldCompressionRatio, thermo.FieldT1, thermo.FieldHeatIn},
			Eval:     o.solveHeat,
		},
	}
}

func (o *Otto) solvePeakTemp(in thermo.Inputs) (*thermo.Result, error) {
	return o.solveFrom(in.CompressionRatio.Val, in.T1.Val, in.T3.Val, in.P1)
}

// solvePressure back-solves the compression ratio from the
// constant-volume pressure relation P3/P1 = r·T3/T1 and replays the
// peak-temperature equations with it.
func (o *Otto) solvePressure(in thermo.Inputs) (*thermo.Result, error) {
	if err := positive(in.P1.Val, "P1"); err != nil {
		return nil, err
	}
	if err := positive(in.T3.Val, "T3"); err != nil {
		return nil, err
	}
	r := (in.P3.Val / in.P1.Val) * (in.T1.Val / in.T3.Val)
	return o.solveFrom(r, in.T1.Val, in.T3.Val, in.P1)
}

// solveHeat derives the peak temperature from the constant-volume
// heat addition T3 = T2 + Qin/cv.
func (o *Otto) solveHeat(in thermo.Inputs) (*thermo.Result, error) {
	if in.HeatIn.Val <= 0 {
		return nil, &thermo.DegenerateError{Quantity: "q_in", Reason: "non-positive heat input"}
	}
	r := in.CompressionRatio.Val
	if err := positive(r, "r"); err != nil {
		return nil, err
	}
	t2 := in.T1.Val * math.Pow(r, o.gas.K-1)
	t3 := t2 + in.HeatIn.Val/o.gas.Cv
	return o.solveFrom(r, in.T1.Val, t3, in.P1)
}

func (o *Otto) solveFrom(r, t1, t3 float64, p1 thermo.Scalar) (*thermo.Result, error) {
	if err := positive(r, "r"); err != nil {
		return nil, err
	}
	k := o.gas.K

	t2 := t1 * math.Pow(r, k-1)
	t4 := t3 / math.Pow(r, k-1)

	qin := o.gas.Cv * (t3 - t2)
	qout := o.gas.Cv * (t4 - t1)
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
	if p1.Known {
		if err := positive(p1.Val, "P1"); err != nil {
			return nil, err
		}
		p2 := p1.Val * math.Pow(r, k)
		p3 := p2 * t3 / t2
		p4 := p1.Val * t4 / t1
		res.Set("P1", p1.Val)
		res.Set("P2", p2)
		res.Set("P3", p3)
		res.Set("P4", p4)
	}
	res.Set("q_in", qin)
	res.Set("q_out", qout)
	res.Set("w_net", wnet)
	res.Set("eff", eff)
	return res, nil
}
