package cycles

import (
	"fmt"

	"github.com/san-kum/cyclelab/internal/thermo"
)

// Rankine is the simple steam cycle: saturated liquid at the
// condenser, pump, boiler/superheater, turbine. State properties come
// from an external steam table oracle; pump work uses the
// incompressible-liquid relation w_p = vf·ΔP/η_p.
type Rankine struct {
	tables thermo.SteamTables
}

func NewRankine(tables thermo.SteamTables) *Rankine {
	return &Rankine{tables: tables}
}

func (r *Rankine) Family() string { return "rankine" }

func (r *Rankine) Branches() []thermo.Branch {
	return []thermo.Branch{
		{
			Name: "power-mass-flow",
			Requires: []thermo.Field{
				thermo.FieldCondenserP, thermo.FieldBoilerP, thermo.FieldT3,
				thermo.FieldNetPower, thermo.FieldMassFlow,
			},
			Eval: r.solvePower,
		},
		{
			Name:     "direct",
			Requires: []thermo.Field{thermo.FieldCondenserP, thermo.FieldBoilerP, thermo.FieldT3},
			Eval:     r.solveDirect,
		},
	}
}

// states resolves the fixed part of the cycle: condenser outlet,
// pump work, and turbine inlet with its isentropic exit state.
func (r *Rankine) states(in thermo.Inputs) (st1, st3, st4s thermo.SteamState, wp float64, err error) {
	pc, pb := in.CondenserP.Val, in.BoilerP.Val
	if err = positive(pc, "P_cond"); err != nil {
		return
	}
	if err = positive(pb, "P_boil"); err != nil {
		return
	}
	var ep float64
	if ep, err = etaFraction(in.EtaPump, "eta_p"); err != nil {
		return
	}

	st1, lerr := r.tables.SaturatedLiquid(pc)
	if lerr != nil {
		err = &thermo.LookupError{State: fmt.Sprintf("saturated liquid at P=%.4g kPa", pc), Wrapped: lerr}
		return
	}
	wp = st1.V * (pb - pc) / ep

	st3, lerr = r.tables.Superheated(pb, in.T3.Val)
	if lerr != nil {
		err = &thermo.LookupError{State: fmt.Sprintf("P=%.4g kPa T=%.4g K", pb, in.T3.Val), Wrapped: lerr}
		return
	}

	st4s, lerr = r.tables.AtEntropy(pc, st3.S)
	if lerr != nil {
		err = &thermo.LookupError{State: fmt.Sprintf("P=%.4g kPa s=%.4g kJ/kg.K", pc, st3.S), Wrapped: lerr}
	}
	return
}

func (r *Rankine) solveDirect(in thermo.Inputs) (*thermo.Result, error) {
	st1, st3, st4s, wp, err := r.states(in)
	if err != nil {
		return nil, err
	}
	et, err := etaFraction(in.EtaTurbine, "eta_t")
	if err != nil {
		return nil, err
	}

	wt := et * (st3.H - st4s.H)
	h4 := st3.H - wt
	res, err := r.assemble(in, st1, st3, st4s, h4, wp, wt)
	if err != nil {
		return nil, err
	}
	if in.EtaTurbine.Known {
		res.Set("eta_t", in.EtaTurbine.Val)
	}
	if in.EtaPump.Known {
		res.Set("eta_p", in.EtaPump.Val)
	}

	wnet := wt - wp
	switch {
	case in.NetPower.Known && !in.MassFlow.Known:
		if wnet <= 0 {
			return nil, &thermo.DegenerateError{Quantity: "w_net", Reason: "non-positive net work"}
		}
		res.Set("P_net", in.NetPower.Val)
		res.Set("m_dot", in.NetPower.Val/wnet)
	case in.MassFlow.Known && !in.NetPower.Known:
		res.Set("m_dot", in.MassFlow.Val)
		res.Set("P_net", in.MassFlow.Val*wnet)
	}
	return res, nil
}

// solvePower derives the specific net work from shaft power and mass
// flow, then back-solves the turbine efficiency from it.
func (r *Rankine) solvePower(in thermo.Inputs) (*thermo.Result, error) {
	if err := positive(in.MassFlow.Val, "m_dot"); err != nil {
		return nil, err
	}
	st1, st3, st4s, wp, err := r.states(in)
	if err != nil {
		return nil, err
	}

	wnet := in.NetPower.Val / in.MassFlow.Val
	wt := wnet + wp
	drop := st3.H - st4s.H
	if drop <= 0 {
		return nil, &thermo.DegenerateError{Quantity: "eta_t", Reason: "zero isentropic enthalpy drop"}
	}
	h4 := st3.H - wt

	res, err := r.assemble(in, st1, st3, st4s, h4, wp, wt)
	if err != nil {
		return nil, err
	}
	res.Set("eta_t", wt/drop*100)
	if in.EtaPump.Known {
		res.Set("eta_p", in.EtaPump.Val)
	}
	res.Set("m_dot", in.MassFlow.Val)
	res.Set("P_net", in.NetPower.Val)
	return res, nil
}

func (r *Rankine) assemble(in thermo.Inputs, st1, st3, st4s thermo.SteamState, h4, wp, wt float64) (*thermo.Result, error) {
	st4, lerr := r.tables.AtEnthalpy(st1.P, h4)
	if lerr != nil {
		return nil, &thermo.LookupError{State: fmt.Sprintf("P=%.4g kPa h=%.4g kJ/kg", st1.P, h4), Wrapped: lerr}
	}

	h2 := st1.H + wp
	qin := st3.H - h2
	qout := h4 - st1.H
	wnet := wt - wp
	if qin <= 0 {
		return nil, &thermo.DegenerateError{Quantity: "q_in", Reason: "non-positive heat input"}
	}
	eff := wnet / qin * 100

	res := thermo.NewResult()
	res.Set("P1", st1.P)
	res.Set("T1", st1.T)
	res.Set("h1", st1.H)
	res.Set("s1", st1.S)
	res.Set("v1", st1.V)
	res.Set("h2", h2)
	res.Set("P3", st3.P)
	res.Set("T3", st3.T)
	res.Set("h3", st3.H)
	res.Set("s3", st3.S)
	res.Set("h4s", st4s.H)
	res.Set("T4", st4.T)
	res.Set("h4", st4.H)
	res.Set("s4", st4.S)
	if st4.X >= 0 {
		res.Set("x4", st4.X)
	}
	res.Set("w_p", wp)
	res.Set("w_t", wt)
	res.Set("w_net", wnet)
	res.Set("q_in", qin)
	res.Set("q_out", qout)
	res.Set("eff", eff)
	return res, nil
}
