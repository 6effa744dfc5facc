// Package steam implements the thermo.SteamTables collaborator with
// hardcoded saturation and superheated water property tables and
// linear interpolation between grid points.
package steam

import (
	"errors"
	"fmt"

	"github.com/san-kum/cyclelab/internal/thermo"
)

// ErrOutOfRange indicates a requested state outside the tabulated
// region.
var ErrOutOfRange = errors.New("steam: state outside table range")

type Tables struct{}

func NewTables() *Tables { return &Tables{} }

func lerp(x, x0, y0, x1, y1 float64) float64 {
	if x0 == x1 {
		return y0
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// saturationAt interpolates every saturation column at pressure p.
func saturationAt(p float64) (satRow, error) {
	first, last := saturation[0], saturation[len(saturation)-1]
	if p < first.p || p > last.p {
		return satRow{}, fmt.Errorf("%w: P=%.4g kPa outside saturation table (%.4g..%.4g kPa)", ErrOutOfRange, p, first.p, last.p)
	}
	for i := 0; i < len(saturation)-1; i++ {
		a, b := saturation[i], saturation[i+1]
		if p < a.p || p > b.p {
			continue
		}
		return satRow{
			p:   p,
			t:   lerp(p, a.p, a.t, b.p, b.t),
			vf:  lerp(p, a.p, a.vf, b.p, b.vf),
			vg:  lerp(p, a.p, a.vg, b.p, b.vg),
			hf:  lerp(p, a.p, a.hf, b.p, b.hf),
			hfg: lerp(p, a.p, a.hfg, b.p, b.hfg),
			sf:  lerp(p, a.p, a.sf, b.p, b.sf),
			sfg: lerp(p, a.p, a.sfg, b.p, b.sfg),
		}, nil
	}
	return last, nil
}

func (t *Tables) SaturatedLiquid(p float64) (thermo.SteamState, error) {
	sat, err := saturationAt(p)
	if err != nil {
		return thermo.SteamState{}, err
	}
	return thermo.SteamState{P: p, T: sat.t, H: sat.hf, S: sat.sf, V: sat.vf, X: 0}, nil
}

func (t *Tables) SaturatedVapor(p float64) (thermo.SteamState, error) {
	sat, err := saturationAt(p)
	if err != nil {
		return thermo.SteamState{}, err
	}
	return thermo.SteamState{P: p, T: sat.t, H: sat.hf + sat.hfg, S: sat.sf + sat.sfg, V: sat.vg, X: 1}, nil
}

// bracketColumns returns the superheated columns straddling p.
func bracketColumns(p float64) (shColumn, shColumn, error) {
	first, last := superheated[0], superheated[len(superheated)-1]
	if p < first.p || p > last.p {
		return shColumn{}, shColumn{}, fmt.Errorf("%w: P=%.4g kPa outside superheated table (%.4g..%.4g kPa)", ErrOutOfRange, p, first.p, last.p)
	}
	for i := 0; i < len(superheated)-1; i++ {
		if p >= superheated[i].p && p <= superheated[i+1].p {
			return superheated[i], superheated[i+1], nil
		}
	}
	return last, last, nil
}

// columnAt interpolates one pressure column at temperature tK. The
// saturated-vapor point anchors the column below its first grid row.
func columnAt(col shColumn, tK float64) (shRow, error) {
	sat, err := saturationAt(col.p)
	if err != nil {
		return shRow{}, err
	}
	if tK < sat.t {
		return shRow{}, fmt.Errorf("%w: T=%.4g K below saturation (%.4g K) at P=%.4g kPa", ErrOutOfRange, tK, sat.t, col.p)
	}
	rows := make([]shRow, 0, len(col.rows)+1)
	rows = append(rows, shRow{t: sat.t, h: sat.hf + sat.hfg, s: sat.sf + sat.sfg, v: sat.vg})
	rows = append(rows, col.rows...)

	if tK > rows[len(rows)-1].t {
		return shRow{}, fmt.Errorf("%w: T=%.4g K above table maximum (%.4g K) at P=%.4g kPa", ErrOutOfRange, tK, rows[len(rows)-1].t, col.p)
	}
	for i := 0; i < len(rows)-1; i++ {
		a, b := rows[i], rows[i+1]
		if tK < a.t || tK > b.t {
			continue
		}
		return shRow{
			t: tK,
			h: lerp(tK, a.t, a.h, b.t, b.h),
			s: lerp(tK, a.t, a.s, b.t, b.s),
			v: lerp(tK, a.t, a.v, b.t, b.v),
		}, nil
	}
	return rows[len(rows)-1], nil
}

func (t *Tables) Superheated(p, tK float64) (thermo.SteamState, error) {
	ca, cb, err := bracketColumns(p)
	if err != nil {
		return thermo.SteamState{}, err
	}
	ra, err := columnAt(ca, tK)
	if err != nil {
		return thermo.SteamState{}, err
	}
	rb, err := columnAt(cb, tK)
	if err != nil {
		return thermo.SteamState{}, err
	}
	return thermo.SteamState{
		P: p,
		T: tK,
		H: lerp(p, ca.p, ra.h, cb.p, rb.h),
		S: lerp(p, ca.p, ra.s, cb.p, rb.s),
		V: lerp(p, ca.p, ra.v, cb.p, rb.v),
		X: -1,
	}, nil
}

// superheatedByProp bisects temperature at fixed pressure until the
// selected property matches. Both h and s increase monotonically with
// temperature in the superheated region.
func (t *Tables) superheatedByProp(p, want float64, get func(thermo.SteamState) float64) (thermo.SteamState, error) {
	ca, cb, err := bracketColumns(p)
	if err != nil {
		return thermo.SteamState{}, err
	}
	satB, err := saturationAt(cb.p)
	if err != nil {
		return thermo.SteamState{}, err
	}
	lo := satB.t
	hi := ca.rows[len(ca.rows)-1].t
	if hb := cb.rows[len(cb.rows)-1].t; hb < hi {
		hi = hb
	}

	stLo, err := t.Superheated(p, lo)
	if err != nil {
		return thermo.SteamState{}, err
	}
	stHi, err := t.Superheated(p, hi)
	if err != nil {
		return thermo.SteamState{}, err
	}
	if want < get(stLo) || want > get(stHi) {
		return thermo.SteamState{}, fmt.Errorf("%w: property %.6g not bracketed at P=%.4g kPa", ErrOutOfRange, want, p)
	}

	for i := 0; i < 80; i++ {
		mid := (lo + hi) / 2
		st, err := t.Superheated(p, mid)
		if err != nil {
			return thermo.SteamState{}, err
		}
		if get(st) < want {
			lo = mid
		} else {
			hi = mid
		}
	}
	return t.Superheated(p, (lo+hi)/2)
}

func (t *Tables) AtEntropy(p, s float64) (thermo.SteamState, error) {
	sat, err := saturationAt(p)
	if err != nil {
		return thermo.SteamState{}, err
	}
	sg := sat.sf + sat.sfg
	if s <= sg {
		if s < sat.sf {
			return thermo.SteamState{}, fmt.Errorf("%w: s=%.4g kJ/kg.K below saturated liquid at P=%.4g kPa", ErrOutOfRange, s, p)
		}
		x := (s - sat.sf) / sat.sfg
		return thermo.SteamState{
			P: p,
			T: sat.t,
			H: sat.hf + x*sat.hfg,
			S: s,
			V: sat.vf + x*(sat.vg-sat.vf),
			X: x,
		}, nil
	}
	return t.superheatedByProp(p, s, func(st thermo.SteamState) float64 { return st.S })
}

func (t *Tables) AtEnthalpy(p, h float64) (thermo.SteamState, error) {
	sat, err := saturationAt(p)
	if err != nil {
		return thermo.SteamState{}, err
	}
	hg := sat.hf + sat.hfg
	if h <= hg {
		if h < sat.hf {
			return thermo.SteamState{}, fmt.Errorf("%w: h=%.4g kJ/kg below saturated liquid at P=%.4g kPa", ErrOutOfRange, h, p)
		}
		x := (h - sat.hf) / sat.hfg
		return thermo.SteamState{
			P: p,
			T: sat.t,
			H: h,
			S: sat.sf + x*sat.sfg,
			V: sat.vf + x*(sat.vg-sat.vf),
			X: x,
		}, nil
	}
	return t.superheatedByProp(p, h, func(st thermo.SteamState) float64 { return st.H })
}
