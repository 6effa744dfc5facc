// Package cycles provides the solver for each thermodynamic cycle
// family.
//
// Each family implements [thermo.Solver], declaring an ordered list of
// input-combination branches:
//
//   - [Otto]: constant-volume heat addition, air standard
//   - [Diesel]: constant-pressure heat addition, air standard
//   - [Dual]: mixed constant-volume/constant-pressure heat addition
//   - [Brayton]: gas turbine cycle with isentropic device efficiencies
//   - [Rankine]: steam cycle backed by a [thermo.SteamTables] oracle
//
// Dispatch is feed-forward: the first branch whose prerequisite
// fields are all present is evaluated and its closed-form equation
// set runs once, with no iteration or reconciliation between
// branches.
package cycles
