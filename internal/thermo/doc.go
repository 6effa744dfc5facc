// Package thermo provides the core primitives for single-shot
// thermodynamic cycle solving.
//
// The package defines the fundamental types shared by every cycle
// family:
//
//   - [Scalar]: an optional input value with an explicit absent marker
//   - [Inputs]: the sparse record of known quantities for one solve
//   - [Result]: the append-only mapping of derived quantities
//   - [Branch]: one named input-combination pathway with its
//     prerequisite field set and equation set
//   - [Solver]: a cycle family exposing its ordered branch list
//   - [SteamTables]: the external water/steam property collaborator
//
// # Example
//
//	in := thermo.Inputs{
//	    CompressionRatio: thermo.Known(8),
//	    T1:               thermo.Known(300),
//	    HeatIn:           thermo.Known(800),
//	}
//	res, err := thermo.Solve(cycles.NewOtto(), in)
//
// # Thread Safety
//
// Solvers are stateless and safe for concurrent use; each call to
// [Solve] builds a fresh Result and shares only immutable property
// constants.
package thermo
