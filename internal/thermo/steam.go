package thermo

// SteamState is one resolved water/steam state.
type SteamState struct {
	P float64 // pressure [kPa]
	T float64 // temperature [K]
	H float64 // specific enthalpy [kJ/kg]
	S float64 // specific entropy [kJ/kg.K]
	V float64 // specific volume [m3/kg]
	X float64 // vapor quality; -1 outside the saturation dome
}

// SteamTables is the external water/steam property collaborator used
// by the Rankine family. Implementations are synchronous and
// side-effect free; a state the tables cannot resolve returns an
// error, never a numeric result.
type SteamTables interface {
	// SaturatedLiquid resolves the x=0 state at pressure p [kPa].
	SaturatedLiquid(p float64) (SteamState, error)

	// SaturatedVapor resolves the x=1 state at pressure p [kPa].
	SaturatedVapor(p float64) (SteamState, error)

	// Superheated resolves the state at pressure p [kPa] and
	// temperature t [K] above saturation.
	Superheated(p, t float64) (SteamState, error)

	// AtEntropy resolves the state at pressure p [kPa] with specific
	// entropy s, inside or above the dome.
	AtEntropy(p, s float64) (SteamState, error)

	// AtEnthalpy resolves the state at pressure p [kPa] with specific
	// enthalpy h, inside or above the dome.
	AtEnthalpy(p, h float64) (SteamState, error)
}
