package thermo

// Gas holds the property constants of a working fluid. Values are
// fixed at construction and never mutated.
type Gas struct {
	K  float64 // specific heat ratio cp/cv
	Cp float64 // specific heat at constant pressure [kJ/kg.K]
	Cv float64 // specific heat at constant volume [kJ/kg.K]
	R  float64 // gas constant [kJ/kg.K]
}

// Air at standard cold-air assumptions.
var Air = Gas{K: 1.4, Cp: 1.005, Cv: 0.718, R: 0.2871}
