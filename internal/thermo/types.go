package thermo

// Scalar is an optional input value. Known distinguishes "not
// provided" from a legitimate zero physical value.
type Scalar struct {
	Val   float64
	Known bool
}

// Known wraps a value as a provided input.
func Known(v float64) Scalar {
	return Scalar{Val: v, Known: true}
}

// Field identifies one input quantity in the sparse record.
type Field string

const (
	FieldCompressionRatio Field = "r"
	FieldPressureRatio    Field = "rp"
	FieldT1               Field = "T1"
	FieldP1               Field = "P1"
	FieldT3               Field = "T3"
	FieldP3               Field = "P3"
	FieldT4               Field = "T4"
	FieldHeatIn           Field = "q_in"
	FieldEtaCompressor    Field = "eta_c"
	FieldEtaTurbine       Field = "eta_t"
	FieldEtaPump          Field = "eta_p"
	FieldNetPower         Field = "P_net"
	FieldMassFlow         Field = "m_dot"
	FieldCondenserP       Field = "P_cond"
	FieldBoilerP          Field = "P_boil"
)

// Fields lists every input field in declaration order.
var Fields = []Field{
	FieldCompressionRatio, FieldPressureRatio,
	FieldT1, FieldP1, FieldT3, FieldP3, FieldT4,
	FieldHeatIn,
	FieldEtaCompressor, FieldEtaTurbine, FieldEtaPump,
	FieldNetPower, FieldMassFlow,
	FieldCondenserP, FieldBoilerP,
}

// Inputs is the sparse record of known quantities for one solve.
// Units are fixed: temperatures in K, pressures in kPa, heat in
// kJ/kg, power in kW, mass flow in kg/s, efficiencies in percent.
type Inputs struct {
	CompressionRatio Scalar // r (Otto, Diesel, Dual)
	PressureRatio    Scalar // rp (Brayton)
	T1               Scalar // inlet temperature [K]
	P1               Scalar // inlet pressure [kPa]
	T3               Scalar // peak temperature [K]
	P3               Scalar // peak pressure [kPa]
	T4               Scalar // actual turbine exit temperature [K]
	HeatIn           Scalar // q_in [kJ/kg]
	EtaCompressor    Scalar // compressor isentropic efficiency [%]
	EtaTurbine       Scalar // turbine isentropic efficiency [%]
	EtaPump          Scalar // pump isentropic efficiency [%]
	NetPower         Scalar // net power output [kW]
	MassFlow         Scalar // mass flow rate [kg/s]
	CondenserP       Scalar // condenser pressure [kPa] (Rankine)
	BoilerP          Scalar // boiler pressure [kPa] (Rankine)
}

// Get returns the scalar for one field.
func (in Inputs) Get(f Field) Scalar {
	switch f {
	case FieldCompressionRatio:
		return in.CompressionRatio
	case FieldPressureRatio:
		return in.PressureRatio
	case FieldT1:
		return in.T1
	case FieldP1:
		return in.P1
	case FieldT3:
		return in.T3
	case FieldP3:
		return in.P3
	case FieldT4:
		return in.T4
	case FieldHeatIn:
		return in.HeatIn
	case FieldEtaCompressor:
		return in.EtaCompressor
	case FieldEtaTurbine:
		return in.EtaTurbine
	case FieldEtaPump:
		return in.EtaPump
	case FieldNetPower:
		return in.NetPower
	case FieldMassFlow:
		return in.MassFlow
	case FieldCondenserP:
		return in.CondenserP
	case FieldBoilerP:
		return in.BoilerP
	}
	return Scalar{}
}

// With returns a copy of the record with one field replaced.
func (in Inputs) With(f Field, sc Scalar) Inputs {
	switch f {
	case FieldCompressionRatio:
		in.CompressionRatio = sc
	case FieldPressureRatio:
		in.PressureRatio = sc
	case FieldT1:
		in.T1 = sc
	case FieldP1:
		in.P1 = sc
	case FieldT3:
		in.T3 = sc
	case FieldP3:
		in.P3 = sc
	case FieldT4:
		in.T4 = sc
	case FieldHeatIn:
		in.HeatIn = sc
	case FieldEtaCompressor:
		in.EtaCompressor = sc
	case FieldEtaTurbine:
		in.EtaTurbine = sc
	case FieldEtaPump:
		in.EtaPump = sc
	case FieldNetPower:
		in.NetPower = sc
	case FieldMassFlow:
		in.MassFlow = sc
	case FieldCondenserP:
		in.CondenserP = sc
	case FieldBoilerP:
		in.BoilerP = sc
	}
	return in
}

// KnownMap collects the known fields as a name-to-value map.
func (in Inputs) KnownMap() map[string]float64 {
	m := make(map[string]float64)
	for _, f := range Fields {
		if sc := in.Get(f); sc.Known {
			m[string(f)] = sc.Val
		}
	}
	return m
}

// Has reports whether every listed field is known.
func (in Inputs) Has(fields ...Field) bool {
	for _, f := range fields {
		if !in.Get(f).Known {
			return false
		}
	}
	return true
}
