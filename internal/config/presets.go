package config

func v(x float64) *float64 { return &x }

var Presets = map[string]map[string]*Config{
	"otto": {
		"standard": {
			Family: "otto",
			Inputs: InputsConfig{CompressionRatio: v(8), T1: v(300), HeatIn: v(800)},
		},
		"high-compression": {
			Family: "otto",
			Inputs: InputsConfig{CompressionRatio: v(12), T1: v(300), HeatIn: v(800)},
		},
		"full-state": {
			Family: "otto",
			Inputs: InputsConfig{CompressionRatio: v(8), T1: v(300), P1: v(100), HeatIn: v(800)},
		},
	},
	"diesel": {
		"standard": {
			Family: "diesel",
			Inputs: InputsConfig{CompressionRatio: v(18), P1: v(100), T1: v(300), T3: v(2000)},
		},
		"heat": {
			Family: "diesel",
			Inputs: InputsConfig{CompressionRatio: v(20), P1: v(100), T1: v(300), HeatIn: v(1300)},
		},
	},
	"dual": {
		"standard": {
			Family: "dual",
			Inputs: InputsConfig{CompressionRatio: v(14), P1: v(100), T1: v(300), P3: v(7000)},
		},
		"heat": {
			Family: "dual",
			Inputs: InputsConfig{CompressionRatio: v(14), P1: v(100), T1: v(300), HeatIn: v(900)},
		},
	},
	"brayton": {
		"ideal": {
			Family: "brayton",
			Inputs: InputsConfig{PressureRatio: v(10), T1: v(300), T3: v(1200)},
		},
		"actual": {
			Family: "brayton",
			Inputs: InputsConfig{
				PressureRatio: v(10), T1: v(300), T3: v(1200),
				EtaCompressor: v(85), EtaTurbine: v(90),
			},
		},
		"power": {
			Family: "brayton",
			Inputs: InputsConfig{
				PressureRatio: v(10), T1: v(300), T3: v(1400),
				NetPower: v(27000), MassFlow: v(90),
			},
		},
	},
	"rankine": {
		"ideal": {
			Family: "rankine",
			Inputs: InputsConfig{CondenserP: v(10), BoilerP: v(8000), T3: v(773.15)},
		},
		"actual": {
			Family: "rankine",
			Inputs: InputsConfig{
				CondenserP: v(10), BoilerP: v(8000), T3: v(773.15),
				EtaTurbine: v(85), EtaPump: v(90),
			},
		},
		"power": {
			Family: "rankine",
			Inputs: InputsConfig{
				CondenserP: v(10), BoilerP: v(8000), T3: v(773.15),
				NetPower: v(50000), MassFlow: v(45),
			},
		},
	},
}

func GetPreset(family, preset string) *Config {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	cfg, ok := familyPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(family string) []string {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(familyPresets))
	for name := range familyPresets {
		names = append(names, name)
	}
	return names
}
