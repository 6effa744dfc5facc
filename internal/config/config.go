package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/cyclelab/internal/thermo"
)

type Config struct {
	Family string       `yaml:"family"`
	Inputs InputsConfig `yaml:"inputs"`
}

// InputsConfig mirrors thermo.Inputs with pointer fields so a key
// omitted from the file stays distinguishable from an explicit zero.
type InputsConfig struct {
	CompressionRatio *float64 `yaml:"r,omitempty"`
	PressureRatio    *float64 `yaml:"rp,omitempty"`
	T1               *float64 `yaml:"t1,omitempty"`
	P1               *float64 `yaml:"p1,omitempty"`
	T3               *float64 `yaml:"t3,omitempty"`
	P3               *float64 `yaml:"p3,omitempty"`
	T4               *float64 `yaml:"t4,omitempty"`
	HeatIn           *float64 `yaml:"q_in,omitempty"`
	EtaCompressor    *float64 `yaml:"eta_c,omitempty"`
	EtaTurbine       *float64 `yaml:"eta_t,omitempty"`
	EtaPump          *float64 `yaml:"eta_p,omitempty"`
	NetPower         *float64 `yaml:"net_power,omitempty"`
	MassFlow         *float64 `yaml:"mass_flow,omitempty"`
	CondenserP       *float64 `yaml:"p_cond,omitempty"`
	BoilerP          *float64 `yaml:"p_boil,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{Family: "otto"}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func scalar(p *float64) thermo.Scalar {
	if p == nil {
		return thermo.Scalar{}
	}
	return thermo.Known(*p)
}

func (c *Config) ToInputs() thermo.Inputs {
	return thermo.Inputs{
		CompressionRatio: scalar(c.Inputs.CompressionRatio),
		PressureRatio:    scalar(c.Inputs.PressureRatio),
		T1:               scalar(c.Inputs.T1),
		P1:               scalar(c.Inputs.P1),
		T3:               scalar(c.Inputs.T3),
		P3:               scalar(c.Inputs.P3),
		T4:               scalar(c.Inputs.T4),
		HeatIn:           scalar(c.Inputs.HeatIn),
		EtaCompressor:    scalar(c.Inputs.EtaCompressor),
		EtaTurbine:       scalar(c.Inputs.EtaTurbine),
		EtaPump:          scalar(c.Inputs.EtaPump),
		NetPower:         scalar(c.Inputs.NetPower),
		MassFlow:         scalar(c.Inputs.MassFlow),
		CondenserP:       scalar(c.Inputs.CondenserP),
		BoilerP:          scalar(c.Inputs.BoilerP),
	}
}
