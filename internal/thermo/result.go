package thermo

// Result is the dense mapping of derived quantities built during one
// solve. Insertion order is preserved and a quantity is written at
// most once; later writes to the same name are ignored.
type Result struct {
	values map[string]float64
	order  []string
}

func NewResult() *Result {
	return &Result{values: make(map[string]float64)}
}

// Set records a quantity. The first value wins.
func (r *Result) Set(name string, v float64) {
	if _, ok := r.values[name]; ok {
		return
	}
	r.values[name] = v
	r.order = append(r.order, name)
}

func (r *Result) Get(name string) (float64, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names returns quantity names in insertion order.
func (r *Result) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

func (r *Result) Len() int {
	return len(r.order)
}

// Unit returns the display unit for a quantity name. Every quantity
// type has exactly one unit.
func Unit(name string) string {
	if name == "" {
		return ""
	}
	switch name {
	case "r", "rp", "rc":
		return ""
	case "eff", "eta_c", "eta_t", "eta_p":
		return "%"
	case "m_dot":
		return "kg/s"
	case "P_net":
		return "kW"
	}
	switch name[0] {
	case 'T':
		return "K"
	case 'P':
		return "kPa"
	case 'q', 'w', 'h':
		return "kJ/kg"
	case 's':
		return "kJ/kg.K"
	case 'v':
		return "m3/kg"
	case 'x':
		return ""
	}
	return ""
}
