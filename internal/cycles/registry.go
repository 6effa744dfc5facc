package cycles

import (
	"fmt"
	"sort"

	"github.com/san-kum/cyclelab/internal/steam"
	"github.com/san-kum/cyclelab/internal/thermo"
)

type Registry struct {
	solvers map[string]func() thermo.Solver
}

func NewRegistry() *Registry {
	r := &Registry{solvers: make(map[string]func() thermo.Solver)}

	r.solvers["otto"] = func() thermo.Solver { return NewOtto() }
	r.solvers["diesel"] = func() thermo.Solver { return NewDiesel() }
	r.solvers["dual"] = func() thermo.Solver { return NewDual() }
	r.solvers["brayton"] = func() thermo.Solver { return NewBrayton() }
	r.solvers["rankine"] = func() thermo.Solver { return NewRankine(steam.NewTables()) }

	return r
}

func (r *Registry) Get(name string) (thermo.Solver, error) {
	fn, ok := r.solvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown cycle family: %s", name)
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.solvers))
	for name := range r.solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Solve is the single-call entry point: a cycle family tag and a
// sparse input record in, a dense result or error out.
func Solve(family string, in thermo.Inputs) (*thermo.Result, error) {
	s, err := NewRegistry().Get(family)
	if err != nil {
		return nil, err
	}
	return thermo.Solve(s, in)
}
