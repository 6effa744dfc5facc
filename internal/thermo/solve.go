package thermo

// Branch is one named input-combination pathway. Eval runs its fixed
// equation set; it is only invoked once every field in Requires is
// known.
type Branch struct {
	Name     string
	Requires []Field
	Eval     func(in Inputs) (*Result, error)
}

// Solver is one cycle family. Branches returns the family's pathways
// in fixed priority order.
type Solver interface {
	Family() string
	Branches() []Branch
}

// Solve selects the first branch whose prerequisite fields are all
// known and evaluates it. A failed evaluation returns only the error;
// no partial Result escapes.
func Solve(s Solver, in Inputs) (*Result, error) {
	for _, b := range s.Branches() {
		if in.Has(b.Requires...) {
			return b.Eval(in)
		}
	}
	return nil, ErrInsufficientInputs
}

// SelectBranch reports which branch Solve would evaluate, for
// diagnostics. ok is false when no branch is satisfied.
func SelectBranch(s Solver, in Inputs) (name string, ok bool) {
	for _, b := range s.Branches() {
		if in.Has(b.Requires...) {
			return b.Name, true
		}
	}
	return "", false
}
