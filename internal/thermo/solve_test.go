package thermo

import (
	"errors"
	"testing"
)

type fakeSolver struct {
	branches []Branch
}

func (f *fakeSolver) Family() string     { return "fake" }
func (f *fakeSolver) Branches() []Branch { return f.branches }

func TestSolvePriorityOrder(t *testing.T) {
	s := &fakeSolver{branches: []Branch{
		{
			Name:     "first",
			Requires: []Field{FieldT1},
			Eval: func(in Inputs) (*Result, error) {
				r := NewResult()
				r.Set("branch", 1)
				return r, nil
			},
		},
		{
			Name:     "second",
			Requires: []Field{FieldT1, FieldT3},
			Eval: func(in Inputs) (*Result, error) {
				r := NewResult()
				r.Set("branch", 2)
				return r, nil
			},
		},
	}}

	// Both branch prerequisite sets are satisfied; the first wins.
	in := Inputs{T1: Known(300), T3: Known(1200)}
	res, err := Solve(s, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := res.Get("branch"); v != 1 {
		t.Errorf("expected branch 1, got %f", v)
	}

	name, ok := SelectBranch(s, in)
	if !ok || name != "first" {
		t.Errorf("expected branch first, got %s (ok=%v)", name, ok)
	}
}

func TestSolveInsufficientInputs(t *testing.T) {
	s := &fakeSolver{branches: []Branch{
		{Name: "only", Requires: []Field{FieldT1, FieldT3}},
	}}

	_, err := Solve(s, Inputs{T1: Known(300)})
	if !errors.Is(err, ErrInsufficientInputs) {
		t.Errorf("expected ErrInsufficientInputs, got %v", err)
	}
}

func TestHasZeroIsKnown(t *testing.T) {
	// A zero value is still a provided input.
	in := Inputs{T1: Known(0)}
	if !in.Has(FieldT1) {
		t.Error("expected zero-valued T1 to count as known")
	}
	if in.Has(FieldT3) {
		t.Error("expected absent T3 to count as unknown")
	}
}

func TestErrorWrapping(t *testing.T) {
	var err error = &DegenerateError{Quantity: "q_in", Reason: "zero heat input"}
	if !errors.Is(err, ErrDegenerate) {
		t.Error("DegenerateError should unwrap to ErrDegenerate")
	}

	err = &LookupError{State: "P=5 kPa s=9.1", Wrapped: errors.New("out of range")}
	if !errors.Is(err, ErrPropertyLookup) {
		t.Error("LookupError should unwrap to ErrPropertyLookup")
	}
}
