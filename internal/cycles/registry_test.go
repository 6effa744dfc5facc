package cycles

import (
	"sort"
	"testing"

	"github.com/san-kum/cyclelab/internal/thermo"
)

func TestRegistryFamilies(t *testing.T) {
	reg := NewRegistry()
	for _, family := range []string{"otto", "diesel", "dual", "brayton", "rankine"} {
		s, err := reg.Get(family)
		if err != nil {
			t.Fatalf("Get(%q): unexpected error: %v", family, err)
		}
		if s.Family() != family {
			t.Errorf("Family(): expected %q, got %q", family, s.Family())
		}
	}
}

func TestRegistryUnknownFamily(t *testing.T) {
	if _, err := NewRegistry().Get("carnot"); err == nil {
		t.Error("expected error for unknown family")
	}
}

func TestRegistryListSorted(t *testing.T) {
	names := NewRegistry().List()
	if len(names) != 5 {
		t.Fatalf("expected 5 families, got %d", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("expected sorted families, got %v", names)
	}
}

func TestSolveDispatch(t *testing.T) {
	in := thermo.Inputs{
		CompressionRatio: thermo.Known(8),
		T1:               thermo.Known(300),
		HeatIn:           thermo.Known(800),
	}
	res, err := Solve("otto", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := res.Get("eff"); !ok {
		t.Error("expected eff in result")
	}

	if branch, ok := thermo.SelectBranch(NewOtto(), in); !ok || branch != "heat-input" {
		t.Errorf("branch: expected heat-input, got %q (ok=%v)", branch, ok)
	}

	if _, err := Solve("carnot", in); err == nil {
		t.Error("expected error for unknown family")
	}
}
