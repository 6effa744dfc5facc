package cycles

import "github.com/san-kum/cyclelab/internal/thermo"

// etaFraction converts a percent efficiency input to a fraction.
// An unknown efficiency is an ideal device (unity), so the actual
// states collapse onto the isentropic ones.
func etaFraction(sc thermo.Scalar, quantity string) (float64, error) {
	if !sc.Known {
		return 1, nil
	}
	if sc.Val <= 0 {
		return 0, &thermo.DegenerateError{Quantity: quantity, Reason: "supplied efficiency is non-positive"}
	}
	return sc.Val / 100, nil
}

// positive rejects non-positive values that later serve as divisors.
func positive(v float64, quantity string) error {
	if v <= 0 {
		return &thermo.DegenerateError{Quantity: quantity, Reason: "must be positive"}
	}
	return nil
}
