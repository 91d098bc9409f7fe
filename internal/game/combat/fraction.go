package combat

// Fraction is a numerator/denominator step used by the fractional-list
// formulation of damage reduction.
type Fraction struct {
	Numerator   int32
	Denominator int32
}

// ApplyReductionFractions applies each fraction in list order:
// damage -= damage * numerator / denominator.
//
// It is a reference formulation kept for benchmarking against the ACDS
// vector form. The two only agree when the list reproduces the same
// sequence of eighths; arbitrary denominators have no vector equivalent.
// A zero denominator panics.
func ApplyReductionFractions(damage int32, fractions []Fraction) int32 {
	output := damage
	for _, f := range fractions {
		output -= output * f.Numerator / f.Denominator
	}
	return output
}

// Fractions expands m into the equivalent list of reduction fractions in
// application order. Only non-negative vectors have a fraction form: if any
// slot is negative, Fractions returns nil and false.
func (m Modifiers) Fractions() ([]Fraction, bool) {
	var fractions []Fraction
	for i, count := range m {
		if count < 0 {
			return nil, false
		}
		for range count {
			fractions = append(fractions, Fraction{Numerator: int32(i + 1), Denominator: Divisor})
		}
	}
	return fractions, true
}
