package combat

// BonusFromNominal converts a nominal damage bonus into its modifier vector.
// Every 8 nominal units add one "double" stack in slot 7; the remainder
// selects a single fractional slot.
//
//	BonusFromNominal(10)  = [0 1 0 0 0 0 0 1]  // +150%
//	BonusFromNominal(-3)  = [0 0 -1 0 0 0 0 0] // -37.5%
func BonusFromNominal(nominal int8) Modifiers {
	return fromNominal(nominal)
}

// ReductionFromNominal converts a nominal damage reduction into its modifier
// vector. Slot 7 holds "immunity" stacks; see BonusFromNominal.
func ReductionFromNominal(nominal int8) Modifiers {
	return fromNominal(nominal)
}

func fromNominal(nominal int8) Modifiers {
	var m Modifiers

	// Go division truncates toward zero: -10/8 = -1.
	m[WholeSlot] = nominal / Divisor

	// int keeps |-128| representable.
	abs := int(nominal)
	if abs < 0 {
		abs = -abs
	}
	fraction := abs % Divisor

	if fraction != 0 {
		if nominal > 0 {
			m[fraction-1] = 1
		} else {
			m[fraction-1] = -1
		}
	}
	return m
}

// NominalPercent returns the percentage a nominal value stands for
// (8 nominal units = 100%).
func NominalPercent(nominal int8) float64 {
	return float64(nominal) * 100 / Divisor
}
