package combat

import (
	"fmt"
	"strings"
)

// ACDS (Additive Common Divisor System) constants.
// Every slot is a step of 1/Divisor; the last slot is the whole-unit stack.
const (
	SlotCount = 8
	Divisor   = 8
	WholeSlot = SlotCount - 1
)

// Modifiers is an ACDS modifier vector.
// Slot i holds how many times the (i+1)/8 step is applied:
// positive counts apply the step, negative counts apply the inverse step.
// Slot 7 (numerator 8/8) acts as the "double" (bonus) or "immunity"
// (reduction) stack.
//
// Examples (nominal → vector):
//   - 1:  [1 0 0 0 0 0 0 0] =  12.5%
//   - 2:  [0 1 0 0 0 0 0 0] =  25.0%
//   - 8:  [0 0 0 0 0 0 0 1] = 100.0%
//   - 10: [0 1 0 0 0 0 0 1] = 150.0%
type Modifiers [SlotCount]int8

// ApplyBonus returns damage after damage bonus (DB).
// Positive counts raise damage, negative counts lower it.
func ApplyBonus(damage int32, m Modifiers) int32 {
	output := damage
	var numerator int32

	for _, count := range m {
		numerator++

		switch {
		case count > 0:
			for range count {
				output += output * numerator / Divisor
			}
		case count < 0:
			for i := count; i < 0; i++ {
				output -= output * numerator / Divisor
			}
		}
	}
	return output
}

// ApplyReduction returns damage after damage reduction (DR).
// Positive counts lower damage, negative counts raise it.
//
// Steps compound: each one works on the output of the previous one, so
// stacking the same slot gives diminishing returns, e.g. 1000 with
// [2 0 0 0 0 0 0 0] → 875 → 766.
func ApplyReduction(damage int32, m Modifiers) int32 {
	output := damage
	var numerator int32

	for _, count := range m {
		numerator++

		switch {
		case count > 0:
			for range count {
				output -= output * numerator / Divisor
			}
		case count < 0:
			for i := count; i < 0; i++ {
				output += output * numerator / Divisor
			}
		}
	}
	return output
}

// ApplyReductionEarlyExit is ApplyReduction that stops scanning slots once
// nonZero non-zero slots have been applied.
//
// nonZero is an unchecked hint: it must equal m.NonZero() for the result to
// match ApplyReduction. A lower value silently skips the trailing slots.
func ApplyReductionEarlyExit(damage int32, m Modifiers, nonZero uint32) int32 {
	output := damage
	var numerator int32
	remaining := nonZero

	for _, count := range m {
		if remaining == 0 {
			break
		}
		numerator++

		switch {
		case count > 0:
			for range count {
				output -= output * numerator / Divisor
			}
		case count < 0:
			for i := count; i < 0; i++ {
				output += output * numerator / Divisor
			}
		default:
			continue
		}
		remaining--
	}
	return output
}

// ApplyBonusEarlyExit is ApplyBonus with the same nonZero hint contract as
// ApplyReductionEarlyExit.
func ApplyBonusEarlyExit(damage int32, m Modifiers, nonZero uint32) int32 {
	output := damage
	var numerator int32
	remaining := nonZero

	for _, count := range m {
		if remaining == 0 {
			break
		}
		numerator++

		switch {
		case count > 0:
			for range count {
				output += output * numerator / Divisor
			}
		case count < 0:
			for i := count; i < 0; i++ {
				output -= output * numerator / Divisor
			}
		default:
			continue
		}
		remaining--
	}
	return output
}

// NonZero returns the number of non-zero slots.
// Callers precompute it once per vector and pass it to the *EarlyExit functions.
func (m Modifiers) NonZero() uint32 {
	var n uint32
	for _, count := range m {
		if count != 0 {
			n++
		}
	}
	return n
}

// IsZero reports whether no slot is set.
func (m Modifiers) IsZero() bool {
	return m == Modifiers{}
}

// Negate returns m with every slot sign-flipped.
// -128 has no positive int8 counterpart and saturates to 127.
func (m Modifiers) Negate() Modifiers {
	var out Modifiers
	for i, count := range m {
		if count == -128 {
			out[i] = 127
			continue
		}
		out[i] = -count
	}
	return out
}

// String formats m as "[a b c d e f g h]".
func (m Modifiers) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, count := range m {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", count)
	}
	sb.WriteByte(']')
	return sb.String()
}
