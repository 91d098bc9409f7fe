package combat

import "testing"

// --- helpers ---

var benchSink int32

var benchHeavy = Modifiers{2, 1, 1, 1, 0, 0, 0, 0}

// --- Vector formulation ---

// BenchmarkApplyReduction_Empty benchmarks a full scan with no modifiers.
// Expected: ~2-5ns (8 compare-and-continue iterations).
func BenchmarkApplyReduction_Empty(b *testing.B) {
	b.ReportAllocs()
	var m Modifiers
	for range b.N {
		benchSink = ApplyReduction(1000, m)
	}
}

// BenchmarkApplyReduction_Heavy benchmarks 5 steps over 4 slots.
func BenchmarkApplyReduction_Heavy(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		benchSink = ApplyReduction(1000, benchHeavy)
	}
}

// BenchmarkApplyReductionEarlyExit_Heavy stops after slot 3.
func BenchmarkApplyReductionEarlyExit_Heavy(b *testing.B) {
	b.ReportAllocs()
	nonZero := benchHeavy.NonZero()
	for range b.N {
		benchSink = ApplyReductionEarlyExit(1000, benchHeavy, nonZero)
	}
}

func BenchmarkApplyBonus_Heavy(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		benchSink = ApplyBonus(1000, benchHeavy)
	}
}

// --- Fraction list ---

// BenchmarkApplyReductionFractions_Heavy benchmarks the same 5 steps as a list.
// Expected: 0 allocs/op (list is built once).
func BenchmarkApplyReductionFractions_Heavy(b *testing.B) {
	b.ReportAllocs()
	fractions := []Fraction{{1, 8}, {1, 8}, {1, 4}, {3, 8}, {1, 2}}

	b.ResetTimer()
	for range b.N {
		benchSink = ApplyReductionFractions(1000, fractions)
	}
}

// --- Nominal encoding ---

func BenchmarkReductionFromNominal(b *testing.B) {
	b.ReportAllocs()
	var m Modifiers
	for i := range b.N {
		m = ReductionFromNominal(int8(i))
	}
	benchSink = int32(m[WholeSlot])
}
