package data

import "github.com/udisondev/acds/internal/game/combat"

// Suite names.
const (
	SuiteEmpty  = "Empty"
	SuiteLight  = "Light"
	SuiteMedium = "Medium"
	SuiteHeavy  = "Heavy"
)

type suiteCaseDef struct {
	modifiers combat.Modifiers
	nonZero   uint32 // early-exit hint, counts applied reductions
	fractions [][2]int32
}

type suiteDef struct {
	name  string
	cases []suiteCaseDef
}

// suiteDefs: 0, 1, 2 and 5 reductions per calculation.
// Hints count reductions, not slots, so some are above Modifiers.NonZero();
// a high hint only lengthens the early-exit scan, it never changes results.
// Fraction lists are reduced (2/8 → 1/4); the truncated results match the
// vector form because x*2/8 and x/4 truncate identically.
var suiteDefs = []suiteDef{
	{
		name: SuiteEmpty,
		cases: []suiteCaseDef{
			{modifiers: combat.Modifiers{0, 0, 0, 0, 0, 0, 0, 0}, nonZero: 0},
		},
	},
	{
		name: SuiteLight,
		cases: []suiteCaseDef{
			{modifiers: combat.Modifiers{1, 0, 0, 0, 0, 0, 0, 0}, nonZero: 1, fractions: [][2]int32{{1, 8}}},
			{modifiers: combat.Modifiers{0, 1, 0, 0, 0, 0, 0, 0}, nonZero: 1, fractions: [][2]int32{{1, 4}}},
			{modifiers: combat.Modifiers{0, 0, 1, 0, 0, 0, 0, 0}, nonZero: 1, fractions: [][2]int32{{3, 8}}},
			{modifiers: combat.Modifiers{0, 0, 0, 1, 0, 0, 0, 0}, nonZero: 1, fractions: [][2]int32{{1, 2}}},
			{modifiers: combat.Modifiers{0, 0, 0, 0, 1, 0, 0, 0}, nonZero: 1, fractions: [][2]int32{{5, 8}}},
			{modifiers: combat.Modifiers{0, 0, 0, 0, 0, 1, 0, 0}, nonZero: 1, fractions: [][2]int32{{3, 4}}},
			{modifiers: combat.Modifiers{0, 0, 0, 0, 0, 0, 1, 0}, nonZero: 1, fractions: [][2]int32{{7, 8}}},
			{modifiers: combat.Modifiers{0, 0, 0, 0, 0, 0, 0, 1}, nonZero: 1, fractions: [][2]int32{{1, 1}}},
		},
	},
	{
		name: SuiteMedium,
		cases: []suiteCaseDef{
			{modifiers: combat.Modifiers{1, 1, 0, 0, 0, 0, 0, 0}, nonZero: 2, fractions: [][2]int32{{1, 8}, {1, 4}}},
			{modifiers: combat.Modifiers{0, 1, 1, 0, 0, 0, 0, 0}, nonZero: 2, fractions: [][2]int32{{1, 4}, {3, 8}}},
			{modifiers: combat.Modifiers{0, 0, 1, 1, 0, 0, 0, 0}, nonZero: 2, fractions: [][2]int32{{3, 8}, {1, 2}}},
			{modifiers: combat.Modifiers{0, 0, 0, 1, 1, 0, 0, 0}, nonZero: 2, fractions: [][2]int32{{1, 2}, {5, 8}}},
			{modifiers: combat.Modifiers{0, 0, 0, 0, 1, 1, 0, 0}, nonZero: 2, fractions: [][2]int32{{5, 8}, {3, 4}}},
			{modifiers: combat.Modifiers{0, 0, 0, 0, 0, 1, 1, 0}, nonZero: 2, fractions: [][2]int32{{3, 4}, {7, 8}}},
			{modifiers: combat.Modifiers{0, 0, 0, 0, 0, 0, 1, 1}, nonZero: 2, fractions: [][2]int32{{7, 8}, {1, 1}}},
			{modifiers: combat.Modifiers{0, 0, 0, 0, 0, 0, 0, 2}, nonZero: 2, fractions: [][2]int32{{1, 1}, {1, 1}}},
		},
	},
	{
		name: SuiteHeavy,
		cases: []suiteCaseDef{
			{modifiers: combat.Modifiers{2, 1, 1, 1, 0, 0, 0, 0}, nonZero: 5, fractions: [][2]int32{{1, 8}, {1, 8}, {1, 4}, {3, 8}, {1, 2}}},
			{modifiers: combat.Modifiers{0, 2, 1, 1, 1, 0, 0, 0}, nonZero: 5, fractions: [][2]int32{{1, 4}, {1, 4}, {3, 8}, {1, 2}, {5, 8}}},
			{modifiers: combat.Modifiers{0, 0, 2, 1, 1, 1, 0, 0}, nonZero: 5, fractions: [][2]int32{{3, 8}, {3, 8}, {1, 2}, {5, 8}, {3, 4}}},
			{modifiers: combat.Modifiers{0, 0, 0, 2, 1, 1, 1, 0}, nonZero: 5, fractions: [][2]int32{{1, 2}, {1, 2}, {5, 8}, {3, 4}, {7, 8}}},
			{modifiers: combat.Modifiers{0, 0, 0, 0, 2, 1, 1, 1}, nonZero: 5, fractions: [][2]int32{{5, 8}, {5, 8}, {3, 4}, {7, 8}, {1, 1}}},
			{modifiers: combat.Modifiers{0, 0, 0, 0, 0, 2, 2, 1}, nonZero: 5, fractions: [][2]int32{{3, 4}, {3, 4}, {7, 8}, {7, 8}, {1, 1}}},
			{modifiers: combat.Modifiers{0, 0, 0, 0, 0, 0, 3, 2}, nonZero: 5, fractions: [][2]int32{{7, 8}, {7, 8}, {7, 8}, {1, 1}, {1, 1}}},
			{modifiers: combat.Modifiers{0, 0, 0, 0, 0, 0, 0, 5}, nonZero: 5, fractions: [][2]int32{{1, 1}, {1, 1}, {1, 1}, {1, 1}, {1, 1}}},
		},
	},
}
