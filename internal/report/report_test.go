package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/udisondev/acds/internal/bench"
	"github.com/udisondev/acds/internal/game/combat"
)

func TestBuildCurve(t *testing.T) {
	curve := BuildCurve(1000, -10, 10)
	require.Len(t, curve, 21)

	first, mid, last := curve[0], curve[10], curve[20]

	assert.Equal(t, int8(-10), first.Nominal)
	assert.Equal(t, int32(0), first.BonusDamage)
	assert.Equal(t, int32(2500), first.ReductionDamage)

	assert.Equal(t, int8(0), mid.Nominal)
	assert.True(t, mid.Bonus.IsZero())
	assert.Equal(t, int32(1000), mid.BonusDamage)
	assert.Equal(t, int32(1000), mid.ReductionDamage)

	assert.Equal(t, int8(10), last.Nominal)
	assert.InDelta(t, 125.0, last.Percent, 1e-9)
	assert.Equal(t, combat.Modifiers{0, 1, 0, 0, 0, 0, 0, 1}, last.Reduction)
	assert.Equal(t, int32(2500), last.BonusDamage)
	assert.Equal(t, int32(0), last.ReductionDamage)
}

func TestBuildCurve_FullRange(t *testing.T) {
	curve := BuildCurve(1000, -128, 127)
	assert.Len(t, curve, 256)
	assert.Nil(t, BuildCurve(1000, 5, -5))
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "acds.xlsx")
	results := []bench.Result{
		{Suite: "Light", Strategy: bench.StrategyDefault, N: 1000, NsPerOp: 12, Checksum: 3500},
	}

	require.NoError(t, WriteXLSX(path, BuildCurve(1000, -2, 2), results))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetNominal, SheetBenchmarks}, f.GetSheetList())

	v, err := f.GetCellValue(SheetNominal, "A2")
	require.NoError(t, err)
	assert.Equal(t, "-2", v)

	v, err = f.GetCellValue(SheetNominal, "E6")
	require.NoError(t, err)
	assert.Equal(t, "[0 1 0 0 0 0 0 0]", v)

	v, err = f.GetCellValue(SheetNominal, "F6")
	require.NoError(t, err)
	assert.Equal(t, "750", v)

	v, err = f.GetCellValue(SheetBenchmarks, "B2")
	require.NoError(t, err)
	assert.Equal(t, "ACDS default", v)
}
