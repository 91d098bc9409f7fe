// Package report exports the nominal curve and benchmark results to XLSX.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/udisondev/acds/internal/bench"
	"github.com/udisondev/acds/internal/game/combat"
)

const (
	SheetNominal    = "Nominal"
	SheetBenchmarks = "Benchmarks"
)

// CurveRow is one nominal value with its bonus and reduction outcome.
type CurveRow struct {
	Nominal         int8
	Percent         float64
	Bonus           combat.Modifiers
	BonusDamage     int32
	Reduction       combat.Modifiers
	ReductionDamage int32
}

// BuildCurve encodes every nominal in [from, to] and applies it to damage.
func BuildCurve(damage int32, from, to int8) []CurveRow {
	if from > to {
		return nil
	}

	rows := make([]CurveRow, 0, int(to)-int(from)+1)
	for n := int(from); n <= int(to); n++ {
		nominal := int8(n)
		db := combat.BonusFromNominal(nominal)
		dr := combat.ReductionFromNominal(nominal)
		rows = append(rows, CurveRow{
			Nominal:         nominal,
			Percent:         combat.NominalPercent(nominal),
			Bonus:           db,
			BonusDamage:     combat.ApplyBonus(damage, db),
			Reduction:       dr,
			ReductionDamage: combat.ApplyReduction(damage, dr),
		})
	}
	return rows
}

// WriteXLSX writes the nominal curve and benchmark results to path.
func WriteXLSX(path string, curve []CurveRow, results []bench.Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetNominal); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetBenchmarks); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	// Nominal curve
	nominalHeader := []string{"Nominal", "Percent", "DB vector", "DB damage", "DR vector", "DR damage"}
	for i, h := range nominalHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(SheetNominal, cell, h)
	}
	if err := f.SetCellStyle(SheetNominal, "A1", "F1", headerStyle); err != nil {
		return err
	}

	for i, r := range curve {
		row := i + 2
		f.SetCellValue(SheetNominal, fmt.Sprintf("A%d", row), r.Nominal)
		f.SetCellValue(SheetNominal, fmt.Sprintf("B%d", row), fmt.Sprintf("%.1f%%", r.Percent))
		f.SetCellValue(SheetNominal, fmt.Sprintf("C%d", row), r.Bonus.String())
		f.SetCellValue(SheetNominal, fmt.Sprintf("D%d", row), r.BonusDamage)
		f.SetCellValue(SheetNominal, fmt.Sprintf("E%d", row), r.Reduction.String())
		f.SetCellValue(SheetNominal, fmt.Sprintf("F%d", row), r.ReductionDamage)
	}

	// Benchmarks
	benchHeader := []string{"Suite", "Strategy", "ns/op", "allocs/op", "N", "Checksum"}
	for i, h := range benchHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(SheetBenchmarks, cell, h)
	}
	if err := f.SetCellStyle(SheetBenchmarks, "A1", "F1", headerStyle); err != nil {
		return err
	}

	for i, r := range results {
		row := i + 2
		f.SetCellValue(SheetBenchmarks, fmt.Sprintf("A%d", row), r.Suite)
		f.SetCellValue(SheetBenchmarks, fmt.Sprintf("B%d", row), string(r.Strategy))
		f.SetCellValue(SheetBenchmarks, fmt.Sprintf("C%d", row), r.NsPerOp)
		f.SetCellValue(SheetBenchmarks, fmt.Sprintf("D%d", row), r.AllocsPerOp)
		f.SetCellValue(SheetBenchmarks, fmt.Sprintf("E%d", row), r.N)
		f.SetCellValue(SheetBenchmarks, fmt.Sprintf("F%d", row), r.Checksum)
	}

	if err := f.SetColWidth(SheetNominal, "A", "B", 10); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetNominal, "C", "F", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetBenchmarks, "A", "B", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetBenchmarks, "C", "F", 12); err != nil {
		return err
	}

	return f.SaveAs(path)
}
