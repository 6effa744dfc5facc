package storage

import (
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/cyclelab/internal/thermo"
)

// ExportXLSX writes a workbook with a Summary sheet (family, branch,
// inputs) and a Results sheet holding the dense quantity table.
func ExportXLSX(filename, family, branch string, known map[string]float64, res *thermo.Result) error {
	f := excelize.NewFile()

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)

	f.SetCellValue(summary, "A1", "Family")
	f.SetCellValue(summary, "B1", family)
	f.SetCellValue(summary, "A2", "Branch")
	f.SetCellValue(summary, "B2", branch)

	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}
	sort.Strings(names)

	f.SetCellValue(summary, "A4", "Input")
	f.SetCellValue(summary, "B4", "Value")
	for i, name := range names {
		row := i + 5
		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(summary, cell, name)
		cell, _ = excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(summary, cell, known[name])
	}

	results := "Results"
	f.NewSheet(results)

	f.SetCellValue(results, "A1", "Quantity")
	f.SetCellValue(results, "B1", "Value")
	f.SetCellValue(results, "C1", "Unit")
	for i, name := range res.Names() {
		row := i + 2
		val, _ := res.Get(name)

		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(results, cell, name)
		cell, _ = excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(results, cell, val)
		cell, _ = excelize.CoordinatesToCellName(3, row)
		f.SetCellValue(results, cell, thermo.Unit(name))
	}

	return f.SaveAs(filename)
}
