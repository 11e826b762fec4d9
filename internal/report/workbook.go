// Package report renders a Summary as an Excel workbook.
package report

import (
	"fmt"

	excelize "github.com/xuri/excelize/v2"

	"workforce-engine/internal/model"
)

const (
	SummarySheet   = "Summary"
	EmployeesSheet = "Employees"
)

// employeeHeaders defines the column layout of the employee sheet.
var employeeHeaders = []string{"#", "Name", "Surname", "Gender", "Birthdate", "Workload"}

type metric struct {
	label string
	value any
}

func metrics(s *model.Summary) []metric {
	return []metric{
		{"Total", s.Total},
		{"Workload 10", s.Workload10},
		{"Workload 20", s.Workload20},
		{"Workload 30", s.Workload30},
		{"Workload 40", s.Workload40},
		{"Average age", s.AverageAge},
		{"Min age", s.MinAge},
		{"Max age", s.MaxAge},
		{"Median age", s.MedianAge},
		{"Median workload", s.MedianWorkload},
		{"Average women workload", s.AverageWomenWorkload},
	}
}

// WriteWorkbook returns the xlsx bytes for s: a metric sheet and the
// employees in sortedByWorkload order.
func WriteWorkbook(s *model.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(EmployeesSheet); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := writeMetrics(f, s); err != nil {
		return nil, fmt.Errorf("write metrics: %w", err)
	}

	if err := writeHeaders(f, bold); err != nil {
		return nil, fmt.Errorf("write headers: %w", err)
	}

	if err := writeEmployees(f, s.SortedByWorkload); err != nil {
		return nil, fmt.Errorf("write employees: %w", err)
	}

	if err := setWidths(f); err != nil {
		return nil, fmt.Errorf("set widths: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

func writeMetrics(f *excelize.File, s *model.Summary) error {
	for i, m := range metrics(s) {
		row := i + 1
		if err := f.SetCellValue(SummarySheet, cellName(0, row), m.label); err != nil {
			return err
		}
		if err := f.SetCellValue(SummarySheet, cellName(1, row), m.value); err != nil {
			return err
		}
	}
	return nil
}

func writeHeaders(f *excelize.File, style int) error {
	for col, header := range employeeHeaders {
		cell := cellName(col, 1)
		if err := f.SetCellStr(EmployeesSheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(EmployeesSheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func writeEmployees(f *excelize.File, employees []model.Employee) error {
	for i, e := range employees {
		row := i + 2 // row 1 is headers
		values := []any{
			i + 1,
			e.Name,
			e.Surname,
			string(e.Gender),
			e.BirthDate.String(),
			int(e.Workload),
		}
		for col, val := range values {
			if err := f.SetCellValue(EmployeesSheet, cellName(col, row), val); err != nil {
				return fmt.Errorf("employee %d, col %d: %w", i+1, col, err)
			}
		}
	}
	return nil
}

func setWidths(f *excelize.File) error {
	if err := f.SetColWidth(SummarySheet, "A", "A", 26); err != nil {
		return err
	}
	widths := []float64{6, 14, 16, 10, 28, 10}
	for col, w := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(EmployeesSheet, name, name, w); err != nil {
			return err
		}
	}
	return nil
}

// cellName converts a 0-based column and 1-based row to a reference like "B3".
func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
