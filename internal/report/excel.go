// Package report exports a month of the meal ledger as an Excel workbook.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/mealwiser/internal/ledger"
	"github.com/mmynk/mealwiser/internal/models"
)

// Sheet names of the monthly workbook.
const (
	SummarySheet = "Summary"
	CostsSheet   = "Meal Costs"
	DailySheet   = "Daily Totals"
)

var (
	summaryColumns = []string{"Employee", "Type", "Deposits", "Meal Costs", "Meals", "Balance"}
	costsColumns   = []string{"Date", "Employee", "Meals", "Cost per Meal", "Total"}
	dailyColumns   = []string{"Date", "Total"}
)

// sheetWriter appends rows to the sheets of one workbook.
type sheetWriter struct {
	file  *excelize.File
	sheet string
	row   int
}

func (w *sheetWriter) addSheet(name string) error {
	if w.sheet == "" {
		// Rename the default sheet
		if err := w.file.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("rename sheet %s: %w", name, err)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	w.sheet = name
	w.row = 1
	return nil
}

func (w *sheetWriter) writeHeader(columns []string) error {
	row := make([]any, len(columns))
	for i, c := range columns {
		row[i] = c
	}
	if err := w.writeRow(row); err != nil {
		return err
	}

	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	start, _ := excelize.CoordinatesToCellName(1, w.row-1)
	end, _ := excelize.CoordinatesToCellName(len(columns), w.row-1)
	return w.file.SetCellStyle(w.sheet, start, end, style)
}

func (w *sheetWriter) writeRow(values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	if err := w.file.SetSheetRow(w.sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d of %s: %w", w.row, w.sheet, err)
	}
	w.row++
	return nil
}

// WriteMonthly writes the month's workbook to out. The Summary sheet has one account
// row per employee; the Meal Costs sheet lists the month's meal costs per employee,
// ordered by date; the Daily Totals sheet has one row per day with costs.
func WriteMonthly(out io.Writer, l *ledger.Ledger, month string) error {
	if err := models.ValidateMonth(month); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	w := &sheetWriter{file: f}
	if err := writeSummary(w, l, month); err != nil {
		return err
	}
	if err := writeCosts(w, l, month); err != nil {
		return err
	}
	if err := writeDaily(w, l, month); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(out); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummary(w *sheetWriter, l *ledger.Ledger, month string) error {
	if err := w.addSheet(SummarySheet); err != nil {
		return err
	}
	if err := w.writeHeader(summaryColumns); err != nil {
		return err
	}

	for i, bal := range l.MonthlySummaries(month) {
		emp := l.Employees[i]
		if err := w.writeRow([]any{emp.Name, string(emp.Type), bal.Deposits, bal.MealCosts, bal.Meals, bal.Balance}); err != nil {
			return err
		}
	}
	return nil
}

func writeCosts(w *sheetWriter, l *ledger.Ledger, month string) error {
	if err := w.addSheet(CostsSheet); err != nil {
		return err
	}
	if err := w.writeHeader(costsColumns); err != nil {
		return err
	}

	for _, emp := range l.Employees {
		for _, c := range l.MealCostsFor(emp.ID, month) {
			if err := w.writeRow([]any{c.Date, emp.Name, c.MealCount, c.CostPerMeal, c.TotalMealCost}); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeDaily(w *sheetWriter, l *ledger.Ledger, month string) error {
	if err := w.addSheet(DailySheet); err != nil {
		return err
	}
	if err := w.writeHeader(dailyColumns); err != nil {
		return err
	}

	dates, totals := l.DailyTotals(month)
	for _, d := range dates {
		if err := w.writeRow([]any{d, totals[d]}); err != nil {
			return err
		}
	}
	return nil
}
