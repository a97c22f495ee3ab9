// Package export renders period summaries as spreadsheets.
package export

import (
	"io"

	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/errors"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	dailySheet   = "Daily"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var summaryNutrients = []entity.Nutrient{
	entity.NutrientCalories,
	entity.NutrientProtein,
	entity.NutrientCarbs,
	entity.NutrientFat,
	entity.NutrientFiber,
	entity.NutrientSugar,
	entity.NutrientSodium,
}

var nutrientLabels = map[entity.Nutrient]string{
	entity.NutrientCalories: "Calories (kcal)",
	entity.NutrientProtein:  "Protein (g)",
	entity.NutrientCarbs:    "Carbs (g)",
	entity.NutrientFat:      "Fat (g)",
	entity.NutrientFiber:    "Fiber (g)",
	entity.NutrientSugar:    "Sugar (g)",
	entity.NutrientSodium:   "Sodium (mg)",
}

type xlsxExporter struct{}

// NewXLSXExporter returns a SummaryExporter writing an Excel workbook with a summary and a daily sheet.
func NewXLSXExporter() service.SummaryExporter {
	return xlsxExporter{}
}

func (xlsxExporter) ContentType() string   { return xlsxContentType }
func (xlsxExporter) FileExtension() string { return ".xlsx" }

func (xlsxExporter) Export(w io.Writer, summary *entity.PeriodSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the summary sheet.
	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return errors.Wrap(err, "rename summary sheet")
	}
	if _, err := f.NewSheet(dailySheet); err != nil {
		return errors.Wrap(err, "create daily sheet")
	}

	if err := writeSummary(f, summary); err != nil {
		return err
	}
	if err := writeDaily(f, summary); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "xlsx write")
	}

	return nil
}

func writeSummary(f *excelize.File, s *entity.PeriodSummary) error {
	rows := [][]any{
		{"Period start", s.Start.String()},
		{"Period end", s.End.String()},
		{"Registers", s.Count},
		{"Days in period", s.DaysInPeriod},
		{"Days with records", s.DaysWithRecords},
		{"Consistency (%)", s.Consistency},
	}
	if s.AverageCaloriesPerDay != nil {
		rows = append(rows, []any{"Average calories per day", *s.AverageCaloriesPerDay})
	}
	rows = append(rows, []any{}, []any{"Nutrient", "Total", "Daily goal", "Progress (%)"})

	for _, n := range summaryNutrients {
		row := []any{nutrientLabels[n], s.Totals.Value(n)}
		if p, ok := s.GoalsProgress[n]; ok {
			row = append(row, p.Goal, p.Percentage)
		}
		rows = append(rows, row)
	}
	rows = append(rows, []any{"Estimated weight (g)", s.Totals.EstimatedWeight})

	if err := writeRows(f, summarySheet, rows); err != nil {
		return err
	}

	return f.SetColWidth(summarySheet, "A", "A", 26)
}

func writeDaily(f *excelize.File, s *entity.PeriodSummary) error {
	header := []any{"Date", "Registers"}
	for _, n := range summaryNutrients {
		header = append(header, nutrientLabels[n])
	}
	header = append(header, "Estimated weight (g)")

	rows := make([][]any, 0, len(s.DailyBreakdown)+1)
	rows = append(rows, header)
	for _, day := range s.DailyBreakdown {
		row := []any{day.Date.String(), day.Count}
		for _, n := range summaryNutrients {
			row = append(row, day.Totals.Value(n))
		}
		row = append(row, day.Totals.EstimatedWeight)
		rows = append(rows, row)
	}

	if err := writeRows(f, dailySheet, rows); err != nil {
		return err
	}

	return f.SetColWidth(dailySheet, "A", "A", 12)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "write %s row %d", sheet, i+1)
		}
	}

	return nil
}
