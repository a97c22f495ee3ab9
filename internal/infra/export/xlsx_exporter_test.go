package export

import (
	"bytes"
	"testing"

	"nutriledger/internal/domain/entity"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_RoundTrip(t *testing.T) {
	day1 := civil.Date{Year: 2024, Month: 3, Day: 14}
	day2 := civil.Date{Year: 2024, Month: 3, Day: 15}
	avg := 675.0

	summary := &entity.PeriodSummary{
		Start:           day1,
		End:             day2,
		Totals:          entity.NutrientTotals{Nutrients: entity.Nutrients{Calories: 1350, Protein: 80}},
		Count:           3,
		DaysInPeriod:    2,
		DaysWithRecords: 1,
		Consistency:     50,
		DailyBreakdown: []entity.DailyTotals{
			{Date: day1},
			{Date: day2, Count: 3, Totals: entity.NutrientTotals{Nutrients: entity.Nutrients{Calories: 1350, Protein: 80}}},
		},
		GoalsProgress: map[entity.Nutrient]entity.GoalProgress{
			entity.NutrientCalories: entity.NewGoalProgress(1350, 2000),
		},
		AverageCaloriesPerDay: &avg,
	}

	exporter := NewXLSXExporter()
	assert.Equal(t, ".xlsx", exporter.FileExtension())

	var buf bytes.Buffer
	require.NoError(t, exporter.Export(&buf, summary))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, dailySheet}, f.GetSheetList())

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Period start", "2024-03-14"}, rows[0])
	assert.Equal(t, []string{"Registers", "3"}, rows[2])
	assert.Equal(t, []string{"Average calories per day", "675"}, rows[6])
	assert.Equal(t, []string{"Calories (kcal)", "1350", "2000", "68"}, rows[9])
	assert.Equal(t, []string{"Protein (g)", "80"}, rows[10])

	daily, err := f.GetRows(dailySheet)
	require.NoError(t, err)
	require.Len(t, daily, 3)
	assert.Equal(t, "Date", daily[0][0])
	assert.Equal(t, []string{"2024-03-14", "0", "0"}, daily[1][:3])
	assert.Equal(t, []string{"2024-03-15", "3", "1350", "80"}, daily[2][:4])
}

func TestXLSXExporter_EmptyPeriodHasNoAverageRow(t *testing.T) {
	day := civil.Date{Year: 2024, Month: 3, Day: 15}

	var buf bytes.Buffer
	require.NoError(t, NewXLSXExporter().Export(&buf, &entity.PeriodSummary{
		Start:          day,
		End:            day,
		DaysInPeriod:   1,
		DailyBreakdown: []entity.DailyTotals{{Date: day}},
	}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nutrient", "Total", "Daily goal", "Progress (%)"}, rows[7])
	assert.Equal(t, []string{"Calories (kcal)", "0"}, rows[8])
}
