package ledger

import (
	"testing"
	"time"

	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/period"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	user  uuid.UUID
	other uuid.UUID
}

func newFixture() fixture {
	return fixture{user: uuid.New(), other: uuid.New()}
}

func (f fixture) completed(t *testing.T, owner uuid.UUID, at time.Time, calories, protein float64) *entity.Register {
	t.Helper()

	r := entity.NewRegister(owner, "img", "", at)
	items := []entity.FoodItem{{Name: "meal", Quantity: 100, Unit: "g", Calories: calories, Protein: protein, Confidence: ptr(0.9)}}
	require.NoError(t, r.Complete(items, "", at))

	return r
}

func (f fixture) withStatus(t *testing.T, at time.Time, status entity.RegisterStatus) *entity.Register {
	t.Helper()

	r := entity.NewRegister(f.user, "img", "", at)
	items := []entity.FoodItem{{Name: "meal", Calories: 999, Confidence: ptr(0.2)}}
	switch status {
	case entity.RegisterStatusFailed:
		require.NoError(t, r.Fail("boom", at))
	case entity.RegisterStatusReviewing:
		require.NoError(t, r.MarkForReview(items, "", "low confidence", at))
	}

	return r
}

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func day(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestAggregate_DailyGoalProgress(t *testing.T) {
	t.Parallel()

	f := newFixture()
	regs := []*entity.Register{
		f.completed(t, f.user, at(2024, 3, 15, 8), 300, 20),
		f.completed(t, f.user, at(2024, 3, 15, 13), 450, 30),
		f.completed(t, f.user, at(2024, 3, 15, 20), 600, 40),
	}
	goal := &entity.Goal{UserID: f.user, CaloriesGoal: ptr(2000.0), ProteinGoal: ptr(60.0)}

	s := Aggregate(Input{
		UserID:      f.user,
		Range:       period.Single(day(2024, 3, 15)),
		Granularity: GranularityDay,
		Registers:   regs,
		Goal:        goal,
	})

	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 1350, s.Totals.Calories, 1e-9)
	assert.Equal(t, 1, s.DaysInPeriod)
	assert.Equal(t, 1, s.DaysWithRecords)
	assert.Equal(t, 100, s.Consistency)
	require.Len(t, s.GoalsProgress, 2)
	assert.Equal(t, entity.GoalProgress{Consumed: 1350, Goal: 2000, Percentage: 68}, s.GoalsProgress[entity.NutrientCalories])
	// overage is reported unclamped
	assert.Equal(t, 150, s.GoalsProgress[entity.NutrientProtein].Percentage)
	assert.Equal(t, 100, s.GoalsProgress[entity.NutrientProtein].DisplayPercentage())
	assert.Nil(t, s.AverageCaloriesPerDay)
}

func TestAggregate_EmptyRange(t *testing.T) {
	t.Parallel()

	f := newFixture()
	goal := &entity.Goal{CaloriesGoal: ptr(2000.0)}

	for _, g := range []Granularity{GranularityDay, GranularityPeriod} {
		s := Aggregate(Input{
			UserID:      f.user,
			Range:       period.DateRange{Start: day(2024, 3, 1), End: day(2024, 3, 1)},
			Granularity: g,
			Goal:        goal,
		})

		assert.Equal(t, 0, s.Count)
		assert.Equal(t, entity.NutrientTotals{}, s.Totals)
		assert.Equal(t, 0, s.DaysWithRecords)
		assert.Equal(t, 0, s.Consistency)
		assert.Nil(t, s.GoalsProgress)
		assert.Len(t, s.DailyBreakdown, 1)
		if g == GranularityPeriod {
			require.NotNil(t, s.AverageCaloriesPerDay)
			assert.Zero(t, *s.AverageCaloriesPerDay)
		}
	}
}

func TestAggregate_PeriodBreakdownAndAverage(t *testing.T) {
	t.Parallel()

	f := newFixture()
	regs := []*entity.Register{
		f.completed(t, f.user, at(2024, 3, 10, 9), 500, 10),
		f.completed(t, f.user, at(2024, 3, 10, 19), 700, 10),
		f.completed(t, f.user, at(2024, 3, 12, 12), 800, 10),
		// outside the range
		f.completed(t, f.user, at(2024, 3, 9, 23), 5000, 10),
		f.completed(t, f.user, at(2024, 3, 14, 0), 5000, 10),
	}

	s := Aggregate(Input{
		UserID:      f.user,
		Range:       period.DateRange{Start: day(2024, 3, 10), End: day(2024, 3, 13)},
		Granularity: GranularityPeriod,
		Registers:   regs,
		Goal:        &entity.Goal{CaloriesGoal: ptr(2000.0)},
	})

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 4, s.DaysInPeriod)
	assert.Equal(t, 2, s.DaysWithRecords)
	assert.Equal(t, 50, s.Consistency)
	assert.InDelta(t, 2000, s.Totals.Calories, 1e-9)
	assert.Nil(t, s.GoalsProgress, "goals are daily targets")
	require.NotNil(t, s.AverageCaloriesPerDay)
	assert.InDelta(t, 1000, *s.AverageCaloriesPerDay, 1e-9)

	require.Len(t, s.DailyBreakdown, 4)
	assert.Equal(t, day(2024, 3, 10), s.DailyBreakdown[0].Date)
	assert.Equal(t, 2, s.DailyBreakdown[0].Count)
	assert.InDelta(t, 1200, s.DailyBreakdown[0].Totals.Calories, 1e-9)
	assert.Equal(t, day(2024, 3, 11), s.DailyBreakdown[1].Date)
	assert.Equal(t, entity.NutrientTotals{}, s.DailyBreakdown[1].Totals)
	assert.InDelta(t, 800, s.DailyBreakdown[2].Totals.Calories, 1e-9)
	assert.Equal(t, 0, s.DailyBreakdown[3].Count)
}

func TestAggregate_SumInvariant(t *testing.T) {
	t.Parallel()

	f := newFixture()
	var regs []*entity.Register
	for i := range 20 {
		ts := at(2024, 2, 20, 7).Add(time.Duration(i) * 17 * time.Hour)
		regs = append(regs, f.completed(t, f.user, ts, float64(100+i*37), float64(i)*1.5))
	}

	s := Aggregate(Input{
		UserID:      f.user,
		Range:       period.DateRange{Start: day(2024, 2, 20), End: day(2024, 3, 5)},
		Granularity: GranularityPeriod,
		Registers:   regs,
	})

	var sum entity.NutrientTotals
	count := 0
	for _, d := range s.DailyBreakdown {
		sum = sum.Plus(d.Totals)
		count += d.Count
	}
	assert.Equal(t, s.Totals, sum)
	assert.Equal(t, s.Count, count)
}

func TestAggregate_ExcludesNonCompletedAndForeignRegisters(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ts := at(2024, 3, 15, 12)
	regs := []*entity.Register{
		f.completed(t, f.user, ts, 400, 10),
		f.completed(t, f.other, ts, 900, 10),
		f.withStatus(t, ts, entity.RegisterStatusAnalyzing),
		f.withStatus(t, ts, entity.RegisterStatusReviewing),
		f.withStatus(t, ts, entity.RegisterStatusFailed),
		nil,
	}

	s := Aggregate(Input{
		UserID:      f.user,
		Range:       period.Single(day(2024, 3, 15)),
		Granularity: GranularityDay,
		Registers:   regs,
	})

	assert.Equal(t, 1, s.Count)
	assert.InDelta(t, 400, s.Totals.Calories, 1e-9)
	assert.Nil(t, s.GoalsProgress, "no goal set")
}

func TestAggregate_BucketsInConfiguredLocation(t *testing.T) {
	t.Parallel()

	f := newFixture()
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 02:00 UTC on the 16th is still the 15th five hours west
	late := f.completed(t, f.user, at(2024, 3, 16, 2), 300, 10)

	inLoc := Aggregate(Input{UserID: f.user, Range: period.Single(day(2024, 3, 15)), Registers: []*entity.Register{late}, Location: loc})
	inUTC := Aggregate(Input{UserID: f.user, Range: period.Single(day(2024, 3, 15)), Registers: []*entity.Register{late}})

	assert.Equal(t, 1, inLoc.Count)
	assert.Equal(t, 0, inUTC.Count)
}

func TestAggregate_Idempotent(t *testing.T) {
	t.Parallel()

	f := newFixture()
	regs := []*entity.Register{
		f.completed(t, f.user, at(2024, 3, 1, 9), 500, 10),
		f.completed(t, f.user, at(2024, 3, 3, 9), 650, 12),
	}
	in := Input{
		UserID:      f.user,
		Range:       period.DateRange{Start: day(2024, 3, 1), End: day(2024, 3, 7)},
		Granularity: GranularityPeriod,
		Registers:   regs,
	}

	assert.Equal(t, Aggregate(in), Aggregate(in))
	assert.Equal(t, entity.RegisterStatusCompleted, regs[0].Status)
}
