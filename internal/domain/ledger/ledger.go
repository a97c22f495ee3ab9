// Package ledger aggregates completed registers over a resolved date range.
package ledger

import (
	"math"
	"time"

	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/period"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Granularity selects between the single-day and the multi-day summary shape.
type Granularity int

const (
	// GranularityDay adds goal progress when the range is one day.
	GranularityDay Granularity = iota
	// GranularityPeriod adds average calories per recorded day instead of goal progress.
	GranularityPeriod
)

// Input is a snapshot of everything one aggregation reads.
type Input struct {
	UserID      uuid.UUID
	Range       period.DateRange
	Granularity Granularity
	Registers   []*entity.Register
	Goal        *entity.Goal   // optional
	Location    *time.Location // day bucketing; nil means UTC
}

// Aggregate computes the summary for in. It never fails: an empty selection yields zero totals.
func Aggregate(in Input) *entity.PeriodSummary {
	selected := Select(in.Registers, in.UserID, in.Range, in.Location)

	byDay := make(map[civil.Date]*entity.DailyTotals, len(selected))
	summary := &entity.PeriodSummary{
		UserID:       in.UserID,
		Start:        in.Range.Start,
		End:          in.Range.End,
		Count:        len(selected),
		DaysInPeriod: in.Range.Days(),
	}

	for _, r := range selected {
		day := period.DateOf(r.CreatedAt, in.Location)
		bucket, ok := byDay[day]
		if !ok {
			bucket = &entity.DailyTotals{Date: day}
			byDay[day] = bucket
		}
		bucket.Totals = bucket.Totals.Plus(*r.Totals)
		bucket.Count++
	}

	dates := in.Range.Dates()
	summary.DailyBreakdown = make([]entity.DailyTotals, 0, len(dates))
	for _, d := range dates {
		bucket, ok := byDay[d]
		if !ok {
			summary.DailyBreakdown = append(summary.DailyBreakdown, entity.DailyTotals{Date: d})
			continue
		}
		summary.Totals = summary.Totals.Plus(bucket.Totals)
		summary.DaysWithRecords++
		summary.DailyBreakdown = append(summary.DailyBreakdown, *bucket)
	}

	if summary.DaysInPeriod > 0 {
		summary.Consistency = int(math.Round(float64(summary.DaysWithRecords) / float64(summary.DaysInPeriod) * 100))
	}

	switch in.Granularity {
	case GranularityDay:
		if summary.SingleDay() && summary.Count > 0 {
			summary.GoalsProgress = goalsProgress(summary.Totals, in.Goal)
		}
	case GranularityPeriod:
		avg := 0.0
		if summary.DaysWithRecords > 0 {
			avg = summary.Totals.Calories / float64(summary.DaysWithRecords)
		}
		summary.AverageCaloriesPerDay = &avg
	}

	return summary
}

// Select returns the registers owned by userID that are completed and were created inside rng.
func Select(registers []*entity.Register, userID uuid.UUID, rng period.DateRange, loc *time.Location) []*entity.Register {
	out := make([]*entity.Register, 0, len(registers))
	for _, r := range registers {
		if r == nil || r.OwnerID != userID || !r.Contributes() {
			continue
		}
		if !rng.Contains(period.DateOf(r.CreatedAt, loc)) {
			continue
		}
		out = append(out, r)
	}

	return out
}

func goalsProgress(consumed entity.NutrientTotals, goal *entity.Goal) map[entity.Nutrient]entity.GoalProgress {
	progress := make(map[entity.Nutrient]entity.GoalProgress)
	for _, n := range entity.GoalNutrients {
		target, ok := goal.Target(n)
		if !ok {
			continue
		}
		progress[n] = entity.NewGoalProgress(consumed.Value(n), target)
	}

	if len(progress) == 0 {
		return nil
	}

	return progress
}
