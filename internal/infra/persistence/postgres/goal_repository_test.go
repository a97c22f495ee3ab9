package postgres

import (
	"context"
	"testing"
	"time"

	"nutriledger/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder keeps the statements gorm renders in dry-run mode.
type sqlRecorder struct {
	logger.Interface
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{Interface: logger.Discard}
	db, err := gorm.Open(gormpg.New(gormpg.Config{DSN: "host=localhost user=ledger dbname=ledger sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)

	return db, rec
}

func TestGoalMapping_RoundTrip(t *testing.T) {
	updated := time.Date(2024, 3, 15, 8, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))
	goal := &entity.Goal{
		UserID:       uuid.New(),
		CaloriesGoal: ptr(2200.0),
		ProteinGoal:  ptr(160.0),
		CarbsGoal:    ptr(250.0),
		FatGoal:      ptr(70.0),
		Method:       entity.GoalMethodAISuggested,
		WaterGoalML:  ptr(2500),
		WaterMethod:  entity.GoalMethodManual,
		UpdatedAt:    updated,
	}

	goalM := fromGoalDomain(goal)
	assert.Equal(t, "ai-suggested", goalM.Method)
	assert.Equal(t, "manual", goalM.WaterMethod)
	assert.Equal(t, time.UTC, goalM.UpdatedAt.Location())

	back := toGoalDomain(goalM)
	assert.Equal(t, goal.UserID, back.UserID)
	assert.Equal(t, goal.CaloriesGoal, back.CaloriesGoal)
	assert.Equal(t, goal.ProteinGoal, back.ProteinGoal)
	assert.Equal(t, goal.CarbsGoal, back.CarbsGoal)
	assert.Equal(t, goal.FatGoal, back.FatGoal)
	assert.Equal(t, goal.WaterGoalML, back.WaterGoalML)
	assert.Equal(t, goal.Method, back.Method)
	assert.Equal(t, goal.WaterMethod, back.WaterMethod)
	assert.True(t, back.UpdatedAt.Equal(updated))
}

func TestGoalMapping_ClearedGoalKeepsNils(t *testing.T) {
	goal := &entity.Goal{UserID: uuid.New(), WaterGoalML: ptr(2000), WaterMethod: entity.GoalMethodManual}

	back := toGoalDomain(fromGoalDomain(goal))

	assert.Nil(t, back.CaloriesGoal)
	assert.Nil(t, back.FatGoal)
	_, ok := back.Target(entity.NutrientCalories)
	assert.False(t, ok)
	assert.Equal(t, 2000, *back.WaterGoalML)
	assert.Nil(t, toGoalDomain(nil))
	assert.Nil(t, fromGoalDomain(nil))
}

func TestGoalRepository_UpsertOverwritesWholeRow(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewGoalRepository(db)

	goal := &entity.Goal{
		UserID:       uuid.New(),
		CaloriesGoal: ptr(2000.0),
		Method:       entity.GoalMethodManual,
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, repo.Upsert(context.Background(), goal))

	require.Len(t, rec.statements, 1)
	sql := rec.statements[0]
	assert.Contains(t, sql, `INSERT INTO "goals"`)
	assert.Contains(t, sql, `ON CONFLICT ("user_id") DO UPDATE SET`)
	// Unset targets are written too, so clearing a goal erases the old values.
	for _, column := range []string{"calories_goal", "protein_goal", "carbs_goal", "fat_goal", "method", "water_goal_ml", "water_method", "updated_at"} {
		assert.Contains(t, sql, `"`+column+`"="excluded"."`+column+`"`)
	}
	assert.NotContains(t, sql, `"user_id"="excluded"."user_id"`)
}
