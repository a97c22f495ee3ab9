package model

import (
	"time"

	"github.com/google/uuid"
)

// GoalModel mirrors the 'goals' table, one row per user.
type GoalModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	CaloriesGoal *float64  `gorm:"type:double precision"`
	ProteinGoal  *float64  `gorm:"type:double precision"`
	CarbsGoal    *float64  `gorm:"type:double precision"`
	FatGoal      *float64  `gorm:"type:double precision"`
	Method       string    `gorm:"type:text;not null;default:''"`
	WaterGoalML  *int      `gorm:"column:water_goal_ml"`
	WaterMethod  string    `gorm:"type:text;not null;default:''"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (GoalModel) TableName() string {
	return "goals"
}
