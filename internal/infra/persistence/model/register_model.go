package model

import (
	"time"

	"nutriledger/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RegisterModel mirrors the 'registers' table. IDs are UUIDv7 assigned by the application.
type RegisterModel struct {
	ID            uuid.UUID                           `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID                           `gorm:"type:uuid;not null;index:idx_registers_owner_created,priority:1"`
	Status        string                              `gorm:"type:text;not null;index"`
	Description   string                              `gorm:"type:text;not null;default:''"`
	ImageRef      string                              `gorm:"type:text;not null"`
	AIDescription string                              `gorm:"column:ai_description;type:text;not null;default:''"`
	FailureReason string                              `gorm:"type:text;not null;default:''"`
	FoodItems     datatypes.JSONSlice[entity.FoodItem] `gorm:"type:jsonb;not null;default:'[]'"`
	ReviewItems   datatypes.JSONSlice[entity.FoodItem] `gorm:"type:jsonb;not null;default:'[]'"`
	// Totals is NULL until the register completes.
	Totals    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"not null;index:idx_registers_owner_created,priority:2,sort:desc"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RegisterModel) TableName() string {
	return "registers"
}
