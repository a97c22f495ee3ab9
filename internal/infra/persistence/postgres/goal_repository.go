package postgres

import (
	"context"

	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/errors"
	"nutriledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// goalRepository implements the repository.GoalRepository interface using GORM.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository is the constructor for goalRepository.
func NewGoalRepository(db *gorm.DB) repository.GoalRepository {
	return &goalRepository{db: db}
}

// FindByUser retrieves the goal row of a user.
func (repo *goalRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Goal, error) {
	var goalM model.GoalModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&goalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGoalNotFound
		}

		return nil, errors.Wrap(err, "failed to find goal by user")
	}

	return toGoalDomain(&goalM), nil
}

// Upsert overwrites the user's goal row, inserting it on first write.
func (repo *goalRepository) Upsert(ctx context.Context, goal *entity.Goal) error {
	goalM := fromGoalDomain(goal)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(goalM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("goal values rejected by storage")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert goal")
	}

	return nil
}

// --- Mapper Functions ---

func toGoalDomain(data *model.GoalModel) *entity.Goal {
	if data == nil {
		return nil
	}

	return &entity.Goal{
		UserID:       data.UserID,
		CaloriesGoal: data.CaloriesGoal,
		ProteinGoal:  data.ProteinGoal,
		CarbsGoal:    data.CarbsGoal,
		FatGoal:      data.FatGoal,
		Method:       entity.GoalMethod(data.Method),
		WaterGoalML:  data.WaterGoalML,
		WaterMethod:  entity.GoalMethod(data.WaterMethod),
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromGoalDomain(data *entity.Goal) *model.GoalModel {
	if data == nil {
		return nil
	}

	return &model.GoalModel{
		UserID:       data.UserID,
		CaloriesGoal: data.CaloriesGoal,
		ProteinGoal:  data.ProteinGoal,
		CarbsGoal:    data.CarbsGoal,
		FatGoal:      data.FatGoal,
		Method:       string(data.Method),
		WaterGoalML:  data.WaterGoalML,
		WaterMethod:  string(data.WaterMethod),
		UpdatedAt:    utc(data.UpdatedAt),
	}
}
