// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/errors"
	"nutriledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// registerRepository implements the repository.RegisterRepository interface using GORM.
type registerRepository struct {
	db *gorm.DB
}

// NewRegisterRepository is the constructor for registerRepository.
func NewRegisterRepository(db *gorm.DB) repository.RegisterRepository {
	return &registerRepository{db: db}
}

// Create persists a new register.
func (repo *registerRepository) Create(ctx context.Context, register *entity.Register) error {
	registerM, err := fromRegisterDomain(register)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(registerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("register already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required register information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create register")
	}

	return nil
}

// FindByID retrieves a register by its ID. Reads may be served by a replica.
func (repo *registerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Register, error) {
	return repo.first(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate reads the register from the primary and locks the row until the transaction ends.
func (repo *registerRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Register, error) {
	tx := repo.db.WithContext(ctx).Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate})

	return repo.first(tx, id)
}

func (repo *registerRepository) first(tx *gorm.DB, id uuid.UUID) (*entity.Register, error) {
	var registerM model.RegisterModel
	if err := tx.Where("id = ?", id).First(&registerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegisterNotFound
		}

		return nil, errors.Wrap(err, "failed to find register by id")
	}

	return toRegisterDomain(&registerM)
}

// List returns the owner's registers in [From, To), newest first.
func (repo *registerRepository) List(ctx context.Context, q repository.RegisterQuery) ([]*entity.Register, error) {
	tx := repo.db.WithContext(ctx).
		Where("owner_id = ?", q.OwnerID).
		Where("created_at >= ? AND created_at < ?", q.From, q.To)

	if len(q.Statuses) > 0 {
		statuses := make([]string, 0, len(q.Statuses))
		for _, s := range q.Statuses {
			statuses = append(statuses, string(s))
		}
		tx = tx.Where("status IN ?", statuses)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var registerModels []*model.RegisterModel
	if err := tx.Order("created_at DESC").Order("id DESC").Find(&registerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list registers")
	}

	registers := make([]*entity.Register, 0, len(registerModels))
	for _, registerM := range registerModels {
		register, err := toRegisterDomain(registerM)
		if err != nil {
			return nil, err
		}
		registers = append(registers, register)
	}

	return registers, nil
}

// SaveTransition writes the mutable columns only while the stored status still equals from.
func (repo *registerRepository) SaveTransition(ctx context.Context, register *entity.Register, from entity.RegisterStatus) error {
	registerM, err := fromRegisterDomain(register)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RegisterModel{}).
		Where("id = ? AND status = ?", register.ID, string(from)).
		Updates(map[string]any{
			"status":         registerM.Status,
			"ai_description": registerM.AIDescription,
			"failure_reason": registerM.FailureReason,
			"food_items":     registerM.FoodItems,
			"review_items":   registerM.ReviewItems,
			"totals":         registerM.Totals,
			"updated_at":     registerM.UpdatedAt,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidTransition.WrapMessage("register state rejected by storage")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save register transition")
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(repository.ErrStaleTransition, "register %s is no longer %s", register.ID, from)
	}

	return nil
}

// Delete removes a register by its ID.
func (repo *registerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RegisterModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete register")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRegisterNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRegisterDomain converts a GORM RegisterModel to a domain Register entity.
func toRegisterDomain(data *model.RegisterModel) (*entity.Register, error) {
	if data == nil {
		return nil, nil
	}

	register := &entity.Register{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Status:        entity.RegisterStatus(data.Status),
		Description:   data.Description,
		ImageRef:      data.ImageRef,
		AIDescription: data.AIDescription,
		FailureReason: data.FailureReason,
		FoodItems:     []entity.FoodItem(data.FoodItems),
	}
	if register.FoodItems == nil {
		register.FoodItems = []entity.FoodItem{}
	}
	if len(data.ReviewItems) > 0 {
		register.ReviewItems = []entity.FoodItem(data.ReviewItems)
	}

	totals, err := decodeTotals(data.Totals)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode totals of register %s", data.ID)
	}
	register.Totals = totals

	return register, nil
}

// fromRegisterDomain converts a domain Register entity to a GORM RegisterModel.
func fromRegisterDomain(data *entity.Register) (*model.RegisterModel, error) {
	if data == nil {
		return nil, errors.New("register is nil")
	}

	totals, err := encodeTotals(data.Totals)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode totals of register %s", data.ID)
	}

	return &model.RegisterModel{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Status:        string(data.Status),
		Description:   data.Description,
		ImageRef:      data.ImageRef,
		AIDescription: data.AIDescription,
		FailureReason: data.FailureReason,
		FoodItems:     datatypes.NewJSONSlice(nonNilItems(data.FoodItems)),
		ReviewItems:   datatypes.NewJSONSlice(nonNilItems(data.ReviewItems)),
		Totals:        totals,
		CreatedAt:     utc(data.CreatedAt),
		UpdatedAt:     utc(data.UpdatedAt),
	}, nil
}

func encodeTotals(totals *entity.NutrientTotals) (datatypes.JSON, error) {
	if totals == nil {
		return nil, nil
	}

	raw, err := json.Marshal(totals)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return datatypes.JSON(raw), nil
}

func decodeTotals(raw datatypes.JSON) (*entity.NutrientTotals, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var totals entity.NutrientTotals
	if err := json.Unmarshal(raw, &totals); err != nil {
		return nil, errors.WithStack(err)
	}

	return &totals, nil
}

// nonNilItems keeps JSON columns as '[]' rather than 'null'.
func nonNilItems(items []entity.FoodItem) []entity.FoodItem {
	if items == nil {
		return []entity.FoodItem{}
	}

	return items
}

func utc(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}

	return t.UTC()
}
