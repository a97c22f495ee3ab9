package impl

import (
	"context"
	"testing"

	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/period"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/errors"
	mockRepo "nutriledger/internal/mocks/repository"
	mockService "nutriledger/internal/mocks/service"
	mockUsecase "nutriledger/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type goalServiceFixtures struct {
	service  *goalService
	goalRepo *mockRepo.MockGoalRepository
	advisor  *mockService.MockGoalAdvisor
	summary  *mockUsecase.MockSummaryUsecase
}

func createTestGoalService(t *testing.T) goalServiceFixtures {
	goalRepo := mockRepo.NewMockGoalRepository(t)
	advisor := mockService.NewMockGoalAdvisor(t)
	summary := mockUsecase.NewMockSummaryUsecase(t)

	svc, err := NewGoalService(GoalServiceParams{
		GoalRepo: goalRepo,
		Advisor:  advisor,
		Summary:  summary,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})
	require.NoError(t, err)

	impl := svc.(*goalService)
	impl.now = fixedNow

	return goalServiceFixtures{
		service:  impl,
		goalRepo: goalRepo,
		advisor:  advisor,
		summary:  summary,
	}
}

func TestGoalService_GetGoal_NotFoundIsEmpty(t *testing.T) {
	fx := createTestGoalService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.goalRepo.EXPECT().FindByUser(ctx, userID).Return(nil, repository.ErrGoalNotFound)

	goal, err := fx.service.GetGoal(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, goal.UserID)
	assert.False(t, goal.HasNutritionGoals())
}

func TestGoalService_SetGoal(t *testing.T) {
	fx := createTestGoalService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Goal{UserID: userID, WaterGoalML: ptr(2000)}

	fx.goalRepo.EXPECT().FindByUser(ctx, userID).Return(existing, nil)
	fx.goalRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(g *entity.Goal) bool {
			return g.Method == entity.GoalMethodManual && *g.CaloriesGoal == 2100 && *g.WaterGoalML == 2000
		})).
		Return(nil)

	goal, err := fx.service.SetGoal(ctx, userID, entity.GoalValues{Calories: 2100, Protein: 140, Carbs: 230, Fat: 65})
	require.NoError(t, err)
	assert.Equal(t, fixedNow(), goal.UpdatedAt)
}

func TestGoalService_ClearGoal(t *testing.T) {
	fx := createTestGoalService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Goal{UserID: userID, CaloriesGoal: ptr(2000.0), Method: entity.GoalMethodManual}

	fx.goalRepo.EXPECT().FindByUser(ctx, userID).Return(existing, nil)
	fx.goalRepo.EXPECT().Upsert(ctx, existing).Return(nil)

	goal, err := fx.service.ClearGoal(ctx, userID)
	require.NoError(t, err)
	assert.False(t, goal.HasNutritionGoals())
}

func TestGoalService_SuggestGoal_Structured(t *testing.T) {
	fx := createTestGoalService(t)

	ctx := context.Background()
	userID := uuid.New()
	avg := 1900.0

	fx.summary.EXPECT().
		PeriodSummary(ctx, userID, period.Custom(period.Today(fixedNow(), nil).AddDays(-6), period.Today(fixedNow(), nil))).
		Return(&entity.PeriodSummary{DaysWithRecords: 4, AverageCaloriesPerDay: &avg}, nil)
	fx.advisor.EXPECT().
		SuggestGoals(ctx, service.GoalProfile{Message: "30 years, 70kg, lose fat", AverageCaloriesPerDay: &avg}).
		Return(&service.GoalSuggestion{
			Values:  &entity.GoalValues{Calories: 1800, Protein: 140, Carbs: 180, Fat: 60},
			WaterML: ptr(2500),
			Text:    `{"calories":1800}`,
		}, nil)
	fx.goalRepo.EXPECT().FindByUser(ctx, userID).Return(nil, repository.ErrGoalNotFound)
	fx.goalRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

	out, err := fx.service.SuggestGoal(ctx, userID, "30 years, 70kg, lose fat")
	require.NoError(t, err)
	assert.True(t, out.Structured)
	assert.Equal(t, entity.GoalMethodAISuggested, out.Goal.Method)
	v, _ := out.Goal.Target(entity.NutrientCalories)
	assert.InDelta(t, 1800, v, 1e-9)
	liters, ok := out.Goal.WaterGoalLiters()
	assert.True(t, ok)
	assert.InDelta(t, 2.5, liters, 1e-9)
}

func TestGoalService_SuggestGoal_FreeTextFallback(t *testing.T) {
	fx := createTestGoalService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.summary.EXPECT().PeriodSummary(ctx, userID, mock.Anything).Return(&entity.PeriodSummary{}, nil)
	fx.advisor.EXPECT().SuggestGoals(ctx, service.GoalProfile{Message: "hola"}).Return(&service.GoalSuggestion{
		Text: "Tus metas: calorías: 2200, proteína: 160g, carbohidratos: 250g, grasa: 70g. Agua: 2000 ml",
	}, nil)
	fx.goalRepo.EXPECT().FindByUser(ctx, userID).Return(nil, repository.ErrGoalNotFound)
	fx.goalRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

	out, err := fx.service.SuggestGoal(ctx, userID, "hola")
	require.NoError(t, err)
	assert.False(t, out.Structured)
	fat, _ := out.Goal.Target(entity.NutrientFat)
	assert.InDelta(t, 70, fat, 1e-9)
	require.NotNil(t, out.Goal.WaterGoalML)
	assert.Equal(t, 2000, *out.Goal.WaterGoalML)
}

func TestGoalService_SuggestGoal_IncompleteTextPersistsNothing(t *testing.T) {
	fx := createTestGoalService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.summary.EXPECT().PeriodSummary(ctx, userID, mock.Anything).Return(nil, errors.New("db down"))
	fx.advisor.EXPECT().SuggestGoals(ctx, mock.Anything).Return(&service.GoalSuggestion{
		Text: "calorías: 2200, proteína: 160g, carbohidratos: 250g",
	}, nil)

	_, err := fx.service.SuggestGoal(ctx, userID, "")
	assert.ErrorIs(t, err, domainerrors.ErrGoalParseFailed)
}

func TestGoalService_SuggestGoal_AdvisorError(t *testing.T) {
	fx := createTestGoalService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.summary.EXPECT().PeriodSummary(ctx, userID, mock.Anything).Return(&entity.PeriodSummary{}, nil)
	fx.advisor.EXPECT().SuggestGoals(ctx, mock.Anything).Return(nil, errors.New("quota exceeded"))

	_, err := fx.service.SuggestGoal(ctx, userID, "")
	assert.ErrorIs(t, err, domainerrors.ErrGoalAdvisorUnavailable)
}

func TestGoalService_ApplyGoalText(t *testing.T) {
	ctx := context.Background()

	t.Run("complete text", func(t *testing.T) {
		fx := createTestGoalService(t)
		userID := uuid.New()

		fx.goalRepo.EXPECT().FindByUser(ctx, userID).Return(&entity.Goal{UserID: userID}, nil)
		fx.goalRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

		goal, err := fx.service.ApplyGoalText(ctx, userID, "calorías: 2200, proteína: 160g, carbohidratos: 250g, grasa: 70g")
		require.NoError(t, err)
		protein, _ := goal.Target(entity.NutrientProtein)
		assert.InDelta(t, 160, protein, 1e-9)
		assert.Equal(t, entity.GoalMethodAISuggested, goal.Method)
	})

	t.Run("incomplete text", func(t *testing.T) {
		fx := createTestGoalService(t)

		_, err := fx.service.ApplyGoalText(ctx, uuid.New(), "calorías: 2200")
		assert.ErrorIs(t, err, domainerrors.ErrGoalParseFailed)
	})
}

func TestGoalService_WaterGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("manual", func(t *testing.T) {
		fx := createTestGoalService(t)
		userID := uuid.New()

		fx.goalRepo.EXPECT().FindByUser(ctx, userID).Return(nil, repository.ErrGoalNotFound)
		fx.goalRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

		goal, err := fx.service.SetWaterGoal(ctx, userID, 1800)
		require.NoError(t, err)
		assert.Equal(t, entity.GoalMethodManual, goal.WaterMethod)
	})

	t.Run("non-positive", func(t *testing.T) {
		fx := createTestGoalService(t)

		_, err := fx.service.SetWaterGoal(ctx, uuid.New(), 0)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("from text", func(t *testing.T) {
		fx := createTestGoalService(t)
		userID := uuid.New()

		fx.goalRepo.EXPECT().FindByUser(ctx, userID).Return(nil, repository.ErrGoalNotFound)
		fx.goalRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

		goal, err := fx.service.ApplyWaterText(ctx, userID, "Te recomiendo 2300 ml diarios")
		require.NoError(t, err)
		liters, _ := goal.WaterGoalLiters()
		assert.InDelta(t, 2.3, liters, 1e-9)
	})

	t.Run("text without amount", func(t *testing.T) {
		fx := createTestGoalService(t)

		_, err := fx.service.ApplyWaterText(ctx, uuid.New(), "drink plenty")
		assert.ErrorIs(t, err, domainerrors.ErrGoalParseFailed)
	})
}
