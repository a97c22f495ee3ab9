package impl

import (
	"context"
	"log/slog"
	"time"

	"nutriledger/config"
	deliverycontext "nutriledger/internal/delivery/context"
	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/goaltext"
	"nutriledger/internal/domain/period"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/errors"
	"nutriledger/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// advisorHistoryDays is how far back recent intake is summarized for the advisor.
const advisorHistoryDays = 7

type goalService struct {
	goalRepo repository.GoalRepository
	advisor  service.GoalAdvisor
	summary  usecase.SummaryUsecase
	location *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

// GoalServiceParams holds dependencies for GoalService, injected by Fx.
type GoalServiceParams struct {
	fx.In

	GoalRepo repository.GoalRepository
	Advisor  service.GoalAdvisor
	Summary  usecase.SummaryUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// NewGoalService is the constructor for goalService.
func NewGoalService(params GoalServiceParams) (usecase.GoalUsecase, error) {
	loc, err := params.Config.Location()
	if err != nil {
		return nil, err
	}

	return &goalService{
		goalRepo: params.GoalRepo,
		advisor:  params.Advisor,
		summary:  params.Summary,
		location: loc,
		now:      time.Now,
		logger:   params.Logger,
	}, nil
}

func (srv *goalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *goalService) GetGoal(ctx context.Context, userID uuid.UUID) (*entity.Goal, error) {
	goal, err := srv.goalRepo.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		return &entity.Goal{UserID: userID}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find goal")
	}

	return goal, nil
}

func (srv *goalService) SetGoal(ctx context.Context, userID uuid.UUID, values entity.GoalValues) (*entity.Goal, error) {
	return srv.update(ctx, userID, func(g *entity.Goal, now time.Time) {
		g.Apply(values, entity.GoalMethodManual, now)
	})
}

func (srv *goalService) ClearGoal(ctx context.Context, userID uuid.UUID) (*entity.Goal, error) {
	return srv.update(ctx, userID, func(g *entity.Goal, now time.Time) {
		g.ClearNutrition(now)
	})
}

func (srv *goalService) SuggestGoal(ctx context.Context, userID uuid.UUID, message string) (*usecase.GoalSuggestionOutput, error) {
	profile := service.GoalProfile{Message: message}
	if avg := srv.recentAverage(ctx, userID); avg != nil {
		profile.AverageCaloriesPerDay = avg
	}

	suggestion, err := srv.advisor.SuggestGoals(ctx, profile)
	if err != nil {
		srv.log(ctx).Warn("Goal advisor failed", slog.String("userID", userID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrGoalAdvisorUnavailable.WithDetails(err.Error())
	}

	structured := suggestion.Values != nil
	values := suggestion.Values
	if !structured {
		parsed, err := goaltext.ExtractGoals(suggestion.Text)
		if err != nil {
			srv.log(ctx).Warn("Goal suggestion could not be parsed", slog.String("userID", userID.String()), slog.Any("error", err))

			return nil, translateDomainError(err)
		}
		values = &parsed
	}

	waterML := suggestion.WaterML
	if waterML == nil {
		if water, err := goaltext.ExtractWater(suggestion.Text); err == nil {
			waterML = &water.Milliliters
		}
	}

	goal, err := srv.update(ctx, userID, func(g *entity.Goal, now time.Time) {
		g.Apply(*values, entity.GoalMethodAISuggested, now)
		if waterML != nil {
			g.SetWater(*waterML, entity.GoalMethodAISuggested, now)
		}
	})
	if err != nil {
		return nil, err
	}

	return &usecase.GoalSuggestionOutput{Goal: goal, Text: suggestion.Text, Structured: structured}, nil
}

func (srv *goalService) ApplyGoalText(ctx context.Context, userID uuid.UUID, text string) (*entity.Goal, error) {
	values, err := goaltext.ExtractGoals(text)
	if err != nil {
		return nil, translateDomainError(err)
	}

	return srv.update(ctx, userID, func(g *entity.Goal, now time.Time) {
		g.Apply(values, entity.GoalMethodAISuggested, now)
	})
}

func (srv *goalService) SetWaterGoal(ctx context.Context, userID uuid.UUID, milliliters int) (*entity.Goal, error) {
	if milliliters <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("water goal must be positive")
	}

	return srv.update(ctx, userID, func(g *entity.Goal, now time.Time) {
		g.SetWater(milliliters, entity.GoalMethodManual, now)
	})
}

func (srv *goalService) ApplyWaterText(ctx context.Context, userID uuid.UUID, text string) (*entity.Goal, error) {
	water, err := goaltext.ExtractWater(text)
	if err != nil {
		return nil, translateDomainError(err)
	}

	return srv.update(ctx, userID, func(g *entity.Goal, now time.Time) {
		g.SetWater(water.Milliliters, entity.GoalMethodAISuggested, now)
	})
}

// update overwrites the whole goal row; concurrent updates are last-write-wins.
func (srv *goalService) update(ctx context.Context, userID uuid.UUID, mutate func(g *entity.Goal, now time.Time)) (*entity.Goal, error) {
	goal, err := srv.GetGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	mutate(goal, srv.now())
	if err := srv.goalRepo.Upsert(ctx, goal); err != nil {
		return nil, errors.Wrap(err, "failed to save goal")
	}

	srv.log(ctx).Info("Goal updated",
		slog.String("userID", userID.String()),
		slog.String("method", string(goal.Method)))

	return goal, nil
}

func (srv *goalService) recentAverage(ctx context.Context, userID uuid.UUID) *float64 {
	if srv.summary == nil {
		return nil
	}

	today := period.Today(srv.now(), srv.location)
	desc := period.Custom(today.AddDays(-(advisorHistoryDays - 1)), today)
	summary, err := srv.summary.PeriodSummary(ctx, userID, desc)
	if err != nil {
		srv.log(ctx).Debug("Recent intake unavailable for goal advisor", slog.Any("error", err))

		return nil
	}
	if summary.DaysWithRecords == 0 {
		return nil
	}

	return summary.AverageCaloriesPerDay
}
