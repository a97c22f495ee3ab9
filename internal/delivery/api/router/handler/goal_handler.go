package handler

import (
	"log/slog"
	"net/http"

	"nutriledger/internal/delivery/api/response"
	"nutriledger/internal/domain/entity"
	"nutriledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GoalHandlerParams holds dependencies for GoalHandler, injected by Fx.
type GoalHandlerParams struct {
	fx.In

	GoalUC usecase.GoalUsecase
	Logger *slog.Logger
}

// GoalHandler serves daily goal endpoints.
type GoalHandler struct {
	goalUC usecase.GoalUsecase
	logger *slog.Logger
}

// NewGoalHandler is the constructor for GoalHandler
func NewGoalHandler(params GoalHandlerParams) *GoalHandler {
	return &GoalHandler{
		goalUC: params.GoalUC,
		logger: params.Logger,
	}
}

// SetGoalRequest is a complete set of manual targets.
type SetGoalRequest struct {
	Calories float64 `json:"calories" validate:"gt=0,lte=20000"`
	Protein  float64 `json:"protein" validate:"gte=0,lte=2000"`
	Carbs    float64 `json:"carbs" validate:"gte=0,lte=2000"`
	Fat      float64 `json:"fat" validate:"gte=0,lte=2000"`
}

// SuggestGoalRequest is the user's message to the goal advisor.
type SuggestGoalRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

// GoalTextRequest carries assistant text to parse.
type GoalTextRequest struct {
	Text string `json:"text" validate:"required,max=10000"`
}

// SetWaterGoalRequest is a manual water target.
type SetWaterGoalRequest struct {
	Milliliters int `json:"milliliters" validate:"gt=0,lte=20000"`
}

// GoalView adds the water goal in liters.
type GoalView struct {
	*entity.Goal
	WaterGoalLiters *float64 `json:"water_goal_liters,omitempty"`
}

// GoalSuggestionView is a persisted suggestion.
type GoalSuggestionView struct {
	Goal       *GoalView `json:"goal"`
	Text       string    `json:"text"`
	Structured bool      `json:"structured"`
}

func newGoalView(g *entity.Goal) *GoalView {
	view := &GoalView{Goal: g}
	if liters, ok := g.WaterGoalLiters(); ok {
		view.WaterGoalLiters = &liters
	}

	return view
}

// GetGoal returns the user's goals.
func (h *GoalHandler) GetGoal(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	goal, err := h.goalUC.GetGoal(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newGoalView(goal))
}

// SetGoal stores manual targets.
func (h *GoalHandler) SetGoal(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req SetGoalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	goal, err := h.goalUC.SetGoal(c.Request().Context(), userID, entity.GoalValues{
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newGoalView(goal))
}

// ClearGoal removes the nutrition targets.
func (h *GoalHandler) ClearGoal(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	goal, err := h.goalUC.ClearGoal(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newGoalView(goal))
}

// SuggestGoal asks the advisor for targets and stores them.
func (h *GoalHandler) SuggestGoal(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req SuggestGoalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.goalUC.SuggestGoal(c.Request().Context(), userID, req.Message)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &GoalSuggestionView{
		Goal:       newGoalView(out.Goal),
		Text:       out.Text,
		Structured: out.Structured,
	})
}

// ApplyGoalText parses targets out of assistant text and stores them.
func (h *GoalHandler) ApplyGoalText(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req GoalTextRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	goal, err := h.goalUC.ApplyGoalText(c.Request().Context(), userID, req.Text)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newGoalView(goal))
}

// SetWaterGoal stores a manual water target.
func (h *GoalHandler) SetWaterGoal(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req SetWaterGoalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	goal, err := h.goalUC.SetWaterGoal(c.Request().Context(), userID, req.Milliliters)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newGoalView(goal))
}

// ApplyWaterText parses a milliliter amount out of text and stores it.
func (h *GoalHandler) ApplyWaterText(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req GoalTextRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	goal, err := h.goalUC.ApplyWaterText(c.Request().Context(), userID, req.Text)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newGoalView(goal))
}
