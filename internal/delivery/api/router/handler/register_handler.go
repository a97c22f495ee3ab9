package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"nutriledger/config"
	"nutriledger/internal/delivery/api/response"
	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/errors"
	"nutriledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegisterHandlerParams holds dependencies for RegisterHandler, injected by Fx.
type RegisterHandlerParams struct {
	fx.In

	RegisterUC usecase.RegisterUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// RegisterHandler serves meal register endpoints.
type RegisterHandler struct {
	registerUC    usecase.RegisterUsecase
	maxImageBytes int64
	logger        *slog.Logger
}

// NewRegisterHandler is the constructor for RegisterHandler
func NewRegisterHandler(params RegisterHandlerParams) *RegisterHandler {
	return &RegisterHandler{
		registerUC:    params.RegisterUC,
		maxImageBytes: params.Config.Storage.MaxImageBytes,
		logger:        params.Logger,
	}
}

// CreateRegisterRequest carries the text part of the multipart upload.
type CreateRegisterRequest struct {
	Description string `form:"description" json:"description" validate:"max=1000"`
}

// FoodItemRequest is one user-confirmed food item.
type FoodItemRequest struct {
	Name       string   `json:"name" validate:"required,max=200"`
	Category   string   `json:"category" validate:"max=100"`
	Quantity   float64  `json:"estimated_quantity" validate:"gte=0"`
	Unit       string   `json:"quantity_unit" validate:"max=50"`
	Calories   float64  `json:"calories" validate:"gte=0"`
	Protein    float64  `json:"protein" validate:"gte=0"`
	Carbs      float64  `json:"carbs" validate:"gte=0"`
	Fat        float64  `json:"fat" validate:"gte=0"`
	Fiber      *float64 `json:"fiber,omitempty" validate:"omitempty,gte=0"`
	Sugar      *float64 `json:"sugar,omitempty" validate:"omitempty,gte=0"`
	Sodium     *float64 `json:"sodium,omitempty" validate:"omitempty,gte=0"`
	Confidence *float64 `json:"confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// ConfirmRegisterRequest optionally replaces the analyzer's candidates.
type ConfirmRegisterRequest struct {
	Items []FoodItemRequest `json:"items" validate:"omitempty,dive"`
}

// RejectRegisterRequest records why the user rejected the analysis.
type RejectRegisterRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// FoodItemView adds derived values to a food item.
type FoodItemView struct {
	entity.FoodItem
	CaloriesPer100g *float64 `json:"calories_per_100g,omitempty"`
}

// RegisterView is the API representation of a register.
type RegisterView struct {
	*entity.Register
	FoodItems         []FoodItemView            `json:"food_items"`
	MacroDistribution *entity.MacroDistribution `json:"macro_distribution,omitempty"`
	NutritionDensity  *entity.NutritionDensity  `json:"nutrition_density,omitempty"`
}

func newRegisterView(r *entity.Register) *RegisterView {
	view := &RegisterView{
		Register:  r,
		FoodItems: make([]FoodItemView, 0, len(r.FoodItems)),
	}
	for _, item := range r.FoodItems {
		view.FoodItems = append(view.FoodItems, FoodItemView{FoodItem: item, CaloriesPer100g: item.CaloriesPer100g()})
	}
	if r.Totals != nil {
		macros := r.MacroDistribution()
		density := r.NutritionDensity()
		view.MacroDistribution = &macros
		view.NutritionDensity = &density
	}

	return view
}

// CreateRegister accepts a meal photo and schedules its analysis.
func (h *RegisterHandler) CreateRegister(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateRegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	image, contentType, err := h.readImage(c)
	if err != nil {
		return err
	}

	register, err := h.registerUC.CreateRegister(c.Request().Context(), &usecase.CreateRegisterInput{
		OwnerID:     userID,
		Image:       image,
		ContentType: contentType,
		Description: strings.TrimSpace(req.Description),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, newRegisterView(register))
}

func (h *RegisterHandler) readImage(c echo.Context) ([]byte, string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, "", domainerrors.ErrValidationFailed.WithDetails("image is required")
	}
	if fileHeader.Size > h.maxImageBytes {
		return nil, "", domainerrors.ErrImageTooLarge.WithDetails("limit is " + strconv.FormatInt(h.maxImageBytes, 10) + " bytes")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", errors.Wrap(err, "open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxImageBytes+1))
	if err != nil {
		return nil, "", errors.Wrap(err, "read uploaded image")
	}

	// Browsers send octet-stream for unknown files; the usecase sniffs those.
	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		contentType = ""
	}

	return data, contentType, nil
}

// ListRegisters lists the user's registers inside a period, newest first.
func (h *RegisterHandler) ListRegisters(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	desc, err := periodDescriptor(c)
	if err != nil {
		return err
	}

	registers, err := h.registerUC.ListRegisters(c.Request().Context(), userID, desc)
	if err != nil {
		return err
	}

	views := make([]*RegisterView, 0, len(registers))
	for _, r := range registers {
		views = append(views, newRegisterView(r))
	}

	return response.Success(c, http.StatusOK, views)
}

// GetRegister returns one register.
func (h *RegisterHandler) GetRegister(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	registerID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	register, err := h.registerUC.GetRegister(c.Request().Context(), userID, registerID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newRegisterView(register))
}

// DeleteRegister removes a register and its image.
func (h *RegisterHandler) DeleteRegister(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	registerID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.registerUC.DeleteRegister(c.Request().Context(), userID, registerID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ConfirmRegister accepts a register waiting for review.
func (h *RegisterHandler) ConfirmRegister(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	registerID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ConfirmRegisterRequest
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
	}

	var items []entity.FoodItem
	if len(req.Items) > 0 {
		items = make([]entity.FoodItem, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, entity.FoodItem{
				Name:       strings.TrimSpace(it.Name),
				Category:   it.Category,
				Quantity:   it.Quantity,
				Unit:       it.Unit,
				Calories:   it.Calories,
				Protein:    it.Protein,
				Carbs:      it.Carbs,
				Fat:        it.Fat,
				Fiber:      it.Fiber,
				Sugar:      it.Sugar,
				Sodium:     it.Sodium,
				Confidence: it.Confidence,
			})
		}
	}

	register, err := h.registerUC.ConfirmRegister(c.Request().Context(), userID, registerID, items)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newRegisterView(register))
}

// RejectRegister discards a register waiting for review.
func (h *RegisterHandler) RejectRegister(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	registerID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req RejectRegisterRequest
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
	}

	register, err := h.registerUC.RejectRegister(c.Request().Context(), userID, registerID, strings.TrimSpace(req.Reason))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newRegisterView(register))
}
