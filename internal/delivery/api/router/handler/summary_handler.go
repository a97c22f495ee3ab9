package handler

import (
	"log/slog"
	"mime"
	"net/http"

	"nutriledger/internal/delivery/api/response"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SummaryHandlerParams holds dependencies for SummaryHandler, injected by Fx.
type SummaryHandlerParams struct {
	fx.In

	SummaryUC usecase.SummaryUsecase
	Logger    *slog.Logger
}

// SummaryHandler serves the read-only aggregation endpoints.
type SummaryHandler struct {
	summaryUC usecase.SummaryUsecase
	logger    *slog.Logger
}

// NewSummaryHandler is the constructor for SummaryHandler
func NewSummaryHandler(params SummaryHandlerParams) *SummaryHandler {
	return &SummaryHandler{
		summaryUC: params.SummaryUC,
		logger:    params.Logger,
	}
}

// DailySummary aggregates ?date=YYYY-MM-DD, today when absent.
func (h *SummaryHandler) DailySummary(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var date *civil.Date
	if raw := c.QueryParam("date"); raw != "" {
		d, err := civil.ParseDate(raw)
		if err != nil {
			return domainerrors.ErrInvalidRange.WithDetails("date must be YYYY-MM-DD")
		}
		date = &d
	}

	summary, err := h.summaryUC.DailySummary(c.Request().Context(), userID, date)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, summary)
}

// PeriodSummary aggregates a named or custom period.
func (h *SummaryHandler) PeriodSummary(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	desc, err := periodDescriptor(c)
	if err != nil {
		return err
	}

	summary, err := h.summaryUC.PeriodSummary(c.Request().Context(), userID, desc)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, summary)
}

// ExportPeriod downloads the period summary as a spreadsheet.
func (h *SummaryHandler) ExportPeriod(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	desc, err := periodDescriptor(c)
	if err != nil {
		return err
	}

	out, err := h.summaryUC.ExportPeriod(c.Request().Context(), userID, desc)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": out.FileName}))

	return c.Blob(http.StatusOK, out.ContentType, out.Data)
}
