// Package handler implements the ledger's HTTP endpoints.
package handler

import (
	"net/http"

	"nutriledger/internal/delivery/api/middleware"
	"nutriledger/internal/delivery/api/response"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/period"
	"nutriledger/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return id, nil
}

// periodDescriptor reads ?period=&start_date=&end_date=.
func periodDescriptor(c echo.Context) (period.Descriptor, error) {
	desc, err := period.ParseDescriptor(c.QueryParam("period"), c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		if errors.Is(err, period.ErrInvalidRange) {
			return period.Descriptor{}, domainerrors.ErrInvalidRange.WithDetails(err.Error())
		}

		return period.Descriptor{}, errors.WithStack(err)
	}

	return desc, nil
}

// bindAndValidate binds the request body and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}
