package impl

import (
	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/goaltext"
	"nutriledger/internal/domain/period"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/errors"
)

// translateDomainError maps domain sentinels to application errors. Unknown errors pass through.
func translateDomainError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, period.ErrInvalidRange):
		return domainerrors.ErrInvalidRange.WithDetails(err.Error())
	case errors.Is(err, period.ErrUnknownToken):
		return domainerrors.ErrUnknownPeriodToken.WithDetails(err.Error())
	case errors.Is(err, goaltext.ErrParseFailure):
		return domainerrors.ErrGoalParseFailed.WithDetails(err.Error())
	case errors.Is(err, entity.ErrEmptyAnalysis):
		return domainerrors.ErrAnalysisFailed.WithDetails(err.Error())
	case errors.Is(err, entity.ErrInvalidTransition), errors.Is(err, repository.ErrStaleTransition):
		return domainerrors.ErrInvalidTransition.WithDetails(err.Error())
	case errors.Is(err, repository.ErrRegisterNotFound):
		return domainerrors.ErrRegisterNotFound
	default:
		return err
	}
}
