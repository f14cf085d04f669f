package handlers

import (
	"errors"
	"net/http"

	"nexus_recycle/internal/usecase"
	"nexus_recycle/pkg"

	"github.com/gin-gonic/gin"
)

const persistenceDeferredWarning = "Saved for this session, but storage is unavailable. It will be written again automatically."

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoActiveSession):
		return pkg.NewDomainErrorSimple("SESSION_REQUIRED", "Create a profile to continue", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrProfileAlreadyExists):
		return pkg.NewDomainErrorSimple("PROFILE_ALREADY_EXISTS", "A profile is already signed in", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidProfile):
		return pkg.NewDomainErrorSimple("INVALID_PROFILE", "Full name and a valid entity type are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLocation):
		return pkg.NewDomainErrorSimple("INVALID_LOCATION", "Latitude and longitude are out of range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidImage):
		return pkg.NewDomainErrorSimple("INVALID_IMAGE", "Upload a JPEG, PNG, GIF or WEBP image up to 5 MB", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLocationUnavailable):
		return pkg.NewDomainErrorSimple("LOCATION_CONSENT_REQUIRED", "Allow location access to find buyers near you", http.StatusPreconditionFailed)
	case errors.Is(err, usecase.ErrNoActiveScan):
		return pkg.NewDomainErrorSimple("SCAN_REQUIRED", "Please perform a 'Smart Scan' from the Home screen before attempting a trade.", http.StatusPreconditionFailed)
	case errors.Is(err, usecase.ErrAnalysisFailed):
		return pkg.NewDomainError("ANALYSIS_FAILED", "We could not analyze this image. Please try another photo", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDiscoveryFailed):
		return pkg.NewDomainError("DISCOVERY_FAILED", "Could not load buyers near you. Try again", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSettlementFailed):
		return pkg.NewDomainError("SETTLEMENT_FAILED", "The payment could not be completed. Your selection was kept", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrStaleScanResult), errors.Is(err, usecase.ErrStaleDiscovery):
		return pkg.NewDomainErrorSimple("STALE_RESULT", "The result arrived after your session changed and was discarded", http.StatusConflict)
	case errors.Is(err, usecase.ErrTradeInProgress), errors.Is(err, usecase.ErrCancelNotAllowed):
		return pkg.NewDomainErrorSimple("TRADE_IN_PROGRESS", "A trade is being confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoQuoteSelected):
		return pkg.NewDomainErrorSimple("NO_QUOTE_SELECTED", "Select a buyer quote first", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found in the latest buyer list", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
