package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"auction-hub/internal/auctionerrors"
	"auction-hub/utils"

	"github.com/gin-gonic/gin"
)

// ParseIntParam reads a numeric path parameter, replying 400 on failure.
// The boolean reports whether the caller should continue.
func ParseIntParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		wrapped := fmt.Errorf("invalid %s: %w", name, auctionerrors.ErrInvalidInput)
		utils.JSONError(c, http.StatusBadRequest, wrapped, "invalid "+name)
		return 0, false
	}
	return value, true
}

// ViewerID reads the authenticated user id the web collaborator injects
// via the X-User-ID header. Zero means anonymous.
func ViewerID(c *gin.Context) int {
	id, err := strconv.Atoi(c.GetHeader("X-User-ID"))
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// MapErrorToHTTP maps domain errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAdNotFound):
		return http.StatusNotFound, "ad not found"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrNotAnAuction),
		errors.Is(err, auctionerrors.ErrAuctionClosed),
		errors.Is(err, auctionerrors.ErrUnknownBidder),
		errors.Is(err, auctionerrors.ErrSelfMessage),
		errors.Is(err, auctionerrors.ErrUnknownParticipant):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, auctionerrors.ErrPersistence):
		return http.StatusInternalServerError, "persistence failure"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
