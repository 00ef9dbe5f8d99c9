package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"artwork-auctions/internal/auctionerrors"
	"artwork-auctions/utils"

	"github.com/gin-gonic/gin"
)

// RequesterIDKey is the gin context key the auth middleware stores the caller's user id under
const RequesterIDKey = "requester_id"

// ErrInvalidID is returned for a path id that is not a positive integer
var ErrInvalidID = errors.New("invalid id")

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseIDParam reads a positive int64 path parameter
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidID, name, raw)
	}
	return id, nil
}

// HandleIDError sends a 400 for a malformed path id
func HandleIDError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, err, "invalid id")
	utils.Warn(handlerName+": invalid path id", map[string]any{"error": err.Error()})
}

// RequesterID returns the authenticated caller set by the auth middleware
func RequesterID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(RequesterIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrArtworkNotFound):
		return http.StatusNotFound, "artwork not found"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrOfferNotFound):
		return http.StatusNotFound, "offer not found"
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"

	case errors.Is(err, auctionerrors.ErrOwnerCannotBid):
		return http.StatusForbidden, "artwork owner cannot bid on own auction"
	case errors.Is(err, auctionerrors.ErrNotOfferBidder):
		return http.StatusForbidden, "only the bidder can withdraw this offer"
	case errors.Is(err, auctionerrors.ErrNotArtworkOwner):
		return http.StatusForbidden, "requester does not own the artwork"
	case errors.Is(err, auctionerrors.ErrUnauthorized):
		return http.StatusForbidden, "requester is not allowed to perform this action"

	case errors.Is(err, auctionerrors.ErrStartInPast), errors.Is(err, auctionerrors.ErrInvalidWindow):
		return http.StatusBadRequest, "invalid auction window"
	case errors.Is(err, auctionerrors.ErrInvalidPrice):
		return http.StatusBadRequest, "invalid starting price"
	case errors.Is(err, auctionerrors.ErrInvalidCurrency):
		return http.StatusBadRequest, "unsupported currency"
	case errors.Is(err, auctionerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid offer amount"
	case errors.Is(err, auctionerrors.ErrAuctionInactive):
		return http.StatusBadRequest, "auction is not active"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrOfferNotSubmitted):
		return http.StatusBadRequest, "offer is not in SUBMITTED state"
	case errors.Is(err, auctionerrors.ErrInvalidCount):
		return http.StatusBadRequest, "invalid count"
	case errors.Is(err, auctionerrors.ErrBadRequest):
		return http.StatusBadRequest, "invalid request"

	case errors.Is(err, auctionerrors.ErrAuctionOverlap):
		return http.StatusConflict, "auction overlaps an existing auction"
	case errors.Is(err, auctionerrors.ErrFutureAuctionExists):
		return http.StatusConflict, "artwork already has a pending or active auction"
	case errors.Is(err, auctionerrors.ErrOutbid):
		return http.StatusConflict, "outbid by a concurrent offer"
	case errors.Is(err, auctionerrors.ErrConflict):
		return http.StatusConflict, "conflicting concurrent update, retry"

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps err and writes the JSON error envelope
func RespondError(c *gin.Context, err error) (int, string) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	return status, message
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
