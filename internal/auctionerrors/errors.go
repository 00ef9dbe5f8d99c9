package auctionerrors

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps exactly one of them.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
	ErrConflict     = errors.New("conflict")
)

// Repository-level errors
var (
	ErrArtworkNotFound = fmt.Errorf("artwork %w", ErrNotFound)
	ErrAuctionNotFound = fmt.Errorf("auction %w", ErrNotFound)
	ErrOfferNotFound   = fmt.Errorf("offer %w", ErrNotFound)
	ErrNoActiveAuction = errors.New("no active auction")
	ErrStoreConflict   = fmt.Errorf("concurrent write rejected by store: %w", ErrConflict)
)

// Authorization errors
var (
	ErrNotArtworkOwner = fmt.Errorf("requester does not own the artwork: %w", ErrUnauthorized)
	ErrOwnerCannotBid  = fmt.Errorf("artwork owner cannot bid on own auction: %w", ErrUnauthorized)
	ErrNotOfferBidder  = fmt.Errorf("requester is not the offer's bidder: %w", ErrUnauthorized)
)

// Business logic errors
var (
	ErrStartInPast         = fmt.Errorf("start time is in the past: %w", ErrBadRequest)
	ErrInvalidWindow       = fmt.Errorf("end time must be after start time: %w", ErrBadRequest)
	ErrInvalidPrice        = fmt.Errorf("starting price must be non-negative with at most 4 decimal places: %w", ErrBadRequest)
	ErrInvalidCurrency     = fmt.Errorf("unsupported currency: %w", ErrBadRequest)
	ErrInvalidAmount       = fmt.Errorf("offer amount must be positive with at most 4 decimal places: %w", ErrBadRequest)
	ErrAuctionInactive     = fmt.Errorf("auction is not active: %w", ErrBadRequest)
	ErrBidTooLow           = fmt.Errorf("bid amount too low: %w", ErrBadRequest)
	ErrOfferNotSubmitted   = fmt.Errorf("offer is not in SUBMITTED state: %w", ErrBadRequest)
	ErrInvalidCount        = fmt.Errorf("count must be positive: %w", ErrBadRequest)
	ErrAuctionOverlap      = fmt.Errorf("auction window overlaps an existing auction: %w", ErrConflict)
	ErrFutureAuctionExists = fmt.Errorf("artwork already has a pending or active auction: %w", ErrConflict)
	ErrOutbid              = fmt.Errorf("another offer was accepted first: %w", ErrConflict)
)
