package auctionerrors

import "errors"

// Bid rejection errors
var (
	ErrAdNotFound    = errors.New("ad not found")
	ErrNotAnAuction  = errors.New("ad is not an auction")
	ErrAuctionClosed = errors.New("auction has ended")
	ErrBidTooLow     = errors.New("bid amount too low")
	ErrUnknownBidder = errors.New("unknown bidder")
)

// Chat rejection errors
var (
	ErrSelfMessage        = errors.New("cannot message yourself")
	ErrUnknownParticipant = errors.New("unknown chat participant")
)

// Infrastructure errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrPersistence  = errors.New("persistence failure")
)
