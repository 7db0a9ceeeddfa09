package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound  = errors.New("auction not found")
	ErrNoBids           = errors.New("no bids found for auction")
	ErrUserNoBids       = errors.New("user has not placed any bids")
	ErrPriceConflict    = errors.New("auction price changed concurrently")
	ErrStoreUnavailable = errors.New("auction store unavailable")
)

// business logic errors
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrBidTooLow        = errors.New("bid amount too low")
	ErrSelfBid          = errors.New("seller cannot bid on own auction")
	ErrAuctionNotActive = errors.New("auction is not active")
)

// identity collaborator errors
var (
	ErrDuplicateUser      = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)
