package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus is the lifecycle state of an auction
type AuctionStatus string

const (
	StatusActive AuctionStatus = "active"
	StatusClosed AuctionStatus = "closed"
	StatusSold   AuctionStatus = "sold"
)

// Terminal reports whether the status permits no further transitions or bids
func (s AuctionStatus) Terminal() bool {
	return s == StatusClosed || s == StatusSold
}

// User represents a registered participant in the auction system
type User struct {
	UserID       string    `json:"user_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Auction represents a sellable listing with a rising price and a fixed close
// time. CurrentPrice and Status are mutated only through the ledger.
type Auction struct {
	AuctionID     string          `json:"auction_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	ImageURL      string          `json:"image_url"`
	SellerID      string          `json:"seller_id"`
	SellerName    string          `json:"seller_name"`
	Status        AuctionStatus   `json:"status"`
	EndTime       time.Time       `json:"end_time"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Bid represents an accepted bid on an auction. Bids are append-only facts:
// once written they are never modified or removed.
type Bid struct {
	BidID      string          `json:"bid_id"`
	AuctionID  string          `json:"auction_id"`
	BidderID   string          `json:"bidder_id"`
	BidderName string          `json:"bidder_name"`
	BidAmount  decimal.Decimal `json:"bid_amount"`
	CreatedAt  time.Time       `json:"created_at"`
}
