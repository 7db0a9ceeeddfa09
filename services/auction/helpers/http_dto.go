package helpers

import "github.com/shopspring/decimal"

// Request/Response DTOs. The decimal fields carry no binding tag: gin's
// required check cannot see an absent decimal (it lands as the zero value),
// so non-positive amounts are rejected by the domain validation instead.
type CreateAuctionRequest struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	SellerID      string          `json:"seller_id" binding:"required"`
	SellerName    string          `json:"seller_name" binding:"required"`
	DurationHours int             `json:"duration_hours"`
	ImageURL      string          `json:"image_url"`
}

type PlaceBidRequest struct {
	AuctionID  string          `json:"auction_id" binding:"required"`
	BidderID   string          `json:"bidder_id" binding:"required"`
	BidderName string          `json:"bidder_name" binding:"required"`
	BidAmount  decimal.Decimal `json:"bid_amount"`
}

type BidResponse struct {
	BidID      string          `json:"bid_id"`
	AuctionID  string          `json:"auction_id"`
	BidderID   string          `json:"bidder_id"`
	BidderName string          `json:"bidder_name"`
	BidAmount  decimal.Decimal `json:"bid_amount"`
	PriorPrice decimal.Decimal `json:"prior_price"`
	CreatedAt  string          `json:"created_at"`
}

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
}
