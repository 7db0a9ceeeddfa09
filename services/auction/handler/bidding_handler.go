package handler

import (
	"fmt"
	"iter"
	"net/http"
	"slices"
	"time"

	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BiddingServiceInterface interface {
	PlaceBid(auctionID, bidderID, bidderName string, amount decimal.Decimal) (model.Bid, decimal.Decimal, error)
	ListBidsForAuction(auctionID string) iter.Seq[model.Bid]
	ListBidsForUser(bidderID string) iter.Seq[model.Bid]
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /api/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, prior, err := h.service.PlaceBid(req.AuctionID, req.BidderID, req.BidderName, req.BidAmount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": req.AuctionID,
			"bidder_id":  req.BidderID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:      bid.BidID,
		AuctionID:  bid.AuctionID,
		BidderID:   bid.BidderID,
		BidderName: bid.BidderName,
		BidAmount:  bid.BidAmount,
		PriorPrice: prior,
		CreatedAt:  bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"bidder_id":  bid.BidderID,
		"bid_amount": bid.BidAmount,
	})
}

// GetBidsByAuctionHandler handles GET /api/bids/auction/:auction_id
func (h *BiddingHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids := slices.Collect(h.service.ListBidsForAuction(auctionID))
	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByAuctionHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}

// GetBidsByUserHandler handles GET /api/bids/user/:user_id
func (h *BiddingHandler) GetBidsByUserHandler(c *gin.Context) {
	bidderID := c.Param("user_id")
	bids := slices.Collect(h.service.ListBidsForUser(bidderID))
	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByUserHandler", "bids retrieved successfully", map[string]any{
		"bidder_id": bidderID,
		"count":     len(bids),
	})
}
