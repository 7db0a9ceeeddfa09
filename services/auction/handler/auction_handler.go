package handler

import (
	"fmt"
	"iter"
	"net/http"
	"slices"
	"time"

	"auction-engine/internal/ledger"
	model "auction-engine/internal/models"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type AuctionLedgerInterface interface {
	CreateAuction(in ledger.CreateAuctionInput) (model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
	ListActive() iter.Seq[model.Auction]
	ListBySeller(sellerID string) iter.Seq[model.Auction]
}

type AuctionHandler struct {
	ledger AuctionLedgerInterface
}

func NewAuctionHandler(ledger AuctionLedgerInterface) *AuctionHandler {
	return &AuctionHandler{ledger: ledger}
}

// CreateAuctionHandler handles POST /api/auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	durationHours := req.DurationHours
	if durationHours == 0 {
		durationHours = 24
	}

	auction, err := h.ledger.CreateAuction(ledger.CreateAuctionInput{
		SellerID:      req.SellerID,
		SellerName:    req.SellerName,
		Title:         req.Title,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		Duration:      time.Duration(durationHours) * time.Hour,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"seller_id": req.SellerID,
			"title":     req.Title,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":     auction.AuctionID,
		"seller_id":      auction.SellerID,
		"starting_price": auction.StartingPrice,
		"end_time":       auction.EndTime,
	})
}

// ListActiveAuctionsHandler handles GET /api/auctions
func (h *AuctionHandler) ListActiveAuctionsHandler(c *gin.Context) {
	auctions := slices.Collect(h.ledger.ListActive())
	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("ListActiveAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(auctions),
	})
}

// GetAuctionHandler handles GET /api/auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.ledger.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"status":     auction.Status,
	})
}

// GetAuctionsBySellerHandler handles GET /api/auctions/user/:user_id
func (h *AuctionHandler) GetAuctionsBySellerHandler(c *gin.Context) {
	sellerID := c.Param("user_id")
	auctions := slices.Collect(h.ledger.ListBySeller(sellerID))
	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("GetAuctionsBySellerHandler", "auctions retrieved successfully", map[string]any{
		"seller_id": sellerID,
		"count":     len(auctions),
	})
}

// HealthHandler handles GET /api/health
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Server is running",
	})
}
