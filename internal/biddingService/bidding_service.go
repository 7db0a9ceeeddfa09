package bidding

import (
	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// PriceLedger is the slice of the auction ledger the bid processor depends on
type PriceLedger interface {
	TryAcceptBid(auctionID, bidderID string, amount decimal.Decimal) (decimal.Decimal, error)
}

// BiddingService orchestrates bid submission for the auction system. It
// delegates the accept/reject decision to the ledger and persists exactly one
// immutable bid record per accepted call; a rejected bid writes nothing.
type BiddingService struct {
	ledger PriceLedger
	store  repository.AuctionStore
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(ledger PriceLedger, store repository.AuctionStore) *BiddingService {
	return &BiddingService{
		ledger: ledger,
		store:  store,
	}
}

// PlaceBid validates and records a user's bid on an auction. On acceptance it
// returns the persisted bid along with the price the bid beat.
func (s *BiddingService) PlaceBid(auctionID, bidderID, bidderName string, amount decimal.Decimal) (models.Bid, decimal.Decimal, error) {
	if err := validateBid(auctionID, bidderID, bidderName, amount); err != nil {
		return models.Bid{}, decimal.Zero, err
	}

	prior, err := s.ledger.TryAcceptBid(auctionID, bidderID, amount)
	if err != nil {
		return models.Bid{}, decimal.Zero, fmt.Errorf("service: bid rejected for auction %s: %w", auctionID, err)
	}

	bid := models.Bid{
		BidID:      utils.GenerateID(),
		AuctionID:  auctionID,
		BidderID:   bidderID,
		BidderName: bidderName,
		BidAmount:  amount,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.store.AppendBid(bid); err != nil {
		// The price update already committed; losing the bid row here is an
		// operational fault, not a rejection.
		utils.Error("service: failed to persist accepted bid", map[string]any{
			"auction_id": auctionID,
			"bidder_id":  bidderID,
			"error":      err.Error(),
		})
		return models.Bid{}, decimal.Zero, fmt.Errorf("service: failed to record bid for auction %s: %w", auctionID, err)
	}

	return bid, prior, nil
}

// validateBid checks input shape before any ledger call
func validateBid(auctionID, bidderID, bidderName string, amount decimal.Decimal) error {
	if auctionID == "" || bidderID == "" || bidderName == "" {
		return fmt.Errorf("service: %w - missing auctionID or bidder identity", auctionerrors.ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}
	return nil
}

// ListBidsForAuction returns a restartable sequence of an auction's bids,
// newest-first. Each ranging re-reads live store state.
func (s *BiddingService) ListBidsForAuction(auctionID string) iter.Seq[models.Bid] {
	return func(yield func(models.Bid) bool) {
		bids, err := s.store.BidsByAuction(auctionID)
		if err != nil {
			if !errors.Is(err, auctionerrors.ErrNoBids) {
				utils.Error("service: failed to list auction bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
			}
			return // no bids yet means an empty sequence
		}
		for _, b := range bids {
			if !yield(b) {
				return
			}
		}
	}
}

// ListBidsForUser returns a restartable sequence of a user's bids, newest-first
func (s *BiddingService) ListBidsForUser(bidderID string) iter.Seq[models.Bid] {
	return func(yield func(models.Bid) bool) {
		bids, err := s.store.BidsByBidder(bidderID)
		if err != nil {
			if !errors.Is(err, auctionerrors.ErrUserNoBids) {
				utils.Error("service: failed to list user bids", map[string]any{"bidder_id": bidderID, "error": err.Error()})
			}
			return
		}
		for _, b := range bids {
			if !yield(b) {
				return
			}
		}
	}
}
