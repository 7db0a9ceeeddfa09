package repository

import (
	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionStore defines the durable collections for the auction system.
// Auctions are mutable only through the ledger; bids are append-only.
type AuctionStore interface {
	InsertAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	ActiveAuctions() ([]model.Auction, error)
	AuctionsBySeller(sellerID string) ([]model.Auction, error)
	ExpiredActiveIDs(now time.Time) ([]string, error)
	UpdateCurrentPrice(auctionID string, from, to decimal.Decimal) error
	UpdateStatus(auctionID string, status model.AuctionStatus) error
	AppendBid(bid model.Bid) error
	BidsByAuction(auctionID string) ([]model.Bid, error)
	BidsByBidder(bidderID string) ([]model.Bid, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore
type MemoryStore struct {
	mu           sync.RWMutex
	auctions     map[string]model.Auction // key: auctionID -> value: auction
	auctionOrder []string                 // auctionIDs in creation order
	bids         map[string][]model.Bid   // key: auctionID -> value: bids in creation order
	bidderBids   map[string][]model.Bid   // key: bidderID -> value: bids in creation order
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions:   make(map[string]model.Auction),
		bids:       make(map[string][]model.Bid),
		bidderBids: make(map[string][]model.Bid),
	}
}

// InsertAuction adds a new auction row
func (s *MemoryStore) InsertAuction(auction model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[auction.AuctionID]; ok {
		return fmt.Errorf("insert auction %s: duplicate id", auction.AuctionID)
	}

	s.auctions[auction.AuctionID] = auction
	s.auctionOrder = append(s.auctionOrder, auction.AuctionID)
	return nil
}

// GetAuction returns the current auction row by ID
func (s *MemoryStore) GetAuction(auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// ActiveAuctions returns all auctions with status active, newest-created-first
func (s *MemoryStore) ActiveAuctions() ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(s.newestFirst(), func(a model.Auction, _ int) bool {
		return a.Status == model.StatusActive
	}), nil
}

// AuctionsBySeller returns all auctions owned by a seller, newest-created-first
func (s *MemoryStore) AuctionsBySeller(sellerID string) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(s.newestFirst(), func(a model.Auction, _ int) bool {
		return a.SellerID == sellerID
	}), nil
}

// ExpiredActiveIDs returns the IDs of auctions that are still active but whose
// end time is not in the future. The caller re-checks each one under its own
// per-auction exclusion before transitioning it.
func (s *MemoryStore) ExpiredActiveIDs(now time.Time) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0)
	for _, a := range s.auctions {
		if a.Status == model.StatusActive && !now.Before(a.EndTime) {
			ids = append(ids, a.AuctionID)
		}
	}
	return ids, nil
}

// UpdateCurrentPrice raises an auction's price from one value to another. The
// write is compare-and-swap shaped: it fails with ErrPriceConflict when the
// persisted price no longer equals from, so a stale read can never clobber a
// newer accepted bid.
func (s *MemoryStore) UpdateCurrentPrice(auctionID string, from, to decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return fmt.Errorf("update price for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if !auction.CurrentPrice.Equal(from) {
		return fmt.Errorf("update price for auction %s: %w", auctionID, auctionerrors.ErrPriceConflict)
	}

	auction.CurrentPrice = to
	s.auctions[auctionID] = auction
	return nil
}

// UpdateStatus sets an auction's status
func (s *MemoryStore) UpdateStatus(auctionID string, status model.AuctionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return fmt.Errorf("update status for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	auction.Status = status
	s.auctions[auctionID] = auction
	return nil
}

// AppendBid records an accepted bid against an auction
func (s *MemoryStore) AppendBid(bid model.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("append bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}

	s.bids[bid.AuctionID] = append(s.bids[bid.AuctionID], bid)
	s.bidderBids[bid.BidderID] = append(s.bidderBids[bid.BidderID], bid)
	return nil
}

// BidsByAuction returns all bids for an auction, newest-first
func (s *MemoryStore) BidsByAuction(auctionID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids, ok := s.bids[auctionID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return reversed(bids), nil
}

// BidsByBidder returns all bids placed by a user, newest-first
func (s *MemoryStore) BidsByBidder(bidderID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids, ok := s.bidderBids[bidderID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for user %s: %w", bidderID, auctionerrors.ErrUserNoBids)
	}
	return reversed(bids), nil
}

// newestFirst returns all auction rows in reverse creation order.
// Callers must hold at least the read lock.
func (s *MemoryStore) newestFirst() []model.Auction {
	auctions := make([]model.Auction, 0, len(s.auctionOrder))
	for i := len(s.auctionOrder) - 1; i >= 0; i-- {
		auctions = append(auctions, s.auctions[s.auctionOrder[i]])
	}
	return auctions
}

// reversed copies a bid slice in reverse order
func reversed(bids []model.Bid) []model.Bid {
	out := make([]model.Bid, 0, len(bids))
	for i := len(bids) - 1; i >= 0; i-- {
		out = append(out, bids[i])
	}
	return out
}
