package ledger

import (
	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
	"fmt"
	"iter"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// defaultImageURL is the placeholder shown for auctions created without an image
const defaultImageURL = "https://via.placeholder.com/300x200?text=Auction+Item"

// Ledger is the single source of truth for auction state. It is the only
// component permitted to mutate an auction's current price and status, and it
// serializes every such mutation through a per-auction mutex so that two
// racing bids can never both observe the same stale price and both succeed.
type Ledger struct {
	store repository.AuctionStore

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex // key: auctionID -> value: per-auction exclusion
}

// NewLedger creates a new Ledger instance over the given store
func NewLedger(store repository.AuctionStore) *Ledger {
	return &Ledger{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// CreateAuctionInput carries the caller-supplied fields for a new auction
type CreateAuctionInput struct {
	SellerID      string
	SellerName    string
	Title         string
	Description   string
	StartingPrice decimal.Decimal
	Duration      time.Duration
	ImageURL      string
}

// CreateAuction opens a new active auction with current price equal to the
// starting price and an end time of now plus the requested duration
func (l *Ledger) CreateAuction(in CreateAuctionInput) (models.Auction, error) {
	if err := validateCreate(in); err != nil {
		return models.Auction{}, err
	}

	imageURL := in.ImageURL
	if imageURL == "" {
		imageURL = defaultImageURL
	}

	now := time.Now().UTC()
	auction := models.Auction{
		AuctionID:     utils.GenerateID(),
		Title:         strings.TrimSpace(in.Title),
		Description:   strings.TrimSpace(in.Description),
		StartingPrice: in.StartingPrice,
		CurrentPrice:  in.StartingPrice,
		ImageURL:      imageURL,
		SellerID:      in.SellerID,
		SellerName:    in.SellerName,
		Status:        models.StatusActive,
		EndTime:       now.Add(in.Duration),
		CreatedAt:     now,
	}

	if err := l.store.InsertAuction(auction); err != nil {
		return models.Auction{}, fmt.Errorf("ledger: failed to insert auction: %w", err)
	}
	return auction, nil
}

// validateCreate checks input validity for auction creation
func validateCreate(in CreateAuctionInput) error {
	if in.SellerID == "" || in.SellerName == "" {
		return fmt.Errorf("ledger: %w - missing seller identity", auctionerrors.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("ledger: %w - missing title or description", auctionerrors.ErrInvalidInput)
	}
	if !in.StartingPrice.IsPositive() {
		return fmt.Errorf("ledger: %w - non-positive starting price", auctionerrors.ErrInvalidInput)
	}
	if in.Duration <= 0 {
		return fmt.Errorf("ledger: %w - non-positive duration", auctionerrors.ErrInvalidInput)
	}
	return nil
}

// GetAuction returns the current snapshot of an auction. An auction whose end
// time has passed is transitioned to its terminal state before being returned.
func (l *Ledger) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("ledger: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}

	// probe before taking the exclusion so unknown IDs never allocate a lock
	if _, err := l.store.GetAuction(auctionID); err != nil {
		return models.Auction{}, fmt.Errorf("ledger: failed to get auction: %w", err)
	}

	mu := l.lockFor(auctionID)
	mu.Lock()
	defer mu.Unlock()

	auction, err := l.store.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("ledger: failed to get auction: %w", err)
	}

	auction, err = l.expireIfDue(auction, time.Now().UTC())
	if err != nil {
		return models.Auction{}, fmt.Errorf("ledger: failed to expire auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListActive returns a restartable sequence of all active auctions,
// newest-created-first. Each ranging re-reads live store state.
func (l *Ledger) ListActive() iter.Seq[models.Auction] {
	return func(yield func(models.Auction) bool) {
		auctions, err := l.store.ActiveAuctions()
		if err != nil {
			utils.Error("ledger: failed to list active auctions", map[string]any{"error": err.Error()})
			return
		}
		for _, a := range auctions {
			if !yield(a) {
				return
			}
		}
	}
}

// ListBySeller returns a restartable sequence of a seller's auctions,
// newest-created-first, regardless of status
func (l *Ledger) ListBySeller(sellerID string) iter.Seq[models.Auction] {
	return func(yield func(models.Auction) bool) {
		auctions, err := l.store.AuctionsBySeller(sellerID)
		if err != nil {
			utils.Error("ledger: failed to list seller auctions", map[string]any{"seller_id": sellerID, "error": err.Error()})
			return
		}
		for _, a := range auctions {
			if !yield(a) {
				return
			}
		}
	}
}

// TryAcceptBid atomically validates a bid against the latest persisted auction
// state and, on acceptance, raises the current price to the bid amount. The
// whole read-check-write runs under the auction's exclusion, so concurrent
// bids on the same auction are serialized while bids on different auctions
// proceed in parallel. Returns the price the bid beat.
func (l *Ledger) TryAcceptBid(auctionID, bidderID string, amount decimal.Decimal) (decimal.Decimal, error) {
	// probe before taking the exclusion so unknown IDs never allocate a lock
	if _, err := l.store.GetAuction(auctionID); err != nil {
		return decimal.Zero, fmt.Errorf("ledger: failed to get auction: %w", err)
	}

	mu := l.lockFor(auctionID)
	mu.Lock()
	defer mu.Unlock()

	auction, err := l.store.GetAuction(auctionID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("ledger: failed to get auction: %w", err)
	}

	now := time.Now().UTC()
	auction, err = l.expireIfDue(auction, now)
	if err != nil {
		return decimal.Zero, fmt.Errorf("ledger: failed to expire auction %s: %w", auctionID, err)
	}

	if auction.Status != models.StatusActive || !now.Before(auction.EndTime) {
		return decimal.Zero, fmt.Errorf("ledger: %w", auctionerrors.ErrAuctionNotActive)
	}
	if bidderID == auction.SellerID {
		return decimal.Zero, fmt.Errorf("ledger: %w", auctionerrors.ErrSelfBid)
	}
	if !amount.GreaterThan(auction.CurrentPrice) {
		return decimal.Zero, fmt.Errorf("ledger: %w - current price is %s", auctionerrors.ErrBidTooLow, auction.CurrentPrice)
	}

	prior := auction.CurrentPrice
	if err := l.store.UpdateCurrentPrice(auctionID, prior, amount); err != nil {
		return decimal.Zero, fmt.Errorf("ledger: failed to update price for auction %s: %w", auctionID, err)
	}
	return prior, nil
}

// SweepExpired transitions every active auction whose end time has passed to
// its terminal state. Already-terminal auctions are left untouched, so the
// sweep is idempotent. Returns the number of auctions transitioned.
func (l *Ledger) SweepExpired(now time.Time) (int, error) {
	ids, err := l.store.ExpiredActiveIDs(now)
	if err != nil {
		return 0, fmt.Errorf("ledger: failed to scan expired auctions: %w", err)
	}

	swept := 0
	for _, id := range ids {
		mu := l.lockFor(id)
		mu.Lock()

		auction, err := l.store.GetAuction(id)
		if err != nil {
			mu.Unlock()
			return swept, fmt.Errorf("ledger: failed to get auction %s during sweep: %w", id, err)
		}

		updated, err := l.expireIfDue(auction, now)
		if err != nil {
			mu.Unlock()
			return swept, fmt.Errorf("ledger: failed to expire auction %s during sweep: %w", id, err)
		}
		if updated.Status != auction.Status {
			swept++
		}
		mu.Unlock()
	}
	return swept, nil
}

// expireIfDue applies the terminal transition to an auction whose end time has
// passed: Sold when the price ever rose above the starting price (at least one
// accepted bid, by the monotonic price invariant), Closed otherwise. Callers
// must hold the auction's exclusion. A no-op for terminal or not-yet-due
// auctions.
func (l *Ledger) expireIfDue(auction models.Auction, now time.Time) (models.Auction, error) {
	if auction.Status != models.StatusActive || now.Before(auction.EndTime) {
		return auction, nil
	}

	status := models.StatusClosed
	if auction.CurrentPrice.GreaterThan(auction.StartingPrice) {
		status = models.StatusSold
	}

	if err := l.store.UpdateStatus(auction.AuctionID, status); err != nil {
		return auction, err
	}
	auction.Status = status
	return auction, nil
}

// lockFor returns the exclusion for an auction ID, creating it on first use.
// Callers verify the ID exists in the store before calling, so the map only
// ever holds real auctions. Entries are never removed; auctions are never
// deleted in normal operation.
func (l *Ledger) lockFor(auctionID string) *sync.Mutex {
	l.locksMu.Lock()
	defer l.locksMu.Unlock()

	mu, ok := l.locks[auctionID]
	if !ok {
		mu = &sync.Mutex{}
		l.locks[auctionID] = mu
	}
	return mu
}

// lockCount reports how many per-auction exclusions have been allocated
func (l *Ledger) lockCount() int {
	l.locksMu.Lock()
	defer l.locksMu.Unlock()
	return len(l.locks)
}
