package bidding

import (
	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/ledger"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Tests PlaceBid through a real ledger over a mocked store
func TestBiddingService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewBiddingService(ledger.NewLedger(mockStore), mockStore)

	now := time.Now().UTC()
	openPrice := decimal.NewFromInt(100)

	activeAuction := models.Auction{
		AuctionID:     "auction1",
		Title:         "Test Auction",
		Description:   "Test description",
		StartingPrice: openPrice,
		CurrentPrice:  openPrice,
		SellerID:      "seller1",
		SellerName:    "Seller",
		Status:        models.StatusActive,
		EndTime:       now.Add(time.Hour),
		CreatedAt:     now,
	}
	closedAuction := activeAuction
	closedAuction.AuctionID = "auction2"
	closedAuction.Status = models.StatusClosed

	// Table-driven test cases
	tests := []struct {
		name          string
		auctionID     string
		bidderID      string
		bidderName    string
		amount        decimal.Decimal
		mockSetup     func()
		expectedError error
	}{
		{
			name:       "valid_bid",
			auctionID:  "auction1",
			bidderID:   "bidder1",
			bidderName: "Bidder One",
			amount:     decimal.NewFromInt(150),
			mockSetup: func() {
				mockStore.EXPECT().GetAuction("auction1").Return(activeAuction, nil).Times(2)
				mockStore.EXPECT().UpdateCurrentPrice("auction1", openPrice, decimal.NewFromInt(150)).Return(nil)
				mockStore.EXPECT().AppendBid(gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			bidderID:      "bidder1",
			bidderName:    "Bidder One",
			amount:        decimal.NewFromInt(150),
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "empty_bidderID",
			auctionID:     "auction1",
			bidderID:      "",
			bidderName:    "Bidder One",
			amount:        decimal.NewFromInt(150),
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "zero_amount",
			auctionID:     "auction1",
			bidderID:      "bidder1",
			bidderName:    "Bidder One",
			amount:        decimal.Zero,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "negative_amount",
			auctionID:     "auction1",
			bidderID:      "bidder1",
			bidderName:    "Bidder One",
			amount:        decimal.NewFromInt(-50),
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:       "bid_too_low",
			auctionID:  "auction1",
			bidderID:   "bidder1",
			bidderName: "Bidder One",
			amount:     decimal.NewFromInt(80),
			mockSetup: func() {
				mockStore.EXPECT().GetAuction("auction1").Return(activeAuction, nil).Times(2)
			},
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:       "bid_equal_to_price",
			auctionID:  "auction1",
			bidderID:   "bidder1",
			bidderName: "Bidder One",
			amount:     openPrice,
			mockSetup: func() {
				mockStore.EXPECT().GetAuction("auction1").Return(activeAuction, nil).Times(2)
			},
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:       "seller_self_bid",
			auctionID:  "auction1",
			bidderID:   "seller1",
			bidderName: "Seller",
			amount:     decimal.NewFromInt(150),
			mockSetup: func() {
				mockStore.EXPECT().GetAuction("auction1").Return(activeAuction, nil).Times(2)
			},
			expectedError: auctionerrors.ErrSelfBid,
		},
		{
			name:       "auction_not_active",
			auctionID:  "auction2",
			bidderID:   "bidder1",
			bidderName: "Bidder One",
			amount:     decimal.NewFromInt(150),
			mockSetup: func() {
				mockStore.EXPECT().GetAuction("auction2").Return(closedAuction, nil).Times(2)
			},
			expectedError: auctionerrors.ErrAuctionNotActive,
		},
		{
			name:       "auction_not_found",
			auctionID:  "missing",
			bidderID:   "bidder1",
			bidderName: "Bidder One",
			amount:     decimal.NewFromInt(150),
			mockSetup: func() {
				mockStore.EXPECT().GetAuction("missing").Return(models.Auction{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedError: auctionerrors.ErrAuctionNotFound,
		},
		{
			name:       "price_conflict_surfaces",
			auctionID:  "auction1",
			bidderID:   "bidder1",
			bidderName: "Bidder One",
			amount:     decimal.NewFromInt(150),
			mockSetup: func() {
				mockStore.EXPECT().GetAuction("auction1").Return(activeAuction, nil).Times(2)
				mockStore.EXPECT().UpdateCurrentPrice("auction1", openPrice, decimal.NewFromInt(150)).Return(auctionerrors.ErrPriceConflict)
			},
			expectedError: auctionerrors.ErrPriceConflict,
		},
		{
			name:       "bid_row_write_fails",
			auctionID:  "auction1",
			bidderID:   "bidder1",
			bidderName: "Bidder One",
			amount:     decimal.NewFromInt(150),
			mockSetup: func() {
				mockStore.EXPECT().GetAuction("auction1").Return(activeAuction, nil).Times(2)
				mockStore.EXPECT().UpdateCurrentPrice("auction1", openPrice, decimal.NewFromInt(150)).Return(nil)
				mockStore.EXPECT().AppendBid(gomock.Any()).Return(errors.New("store write failed"))
			},
			expectedError: nil, // service wraps the raw store error
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			bid, prior, err := service.PlaceBid(tc.auctionID, tc.bidderID, tc.bidderName, tc.amount)

			if tc.name == "bid_row_write_fails" {
				require.Error(t, err)
				return
			}
			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				require.Empty(t, bid.BidID, "no bid record on rejection")
				return
			}
			require.NoError(t, err)

			// Validate generated BidID
			require.NotEmpty(t, bid.BidID)
			_, parseErr := uuid.Parse(bid.BidID)
			require.NoError(t, parseErr, "BidID should be a valid UUID")

			// Validate bid fields
			require.Equal(t, tc.auctionID, bid.AuctionID)
			require.Equal(t, tc.bidderID, bid.BidderID)
			require.Equal(t, tc.bidderName, bid.BidderName)
			require.True(t, bid.BidAmount.Equal(tc.amount))
			require.True(t, prior.Equal(openPrice), "prior price should be the beaten price")
			require.WithinDuration(t, now, bid.CreatedAt, 2*time.Second)
		})
	}
}

// A rejected bid must write nothing: the mock store has no AppendBid
// expectation, so any write fails the test.
func TestBiddingService_RejectionWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewBiddingService(ledger.NewLedger(mockStore), mockStore)

	openPrice := decimal.NewFromInt(100)
	mockStore.EXPECT().GetAuction("auction1").Return(models.Auction{
		AuctionID:     "auction1",
		StartingPrice: openPrice,
		CurrentPrice:  openPrice,
		SellerID:      "seller1",
		Status:        models.StatusActive,
		EndTime:       time.Now().UTC().Add(time.Hour),
	}, nil).Times(2)

	_, _, err := service.PlaceBid("auction1", "bidder1", "Bidder One", decimal.NewFromInt(40))
	require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)
}

// Tests ListBidsForAuction
func TestBiddingService_ListBidsForAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewBiddingService(ledger.NewLedger(mockStore), mockStore)

	stored := []models.Bid{
		{BidID: "bid2", AuctionID: "auction1", BidderID: "bidder2", BidAmount: decimal.NewFromInt(70)},
		{BidID: "bid1", AuctionID: "auction1", BidderID: "bidder1", BidAmount: decimal.NewFromInt(60)},
	}

	t.Run("returns_bids_newest_first", func(t *testing.T) {
		mockStore.EXPECT().BidsByAuction("auction1").Return(stored, nil)

		bids := slices.Collect(service.ListBidsForAuction("auction1"))
		require.Len(t, bids, 2)
		require.Equal(t, "bid2", bids[0].BidID)
	})

	t.Run("no_bids_is_empty_sequence", func(t *testing.T) {
		mockStore.EXPECT().BidsByAuction("auction1").Return(nil, auctionerrors.ErrNoBids)

		bids := slices.Collect(service.ListBidsForAuction("auction1"))
		require.Empty(t, bids)
	})

	t.Run("restartable", func(t *testing.T) {
		mockStore.EXPECT().BidsByAuction("auction1").Return(stored, nil).Times(2)

		seq := service.ListBidsForAuction("auction1")
		require.Len(t, slices.Collect(seq), 2)
		require.Len(t, slices.Collect(seq), 2)
	})
}

// Tests ListBidsForUser
func TestBiddingService_ListBidsForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewBiddingService(ledger.NewLedger(mockStore), mockStore)

	t.Run("returns_bids", func(t *testing.T) {
		mockStore.EXPECT().BidsByBidder("bidder1").Return([]models.Bid{
			{BidID: "bid1", AuctionID: "auction1", BidderID: "bidder1", BidAmount: decimal.NewFromInt(60)},
		}, nil)

		bids := slices.Collect(service.ListBidsForUser("bidder1"))
		require.Len(t, bids, 1)
		require.Equal(t, "bidder1", bids[0].BidderID)
	})

	t.Run("no_bids_is_empty_sequence", func(t *testing.T) {
		mockStore.EXPECT().BidsByBidder("bidder1").Return(nil, auctionerrors.ErrUserNoBids)

		bids := slices.Collect(service.ListBidsForUser("bidder1"))
		require.Empty(t, bids)
	})
}
