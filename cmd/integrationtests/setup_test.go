package integrationtests

import (
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/identity"
	"auction-engine/internal/ledger"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TestEnv bundles the wired application with direct store access so tests can
// plant auctions the public API would refuse to create (e.g. already expired).
type TestEnv struct {
	Router *gin.Engine
	Store  *repository.MemoryStore
	Ledger *ledger.Ledger
}

// SetupTestEnv initializes the full stack over an in-memory store.
func SetupTestEnv() *TestEnv {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()
	auctionLedger := ledger.NewLedger(store)
	biddingSvc := bidding.NewBiddingService(auctionLedger, store)
	registry := identity.NewRegistry()
	router := server.SetupRouter(auctionLedger, biddingSvc, registry)
	return &TestEnv{Router: router, Store: store, Ledger: auctionLedger}
}

// SeedAuction inserts an auction row directly into the store.
func (env *TestEnv) SeedAuction(t *testing.T, sellerID string, price int64, status model.AuctionStatus, endTime time.Time) model.Auction {
	t.Helper()
	p := decimal.NewFromInt(price)
	auction := model.Auction{
		AuctionID:     uuid.NewString(),
		Title:         "Seeded Auction",
		Description:   "Seeded description",
		StartingPrice: p,
		CurrentPrice:  p,
		SellerID:      sellerID,
		SellerName:    "Seeded Seller",
		Status:        status,
		EndTime:       endTime,
		CreatedAt:     time.Now().UTC(),
	}
	if err := env.Store.InsertAuction(auction); err != nil {
		t.Fatalf("failed to seed auction: %v", err)
	}
	return auction
}

// ExecuteRequestAndParse executes an HTTP request on the router and parses the
// JSON response envelope.
func (env *TestEnv) ExecuteRequestAndParse(t *testing.T, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	env.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// Data extracts the data object from a response envelope.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}

// DataList extracts the data array from a response envelope.
func DataList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response has no data array: %v", resp)
	}
	return data
}
