package main

import (
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/identity"
	"auction-engine/internal/ledger"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"
	"auction-engine/internal/sweeper"
	"auction-engine/utils"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

func main() {
	args := ParseArgs()
	if !args.Validate() {
		fmt.Fprintln(os.Stderr, "Invalid arguments: server-url and a positive sweep-interval are required")
		os.Exit(1)
	}

	store := repository.NewMemoryStore()
	auctionLedger := ledger.NewLedger(store)
	biddingSvc := bidding.NewBiddingService(auctionLedger, store)
	registry := identity.NewRegistry()

	if args.SeedDemoData {
		seedDemoAuctions(auctionLedger, registry)
	}

	expirySweeper := sweeper.NewSweeper(auctionLedger, args.SweepInterval)
	expirySweeper.Start()
	defer expirySweeper.Stop()

	router := server.SetupRouter(auctionLedger, biddingSvc, registry)

	utils.Info("Starting auction server", map[string]any{
		"address":        args.ServerURL,
		"sweep_interval": args.SweepInterval.String(),
	})
	if err := router.Run(args.ServerURL); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedDemoAuctions registers a demo seller and opens a few sample auctions
func seedDemoAuctions(auctionLedger *ledger.Ledger, registry *identity.Registry) {
	seller, err := registry.Register("Demo Seller", "seller@example.com", "demoseller", "changeme")
	if err != nil {
		utils.Warn("failed to seed demo seller", map[string]any{"error": err.Error()})
		return
	}

	samples := []ledger.CreateAuctionInput{
		{Title: "Vintage Camera", Description: "1960s rangefinder in working order", StartingPrice: decimal.NewFromInt(100), Duration: 24 * time.Hour},
		{Title: "Mountain Bike", Description: "Hardtail, recently serviced", StartingPrice: decimal.NewFromInt(200), Duration: 48 * time.Hour},
		{Title: "Oil Painting", Description: "Coastal landscape, signed", StartingPrice: decimal.NewFromInt(150), Duration: 24 * time.Hour},
	}

	for _, in := range samples {
		in.SellerID = seller.UserID
		in.SellerName = seller.FullName
		if _, err := auctionLedger.CreateAuction(in); err != nil {
			utils.Warn("failed to seed demo auction", map[string]any{"title": in.Title, "error": err.Error()})
		}
	}
}
