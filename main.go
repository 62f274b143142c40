package main

import (
	"context"
	"fmt"
	"time"

	auction "auction-hub/internal/auctionService"
	chat "auction-hub/internal/chatService"
	"auction-hub/internal/config"
	"auction-hub/internal/gateway"
	model "auction-hub/internal/models"
	"auction-hub/internal/repository"
	"auction-hub/internal/rooms"
	"auction-hub/internal/server"
	"auction-hub/internal/timer"
	"auction-hub/internal/users"
	handler "auction-hub/services/market/handler"
	"auction-hub/utils"
)

func main() {
	cfg := config.Load()

	store, err := repository.NewFileStore(cfg.DataDir)
	if err != nil {
		utils.Fatal("failed to open data dir", map[string]any{"dir": cfg.DataDir, "error": err.Error()})
	}

	if err := seedIfEmpty(store); err != nil {
		utils.Fatal("failed to seed store", map[string]any{"error": err.Error()})
	}

	dir, err := users.NewDirectory(store)
	if err != nil {
		utils.Fatal("failed to load users", map[string]any{"error": err.Error()})
	}

	auctionLedger, err := auction.NewLedger(store, dir)
	if err != nil {
		utils.Fatal("failed to load ads", map[string]any{"error": err.Error()})
	}

	chatLedger, err := chat.NewLedger(store, dir, auctionLedger)
	if err != nil {
		utils.Fatal("failed to load chat threads", map[string]any{"error": err.Error()})
	}

	registry := rooms.NewRegistry()
	gw := gateway.NewGateway(auctionLedger, chatLedger, registry)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper := timer.NewSweeper(auctionLedger, gw, cfg.SweepInterval)
	go sweeper.Run(ctx)

	marketHandler := handler.NewMarketHandler(auctionLedger, chatLedger, dir)
	router := server.SetupRouter(marketHandler, gw)

	addr := fmt.Sprintf(":%s", cfg.Port)
	utils.Info("starting marketplace server", map[string]any{"addr": addr})
	if err := router.Run(addr); err != nil {
		utils.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
}

// seedIfEmpty populates a fresh data dir with sample users and ads so
// the server is usable standalone.
func seedIfEmpty(store *repository.FileStore) error {
	existing, err := store.LoadUsers()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	sampleUsers := []model.User{
		{ID: 1, Username: "ali", Email: "ali@example.com", Phone: "+994501112233"},
		{ID: 2, Username: "leyla", Email: "leyla@example.com", Phone: "+994502223344"},
		{ID: 3, Username: "samir", Email: "samir@example.com", Phone: "+994503334455"},
	}
	if err := store.SaveUsers(sampleUsers); err != nil {
		return err
	}

	endsAt := time.Now().UTC().Add(30 * time.Minute)
	sampleAds := []model.Ad{
		{
			ID: 1, AdCode: utils.GenerateAdCode(),
			Title: "Vintage film camera", Description: "Working Zenit-E with lens",
			Category: "electronics", Subcategory: "cameras",
			AdType: model.AdTypeAuction, CurrentPrice: 100, StartPrice: 100,
			EndTime: &endsAt, Bids: []model.Bid{}, UserID: 1,
			SellerInfo: "ali", SellerPhone: "+994501112233",
		},
		{
			ID: 2, AdCode: utils.GenerateAdCode(),
			Title: "Mountain bike", Description: "Hardtail, medium frame",
			Category: "sports", Subcategory: "bikes",
			AdType: model.AdTypeFixed, CurrentPrice: 350, BuyNowPrice: 350,
			Bids: []model.Bid{}, UserID: 2,
			SellerInfo: "leyla", SellerPhone: "+994502223344",
		},
	}
	return store.SaveAds(sampleAds)
}
