package timer

import (
	"context"
	"time"

	auction "auction-hub/internal/auctionService"
	"auction-hub/internal/gateway"
	"auction-hub/internal/rooms"
	"auction-hub/utils"
)

// DefaultInterval is the sweep period when none is configured
const DefaultInterval = time.Second

// Broadcaster fans an event out to a room. Implemented by the gateway.
type Broadcaster interface {
	Broadcast(roomKey, eventType string, data any, exclude rooms.Conn)
}

// Sweeper periodically closes expired auctions and announces each one to
// its ad room. Sweeps run synchronously inside the loop goroutine, so a
// sweep never overlaps the previous one.
type Sweeper struct {
	ledger   *auction.Ledger
	out      Broadcaster
	interval time.Duration
}

// NewSweeper creates a sweeper over the auction ledger
func NewSweeper(ledger *auction.Ledger, out Broadcaster, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sweeper{ledger: ledger, out: out, interval: interval}
}

// Run drives the sweep loop until the context is cancelled
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepOnce(time.Now().UTC())
		}
	}
}

// SweepOnce runs one expiry pass. Errors are logged and the loop simply
// tries again on its next tick.
func (s *Sweeper) SweepOnce(now time.Time) {
	ended, err := s.ledger.SweepExpired(now)
	if err != nil {
		utils.Error("sweeper: sweep failed", map[string]any{"error": err.Error()})
		return
	}

	for _, e := range ended {
		data := gateway.AuctionEndedData{
			AdID:       e.Ad.ID,
			SellerInfo: &e.Seller,
		}
		if e.Winner != nil {
			winnerID := e.Winner.UserID
			data.WinnerID = &winnerID
			data.WinnerInfo = e.WinnerUser
		}
		s.out.Broadcast(rooms.AdRoom(e.Ad.ID), gateway.EventAuctionEnded, data, nil)

		fields := map[string]any{"ad_id": e.Ad.ID}
		if e.Winner != nil {
			fields["winner_id"] = e.Winner.UserID
			fields["amount"] = e.Winner.Amount
		}
		utils.Info("sweeper: auction ended", fields)
	}
}
