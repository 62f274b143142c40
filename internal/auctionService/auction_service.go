package auction

import (
	"fmt"
	"sync"
	"time"

	"auction-hub/internal/auctionerrors"
	model "auction-hub/internal/models"
	"auction-hub/internal/repository"
	"auction-hub/internal/users"
)

// Ledger owns all ad and auction state. Ads are loaded in full at
// construction; every mutation (bid application, expiry marking) runs
// under one write lock, so concurrent bids and sweeps on the same ad are
// serialized through a single point. A mutation is committed to memory
// only after its durable write succeeds.
type Ledger struct {
	mu    sync.RWMutex
	db    repository.MarketDB
	dir   *users.Directory
	ads   map[int]*model.Ad
	order []int // insertion order, kept stable for snapshot writes
}

// BidResult is returned for an accepted bid
type BidResult struct {
	AdID   int
	Amount float64
	Bidder string // display name, broadcast to the ad room
}

// EndedAuction describes one auction closed by a sweep
type EndedAuction struct {
	Ad         model.Ad
	Winner     *model.Bid  // nil when the auction ended without bids
	Seller     model.User
	WinnerUser *model.User // nil when Winner is nil
}

// AdView is an ad as seen by one viewer, with ownership flags and
// conditionally redacted contact info.
type AdView struct {
	model.Ad
	IsOwner        bool    `json:"isOwner"`
	IsWinner       bool    `json:"isWinner"`
	IsAuctionEnded bool    `json:"isAuctionEnded"`
	ContactName    *string `json:"contactName"`
	ContactPhone   *string `json:"contactPhone"`
}

// NewLedger loads all ads from the durable store
func NewLedger(db repository.MarketDB, dir *users.Directory) (*Ledger, error) {
	list, err := db.LoadAds()
	if err != nil {
		return nil, fmt.Errorf("auction: load ads: %w", err)
	}

	l := &Ledger{
		db:  db,
		dir: dir,
		ads: make(map[int]*model.Ad, len(list)),
	}
	for i := range list {
		ad := list[i]
		l.ads[ad.ID] = &ad
		l.order = append(l.order, ad.ID)
	}
	return l, nil
}

// GetAd returns a copy of the ad with the given id
func (l *Ledger) GetAd(adID int) (model.Ad, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ad, ok := l.ads[adID]
	if !ok {
		return model.Ad{}, fmt.Errorf("auction: get ad %d: %w", adID, auctionerrors.ErrAdNotFound)
	}
	return copyAd(ad), nil
}

// Resolve reports whether an ad exists and returns a copy of it. Used by
// the chat ledger to validate listing references.
func (l *Ledger) Resolve(adID int) (model.Ad, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ad, ok := l.ads[adID]
	if !ok {
		return model.Ad{}, false
	}
	return copyAd(ad), true
}

// GetBids returns the bid history for an ad, newest-first
func (l *Ledger) GetBids(adID int) ([]model.Bid, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ad, ok := l.ads[adID]
	if !ok {
		return nil, fmt.Errorf("auction: get bids for ad %d: %w", adID, auctionerrors.ErrAdNotFound)
	}
	return append([]model.Bid{}, ad.Bids...), nil
}

// GetAdByCode returns the ad with the given public code as seen by
// viewerID (0 means anonymous). Contact info follows the marketplace
// rules: fixed ads always show the seller; an ended auction shows the
// winner to the owner and the seller to the winner; everyone else gets
// no contact. Seller details stay hidden from non-owners while an
// auction is still running.
func (l *Ledger) GetAdByCode(adCode string, viewerID int) (AdView, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var ad *model.Ad
	for _, id := range l.order {
		if l.ads[id].AdCode == adCode {
			ad = l.ads[id]
			break
		}
	}
	if ad == nil {
		return AdView{}, fmt.Errorf("auction: get ad by code %q: %w", adCode, auctionerrors.ErrAdNotFound)
	}

	view := AdView{Ad: copyAd(ad)}
	view.IsOwner = ad.UserID == viewerID
	view.IsAuctionEnded = ad.IsAuction() && ad.IsEnded
	winner := ad.WinningBid()
	view.IsWinner = view.IsAuctionEnded && winner != nil && winner.UserID == viewerID

	switch {
	case ad.AdType == model.AdTypeFixed:
		l.setContact(&view, ad.UserID)
	case view.IsAuctionEnded && view.IsOwner && winner != nil:
		l.setContact(&view, winner.UserID)
	case view.IsAuctionEnded && view.IsWinner:
		l.setContact(&view, ad.UserID)
	}

	if ad.IsAuction() && !ad.IsEnded && !view.IsOwner {
		view.SellerInfo = ""
		view.SellerPhone = ""
	}
	return view, nil
}

func (l *Ledger) setContact(view *AdView, userID int) {
	u, ok := l.dir.Get(userID)
	if !ok {
		return
	}
	name, phone := u.Username, u.Phone
	view.ContactName = &name
	view.ContactPhone = &phone
}

// ApplyBid validates and applies one bid against the ad's current state.
// The authoritative deadline check is against now at the moment the
// mutation is applied, not at submission time: a bid racing the expiry
// sweep is rejected once the deadline has passed.
func (l *Ledger) ApplyBid(adID, userID int, amount float64, now time.Time) (BidResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ad, ok := l.ads[adID]
	if !ok {
		return BidResult{}, fmt.Errorf("auction: bid on ad %d: %w", adID, auctionerrors.ErrAdNotFound)
	}
	if err := validateBid(ad, amount, now); err != nil {
		return BidResult{}, fmt.Errorf("auction: bid on ad %d: %w", adID, err)
	}
	bidder, ok := l.dir.Get(userID)
	if !ok {
		return BidResult{}, fmt.Errorf("auction: bid on ad %d by user %d: %w", adID, userID, auctionerrors.ErrUnknownBidder)
	}

	updated := copyAd(ad)
	updated.CurrentPrice = amount
	updated.Bids = append([]model.Bid{{
		UserID:    bidder.ID,
		User:      bidder.Username,
		Amount:    amount,
		Timestamp: now,
	}}, updated.Bids...)

	if err := l.persistLocked(adID, &updated); err != nil {
		return BidResult{}, fmt.Errorf("auction: bid on ad %d: %w - %v", adID, auctionerrors.ErrPersistence, err)
	}
	*ad = updated

	return BidResult{AdID: adID, Amount: amount, Bidder: bidder.Username}, nil
}

// validateBid is the pure acceptance policy for one bid against an ad
// snapshot. The check order is user-visible: not-an-auction before
// closed before too-low, and equal amounts are rejected.
func validateBid(ad *model.Ad, amount float64, now time.Time) error {
	if !ad.IsAuction() {
		return auctionerrors.ErrNotAnAuction
	}
	if ad.IsEnded || (ad.EndTime != nil && !now.Before(*ad.EndTime)) {
		return auctionerrors.ErrAuctionClosed
	}
	if amount <= ad.CurrentPrice {
		return fmt.Errorf("%w - current price is %.2f", auctionerrors.ErrBidTooLow, ad.CurrentPrice)
	}
	return nil
}

// SweepExpired marks every running auction whose deadline has passed as
// ended, persists the whole batch once, and returns one result per
// newly-ended auction. Already-ended auctions are never re-included, so
// a second sweep is a no-op for them. A sweep that finds nothing due
// persists nothing.
func (l *Ledger) SweepExpired(now time.Time) ([]EndedAuction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var dueIDs []int
	for _, id := range l.order {
		ad := l.ads[id]
		if ad.IsAuction() && !ad.IsEnded && ad.EndTime != nil && !now.Before(*ad.EndTime) {
			dueIDs = append(dueIDs, id)
		}
	}
	if len(dueIDs) == 0 {
		return nil, nil
	}

	updated := make(map[int]*model.Ad, len(dueIDs))
	for _, id := range dueIDs {
		ad := copyAd(l.ads[id])
		ad.IsEnded = true
		updated[id] = &ad
	}

	snapshot := l.snapshotLocked(updated)
	if err := l.db.SaveAds(snapshot); err != nil {
		return nil, fmt.Errorf("auction: sweep at %s: %w - %v", now.Format(time.RFC3339), auctionerrors.ErrPersistence, err)
	}
	for id, ad := range updated {
		*l.ads[id] = *ad
	}

	results := make([]EndedAuction, 0, len(dueIDs))
	for _, id := range dueIDs {
		ad := l.ads[id]
		ended := EndedAuction{Ad: copyAd(ad)}
		ended.Seller, _ = l.dir.Get(ad.UserID)
		if winner := ad.WinningBid(); winner != nil {
			w := *winner
			ended.Winner = &w
			if u, ok := l.dir.Get(winner.UserID); ok {
				ended.WinnerUser = &u
			}
		}
		results = append(results, ended)
	}
	return results, nil
}

// persistLocked writes the full ad snapshot with one ad replaced.
// Callers must hold the write lock.
func (l *Ledger) persistLocked(adID int, replacement *model.Ad) error {
	return l.db.SaveAds(l.snapshotLocked(map[int]*model.Ad{adID: replacement}))
}

// snapshotLocked copies every ad in insertion order, substituting the
// given replacements. Callers must hold at least the read lock.
func (l *Ledger) snapshotLocked(replacements map[int]*model.Ad) []model.Ad {
	snapshot := make([]model.Ad, 0, len(l.order))
	for _, id := range l.order {
		src := l.ads[id]
		if r, ok := replacements[id]; ok {
			src = r
		}
		snapshot = append(snapshot, copyAd(src))
	}
	return snapshot
}

// copyAd returns a deep copy; the bid slice is never shared
func copyAd(ad *model.Ad) model.Ad {
	out := *ad
	out.Bids = append([]model.Bid(nil), ad.Bids...)
	if ad.EndTime != nil {
		t := *ad.EndTime
		out.EndTime = &t
	}
	return out
}
