package models

import "time"

// AdTypeAuction and AdTypeFixed are the two listing kinds
const (
	AdTypeAuction = "auction"
	AdTypeFixed   = "fixed"
)

// User represents a marketplace account supplied by the account collaborator
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Ad represents a classified listing; auction fields are embedded for ad_type "auction"
type Ad struct {
	ID           int        `json:"id"`
	AdCode       string     `json:"adCode"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Subcategory  string     `json:"subcategory"`
	AdType       string     `json:"ad_type"` // "fixed" or "auction"
	CurrentPrice float64    `json:"currentPrice"`
	StartPrice   float64    `json:"startPrice"`
	BuyNowPrice  float64    `json:"buyNowPrice"`
	EndTime      *time.Time `json:"endTime"` // nil unless ad_type is "auction"
	IsEnded      bool       `json:"isEnded"`
	Bids         []Bid      `json:"bids"` // newest-first
	UserID       int        `json:"userId"`
	SellerInfo   string     `json:"seller_info"`
	SellerPhone  string     `json:"seller_phone"`
}

// Bid represents an accepted bid on an auction ad
type Bid struct {
	UserID    int       `json:"userId"`
	User      string    `json:"user"` // bidder display name
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatThread holds the conversation between two users about one ad
type ChatThread struct {
	ID          int           `json:"id"`
	AdID        int           `json:"adId"`
	AdTitle     string        `json:"adTitle"`
	SenderID    int           `json:"senderId"`    // user who opened the thread
	RecipientID int           `json:"recipientId"` // the other participant
	Messages    []ChatMessage `json:"messages"`    // send order
}

// ChatMessage is a single message inside a ChatThread
type ChatMessage struct {
	SenderID  int       `json:"senderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	AdID      int       `json:"adId"`
}

// IsAuction reports whether the ad is a live auction listing
func (a *Ad) IsAuction() bool {
	return a.AdType == AdTypeAuction
}

// WinningBid returns the current high bid (head of the newest-first bid
// sequence) or nil when no bids were placed.
func (a *Ad) WinningBid() *Bid {
	if len(a.Bids) == 0 {
		return nil
	}
	return &a.Bids[0]
}
