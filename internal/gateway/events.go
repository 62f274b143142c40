package gateway

import (
	"encoding/json"
	"fmt"

	model "auction-hub/internal/models"
)

// Inbound event types (client -> gateway)
const (
	EventJoinAdRoom   = "joinAdRoom"
	EventNewBid       = "newBid"
	EventJoinChatRoom = "joinChatRoom"
	EventSendMessage  = "sendMessage"
)

// Outbound event types (gateway -> client)
const (
	EventUpdateBid    = "updateBid"
	EventBidError     = "bidError"
	EventAuctionEnded = "auctionEnded"
	EventNewMessage   = "newMessage"
	EventChatError    = "chatError"
)

// Envelope wraps every event on the wire
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// JoinAdRoomData asks to join a listing's auction room
type JoinAdRoomData struct {
	AdID int `json:"adId"`
}

// NewBidData submits a bid on a listing
type NewBidData struct {
	AdID   int     `json:"adId"`
	Amount float64 `json:"amount"`
}

// JoinChatRoomData asks to join the chat room shared with another user
// about one listing
type JoinChatRoomData struct {
	RecipientID int `json:"recipientId"`
	AdID        int `json:"adId"`
}

// SendMessageData submits a chat message
type SendMessageData struct {
	RecipientID int    `json:"recipientId"`
	AdID        int    `json:"adId"`
	Message     string `json:"message"`
}

// UpdateBidData announces an accepted bid to the auction room
type UpdateBidData struct {
	AdID   int     `json:"adId"`
	Amount float64 `json:"amount"`
	User   string  `json:"user"` // bidder display name
}

// ErrorData carries a user-visible rejection back to the sender
type ErrorData struct {
	Message string `json:"message"`
}

// AuctionEndedData announces a closed auction to its room. WinnerID and
// WinnerInfo are nil when the auction ended without bids.
type AuctionEndedData struct {
	AdID       int         `json:"adId"`
	WinnerID   *int        `json:"winnerId"`
	SellerInfo *model.User `json:"sellerInfo"`
	WinnerInfo *model.User `json:"winnerInfo"`
}

// Encode marshals an event envelope for the wire
func Encode(eventType string, data any) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("gateway: encode %s event: %w", eventType, err)
	}
	return json.Marshal(Envelope{Type: eventType, Data: payload})
}
