package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	auction "auction-hub/internal/auctionService"
	"auction-hub/internal/auctionerrors"
	chat "auction-hub/internal/chatService"
	"auction-hub/internal/rooms"
	"auction-hub/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Gateway accepts real-time connections, dispatches inbound events to
// the auction and chat ledgers, and fans accepted mutations out to the
// affected room. Rejections go back to the originating connection only.
type Gateway struct {
	auction  *auction.Ledger
	chat     *chat.Ledger
	registry *rooms.Registry
	upgrader websocket.Upgrader
}

// NewGateway creates a gateway over the given ledgers and room registry
func NewGateway(auctionLedger *auction.Ledger, chatLedger *chat.Ledger, registry *rooms.Registry) *Gateway {
	return &Gateway{
		auction:  auctionLedger,
		chat:     chatLedger,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Session auth is the web collaborator's concern
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleWS upgrades GET /ws?user_id=N. The identity is handed in by the
// collaborator that already authenticated the user; connections without
// one are rejected.
func (g *Gateway) HandleWS(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil || userID <= 0 {
		utils.Warn("gateway: connection rejected, no user id", map[string]any{"remote": c.Request.RemoteAddr})
		c.String(http.StatusBadRequest, "user_id is required")
		return
	}

	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Error("gateway: websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	client := newClient(userID, conn, g)
	utils.Info("gateway: client connected", map[string]any{
		"client_id": client.ID.String(),
		"user_id":   userID,
	})

	go client.writePump()
	go client.readPump()
}

// dispatch routes one inbound event through validation, mutation and
// broadcast. Every rejection is surfaced to the sender and never
// reaches other connections.
func (g *Gateway) dispatch(c *Client, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		utils.Warn("gateway: malformed event", map[string]any{"user_id": c.UserID, "error": err.Error()})
		return
	}

	switch env.Type {
	case EventJoinAdRoom:
		var data JoinAdRoomData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			utils.Warn("gateway: malformed joinAdRoom", map[string]any{"user_id": c.UserID, "error": err.Error()})
			return
		}
		g.registry.Join(rooms.AdRoom(data.AdID), c)

	case EventNewBid:
		var data NewBidData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			utils.Warn("gateway: malformed newBid", map[string]any{"user_id": c.UserID, "error": err.Error()})
			return
		}
		g.handleNewBid(c, data)

	case EventJoinChatRoom:
		var data JoinChatRoomData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			utils.Warn("gateway: malformed joinChatRoom", map[string]any{"user_id": c.UserID, "error": err.Error()})
			return
		}
		g.registry.Join(rooms.ChatRoom(data.AdID, c.UserID, data.RecipientID), c)

	case EventSendMessage:
		var data SendMessageData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			utils.Warn("gateway: malformed sendMessage", map[string]any{"user_id": c.UserID, "error": err.Error()})
			return
		}
		g.handleSendMessage(c, data)

	default:
		utils.Warn("gateway: unhandled event type", map[string]any{"type": env.Type, "user_id": c.UserID})
	}
}

// handleNewBid applies a bid and, on success, announces the new price to
// everyone in the ad room, the bidder included.
func (g *Gateway) handleNewBid(c *Client, data NewBidData) {
	result, err := g.auction.ApplyBid(data.AdID, c.UserID, data.Amount, time.Now().UTC())
	if err != nil {
		c.sendEvent(EventBidError, ErrorData{Message: rejectionMessage(err)})
		utils.Info("gateway: bid rejected", map[string]any{
			"ad_id":   data.AdID,
			"user_id": c.UserID,
			"amount":  data.Amount,
			"error":   err.Error(),
		})
		return
	}

	g.Broadcast(rooms.AdRoom(result.AdID), EventUpdateBid, UpdateBidData{
		AdID:   result.AdID,
		Amount: result.Amount,
		User:   result.Bidder,
	}, nil)
	utils.Info("gateway: bid accepted", map[string]any{
		"ad_id":   result.AdID,
		"user_id": c.UserID,
		"amount":  result.Amount,
	})
}

// handleSendMessage persists a chat message and relays it to the other
// participant; the sender gets no echo.
func (g *Gateway) handleSendMessage(c *Client, data SendMessageData) {
	msg, err := g.chat.PostMessage(data.AdID, c.UserID, data.RecipientID, data.Message, time.Now().UTC())
	if err != nil {
		c.sendEvent(EventChatError, ErrorData{Message: rejectionMessage(err)})
		utils.Info("gateway: message rejected", map[string]any{
			"ad_id":     data.AdID,
			"sender_id": c.UserID,
			"error":     err.Error(),
		})
		return
	}

	g.Broadcast(rooms.ChatRoom(data.AdID, c.UserID, data.RecipientID), EventNewMessage, msg, c)
}

// Broadcast encodes one event and delivers it to a room, optionally
// excluding a connection. Fan-out starts only after the caller's
// mutation has been persisted.
func (g *Gateway) Broadcast(roomKey, eventType string, data any, exclude rooms.Conn) {
	payload, err := Encode(eventType, data)
	if err != nil {
		utils.Error("gateway: broadcast encode", map[string]any{"type": eventType, "error": err.Error()})
		return
	}
	g.registry.Broadcast(roomKey, payload, exclude)
}

// rejectionMessage maps a ledger error to the user-visible message sent
// back over the socket.
func rejectionMessage(err error) string {
	for _, sentinel := range []error{
		auctionerrors.ErrAdNotFound,
		auctionerrors.ErrNotAnAuction,
		auctionerrors.ErrAuctionClosed,
		auctionerrors.ErrBidTooLow,
		auctionerrors.ErrUnknownBidder,
		auctionerrors.ErrSelfMessage,
		auctionerrors.ErrUnknownParticipant,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "internal error"
}
