package integrationtests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-hub/internal/gateway"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// Tests a connection without an identity is refused
func TestWS_RejectsAnonymous(t *testing.T) {
	fx := SetupEngine(t)
	srv := httptest.NewServer(fx.router)
	defer srv.Close()

	for _, path := range []string{"/ws", "/ws?user_id=0", "/ws?user_id=abc"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
}

// Tests an accepted bid reaches every room member, including the bidder
func TestWS_BidFanout(t *testing.T) {
	start := time.Now().UTC()
	fx := SetupEngine(t, AuctionAd(42, 100, start.Add(time.Hour)), AuctionAd(7, 50, start.Add(time.Hour)))
	srv := httptest.NewServer(fx.router)
	defer srv.Close()

	bidder := DialWS(t, srv, 2)
	watcher := DialWS(t, srv, 3)
	outsider := DialWS(t, srv, 1)

	SendEvent(t, bidder, gateway.EventJoinAdRoom, gateway.JoinAdRoomData{AdID: 42})
	SendEvent(t, watcher, gateway.EventJoinAdRoom, gateway.JoinAdRoomData{AdID: 42})
	SendEvent(t, outsider, gateway.EventJoinAdRoom, gateway.JoinAdRoomData{AdID: 7})
	settle()

	SendEvent(t, bidder, gateway.EventNewBid, gateway.NewBidData{AdID: 42, Amount: 150})

	env := ReadEvent(t, bidder)
	require.Equal(t, gateway.EventUpdateBid, env.Type)

	var update gateway.UpdateBidData
	require.NoError(t, json.Unmarshal(env.Data, &update))
	require.Equal(t, 42, update.AdID)
	require.Equal(t, 150.0, update.Amount)
	require.Equal(t, "alice", update.User)

	env = ReadEvent(t, watcher)
	require.Equal(t, gateway.EventUpdateBid, env.Type)

	RequireSilent(t, outsider, 300*time.Millisecond)
}

// Tests a rejected bid goes back to the bidder alone
func TestWS_BidErrorOnlyToSender(t *testing.T) {
	start := time.Now().UTC()
	fx := SetupEngine(t, AuctionAd(42, 100, start.Add(time.Hour)))
	srv := httptest.NewServer(fx.router)
	defer srv.Close()

	bidder := DialWS(t, srv, 2)
	watcher := DialWS(t, srv, 3)

	SendEvent(t, bidder, gateway.EventJoinAdRoom, gateway.JoinAdRoomData{AdID: 42})
	SendEvent(t, watcher, gateway.EventJoinAdRoom, gateway.JoinAdRoomData{AdID: 42})
	settle()

	SendEvent(t, bidder, gateway.EventNewBid, gateway.NewBidData{AdID: 42, Amount: 50})

	env := ReadEvent(t, bidder)
	require.Equal(t, gateway.EventBidError, env.Type)

	var errData gateway.ErrorData
	require.NoError(t, json.Unmarshal(env.Data, &errData))
	require.NotEmpty(t, errData.Message)

	RequireSilent(t, watcher, 300*time.Millisecond)

	// the ledger is untouched
	ad, err := fx.auction.GetAd(42)
	require.NoError(t, err)
	require.Equal(t, 100.0, ad.CurrentPrice)
	require.Empty(t, ad.Bids)
}

// Tests chat messages reach the other participant without echoing back
func TestWS_ChatDelivery(t *testing.T) {
	start := time.Now().UTC()
	fx := SetupEngine(t, AuctionAd(42, 100, start.Add(time.Hour)))
	srv := httptest.NewServer(fx.router)
	defer srv.Close()

	sender := DialWS(t, srv, 2)
	recipient := DialWS(t, srv, 1)
	stranger := DialWS(t, srv, 3)

	SendEvent(t, sender, gateway.EventJoinChatRoom, gateway.JoinChatRoomData{RecipientID: 1, AdID: 42})
	SendEvent(t, recipient, gateway.EventJoinChatRoom, gateway.JoinChatRoomData{RecipientID: 2, AdID: 42})
	settle()

	SendEvent(t, sender, gateway.EventSendMessage, gateway.SendMessageData{RecipientID: 1, AdID: 42, Message: "still available?"})

	env := ReadEvent(t, recipient)
	require.Equal(t, gateway.EventNewMessage, env.Type)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &msg))
	require.Equal(t, "still available?", msg["message"])
	require.Equal(t, 2.0, msg["senderId"])

	RequireSilent(t, sender, 300*time.Millisecond)
	RequireSilent(t, stranger, 300*time.Millisecond)

	// the message is persisted under the thread either side can read
	thread := fx.chat.GetThread(1, 2, 42)
	require.Len(t, thread, 1)
	require.Equal(t, "still available?", thread[0].Message)
}

// Tests a self-addressed message is rejected over the socket
func TestWS_ChatErrorOnSelfMessage(t *testing.T) {
	start := time.Now().UTC()
	fx := SetupEngine(t, AuctionAd(42, 100, start.Add(time.Hour)))
	srv := httptest.NewServer(fx.router)
	defer srv.Close()

	sender := DialWS(t, srv, 2)

	SendEvent(t, sender, gateway.EventSendMessage, gateway.SendMessageData{RecipientID: 2, AdID: 42, Message: "hello me"})

	env := ReadEvent(t, sender)
	require.Equal(t, gateway.EventChatError, env.Type)

	require.Empty(t, fx.chat.GetThread(2, 2, 42))
}

// Tests a malformed frame is ignored and the connection stays usable
func TestWS_MalformedFrameIgnored(t *testing.T) {
	start := time.Now().UTC()
	fx := SetupEngine(t, AuctionAd(42, 100, start.Add(time.Hour)))
	srv := httptest.NewServer(fx.router)
	defer srv.Close()

	conn := DialWS(t, srv, 2)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	SendEvent(t, conn, gateway.EventJoinAdRoom, gateway.JoinAdRoomData{AdID: 42})
	settle()

	SendEvent(t, conn, gateway.EventNewBid, gateway.NewBidData{AdID: 42, Amount: 150})

	env := ReadEvent(t, conn)
	require.Equal(t, gateway.EventUpdateBid, env.Type)
}
