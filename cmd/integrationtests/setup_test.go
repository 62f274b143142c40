package integrationtests

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	auction "auction-hub/internal/auctionService"
	chat "auction-hub/internal/chatService"
	"auction-hub/internal/gateway"
	model "auction-hub/internal/models"
	"auction-hub/internal/repository"
	"auction-hub/internal/rooms"
	"auction-hub/internal/server"
	"auction-hub/internal/users"
	"auction-hub/services/market/handler"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// fixture bundles the fully wired engine for one test
type fixture struct {
	router  *gin.Engine
	auction *auction.Ledger
	chat    *chat.Ledger
}

// SetupEngine wires the full stack over an in-memory store
func SetupEngine(t *testing.T, ads ...model.Ad) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	store.AddUser(model.User{ID: 1, Username: "seller", Email: "seller@example.com", Phone: "111"})
	store.AddUser(model.User{ID: 2, Username: "alice", Email: "alice@example.com", Phone: "222"})
	store.AddUser(model.User{ID: 3, Username: "bob", Email: "bob@example.com", Phone: "333"})
	require.NoError(t, store.SaveAds(ads))

	dir, err := users.NewDirectory(store)
	require.NoError(t, err)
	auctionLedger, err := auction.NewLedger(store, dir)
	require.NoError(t, err)
	chatLedger, err := chat.NewLedger(store, dir, auctionLedger)
	require.NoError(t, err)

	registry := rooms.NewRegistry()
	gw := gateway.NewGateway(auctionLedger, chatLedger, registry)
	h := handler.NewMarketHandler(auctionLedger, chatLedger, dir)

	return &fixture{
		router:  server.SetupRouter(h, gw),
		auction: auctionLedger,
		chat:    chatLedger,
	}
}

// AuctionAd builds an auction listing owned by user 1
func AuctionAd(id int, price float64, endsAt time.Time) model.Ad {
	return model.Ad{
		ID:           id,
		AdCode:       fmt.Sprintf("code-%d", id),
		Title:        fmt.Sprintf("Listing %d", id),
		AdType:       model.AdTypeAuction,
		CurrentPrice: price,
		StartPrice:   price,
		EndTime:      &endsAt,
		Bids:         []model.Bid{},
		UserID:       1,
		SellerInfo:   "seller",
		SellerPhone:  "111",
	}
}

// ExecuteRequest runs one HTTP request against the router and parses the
// response envelope.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, viewerID string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, url, nil)
	if viewerID != "" {
		req.Header.Set("X-User-ID", viewerID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// DialWS connects a websocket client as the given user
func DialWS(t *testing.T, srv *httptest.Server, userID int) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + fmt.Sprintf("/ws?user_id=%d", userID)
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// SendEvent writes one event envelope to the socket
func SendEvent(t *testing.T, conn *websocket.Conn, eventType string, data any) {
	t.Helper()

	payload, err := json.Marshal(data)
	require.NoError(t, err)
	env := gateway.Envelope{Type: eventType, Data: payload}
	require.NoError(t, conn.WriteJSON(env))
}

// ReadEvent reads the next event envelope, failing the test on timeout
func ReadEvent(t *testing.T, conn *websocket.Conn) gateway.Envelope {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var env gateway.Envelope
	require.NoError(t, conn.ReadJSON(&env))
	return env
}

// RequireSilent asserts no event arrives within the window
func RequireSilent(t *testing.T, conn *websocket.Conn, window time.Duration) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(window)))
	var env gateway.Envelope
	err := conn.ReadJSON(&env)
	require.Error(t, err, "expected no event, got %q", env.Type)
	var netErr net.Error
	require.ErrorAs(t, err, &netErr)
	require.True(t, netErr.Timeout())
}

// settle gives the server a moment to process joins sent on other
// connections before the test fires the event that should fan out.
func settle() {
	time.Sleep(100 * time.Millisecond)
}
