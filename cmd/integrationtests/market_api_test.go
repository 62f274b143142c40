package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Tests the ad detail endpoint and its contact redaction
func TestGetAdEndpoint(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fx := SetupEngine(t, AuctionAd(42, 100, start.Add(time.Hour)))

	t.Run("unknown_code_is_404", func(t *testing.T) {
		resp, w := ExecuteRequest(t, fx.router, http.MethodGet, "/getAd/nope", "2")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Contains(t, resp["message"], "ad not found")
	})

	t.Run("running_auction_hides_contact", func(t *testing.T) {
		resp, w := ExecuteRequest(t, fx.router, http.MethodGet, "/getAd/code-42", "2")
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "Listing 42", data["title"])
		require.Equal(t, false, data["isOwner"])
		require.Nil(t, data["contactName"])
		require.Nil(t, data["contactPhone"])
		require.Empty(t, data["seller_info"], "seller identity stays hidden while the auction runs")
	})

	t.Run("owner_sees_own_listing", func(t *testing.T) {
		resp, w := ExecuteRequest(t, fx.router, http.MethodGet, "/getAd/code-42", "1")
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, true, data["isOwner"])
	})
}

// Tests winner and owner contact exchange once the auction is over
func TestGetAdEndpoint_EndedAuction(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fx := SetupEngine(t, AuctionAd(42, 100, start.Add(time.Minute)))

	_, err := fx.auction.ApplyBid(42, 2, 250, start)
	require.NoError(t, err)
	_, err = fx.auction.SweepExpired(start.Add(2 * time.Minute))
	require.NoError(t, err)

	t.Run("winner_gets_seller_contact", func(t *testing.T) {
		resp, w := ExecuteRequest(t, fx.router, http.MethodGet, "/getAd/code-42", "2")
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, true, data["isWinner"])
		require.Equal(t, true, data["isAuctionEnded"])
		require.Equal(t, "seller", data["contactName"])
		require.Equal(t, "111", data["contactPhone"])
	})

	t.Run("owner_gets_winner_contact", func(t *testing.T) {
		resp, w := ExecuteRequest(t, fx.router, http.MethodGet, "/getAd/code-42", "1")
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "alice", data["contactName"])
		require.Equal(t, "222", data["contactPhone"])
	})

	t.Run("bystander_gets_no_contact", func(t *testing.T) {
		resp, w := ExecuteRequest(t, fx.router, http.MethodGet, "/getAd/code-42", "3")
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Nil(t, data["contactName"])
		require.Nil(t, data["contactPhone"])
	})
}

// Tests the bid history endpoint
func TestGetBidsEndpoint(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fx := SetupEngine(t, AuctionAd(42, 100, start.Add(time.Hour)))

	_, err := fx.auction.ApplyBid(42, 2, 150, start)
	require.NoError(t, err)
	_, err = fx.auction.ApplyBid(42, 3, 200, start.Add(time.Second))
	require.NoError(t, err)

	resp, w := ExecuteRequest(t, fx.router, http.MethodGet, "/getBids/42", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].([]any)
	require.Len(t, data, 2)

	newest := data[0].(map[string]any)
	require.Equal(t, 200.0, newest["amount"])
	require.Equal(t, "bob", newest["user"])

	resp, w = ExecuteRequest(t, fx.router, http.MethodGet, "/getBids/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, resp["message"], "ad not found")
}

// Tests the chat listing and thread endpoints end to end
func TestChatEndpoints(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fx := SetupEngine(t, AuctionAd(42, 100, start.Add(time.Hour)))

	_, err := fx.chat.PostMessage(42, 2, 1, "still available?", start)
	require.NoError(t, err)
	_, err = fx.chat.PostMessage(42, 1, 2, "yes it is", start.Add(time.Minute))
	require.NoError(t, err)

	t.Run("unauthenticated_is_401", func(t *testing.T) {
		_, w := ExecuteRequest(t, fx.router, http.MethodGet, "/api/chats", "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("list_threads", func(t *testing.T) {
		resp, w := ExecuteRequest(t, fx.router, http.MethodGet, "/api/chats", "2")
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].([]any)
		require.Len(t, data, 1)
		thread := data[0].(map[string]any)
		require.Equal(t, "seller", thread["recipientName"])
		require.Equal(t, "Listing 42", thread["adTitle"])
		require.Equal(t, "yes it is", thread["lastMessage"])
	})

	t.Run("thread_messages_in_send_order", func(t *testing.T) {
		resp, w := ExecuteRequest(t, fx.router, http.MethodGet, "/api/chats/2/42", "1")
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		messages := data["messages"].([]any)
		require.Len(t, messages, 2)
		require.Equal(t, "still available?", messages[0].(map[string]any)["message"])
		require.Equal(t, "yes it is", messages[1].(map[string]any)["message"])
	})

	t.Run("absent_thread_is_empty", func(t *testing.T) {
		resp, w := ExecuteRequest(t, fx.router, http.MethodGet, "/api/chats/3/42", "1")
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Empty(t, data["messages"])
	})
}

// Tests the public user lookup endpoint
func TestGetUserEndpoint(t *testing.T) {
	fx := SetupEngine(t)

	resp, w := ExecuteRequest(t, fx.router, http.MethodGet, "/api/user/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "alice", resp["data"].(map[string]any)["username"])

	resp, w = ExecuteRequest(t, fx.router, http.MethodGet, "/api/user/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, resp["message"], "user not found")
}
