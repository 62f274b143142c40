package handler

import (
	"fmt"
	"net/http"

	auction "auction-hub/internal/auctionService"
	chat "auction-hub/internal/chatService"
	model "auction-hub/internal/models"
	"auction-hub/services/market/helpers"
	"auction-hub/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	GetAd(adID int) (model.Ad, error)
	GetAdByCode(adCode string, viewerID int) (auction.AdView, error)
	GetBids(adID int) ([]model.Bid, error)
}

type ChatServiceInterface interface {
	ListThreadsFor(userID int) []chat.ThreadSummary
	GetThread(userID, otherID, adID int) []model.ChatMessage
}

type UserDirectoryInterface interface {
	Get(id int) (model.User, bool)
}

type MarketHandler struct {
	auction AuctionServiceInterface
	chat    ChatServiceInterface
	users   UserDirectoryInterface
}

func NewMarketHandler(auctionSvc AuctionServiceInterface, chatSvc ChatServiceInterface, users UserDirectoryInterface) *MarketHandler {
	return &MarketHandler{auction: auctionSvc, chat: chatSvc, users: users}
}

// GetAdHandler handles GET /getAd/:adCode
func (h *MarketHandler) GetAdHandler(c *gin.Context) {
	adCode := c.Param("adCode")
	viewerID := helpers.ViewerID(c)

	view, err := h.auction.GetAdByCode(adCode, viewerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAdHandler: failed to fetch ad", map[string]any{"ad_code": adCode, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "ad retrieved successfully")
	helpers.LogSuccess("GetAdHandler", "ad retrieved successfully", map[string]any{
		"ad_code":   adCode,
		"viewer_id": viewerID,
	})
}

// GetAdByIDHandler handles GET /getAdById/:adId
func (h *MarketHandler) GetAdByIDHandler(c *gin.Context) {
	adID, ok := helpers.ParseIntParam(c, "adId")
	if !ok {
		return
	}

	ad, err := h.auction.GetAd(adID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAdByIDHandler: failed to fetch ad", map[string]any{"ad_id": adID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AdTitleResponse{Title: ad.Title}, "ad retrieved successfully")
}

// GetBidsHandler handles GET /getBids/:adId
func (h *MarketHandler) GetBidsHandler(c *gin.Context) {
	adID, ok := helpers.ParseIntParam(c, "adId")
	if !ok {
		return
	}

	bids, err := h.auction.GetBids(adID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsHandler: failed to fetch bids", map[string]any{"ad_id": adID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"ad_id": adID,
		"count": len(bids),
	})
}

// ListChatsHandler handles GET /api/chats
func (h *MarketHandler) ListChatsHandler(c *gin.Context) {
	userID := helpers.ViewerID(c)
	if userID == 0 {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("missing user identity"), "missing user identity")
		return
	}

	threads := h.chat.ListThreadsFor(userID)
	utils.JSONResponse(c, http.StatusOK, threads, "chats retrieved successfully")
	helpers.LogSuccess("ListChatsHandler", "chats retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(threads),
	})
}

// GetThreadHandler handles GET /api/chats/:recipientId/:adId
func (h *MarketHandler) GetThreadHandler(c *gin.Context) {
	userID := helpers.ViewerID(c)
	if userID == 0 {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("missing user identity"), "missing user identity")
		return
	}
	recipientID, ok := helpers.ParseIntParam(c, "recipientId")
	if !ok {
		return
	}
	adID, ok := helpers.ParseIntParam(c, "adId")
	if !ok {
		return
	}

	messages := h.chat.GetThread(userID, recipientID, adID)
	utils.JSONResponse(c, http.StatusOK, helpers.ThreadMessagesResponse{Messages: messages}, "messages retrieved successfully")
}

// GetUserHandler handles GET /api/user/:userId
func (h *MarketHandler) GetUserHandler(c *gin.Context) {
	userID, ok := helpers.ParseIntParam(c, "userId")
	if !ok {
		return
	}

	user, found := h.users.Get(userID)
	if !found {
		utils.JSONError(c, http.StatusNotFound, fmt.Errorf("user %d not found", userID), "user not found")
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.UserResponse{Username: user.Username}, "user retrieved successfully")
}
