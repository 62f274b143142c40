package helpers

import (
	model "auction-hub/internal/models"
)

// Response DTOs
type AdTitleResponse struct {
	Title string `json:"title"`
}

type UserResponse struct {
	Username string `json:"username"`
}

type ThreadMessagesResponse struct {
	Messages []model.ChatMessage `json:"messages"`
}
