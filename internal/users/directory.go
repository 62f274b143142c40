package users

import (
	"fmt"

	model "auction-hub/internal/models"
	"auction-hub/internal/repository"
)

// Directory is a read-only lookup over the account collaborator's user
// records, loaded in full at process start. The core never mutates users.
type Directory struct {
	byID map[int]model.User
}

// NewDirectory loads all users from the durable store
func NewDirectory(db repository.MarketDB) (*Directory, error) {
	list, err := db.LoadUsers()
	if err != nil {
		return nil, fmt.Errorf("users: load directory: %w", err)
	}
	byID := make(map[int]model.User, len(list))
	for _, u := range list {
		byID[u.ID] = u
	}
	return &Directory{byID: byID}, nil
}

// Get resolves a user by id
func (d *Directory) Get(id int) (model.User, bool) {
	u, ok := d.byID[id]
	return u, ok
}
