package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"auction-hub/internal/auctionerrors"
	model "auction-hub/internal/models"
)

const (
	usersFile   = "users.json"
	adsFile     = "ads.json"
	threadsFile = "chats.json"
)

// FileStore is a JSON-file-backed implementation of MarketDB. Each
// collection lives in one file under the data directory and is written
// as a full snapshot on every save.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore opens (and if needed bootstraps) the data directory
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create data dir %s: %w", dir, err)
	}
	fs := &FileStore{dir: dir}
	for _, name := range []string{usersFile, adsFile, threadsFile} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
				return nil, fmt.Errorf("filestore: bootstrap %s: %w", name, err)
			}
		}
	}
	return fs, nil
}

// LoadUsers reads the user collection
func (s *FileStore) LoadUsers() ([]model.User, error) {
	var users []model.User
	if err := s.read(usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// LoadAds reads the ad collection
func (s *FileStore) LoadAds() ([]model.Ad, error) {
	var ads []model.Ad
	if err := s.read(adsFile, &ads); err != nil {
		return nil, err
	}
	return ads, nil
}

// LoadThreads reads the chat thread collection
func (s *FileStore) LoadThreads() ([]model.ChatThread, error) {
	var threads []model.ChatThread
	if err := s.read(threadsFile, &threads); err != nil {
		return nil, err
	}
	return threads, nil
}

// SaveAds writes the full ad snapshot
func (s *FileStore) SaveAds(ads []model.Ad) error {
	return s.write(adsFile, ads)
}

// SaveThreads writes the full chat thread snapshot
func (s *FileStore) SaveThreads(threads []model.ChatThread) error {
	return s.write(threadsFile, threads)
}

// SaveUsers writes the full user snapshot. The core never calls this;
// it exists for seeding tools.
func (s *FileStore) SaveUsers(users []model.User) error {
	return s.write(usersFile, users)
}

func (s *FileStore) read(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("filestore: read %s: %w: %v", name, auctionerrors.ErrPersistence, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("filestore: decode %s: %w: %v", name, auctionerrors.ErrPersistence, err)
	}
	return nil
}

// write marshals the snapshot to a temp file and renames it over the
// collection file so a crashed write never leaves a truncated snapshot.
func (s *FileStore) write(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: encode %s: %w: %v", name, auctionerrors.ErrPersistence, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("filestore: write %s: %w: %v", name, auctionerrors.ErrPersistence, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("filestore: replace %s: %w: %v", name, auctionerrors.ErrPersistence, err)
	}
	return nil
}
