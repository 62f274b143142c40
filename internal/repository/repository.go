package repository

import (
	"sync"

	model "auction-hub/internal/models"
)

// MarketDB defines the durable store the ledgers read and write through.
// Writes are full per-collection snapshots, matching the one-record-per-ad
// and one-record-per-thread layout the web collaborator expects.
type MarketDB interface {
	LoadUsers() ([]model.User, error)
	LoadAds() ([]model.Ad, error)
	LoadThreads() ([]model.ChatThread, error)
	SaveAds(ads []model.Ad) error
	SaveThreads(threads []model.ChatThread) error
}

// MemoryStore is a concurrency-safe in-memory implementation of MarketDB
type MemoryStore struct {
	mu      sync.RWMutex
	users   []model.User
	ads     []model.Ad
	threads []model.ChatThread
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadUsers returns the stored user records
func (s *MemoryStore) LoadUsers() ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...), nil
}

// LoadAds returns the stored ad records
func (s *MemoryStore) LoadAds() ([]model.Ad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Ad(nil), s.ads...), nil
}

// LoadThreads returns the stored chat threads
func (s *MemoryStore) LoadThreads() ([]model.ChatThread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ChatThread(nil), s.threads...), nil
}

// SaveAds replaces the stored ad snapshot
func (s *MemoryStore) SaveAds(ads []model.Ad) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ads = append([]model.Ad(nil), ads...)
	return nil
}

// SaveThreads replaces the stored chat thread snapshot
func (s *MemoryStore) SaveThreads(threads []model.ChatThread) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads = append([]model.ChatThread(nil), threads...)
	return nil
}

// AddUser seeds a user record. Intended for wiring and tests.
func (s *MemoryStore) AddUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
}

// AddAd seeds an ad record. Intended for wiring and tests.
func (s *MemoryStore) AddAd(ad model.Ad) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ads = append(s.ads, ad)
}
