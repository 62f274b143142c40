package chat

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-hub/internal/auctionerrors"
	model "auction-hub/internal/models"
	"auction-hub/internal/repository"
	"auction-hub/internal/users"
)

// AdResolver validates listing references. Implemented by the auction ledger.
type AdResolver interface {
	Resolve(adID int) (model.Ad, bool)
}

// Ledger owns all chat thread state. Threads are loaded in full at
// construction and every mutation is serialized under one lock; a
// message is committed to memory only after the durable write succeeds.
type Ledger struct {
	mu      sync.Mutex
	db      repository.MarketDB
	dir     *users.Directory
	ads     AdResolver
	threads []model.ChatThread
	nextID  int
}

// ThreadSummary is one row of a user's chat list
type ThreadSummary struct {
	RecipientID   int        `json:"recipientId"` // the other participant
	RecipientName string     `json:"recipientName"`
	AdID          int        `json:"adId"`
	AdTitle       string     `json:"adTitle"`
	LastMessage   string     `json:"lastMessage"` // empty when the thread has no messages
	Timestamp     *time.Time `json:"timestamp"`   // nil when the thread has no messages
}

// NewLedger loads all chat threads from the durable store
func NewLedger(db repository.MarketDB, dir *users.Directory, ads AdResolver) (*Ledger, error) {
	threads, err := db.LoadThreads()
	if err != nil {
		return nil, fmt.Errorf("chat: load threads: %w", err)
	}

	nextID := 1
	for _, t := range threads {
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}
	return &Ledger{db: db, dir: dir, ads: ads, threads: threads, nextID: nextID}, nil
}

// PostMessage validates, persists and returns one chat message. The
// thread for the (sender, recipient) pair and ad is created lazily on
// the first message; both directions resolve to the same thread.
func (l *Ledger) PostMessage(adID, senderID, recipientID int, body string, now time.Time) (model.ChatMessage, error) {
	if senderID == recipientID {
		return model.ChatMessage{}, fmt.Errorf("chat: post message on ad %d: %w", adID, auctionerrors.ErrSelfMessage)
	}
	if _, ok := l.dir.Get(senderID); !ok {
		return model.ChatMessage{}, fmt.Errorf("chat: post message on ad %d: sender %d: %w", adID, senderID, auctionerrors.ErrUnknownParticipant)
	}
	if _, ok := l.dir.Get(recipientID); !ok {
		return model.ChatMessage{}, fmt.Errorf("chat: post message on ad %d: recipient %d: %w", adID, recipientID, auctionerrors.ErrUnknownParticipant)
	}
	ad, ok := l.ads.Resolve(adID)
	if !ok {
		return model.ChatMessage{}, fmt.Errorf("chat: post message on ad %d: %w", adID, auctionerrors.ErrUnknownParticipant)
	}

	msg := model.ChatMessage{
		SenderID:  senderID,
		Message:   body,
		Timestamp: now,
		AdID:      adID,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Work on a full copy so a failed write leaves memory untouched.
	snapshot := copyThreads(l.threads)
	idx := findThread(snapshot, adID, senderID, recipientID)
	created := false
	if idx < 0 {
		snapshot = append(snapshot, model.ChatThread{
			ID:          l.nextID,
			AdID:        adID,
			AdTitle:     ad.Title,
			SenderID:    senderID,
			RecipientID: recipientID,
		})
		idx = len(snapshot) - 1
		created = true
	}
	snapshot[idx].Messages = append(snapshot[idx].Messages, msg)

	if err := l.db.SaveThreads(snapshot); err != nil {
		return model.ChatMessage{}, fmt.Errorf("chat: post message on ad %d: %w - %v", adID, auctionerrors.ErrPersistence, err)
	}
	l.threads = snapshot
	if created {
		l.nextID++
	}
	return msg, nil
}

// ListThreadsFor returns the chat list for a user, most recent message
// first; threads without messages sort last. Threads whose other
// participant or ad can no longer be resolved are skipped.
func (l *Ledger) ListThreadsFor(userID int) []ThreadSummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	summaries := make([]ThreadSummary, 0)
	for _, t := range l.threads {
		if t.SenderID != userID && t.RecipientID != userID {
			continue
		}
		otherID := t.SenderID
		if otherID == userID {
			otherID = t.RecipientID
		}
		other, ok := l.dir.Get(otherID)
		if !ok {
			continue
		}
		ad, ok := l.ads.Resolve(t.AdID)
		if !ok {
			continue
		}

		summary := ThreadSummary{
			RecipientID:   other.ID,
			RecipientName: other.Username,
			AdID:          t.AdID,
			AdTitle:       ad.Title,
		}
		if n := len(t.Messages); n > 0 {
			last := t.Messages[n-1]
			ts := last.Timestamp
			summary.LastMessage = last.Message
			summary.Timestamp = &ts
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		ti, tj := summaries[i].Timestamp, summaries[j].Timestamp
		switch {
		case ti == nil:
			return false
		case tj == nil:
			return true
		default:
			return ti.After(*tj)
		}
	})
	return summaries
}

// GetThread returns the messages between two users about one ad, oldest
// first. A missing thread is not an error; it yields an empty slice.
func (l *Ledger) GetThread(userID, otherID, adID int) []model.ChatMessage {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := findThread(l.threads, adID, userID, otherID)
	if idx < 0 {
		return []model.ChatMessage{}
	}
	return append([]model.ChatMessage{}, l.threads[idx].Messages...)
}

// findThread locates the thread for an unordered user pair and ad
func findThread(threads []model.ChatThread, adID, userA, userB int) int {
	for i, t := range threads {
		if t.AdID != adID {
			continue
		}
		if (t.SenderID == userA && t.RecipientID == userB) ||
			(t.SenderID == userB && t.RecipientID == userA) {
			return i
		}
	}
	return -1
}

func copyThreads(threads []model.ChatThread) []model.ChatThread {
	out := make([]model.ChatThread, len(threads))
	for i, t := range threads {
		out[i] = t
		out[i].Messages = append([]model.ChatMessage(nil), t.Messages...)
	}
	return out
}
