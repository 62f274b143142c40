package rooms

import (
	"fmt"
	"sync"
)

// Conn is one connected session as the registry sees it. Send must not
// block; it reports whether the payload was queued for delivery.
type Conn interface {
	Send(payload []byte) bool
}

// AdRoom returns the broadcast key for one listing's live auction
func AdRoom(adID int) string {
	return fmt.Sprintf("ad:%d", adID)
}

// ChatRoom returns the broadcast key for one buyer-seller conversation
// about one listing. The user pair is sorted ascending so either
// participant computes the same key.
func ChatRoom(adID, userA, userB int) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return fmt.Sprintf("chat:%d:%d:%d", adID, userA, userB)
}

// Registry maps room keys to the set of currently connected sessions.
// Membership is ephemeral: it is rebuilt from scratch whenever the
// process restarts, never persisted.
type Registry struct {
	mu     sync.RWMutex
	rooms  map[string]map[Conn]struct{}
	joined map[Conn]map[string]struct{} // reverse index for LeaveAll
}

// NewRegistry creates an empty room registry
func NewRegistry() *Registry {
	return &Registry{
		rooms:  make(map[string]map[Conn]struct{}),
		joined: make(map[Conn]map[string]struct{}),
	}
}

// Join adds a connection to a room. Joining twice is a no-op.
func (r *Registry) Join(key string, c Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rooms[key] == nil {
		r.rooms[key] = make(map[Conn]struct{})
	}
	r.rooms[key][c] = struct{}{}

	if r.joined[c] == nil {
		r.joined[c] = make(map[string]struct{})
	}
	r.joined[c][key] = struct{}{}
}

// Leave removes a connection from a room. Leaving a room that was never
// joined is a no-op.
func (r *Registry) Leave(key string, c Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaveLocked(key, c)
}

// LeaveAll removes a connection from every room it joined. Called by the
// gateway on disconnect.
func (r *Registry) LeaveAll(c Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.joined[c] {
		r.leaveLocked(key, c)
	}
}

func (r *Registry) leaveLocked(key string, c Conn) {
	if members, ok := r.rooms[key]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(r.rooms, key)
		}
	}
	if keys, ok := r.joined[c]; ok {
		delete(keys, key)
		if len(keys) == 0 {
			delete(r.joined, c)
		}
	}
}

// MembersOf returns a snapshot of a room's current members
func (r *Registry) MembersOf(key string) []Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]Conn, 0, len(r.rooms[key]))
	for c := range r.rooms[key] {
		members = append(members, c)
	}
	return members
}

// Broadcast delivers a payload to every member of a room except exclude
// (pass nil to include everyone). The delivery list is the membership
// snapshot taken at invocation time; delivery per member is
// fire-and-forget, so one slow connection never delays the others.
func (r *Registry) Broadcast(key string, payload []byte, exclude Conn) {
	for _, c := range r.MembersOf(key) {
		if c == exclude {
			continue
		}
		c.Send(payload)
	}
}
