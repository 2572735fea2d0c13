package application

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// LeadEvent is what the live feed pushes to connected admin clients when a
// lead is captured.
type LeadEvent struct {
	LeadID    uint      `json:"lead_id"`
	FormID    uint      `json:"form_id"`
	AccountID uint      `json:"account_id"`
	FormName  string    `json:"form_name"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadFeed fans captured leads out to websocket subscribers. Publish never
// blocks; a subscriber that cannot keep up drops events.
type LeadFeed struct {
	mu   sync.RWMutex
	subs map[string]chan LeadEvent
}

func NewLeadFeed() *LeadFeed {
	return &LeadFeed{subs: make(map[string]chan LeadEvent)}
}

// Subscribe registers a listener and returns its id plus the event channel.
func (f *LeadFeed) Subscribe() (string, <-chan LeadEvent) {
	id := uuid.NewString()
	ch := make(chan LeadEvent, 16)

	f.mu.Lock()
	f.subs[id] = ch
	f.mu.Unlock()

	return id, ch
}

func (f *LeadFeed) Unsubscribe(id string) {
	f.mu.Lock()
	if ch, ok := f.subs[id]; ok {
		delete(f.subs, id)
		close(ch)
	}
	f.mu.Unlock()
}

func (f *LeadFeed) Publish(ev LeadEvent) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, ch := range f.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
