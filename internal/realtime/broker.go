// Package realtime delivers freshly inserted messages to connected
// recipients. The database is the source of truth: an insert fires a NOTIFY,
// the listener decodes it and the broker fans it out in-process.
package realtime

import (
	"sync"

	"github.com/braindead-dev/LinkU/internal/entities"
)

// Handler receives a published message. It must not block: it is called
// synchronously under dispatch.
type Handler func(m *entities.Message)

// Broker fans messages out to subscribers keyed by recipient id.
type Broker struct {
	mu   sync.RWMutex
	next int
	subs map[string]map[int]Handler
}

// NewBroker ...
func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[int]Handler),
	}
}

// Subscribe registers fn for messages addressed to recipientID and returns an
// unsubscribe func. Unsubscribing is idempotent and safe after the broker has
// published.
func (b *Broker) Subscribe(recipientID string, fn Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++

	if b.subs[recipientID] == nil {
		b.subs[recipientID] = make(map[int]Handler)
	}
	b.subs[recipientID][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		delete(b.subs[recipientID], id)
		if len(b.subs[recipientID]) == 0 {
			delete(b.subs, recipientID)
		}
	}
}

// Publish delivers m to every subscriber of its recipient. Messages for
// recipients without subscribers are dropped: offline users catch up from
// storage on the next conversation load.
func (b *Broker) Publish(m *entities.Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, fn := range b.subs[m.RecipientID] {
		fn(m)
	}
}
