package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braindead-dev/LinkU/internal/entities"
)

func TestBroker_PublishRoutesByRecipient(t *testing.T) {
	b := NewBroker()

	var alice, bob []*entities.Message

	unsubAlice := b.Subscribe("alice", func(m *entities.Message) { alice = append(alice, m) })
	defer unsubAlice()
	unsubBob := b.Subscribe("bob", func(m *entities.Message) { bob = append(bob, m) })
	defer unsubBob()

	b.Publish(&entities.Message{ID: "1", RecipientID: "alice"})
	b.Publish(&entities.Message{ID: "2", RecipientID: "bob"})
	b.Publish(&entities.Message{ID: "3", RecipientID: "nobody"})

	require.Len(t, alice, 1)
	require.Len(t, bob, 1)
	assert.Equal(t, "1", alice[0].ID)
	assert.Equal(t, "2", bob[0].ID)
}

func TestBroker_Unsubscribe(t *testing.T) {
	b := NewBroker()

	var got int
	unsub := b.Subscribe("alice", func(*entities.Message) { got++ })

	b.Publish(&entities.Message{RecipientID: "alice"})
	unsub()
	unsub() // idempotent
	b.Publish(&entities.Message{RecipientID: "alice"})

	assert.Equal(t, 1, got)
}

func TestBroker_MultipleSubscribersSameRecipient(t *testing.T) {
	b := NewBroker()

	var first, second int
	unsub1 := b.Subscribe("alice", func(*entities.Message) { first++ })
	b.Subscribe("alice", func(*entities.Message) { second++ })

	b.Publish(&entities.Message{RecipientID: "alice"})
	unsub1()
	b.Publish(&entities.Message{RecipientID: "alice"})

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestListener_Dispatch(t *testing.T) {
	b := NewBroker()
	l := &Listener{b: b}

	var got *entities.Message
	b.Subscribe("00000000-0000-0000-0000-000000000002", func(m *entities.Message) { got = m })

	l.dispatch(`{
		"id": "00000000-0000-0000-0000-000000000001",
		"sender_id": "00000000-0000-0000-0000-000000000003",
		"recipient_id": "00000000-0000-0000-0000-000000000002",
		"content": "hello",
		"read": false,
		"ai_generated": true,
		"created_at": "2026-08-28T10:15:30.123456"
	}`)

	require.NotNil(t, got)
	assert.Equal(t, "hello", got.Content)
	assert.True(t, got.AIGenerated)
	assert.Equal(t, 2026, got.CreatedAt.Year())

	// malformed payloads are dropped
	got = nil
	l.dispatch(`{not json`)
	assert.Nil(t, got)
}
