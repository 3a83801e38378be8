package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/braindead-dev/LinkU/internal/entities"
)

var log = logrus.WithField("layer", "realtime")

const (
	channel = "user_message_inserted"

	minReconnectInterval = time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 30 * time.Second
)

// timestamps in the NOTIFY payload come from row_to_json over a timestamp
// without time zone, so they carry no offset
const payloadTimeLayout = "2006-01-02T15:04:05.999999999"

// Listener consumes postgres NOTIFY events for inserted messages and
// publishes them to the broker.
type Listener struct {
	l *pq.Listener
	b *Broker
}

type messagePayload struct {
	ID          string `json:"id"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Content     string `json:"content"`
	Read        bool   `json:"read"`
	AIGenerated bool   `json:"ai_generated"`
	CreatedAt   string `json:"created_at"`
}

// NewListener opens a dedicated listening connection. The connection
// reconnects on its own; a reconnect may drop notifications, which is
// acceptable since clients reload threads from storage anyway.
func NewListener(connStr string, b *Broker) (*Listener, error) {
	l := pq.NewListener(connStr, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.WithError(err).Error("listener connection event")
		}
	})

	if err := l.Listen(channel); err != nil {
		_ = l.Close()
		return nil, fmt.Errorf("failed to listen on %s: %w", channel, err)
	}

	return &Listener{l: l, b: b}, nil
}

// Run consumes notifications until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	defer l.l.Close() // nolint

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case n := <-l.l.Notify:
			if n == nil { // reconnect marker
				continue
			}
			l.dispatch(n.Extra)
		case <-time.After(pingInterval):
			if err := l.l.Ping(); err != nil {
				log.WithError(err).Error("failed to ping listener connection")
			}
		}
	}
}

func (l *Listener) dispatch(payload string) {
	var p messagePayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		log.WithError(err).Error("failed to decode message notification")
		return
	}

	createdAt, err := time.Parse(payloadTimeLayout, p.CreatedAt)
	if err != nil {
		if createdAt, err = time.Parse(time.RFC3339Nano, p.CreatedAt); err != nil {
			log.WithError(err).WithField("created_at", p.CreatedAt).Error("failed to parse notification timestamp")
			createdAt = time.Now().UTC()
		}
	}

	l.b.Publish(&entities.Message{
		ID:          p.ID,
		SenderID:    p.SenderID,
		RecipientID: p.RecipientID,
		Content:     p.Content,
		Read:        p.Read,
		AIGenerated: p.AIGenerated,
		CreatedAt:   createdAt,
	})
}
