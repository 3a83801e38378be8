// Package entities contains main entities of service.
package entities

import (
	"time"
)

// Profile ...
type Profile struct {
	ID        string
	Username  string
	FullName  string
	AvatarURL string
	Bio       string
	CreatedAt time.Time
}

// Post ...
type Post struct {
	ID           string
	AuthorID     string
	Content      string
	ParentPostID *string
	AIGenerated  bool
	CreatedAt    time.Time
}

// Message is a direct message between two users.
// Read is monotonic: it flips false->true when the recipient opens the
// conversation and never reverts.
type Message struct {
	ID          string
	SenderID    string
	RecipientID string
	Content     string
	Read        bool
	AIGenerated bool
	CreatedAt   time.Time

	Sender    *Profile
	Recipient *Profile
}

// Counterpart returns the other participant of the message relative to userID.
func (m Message) Counterpart(userID string) string {
	if m.SenderID == userID {
		return m.RecipientID
	}
	return m.SenderID
}

// Conversation is a derived view over the message table, keyed by counterpart.
// It is recomputed on every load and never persisted.
type Conversation struct {
	Profile     Profile
	LastMessage Message
	UnreadCount int
}

// ActivityType ...
type ActivityType string

const (
	// LikeActivity ...
	LikeActivity ActivityType = "like"
	// FollowActivity ...
	FollowActivity ActivityType = "follow"
	// MessageActivity ...
	MessageActivity ActivityType = "message"
	// ReplyActivity ...
	ReplyActivity ActivityType = "reply"
	// BotConversationActivity is the AI standout-conversation item.
	BotConversationActivity ActivityType = "bot_conversation"
	// BotSummaryActivity is the AI overall-summary item.
	BotSummaryActivity ActivityType = "bot_summary"
)

// ActivityItem is a derived notification record. ID is source-qualified
// ("like-<id>", "follow-<id>", ...) so no cross-source dedup is needed.
type ActivityItem struct {
	ID          string
	Type        ActivityType
	User        *Profile // nil for bot items
	Content     string
	PostContent string
	CreatedAt   time.Time
	Read        bool
}

// LikeNotice is a like on the user's post joined to the liker profile and
// the liked post content.
type LikeNotice struct {
	PostID      string
	PostContent string
	Liker       Profile
	CreatedAt   time.Time
}

// FollowNotice ...
type FollowNotice struct {
	Follower  Profile
	CreatedAt time.Time
}

// ReplyNotice is a reply to the user's post joined to the replier profile
// and the parent post content.
type ReplyNotice struct {
	PostID        string
	Content       string
	ParentPostID  string
	ParentContent string
	Replier       Profile
	CreatedAt     time.Time
}
