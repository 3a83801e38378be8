package server

import (
	"time"

	"github.com/braindead-dev/LinkU/internal/entities"
	"github.com/braindead-dev/LinkU/internal/service"
)

const maxLimit = 100
const defaultLimit = 20

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// Profile ...
// swagger:model
type Profile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
	CreatedAt int64  `json:"created_at"`
}

// Post ...
// swagger:model
type Post struct {
	ID           string  `json:"id"`
	AuthorID     string  `json:"author_id"`
	Content      string  `json:"content"`
	ParentPostID *string `json:"parent_post_id,omitempty"`
	AIGenerated  bool    `json:"ai_generated"`
	CreatedAt    int64   `json:"created_at"`
}

// Message ...
// swagger:model
type Message struct {
	ID          string   `json:"id"`
	SenderID    string   `json:"sender_id"`
	RecipientID string   `json:"recipient_id"`
	Content     string   `json:"content"`
	Read        bool     `json:"read"`
	AIGenerated bool     `json:"ai_generated"`
	CreatedAt   int64    `json:"created_at"`
	Sender      *Profile `json:"sender,omitempty"`
}

// Conversation ...
// swagger:model
type Conversation struct {
	Profile     Profile `json:"profile"`
	LastMessage Message `json:"last_message"`
	UnreadCount int     `json:"unread_count"`
}

// UnreadCountResponse ...
// swagger:model
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// ActivityItem ...
// swagger:model
type ActivityItem struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	User        *Profile `json:"user,omitempty"`
	Content     string   `json:"content,omitempty"`
	PostContent string   `json:"post_content,omitempty"`
	CreatedAt   int64    `json:"created_at"`
	Read        bool     `json:"read"`
}

// SendMessageRequest ...
type SendMessageRequest struct {
	Content     string `json:"content"`
	AIGenerated bool   `json:"ai_generated"`
}

// UpdateProfileRequest ...
type UpdateProfileRequest struct {
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	AvatarURL    string `json:"avatar_url"`
	Bio          string `json:"bio"`
	CoreMemories string `json:"core_memories"`
}

// CreatePostRequest ...
type CreatePostRequest struct {
	Content      string  `json:"content"`
	ParentPostID *string `json:"parent_post_id,omitempty"`
	AIGenerated  bool    `json:"ai_generated"`
}

// ProfileAnalysis ...
// swagger:model
type ProfileAnalysis struct {
	IntroversionExtraversion int      `json:"introversion_extraversion"`
	AnalyticalCreative       int      `json:"analytical_creative"`
	CooperativeCompetitive   int      `json:"cooperative_competitive"`
	SpontaneousMethodical    int      `json:"spontaneous_methodical"`
	ReservedExpressive       int      `json:"reserved_expressive"`
	Tags                     []string `json:"tags"`
	Bio                      string   `json:"bio"`
}

// AnalyzeRequest ...
type AnalyzeRequest struct {
	CoreMemories string `json:"core_memories"`
}

// AIActivityRequest carries the client's AI-authored content of the day.
type AIActivityRequest struct {
	Messages []AIMessage `json:"messages"`
	Posts    []AIPost    `json:"posts"`
}

// AIMessage ...
type AIMessage struct {
	Content       string `json:"content"`
	RecipientName string `json:"recipient_name"`
	CreatedAt     int64  `json:"created_at"`
}

// AIPost ...
type AIPost struct {
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
}

func toAPIProfile(p *entities.Profile) *Profile {
	if p == nil {
		return nil
	}

	return &Profile{
		ID:        p.ID,
		Username:  p.Username,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
		CreatedAt: p.CreatedAt.Unix(),
	}
}

func toAPIProfiles(pp []*entities.Profile) []Profile {
	out := make([]Profile, len(pp))
	for i, p := range pp {
		out[i] = *toAPIProfile(p)
	}
	return out
}

func toAPIPost(p *entities.Post) *Post {
	return &Post{
		ID:           p.ID,
		AuthorID:     p.AuthorID,
		Content:      p.Content,
		ParentPostID: p.ParentPostID,
		AIGenerated:  p.AIGenerated,
		CreatedAt:    p.CreatedAt.Unix(),
	}
}

func toAPIPosts(pp []*entities.Post) []Post {
	out := make([]Post, len(pp))
	for i, p := range pp {
		out[i] = *toAPIPost(p)
	}
	return out
}

func toAPIMessage(m *entities.Message) *Message {
	return &Message{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		Read:        m.Read,
		AIGenerated: m.AIGenerated,
		CreatedAt:   m.CreatedAt.Unix(),
		Sender:      toAPIProfile(m.Sender),
	}
}

func toAPIMessages(mm []*entities.Message) []Message {
	out := make([]Message, len(mm))
	for i, m := range mm {
		out[i] = *toAPIMessage(m)
	}
	return out
}

func toAPIConversations(cc []*entities.Conversation) []Conversation {
	out := make([]Conversation, len(cc))
	for i, c := range cc {
		last := c.LastMessage
		out[i] = Conversation{
			Profile:     *toAPIProfile(&c.Profile),
			LastMessage: *toAPIMessage(&last),
			UnreadCount: c.UnreadCount,
		}
	}
	return out
}

func toAPIActivity(items []*entities.ActivityItem) []ActivityItem {
	out := make([]ActivityItem, len(items))
	for i, v := range items {
		out[i] = ActivityItem{
			ID:          v.ID,
			Type:        string(v.Type),
			User:        toAPIProfile(v.User),
			Content:     v.Content,
			PostContent: v.PostContent,
			CreatedAt:   v.CreatedAt.Unix(),
			Read:        v.Read,
		}
	}
	return out
}

func toAPIAnalysis(a *service.ProfileAnalysis) ProfileAnalysis {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	return ProfileAnalysis{
		IntroversionExtraversion: a.IntroversionExtraversion,
		AnalyticalCreative:       a.AnalyticalCreative,
		CooperativeCompetitive:   a.CooperativeCompetitive,
		SpontaneousMethodical:    a.SpontaneousMethodical,
		ReservedExpressive:       a.ReservedExpressive,
		Tags:                     tags,
		Bio:                      a.Bio,
	}
}

func fromUnix(v int64) time.Time {
	return time.Unix(v, 0).UTC()
}
