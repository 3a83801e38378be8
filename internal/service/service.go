// Package service contains interface for service business-logic.
package service

import (
	"context"

	"github.com/braindead-dev/LinkU/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// Service ...
type Service interface {
	// UnreadConversations returns the number of distinct counterparts with at
	// least one unread message addressed to the user. It never fails: any
	// storage error yields 0 (availability over accuracy for a badge count).
	UnreadConversations(ctx context.Context, userID string) int

	// ListActivity returns the merged activity feed, sorted by timestamp
	// descending. A failing source degrades to an empty contribution.
	ListActivity(ctx context.Context, userID string) []*entities.ActivityItem

	ListConversations(ctx context.Context, userID string) ([]*entities.Conversation, error)
	// OpenConversation returns the full thread with otherID ascending and
	// marks every inbound message of that thread as read.
	OpenConversation(ctx context.Context, userID, otherID string) ([]*entities.Message, error)
	SendMessage(ctx context.Context, senderID, recipientID, content string, aiGenerated bool) (*entities.Message, error)

	GetProfile(ctx context.Context, id string) (*entities.Profile, error)
	// GetProfiles batch-loads profiles by id; unknown ids are skipped.
	GetProfiles(ctx context.Context, ids []string) ([]*entities.Profile, error)
	GetProfileByUsername(ctx context.Context, username string) (*entities.Profile, error)
	UpdateProfile(ctx context.Context, p *UpdateProfileParams) error
	SuggestedProfiles(ctx context.Context, forUser string, limit uint16) ([]*entities.Profile, error)
	AnalyzeProfile(ctx context.Context, userID string) (*ProfileAnalysis, error)

	CreatePost(ctx context.Context, authorID, content string, parentPostID *string, aiGenerated bool) (*entities.Post, error)
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)
	DeletePost(ctx context.Context, id, authorID string) error

	Like(ctx context.Context, postID, userID string) error
	Unlike(ctx context.Context, postID, userID string) error

	Follow(ctx context.Context, follower, followee string) error
	Unfollow(ctx context.Context, follower, followee string) error
}

// UpdateProfileParams holds the settings-form fields.
type UpdateProfileParams struct {
	ID           string
	Username     string
	FullName     string
	AvatarURL    string
	Bio          string
	CoreMemories string
}

// ListPostsParams ...
type ListPostsParams struct {
	Author *string
	Before *int64
	Limit  uint16
}

// ProfileAnalysis is the analyzer verdict over a profile's core memories.
type ProfileAnalysis struct {
	IntroversionExtraversion int
	AnalyticalCreative       int
	CooperativeCompetitive   int
	SpontaneousMethodical    int
	ReservedExpressive       int
	Tags                     []string
	Bio                      string
}

// FeedTab is a named filtered view over the merged activity feed.
type FeedTab string

const (
	// AllTab ...
	AllTab FeedTab = "all"
	// BotTab ...
	BotTab FeedTab = "bot"
	// InboxTab ...
	InboxTab FeedTab = "inbox"
)

// FilterFeed filters an already-sorted feed to the given tab without
// re-sorting. BotTab and InboxTab partition AllTab.
func FilterFeed(items []*entities.ActivityItem, tab FeedTab) []*entities.ActivityItem {
	if tab == AllTab || tab == "" {
		return items
	}

	out := make([]*entities.ActivityItem, 0, len(items))
	for _, v := range items {
		bot := v.Type == entities.BotConversationActivity || v.Type == entities.BotSummaryActivity

		if (tab == BotTab) == bot {
			out = append(out, v)
		}
	}

	return out
}
