// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/braindead-dev/LinkU/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error

	GetProfile(ctx context.Context, id string) (*entities.Profile, error)
	GetProfileByUsername(ctx context.Context, username string) (*entities.Profile, error)
	GetProfiles(ctx context.Context, ids ...string) ([]*entities.Profile, error)
	SetProfile(ctx context.Context, p *SetProfileParams) error
	SuggestedProfiles(ctx context.Context, forUser string, limit uint16) ([]*entities.Profile, error)
	GetCoreMemories(ctx context.Context, id string) (string, error)

	CreatePost(ctx context.Context, p *entities.Post) error
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)
	DeletePost(ctx context.Context, id, authorID string) error

	SetLike(ctx context.Context, postID, userID string, timestamp time.Time) error
	DeleteLike(ctx context.Context, postID, userID string) error
	ListLikesReceived(ctx context.Context, userID string, limit uint16) ([]*entities.LikeNotice, error)

	Follow(ctx context.Context, follower, followee string) error
	Unfollow(ctx context.Context, follower, followee string) error
	ListFollowsReceived(ctx context.Context, userID string, limit uint16) ([]*entities.FollowNotice, error)

	ListRepliesReceived(ctx context.Context, userID string, limit uint16) ([]*entities.ReplyNotice, error)

	CreateMessage(ctx context.Context, m *entities.Message) error
	ListMessages(ctx context.Context, userID string) ([]*entities.Message, error)
	ListThread(ctx context.Context, userID, otherID string) ([]*entities.Message, error)
	MarkRead(ctx context.Context, recipientID, senderID string) error
	ListUnreadMessages(ctx context.Context, userID string, since time.Time) ([]*entities.Message, error)

	ListAIMessages(ctx context.Context, userID string, since time.Time) ([]*entities.Message, error)
	ListAIPosts(ctx context.Context, userID string, since time.Time) ([]*entities.Post, error)
}

// SetProfileParams holds the fields editable via the settings form.
type SetProfileParams struct {
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
	Before *time.Time
	Limit  uint16
}
