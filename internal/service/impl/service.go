// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/braindead-dev/LinkU/internal/ai"
	"github.com/braindead-dev/LinkU/internal/entities"
	"github.com/braindead-dev/LinkU/internal/service"
	"github.com/braindead-dev/LinkU/internal/storage"
)

var log = logrus.WithField("layer", "service")

// ErrInvalidContent returned when a post or message body is empty.
var ErrInvalidContent = errors.New("content is empty")

// ErrSelfFollow returned on an attempt to follow yourself.
var ErrSelfFollow = errors.New("can not follow yourself")

// ErrSelfMessage returned on an attempt to message yourself.
var ErrSelfMessage = errors.New("can not message yourself")

// ErrAINotConfigured returned when an AI-backed operation is requested
// without a configured model.
var ErrAINotConfigured = errors.New("AI service is not configured")

type srv struct {
	s storage.Storage
	b ai.Brain
}

// New creates new instance of service.
func New(s storage.Storage, b ai.Brain) service.Service {
	return srv{
		s: s,
		b: b,
	}
}

// UnreadConversations counts distinct counterparts having at least one unread
// message addressed to the user. A counterpart with several unread messages
// counts once. Fetch failures yield 0 and a log line, never an error: the
// badge prefers availability over accuracy.
func (s srv) UnreadConversations(ctx context.Context, userID string) int {
	mm, err := s.s.ListMessages(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("user", userID).Error("failed to count unread conversations")
		return 0
	}

	unread := make(map[string]struct{})
	for _, m := range mm {
		if m.Read || m.RecipientID != userID {
			continue
		}
		unread[m.Counterpart(userID)] = struct{}{}
	}

	return len(unread)
}

// ListConversations folds the user's messages into one conversation per
// counterpart. The input is sorted by creation time descending, so the first
// message seen per counterpart is its most recent one; the unread tally is
// accumulated in the same pass.
func (s srv) ListConversations(ctx context.Context, userID string) ([]*entities.Conversation, error) {
	mm, err := s.s.ListMessages(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	index := make(map[string]*entities.Conversation, len(mm))
	out := make([]*entities.Conversation, 0, len(mm))

	for _, m := range mm {
		other := m.Counterpart(userID)

		c, ok := index[other]
		if !ok {
			profile := m.Sender
			if m.SenderID == userID {
				profile = m.Recipient
			}

			c = &entities.Conversation{
				Profile:     *profile,
				LastMessage: *m,
			}
			index[other] = c
			out = append(out, c)
		}

		if !m.Read && m.RecipientID == userID {
			c.UnreadCount++
		}
	}

	return out, nil
}

// OpenConversation returns the full bidirectional thread ascending and marks
// every message of the thread addressed to the user as read. The read flip is
// a deliberate write side effect of this read: both the unread calculator and
// the activity aggregator observe it.
func (s srv) OpenConversation(ctx context.Context, userID, otherID string) ([]*entities.Message, error) {
	var thread []*entities.Message

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		var err error
		if thread, err = tx.ListThread(ctx, userID, otherID); err != nil {
			return fmt.Errorf("failed to list thread: %w", err)
		}

		if err := tx.MarkRead(ctx, userID, otherID); err != nil {
			return fmt.Errorf("failed to mark read: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return thread, nil
}

func (s srv) SendMessage(ctx context.Context, senderID, recipientID, content string, aiGenerated bool) (*entities.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidContent
	}

	if senderID == recipientID {
		return nil, ErrSelfMessage
	}

	m := entities.Message{
		ID:          uuid.NewString(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		AIGenerated: aiGenerated,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.s.CreateMessage(ctx, &m); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return &m, nil
}

func (s srv) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	p, err := s.s.GetProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (s srv) GetProfiles(ctx context.Context, ids []string) ([]*entities.Profile, error) {
	pp, err := s.s.GetProfiles(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	return pp, nil
}

func (s srv) GetProfileByUsername(ctx context.Context, username string) (*entities.Profile, error) {
	p, err := s.s.GetProfileByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (s srv) UpdateProfile(ctx context.Context, p *service.UpdateProfileParams) error {
	if err := s.s.SetProfile(ctx, &storage.SetProfileParams{
		ID:           p.ID,
		Username:     p.Username,
		FullName:     p.FullName,
		AvatarURL:    p.AvatarURL,
		Bio:          p.Bio,
		CoreMemories: p.CoreMemories,
	}); err != nil {
		return fmt.Errorf("failed to set profile: %w", err)
	}

	return nil
}

func (s srv) SuggestedProfiles(ctx context.Context, forUser string, limit uint16) ([]*entities.Profile, error) {
	pp, err := s.s.SuggestedProfiles(ctx, forUser, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get suggested profiles: %w", err)
	}

	return pp, nil
}

func (s srv) AnalyzeProfile(ctx context.Context, userID string) (*service.ProfileAnalysis, error) {
	if s.b == nil {
		return nil, ErrAINotConfigured
	}

	memories, err := s.s.GetCoreMemories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get core memories: %w", err)
	}

	a, err := s.b.Analyze(ctx, memories)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze profile: %w", err)
	}

	return &service.ProfileAnalysis{
		IntroversionExtraversion: a.IntroversionExtraversion,
		AnalyticalCreative:       a.AnalyticalCreative,
		CooperativeCompetitive:   a.CooperativeCompetitive,
		SpontaneousMethodical:    a.SpontaneousMethodical,
		ReservedExpressive:       a.ReservedExpressive,
		Tags:                     a.Tags,
		Bio:                      a.Bio,
	}, nil
}

func (s srv) CreatePost(ctx context.Context, authorID, content string, parentPostID *string, aiGenerated bool) (*entities.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidContent
	}

	p := entities.Post{
		ID:           uuid.NewString(),
		AuthorID:     authorID,
		Content:      content,
		ParentPostID: parentPostID,
		AIGenerated:  aiGenerated,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.s.CreatePost(ctx, &p); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &p, nil
}

func (s srv) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return p, nil
}

func (s srv) ListPosts(ctx context.Context, p *service.ListPostsParams) ([]*entities.Post, error) {
	params := storage.ListPostsParams{
		Author: p.Author,
		Limit:  p.Limit,
	}
	if p.Before != nil {
		t := time.Unix(*p.Before, 0)
		params.Before = &t
	}

	pp, err := s.s.ListPosts(ctx, &params)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return pp, nil
}

func (s srv) DeletePost(ctx context.Context, id, authorID string) error {
	if err := s.s.DeletePost(ctx, id, authorID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

func (s srv) Like(ctx context.Context, postID, userID string) error {
	if err := s.s.SetLike(ctx, postID, userID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set like: %w", err)
	}

	return nil
}

func (s srv) Unlike(ctx context.Context, postID, userID string) error {
	if err := s.s.DeleteLike(ctx, postID, userID); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	return nil
}

func (s srv) Follow(ctx context.Context, follower, followee string) error {
	if follower == followee {
		return ErrSelfFollow
	}

	if err := s.s.Follow(ctx, follower, followee); err != nil {
		return fmt.Errorf("failed to follow: %w", err)
	}

	return nil
}

func (s srv) Unfollow(ctx context.Context, follower, followee string) error {
	if err := s.s.Unfollow(ctx, follower, followee); err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}

	return nil
}
