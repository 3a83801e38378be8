package impl

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/braindead-dev/LinkU/internal/ai"
	"github.com/braindead-dev/LinkU/internal/entities"
)

const (
	// unreadMessageWindow bounds the message source of the feed.
	unreadMessageWindow = 7 * 24 * time.Hour
	// aiNarrativeWindow bounds the content fed to the summarizer.
	aiNarrativeWindow = 24 * time.Hour

	sourceLimit = 50
)

// ListActivity merges five independent sources into one feed sorted by
// timestamp descending. The sources are fetched concurrently: latency is
// dominated by the slowest of them, not the sum. A failing source is logged
// and contributes nothing; the feed degrades instead of erroring.
func (s srv) ListActivity(ctx context.Context, userID string) []*entities.ActivityItem {
	now := time.Now().UTC()

	var likes, follows, messages, replies, bot []*entities.ActivityItem

	var gr errgroup.Group

	gr.Go(func() error {
		nn, err := s.s.ListLikesReceived(ctx, userID, sourceLimit)
		if err != nil {
			log.WithError(err).WithField("user", userID).Error("failed to fetch likes")
			return nil
		}

		likes = make([]*entities.ActivityItem, len(nn))
		for i, n := range nn {
			liker := n.Liker
			likes[i] = &entities.ActivityItem{
				ID:          fmt.Sprintf("like-%s-%s", n.PostID, n.Liker.ID),
				Type:        entities.LikeActivity,
				User:        &liker,
				PostContent: n.PostContent,
				CreatedAt:   n.CreatedAt,
				Read:        true,
			}
		}
		return nil
	})

	gr.Go(func() error {
		nn, err := s.s.ListFollowsReceived(ctx, userID, sourceLimit)
		if err != nil {
			log.WithError(err).WithField("user", userID).Error("failed to fetch follows")
			return nil
		}

		follows = make([]*entities.ActivityItem, len(nn))
		for i, n := range nn {
			follower := n.Follower
			follows[i] = &entities.ActivityItem{
				ID:        fmt.Sprintf("follow-%s", n.Follower.ID),
				Type:      entities.FollowActivity,
				User:      &follower,
				CreatedAt: n.CreatedAt,
				Read:      true,
			}
		}
		return nil
	})

	gr.Go(func() error {
		mm, err := s.s.ListUnreadMessages(ctx, userID, now.Add(-unreadMessageWindow))
		if err != nil {
			log.WithError(err).WithField("user", userID).Error("failed to fetch unread messages")
			return nil
		}

		messages = make([]*entities.ActivityItem, len(mm))
		for i, m := range mm {
			messages[i] = &entities.ActivityItem{
				ID:        fmt.Sprintf("message-%s", m.ID),
				Type:      entities.MessageActivity,
				User:      m.Sender,
				Content:   m.Content,
				CreatedAt: m.CreatedAt,
				Read:      m.Read,
			}
		}
		return nil
	})

	gr.Go(func() error {
		nn, err := s.s.ListRepliesReceived(ctx, userID, sourceLimit)
		if err != nil {
			log.WithError(err).WithField("user", userID).Error("failed to fetch replies")
			return nil
		}

		replies = make([]*entities.ActivityItem, len(nn))
		for i, n := range nn {
			replier := n.Replier
			replies[i] = &entities.ActivityItem{
				ID:          fmt.Sprintf("reply-%s", n.PostID),
				Type:        entities.ReplyActivity,
				User:        &replier,
				Content:     n.Content,
				PostContent: n.ParentContent,
				CreatedAt:   n.CreatedAt,
				Read:        true,
			}
		}
		return nil
	})

	gr.Go(func() error {
		bot = s.botActivity(ctx, userID, now)
		return nil
	})

	_ = gr.Wait() // sources never return an error

	out := make([]*entities.ActivityItem, 0, len(likes)+len(follows)+len(messages)+len(replies)+len(bot))
	out = append(out, likes...)
	out = append(out, follows...)
	out = append(out, messages...)
	out = append(out, replies...)
	out = append(out, bot...)

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

// botActivity builds at most two synthetic items from the summarizer over the
// user's AI-authored content of the last day. No qualifying content means no
// items; a summarizer failure is logged and also means no items — the feed
// never waits on or fails with the model.
func (s srv) botActivity(ctx context.Context, userID string, now time.Time) []*entities.ActivityItem {
	if s.b == nil {
		return nil
	}

	since := now.Add(-aiNarrativeWindow)

	mm, err := s.s.ListAIMessages(ctx, userID, since)
	if err != nil {
		log.WithError(err).WithField("user", userID).Error("failed to fetch ai messages")
		return nil
	}

	pp, err := s.s.ListAIPosts(ctx, userID, since)
	if err != nil {
		log.WithError(err).WithField("user", userID).Error("failed to fetch ai posts")
		return nil
	}

	in := ai.NarrativeInput{}
	latest := since

	for _, m := range mm {
		name := m.RecipientID
		if m.Recipient != nil {
			name = m.Recipient.Username
			if m.Recipient.FullName != "" {
				name = m.Recipient.FullName
			}
		}

		in.Messages = append(in.Messages, ai.MessageDigest{
			Content:       m.Content,
			RecipientName: name,
			CreatedAt:     m.CreatedAt,
		})
		if m.CreatedAt.After(latest) {
			latest = m.CreatedAt
		}
	}

	for _, p := range pp {
		in.Posts = append(in.Posts, ai.PostDigest{
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
		})
		if p.CreatedAt.After(latest) {
			latest = p.CreatedAt
		}
	}

	if in.Empty() {
		return nil
	}

	n, err := s.b.Narrate(ctx, in)
	if err != nil {
		log.WithError(err).WithField("user", userID).Error("failed to narrate ai activity")
		return nil
	}

	var out []*entities.ActivityItem

	if n.HighlightedPerson != "" {
		out = append(out, &entities.ActivityItem{
			ID:        fmt.Sprintf("bot-conversation-%s", latest.Format("2006-01-02")),
			Type:      entities.BotConversationActivity,
			Content:   fmt.Sprintf("New conversation with %s: %s", n.HighlightedPerson, n.BriefSummary),
			CreatedAt: latest,
			Read:      true,
		})
	}

	if n.OverallSummary != "" {
		out = append(out, &entities.ActivityItem{
			ID:        fmt.Sprintf("bot-summary-%s", latest.Format("2006-01-02")),
			Type:      entities.BotSummaryActivity,
			Content:   n.OverallSummary,
			CreatedAt: latest,
			Read:      true,
		})
	}

	return out
}
