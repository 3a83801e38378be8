package impl

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braindead-dev/LinkU/internal/ai"
	"github.com/braindead-dev/LinkU/internal/entities"
	"github.com/braindead-dev/LinkU/internal/service"
)

func TestSrv_ListActivity(t *testing.T) {
	srv, s, _ := newTestSrv(t)

	now := time.Now().UTC()

	s.EXPECT().ListLikesReceived(gomock.Any(), "me", gomock.Any()).Return([]*entities.LikeNotice{
		{
			PostID:      "p1",
			PostContent: "my post",
			Liker:       entities.Profile{ID: "alice"},
			CreatedAt:   now.Add(-time.Hour),
		},
	}, nil)
	s.EXPECT().ListFollowsReceived(gomock.Any(), "me", gomock.Any()).Return([]*entities.FollowNotice{
		{
			Follower:  entities.Profile{ID: "bob"},
			CreatedAt: now.Add(-2 * time.Hour),
		},
	}, nil)
	s.EXPECT().ListUnreadMessages(gomock.Any(), "me", gomock.Any()).Return([]*entities.Message{
		msg("m1", "carol", "me", false, now.Add(-30*time.Minute)),
	}, nil)
	s.EXPECT().ListRepliesReceived(gomock.Any(), "me", gomock.Any()).Return([]*entities.ReplyNotice{
		{
			PostID:        "p2",
			Content:       "nice one",
			ParentContent: "my post",
			Replier:       entities.Profile{ID: "dave"},
			CreatedAt:     now.Add(-3 * time.Hour),
		},
	}, nil)
	s.EXPECT().ListAIMessages(gomock.Any(), "me", gomock.Any()).Return(nil, nil)
	s.EXPECT().ListAIPosts(gomock.Any(), "me", gomock.Any()).Return(nil, nil)

	out := srv.ListActivity(context.Background(), "me")
	require.Len(t, out, 4)

	// newest first
	assert.Equal(t, "message-m1", out[0].ID)
	assert.Equal(t, "like-p1-alice", out[1].ID)
	assert.Equal(t, "follow-bob", out[2].ID)
	assert.Equal(t, "reply-p2", out[3].ID)

	for i := 1; i < len(out); i++ {
		assert.False(t, out[i].CreatedAt.After(out[i-1].CreatedAt))
	}

	assert.False(t, out[0].Read)
	assert.True(t, out[1].Read)
}

func TestSrv_ListActivity_sourceFailureDegrades(t *testing.T) {
	srv, s, _ := newTestSrv(t)

	now := time.Now().UTC()

	s.EXPECT().ListLikesReceived(gomock.Any(), "me", gomock.Any()).Return(nil, context.Canceled)
	s.EXPECT().ListFollowsReceived(gomock.Any(), "me", gomock.Any()).Return([]*entities.FollowNotice{
		{
			Follower:  entities.Profile{ID: "bob"},
			CreatedAt: now,
		},
	}, nil)
	s.EXPECT().ListUnreadMessages(gomock.Any(), "me", gomock.Any()).Return(nil, context.Canceled)
	s.EXPECT().ListRepliesReceived(gomock.Any(), "me", gomock.Any()).Return(nil, nil)
	s.EXPECT().ListAIMessages(gomock.Any(), "me", gomock.Any()).Return(nil, context.Canceled)

	out := srv.ListActivity(context.Background(), "me")
	require.Len(t, out, 1)
	assert.Equal(t, "follow-bob", out[0].ID)
}

func TestSrv_ListActivity_botItems(t *testing.T) {
	srv, s, b := newTestSrv(t)

	now := time.Now().UTC()
	latest := now.Add(-time.Hour)

	s.EXPECT().ListLikesReceived(gomock.Any(), "me", gomock.Any()).Return(nil, nil)
	s.EXPECT().ListFollowsReceived(gomock.Any(), "me", gomock.Any()).Return(nil, nil)
	s.EXPECT().ListUnreadMessages(gomock.Any(), "me", gomock.Any()).Return(nil, nil)
	s.EXPECT().ListRepliesReceived(gomock.Any(), "me", gomock.Any()).Return(nil, nil)

	m := msg("m1", "me", "alice", true, latest)
	m.AIGenerated = true
	m.Recipient.FullName = "Alice L"

	s.EXPECT().ListAIMessages(gomock.Any(), "me", gomock.Any()).Return([]*entities.Message{m}, nil)
	s.EXPECT().ListAIPosts(gomock.Any(), "me", gomock.Any()).Return([]*entities.Post{
		{ID: "p1", Content: "a post", CreatedAt: latest.Add(-time.Hour)},
	}, nil)

	b.EXPECT().Narrate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in ai.NarrativeInput) (ai.Narrative, error) {
		require.Len(t, in.Messages, 1)
		require.Len(t, in.Posts, 1)
		assert.Equal(t, "Alice L", in.Messages[0].RecipientName)

		return ai.Narrative{
			HighlightedPerson: "Alice L",
			BriefSummary:      "caught up about the weekend",
			OverallSummary:    "A quiet day with one good chat.",
		}, nil
	})

	out := srv.ListActivity(context.Background(), "me")
	require.Len(t, out, 2)

	assert.Equal(t, entities.BotConversationActivity, out[0].Type)
	assert.Equal(t, "New conversation with Alice L: caught up about the weekend", out[0].Content)
	assert.Equal(t, latest, out[0].CreatedAt)
	assert.Nil(t, out[0].User)

	assert.Equal(t, entities.BotSummaryActivity, out[1].Type)
	assert.Equal(t, "A quiet day with one good chat.", out[1].Content)
}

func TestSrv_ListActivity_noBotContent(t *testing.T) {
	srv, s, _ := newTestSrv(t)

	s.EXPECT().ListLikesReceived(gomock.Any(), "me", gomock.Any()).Return(nil, nil)
	s.EXPECT().ListFollowsReceived(gomock.Any(), "me", gomock.Any()).Return(nil, nil)
	s.EXPECT().ListUnreadMessages(gomock.Any(), "me", gomock.Any()).Return(nil, nil)
	s.EXPECT().ListRepliesReceived(gomock.Any(), "me", gomock.Any()).Return(nil, nil)
	s.EXPECT().ListAIMessages(gomock.Any(), "me", gomock.Any()).Return(nil, nil)
	s.EXPECT().ListAIPosts(gomock.Any(), "me", gomock.Any()).Return(nil, nil)

	// Narrate must not be called with an empty window
	require.Empty(t, srv.ListActivity(context.Background(), "me"))
}

func TestSrv_ListActivity_narrateFailureDegrades(t *testing.T) {
	srv, s, b := newTestSrv(t)

	now := time.Now().UTC()

	s.EXPECT().ListLikesReceived(gomock.Any(), "me", gomock.Any()).Return(nil, nil)
	s.EXPECT().ListFollowsReceived(gomock.Any(), "me", gomock.Any()).Return(nil, nil)
	s.EXPECT().ListUnreadMessages(gomock.Any(), "me", gomock.Any()).Return(nil, nil)
	s.EXPECT().ListRepliesReceived(gomock.Any(), "me", gomock.Any()).Return(nil, nil)
	s.EXPECT().ListAIMessages(gomock.Any(), "me", gomock.Any()).Return(nil, nil)
	s.EXPECT().ListAIPosts(gomock.Any(), "me", gomock.Any()).Return([]*entities.Post{
		{ID: "p1", Content: "a post", CreatedAt: now},
	}, nil)
	b.EXPECT().Narrate(gomock.Any(), gomock.Any()).Return(ai.Narrative{}, context.DeadlineExceeded)

	require.Empty(t, srv.ListActivity(context.Background(), "me"))
}

func TestFilterFeed(t *testing.T) {
	items := []*entities.ActivityItem{
		{ID: "1", Type: entities.LikeActivity},
		{ID: "2", Type: entities.BotSummaryActivity},
		{ID: "3", Type: entities.MessageActivity},
		{ID: "4", Type: entities.BotConversationActivity},
	}

	all := service.FilterFeed(items, service.AllTab)
	require.Len(t, all, 4)

	bot := service.FilterFeed(items, service.BotTab)
	inbox := service.FilterFeed(items, service.InboxTab)

	require.Len(t, bot, 2)
	require.Len(t, inbox, 2)
	assert.Equal(t, "2", bot[0].ID)
	assert.Equal(t, "4", bot[1].ID)
	assert.Equal(t, "1", inbox[0].ID)
	assert.Equal(t, "3", inbox[1].ID)

	// bot and inbox partition all
	assert.Len(t, append(bot, inbox...), len(all))
}
