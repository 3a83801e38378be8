//go:build integration
// +build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/braindead-dev/LinkU/internal/entities"
	"github.com/braindead-dev/LinkU/internal/storage"
)

var (
	db  *sql.DB
	dsn string
	ctx = context.Background()
	s   storage.Storage
)

const (
	alice = "00000000-0000-0000-0000-000000000001"
	bob   = "00000000-0000-0000-0000-000000000002"
	carol = "00000000-0000-0000-0000-000000000003"

	post1 = "10000000-0000-0000-0000-000000000001"
	post2 = "10000000-0000-0000-0000-000000000002"
	post3 = "10000000-0000-0000-0000-000000000003"

	msg1 = "20000000-0000-0000-0000-000000000001"
	msg2 = "20000000-0000-0000-0000-000000000002"
	msg3 = "20000000-0000-0000-0000-000000000003"
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn = fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	for _, q := range []string{
		`DELETE FROM user_message`,
		`DELETE FROM "like"`,
		`DELETE FROM follow`,
		`DELETE FROM post`,
		`DELETE FROM profile`,
	} {
		_, err := db.ExecContext(ctx, q)
		require.NoError(t, err)
	}
}

func createProfile(t *testing.T, id, username string) {
	require.NoError(t, s.SetProfile(ctx, &storage.SetProfileParams{
		ID:       id,
		Username: username,
	}))
}

func TestPg_SetProfile(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.SetProfile(ctx, &storage.SetProfileParams{
		ID:           alice,
		Username:     "alice",
		FullName:     "Alice L",
		AvatarURL:    "https://a/b.png",
		Bio:          "hi",
		CoreMemories: "likes go",
	}))

	p, err := s.GetProfile(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, "Alice L", p.FullName)
	assert.False(t, p.CreatedAt.IsZero())

	// upsert keeps the row
	require.NoError(t, s.SetProfile(ctx, &storage.SetProfileParams{
		ID:       alice,
		Username: "alice",
		FullName: "Alice W",
	}))

	p, err = s.GetProfile(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "Alice W", p.FullName)

	mem, err := s.GetCoreMemories(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "", mem) // overwritten by the second upsert

	p, err = s.GetProfileByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice, p.ID)

	_, err = s.GetProfile(ctx, bob)
	require.True(t, errors.Is(err, storage.ErrNotFound))

	_, err = s.GetProfileByUsername(ctx, "nobody")
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_GetProfiles(t *testing.T) {
	defer cleanup(t)

	createProfile(t, alice, "alice")
	createProfile(t, bob, "bob")

	pp, err := s.GetProfiles(ctx, alice, bob, alice)
	require.NoError(t, err)
	assert.Len(t, pp, 2)

	pp, err = s.GetProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, pp)
}

func TestPg_SuggestedProfiles(t *testing.T) {
	defer cleanup(t)

	createProfile(t, alice, "alice")
	createProfile(t, bob, "bob")
	createProfile(t, carol, "carol")

	require.NoError(t, s.Follow(ctx, alice, bob))

	pp, err := s.SuggestedProfiles(ctx, alice, 10)
	require.NoError(t, err)
	require.Len(t, pp, 1)
	assert.Equal(t, carol, pp[0].ID)
}

func TestPg_Posts(t *testing.T) {
	defer cleanup(t)

	createProfile(t, alice, "alice")
	createProfile(t, bob, "bob")

	now := time.Now().UTC()

	require.NoError(t, s.CreatePost(ctx, &entities.Post{
		ID:        post1,
		AuthorID:  alice,
		Content:   "first",
		CreatedAt: now.Add(-2 * time.Hour),
	}))

	parent := post1
	require.NoError(t, s.CreatePost(ctx, &entities.Post{
		ID:           post2,
		AuthorID:     bob,
		Content:      "reply",
		ParentPostID: &parent,
		AIGenerated:  true,
		CreatedAt:    now.Add(-time.Hour),
	}))

	p, err := s.GetPost(ctx, post2)
	require.NoError(t, err)
	require.NotNil(t, p.ParentPostID)
	assert.Equal(t, post1, *p.ParentPostID)
	assert.True(t, p.AIGenerated)

	pp, err := s.ListPosts(ctx, &storage.ListPostsParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, pp, 2)
	assert.Equal(t, post2, pp[0].ID) // newest first

	author := alice
	pp, err = s.ListPosts(ctx, &storage.ListPostsParams{Author: &author, Limit: 10})
	require.NoError(t, err)
	require.Len(t, pp, 1)
	assert.Equal(t, post1, pp[0].ID)

	before := now.Add(-90 * time.Minute)
	pp, err = s.ListPosts(ctx, &storage.ListPostsParams{Before: &before, Limit: 10})
	require.NoError(t, err)
	require.Len(t, pp, 1)
	assert.Equal(t, post1, pp[0].ID)

	// unknown author fk
	require.True(t, errors.Is(s.CreatePost(ctx, &entities.Post{
		ID:        post3,
		AuthorID:  carol,
		Content:   "x",
		CreatedAt: now,
	}), storage.ErrNotFound))

	// only the author deletes
	require.True(t, errors.Is(s.DeletePost(ctx, post1, bob), storage.ErrNotFound))
	require.NoError(t, s.DeletePost(ctx, post2, bob))

	_, err = s.GetPost(ctx, post2)
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_Likes(t *testing.T) {
	defer cleanup(t)

	createProfile(t, alice, "alice")
	createProfile(t, bob, "bob")

	require.NoError(t, s.CreatePost(ctx, &entities.Post{
		ID:        post1,
		AuthorID:  alice,
		Content:   "first",
		CreatedAt: time.Now().UTC(),
	}))

	timestamp := time.Now().UTC()

	require.NoError(t, s.SetLike(ctx, post1, bob, timestamp))
	require.NoError(t, s.SetLike(ctx, post1, bob, timestamp)) // idempotent
	require.NoError(t, s.SetLike(ctx, post1, alice, timestamp))

	require.True(t, errors.Is(s.SetLike(ctx, post2, bob, timestamp), storage.ErrNotFound))

	nn, err := s.ListLikesReceived(ctx, alice, 10)
	require.NoError(t, err)
	require.Len(t, nn, 1) // own like is not a notification
	assert.Equal(t, bob, nn[0].Liker.ID)
	assert.Equal(t, post1, nn[0].PostID)
	assert.Equal(t, "first", nn[0].PostContent)

	require.NoError(t, s.DeleteLike(ctx, post1, bob))

	nn, err = s.ListLikesReceived(ctx, alice, 10)
	require.NoError(t, err)
	assert.Empty(t, nn)
}

func TestPg_Follows(t *testing.T) {
	defer cleanup(t)

	createProfile(t, alice, "alice")
	createProfile(t, bob, "bob")

	require.NoError(t, s.Follow(ctx, bob, alice))
	require.NoError(t, s.Follow(ctx, bob, alice)) // idempotent

	require.True(t, errors.Is(s.Follow(ctx, carol, alice), storage.ErrNotFound))

	nn, err := s.ListFollowsReceived(ctx, alice, 10)
	require.NoError(t, err)
	require.Len(t, nn, 1)
	assert.Equal(t, bob, nn[0].Follower.ID)

	require.NoError(t, s.Unfollow(ctx, bob, alice))

	nn, err = s.ListFollowsReceived(ctx, alice, 10)
	require.NoError(t, err)
	assert.Empty(t, nn)
}

func TestPg_Replies(t *testing.T) {
	defer cleanup(t)

	createProfile(t, alice, "alice")
	createProfile(t, bob, "bob")

	now := time.Now().UTC()

	require.NoError(t, s.CreatePost(ctx, &entities.Post{
		ID:        post1,
		AuthorID:  alice,
		Content:   "parent",
		CreatedAt: now.Add(-time.Hour),
	}))

	parent := post1
	require.NoError(t, s.CreatePost(ctx, &entities.Post{
		ID:           post2,
		AuthorID:     bob,
		Content:      "reply",
		ParentPostID: &parent,
		CreatedAt:    now,
	}))

	// self-reply is not a notification
	require.NoError(t, s.CreatePost(ctx, &entities.Post{
		ID:           post3,
		AuthorID:     alice,
		Content:      "self reply",
		ParentPostID: &parent,
		CreatedAt:    now,
	}))

	nn, err := s.ListRepliesReceived(ctx, alice, 10)
	require.NoError(t, err)
	require.Len(t, nn, 1)
	assert.Equal(t, bob, nn[0].Replier.ID)
	assert.Equal(t, "reply", nn[0].Content)
	assert.Equal(t, "parent", nn[0].ParentContent)
}

func TestPg_Messages(t *testing.T) {
	defer cleanup(t)

	createProfile(t, alice, "alice")
	createProfile(t, bob, "bob")
	createProfile(t, carol, "carol")

	now := time.Now().UTC().Truncate(time.Microsecond)

	for i, m := range []*entities.Message{
		{ID: msg1, SenderID: bob, RecipientID: alice, Content: "hi", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: msg2, SenderID: alice, RecipientID: bob, Content: "hey", CreatedAt: now.Add(-time.Hour)},
		{ID: msg3, SenderID: carol, RecipientID: alice, Content: "yo", AIGenerated: true, CreatedAt: now},
	} {
		require.NoError(t, s.CreateMessage(ctx, m), i)
	}

	require.True(t, errors.Is(s.CreateMessage(ctx, &entities.Message{
		ID:          "20000000-0000-0000-0000-000000000004",
		SenderID:    alice,
		RecipientID: "30000000-0000-0000-0000-000000000001",
		Content:     "x",
		CreatedAt:   now,
	}), storage.ErrNotFound))

	mm, err := s.ListMessages(ctx, alice)
	require.NoError(t, err)
	require.Len(t, mm, 3)
	assert.Equal(t, msg3, mm[0].ID) // newest first
	assert.Equal(t, "carol", mm[0].Sender.Username)
	assert.Equal(t, "alice", mm[0].Recipient.Username)

	thread, err := s.ListThread(ctx, alice, bob)
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, msg1, thread[0].ID) // oldest first

	unread, err := s.ListUnreadMessages(ctx, alice, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, unread, 2)

	require.NoError(t, s.MarkRead(ctx, alice, bob))

	unread, err = s.ListUnreadMessages(ctx, alice, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, unread, 1) // carol's message stays unread
	assert.Equal(t, msg3, unread[0].ID)

	aimm, err := s.ListAIMessages(ctx, carol, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, aimm, 1)
	assert.Equal(t, msg3, aimm[0].ID)
}

func TestPg_ListAIPosts(t *testing.T) {
	defer cleanup(t)

	createProfile(t, alice, "alice")

	now := time.Now().UTC()

	require.NoError(t, s.CreatePost(ctx, &entities.Post{
		ID: post1, AuthorID: alice, Content: "human", CreatedAt: now,
	}))
	require.NoError(t, s.CreatePost(ctx, &entities.Post{
		ID: post2, AuthorID: alice, Content: "bot", AIGenerated: true, CreatedAt: now,
	}))

	pp, err := s.ListAIPosts(ctx, alice, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, pp, 1)
	assert.Equal(t, post2, pp[0].ID)
}

func TestPg_InTx(t *testing.T) {
	defer cleanup(t)

	createProfile(t, alice, "alice")
	createProfile(t, bob, "bob")

	// rollback on error
	err := s.InTx(ctx, func(tx storage.Storage) error {
		require.NoError(t, tx.CreateMessage(ctx, &entities.Message{
			ID: msg1, SenderID: bob, RecipientID: alice, Content: "hi", CreatedAt: time.Now().UTC(),
		}))
		return errors.New("boom")
	})
	require.Error(t, err)

	mm, err := s.ListMessages(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, mm)

	// nested begin is rejected
	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		assert.True(t, errors.Is(tx.InTx(ctx, func(storage.Storage) error { return nil }), errBeginCalledWithinTx))
		return nil
	}))
}

func TestPg_MessageInsertNotifies(t *testing.T) {
	defer cleanup(t)

	createProfile(t, alice, "alice")
	createProfile(t, bob, "bob")

	l := pq.NewListener(dsn, time.Second, time.Minute, nil)
	defer l.Close()
	require.NoError(t, l.Listen("user_message_inserted"))

	require.NoError(t, s.CreateMessage(ctx, &entities.Message{
		ID: msg1, SenderID: bob, RecipientID: alice, Content: "hi", CreatedAt: time.Now().UTC(),
	}))

	select {
	case n := <-l.Notify:
		require.NotNil(t, n)
		assert.Contains(t, n.Extra, msg1)
		assert.Contains(t, n.Extra, `"recipient_id"`)
	case <-time.After(5 * time.Second):
		t.Fatal("no notification received")
	}
}
