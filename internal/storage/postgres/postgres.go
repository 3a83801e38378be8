// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/braindead-dev/LinkU/internal/entities"
	"github.com/braindead-dev/LinkU/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx within tx")

const foreignKeyViolation = "23503"

type pg struct {
	ext sqlx.ExtContext
}

type profileDTO struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	FullName     string    `db:"full_name"`
	AvatarURL    string    `db:"avatar_url"`
	Bio          string    `db:"bio"`
	CoreMemories string    `db:"core_memories"`
	CreatedAt    time.Time `db:"created_at"`
}

type postDTO struct {
	ID           string         `db:"id"`
	AuthorID     string         `db:"author_id"`
	Content      string         `db:"content"`
	ParentPostID sql.NullString `db:"parent_post_id"`
	AIGenerated  bool           `db:"ai_generated"`
	CreatedAt    time.Time      `db:"created_at"`
}

type messageDTO struct {
	ID          string    `db:"id"`
	SenderID    string    `db:"sender_id"`
	RecipientID string    `db:"recipient_id"`
	Content     string    `db:"content"`
	Read        bool      `db:"read"`
	AIGenerated bool      `db:"ai_generated"`
	CreatedAt   time.Time `db:"created_at"`

	SenderUsername     sql.NullString `db:"sender_username"`
	SenderFullName     sql.NullString `db:"sender_full_name"`
	SenderAvatarURL    sql.NullString `db:"sender_avatar_url"`
	RecipientUsername  sql.NullString `db:"recipient_username"`
	RecipientFullName  sql.NullString `db:"recipient_full_name"`
	RecipientAvatarURL sql.NullString `db:"recipient_avatar_url"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, username, full_name, avatar_url, bio, '' AS core_memories, created_at
			FROM profile WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toProfile(&p), nil
}

func (s pg) GetProfileByUsername(ctx context.Context, username string) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, username, full_name, avatar_url, bio, '' AS core_memories, created_at
			FROM profile WHERE username = $1
		`, username,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toProfile(&p), nil
}

func (s pg) GetProfiles(ctx context.Context, ids ...string) ([]*entities.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ids = stringsUnique(ids)

	query, args, err := sqlx.In(`
			SELECT id, username, full_name, avatar_url, bio, '' AS core_memories, created_at
			FROM profile WHERE id IN (?)
		`, ids)

	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var pp []*profileDTO

	if err := sqlx.SelectContext(ctx, s.ext, &pp, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Profile, len(pp))
	for i, v := range pp {
		out[i] = toProfile(v)
	}

	return out, nil
}

func (s pg) SetProfile(ctx context.Context, p *storage.SetProfileParams) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO profile(id, username, full_name, avatar_url, bio, core_memories)
			VALUES(:id, :username, :full_name, :avatar_url, :bio, :core_memories)
			ON CONFLICT(id) DO UPDATE SET
			full_name=excluded.full_name, avatar_url=excluded.avatar_url, bio=excluded.bio, core_memories=excluded.core_memories
		`, p,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) SuggestedProfiles(ctx context.Context, forUser string, limit uint16) ([]*entities.Profile, error) {
	var pp []*profileDTO

	if err := sqlx.SelectContext(ctx, s.ext, &pp, `
			SELECT id, username, full_name, avatar_url, bio, '' AS core_memories, created_at
			FROM profile
			WHERE id <> $1
				AND id NOT IN (SELECT followee FROM follow WHERE follower = $1)
			ORDER BY created_at DESC
			LIMIT $2
		`, forUser, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Profile, len(pp))
	for i, v := range pp {
		out[i] = toProfile(v)
	}

	return out, nil
}

func (s pg) GetCoreMemories(ctx context.Context, id string) (string, error) {
	var m string
	if err := sqlx.GetContext(ctx, s.ext, &m, `SELECT core_memories FROM profile WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}

		return "", fmt.Errorf("failed to query: %w", err)
	}

	return m, nil
}

func (s pg) CreatePost(ctx context.Context, p *entities.Post) error {
	post := postDTO{
		ID:          p.ID,
		AuthorID:    p.AuthorID,
		Content:     p.Content,
		AIGenerated: p.AIGenerated,
		CreatedAt:   p.CreatedAt.UTC(),
	}
	if p.ParentPostID != nil {
		post.ParentPostID = sql.NullString{String: *p.ParentPostID, Valid: true}
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post(id, author_id, content, parent_post_id, ai_generated, created_at)
			VALUES(:id, :author_id, :content, :parent_post_id, :ai_generated, :created_at)
		`, post,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, author_id, content, parent_post_id, ai_generated, created_at
			FROM post WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toPost(&p), nil
}

func (s pg) ListPosts(ctx context.Context, params *storage.ListPostsParams) ([]*entities.Post, error) {
	q := `
		SELECT id, author_id, content, parent_post_id, ai_generated, created_at
		FROM post WHERE true
	`
	args := make([]interface{}, 0, 3)

	if params.Author != nil {
		args = append(args, *params.Author)
		q += fmt.Sprintf(" AND author_id = $%d", len(args))
	}

	if params.Before != nil {
		args = append(args, params.Before.UTC())
		q += fmt.Sprintf(" AND created_at < $%d", len(args))
	}

	args = append(args, params.Limit)
	q += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	var pp []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &pp, q, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(pp))
	for i, v := range pp {
		out[i] = toPost(v)
	}

	return out, nil
}

func (s pg) DeletePost(ctx context.Context, id, authorID string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM post WHERE id=$1 AND author_id=$2`, id, authorID)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) SetLike(ctx context.Context, postID, userID string, timestamp time.Time) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO "like"(post_id, user_id, created_at)
				VALUES($1, $2, $3)
			ON CONFLICT(post_id, user_id) DO NOTHING`,
		postID, userID, timestamp.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) DeleteLike(ctx context.Context, postID, userID string) error {
	if _, err := s.ext.ExecContext(ctx,
		`DELETE FROM "like" WHERE post_id=$1 AND user_id=$2`, postID, userID,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListLikesReceived(ctx context.Context, userID string, limit uint16) ([]*entities.LikeNotice, error) {
	var rows []*struct {
		profileDTO
		PostID      string    `db:"post_id"`
		PostContent string    `db:"post_content"`
		LikedAt     time.Time `db:"liked_at"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &rows, `
			SELECT pr.id, pr.username, pr.full_name, pr.avatar_url, pr.bio, '' AS core_memories, pr.created_at,
				p.id AS post_id, p.content AS post_content, l.created_at AS liked_at
			FROM "like" l
			JOIN post p ON p.id = l.post_id
			JOIN profile pr ON pr.id = l.user_id
			WHERE p.author_id = $1 AND l.user_id <> $1
			ORDER BY l.created_at DESC
			LIMIT $2
		`, userID, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.LikeNotice, len(rows))
	for i, v := range rows {
		out[i] = &entities.LikeNotice{
			PostID:      v.PostID,
			PostContent: v.PostContent,
			Liker:       *toProfile(&v.profileDTO),
			CreatedAt:   v.LikedAt,
		}
	}

	return out, nil
}

func (s pg) Follow(ctx context.Context, follower, followee string) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO follow(follower, followee) VALUES($1, $2) ON CONFLICT DO NOTHING
		`, follower, followee,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) Unfollow(ctx context.Context, follower, followee string) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			DELETE FROM follow WHERE follower=$1 AND followee=$2
		`, follower, followee,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListFollowsReceived(ctx context.Context, userID string, limit uint16) ([]*entities.FollowNotice, error) {
	var rows []*struct {
		profileDTO
		FollowedAt time.Time `db:"followed_at"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &rows, `
			SELECT pr.id, pr.username, pr.full_name, pr.avatar_url, pr.bio, '' AS core_memories, pr.created_at,
				f.created_at AS followed_at
			FROM follow f
			JOIN profile pr ON pr.id = f.follower
			WHERE f.followee = $1
			ORDER BY f.created_at DESC
			LIMIT $2
		`, userID, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.FollowNotice, len(rows))
	for i, v := range rows {
		out[i] = &entities.FollowNotice{
			Follower:  *toProfile(&v.profileDTO),
			CreatedAt: v.FollowedAt,
		}
	}

	return out, nil
}

func (s pg) ListRepliesReceived(ctx context.Context, userID string, limit uint16) ([]*entities.ReplyNotice, error) {
	var rows []*struct {
		profileDTO
		ReplyID       string    `db:"reply_id"`
		ReplyContent  string    `db:"reply_content"`
		ParentID      string    `db:"parent_id"`
		ParentContent string    `db:"parent_content"`
		RepliedAt     time.Time `db:"replied_at"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &rows, `
			SELECT pr.id, pr.username, pr.full_name, pr.avatar_url, pr.bio, '' AS core_memories, pr.created_at,
				r.id AS reply_id, r.content AS reply_content,
				p.id AS parent_id, p.content AS parent_content,
				r.created_at AS replied_at
			FROM post r
			JOIN post p ON p.id = r.parent_post_id
			JOIN profile pr ON pr.id = r.author_id
			WHERE p.author_id = $1 AND r.author_id <> $1
			ORDER BY r.created_at DESC
			LIMIT $2
		`, userID, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.ReplyNotice, len(rows))
	for i, v := range rows {
		out[i] = &entities.ReplyNotice{
			PostID:        v.ReplyID,
			Content:       v.ReplyContent,
			ParentPostID:  v.ParentID,
			ParentContent: v.ParentContent,
			Replier:       *toProfile(&v.profileDTO),
			CreatedAt:     v.RepliedAt,
		}
	}

	return out, nil
}

func (s pg) CreateMessage(ctx context.Context, m *entities.Message) error {
	msg := messageDTO{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		Read:        m.Read,
		AIGenerated: m.AIGenerated,
		CreatedAt:   m.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO user_message(id, sender_id, recipient_id, content, read, ai_generated, created_at)
			VALUES(:id, :sender_id, :recipient_id, :content, :read, :ai_generated, :created_at)
		`, msg,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

const messageColumns = `
	m.id, m.sender_id, m.recipient_id, m.content, m.read, m.ai_generated, m.created_at,
	sp.username AS sender_username, sp.full_name AS sender_full_name, sp.avatar_url AS sender_avatar_url,
	rp.username AS recipient_username, rp.full_name AS recipient_full_name, rp.avatar_url AS recipient_avatar_url
`

func (s pg) ListMessages(ctx context.Context, userID string) ([]*entities.Message, error) {
	var mm []*messageDTO

	if err := sqlx.SelectContext(ctx, s.ext, &mm, `
			SELECT `+messageColumns+`
			FROM user_message m
			JOIN profile sp ON sp.id = m.sender_id
			JOIN profile rp ON rp.id = m.recipient_id
			WHERE m.sender_id = $1 OR m.recipient_id = $1
			ORDER BY m.created_at DESC
		`, userID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toMessages(mm), nil
}

func (s pg) ListThread(ctx context.Context, userID, otherID string) ([]*entities.Message, error) {
	var mm []*messageDTO

	if err := sqlx.SelectContext(ctx, s.ext, &mm, `
			SELECT `+messageColumns+`
			FROM user_message m
			JOIN profile sp ON sp.id = m.sender_id
			JOIN profile rp ON rp.id = m.recipient_id
			WHERE (m.sender_id = $1 AND m.recipient_id = $2)
				OR (m.sender_id = $2 AND m.recipient_id = $1)
			ORDER BY m.created_at ASC
		`, userID, otherID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toMessages(mm), nil
}

func (s pg) MarkRead(ctx context.Context, recipientID, senderID string) error {
	if _, err := s.ext.ExecContext(ctx,
		`UPDATE user_message SET read=true WHERE recipient_id=$1 AND sender_id=$2 AND read=false`,
		recipientID, senderID,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListUnreadMessages(ctx context.Context, userID string, since time.Time) ([]*entities.Message, error) {
	var mm []*messageDTO

	if err := sqlx.SelectContext(ctx, s.ext, &mm, `
			SELECT `+messageColumns+`
			FROM user_message m
			JOIN profile sp ON sp.id = m.sender_id
			JOIN profile rp ON rp.id = m.recipient_id
			WHERE m.recipient_id = $1 AND m.read = false AND m.created_at >= $2
			ORDER BY m.created_at DESC
		`, userID, since.UTC(),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toMessages(mm), nil
}

func (s pg) ListAIMessages(ctx context.Context, userID string, since time.Time) ([]*entities.Message, error) {
	var mm []*messageDTO

	if err := sqlx.SelectContext(ctx, s.ext, &mm, `
			SELECT `+messageColumns+`
			FROM user_message m
			JOIN profile sp ON sp.id = m.sender_id
			JOIN profile rp ON rp.id = m.recipient_id
			WHERE m.sender_id = $1 AND m.ai_generated = true AND m.created_at >= $2
			ORDER BY m.created_at DESC
		`, userID, since.UTC(),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toMessages(mm), nil
}

func (s pg) ListAIPosts(ctx context.Context, userID string, since time.Time) ([]*entities.Post, error) {
	var pp []*postDTO

	if err := sqlx.SelectContext(ctx, s.ext, &pp, `
			SELECT id, author_id, content, parent_post_id, ai_generated, created_at
			FROM post
			WHERE author_id = $1 AND ai_generated = true AND created_at >= $2
			ORDER BY created_at DESC
		`, userID, since.UTC(),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(pp))
	for i, v := range pp {
		out[i] = toPost(v)
	}

	return out, nil
}

func toProfile(p *profileDTO) *entities.Profile {
	return &entities.Profile{
		ID:        p.ID,
		Username:  p.Username,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
		CreatedAt: p.CreatedAt,
	}
}

func toPost(p *postDTO) *entities.Post {
	out := entities.Post{
		ID:          p.ID,
		AuthorID:    p.AuthorID,
		Content:     p.Content,
		AIGenerated: p.AIGenerated,
		CreatedAt:   p.CreatedAt,
	}
	if p.ParentPostID.Valid {
		v := p.ParentPostID.String
		out.ParentPostID = &v
	}

	return &out
}

func toMessages(mm []*messageDTO) []*entities.Message {
	out := make([]*entities.Message, len(mm))
	for i, m := range mm {
		out[i] = &entities.Message{
			ID:          m.ID,
			SenderID:    m.SenderID,
			RecipientID: m.RecipientID,
			Content:     m.Content,
			Read:        m.Read,
			AIGenerated: m.AIGenerated,
			CreatedAt:   m.CreatedAt,
			Sender: &entities.Profile{
				ID:        m.SenderID,
				Username:  m.SenderUsername.String,
				FullName:  m.SenderFullName.String,
				AvatarURL: m.SenderAvatarURL.String,
			},
			Recipient: &entities.Profile{
				ID:        m.RecipientID,
				Username:  m.RecipientUsername.String,
				FullName:  m.RecipientFullName.String,
				AvatarURL: m.RecipientAvatarURL.String,
			},
		}
	}

	return out
}

func stringsUnique(s []string) []string {
	m := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))

	for _, v := range s {
		if _, ok := m[v]; !ok {
			m[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}
