package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/braindead-dev/LinkU/internal/middleware"
	"github.com/braindead-dev/LinkU/internal/service"
	impl "github.com/braindead-dev/LinkU/internal/service/impl"
	"github.com/braindead-dev/LinkU/internal/storage"
)

var errInvalidRequest = errors.New("invalid request")

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /v1/posts Posts CreatePost
	//
	// Create a post or a reply.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '201':
	//     description: created post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: parent post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	p, err := s.s.CreatePost(r.Context(), middleware.UserID(r.Context()), req.Content, req.ParentPostID, req.AIGenerated)
	if err != nil {
		switch {
		case errors.Is(err, impl.ErrInvalidContent):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, storage.ErrNotFound):
			writeError(w, http.StatusNotFound, "parent post not found")
		default:
			writeInternalErrorf(r.Context(), w, "failed to create post: %s", err.Error())
		}
		return
	}

	writeOK(w, http.StatusCreated, toAPIPost(p))
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/posts/{id} Posts GetPost
	//
	// Get post by id.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := s.s.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to get post: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIPost(p))
}

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/posts Posts ListPosts
	//
	// Return posts, newest first.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: author
	//   description: filters posts by author id
	//   in: query
	//   required: false
	// - name: limit
	//   description: limits count of returned posts
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// - name: before
	//   description: sets not-including upper unix-time bound for list
	//   in: query
	//   required: false
	// responses:
	//   '200':
	//     description: posts
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	params, err := extractListPostsParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pp, err := s.s.ListPosts(r.Context(), params)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list posts: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIPosts(pp))
}

func extractListPostsParams(q url.Values) (*service.ListPostsParams, error) {
	out := service.ListPostsParams{
		Limit: defaultLimit,
	}

	if s := q.Get("limit"); s != "" {
		limit, err := strconv.ParseUint(s, 10, 16)
		if err != nil || limit == 0 || limit > maxLimit {
			return nil, errInvalidRequest
		}
		out.Limit = uint16(limit)
	}

	if s := q.Get("before"); s != "" {
		before, err := strconv.ParseInt(s, 10, 64)
		if err != nil || before <= 0 {
			return nil, errInvalidRequest
		}
		out.Before = &before
	}

	if s := q.Get("author"); s != "" {
		out.Author = &s
	}

	return &out, nil
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /v1/posts/{id} Posts DeletePost
	//
	// Delete own post.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: deleted
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := s.s.DeletePost(r.Context(), id, middleware.UserID(r.Context())); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to delete post: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) like(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /v1/posts/{id}/like Posts Like
	//
	// Like a post. Repeating a like is a no-op.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: liked
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := s.s.Like(r.Context(), id, middleware.UserID(r.Context())); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to like post: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) unlike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /v1/posts/{id}/like Posts Unlike
	//
	// Remove own like from a post.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: unliked

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := s.s.Unlike(r.Context(), id, middleware.UserID(r.Context())); err != nil {
		writeInternalErrorf(r.Context(), w, "failed to unlike post: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}
