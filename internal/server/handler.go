package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/braindead-dev/LinkU/internal/middleware"
	"github.com/braindead-dev/LinkU/internal/service"
	impl "github.com/braindead-dev/LinkU/internal/service/impl"
	"github.com/braindead-dev/LinkU/internal/storage"
)

func (s server) listActivity(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/activity Activity ListActivity
	//
	// Return the merged activity feed, newest first.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: tab
	//   description: filters the feed
	//   in: query
	//   required: false
	//   default: all
	//   type: string
	//   enum: [all, bot, inbox]
	// responses:
	//   '200':
	//     description: activity items
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/ActivityItem"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	tab := service.FeedTab(r.URL.Query().Get("tab"))
	switch tab {
	case "", service.AllTab, service.BotTab, service.InboxTab:
	default:
		writeError(w, http.StatusBadRequest, "invalid tab")
		return
	}

	items := s.s.ListActivity(r.Context(), middleware.UserID(r.Context()))

	writeOK(w, http.StatusOK, toAPIActivity(service.FilterFeed(items, tab)))
}

func (s server) listConversations(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/conversations Messaging ListConversations
	//
	// Return one conversation per counterpart, newest first.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: conversations
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Conversation"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	cc, err := s.s.ListConversations(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list conversations: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIConversations(cc))
}

func (s server) getUnreadCount(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/conversations/unread-count Messaging GetUnreadCount
	//
	// Return the unread-conversation badge count. Never errors.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: count
	//     schema:
	//       "$ref": "#/definitions/UnreadCountResponse"

	writeOK(w, http.StatusOK, UnreadCountResponse{
		Count: s.s.UnreadConversations(r.Context(), middleware.UserID(r.Context())),
	})
}

func (s server) openConversation(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/conversations/{userID} Messaging OpenConversation
	//
	// Return the thread with userID ascending and mark its inbound messages
	// as read.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: userID
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: messages
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Message"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	otherID := chi.URLParam(r, "userID")
	if otherID == "" {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	mm, err := s.s.OpenConversation(r.Context(), middleware.UserID(r.Context()), otherID)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to open conversation: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIMessages(mm))
}

func (s server) sendMessage(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /v1/conversations/{userID}/messages Messaging SendMessage
	//
	// Send a direct message to userID.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: userID
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '201':
	//     description: created message
	//     schema:
	//       "$ref": "#/definitions/Message"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: recipient not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	recipientID := chi.URLParam(r, "userID")
	if recipientID == "" {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	m, err := s.s.SendMessage(r.Context(), middleware.UserID(r.Context()), recipientID, req.Content, req.AIGenerated)
	if err != nil {
		switch {
		case errors.Is(err, impl.ErrInvalidContent), errors.Is(err, impl.ErrSelfMessage):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, storage.ErrNotFound):
			writeError(w, http.StatusNotFound, "recipient not found")
		default:
			writeInternalErrorf(r.Context(), w, "failed to send message: %s", err.Error())
		}
		return
	}

	writeOK(w, http.StatusCreated, toAPIMessage(m))
}
