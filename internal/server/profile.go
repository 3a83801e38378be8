package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi"

	"github.com/braindead-dev/LinkU/internal/middleware"
	"github.com/braindead-dev/LinkU/internal/service"
	impl "github.com/braindead-dev/LinkU/internal/service/impl"
	"github.com/braindead-dev/LinkU/internal/storage"
)

func (s server) getProfileByUsername(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/profiles/{username} Profiles GetProfile
	//
	// Get a public profile by username.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: username
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: profile
	//     schema:
	//       "$ref": "#/definitions/Profile"
	//   '404':
	//     description: profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	username := chi.URLParam(r, "username")
	if username == "" {
		writeError(w, http.StatusBadRequest, "invalid username")
		return
	}

	p, err := s.s.GetProfileByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to get profile: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIProfile(p))
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/profiles/id/{id} Profiles GetProfileByID
	//
	// Get a profile by user id, as referenced by messages and follows.
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
	//     description: profile
	//     schema:
	//       "$ref": "#/definitions/Profile"
	//   '404':
	//     description: profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	p, err := s.s.GetProfile(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to get profile: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIProfile(p))
}

func (s server) getProfiles(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/profiles Profiles GetProfiles
	//
	// Batch-get profiles by user id. Unknown ids are skipped.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: query
	//   required: true
	//   type: array
	//   items:
	//     type: string
	// responses:
	//   '200':
	//     description: profiles
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Profile"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	ids := r.URL.Query()["id"]
	if len(ids) == 0 {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	if len(ids) > maxLimit {
		writeError(w, http.StatusBadRequest, "too many ids")
		return
	}

	pp, err := s.s.GetProfiles(r.Context(), ids)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get profiles: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIProfiles(pp))
}

func (s server) suggestedProfiles(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/profiles/suggested Profiles SuggestedProfiles
	//
	// Return profiles the user does not follow yet.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: profiles
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Profile"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	pp, err := s.s.SuggestedProfiles(r.Context(), middleware.UserID(r.Context()), defaultLimit)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get suggested profiles: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIProfiles(pp))
}

func (s server) updateProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /v1/profile Profiles UpdateProfile
	//
	// Update the authenticated user's settings-form fields.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: updated
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if strings.TrimSpace(req.Username) == "" {
		writeError(w, http.StatusBadRequest, "username is required")
		return
	}

	if err := s.s.UpdateProfile(r.Context(), &service.UpdateProfileParams{
		ID:           middleware.UserID(r.Context()),
		Username:     req.Username,
		FullName:     req.FullName,
		AvatarURL:    req.AvatarURL,
		Bio:          req.Bio,
		CoreMemories: req.CoreMemories,
	}); err != nil {
		writeInternalErrorf(r.Context(), w, "failed to update profile: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) analyzeProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/profile/analysis Profiles AnalyzeProfile
	//
	// Run the personality analyzer over the user's core memories.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: analysis
	//     schema:
	//       "$ref": "#/definitions/ProfileAnalysis"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	a, err := s.s.AnalyzeProfile(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, impl.ErrAINotConfigured) {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to analyze profile: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIAnalysis(a))
}

func (s server) follow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /v1/profiles/{userID}/follow Profiles Follow
	//
	// Follow userID.
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
	//     description: followed
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	followee := chi.URLParam(r, "userID")
	if followee == "" {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := s.s.Follow(r.Context(), middleware.UserID(r.Context()), followee); err != nil {
		switch {
		case errors.Is(err, impl.ErrSelfFollow):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, storage.ErrNotFound):
			writeError(w, http.StatusNotFound, "profile not found")
		default:
			writeInternalErrorf(r.Context(), w, "failed to follow: %s", err.Error())
		}
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) unfollow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /v1/profiles/{userID}/follow Profiles Unfollow
	//
	// Unfollow userID.
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
	//     description: unfollowed

	followee := chi.URLParam(r, "userID")
	if followee == "" {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := s.s.Unfollow(r.Context(), middleware.UserID(r.Context()), followee); err != nil {
		writeInternalErrorf(r.Context(), w, "failed to unfollow: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}
