package server

import (
	"encoding/json"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"

	"github.com/braindead-dev/LinkU/internal/ai"
)

// neutralAnalysis is returned when the model call fails: midpoint scores,
// nothing invented.
func neutralAnalysis() ProfileAnalysis {
	return ProfileAnalysis{
		IntroversionExtraversion: 50,
		AnalyticalCreative:       50,
		CooperativeCompetitive:   50,
		SpontaneousMethodical:    50,
		ReservedExpressive:       50,
		Tags:                     []string{},
	}
}

func (s server) aiActivity(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /api/ai-activity AI AIActivity
	//
	// Summarize the submitted AI-authored messages and posts into a
	// narrative.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: narrative
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: AI is not configured
	//     schema:
	//       "$ref": "#/definitions/Error"

	if s.b == nil {
		writeError(w, http.StatusInternalServerError, "AI service is not configured")
		return
	}

	var req AIActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	in := ai.NarrativeInput{}
	for _, m := range req.Messages {
		in.Messages = append(in.Messages, ai.MessageDigest{
			Content:       m.Content,
			RecipientName: m.RecipientName,
			CreatedAt:     fromUnix(m.CreatedAt),
		})
	}
	for _, p := range req.Posts {
		in.Posts = append(in.Posts, ai.PostDigest{
			Content:   p.Content,
			CreatedAt: fromUnix(p.CreatedAt),
		})
	}

	n, err := s.b.Narrate(r.Context(), in)
	if err != nil {
		// best effort: the client renders defaults instead of an error
		logrus.WithError(err).WithField("request_id", chimiddleware.GetReqID(r.Context())).Error("failed to narrate")
		n = ai.EmptyNarrative()
	}

	writeOK(w, http.StatusOK, n)
}

func (s server) analyze(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /api/analyze AI Analyze
	//
	// Build a personality analysis from the submitted core memories.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: analysis
	//     schema:
	//       "$ref": "#/definitions/ProfileAnalysis"
	//   '400':
	//     description: core_memories is missing
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: AI is not configured
	//     schema:
	//       "$ref": "#/definitions/Error"

	if s.b == nil {
		writeError(w, http.StatusInternalServerError, "AI service is not configured")
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if strings.TrimSpace(req.CoreMemories) == "" {
		writeError(w, http.StatusBadRequest, "core_memories is required")
		return
	}

	a, err := s.b.Analyze(r.Context(), req.CoreMemories)
	if err != nil {
		logrus.WithError(err).WithField("request_id", chimiddleware.GetReqID(r.Context())).Error("failed to analyze")
		writeOK(w, http.StatusOK, neutralAnalysis())
		return
	}

	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	writeOK(w, http.StatusOK, ProfileAnalysis{
		IntroversionExtraversion: a.IntroversionExtraversion,
		AnalyticalCreative:       a.AnalyticalCreative,
		CooperativeCompetitive:   a.CooperativeCompetitive,
		SpontaneousMethodical:    a.SpontaneousMethodical,
		ReservedExpressive:       a.ReservedExpressive,
		Tags:                     tags,
		Bio:                      a.Bio,
	})
}
