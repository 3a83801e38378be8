package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braindead-dev/LinkU/internal/ai"
	"github.com/braindead-dev/LinkU/internal/middleware/memory"
	"github.com/braindead-dev/LinkU/internal/realtime"
	"github.com/braindead-dev/LinkU/internal/service/mock"
)

// aiStub is a canned Brain for handler tests.
type aiStub struct {
	narrative ai.Narrative
	analysis  ai.Analysis
	err       error
}

func (s aiStub) Narrate(context.Context, ai.NarrativeInput) (ai.Narrative, error) {
	return s.narrative, s.err
}

func (s aiStub) Analyze(context.Context, string) (ai.Analysis, error) {
	return s.analysis, s.err
}

func newAIRouter(t *testing.T, b ai.Brain) chi.Router {
	ctrl := gomock.NewController(t)

	r := chi.NewRouter()
	SetupRouter(mock.NewMockService(ctrl), b, realtime.NewBroker(), r, Config{
		Timeout:    time.Second,
		AIRate:     100,
		AIBurst:    100,
		CacheStore: memory.NewStorage(),
	})

	return r
}

func Test_aiActivity(t *testing.T) {
	r := newAIRouter(t, aiStub{
		narrative: ai.Narrative{
			HighlightedPerson: "Alice",
			BriefSummary:      "caught up",
			OverallSummary:    "A good day.",
		},
	})

	w := doRequest(r, http.MethodPost, "/api/ai-activity", `{
		"messages":[{"content":"hey","recipient_name":"Alice","created_at":100}],
		"posts":[{"content":"a post","created_at":100}]
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "highlighted_person":"Alice",
   "brief_summary":"caught up",
   "overall_summary":"A good day."
}
	`, w.Body.String())
}

func Test_aiActivity_modelFailureReturnsDefaults(t *testing.T) {
	r := newAIRouter(t, aiStub{err: context.DeadlineExceeded})

	w := doRequest(r, http.MethodPost, "/api/ai-activity", `{"messages":[],"posts":[]}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "highlighted_person":"",
   "brief_summary":"",
   "overall_summary":"No AI interactions found today."
}
	`, w.Body.String())
}

func Test_analyze(t *testing.T) {
	r := newAIRouter(t, aiStub{
		analysis: ai.Analysis{
			IntroversionExtraversion: 70,
			AnalyticalCreative:       40,
			CooperativeCompetitive:   30,
			SpontaneousMethodical:    80,
			ReservedExpressive:       55,
			Tags:                     []string{"Curious"},
			Bio:                      "A builder.",
		},
	})

	w := doRequest(r, http.MethodPost, "/api/analyze", `{"core_memories":"likes go"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "introversion_extraversion":70,
   "analytical_creative":40,
   "cooperative_competitive":30,
   "spontaneous_methodical":80,
   "reserved_expressive":55,
   "tags":["Curious"],
   "bio":"A builder."
}
	`, w.Body.String())
}

func Test_analyze_modelFailureReturnsNeutral(t *testing.T) {
	r := newAIRouter(t, aiStub{err: context.DeadlineExceeded})

	w := doRequest(r, http.MethodPost, "/api/analyze", `{"core_memories":"likes go"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
   "introversion_extraversion":50,
   "analytical_creative":50,
   "cooperative_competitive":50,
   "spontaneous_methodical":50,
   "reserved_expressive":50,
   "tags":[],
   "bio":""
}
	`, w.Body.String())
}
