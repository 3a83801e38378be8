package ai

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload_TruncatesItems(t *testing.T) {
	long := strings.Repeat("a", 500)

	out := buildPayload(NarrativeInput{
		Messages: []MessageDigest{{Content: long, RecipientName: "karthik"}},
		Posts:    []PostDigest{{Content: long}},
	})

	require.LessOrEqual(t, len(out), maxPayloadChars)
	assert.NotContains(t, out, strings.Repeat("a", maxItemChars+1))
	assert.Contains(t, out, strings.Repeat("a", maxItemChars))
	assert.Contains(t, out, "To karthik")
}

func TestBuildPayload_CapsItemCount(t *testing.T) {
	in := NarrativeInput{}
	for i := 0; i < 25; i++ {
		in.Messages = append(in.Messages, MessageDigest{Content: "hi", RecipientName: "bob"})
		in.Posts = append(in.Posts, PostDigest{Content: "post"})
	}

	out := buildPayload(in)

	assert.Contains(t, out, "10. To bob")
	assert.NotContains(t, out, "11. To bob")
	assert.NotContains(t, out, "11. \"post\"")
}

func TestBuildPayload_Ceiling(t *testing.T) {
	in := NarrativeInput{}
	for i := 0; i < 10; i++ {
		in.Messages = append(in.Messages, MessageDigest{Content: strings.Repeat("m", 150), RecipientName: strings.Repeat("n", 5000)})
	}

	out := buildPayload(in)

	require.Equal(t, maxPayloadChars, len(out))
	assert.True(t, strings.HasSuffix(out, truncationMarker))
}

func TestTruncate_RuneSafe(t *testing.T) {
	assert.Equal(t, "short", truncate("short", maxItemChars))

	cut := truncate(strings.Repeat("héllo", 100), maxItemChars)
	assert.Equal(t, maxItemChars, utf8.RuneCountInString(cut))
	assert.True(t, utf8.ValidString(cut))
}

func TestBuildPayload_CeilingMultibyte(t *testing.T) {
	in := NarrativeInput{}
	for i := 0; i < 10; i++ {
		in.Messages = append(in.Messages, MessageDigest{Content: strings.Repeat("日", 150), RecipientName: strings.Repeat("本", 5000)})
	}

	out := buildPayload(in)

	require.Equal(t, maxPayloadChars, utf8.RuneCountInString(out))
	assert.True(t, utf8.ValidString(out))
	assert.True(t, strings.HasSuffix(out, truncationMarker))
}

func TestNarrativeInput_Empty(t *testing.T) {
	assert.True(t, NarrativeInput{}.Empty())
	assert.False(t, NarrativeInput{Posts: []PostDigest{{}}}.Empty())
}

func TestEmptyNarrative(t *testing.T) {
	n := EmptyNarrative()
	assert.Empty(t, n.HighlightedPerson)
	assert.Empty(t, n.BriefSummary)
	assert.Equal(t, "No AI interactions found today.", n.OverallSummary)
}

func TestCleanJSON(t *testing.T) {
	tt := []struct {
		name string
		in   string
		out  string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced_no_lang", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"padded", "  {\"a\":1}\n", `{"a":1}`},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, cleanJSON(tc.in))
		})
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, clampScore(-5))
	assert.Equal(t, 100, clampScore(250))
	assert.Equal(t, 42, clampScore(42))
}
