// Package ai contains the interface to the language-model backend and the
// input shaping applied before anything leaves the process.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

//go:generate mockgen -destination=./mock/ai.go -package=mock -source=ai.go

const (
	// maxDigestItems bounds how many messages and posts are submitted.
	maxDigestItems = 10
	// maxItemChars bounds each submitted content snippet.
	maxItemChars = 150
	// maxPayloadChars is the hard ceiling of the assembled payload.
	maxPayloadChars = 6000

	truncationMarker = "... [truncated]"
)

// Brain is the language-model boundary. Both calls are best-effort
// enrichment: callers fall back to zero values on error.
type Brain interface {
	Narrate(ctx context.Context, in NarrativeInput) (Narrative, error)
	Analyze(ctx context.Context, coreMemories string) (Analysis, error)
}

// MessageDigest is an AI-authored outgoing message prepared for submission.
type MessageDigest struct {
	Content       string
	RecipientName string
	CreatedAt     time.Time
}

// PostDigest is an AI-authored post prepared for submission.
type PostDigest struct {
	Content   string
	CreatedAt time.Time
}

// NarrativeInput ...
type NarrativeInput struct {
	Messages []MessageDigest
	Posts    []PostDigest
}

// Empty reports whether there is nothing to summarize.
func (in NarrativeInput) Empty() bool {
	return len(in.Messages) == 0 && len(in.Posts) == 0
}

// Narrative is the summarizer verdict over the last day of AI activity.
type Narrative struct {
	HighlightedPerson string `json:"highlighted_person"`
	BriefSummary      string `json:"brief_summary"`
	OverallSummary    string `json:"overall_summary"`
}

// EmptyNarrative is returned without a model call when no qualifying
// content exists in the window.
func EmptyNarrative() Narrative {
	return Narrative{OverallSummary: "No AI interactions found today."}
}

// Analysis ...
type Analysis struct {
	IntroversionExtraversion int      `json:"introversion_extraversion"`
	AnalyticalCreative       int      `json:"analytical_creative"`
	CooperativeCompetitive   int      `json:"cooperative_competitive"`
	SpontaneousMethodical    int      `json:"spontaneous_methodical"`
	ReservedExpressive       int      `json:"reserved_expressive"`
	Tags                     []string `json:"tags"`
	Bio                      string   `json:"bio"`
}

// truncate cuts s to max characters, never splitting a rune.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	return string([]rune(s)[:max])
}

// buildPayload assembles the textual payload submitted to the model. Items
// beyond maxDigestItems are dropped, each snippet is cut to maxItemChars, and
// the whole payload is capped at maxPayloadChars with an explicit marker.
func buildPayload(in NarrativeInput) string {
	var b strings.Builder
	b.WriteString("AI-generated content from the past 24 hours:\n\n")

	if len(in.Messages) > 0 {
		b.WriteString("MESSAGES:\n")
		for i, m := range in.Messages {
			if i == maxDigestItems {
				break
			}
			fmt.Fprintf(&b, "%d. To %s: %q\n", i+1, m.RecipientName, truncate(m.Content, maxItemChars))
		}
		b.WriteString("\n")
	}

	if len(in.Posts) > 0 {
		b.WriteString("POSTS:\n")
		for i, p := range in.Posts {
			if i == maxDigestItems {
				break
			}
			fmt.Fprintf(&b, "%d. %q\n", i+1, truncate(p.Content, maxItemChars))
		}
	}

	out := b.String()
	if utf8.RuneCountInString(out) > maxPayloadChars {
		out = string([]rune(out)[:maxPayloadChars-len(truncationMarker)]) + truncationMarker
	}

	return out
}

// cleanJSON strips markdown fences the model occasionally wraps around its
// output.
func cleanJSON(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")

	return strings.TrimSpace(input)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}

	return v
}
