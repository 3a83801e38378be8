package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const narratePrompt = `Your job is to return the name of someone the user had a standout conversation with from the messages, and a short summary of what they talked about. Also give a short overall summary of all the user interactions provided.
If there are no meaningful interactions, return empty strings for highlighted_person and brief_summary, and a simple summary for overall_summary.
Respond with a single JSON object, no prose, with exactly these string fields: "highlighted_person", "brief_summary", "overall_summary".

%s`

const analyzePrompt = `You are an analysis bot. You will be fed a detailed description of a person. Assign accurate spectrum values based on your insights, 3 topic interest tags, and a short bio (1-2 short sentences max).
Respond with a single JSON object, no prose, with exactly these fields: "introversion_extraversion", "analytical_creative", "cooperative_competitive", "spontaneous_methodical", "reserved_expressive" (numbers 0-100), "tags" (array of strings), "bio" (string).

%s`

// Gemini implements Brain on top of the Gemini API.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGemini ...
func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Gemini{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

var _ Brain = (*Gemini)(nil)

func (g *Gemini) Narrate(ctx context.Context, in NarrativeInput) (Narrative, error) {
	if in.Empty() {
		return EmptyNarrative(), nil
	}

	text, err := g.generate(ctx, fmt.Sprintf(narratePrompt, buildPayload(in)))
	if err != nil {
		return Narrative{}, err
	}

	var out Narrative
	if err := json.Unmarshal([]byte(cleanJSON(text)), &out); err != nil {
		return Narrative{}, fmt.Errorf("failed to parse response: %w", err)
	}

	return out, nil
}

func (g *Gemini) Analyze(ctx context.Context, coreMemories string) (Analysis, error) {
	text, err := g.generate(ctx, fmt.Sprintf(analyzePrompt, coreMemories))
	if err != nil {
		return Analysis{}, err
	}

	var out Analysis
	if err := json.Unmarshal([]byte(cleanJSON(text)), &out); err != nil {
		return Analysis{}, fmt.Errorf("failed to parse response: %w", err)
	}

	out.IntroversionExtraversion = clampScore(out.IntroversionExtraversion)
	out.AnalyticalCreative = clampScore(out.AnalyticalCreative)
	out.CooperativeCompetitive = clampScore(out.CooperativeCompetitive)
	out.SpontaneousMethodical = clampScore(out.SpontaneousMethodical)
	out.ReservedExpressive = clampScore(out.ReservedExpressive)

	return out, nil
}

// generate is the single place an external generative call is made; it always
// carries a bounded timeout independent of the caller's deadline.
func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 ||
		result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
