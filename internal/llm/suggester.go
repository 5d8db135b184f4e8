// Package llm generates CV summary suggestions with Google Gemini.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/cv-portal/internal/types"
)

// DefaultModel is the Gemini model used for summary suggestions.
const DefaultModel = "gemini-2.0-flash"

// Suggester produces profile summary suggestions from CV content.
type Suggester struct {
	client *genai.Client
	model  string
}

// NewSuggester creates a suggester backed by the Gemini API.
func NewSuggester(ctx context.Context, apiKey string) (*Suggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Suggester{
		client: client,
		model:  DefaultModel,
	}, nil
}

// SuggestSummary generates a short professional summary for a CV based on
// its skills, projects and languages.
func (s *Suggester) SuggestSummary(ctx context.Context, cv *types.CV) (string, error) {
	if cv == nil {
		return "", fmt.Errorf("cv is required")
	}

	model := s.client.GenerativeModel(s.model)
	model.SetTemperature(0.3) // Some variety, but keep suggestions grounded

	resp, err := model.GenerateContent(ctx, genai.Text(buildSummaryPrompt(cv)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Close releases resources held by the underlying client.
func (s *Suggester) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// buildSummaryPrompt renders CV content into a plain-text prompt.
func buildSummaryPrompt(cv *types.CV) string {
	var b strings.Builder
	b.WriteString("Write a professional summary for an employee CV. ")
	b.WriteString("Use 2-3 sentences, third person, no name, no markdown. ")
	b.WriteString("Base it strictly on the facts below.\n\n")

	if cv.Profile.Position != "" {
		fmt.Fprintf(&b, "Position: %s\n", cv.Profile.Position)
	}
	if cv.Education != "" {
		fmt.Fprintf(&b, "Education: %s\n", cv.Education)
	}

	if len(cv.Skills) > 0 {
		b.WriteString("Skills:\n")
		for _, skill := range cv.Skills {
			fmt.Fprintf(&b, "- %s (%s)\n", skill.Name, skill.Mastery)
		}
	}
	if len(cv.Languages) > 0 {
		b.WriteString("Languages:\n")
		for _, language := range cv.Languages {
			fmt.Fprintf(&b, "- %s (%s)\n", language.Name, language.Proficiency)
		}
	}
	if len(cv.Projects) > 0 {
		b.WriteString("Projects:\n")
		for _, project := range cv.Projects {
			fmt.Fprintf(&b, "- %s", project.Name)
			if project.Domain != "" {
				fmt.Fprintf(&b, " (%s)", project.Domain)
			}
			if project.Description != "" {
				fmt.Fprintf(&b, ": %s", project.Description)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// extractText extracts text from a Gemini API response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
