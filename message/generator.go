package message

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Target identifies who the drafted message is addressed to. It is the
// subset of a search result the prompt actually uses.
type Target struct {
	ProfileID      string `json:"profile_id"`
	CurrentCompany string `json:"current_company"`
}

// Generator drafts LinkedIn outreach messages with a pinned chat model.
type Generator struct {
	llm   *openai.LLM
	model string
}

func NewGenerator(apiKey, model string) (*Generator, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	return &Generator{llm: llm, model: model}, nil
}

// Draft writes a short connection message to the target. The reason is the
// user's stated motivation; fileContext is optional extra material extracted
// from an uploaded document.
func (g *Generator) Draft(ctx context.Context, target Target, reason, fileContext string) (string, error) {
	who := target.ProfileID
	if who == "" {
		who = "someone"
	}
	company := target.CurrentCompany
	if company == "" {
		company = "their current company"
	}

	prompt := fmt.Sprintf(
		"Write a friendly, concise LinkedIn message to %s (%s).\nYou want to connect because %s.",
		who, company, reason)
	if fileContext != "" {
		prompt += fmt.Sprintf("\nAdditional context from uploaded file:\n%s", fileContext)
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate message: %w", err)
	}
	return out, nil
}
