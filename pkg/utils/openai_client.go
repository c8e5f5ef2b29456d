package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGreetingClient is the alternate greeting provider, selected by env.
// Portrait generation stays on Gemini; this client covers greetings only.
type OpenAIGreetingClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIGreetingClient(apiKey, model string) *OpenAIGreetingClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGreetingClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIGreetingClient) GenerateGreeting(ctx context.Context, name string, highlights []Highlight, tone string) (string, error) {
	pairs := make([]string, 0, len(highlights))
	for _, h := range highlights {
		pairs = append(pairs, fmt.Sprintf("%s: %s", h.Category, h.Text))
	}

	prompt := fmt.Sprintf(`Write a short (max 2 sentences) holiday greeting card message from %s.
Tone: %s.
Incorporate these life updates if possible: %s.
Make it sound natural and cozy.`, name, tone, strings.Join(pairs, "; "))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty greeting")
	}
	return content, nil
}
