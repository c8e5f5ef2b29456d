package utils

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGreetingClient generates greetings and portraits using Google's
// Gemini models.
type GeminiGreetingClient struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

func NewGeminiGreetingClient(apiKey, textModel, imageModel string) (*GeminiGreetingClient, error) {
	if textModel == "" {
		textModel = "gemini-2.5-flash"
	}
	if imageModel == "" {
		imageModel = "gemini-2.5-flash-image"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGreetingClient{
		client:     client,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

func (c *GeminiGreetingClient) GenerateGreeting(ctx context.Context, name string, highlights []Highlight, tone string) (string, error) {
	pairs := make([]string, 0, len(highlights))
	for _, h := range highlights {
		pairs = append(pairs, fmt.Sprintf("%s: %s", h.Category, h.Text))
	}

	prompt := fmt.Sprintf(`Write a short (max 2 sentences) holiday greeting card message from %s.
Tone: %s.
Incorporate these life updates if possible: %s.
Make it sound natural and cozy.`, name, tone, strings.Join(pairs, "; "))

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	m := c.client.GenerativeModel(c.textModel)
	m.SetTemperature(0.8)

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content")
	}

	content := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if content == "" {
		return "", fmt.Errorf("empty greeting")
	}
	return content, nil
}

func (c *GeminiGreetingClient) GeneratePortrait(ctx context.Context, prompt string) (string, error) {
	fullPrompt := fmt.Sprintf("A cozy, festive holiday portrait of %s. Digital art style, warm lighting, soft bokeh background.", prompt)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	m := c.client.GenerativeModel(c.imageModel)

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(fullPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini image: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
			return fmt.Sprintf("data:%s;base64,%s", blob.MIMEType, base64.StdEncoding.EncodeToString(blob.Data)), nil
		}
	}
	return "", fmt.Errorf("no image data returned")
}
