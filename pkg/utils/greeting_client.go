package utils

import (
	"context"
	"errors"
)

// Highlight is one (category, text) life-update pair fed to the greeting
// prompt.
type Highlight struct {
	Category string
	Text     string
}

// GreetingClientInterface writes a short holiday greeting for a member.
type GreetingClientInterface interface {
	GenerateGreeting(ctx context.Context, name string, highlights []Highlight, tone string) (string, error)
}

// PortraitClientInterface renders a festive portrait from a free-text
// prompt, returning an image reference (data URI or URL).
type PortraitClientInterface interface {
	GeneratePortrait(ctx context.Context, prompt string) (string, error)
}

// UnavailableClient stands in when no provider could be constructed (e.g.
// missing credential). Every call errors, so callers resolve to their
// fallback values instead of crashing at startup.
type UnavailableClient struct{}

func (UnavailableClient) GenerateGreeting(ctx context.Context, name string, highlights []Highlight, tone string) (string, error) {
	return "", errors.New("greeting provider unavailable")
}

func (UnavailableClient) GeneratePortrait(ctx context.Context, prompt string) (string, error) {
	return "", errors.New("portrait provider unavailable")
}
