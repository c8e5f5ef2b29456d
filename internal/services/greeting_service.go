package services

import (
	"context"
	"log"

	"whatsup/internal/models/request_models"
	"whatsup/pkg/utils"
)

// FallbackGreeting masks any collaborator failure; the caller never sees
// an error from greeting generation.
const FallbackGreeting = "Wishing you joy and peace this holiday season!"

var greetingTones = map[string]bool{"funny": true, "sincere": true, "poetic": true}

type GreetingServiceInterface interface {
	GenerateGreeting(ctx context.Context, request request_models.GreetingRequest) string
	GeneratePortrait(ctx context.Context, prompt string) string
}

type GreetingService struct {
	greetings utils.GreetingClientInterface
	portraits utils.PortraitClientInterface
}

func NewGreetingService(greetings utils.GreetingClientInterface, portraits utils.PortraitClientInterface) GreetingServiceInterface {
	return &GreetingService{greetings: greetings, portraits: portraits}
}

// GenerateGreeting asks the collaborator for a greeting and degrades to the
// fixed fallback on any failure. Unknown tones become "sincere".
func (g *GreetingService) GenerateGreeting(ctx context.Context, request request_models.GreetingRequest) string {
	tone := request.Tone
	if !greetingTones[tone] {
		tone = "sincere"
	}

	highlights := make([]utils.Highlight, 0, len(request.Highlights))
	for _, h := range request.Highlights {
		highlights = append(highlights, utils.Highlight{Category: h.Category, Text: h.Text})
	}

	greeting, err := g.greetings.GenerateGreeting(ctx, request.Name, highlights, tone)
	if err != nil {
		log.Printf("greeting generation failed: %v", err)
		return FallbackGreeting
	}
	return greeting
}

// GeneratePortrait returns an image reference, falling back to a seeded
// placeholder portrait when generation fails.
func (g *GreetingService) GeneratePortrait(ctx context.Context, prompt string) string {
	url, err := g.portraits.GeneratePortrait(ctx, prompt)
	if err != nil {
		log.Printf("portrait generation failed: %v", err)
		return utils.RandomPortraitURL()
	}
	return url
}
