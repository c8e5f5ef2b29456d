package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"whatsup/internal/models/request_models"
	"whatsup/pkg/utils"
)

type fakeGreetingClient struct {
	greeting string
	portrait string
	err      error
	gotTone  string
}

func (f *fakeGreetingClient) GenerateGreeting(ctx context.Context, name string, highlights []utils.Highlight, tone string) (string, error) {
	f.gotTone = tone
	return f.greeting, f.err
}

func (f *fakeGreetingClient) GeneratePortrait(ctx context.Context, prompt string) (string, error) {
	return f.portrait, f.err
}

func TestGenerateGreetingUsesCollaborator(t *testing.T) {
	client := &fakeGreetingClient{greeting: "Ho ho ho!"}
	svc := NewGreetingService(client, client)

	got := svc.GenerateGreeting(context.Background(), request_models.GreetingRequest{
		Name: "Kevin",
		Tone: "funny",
	})
	assert.Equal(t, "Ho ho ho!", got)
	assert.Equal(t, "funny", client.gotTone)
}

func TestGenerateGreetingFallsBackOnError(t *testing.T) {
	client := &fakeGreetingClient{err: errors.New("boom")}
	svc := NewGreetingService(client, client)

	got := svc.GenerateGreeting(context.Background(), request_models.GreetingRequest{Name: "Kevin"})
	assert.Equal(t, FallbackGreeting, got)
}

func TestGenerateGreetingDefaultsUnknownTone(t *testing.T) {
	client := &fakeGreetingClient{greeting: "ok"}
	svc := NewGreetingService(client, client)

	svc.GenerateGreeting(context.Background(), request_models.GreetingRequest{Name: "Kevin", Tone: "sarcastic"})
	assert.Equal(t, "sincere", client.gotTone)
}

func TestGeneratePortraitFallsBackOnError(t *testing.T) {
	client := &fakeGreetingClient{err: errors.New("boom")}
	svc := NewGreetingService(client, client)

	got := svc.GeneratePortrait(context.Background(), "Kevin, happy person")
	assert.True(t, strings.HasPrefix(got, "https://picsum.photos/seed/"))
}

func TestGeneratePortraitPassesThrough(t *testing.T) {
	client := &fakeGreetingClient{portrait: "data:image/png;base64,abcd"}
	svc := NewGreetingService(client, client)

	got := svc.GeneratePortrait(context.Background(), "Kevin")
	assert.Equal(t, "data:image/png;base64,abcd", got)
}

func TestUnavailableClientAlwaysFallsBack(t *testing.T) {
	svc := NewGreetingService(utils.UnavailableClient{}, utils.UnavailableClient{})

	got := svc.GenerateGreeting(context.Background(), request_models.GreetingRequest{Name: "Kevin"})
	assert.Equal(t, FallbackGreeting, got)
}
