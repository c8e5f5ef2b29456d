package greetingfx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"whatsup/internal/api/controllers"
	"whatsup/internal/services"
	"whatsup/pkg/utils"
)

var Module = fx.Provide(
	ProvideGreetingClient,
	ProvidePortraitClient,
	ProvideGreetingService,
	ProvideGreetingController)

// ProvideGreetingClient picks the greeting provider from environment
// variables. A missing key does not abort startup: generation degrades to
// the fixed fallback instead.
func ProvideGreetingClient() utils.GreetingClientInterface {
	provider := getEnvWithDefault("GREETING_PROVIDER", "gemini")

	switch strings.ToLower(provider) {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			log.Println("OPENAI_API_KEY not set, greetings will use the fallback")
			return utils.UnavailableClient{}
		}
		return utils.NewOpenAIGreetingClient(apiKey, os.Getenv("OPENAI_MODEL"))
	default:
		return geminiClientOrUnavailable()
	}
}

// ProvidePortraitClient always uses Gemini; there is no OpenAI image path.
func ProvidePortraitClient() utils.PortraitClientInterface {
	return geminiClientOrUnavailable()
}

func ProvideGreetingService(
	greetings utils.GreetingClientInterface,
	portraits utils.PortraitClientInterface,
) services.GreetingServiceInterface {
	return services.NewGreetingService(greetings, portraits)
}

func ProvideGreetingController(greetingService services.GreetingServiceInterface) *controllers.GreetingController {
	return controllers.NewGreetingController(greetingService)
}

func geminiClientOrUnavailable() interface {
	utils.GreetingClientInterface
	utils.PortraitClientInterface
} {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set, generation will use fallbacks")
		return utils.UnavailableClient{}
	}

	client, err := utils.NewGeminiGreetingClient(apiKey, os.Getenv("GEMINI_MODEL"), os.Getenv("GEMINI_IMAGE_MODEL"))
	if err != nil {
		log.Printf("failed to create Gemini client: %v, using fallbacks", err)
		return utils.UnavailableClient{}
	}
	return client
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
