package mailfx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"whatsup/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.MailServiceInterface {
	port, _ := strconv.Atoi(getEnvWithDefault("SMTP_PORT", "587"))

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getEnvWithDefault("SMTP_FROM", "no-reply@whatsup.family"),
		FromName: getEnvWithDefault("SMTP_FROM_NAME", "What's Up With"),
		UseSSL:   os.Getenv("SMTP_USE_SSL") == "true",
		AppName:  "What's Up With",
	})
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
