package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"whatsup/cmd/fx/authfx"
	"whatsup/cmd/fx/boardfx"
	"whatsup/cmd/fx/familyfx"
	"whatsup/cmd/fx/greetingfx"
	"whatsup/cmd/fx/mailfx"
	"whatsup/cmd/fx/memberfx"
	"whatsup/cmd/fx/paymentfx"
	"whatsup/cmd/fx/storefx"
	"whatsup/internal/api/controllers"
	"whatsup/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		storefx.Module,
		mailfx.Module,
		authfx.Module,
		boardfx.Module,
		memberfx.Module,
		familyfx.Module,
		greetingfx.Module,
		paymentfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	boardController *controllers.BoardController,
	memberController *controllers.MemberController,
	familyController *controllers.FamilyController,
	greetingController *controllers.GreetingController,
	paymentController *controllers.PaymentController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, authController, boardController, memberController,
		familyController, greetingController, paymentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	boardController *controllers.BoardController,
	memberController *controllers.MemberController,
	familyController *controllers.FamilyController,
	greetingController *controllers.GreetingController,
	paymentController *controllers.PaymentController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/join", authController.Join)
	authGroup.POST("/login", authController.AdminLogin)
	authGroup.POST("/create", authController.CreateFamily)

	// Everything below needs a session: guest or admin.
	session := r.Group("/")
	session.Use(middleware.SessionMiddleware())

	session.POST("/auth/logout", authController.Logout)

	session.GET("/board", boardController.GetBoard)
	session.POST("/board/collapse", boardController.ToggleCollapse)

	session.POST("/members/:id/reactions", memberController.React)
	session.POST("/members/:id/comments", memberController.Comment)

	session.GET("/families/share", familyController.Share)

	paymentsGroup := session.Group("/payments")
	paymentsGroup.POST("/checkout", paymentController.CreateCheckout)
	paymentsGroup.POST("/confirm", paymentController.ConfirmCheckout)

	// Admin-only surface: editing, settings, invites, AI generation.
	admin := session.Group("/")
	admin.Use(middleware.AdminMiddleware())

	admin.GET("/members/can-add", memberController.CanAdd)
	admin.POST("/members", memberController.SaveMember)

	admin.PUT("/families/households", familyController.UpdateHouseholds)
	admin.POST("/families/invite", familyController.Invite)

	admin.POST("/greetings/generate", greetingController.GenerateGreeting)
	admin.POST("/greetings/portrait", greetingController.GeneratePortrait)
}
