package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	api "github.com/rpupo63/portfolio-site-backend/api"
	"github.com/rpupo63/portfolio-site-backend/auth"
	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Info().Msg("Initializing app...")

	config.Load()
	cfg := config.New()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	currentDB := database.New(db)

	// If generating models, run generation and exit
	if config.GetBool(cfg, "GENERATE_MODELS", false) {
		log.Info().Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db, "./generated"); err != nil {
			log.Fatal().Err(err).Msg("Model generation failed")
		}
		return
	}

	if err := currentDB.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Error migrating database")
	}

	verifier, err := auth.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error configuring session verification")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := services.NewEventBus()
	defer bus.Close()

	if resend := services.NewResendClient(cfg); resend != nil {
		mailer := services.NewNotificationMailer(currentDB.UserRepo(), resend, services.GetBaseURL(cfg))
		if err := mailer.Run(ctx, bus); err != nil {
			log.Fatal().Err(err).Msg("Error starting notification mailer")
		}
		log.Info().Msg("Notification e-mail enabled")
	}

	server, err := api.NewServer(cfg, api.Dependencies{
		Database: currentDB,
		Verifier: verifier,
		Notifier: services.NewNotifier(currentDB.NotificationRepo(), bus),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	errChannel := make(chan error, 2)

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Err(fatalErr).Msg("Closing server")

	server.ShutdownGracefully(config.GetSeconds(cfg, "SHUTDOWN_TIMEOUT_SECONDS", 30))
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
