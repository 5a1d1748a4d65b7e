package main

import (
	"log"
	"time"

	"service-booking/cmd"
	"service-booking/internal/data/repository"
	"service-booking/internal/mailer"
	"service-booking/internal/scheduler"
	"service-booking/internal/token"
	"service-booking/internal/usecase"
	"service-booking/internal/wire"
	"service-booking/pkg/database"
	"service-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	if err := database.Migrate(config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	issuer := token.NewIssuer(config.JWT.Secret,
		time.Duration(config.JWT.ExpiryMinutes)*time.Minute)

	composer := mailer.NewComposer(mailer.NewSMTPSender(config.Email), config.App.FrontendURL)

	loc, err := time.LoadLocation(config.Scheduler.Timezone)
	if err != nil {
		logger.Fatal("Invalid scheduler timezone",
			zap.String("timezone", config.Scheduler.Timezone),
			zap.Error(err))
	}

	reminders := scheduler.New(usecase.NewReminderHandler(repos, composer, logger), loc, logger)
	reminders.Start()
	defer reminders.Stop()

	service := usecase.NewService(repos, issuer, composer, reminders, config, logger)

	app := wire.Wiring(repos, issuer, service, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}
