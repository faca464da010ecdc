// main.go
package main

import (
	"log"

	"hawc-booking/cmd"
	"hawc-booking/internal/data/repository"
	"hawc-booking/internal/wire"
	"hawc-booking/pkg/database"
	"hawc-booking/pkg/mailer"
	"hawc-booking/pkg/mollie"
	"hawc-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
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

	// Missing credentials degrade to per-request 500s, never a startup crash
	config.Validate(logger)

	// Connect to database
	var db database.PgxIface
	if config.DatabaseConfigured() {
		db, err = database.InitDB(config.Database)
		if err != nil {
			logger.Error("Failed to connect to database, store operations will fail", zap.Error(err))
			db = database.Unavailable(err)
		} else {
			logger.Info("Database connected successfully")
		}
	} else {
		db = database.Unavailable(errMissingDBConfig{})
	}
	defer db.Close()

	// Initialize repositories and collaborators
	repos := repository.NewRepository(db, logger)
	processor := mollie.NewClient(config.Mollie.APIKey, config.Mollie.BaseURL, logger)
	notifier := mailer.NewResend(config.Email.APIKey, config.Email.From, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, processor, notifier, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

type errMissingDBConfig struct{}

func (errMissingDBConfig) Error() string {
	return "missing DB_HOST / DB_NAME / DB_USER environment variables"
}
