package main

import (
	"context"
	"os"

	"github.com/MKhiriev/brew-review/internal/config"
	"github.com/MKhiriev/brew-review/internal/handler"
	"github.com/MKhiriev/brew-review/internal/logger"
	"github.com/MKhiriev/brew-review/internal/server"
	"github.com/MKhiriev/brew-review/internal/service"
	"github.com/MKhiriev/brew-review/internal/store"
	"github.com/MKhiriev/brew-review/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)

	log := logger.NewLogger("brew-review-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// connection secrets stay out of the log
	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("db_host", cfg.Storage.DB.Host).
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.ShouldMigrate() {
		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
		log.Info().Msg("migrations applied")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, db, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
