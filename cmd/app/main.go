package main

import (
	"galerij/config"
	"galerij/di"
	"galerij/helper"
	"galerij/shared/logger"
	"galerij/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.Setup(cfg)

	if err := timezone.Setup(cfg.App.Timezone); err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("invalid application timezone")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to apply database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
