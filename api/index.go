package handler

import (
	"net/http"
	"sync"

	"galerij/config"
	"galerij/di"
	"galerij/shared/logger"
	"galerij/shared/timezone"

	"github.com/rs/zerolog/log"
)

var (
	app  http.Handler
	once sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.Setup(cfg)

		if err := timezone.Setup(cfg.App.Timezone); err != nil {
			log.Error().Err(err).Msg("falling back to UTC")
		}

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
