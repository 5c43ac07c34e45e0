package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"galerij/config"
	"galerij/infras/kafka"
	"galerij/infras/otel"
	"galerij/infras/postgres"
	"galerij/shared/constant"
	"galerij/shared/event"
	"galerij/transport/http/response"
	"galerij/transport/http/router"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const defaultCleanupPeriod = 10 * time.Second

type HTTP struct {
	Config *config.Config
	Router router.Router
	DB     *postgres.Connection
	Redis  *goRedis.Client
	Kafka  kafka.Client
	Otel   otel.Otel

	state   atomic.Int32
	handler http.Handler
	once    sync.Once
}

func New(cfg *config.Config, r router.Router, db *postgres.Connection, redis *goRedis.Client, kafka kafka.Client, otel otel.Otel) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		DB:     db,
		Redis:  redis,
		Kafka:  kafka,
		Otel:   otel,
	}
}

// Serve listens until SIGINT or SIGTERM, then drains: during the grace period /health
// reports 503 so load balancers stop routing, afterwards in-flight requests get the cleanup
// period to finish before connections and clients are closed.
func (h *HTTP) Serve() {
	h.setup()

	server := &http.Server{
		Addr:         net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:      h.handler,
		ReadTimeout:  time.Duration(h.Config.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(h.Config.Server.WriteTimeoutSeconds) * time.Second,
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Starting up HTTP server.")

		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	case <-signals:
		h.shutdown(server)
	}
}

// ServeHTTP lets the whole application run behind another server, e.g. a serverless entry
// point.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.handler.ServeHTTP(w, r)
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		mux := chi.NewRouter()

		h.Router.SetupRoutes(mux)
		mux.Get("/health", h.health)

		h.handler = mux
		h.setState(ServerStateReady)
	})
}

func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	switch h.State() {
	case ServerStateReady:
		response.WithMessage(w, http.StatusOK, constant.ResponseMessageOK)
	case ServerStateInGracePeriod, ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}

func (h *HTTP) shutdown(server *http.Server) {
	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		shutdownConfig.GracePeriodSeconds = 0
	} else {
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Received SIGTERM. Entering grace period.")
	}

	h.setState(ServerStateInGracePeriod)
	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	cleanup := h.cleanupPeriod()

	log.Info().Dur("period", cleanup).Msg("Entering cleanup period.")
	h.setState(ServerStateInCleanupPeriod)

	ctx, cancel := context.WithTimeout(context.Background(), cleanup)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server did not drain in time")
	}

	h.closeResources(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// cleanupPeriod never returns zero; an already expired context would cut every in-flight
// request instead of draining it.
func (h *HTTP) cleanupPeriod() time.Duration {
	if h.Config.Server.Shutdown.CleanupPeriodSeconds <= 0 {
		return defaultCleanupPeriod
	}

	return time.Duration(h.Config.Server.Shutdown.CleanupPeriodSeconds) * time.Second
}

// closeResources runs once no request is in flight. Pending domain events are flushed before
// kafka closes; ctx bounds the wait.
func (h *HTTP) closeResources(ctx context.Context) {
	if err := event.Drain(ctx); err != nil {
		log.Error().Err(err).Msg("pending events were not published before shutdown")
	}

	if h.DB != nil {
		if err := h.DB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database pool")
		}
	}

	if h.Redis != nil {
		if err := h.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}

	if h.Kafka != nil {
		if err := h.Kafka.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka writer")
		}
	}

	if h.Otel != nil {
		if err := h.Otel.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to flush traces")
		}
	}
}
