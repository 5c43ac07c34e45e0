package router

import (
	"net/http"

	"galerij/config"
	"galerij/internal/handlers/artwork"
	"galerij/internal/handlers/comment"
	"galerij/internal/handlers/favorite"
	"galerij/internal/handlers/static"
	"galerij/shared/constant"
	"galerij/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type DomainHandlers struct {
	Artwork  artwork.Handler
	Comment  comment.Handler
	Favorite favorite.Handler
	Static   static.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Config         *config.Config
}

// SetupRoutes installs the middleware stack and every route. Routes added to router after
// this call run behind the same middleware.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.Middleware.RequestID)
	router.Use(r.Middleware.Logging)
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.Middleware.Tracing)

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			ExposedHeaders:   []string{constant.RequestHeaderRequestID},
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Use(r.Middleware.RateLimit())

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Artwork.Router(routerGroup)
		r.DomainHandlers.Comment.Router(routerGroup)
		r.DomainHandlers.Favorite.Router(routerGroup)
	})

	r.DomainHandlers.Static.Router(router)
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware, config *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
		Config:         config,
	}
}
