package router_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"galerij/config"
	"galerij/infras/otel/mocks"
	s3Mocks "galerij/infras/s3/mocks"
	artworkMocks "galerij/internal/domains/artwork/mocks"
	artworkDto "galerij/internal/domains/artwork/model/dto"
	commentMocks "galerij/internal/domains/comment/mocks"
	favoriteMocks "galerij/internal/domains/favorite/mocks"
	"galerij/internal/handlers/artwork"
	"galerij/internal/handlers/comment"
	"galerij/internal/handlers/favorite"
	"galerij/internal/handlers/static"
	"galerij/shared/cache"
	"galerij/shared/constant"
	gDto "galerij/shared/dto"
	"galerij/transport/http/middleware"
	"galerij/transport/http/router"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	handler   http.Handler
	artworks  *artworkMocks.MockArtworkService
	favorites *favoriteMocks.MockFavoriteService
}

func newFixture(t *testing.T, cfg *config.Config) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	otel := mocks.NewOtel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sunrise.jpg"), []byte("jpeg-bytes"), 0o600))

	cfg.App.Static.Dir = dir

	artworks := artworkMocks.NewMockArtworkService(ctrl)
	favorites := favoriteMocks.NewMockFavoriteService(ctrl)

	r := router.New(router.DomainHandlers{
		Artwork:  artwork.New(artworks, otel),
		Comment:  comment.New(commentMocks.NewMockCommentService(ctrl), otel),
		Favorite: favorite.New(favorites, otel),
		Static:   static.New(cfg, s3Mocks.NewMockS3(ctrl), otel),
	}, middleware.NewAppMiddleware(otel, cfg, cache.NewRedisCache(client, otel)), cfg)

	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return fixture{handler: mux, artworks: artworks, favorites: favorites}
}

func TestSetupRoutes(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		setup    func(f fixture)
		wantCode int
		wantBody string
	}{
		{
			name:   "artworks under api prefix",
			target: "/api/artworks",
			setup: func(f fixture) {
				f.artworks.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}, "").Return(nil, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "favorites under api prefix",
			target: "/api/favorites/4",
			setup: func(f fixture) {
				f.favorites.EXPECT().GetByUser(gomock.Any(), int64(4)).Return([]artworkDto.ArtworkResponse{}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: "[]",
		},
		{
			name:     "static files at root",
			target:   "/artwork/sunrise.jpg",
			wantCode: http.StatusOK,
			wantBody: "jpeg-bytes",
		},
		{
			name:     "unknown path",
			target:   "/api/rooms",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, &config.Config{})
			if tt.setup != nil {
				tt.setup(f)
			}

			rec := httptest.NewRecorder()
			f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestSetupRoutes_CORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"http://localhost:5173"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	f := newFixture(t, cfg)

	tests := []struct {
		name      string
		origin    string
		wantAllow string
	}{
		{name: "allowed origin", origin: "http://localhost:5173", wantAllow: "http://localhost:5173"},
		{name: "foreign origin", origin: "http://evil.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/artworks", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)

			rec := httptest.NewRecorder()
			f.handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestSetupRoutes_RateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 1
	cfg.App.RateLimiter.WindowSeconds = 60

	f := newFixture(t, cfg)
	f.artworks.EXPECT().GetAll(gomock.Any(), gomock.Any(), "").Return(nil, nil).Times(1)

	codes := make([]int, 0, 2)

	for range 2 {
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/artworks", nil))

		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
