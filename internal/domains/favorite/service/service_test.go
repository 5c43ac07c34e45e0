package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"galerij/config"
	"galerij/infras/kafka"
	kafkaMocks "galerij/infras/kafka/mocks"
	"galerij/infras/otel/mocks"
	artworkModel "galerij/internal/domains/artwork/model"
	favoriteMocks "galerij/internal/domains/favorite/mocks"
	"galerij/internal/domains/favorite/model"
	"galerij/internal/domains/favorite/model/dto"
	"galerij/internal/domains/favorite/service"
	"galerij/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), mr
}

func TestFavoriteService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := favoriteMocks.NewMockFavorite(ctrl)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	redisCache, mr := newCache(t)

	svc := service.New(repo, &config.Config{}, redisCache, kafkaClient, mocks.NewOtel())

	repo.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mod model.Favorite) error {
			assert.Equal(t, int64(2), mod.UserID)
			assert.Equal(t, int64(5), mod.ArtworkID)

			return nil
		})

	published := make(chan kafka.Message, 1)
	kafkaClient.EXPECT().
		SendMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, messages ...kafka.Message) error {
			published <- messages[0]

			return nil
		})

	require.NoError(t, svc.Add(context.Background(), dto.AddFavoriteRequest{UserID: 2, ArtworkID: 5}))

	gen, err := mr.Get("favorite:gen:2")
	require.NoError(t, err)
	assert.Equal(t, "1", gen)
	assert.False(t, mr.Exists("favorite:gen:3"))

	select {
	case msg := <-published:
		assert.Equal(t, "2", msg.Key)
	case <-time.After(2 * time.Second):
		t.Fatal("favorite event was not published")
	}

}

func TestFavoriteService_AddError(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := favoriteMocks.NewMockFavorite(ctrl)
	redisCache, _ := newCache(t)
	otel := mocks.NewOtel()

	svc := service.New(repo, &config.Config{}, redisCache, kafka.New(&config.Config{}, otel), otel)

	repo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(errors.New("pq: connection reset"))

	err := svc.Add(context.Background(), dto.AddFavoriteRequest{UserID: 2, ArtworkID: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pq: connection reset")
}

func TestFavoriteService_GetByUser(t *testing.T) {
	tests := []struct {
		name    string
		cached  string
		setup   func(repo *favoriteMocks.MockFavorite)
		want    []string
		wantErr bool
	}{
		{
			name: "loads from database",
			setup: func(repo *favoriteMocks.MockFavorite) {
				repo.EXPECT().
					GetArtworksByUser(gomock.Any(), int64(2)).
					Return([]artworkModel.Artwork{{ID: 5, Title: "Sunrise", IsPublic: true}}, nil)
			},
			want: []string{"Sunrise"},
		},
		{
			name:   "served from cache",
			cached: `[{"id":7,"title":"Nachtwacht","is_public":true}]`,
			setup:  func(*favoriteMocks.MockFavorite) {},
			want:   []string{"Nachtwacht"},
		},
		{
			name: "no favorites is an empty list",
			setup: func(repo *favoriteMocks.MockFavorite) {
				repo.EXPECT().GetArtworksByUser(gomock.Any(), int64(2)).Return([]artworkModel.Artwork{}, nil)
			},
			want: []string{},
		},
		{
			name: "database error",
			setup: func(repo *favoriteMocks.MockFavorite) {
				repo.EXPECT().GetArtworksByUser(gomock.Any(), int64(2)).Return(nil, errors.New("pq: timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := favoriteMocks.NewMockFavorite(ctrl)
			redisCache, mr := newCache(t)
			otel := mocks.NewOtel()

			if tt.cached != "" {
				require.NoError(t, mr.Set("favorite:get_all:2:g0.0", tt.cached))
			}

			tt.setup(repo)

			cfg := &config.Config{}
			cfg.Cache.TTL = 60

			svc := service.New(repo, cfg, redisCache, kafka.New(&config.Config{}, otel), otel)

			res, err := svc.GetByUser(context.Background(), 2)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, res)

			titles := make([]string, len(res))
			for i, artwork := range res {
				titles[i] = artwork.Title
			}

			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestFavoriteService_ListAfterAdd(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := favoriteMocks.NewMockFavorite(ctrl)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	redisCache, _ := newCache(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(repo, cfg, redisCache, kafkaClient, mocks.NewOtel())
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetArtworksByUser(gomock.Any(), int64(2)).Return([]artworkModel.Artwork{}, nil),
		repo.EXPECT().GetArtworksByUser(gomock.Any(), int64(2)).Return([]artworkModel.Artwork{{ID: 5, Title: "Sunrise", IsPublic: true}}, nil),
	)
	repo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)

	published := make(chan kafka.Message, 1)
	kafkaClient.EXPECT().
		SendMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, messages ...kafka.Message) error {
			published <- messages[0]

			return nil
		})

	res, err := svc.GetByUser(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, res)

	require.NoError(t, svc.Add(ctx, dto.AddFavoriteRequest{UserID: 2, ArtworkID: 5}))

	res, err = svc.GetByUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, int64(5), res[0].ID)

	select {
	case <-published:
	case <-time.After(2 * time.Second):
		t.Fatal("favorite event was not published")
	}
}
