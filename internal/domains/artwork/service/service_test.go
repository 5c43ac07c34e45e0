package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"galerij/config"
	"galerij/infras/kafka"
	kafkaMocks "galerij/infras/kafka/mocks"
	"galerij/infras/otel/mocks"
	artworkMocks "galerij/internal/domains/artwork/mocks"
	"galerij/internal/domains/artwork/model"
	"galerij/internal/domains/artwork/model/dto"
	"galerij/internal/domains/artwork/service"
	commentMocks "galerij/internal/domains/comment/mocks"
	commentModel "galerij/internal/domains/comment/model"
	imageMocks "galerij/internal/domains/image/mocks"
	imageModel "galerij/internal/domains/image/model"
	techniqueMocks "galerij/internal/domains/technique/mocks"
	techniqueModel "galerij/internal/domains/technique/model"
	"galerij/shared/cache"
	gDto "galerij/shared/dto"
	"galerij/shared/failure"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	repo       *artworkMocks.MockArtwork
	images     *imageMocks.MockImage
	techniques *techniqueMocks.MockTechnique
	comments   *commentMocks.MockComment
	kafka      *kafkaMocks.MockClient
	mr         *miniredis.Miniredis
	svc        service.Artwork
}

func newService(t *testing.T) deps {
	t.Helper()

	ctrl := gomock.NewController(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	otel := mocks.NewOtel()
	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	d := deps{
		repo:       artworkMocks.NewMockArtwork(ctrl),
		images:     imageMocks.NewMockImage(ctrl),
		techniques: techniqueMocks.NewMockTechnique(ctrl),
		comments:   commentMocks.NewMockComment(ctrl),
		kafka:      kafkaMocks.NewMockClient(ctrl),
		mr:         mr,
	}

	d.svc = service.New(d.repo, d.images, d.techniques, d.comments, cfg, cache.NewRedisCache(client, otel), d.kafka, otel)

	return d
}

func (d deps) expectEvent(t *testing.T) <-chan kafka.Message {
	t.Helper()

	published := make(chan kafka.Message, 1)

	d.kafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, messages ...kafka.Message) error {
			published <- messages[0]

			return nil
		})

	return published
}

func waitEvent(t *testing.T, published <-chan kafka.Message) kafka.Message {
	t.Helper()

	select {
	case msg := <-published:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}

	return kafka.Message{}
}

func strPtr(s string) *string { return &s }

func generation(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()

	value, err := mr.Get(key)
	require.NoError(t, err)

	return value
}

func expectDetailChildren(d deps, id int64) {
	d.images.EXPECT().GetByArtwork(gomock.Any(), id).Return([]imageModel.Image{}, nil)
	d.techniques.EXPECT().GetByArtwork(gomock.Any(), id).Return([]techniqueModel.Technique{}, nil)
	d.comments.EXPECT().GetVisibleByArtwork(gomock.Any(), id).Return([]commentModel.Comment{}, nil)
}

func TestArtworkService_GetAll(t *testing.T) {
	artworks := []model.Artwork{
		{ID: 1, ArtistID: 1, Title: "Sunrise", IsPublic: true, ArtistName: strPtr("Vincent")},
		{ID: 2, ArtistID: 1, Title: "Sunset", IsPublic: true, ArtistName: strPtr("Vincent")},
	}

	tests := []struct {
		name      string
		params    gDto.QueryParams
		term      string
		setup     func(d deps)
		wantIDs   []int64
		wantImage map[int64]string
		wantErr   bool
	}{
		{
			name: "listing without term",
			setup: func(d deps) {
				d.repo.EXPECT().
					GetAll(gomock.Any(), gDto.QueryParams{}, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Artwork, error) {
						where, args := filter.GetWhereClause()
						assert.Equal(t, "(artworks.is_public = :is_public)", where)
						assert.Equal(t, true, args["is_public"])

						return artworks, nil
					})
				d.images.EXPECT().
					GetPrimaryByArtworks(gomock.Any(), []int64{1, 2}).
					Return(map[int64]imageModel.Image{1: {ID: 10, ArtworkID: 1, URL: "/artwork/sunrise.jpg"}}, nil)
			},
			wantIDs:   []int64{1, 2},
			wantImage: map[int64]string{1: "/artwork/sunrise.jpg"},
		},
		{
			name: "search by term",
			term: "sun",
			setup: func(d deps) {
				d.repo.EXPECT().
					Search(gomock.Any(), gDto.QueryParams{}, gomock.Any(), "sun").
					Return([]model.Artwork{artworks[1]}, nil)
				d.images.EXPECT().
					GetPrimaryByArtworks(gomock.Any(), []int64{2}).
					Return(map[int64]imageModel.Image{}, nil)
			},
			wantIDs:   []int64{2},
			wantImage: map[int64]string{},
		},
		{
			name:   "paged listing",
			params: gDto.QueryParams{Page: 2, Limit: 1},
			setup: func(d deps) {
				d.repo.EXPECT().
					GetAll(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 1}, gomock.Any()).
					Return([]model.Artwork{artworks[1]}, nil)
				d.images.EXPECT().GetPrimaryByArtworks(gomock.Any(), []int64{2}).Return(map[int64]imageModel.Image{}, nil)
			},
			wantIDs:   []int64{2},
			wantImage: map[int64]string{},
		},
		{
			name: "empty gallery",
			setup: func(d deps) {
				d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Artwork{}, nil)
				d.images.EXPECT().GetPrimaryByArtworks(gomock.Any(), []int64{}).Return(map[int64]imageModel.Image{}, nil)
			},
			wantIDs:   []int64{},
			wantImage: map[int64]string{},
		},
		{
			name: "database error",
			setup: func(d deps) {
				d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("pq: connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newService(t)
			tt.setup(d)

			res, err := d.svc.GetAll(context.Background(), tt.params, tt.term)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "pq: connection refused")

				return
			}

			require.NoError(t, err)
			require.NotNil(t, res)

			ids := make([]int64, len(res))
			for i, item := range res {
				ids[i] = item.ID

				if url, ok := tt.wantImage[item.ID]; ok {
					require.NotNil(t, item.Image)
					assert.Equal(t, url, item.Image.URL)
				} else {
					assert.Nil(t, item.Image)
				}
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestArtworkService_GetAllServedFromCache(t *testing.T) {
	d := newService(t)

	d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Artwork{{ID: 1, Title: "Sunrise", IsPublic: true}}, nil).Times(1)
	d.images.EXPECT().GetPrimaryByArtworks(gomock.Any(), gomock.Any()).Return(map[int64]imageModel.Image{}, nil).Times(1)

	_, err := d.svc.GetAll(context.Background(), gDto.QueryParams{}, "")
	require.NoError(t, err)
	require.Len(t, d.mr.Keys(), 1)

	res, err := d.svc.GetAll(context.Background(), gDto.QueryParams{}, "")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Sunrise", res[0].Title)
}

func TestArtworkService_Get(t *testing.T) {
	d := newService(t)

	d.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Artwork, error) {
			where, args := filter.GetWhereClause()
			assert.Equal(t, "(artworks.is_public = :is_public AND artworks.id = :id)", where)
			assert.Equal(t, int64(3), args["id"])

			return model.Artwork{ID: 3, Title: "Sunrise", IsPublic: true}, nil
		})
	d.images.EXPECT().GetByArtwork(gomock.Any(), int64(3)).Return([]imageModel.Image{
		{ID: 1, ArtworkID: 3, URL: "/artwork/a.jpg", SortOrder: 0},
		{ID: 2, ArtworkID: 3, URL: "/artwork/b.jpg", SortOrder: 1},
	}, nil)
	d.techniques.EXPECT().GetByArtwork(gomock.Any(), int64(3)).Return([]techniqueModel.Technique{{ID: 1, Name: "Olieverf", ArtworkID: 3}}, nil)
	d.comments.EXPECT().GetVisibleByArtwork(gomock.Any(), int64(3)).Return([]commentModel.Comment{}, nil)

	res, err := d.svc.Get(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "Sunrise", res.Artwork.Title)
	require.Len(t, res.Images, 2)
	assert.Equal(t, "/artwork/a.jpg", res.Images[0].URL)
	assert.Equal(t, "Olieverf", res.Techniques[0].Name)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"comments":[]`)
}

func TestArtworkService_GetNewArtworkHasEmptyCollections(t *testing.T) {
	d := newService(t)

	d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Artwork{ID: 42, Title: "Sunrise", IsPublic: true}, nil)
	d.images.EXPECT().GetByArtwork(gomock.Any(), int64(42)).Return([]imageModel.Image{}, nil)
	d.techniques.EXPECT().GetByArtwork(gomock.Any(), int64(42)).Return([]techniqueModel.Technique{}, nil)
	d.comments.EXPECT().GetVisibleByArtwork(gomock.Any(), int64(42)).Return([]commentModel.Comment{}, nil)

	res, err := d.svc.Get(context.Background(), 42)
	require.NoError(t, err)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"images":[]`)
	assert.Contains(t, string(body), `"techniques":[]`)
	assert.Contains(t, string(body), `"comments":[]`)
}

func TestArtworkService_GetNotFound(t *testing.T) {
	d := newService(t)

	d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Artwork{}, nil)

	_, err := d.svc.Get(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
	assert.Equal(t, "Artwork not found", err.Error())
}

func TestArtworkService_GetChildQueryError(t *testing.T) {
	d := newService(t)

	d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Artwork{ID: 3, IsPublic: true}, nil)
	d.images.EXPECT().GetByArtwork(gomock.Any(), int64(3)).Return(nil, errors.New("pq: timeout")).AnyTimes()
	d.techniques.EXPECT().GetByArtwork(gomock.Any(), int64(3)).Return([]techniqueModel.Technique{}, nil).AnyTimes()
	d.comments.EXPECT().GetVisibleByArtwork(gomock.Any(), int64(3)).Return([]commentModel.Comment{}, nil).AnyTimes()

	_, err := d.svc.Get(context.Background(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pq: timeout")
	assert.False(t, failure.IsNotFound(err))
}

func TestArtworkService_Create(t *testing.T) {
	d := newService(t)

	d.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mod model.Artwork) (int64, error) {
			assert.Equal(t, "Sunrise", mod.Title)
			assert.True(t, mod.IsPublic)

			return 42, nil
		})

	published := d.expectEvent(t)

	id, err := d.svc.Create(context.Background(), dto.CreateArtworkRequest{Title: "Sunrise", ArtistID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	// generations move before Create returns, the event may still be in flight
	assert.Equal(t, "1", generation(t, d.mr, "artwork:gen"))
	assert.Equal(t, "1", generation(t, d.mr, "artwork:gen:42"))

	assert.Equal(t, "42", waitEvent(t, published).Key)
}

func TestArtworkService_Update(t *testing.T) {
	d := newService(t)

	year := 1890

	d.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) error {
			assert.Equal(t, "Sunset", fields["title"])
			assert.Equal(t, &year, fields["year"])
			assert.Contains(t, fields, "description")
			assert.Nil(t, fields["description"])
			assert.Contains(t, fields, "updated_at")

			_, args := filter.GetWhereClause()
			assert.Equal(t, int64(7), args["id"])

			return nil
		})

	published := d.expectEvent(t)

	require.NoError(t, d.svc.Update(context.Background(), dto.UpdateArtworkRequest{Title: "Sunset", Year: &year}, 7))

	assert.Equal(t, "1", generation(t, d.mr, "artwork:gen:7"))
	assert.False(t, d.mr.Exists("artwork:gen:8"))

	waitEvent(t, published)
}

func TestArtworkService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "deleted"},
		{name: "database error", err: errors.New("pq: deadlock detected"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newService(t)

			d.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(tt.err)

			var published <-chan kafka.Message
			if !tt.wantErr {
				published = d.expectEvent(t)
			}

			err := d.svc.Delete(context.Background(), 7)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "7", waitEvent(t, published).Key)
		})
	}
}

func TestArtworkService_DetailAfterDelete(t *testing.T) {
	d := newService(t)
	ctx := context.Background()

	gomock.InOrder(
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Artwork{ID: 7, Title: "Sunrise", IsPublic: true}, nil),
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Artwork{}, nil),
	)
	expectDetailChildren(d, 7)
	d.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	published := d.expectEvent(t)

	res, err := d.svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.Artwork.ID)

	require.NoError(t, d.svc.Delete(ctx, 7))

	_, err = d.svc.Get(ctx, 7)
	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))

	waitEvent(t, published)
}

func TestArtworkService_DetailAfterUpdate(t *testing.T) {
	d := newService(t)
	ctx := context.Background()

	oldPrice, newPrice := 120.0, 150.0

	gomock.InOrder(
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Artwork{ID: 7, Title: "Sunrise", Price: &oldPrice, IsPublic: true}, nil),
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Artwork{ID: 7, Title: "Sunrise", Price: &newPrice, IsPublic: true}, nil),
	)
	d.images.EXPECT().GetByArtwork(gomock.Any(), int64(7)).Return([]imageModel.Image{}, nil).Times(2)
	d.techniques.EXPECT().GetByArtwork(gomock.Any(), int64(7)).Return([]techniqueModel.Technique{}, nil).Times(2)
	d.comments.EXPECT().GetVisibleByArtwork(gomock.Any(), int64(7)).Return([]commentModel.Comment{}, nil).Times(2)
	d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	published := d.expectEvent(t)

	_, err := d.svc.Get(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, d.svc.Update(ctx, dto.UpdateArtworkRequest{Title: "Sunrise", Price: &newPrice}, 7))

	res, err := d.svc.Get(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, res.Artwork.Price)
	assert.InDelta(t, 150.0, *res.Artwork.Price, 0.001)

	waitEvent(t, published)
}

func TestArtworkService_ListingAfterCreate(t *testing.T) {
	d := newService(t)
	ctx := context.Background()

	gomock.InOrder(
		d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Artwork{{ID: 1, Title: "Sunrise", IsPublic: true}}, nil),
		d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Artwork{{ID: 1, Title: "Sunrise", IsPublic: true}, {ID: 2, Title: "Dusk", IsPublic: true}}, nil),
	)
	d.images.EXPECT().GetPrimaryByArtworks(gomock.Any(), gomock.Any()).Return(map[int64]imageModel.Image{}, nil).Times(2)
	d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(2), nil)

	published := d.expectEvent(t)

	res, err := d.svc.GetAll(ctx, gDto.QueryParams{}, "")
	require.NoError(t, err)
	require.Len(t, res, 1)

	_, err = d.svc.Create(ctx, dto.CreateArtworkRequest{Title: "Dusk", ArtistID: 1})
	require.NoError(t, err)

	res, err = d.svc.GetAll(ctx, gDto.QueryParams{}, "")
	require.NoError(t, err)
	assert.Len(t, res, 2)

	waitEvent(t, published)
}

// A read that loaded the row before a delete and stores it afterwards must not be served later.
func TestArtworkService_SlowReadRacingDelete(t *testing.T) {
	d := newService(t)
	ctx := context.Background()

	loaded := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		d.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, gDto.FilterGroup, ...string) (model.Artwork, error) {
				close(loaded)
				<-release

				return model.Artwork{ID: 7, Title: "Sunrise", IsPublic: true}, nil
			}),
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Artwork{}, nil),
	)
	expectDetailChildren(d, 7)
	d.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	published := d.expectEvent(t)

	slow := make(chan error, 1)

	go func() {
		_, err := d.svc.Get(ctx, 7)
		slow <- err
	}()

	<-loaded
	require.NoError(t, d.svc.Delete(ctx, 7))
	close(release)

	select {
	case err := <-slow:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("slow read did not finish")
	}

	// the stale detail was stored, under the retired generation
	assert.True(t, d.mr.Exists("artwork:get:7:g0"))

	_, err := d.svc.Get(ctx, 7)
	assert.True(t, failure.IsNotFound(err))

	waitEvent(t, published)
}
