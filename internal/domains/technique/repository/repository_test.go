package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"galerij/infras/otel/mocks"
	"galerij/infras/postgres"
	"galerij/internal/domains/technique/model"
	"galerij/internal/domains/technique/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechnique_GetByArtwork(t *testing.T) {
	query := regexp.QuoteMeta("SELECT techniques.id, techniques.name, artwork_techniques.artwork_id FROM techniques " +
		"JOIN artwork_techniques ON artwork_techniques.technique_id = techniques.id " +
		"WHERE (artwork_techniques.artwork_id = $1) ORDER BY techniques.name ASC, techniques.id ASC")

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    []model.Technique
		wantErr bool
	}{
		{
			name: "techniques by name",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(query).
					ExpectQuery().
					WithArgs(int64(4)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "artwork_id"}).
						AddRow(int64(2), "Aquarel", int64(4)).
						AddRow(int64(1), "Olieverf", int64(4)))
			},
			want: []model.Technique{
				{ID: 2, Name: "Aquarel", ArtworkID: 4},
				{ID: 1, Name: "Olieverf", ArtworkID: 4},
			},
		},
		{
			name: "no techniques is an empty list",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(query).
					ExpectQuery().
					WithArgs(int64(4)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "artwork_id"}))
			},
			want: []model.Technique{},
		},
		{
			name: "database error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(query).ExpectQuery().WillReturnError(errors.New("pq: relation does not exist"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "postgres")
			repo := repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel())

			tt.setup(mock)

			got, err := repo.GetByArtwork(context.Background(), 4)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
