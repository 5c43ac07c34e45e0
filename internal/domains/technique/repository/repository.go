package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"galerij/infras/otel"
	"galerij/infras/postgres"
	"galerij/internal/domains/technique/model"
	"galerij/shared/constant"
	gDto "galerij/shared/dto"
	gRepo "galerij/shared/repository"
)

type Technique interface {
	GetByArtwork(ctx context.Context, artworkID int64) ([]model.Technique, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Technique]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Technique {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Technique](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// GetByArtwork lists the techniques linked to an artwork, by name.
func (r *repositoryImpl) GetByArtwork(ctx context.Context, artworkID int64) ([]model.Technique, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".technique.GetByArtwork")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldArtworkID, Value: artworkID, Operator: gDto.FilterOperatorEq, Table: model.LinkTableName},
		},
	}

	return r.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}, filter) //nolint:wrapcheck
}
