package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"galerij/infras/otel"
	"galerij/infras/postgres"
	"galerij/internal/domains/artwork/model"
	"galerij/shared/constant"
	gDto "galerij/shared/dto"
	"galerij/shared/logger"
	gRepo "galerij/shared/repository"
)

type Artwork interface {
	Insert(ctx context.Context, model model.Artwork) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Artwork, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Artwork, error)
	Search(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, term string) ([]model.Artwork, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Artwork]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Artwork {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Artwork](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Search restricts filter to artworks whose title or description match term and orders
// them by relevance, best first.
func (r *repositoryImpl) Search(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, term string) ([]model.Artwork, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".artwork.Search")
	defer scope.End()

	match := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			filter,
			gDto.Filter{
				ArgName:  model.ArgSearch,
				Value:    term,
				Operator: gDto.FilterOperatorMatch,
				Table:    model.TableName,
				Fields:   model.SearchFields,
			},
		},
	}

	where, args := r.BuildWhereClause(ctx, match)
	pagination := gRepo.Pagination(params, args)

	query := fmt.Sprintf("SELECT %s FROM %s %s %s ORDER BY %s DESC, %s.%s ASC %s",
		r.SelectColumns(ctx), model.TableName, r.Join(), where,
		gDto.TextSearchRank(model.TableName, model.ArgSearch, model.SearchFields...),
		model.TableName, model.FieldID, pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	artworks := []model.Artwork{}

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return artworks, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &artworks, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return artworks, fmt.Errorf("failed to search data (%s): %w", model.EntityName, err)
	}

	return artworks, nil
}
