package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"galerij/infras/otel"
	"galerij/infras/postgres"
	"galerij/internal/domains/comment/model"
	"galerij/shared/constant"
	gDto "galerij/shared/dto"
	gRepo "galerij/shared/repository"
)

type Comment interface {
	Insert(ctx context.Context, model model.Comment) (int64, error)
	GetVisibleByArtwork(ctx context.Context, artworkID int64) ([]model.Comment, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Comment]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Comment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Comment](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// GetVisibleByArtwork lists visible comments of an artwork, newest first.
func (r *repositoryImpl) GetVisibleByArtwork(ctx context.Context, artworkID int64) ([]model.Comment, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".comment.GetVisibleByArtwork")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldArtworkID, Value: artworkID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldIsVisible, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	return r.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}, filter) //nolint:wrapcheck
}
