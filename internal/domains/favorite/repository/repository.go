package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"galerij/infras/otel"
	"galerij/infras/postgres"
	artworkModel "galerij/internal/domains/artwork/model"
	"galerij/internal/domains/favorite/model"
	"galerij/shared/constant"
	gDto "galerij/shared/dto"
	"galerij/shared/logger"
	gRepo "galerij/shared/repository"
)

type Favorite interface {
	Add(ctx context.Context, model model.Favorite) error
	GetArtworksByUser(ctx context.Context, userID int64) ([]artworkModel.Artwork, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Favorite]
	artworks gRepo.Repository[artworkModel.Artwork]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Favorite {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Favorite](model.EntityName, model.TableName, model.FieldID, db, otel),
		artworks:   gRepo.NewRepository[artworkModel.Artwork](artworkModel.EntityName, artworkModel.TableName, artworkModel.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Add records the favorite. Adding the same pair twice is a no-op.
func (r *repositoryImpl) Add(ctx context.Context, mod model.Favorite) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".favorite.Add")
	defer scope.End()

	query := fmt.Sprintf("INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s) VALUES (:%[2]s, :%[3]s, :%[4]s) ON CONFLICT (%[2]s, %[3]s) DO NOTHING",
		model.TableName, model.FieldUserID, model.FieldArtworkID, model.FieldCreatedAt)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := r.db.Write.NamedExecContext(ctx, query, mod); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return nil
}

// GetArtworksByUser lists the visible artworks a user favorited, in the order they were added.
func (r *repositoryImpl) GetArtworksByUser(ctx context.Context, userID int64) ([]artworkModel.Artwork, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".favorite.GetArtworksByUser")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Value: userID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: artworkModel.FieldIsPublic, Value: true, Operator: gDto.FilterOperatorEq, Table: artworkModel.TableName},
		},
	}

	where, args := r.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT %[1]s FROM %[2]s JOIN %[3]s ON %[3]s.id = %[2]s.%[4]s %[5]s %[6]s ORDER BY %[2]s.%[7]s ASC, %[2]s.id ASC",
		r.artworks.SelectColumns(ctx), model.TableName, artworkModel.TableName, model.FieldArtworkID,
		r.artworks.Join(), where, model.FieldCreatedAt)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	artworks := []artworkModel.Artwork{}

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

		return artworks, fmt.Errorf("failed to get favorite artworks (%s): %w", model.EntityName, err)
	}

	return artworks, nil
}
