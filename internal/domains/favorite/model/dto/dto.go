package dto

import (
	"galerij/internal/domains/favorite/model"
	"galerij/shared/timezone"
)

type AddFavoriteRequest struct {
	UserID    int64 `json:"user_id"    validate:"required,gt=0"`
	ArtworkID int64 `json:"artwork_id" validate:"required,gt=0"`
}

func (a *AddFavoriteRequest) ToModel() model.Favorite {
	return model.Favorite{
		UserID:    a.UserID,
		ArtworkID: a.ArtworkID,
		CreatedAt: timezone.Now(),
	}
}
