package dto

import (
	"galerij/internal/domains/artwork/model"
	commentDto "galerij/internal/domains/comment/model/dto"
	imageDto "galerij/internal/domains/image/model/dto"
	techniqueDto "galerij/internal/domains/technique/model/dto"
	gDto "galerij/shared/dto"
	gModel "galerij/shared/model"
	"galerij/shared/timezone"
)

type CreateArtworkRequest struct {
	Title       string   `json:"title"       validate:"required,max=255"`
	ArtistID    int64    `json:"artist_id"   validate:"required,gt=0"`
	Description *string  `json:"description" validate:"omitempty"`
	Year        *int     `json:"year"        validate:"omitempty,gte=0"`
	Dimensions  *string  `json:"dimensions"  validate:"omitempty,max=255"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
}

func (c *CreateArtworkRequest) ToModel() model.Artwork {
	now := timezone.Now()

	return model.Artwork{
		ArtistID:    c.ArtistID,
		Title:       c.Title,
		Description: c.Description,
		Year:        c.Year,
		Dimensions:  c.Dimensions,
		Price:       c.Price,
		IsPublic:    true,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// UpdateArtworkRequest overwrites every listed column; an absent optional field is stored as
// NULL.
type UpdateArtworkRequest struct {
	Title       string   `db:"title"       json:"title"       validate:"required,max=255"`
	Description *string  `db:"description" json:"description" validate:"omitempty"`
	Year        *int     `db:"year"        json:"year"        validate:"omitempty,gte=0"`
	Dimensions  *string  `db:"dimensions"  json:"dimensions"  validate:"omitempty,max=255"`
	Price       *float64 `db:"price"       json:"price"       validate:"omitempty,gte=0"`
}

type ArtworkResponse struct {
	ID          int64    `json:"id"`
	ArtistID    int64    `json:"artist_id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Year        *int     `json:"year"`
	Dimensions  *string  `json:"dimensions"`
	Price       *float64 `json:"price"`
	IsPublic    bool     `json:"is_public"`
	ArtistName  *string  `json:"artist_name"`
	gDto.Metadata
}

func (r *ArtworkResponse) FromModel(model model.Artwork) {
	r.ID = model.ID
	r.ArtistID = model.ArtistID
	r.Title = model.Title
	r.Description = model.Description
	r.Year = model.Year
	r.Dimensions = model.Dimensions
	r.Price = model.Price
	r.IsPublic = model.IsPublic
	r.ArtistName = model.ArtistName
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Artwork) []ArtworkResponse {
	res := make([]ArtworkResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// ArtworkListItem is a listing entry with its primary image, or null when it has none.
type ArtworkListItem struct {
	ArtworkResponse
	Image *imageDto.ImageResponse `json:"image"`
}

type ArtworkDetailResponse struct {
	Artwork    ArtworkResponse                  `json:"artwork"`
	Images     []imageDto.ImageResponse         `json:"images"`
	Techniques []techniqueDto.TechniqueResponse `json:"techniques"`
	Comments   []commentDto.CommentResponse     `json:"comments"`
}

type CreateArtworkResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
