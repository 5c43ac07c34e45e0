package dto

import "galerij/internal/domains/image/model"

type ImageResponse struct {
	ID        int64   `json:"id"`
	ArtworkID int64   `json:"artwork_id"`
	URL       string  `json:"url"`
	AltText   *string `json:"alt_text"`
	SortOrder int     `json:"sort_order"`
}

func (r *ImageResponse) FromModel(model model.Image) {
	r.ID = model.ID
	r.ArtworkID = model.ArtworkID
	r.URL = model.URL
	r.AltText = model.AltText
	r.SortOrder = model.SortOrder
}

// FromModels always returns a non-nil slice so empty lists encode as [].
func FromModels(models []model.Image) []ImageResponse {
	res := make([]ImageResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
