package dto

import "galerij/internal/domains/technique/model"

type TechniqueResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (r *TechniqueResponse) FromModel(model model.Technique) {
	r.ID = model.ID
	r.Name = model.Name
}

func FromModels(models []model.Technique) []TechniqueResponse {
	res := make([]TechniqueResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
