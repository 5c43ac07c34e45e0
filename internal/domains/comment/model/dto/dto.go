package dto

import (
	"strings"

	"galerij/internal/domains/comment/model"
	"galerij/shared/constant"
	"galerij/shared/timezone"
)

type CreateCommentRequest struct {
	ArtworkID  int64  `json:"artwork_id"  validate:"required,gt=0"`
	UserID     *int64 `json:"user_id"     validate:"omitempty,gte=0"`
	Content    string `json:"content"     validate:"required"`
	AuthorName string `json:"author_name" validate:"omitempty,max=255"`
}

// ToModel stores an absent or zero user id and a blank author name as NULL.
func (c *CreateCommentRequest) ToModel() model.Comment {
	mod := model.Comment{
		ArtworkID: c.ArtworkID,
		Content:   c.Content,
		IsVisible: true,
		CreatedAt: timezone.Now(),
	}

	if c.UserID != nil && *c.UserID > 0 {
		userID := *c.UserID
		mod.UserID = &userID
	}

	if name := strings.TrimSpace(c.AuthorName); name != "" {
		mod.AuthorName = &name
	}

	return mod
}

type CreateCommentResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type CommentResponse struct {
	ID         int64   `json:"id"`
	ArtworkID  int64   `json:"artwork_id"`
	UserID     *int64  `json:"user_id"`
	AuthorName *string `json:"author_name"`
	Content    string  `json:"content"`
	IsVisible  bool    `json:"is_visible"`
	CreatedAt  string  `json:"created_at"`
	UserName   *string `json:"user_name"`
}

func (r *CommentResponse) FromModel(model model.Comment) {
	r.ID = model.ID
	r.ArtworkID = model.ArtworkID
	r.UserID = model.UserID
	r.AuthorName = model.AuthorName
	r.Content = model.Content
	r.IsVisible = model.IsVisible
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	r.UserName = model.UserName
}

func FromModels(models []model.Comment) []CommentResponse {
	res := make([]CommentResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
