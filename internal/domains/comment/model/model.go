package model

import "time"

const (
	TableName  = "comments"
	EntityName = "comment"

	FieldID        = "id"
	FieldArtworkID = "artwork_id"
	FieldIsVisible = "is_visible"
	FieldCreatedAt = "created_at"
)

type Comment struct {
	ID         int64     `db:"id"`
	ArtworkID  int64     `db:"artwork_id"`
	UserID     *int64    `db:"user_id"`
	AuthorName *string   `db:"author_name"`
	Content    string    `db:"content"`
	IsVisible  bool      `db:"is_visible"`
	CreatedAt  time.Time `db:"created_at"`
	UserName   *string   `db:"user_name" table:"users" column:"name"`
}

func (Comment) GetJoinQuery() string {
	return "LEFT JOIN users ON users.id = comments.user_id"
}
