package model

import "time"

const (
	TableName  = "favorites"
	EntityName = "favorite"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldArtworkID = "artwork_id"
	FieldCreatedAt = "created_at"
)

type Favorite struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	ArtworkID int64     `db:"artwork_id"`
	CreatedAt time.Time `db:"created_at"`
}
