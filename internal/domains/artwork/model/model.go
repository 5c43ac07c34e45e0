package model

import "galerij/shared/model"

const (
	TableName  = "artworks"
	EntityName = "artwork"

	FieldID          = "id"
	FieldArtistID    = "artist_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldIsPublic    = "is_public"

	// ArgSearch is the named argument holding the full-text search term.
	ArgSearch = "q"
)

// SearchFields are the columns covered by the full-text index.
var SearchFields = []string{FieldTitle, FieldDescription}

type Artwork struct {
	ID          int64    `db:"id"`
	ArtistID    int64    `db:"artist_id"`
	Title       string   `db:"title"`
	Description *string  `db:"description"`
	Year        *int     `db:"year"`
	Dimensions  *string  `db:"dimensions"`
	Price       *float64 `db:"price"`
	IsPublic    bool     `db:"is_public"`
	ArtistName  *string  `db:"artist_name" table:"artists" column:"name"`
	model.Metadata
}

func (Artwork) GetJoinQuery() string {
	return "LEFT JOIN artists ON artists.id = artworks.artist_id"
}
