package model

const (
	TableName  = "artwork_images"
	EntityName = "artwork_image"

	FieldID        = "id"
	FieldArtworkID = "artwork_id"
	FieldSortOrder = "sort_order"
)

// Image is one picture of an artwork. The image with the lowest sort order, ties broken by
// id, is the primary image.
type Image struct {
	ID        int64   `db:"id"`
	ArtworkID int64   `db:"artwork_id"`
	URL       string  `db:"url"`
	AltText   *string `db:"alt_text"`
	SortOrder int     `db:"sort_order"`
}
