package model

const (
	TableName     = "techniques"
	LinkTableName = "artwork_techniques"
	EntityName    = "technique"

	FieldID        = "id"
	FieldName      = "name"
	FieldArtworkID = "artwork_id"
)

// Technique is read through the artwork_techniques link table, so every row carries the
// artwork it was selected for.
type Technique struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	ArtworkID int64  `db:"artwork_id" table:"artwork_techniques"`
}

func (Technique) GetJoinQuery() string {
	return "JOIN artwork_techniques ON artwork_techniques.technique_id = techniques.id"
}
