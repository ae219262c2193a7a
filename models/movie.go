package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Movie is a catalog entry composed by the metadata fetcher and persisted
// as-is. A Movie is only ever created fully formed: the fetch must succeed
// before a store write is attempted.
type Movie struct {
	// ID is assigned by the document store on insert.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	// Slug is the unique, URL-safe identifier derived from Title.
	// Uniqueness is enforced by the store's index on this field.
	Slug string `bson:"slug" json:"slug"`

	// Title is the display title exactly as returned by the metadata provider.
	Title string `bson:"title" json:"Title"`

	// Synopsis is the short-form plot captured from the first provider lookup.
	Synopsis string `bson:"synopsis" json:"Synopsis"`

	// Plot is the full-form plot from the second provider lookup.
	Plot string `bson:"plot" json:"Plot"`

	// Metadata carries the remaining provider fields (Year, Poster, Genre,
	// Director, ...) verbatim. The application passes them through opaquely.
	Metadata map[string]string `bson:"metadata,omitempty" json:"-"`
}

// CollectionName returns the name of the document-store collection
// associated with the Movie model.
func (m Movie) CollectionName() string {
	return "movies"
}

// Year is a convenience accessor for the passthrough "Year" metadata field.
// Returns an empty string when the provider did not supply one.
func (m Movie) Year() string {
	return m.Metadata["Year"]
}

// Poster is a convenience accessor for the passthrough "Poster" metadata
// field. Returns an empty string when the provider did not supply one.
func (m Movie) Poster() string {
	return m.Metadata["Poster"]
}
