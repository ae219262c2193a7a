package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user, assigned by the
	// document store on insert. It is not exposed via JSON and is used only
	// at the persistence and session layers.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	// Username is the unique login identifier of the user.
	// Uniqueness is enforced by the store's index on this field.
	Username string `bson:"username" json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `bson:"password_hash" json:"-"`
}

// CollectionName returns the name of the document-store collection
// associated with the User model.
func (u User) CollectionName() string {
	return "users"
}
