// internal/domain/models/user.go
package models

import "time"

// UserProfile is the per-account profile document, created once at sign-up
// and immutable afterward. The document id is the account id, so a profile
// lookup is a single get-by-id.
type UserProfile struct {
	ID        string    `bson:"_id" json:"id"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Country   string    `bson:"country" json:"country"`
	Birthdate string    `bson:"birthdate" json:"birthdate"`
	Email     string    `bson:"email" json:"email"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
