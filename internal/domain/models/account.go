// internal/domain/models/account.go
package models

import "time"

// Account stores sign-in credentials, separate from the profile document
// the way the identity provider keeps credentials apart from app data.
type Account struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	EmailCI      string    `bson:"email_ci" json:"-"`
	PasswordHash []byte    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// Session is a persisted sign-in. A client that relaunches with a stored
// session id resumes as authenticated without re-entering credentials.
type Session struct {
	ID        string     `bson:"_id" json:"id"`
	AccountID string     `bson:"account_id" json:"accountId"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	RevokedAt *time.Time `bson:"revoked_at,omitempty" json:"revokedAt,omitempty"`
}

// PasswordReset records a reset request. Delivery of the reset email is
// handled outside this service.
type PasswordReset struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Token     string    `bson:"token" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
