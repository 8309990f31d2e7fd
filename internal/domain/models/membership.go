// internal/domain/models/membership.go
package models

import "time"

// MembershipState is the tagged state of a membership document. Leaving a
// group writes a tombstone (LeftAt) rather than deleting the document, so
// mere existence of the record never means the user is a member.
type MembershipState int

const (
	// MembershipActive: JoinedAt set and no LeftAt tombstone.
	MembershipActive MembershipState = iota
	// MembershipLeft: a LeftAt tombstone is present.
	MembershipLeft
	// MembershipInvalid: no JoinedAt and no LeftAt; the document carries no
	// usable state (e.g., a partial overwrite).
	MembershipInvalid
)

// Membership joins a user to a group. Exactly one document per
// (userId, groupId); the document id is the composite "userID_groupID".
type Membership struct {
	ID                        string     `bson:"_id" json:"-"`
	UserID                    string     `bson:"userId" json:"userId"`
	GroupID                   string     `bson:"groupId" json:"groupId"`
	JoinedAt                  *time.Time `bson:"joinedAt,omitempty" json:"joinedAt,omitempty"`
	LeftAt                    *time.Time `bson:"leftAt,omitempty" json:"leftAt,omitempty"`
	SubscribedToNotifications bool       `bson:"subscribedToNotifications" json:"subscribedToNotifications"`
}

// MembershipID returns the composite document id for (userID, groupID).
func MembershipID(userID, groupID string) string {
	return userID + "_" + groupID
}

// State classifies the document. This is the single place the tombstone
// rule lives; every "is this user a member?" check goes through it.
func (m Membership) State() MembershipState {
	if m.LeftAt != nil {
		return MembershipLeft
	}
	if m.JoinedAt == nil {
		return MembershipInvalid
	}
	return MembershipActive
}

// Active reports whether the membership is currently in effect.
func (m Membership) Active() bool {
	return m.State() == MembershipActive
}
