// internal/domain/models/group.go
package models

import "time"

// Group categories. "ministries" are led communities; "forums" are open
// discussion boards.
const (
	CategoryMinistries = "ministries"
	CategoryForums     = "forums"
)

// Group represents a community group.
//
// NOTE:
//   - MemberCount and DiscussionCount are derived counters maintained by
//     read-modify-write from the membership and discussion stores. They
//     are not transactional with the documents they count.
type Group struct {
	ID          string `bson:"_id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image" json:"image"`
	Category    string `bson:"category" json:"category"` // "ministries" | "forums"
	Country     string `bson:"country" json:"country"`
	Language    string `bson:"language" json:"language"`

	MemberCount     int `bson:"memberCount" json:"memberCount"`
	DiscussionCount int `bson:"discussionCount" json:"discussionCount"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
}
