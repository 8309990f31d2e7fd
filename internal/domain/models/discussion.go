// internal/domain/models/discussion.go
package models

import "time"

// Discussion is a thread inside a group. AuthorName is denormalized onto
// the document so thread lists render without a user lookup.
type Discussion struct {
	ID         string    `bson:"_id" json:"id"`
	GroupID    string    `bson:"groupId" json:"groupId"`
	Title      string    `bson:"title" json:"title"`
	Content    string    `bson:"content" json:"content"`
	AuthorID   string    `bson:"authorId" json:"authorId"`
	AuthorName string    `bson:"authorName" json:"authorName"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	ReplyCount int       `bson:"replyCount" json:"replyCount"`
}

// Reply is a post within a discussion thread. ParentReplyID is carried for
// threaded replies but nothing reads it yet.
type Reply struct {
	ID            string    `bson:"_id" json:"id"`
	DiscussionID  string    `bson:"discussionId" json:"discussionId"`
	Content       string    `bson:"content" json:"content"`
	AuthorID      string    `bson:"authorId" json:"authorId"`
	AuthorName    string    `bson:"authorName" json:"authorName"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	ParentReplyID string    `bson:"parentReplyId,omitempty" json:"parentReplyId,omitempty"`
}
