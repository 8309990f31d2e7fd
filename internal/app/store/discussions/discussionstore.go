// internal/app/store/discussions/discussionstore.go
package discussionstore

import (
	"context"
	"errors"
	"time"

	"github.com/gatherpoint/gatherpoint/internal/app/system/sanitize"
	"github.com/gatherpoint/gatherpoint/internal/domain/faults"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages discussion threads and their replies, plus the derived
// counters on the parent documents (group discussionCount, discussion
// replyCount). Counter updates are read-then-write, not transactional;
// the same caveat as the membership counter applies.
type Store struct {
	c       *mongo.Collection
	replies *mongo.Collection
	groups  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:       db.Collection("discussions"),
		replies: db.Collection("replies"),
		groups:  db.Collection("groups"),
	}
}

var errEmptyContent = errors.New("title and content are required")

// CreateDiscussion inserts a thread with replyCount=0 and increments the
// group's discussionCount. Returns the new discussion.
func (s *Store) CreateDiscussion(ctx context.Context, groupID, title, content, authorID, authorName string) (models.Discussion, error) {
	const op = "discussionstore.CreateDiscussion"

	title = sanitize.Text(title)
	content = sanitize.Text(content)
	if title == "" || content == "" {
		return models.Discussion{}, faults.InvalidArgument(op, errEmptyContent)
	}

	d := models.Discussion{
		ID:         primitive.NewObjectID().Hex(),
		GroupID:    groupID,
		Title:      title,
		Content:    content,
		AuthorID:   authorID,
		AuthorName: authorName,
		CreatedAt:  time.Now().UTC(),
		ReplyCount: 0,
	}
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Discussion{}, faults.FromMongo(op, err)
	}

	// Read-then-write counter bump on the parent group.
	var g struct {
		DiscussionCount int `bson:"discussionCount"`
	}
	err := s.groups.FindOne(ctx, bson.M{"_id": groupID}).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return d, nil
	}
	if err != nil {
		return models.Discussion{}, faults.FromMongo(op, err)
	}
	_, err = s.groups.UpdateOne(ctx, bson.M{"_id": groupID}, bson.M{
		"$set": bson.M{"discussionCount": g.DiscussionCount + 1},
	})
	if err != nil {
		return models.Discussion{}, faults.FromMongo(op, err)
	}

	return d, nil
}

// GetByID returns one discussion.
func (s *Store) GetByID(ctx context.Context, id string) (models.Discussion, error) {
	const op = "discussionstore.GetByID"

	var d models.Discussion
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return models.Discussion{}, faults.FromMongo(op, err)
	}
	return d, nil
}

// ListByGroup returns a group's discussions, newest first.
func (s *Store) ListByGroup(ctx context.Context, groupID string) ([]models.Discussion, error) {
	const op = "discussionstore.ListByGroup"

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"groupId": groupID}, opts)
	if err != nil {
		return nil, faults.FromMongo(op, err)
	}
	defer cur.Close(ctx)

	discussions := []models.Discussion{}
	if err := cur.All(ctx, &discussions); err != nil {
		return nil, faults.FromMongo(op, err)
	}
	return discussions, nil
}

// CreateReply inserts a reply and increments the discussion's replyCount.
// parentReplyID threads the reply under another; it is stored but not yet
// read anywhere.
func (s *Store) CreateReply(ctx context.Context, discussionID, content, authorID, authorName, parentReplyID string) (models.Reply, error) {
	const op = "discussionstore.CreateReply"

	content = sanitize.Text(content)
	if content == "" {
		return models.Reply{}, faults.InvalidArgument(op, errEmptyContent)
	}

	reply := models.Reply{
		ID:            primitive.NewObjectID().Hex(),
		DiscussionID:  discussionID,
		Content:       content,
		AuthorID:      authorID,
		AuthorName:    authorName,
		CreatedAt:     time.Now().UTC(),
		ParentReplyID: parentReplyID,
	}
	if _, err := s.replies.InsertOne(ctx, reply); err != nil {
		return models.Reply{}, faults.FromMongo(op, err)
	}

	var d struct {
		ReplyCount int `bson:"replyCount"`
	}
	err := s.c.FindOne(ctx, bson.M{"_id": discussionID}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return reply, nil
	}
	if err != nil {
		return models.Reply{}, faults.FromMongo(op, err)
	}
	_, err = s.c.UpdateOne(ctx, bson.M{"_id": discussionID}, bson.M{
		"$set": bson.M{"replyCount": d.ReplyCount + 1},
	})
	if err != nil {
		return models.Reply{}, faults.FromMongo(op, err)
	}

	return reply, nil
}

// ListReplies returns a discussion's replies in chronological reading
// order (oldest first).
func (s *Store) ListReplies(ctx context.Context, discussionID string) ([]models.Reply, error) {
	const op = "discussionstore.ListReplies"

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := s.replies.Find(ctx, bson.M{"discussionId": discussionID}, opts)
	if err != nil {
		return nil, faults.FromMongo(op, err)
	}
	defer cur.Close(ctx)

	replies := []models.Reply{}
	if err := cur.All(ctx, &replies); err != nil {
		return nil, faults.FromMongo(op, err)
	}
	return replies, nil
}
