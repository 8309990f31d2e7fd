// internal/app/store/memberships/membershipstore.go
package membershipstore

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/gatherpoint/gatherpoint/internal/domain/faults"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages membership documents and the group member counter.
//
// Leaving a group writes a tombstone (leftAt) instead of deleting the
// document; membership checks therefore go through Membership.State, never
// through bare document existence.
//
// The group memberCount is maintained by read-modify-write with no
// transaction. Two concurrent joins for the same group can under- or
// over-count; see the known-race test. Whether that is acceptable by
// intent is an open question carried over from the system this replaces.
type Store struct {
	c      *mongo.Collection
	groups *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:      db.Collection("userGroupMemberships"),
		groups: db.Collection("groups"),
	}
}

var ErrNotAMember = errors.New("user is not a member of this group")

// Join records a membership with joinedAt=now and increments the group's
// memberCount. Rejoining after a leave overwrites the tombstone.
func (s *Store) Join(ctx context.Context, userID, groupID string) error {
	const op = "membershipstore.Join"

	now := time.Now().UTC()
	doc := bson.M{
		"userId":                    userID,
		"groupId":                   groupID,
		"joinedAt":                  now,
		"subscribedToNotifications": false,
	}
	id := models.MembershipID(userID, groupID)
	opts := options.Replace().SetUpsert(true)
	if _, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts); err != nil {
		return faults.FromMongo(op, err)
	}

	return s.adjustMemberCount(ctx, op, groupID, +1)
}

// Leave overwrites the membership document with a leftAt tombstone and
// decrements memberCount, floored at zero.
//
// The overwrite drops joinedAt and the notification flag, matching the
// behavior this store replaces.
func (s *Store) Leave(ctx context.Context, userID, groupID string) error {
	const op = "membershipstore.Leave"

	now := time.Now().UTC()
	doc := bson.M{
		"userId":  userID,
		"groupId": groupID,
		"leftAt":  now,
	}
	id := models.MembershipID(userID, groupID)
	opts := options.Replace().SetUpsert(true)
	if _, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts); err != nil {
		return faults.FromMongo(op, err)
	}

	return s.adjustMemberCount(ctx, op, groupID, -1)
}

// Get returns the raw membership document regardless of its state.
func (s *Store) Get(ctx context.Context, userID, groupID string) (models.Membership, error) {
	const op = "membershipstore.Get"

	var m models.Membership
	id := models.MembershipID(userID, groupID)
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return models.Membership{}, faults.FromMongo(op, err)
	}
	return m, nil
}

// CheckMembership returns the membership iff it is active. A tombstoned or
// malformed document returns NotFound, the same as no document at all.
func (s *Store) CheckMembership(ctx context.Context, userID, groupID string) (models.Membership, error) {
	const op = "membershipstore.CheckMembership"

	m, err := s.Get(ctx, userID, groupID)
	if err != nil {
		return models.Membership{}, err
	}
	if !m.Active() {
		return models.Membership{}, faults.NotFound(op, ErrNotAMember)
	}
	return m, nil
}

// IsMember reports whether the user has an active membership.
func (s *Store) IsMember(ctx context.Context, userID, groupID string) (bool, error) {
	_, err := s.CheckMembership(ctx, userID, groupID)
	if faults.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ToggleNotifications patches only the subscription flag. The membership
// document must exist.
func (s *Store) ToggleNotifications(ctx context.Context, userID, groupID string, subscribed bool) error {
	const op = "membershipstore.ToggleNotifications"

	id := models.MembershipID(userID, groupID)
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"subscribedToNotifications": subscribed},
	})
	if err != nil {
		return faults.FromMongo(op, err)
	}
	if res.MatchedCount == 0 {
		return faults.NotFound(op, ErrNotAMember)
	}
	return nil
}

// JoinedGroups returns the groups the user has an active membership in,
// most recently created first.
func (s *Store) JoinedGroups(ctx context.Context, userID string) ([]models.Group, error) {
	const op = "membershipstore.JoinedGroups"

	cur, err := s.c.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, faults.FromMongo(op, err)
	}
	defer cur.Close(ctx)

	var memberships []models.Membership
	if err := cur.All(ctx, &memberships); err != nil {
		return nil, faults.FromMongo(op, err)
	}

	groups := []models.Group{}
	for _, m := range memberships {
		if !m.Active() {
			continue
		}
		var g models.Group
		err := s.groups.FindOne(ctx, bson.M{"_id": m.GroupID}).Decode(&g)
		if err == mongo.ErrNoDocuments {
			continue // group deleted out from under the membership
		}
		if err != nil {
			return nil, faults.FromMongo(op, err)
		}
		groups = append(groups, g)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].CreatedAt.After(groups[j].CreatedAt)
	})
	return groups, nil
}

// adjustMemberCount applies the non-transactional read-then-write counter
// update. Decrements are floored at zero.
func (s *Store) adjustMemberCount(ctx context.Context, op, groupID string, delta int) error {
	var g struct {
		MemberCount int `bson:"memberCount"`
	}
	err := s.groups.FindOne(ctx, bson.M{"_id": groupID}).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil // membership without a group document; nothing to count
	}
	if err != nil {
		return faults.FromMongo(op, err)
	}

	next := g.MemberCount + delta
	if next < 0 {
		next = 0
	}
	_, err = s.groups.UpdateOne(ctx, bson.M{"_id": groupID}, bson.M{
		"$set": bson.M{"memberCount": next},
	})
	if err != nil {
		return faults.FromMongo(op, err)
	}
	return nil
}
