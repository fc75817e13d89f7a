package session

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStore persists sessions in a MongoDB collection. Timestamps are
// assigned with $currentDate so the database is the clock authority, not
// the application host.
type MongoStore[Data any] struct {
	col *mongo.Collection
}

var _ Store[any] = (*MongoStore[any])(nil)

// NewMongoStore creates a store over the given collection.
func NewMongoStore[Data any](col *mongo.Collection) *MongoStore[Data] {
	return &MongoStore[Data]{col: col}
}

type sessionDoc[Data any] struct {
	ID             string    `bson:"_id"`
	ChatData       Data      `bson:"chatData"`
	Status         Status    `bson:"status"`
	EndReason      string    `bson:"endReason,omitempty"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
	LastAccessedAt time.Time `bson:"lastAccessedAt"`
}

func (d sessionDoc[Data]) toSession() Session[Data] {
	return Session[Data]{
		ID:             d.ID,
		Data:           d.ChatData,
		Status:         d.Status,
		EndReason:      d.EndReason,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		LastAccessedAt: d.LastAccessedAt,
	}
}

func (s *MongoStore[Data]) Get(ctx context.Context, id string) (*Session[Data], error) {
	var doc sessionDoc[Data]
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	sess := doc.toSession()
	return &sess, nil
}

func (s *MongoStore[Data]) Create(ctx context.Context, sess *Session[Data]) error {
	// Upsert instead of insert so timestamps can come from $currentDate;
	// the random nonce in the id makes overwriting an existing record a
	// practical impossibility.
	_, err := s.col.UpdateByID(ctx, sess.ID, bson.M{
		"$setOnInsert": bson.M{
			"chatData": sess.Data,
			"status":   sess.Status,
		},
		"$currentDate": bson.M{
			"createdAt":      true,
			"updatedAt":      true,
			"lastAccessedAt": true,
		},
	}, options.UpdateOne().SetUpsert(true))
	return err
}

func (s *MongoStore[Data]) SetData(ctx context.Context, id string, data Data) error {
	res, err := s.col.UpdateByID(ctx, id, bson.M{
		"$set":         bson.M{"chatData": data},
		"$currentDate": bson.M{"updatedAt": true},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore[Data]) Touch(ctx context.Context, id string) error {
	res, err := s.col.UpdateByID(ctx, id, bson.M{
		"$currentDate": bson.M{"lastAccessedAt": true},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore[Data]) SetStatus(ctx context.Context, id string, status Status, reason string) error {
	set := bson.M{"status": status}
	if reason != "" {
		set["endReason"] = reason
	}
	res, err := s.col.UpdateByID(ctx, id, bson.M{
		"$set":         set,
		"$currentDate": bson.M{"updatedAt": true},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore[Data]) Delete(ctx context.Context, id string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *MongoStore[Data]) DeleteIfIdleSince(ctx context.Context, id string, cutoff time.Time) (bool, error) {
	// Single conditional delete: a concurrent keep-alive that bumped
	// either timestamp past the cutoff turns this into a no-op.
	res, err := s.col.DeleteOne(ctx, bson.M{
		"_id":            id,
		"updatedAt":      bson.M{"$lte": cutoff},
		"lastAccessedAt": bson.M{"$lte": cutoff},
	})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *MongoStore[Data]) List(ctx context.Context, limit int) ([]Session[Data], error) {
	cur, err := s.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []sessionDoc[Data]
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	sessions := make([]Session[Data], len(docs))
	for i, doc := range docs {
		sessions[i] = doc.toSession()
	}
	return sessions, nil
}
