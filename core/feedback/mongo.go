package feedback

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoRepository stores feedback in a MongoDB collection.
type MongoRepository struct {
	col *mongo.Collection
}

var _ Repository = (*MongoRepository)(nil)

// NewMongoRepository creates a repository over the given collection.
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, fb *Feedback) error {
	_, err := r.col.InsertOne(ctx, fb)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", ErrDuplicateID, fb.ID)
	}
	return err
}

func (r *MongoRepository) List(ctx context.Context, sessionID string, limit int) ([]Feedback, error) {
	filter := bson.M{}
	if sessionID != "" {
		filter["sessionId"] = sessionID
	}

	cur, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []Feedback
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
