package route

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoRepository stores route visits in a MongoDB collection.
type MongoRepository struct {
	col *mongo.Collection
}

var _ Repository = (*MongoRepository)(nil)

// NewMongoRepository creates a repository over the given collection.
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Append(ctx context.Context, v *Visit) error {
	_, err := r.col.InsertOne(ctx, v)
	return err
}

func (r *MongoRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]Visit, error) {
	cur, err := r.col.Find(ctx, bson.M{"sessionId": sessionID},
		options.Find().SetSort(bson.D{{Key: "visitedAt", Value: 1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var visits []Visit
	if err := cur.All(ctx, &visits); err != nil {
		return nil, err
	}
	return visits, nil
}
