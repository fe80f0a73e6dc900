package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type TaskRepo struct {
	collection *mongo.Collection
}

func NewTaskRepo(collection *mongo.Collection) *TaskRepo {
	return &TaskRepo{collection: collection}
}

// ListByOwner returns every task whose userEmail matches, in store-native
// order. No sort is applied.
func (r *TaskRepo) ListByOwner(ctx context.Context, email string) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []bson.M
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Insert stores the document exactly as given; no schema is enforced.
func (r *TaskRepo) Insert(ctx context.Context, task bson.M) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, task)
}

// UpdatePartial merge-patches the given fields onto the task matched by id.
// A zero match count is not an error.
func (r *TaskRepo) UpdatePartial(ctx context.Context, id bson.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	return r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
}

// DeleteByID removes at most one task and reports how many were removed.
func (r *TaskRepo) DeleteByID(ctx context.Context, id bson.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// Watch opens a change stream over the task collection covering inserts,
// updates and deletes.
func (r *TaskRepo) Watch(ctx context.Context) (*mongo.ChangeStream, error) {
	return r.collection.Watch(ctx, mongo.Pipeline{})
}

// EnsureIndexes creates necessary indexes for the task collection
func (r *TaskRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userEmail", Value: 1}},
	})
	return err
}
