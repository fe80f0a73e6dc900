package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type UserRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(collection *mongo.Collection) *UserRepo {
	return &UserRepo{collection: collection}
}

// ListAll returns the full user collection, unsorted.
func (r *UserRepo) ListAll(ctx context.Context) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []bson.M
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// InsertIfAbsent inserts the user unless a document with the same email
// already exists, in which case it reports existed=true without writing.
// Check-then-insert is not atomic: two concurrent inserts with the same email
// can both pass the check. Accepted limitation at this scale.
func (r *UserRepo) InsertIfAbsent(ctx context.Context, user bson.M) (result *mongo.InsertOneResult, existed bool, err error) {
	email, _ := user["email"].(string)

	err = r.collection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil, true, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, false, err
	}

	result, err = r.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, false, err
	}
	return result, false, nil
}
