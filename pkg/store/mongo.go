package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists layouts in a MongoDB collection, one document
// per layout keyed by name.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB with the given URI and uses the
// "layouts" collection of the named database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	coll := client.Database(database).Collection("layouts")

	// Layout names are the lookup key.
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	return &MongoStore{client: client, coll: coll}, nil
}

// Put saves the layout, replacing any previous version.
func (s *MongoStore) Put(ctx context.Context, l *Layout) error {
	prev, err := s.Get(ctx, nameOf(l))
	if err != nil && err != ErrNotFound {
		return err
	}
	if err := prepare(l, prev); err != nil {
		return err
	}

	_, err = s.coll.ReplaceOne(ctx,
		bson.M{"name": l.Name},
		l,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Get loads the layout with the given name.
func (s *MongoStore) Get(ctx context.Context, name string) (*Layout, error) {
	var l Layout
	err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&l)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns all layouts sorted by name.
func (s *MongoStore) List(ctx context.Context) ([]*Layout, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*Layout
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the layout with the given name.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
