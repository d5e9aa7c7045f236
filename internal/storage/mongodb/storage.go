package mongodb

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mcubed/cubed/internal/model"
	"github.com/mcubed/cubed/internal/storage"
)

// Storage is a MongoDB-backed document store. The client is created on first use.
type Storage struct {
	cfg Config

	mu     sync.Mutex
	client *mongo.Client
}

// New creates a MongoDB storage. No connection is attempted until the first operation.
func New(cfg Config) *Storage {
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = DefaultConfig().ConnectTimeout
	}
	return &Storage{cfg: cfg}
}

// Ensure Storage implements the interface
var _ storage.Driver = (*Storage)(nil)

// Configured reports whether both a connection URL and a database name were supplied
func (s *Storage) Configured() bool {
	return s.cfg.URL != "" && s.cfg.Database != ""
}

func (s *Storage) database(ctx context.Context) (*mongo.Database, error) {
	if !s.Configured() {
		return nil, model.ErrStoreNotConfigured
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		opts := options.Client().
			ApplyURI(s.cfg.URL).
			SetConnectTimeout(s.cfg.ConnectTimeout)
		client, err := mongo.Connect(ctx, opts)
		if err != nil {
			return nil, err
		}
		s.client = client
	}
	return s.client.Database(s.cfg.Database), nil
}

func (s *Storage) collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := s.database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

func (s *Storage) Find(ctx context.Context, name string, filter bson.M) ([]bson.M, error) {
	coll, err := s.collection(ctx, name)
	if err != nil {
		return nil, err
	}
	f, ok := toNativeFilter(filter)
	if !ok {
		return []bson.M{}, nil
	}

	cursor, err := coll.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, fromNativeDocument(doc))
	}
	return out, nil
}

func (s *Storage) FindOne(ctx context.Context, name string, filter bson.M) (bson.M, error) {
	coll, err := s.collection(ctx, name)
	if err != nil {
		return nil, err
	}
	f, ok := toNativeFilter(filter)
	if !ok {
		return nil, model.ErrNotFound
	}

	var doc bson.M
	if err := coll.FindOne(ctx, f).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return fromNativeDocument(doc), nil
}

func (s *Storage) Insert(ctx context.Context, name string, doc bson.M) (string, error) {
	coll, err := s.collection(ctx, name)
	if err != nil {
		return "", err
	}

	oid := primitive.NewObjectID()
	stored := storage.CopyDocument(doc)
	stored[storage.IDField] = oid
	if _, err := coll.InsertOne(ctx, stored); err != nil {
		return "", err
	}
	return oid.Hex(), nil
}

func (s *Storage) Update(ctx context.Context, name, id string, fields bson.M) error {
	coll, err := s.collection(ctx, name)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	set := storage.CopyDocument(fields)
	delete(set, storage.IDField)
	_, err = coll.UpdateOne(ctx, bson.M{storage.IDField: oid}, bson.M{"$set": set})
	return err
}

func (s *Storage) Delete(ctx context.Context, name, id string) error {
	coll, err := s.collection(ctx, name)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = coll.DeleteOne(ctx, bson.M{storage.IDField: oid})
	return err
}

func (s *Storage) Drop(ctx context.Context, name string) error {
	coll, err := s.collection(ctx, name)
	if err != nil {
		return err
	}
	err = coll.Drop(ctx)
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceNotFound" {
		return nil
	}
	return err
}

func (s *Storage) Ping(ctx context.Context) error {
	db, err := s.database(ctx)
	if err != nil {
		return err
	}
	return db.Client().Ping(ctx, readpref.Primary())
}

// Close disconnects the client if one was ever created
func (s *Storage) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	return err
}

// toNativeFilter converts a string "_id" into an ObjectID. It reports false when the
// identifier cannot be a valid ObjectID, in which case nothing can match.
func toNativeFilter(filter bson.M) (bson.M, bool) {
	id, ok := filter[storage.IDField].(string)
	if !ok {
		return filter, true
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}
	out := storage.CopyDocument(filter)
	out[storage.IDField] = oid
	return out, true
}

func fromNativeDocument(doc bson.M) bson.M {
	if oid, ok := doc[storage.IDField].(primitive.ObjectID); ok {
		doc[storage.IDField] = oid.Hex()
	}
	return doc
}
