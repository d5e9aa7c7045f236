package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mcubed/cubed/internal/model"
	"github.com/mcubed/cubed/internal/storage"
)

// Storage is a Redis-backed document store. Each collection is one HASH of id to BSON
// document; filtering happens client side.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultConfig().KeyPrefix
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Ensure Storage implements the interface
var _ storage.Driver = (*Storage)(nil)

func (s *Storage) Configured() bool {
	return true
}

func (s *Storage) key(collection string) string {
	return collectionKey(s.cfg.KeyPrefix, collection)
}

func (s *Storage) Find(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	entries, err := s.client.HGetAll(ctx, s.key(collection)).Result()
	if err != nil {
		return nil, err
	}

	// Object IDs sort by creation time, which keeps results in insertion order
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]bson.M, 0, len(ids))
	for _, id := range ids {
		doc, err := unmarshalDocument([]byte(entries[id]))
		if err != nil {
			return nil, err
		}
		if storage.Matches(doc, filter) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (s *Storage) FindOne(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	if id, ok := filter[storage.IDField].(string); ok && len(filter) == 1 {
		data, err := s.client.HGet(ctx, s.key(collection), id).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil, model.ErrNotFound
			}
			return nil, err
		}
		return unmarshalDocument(data)
	}

	docs, err := s.Find(ctx, collection, filter)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, model.ErrNotFound
	}
	return docs[0], nil
}

func (s *Storage) Insert(ctx context.Context, collection string, doc bson.M) (string, error) {
	id := storage.NewID()
	stored := storage.CopyDocument(doc)
	stored[storage.IDField] = id

	data, err := bson.Marshal(stored)
	if err != nil {
		return "", err
	}
	if err := s.client.HSet(ctx, s.key(collection), id, data).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Storage) Update(ctx context.Context, collection, id string, fields bson.M) error {
	key := s.key(collection)

	// Optimistic read-modify-write; a concurrent writer aborts the transaction
	return s.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.HGet(ctx, key, id).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil
			}
			return err
		}
		doc, err := unmarshalDocument(data)
		if err != nil {
			return err
		}
		storage.Merge(doc, fields)

		out, err := bson.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, id, out)
			return nil
		})
		return err
	}, key)
}

func (s *Storage) Delete(ctx context.Context, collection, id string) error {
	return s.client.HDel(ctx, s.key(collection), id).Err()
}

func (s *Storage) Drop(ctx context.Context, collection string) error {
	return s.client.Del(ctx, s.key(collection)).Err()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Close()
}

func unmarshalDocument(data []byte) (bson.M, error) {
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("corrupt document: %w", err)
	}
	return doc, nil
}
