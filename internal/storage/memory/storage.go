package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mcubed/cubed/internal/model"
	"github.com/mcubed/cubed/internal/storage"
)

// Storage is an in-memory document store. Documents keep insertion order per collection.
type Storage struct {
	mu sync.RWMutex

	collections map[string]*collection
}

type collection struct {
	order []string
	docs  map[string]bson.M
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		collections: make(map[string]*collection),
	}
}

// Ensure Storage implements the interface
var _ storage.Driver = (*Storage)(nil)

func (s *Storage) Configured() bool {
	return true
}

func (s *Storage) Find(ctx context.Context, name string, filter bson.M) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return []bson.M{}, nil
	}
	out := make([]bson.M, 0, len(c.order))
	for _, id := range c.order {
		doc := c.docs[id]
		if storage.Matches(doc, filter) {
			out = append(out, storage.CopyDocument(doc))
		}
	}
	return out, nil
}

func (s *Storage) FindOne(ctx context.Context, name string, filter bson.M) (bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return nil, model.ErrNotFound
	}
	for _, id := range c.order {
		doc := c.docs[id]
		if storage.Matches(doc, filter) {
			return storage.CopyDocument(doc), nil
		}
	}
	return nil, model.ErrNotFound
}

func (s *Storage) Insert(ctx context.Context, name string, doc bson.M) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		c = &collection{docs: make(map[string]bson.M)}
		s.collections[name] = c
	}
	id := storage.NewID()
	stored := storage.CopyDocument(doc)
	stored[storage.IDField] = id
	c.docs[id] = stored
	c.order = append(c.order, id)
	return id, nil
}

func (s *Storage) Update(ctx context.Context, name, id string, fields bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		return nil
	}
	doc, ok := c.docs[id]
	if !ok {
		return nil
	}
	storage.Merge(doc, fields)
	return nil
}

func (s *Storage) Delete(ctx context.Context, name, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		return nil
	}
	if _, ok := c.docs[id]; !ok {
		return nil
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Storage) Drop(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections, name)
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return nil
}

func (s *Storage) Close(ctx context.Context) error {
	return nil
}
