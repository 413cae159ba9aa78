package playerdb

import (
	"context"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// MemoryStore keeps records in insertion order for the life of the process.
type MemoryStore struct {
	mu      sync.Mutex
	records *linkedhashmap.Map
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: linkedhashmap.New()}
}

func (s *MemoryStore) Get(ctx context.Context, name string) (Record, bool, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.records == nil {
		return Record{}, false, ErrStoreClosed
	}
	v, found := s.records.Get(name)
	if !found {
		return Record{}, false, nil
	}
	return v.(Record), true, nil
}

func (s *MemoryStore) Put(ctx context.Context, rec Record) error {
	return s.PutAll(ctx, []Record{rec})
}

func (s *MemoryStore) PutAll(ctx context.Context, recs []Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.records == nil {
		return ErrStoreClosed
	}
	for _, rec := range recs {
		s.records.Put(rec.Name, rec)
	}
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.records == nil {
		return nil, ErrStoreClosed
	}
	out := make([]Record, 0, s.records.Size())
	s.records.Each(func(_ interface{}, value interface{}) {
		out = append(out, value.(Record))
	})
	return out, nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}
