package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/weblynx/backoffice_backend/models"
)

// MemStore is an in-memory RecordStore used in tests. Records keep insertion
// order per collection so assertions are deterministic.
type MemStore struct {
	mu     sync.RWMutex
	data   map[string]map[string]models.Record
	order  map[string][]string
	nextID int

	// FailCreate makes Create fail for the named collection, for exercising
	// partial-failure paths in two-write workflows.
	FailCreate map[string]bool
}

// NewMemStore returns an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{
		data:       make(map[string]map[string]models.Record),
		order:      make(map[string][]string),
		FailCreate: make(map[string]bool),
	}
}

func (s *MemStore) ListAll(ctx context.Context, collection string) ([]models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]models.Record, 0, len(s.order[collection]))
	for _, id := range s.order[collection] {
		records = append(records, s.data[collection][id].Clone())
	}
	return records, nil
}

func (s *MemStore) GetOne(ctx context.Context, collection, id string) (models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.data[collection][id]
	if !ok {
		return nil, fmt.Errorf("no document found with id %s in %s", id, collection)
	}
	return record.Clone(), nil
}

func (s *MemStore) Create(ctx context.Context, collection string, fields models.Record) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailCreate[collection] {
		return "", fmt.Errorf("create failed for %s", collection)
	}

	s.nextID++
	id := fmt.Sprintf("rec-%d", s.nextID)

	record := models.Record{"id": id}
	for k, v := range fields {
		if k == "id" || k == "_id" {
			continue
		}
		record[k] = v
	}

	if s.data[collection] == nil {
		s.data[collection] = make(map[string]models.Record)
	}
	s.data[collection][id] = record
	s.order[collection] = append(s.order[collection], id)
	return id, nil
}

func (s *MemStore) Update(ctx context.Context, collection, id string, fields models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.data[collection][id]
	if !ok {
		return fmt.Errorf("no document found with id %s in %s", id, collection)
	}
	for k, v := range fields {
		if k == "id" || k == "_id" {
			continue
		}
		record[k] = v
	}
	return nil
}

func (s *MemStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[collection][id]; !ok {
		return fmt.Errorf("no document found with id %s in %s", id, collection)
	}
	delete(s.data[collection], id)
	for i, existing := range s.order[collection] {
		if existing == id {
			s.order[collection] = append(s.order[collection][:i], s.order[collection][i+1:]...)
			break
		}
	}
	return nil
}
