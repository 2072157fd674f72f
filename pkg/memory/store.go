package memory

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Store is the long-term memory contract. Absence of a record is a normal
// outcome signaled by the boolean, never an error; errors are reserved for
// backing-store failures.
type Store interface {
	Save(userID string, record Record) error
	Get(userID string) (Record, bool, error)
	Delete(userID string) error
	List() (map[string]Record, error)
}

// InMemoryStore keeps records in process memory. Volatile by design: no
// TTL, no durability. Concurrent writers for the same key are resolved
// last-write-wins.
type InMemoryStore struct {
	logger *log.Logger

	mu      sync.RWMutex
	records map[string]Record
}

var _ Store = (*InMemoryStore)(nil)

func NewInMemoryStore(logger *log.Logger) *InMemoryStore {
	return &InMemoryStore{
		logger:  logger,
		records: make(map[string]Record),
	}
}

// Save overwrites any existing record for userID.
func (s *InMemoryStore) Save(userID string, record Record) error {
	s.mu.Lock()
	s.records[userID] = record.clone()
	s.mu.Unlock()
	s.logger.Info("Saved memory record", "user_id", userID, "preferences", len(record.UserPreferences), "patterns", len(record.EmotionalPatterns), "facts", len(record.MemorableFacts))
	return nil
}

func (s *InMemoryStore) Get(userID string) (Record, bool, error) {
	s.mu.RLock()
	record, ok := s.records[userID]
	s.mu.RUnlock()
	if !ok {
		return Record{}, false, nil
	}
	return record.clone(), true, nil
}

func (s *InMemoryStore) Delete(userID string) error {
	s.mu.Lock()
	delete(s.records, userID)
	s.mu.Unlock()
	s.logger.Info("Deleted memory record", "user_id", userID)
	return nil
}

func (s *InMemoryStore) List() (map[string]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Record, len(s.records))
	for id, record := range s.records {
		out[id] = record.clone()
	}
	return out, nil
}
