package docstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"gamevault/internal/domain/repository"
	"gamevault/pkg/config"
)

// memoryConnector keeps collections in process. Documents are stored as
// JSON so readers never share memory with writers.
type memoryConnector struct {
	mu          sync.RWMutex
	collections map[string][]memoryRecord
}

func newMemoryConnector() *memoryConnector {
	return &memoryConnector{collections: make(map[string][]memoryRecord)}
}

// NewMemoryStore returns a pooled in-process store.
func NewMemoryStore() *Store {
	c := newMemoryConnector()
	return &Store{connector: c, mode: config.ConnectionModePooled, shared: memorySession{db: c}}
}

func (c *memoryConnector) backend() string {
	return "memory"
}

func (c *memoryConnector) connect(context.Context) (session, error) {
	return memorySession{db: c}, nil
}

type memorySession struct {
	db *memoryConnector
}

func (s memorySession) insert(ctx context.Context, collection string, document interface{}) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := json.Marshal(document)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	s.db.mu.Lock()
	s.db.collections[collection] = append(s.db.collections[collection], memoryRecord{id: id, data: data})
	s.db.mu.Unlock()

	return id, nil
}

func (s memorySession) findAll(ctx context.Context, collection string) ([]repository.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	stored := s.db.collections[collection]
	records := make([]repository.Record, 0, len(stored))
	for _, record := range stored {
		records = append(records, record)
	}
	return records, nil
}

func (s memorySession) ping(ctx context.Context) error {
	return ctx.Err()
}

func (s memorySession) close(context.Context) error {
	return nil
}

type memoryRecord struct {
	id   string
	data []byte
}

func (r memoryRecord) ID() string {
	return r.id
}

func (r memoryRecord) Decode(v interface{}) error {
	return json.Unmarshal(r.data, v)
}
