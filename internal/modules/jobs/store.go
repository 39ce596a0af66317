package jobs

import (
	"context"
	"sync"
)

// JobStore keeps registered translation jobs. The default implementation
// is an in-memory map: jobs do not survive a process restart and are never
// evicted. That volatility is a stated limitation of the current design,
// not a guarantee to paper over — a durable implementation can be swapped
// in without touching the polling contract.
type JobStore interface {
	Save(ctx context.Context, job *TranslationJob) error
	Get(ctx context.Context, id string) (*TranslationJob, error)
}

type memoryStore struct {
	mu   sync.RWMutex
	jobs map[string]TranslationJob
}

func NewMemoryStore() JobStore {
	return &memoryStore{jobs: make(map[string]TranslationJob)}
}

func (s *memoryStore) Save(ctx context.Context, job *TranslationJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = *job
	return nil
}

func (s *memoryStore) Get(ctx context.Context, id string) (*TranslationJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	return &job, nil
}
