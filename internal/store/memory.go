package store

import (
	"context"
	"sync"
)

// MemStore is a JobStore backed by process memory, used when no Postgres/
// Redis connection is configured (the teacher's "demo mode" fallback in
// cmd/server/main.go). State does not survive a restart.
type MemStore struct {
	mu      sync.Mutex
	jobs    map[string]*Job
	layouts map[string][]string
}

func NewMemStore() *MemStore {
	return &MemStore{
		jobs:    make(map[string]*Job),
		layouts: make(map[string][]string),
	}
}

func (m *MemStore) CreateJob(job *Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *job
	cp.Words = append([]string(nil), job.Words...)
	m.jobs[job.ID] = &cp
	return nil
}

func (m *MemStore) GetJob(id string) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *job
	return &cp, nil
}

func (m *MemStore) ListJobs() ([]*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	jobs := make([]*Job, 0, len(m.jobs))
	for _, job := range m.jobs {
		cp := *job
		jobs = append(jobs, &cp)
	}
	return jobs, nil
}

func (m *MemStore) UpdateJobStatus(id string, status Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return ErrJobNotFound
	}
	job.Status = status
	return nil
}

func (m *MemStore) AppendLayoutPage(_ context.Context, jobID string, layoutJSON string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	page := append(m.layouts[jobID], layoutJSON)
	if len(page) > layoutPageCap {
		page = page[len(page)-layoutPageCap:]
	}
	m.layouts[jobID] = page
	return nil
}

func (m *MemStore) ReadLayoutPage(_ context.Context, jobID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.layouts[jobID]...), nil
}

func (m *MemStore) Close() error { return nil }
