// Package store persists generation jobs to Postgres and caches recently
// emitted layout pages in Redis, following the connection-pool tuning and
// schema-init conventions of the teacher's internal/db package.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// ErrJobNotFound is returned by JobStore implementations when
// UpdateJobStatus references a job id that doesn't exist. GetJob reports a
// missing job as (nil, nil) instead.
var ErrJobNotFound = errors.New("store: job not found")

// Status is the lifecycle state of a Job.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
)

// Job is a persisted record of one generation run.
type Job struct {
	ID              string
	Words           []string
	PolicyJSON      []byte
	ConstraintsJSON []byte
	Strategy        string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// layoutPageCap bounds how many of the most recently emitted layouts are
// kept per job, per SPEC_FULL's design default.
const layoutPageCap = 50

// JobStore is the persistence surface the API and realtime hub depend on.
// Both the Postgres-backed Store and the in-memory fallback used when no
// database is configured implement it.
type JobStore interface {
	CreateJob(job *Job) error
	GetJob(id string) (*Job, error)
	ListJobs() ([]*Job, error)
	UpdateJobStatus(id string, status Status) error
	AppendLayoutPage(ctx context.Context, jobID string, layoutJSON string) error
	ReadLayoutPage(ctx context.Context, jobID string) ([]string, error)
	Close() error
}

// Store is the Postgres + Redis backed JobStore.
type Store struct {
	DB    *sql.DB
	Redis *redis.Client
}

// New opens and pings both backends, tuning the Postgres pool the same way
// the teacher's internal/db.New does.
func New(postgresURL, redisURL string) (*Store, error) {
	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("store: failed to connect to postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("store: failed to ping postgres: %w", err)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("store: failed to parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("store: failed to ping redis: %w", err)
	}

	return &Store{DB: db, Redis: rdb}, nil
}

func (s *Store) Close() error {
	if err := s.DB.Close(); err != nil {
		return err
	}
	return s.Redis.Close()
}

// InitSchema creates the jobs table if it doesn't already exist.
func (s *Store) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS jobs (
		id VARCHAR(36) PRIMARY KEY,
		words JSONB NOT NULL,
		policy JSONB NOT NULL,
		constraints JSONB NOT NULL,
		strategy VARCHAR(20) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status);
	CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs(created_at);
	`
	_, err := s.DB.Exec(schema)
	return err
}
