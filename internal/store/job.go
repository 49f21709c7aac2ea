package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// CreateJob inserts a new job row.
func (s *Store) CreateJob(job *Job) error {
	wordsJSON, err := json.Marshal(job.Words)
	if err != nil {
		return fmt.Errorf("store: marshal words: %w", err)
	}

	_, err = s.DB.Exec(`
		INSERT INTO jobs (id, words, policy, constraints, strategy, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, job.ID, wordsJSON, job.PolicyJSON, job.ConstraintsJSON, job.Strategy, job.Status, job.CreatedAt, job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("store: create job: %w", err)
	}
	return nil
}

// GetJob fetches a single job by id. Returns (nil, nil) if not found.
func (s *Store) GetJob(id string) (*Job, error) {
	job := &Job{ID: id}
	var wordsJSON []byte

	err := s.DB.QueryRow(`
		SELECT words, policy, constraints, strategy, status, created_at, updated_at
		FROM jobs WHERE id = $1
	`, id).Scan(&wordsJSON, &job.PolicyJSON, &job.ConstraintsJSON, &job.Strategy, &job.Status, &job.CreatedAt, &job.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get job: %w", err)
	}

	if err := json.Unmarshal(wordsJSON, &job.Words); err != nil {
		return nil, fmt.Errorf("store: unmarshal words: %w", err)
	}
	return job, nil
}

// ListJobs returns every job, most recently created first.
func (s *Store) ListJobs() ([]*Job, error) {
	rows, err := s.DB.Query(`
		SELECT id, words, policy, constraints, strategy, status, created_at, updated_at
		FROM jobs ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("store: list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*Job
	for rows.Next() {
		job := &Job{}
		var wordsJSON []byte
		if err := rows.Scan(&job.ID, &wordsJSON, &job.PolicyJSON, &job.ConstraintsJSON, &job.Strategy, &job.Status, &job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, fmt.Errorf("store: scan job: %w", err)
		}
		if err := json.Unmarshal(wordsJSON, &job.Words); err != nil {
			return nil, fmt.Errorf("store: unmarshal words: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// UpdateJobStatus sets a job's status and bumps its updated_at.
func (s *Store) UpdateJobStatus(id string, status Status) error {
	res, err := s.DB.Exec(`
		UPDATE jobs SET status = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("store: update job status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: update job status: %w", err)
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}
