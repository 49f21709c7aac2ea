package store

import (
	"context"
	"fmt"
)

// AppendLayoutPage pushes an already-serialized layout onto a job's Redis
// list, trimming it to the most recent layoutPageCap entries. No API or
// WebSocket path serves the list back to clients; a reconnecting client
// starts a new search.
func (s *Store) AppendLayoutPage(ctx context.Context, jobID string, layoutJSON string) error {
	key := layoutPageKey(jobID)
	pipe := s.Redis.Pipeline()
	pipe.RPush(ctx, key, layoutJSON)
	pipe.LTrim(ctx, key, -layoutPageCap, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store: append layout page: %w", err)
	}
	return nil
}

// ReadLayoutPage returns the cached layouts for a job, oldest first.
func (s *Store) ReadLayoutPage(ctx context.Context, jobID string) ([]string, error) {
	layouts, err := s.Redis.LRange(ctx, layoutPageKey(jobID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("store: read layout page: %w", err)
	}
	return layouts, nil
}

func layoutPageKey(jobID string) string {
	return "job:" + jobID + ":layouts"
}
