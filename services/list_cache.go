package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"courseboard/model"
	"courseboard/utils"

	"github.com/redis/go-redis/v9"
)

// Visibility classes the list is cached under. Editors see drafts, everyone
// else does not, so the two views cache separately.
const (
	VisibilityEditor = "editor"
	VisibilityPublic = "public"
)

// ListCache keeps the announcements list in redis so the list view does not
// hit the database on every request. Entries are invalidated on any
// announcement mutation; the cache is strictly an accelerator and every
// error degrades to a database read.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListCache(redisURL string) (*ListCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &ListCache{
		client: client,
		ttl:    utils.GetEnvAsDuration("ANNOUNCEMENTS_CACHE_TTL", 5*time.Minute),
	}, nil
}

func listKey(class string) string {
	return fmt.Sprintf("announcements:list:%s", class)
}

// Get returns the cached list for a visibility class, or nil on a miss.
func (lc *ListCache) Get(ctx context.Context, class string) ([]*model.Announcement, error) {
	data, err := lc.client.Get(ctx, listKey(class)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		utils.TrackError("cache")
		return nil, fmt.Errorf("failed to read list cache: %v", err)
	}

	var items []*model.Announcement
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached list: %v", err)
	}
	return items, nil
}

// Set stores the list for a visibility class with the configured TTL.
func (lc *ListCache) Set(ctx context.Context, class string, items []*model.Announcement) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal list: %v", err)
	}

	if err := lc.client.Set(ctx, listKey(class), data, lc.ttl).Err(); err != nil {
		utils.TrackError("cache")
		return fmt.Errorf("failed to cache list: %v", err)
	}
	return nil
}

// Invalidate drops both visibility classes after a mutation.
func (lc *ListCache) Invalidate(ctx context.Context) error {
	err := lc.client.Del(ctx, listKey(VisibilityEditor), listKey(VisibilityPublic)).Err()
	if err != nil {
		utils.TrackError("cache")
		return fmt.Errorf("failed to invalidate list cache: %v", err)
	}
	return nil
}
