// Copyright (c) 2026 Mustafa Zahid Official. All rights reserved.
// Author: Shahzada Shoaib

package media

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/constants"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/pkg/slice"
)

// Queue is the transport between the request path (Enqueue) and the janitor
// worker. Batches are slices of media URLs awaiting deletion.
type Queue interface {
	// Push appends a batch. It may fail; the janitor logs and drops the
	// batch rather than surfacing the failure to the request path.
	Push(ctx context.Context, urls []string) error

	// Pop blocks briefly waiting for the next batch. It returns (nil, nil)
	// when no batch arrived within the wait window.
	Pop(ctx context.Context) ([]string, error)
}

// popWait is how long a single Pop blocks before yielding back to the
// janitor loop so it can observe context cancellation.
const popWait = 2 * time.Second

// enqueueTimeout bounds the queue push on the request path; a slow queue
// must not stall a document-delete response.
const enqueueTimeout = 2 * time.Second

// # Redis Queue

// RedisQueue is the production [Queue]: a Redis list, so pending cleanups
// survive process restarts.
type RedisQueue struct {
	client *redis.Client
}

// NewRedisQueue wraps an established Redis client.
func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{client: client}
}

// Push implements [Queue].
func (queue *RedisQueue) Push(ctx context.Context, urls []string) error {
	payload, err := json.Marshal(urls)
	if err != nil {
		return err
	}
	return queue.client.RPush(ctx, constants.RedisKeyMediaCleanup, payload).Err()
}

// Pop implements [Queue].
func (queue *RedisQueue) Pop(ctx context.Context) ([]string, error) {
	result, err := queue.client.BLPop(ctx, popWait, constants.RedisKeyMediaCleanup).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// BLPop returns [key, value].
	var urls []string
	if err := json.Unmarshal([]byte(result[1]), &urls); err != nil {
		return nil, err
	}
	return urls, nil
}

// # Memory Queue

// MemoryQueue is an in-process [Queue] for tests and local development.
type MemoryQueue struct {
	batches chan []string
}

// NewMemoryQueue creates a queue buffering up to capacity batches.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{batches: make(chan []string, capacity)}
}

// Push implements [Queue]. A full queue rejects the batch instead of blocking.
func (queue *MemoryQueue) Push(ctx context.Context, urls []string) error {
	select {
	case queue.batches <- urls:
		return nil
	default:
		return errors.New("media: cleanup queue full")
	}
}

// Pop implements [Queue].
func (queue *MemoryQueue) Pop(ctx context.Context) ([]string, error) {
	select {
	case urls := <-queue.batches:
		return urls, nil
	case <-time.After(popWait):
		return nil, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// # Janitor

// Janitor is the detached cleanup worker. Document deletion enqueues the
// harvested media URLs and responds immediately; the janitor deletes them
// in the background and only ever reports outcomes through its logger.
//
// Orphaned media (a batch lost to a failed push, or deletions that keep
// failing) costs storage, not correctness.
type Janitor struct {
	queue  Queue
	store  Store
	logger *slog.Logger
}

// NewJanitor wires the queue to the media store.
func NewJanitor(queue Queue, store Store, logger *slog.Logger) *Janitor {
	return &Janitor{queue: queue, store: store, logger: logger}
}

// Enqueue schedules best-effort deletion of the given media URLs. It never
// blocks beyond a short timeout and never returns an error — the caller's
// operation has already committed and must not be affected.
func (janitor *Janitor) Enqueue(urls []string) {
	urls = slice.Unique(slice.NonEmpty(urls))
	if len(urls) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
	defer cancel()

	if err := janitor.queue.Push(ctx, urls); err != nil {
		janitor.logger.Error("media_cleanup_enqueue_failed",
			slog.Int("url_count", len(urls)),
			slog.Any("error", err),
		)
		return
	}

	janitor.logger.Debug("media_cleanup_enqueued", slog.Int("url_count", len(urls)))
}

// Run consumes the queue until ctx is cancelled. Intended to be started once
// from main as a goroutine.
func (janitor *Janitor) Run(ctx context.Context) {
	janitor.logger.Info("media_janitor_started")

	for {
		select {
		case <-ctx.Done():
			janitor.logger.Info("media_janitor_stopped")
			return
		default:
		}

		urls, err := janitor.queue.Pop(ctx)
		if err != nil {
			if ctx.Err() != nil {
				janitor.logger.Info("media_janitor_stopped")
				return
			}
			janitor.logger.Error("media_cleanup_pop_failed", slog.Any("error", err))
			// Back off so a broken queue doesn't spin the loop.
			time.Sleep(popWait)
			continue
		}
		if len(urls) == 0 {
			continue
		}

		if janitor.store.DeleteMany(ctx, urls) {
			janitor.logger.Info("media_cleanup_completed", slog.Int("url_count", len(urls)))
		} else {
			janitor.logger.Warn("media_cleanup_all_failed", slog.Int("url_count", len(urls)))
		}
	}
}
