package repositories

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/go-redis/redis/v8"
)

const (
	CollectionProducts   = "products"
	CollectionCategories = "categories"
	CollectionMessages   = "messages"
)

// ChangeFeed announces that a collection changed. Listeners re-read the whole collection.
type ChangeFeed interface {
	Publish(ctx context.Context, collection string) error
	Listen(ctx context.Context, collection string, onChange func()) (func(), error)
}

type RedisChangeFeed struct {
	client    *redis.Client
	namespace string

	mu      sync.Mutex
	cancels map[int]context.CancelFunc
	nextID  int
}

func NewRedisChangeFeed(client *redis.Client, namespace string) *RedisChangeFeed {
	return &RedisChangeFeed{
		client:    client,
		namespace: namespace,
		cancels:   make(map[int]context.CancelFunc),
	}
}

func (f *RedisChangeFeed) channel(collection string) string {
	return fmt.Sprintf("%s:changes:%s", f.namespace, collection)
}

func (f *RedisChangeFeed) Publish(ctx context.Context, collection string) error {
	if err := f.client.Publish(ctx, f.channel(collection), collection).Err(); err != nil {
		return fmt.Errorf("failed to publish change for %s: %w", collection, err)
	}
	return nil
}

// Listen calls onChange once per published change until the returned stop func is called
// or ctx ends.
func (f *RedisChangeFeed) Listen(ctx context.Context, collection string, onChange func()) (func(), error) {
	subCtx, cancel := context.WithCancel(context.Background())
	pubsub := f.client.Subscribe(subCtx, f.channel(collection))

	if _, err := pubsub.Receive(ctx); err != nil {
		cancel()
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s changes: %w", collection, err)
	}

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.cancels[id] = cancel
	f.mu.Unlock()

	go func() {
		defer func() {
			_ = pubsub.Close()
			f.mu.Lock()
			delete(f.cancels, id)
			f.mu.Unlock()
		}()

		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case <-ctx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				onChange()
			}
		}
	}()

	log.Printf("RedisChangeFeed.Listen: listening on %s", f.channel(collection))

	var once sync.Once
	return func() { once.Do(cancel) }, nil
}

// Close stops every listener still running.
func (f *RedisChangeFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, cancel := range f.cancels {
		cancel()
		delete(f.cancels, id)
	}
}

func publishChange(ctx context.Context, feed ChangeFeed, collection string) {
	if feed == nil {
		return
	}
	if err := feed.Publish(ctx, collection); err != nil {
		log.Printf("publishChange: change for %s not announced: %v", collection, err)
	}
}

// subscribe wires the snapshot contract shared by every collection: deliver now, then
// deliver a fresh full read after every change. Read and delivery happen under one lock so a
// snapshot is never delivered after a newer one.
func subscribe[T any](ctx context.Context, feed ChangeFeed, collection string, read func(context.Context) ([]T, error), cb func([]T)) (func(), error) {
	var mu sync.Mutex
	push := func() {
		mu.Lock()
		defer mu.Unlock()
		items, err := read(ctx)
		if err != nil {
			log.Printf("subscribe: failed to read %s snapshot: %v", collection, err)
			return
		}
		cb(items)
	}

	if feed == nil {
		push()
		return func() {}, nil
	}

	stop, err := feed.Listen(ctx, collection, push)
	if err != nil {
		return nil, err
	}
	push()
	return stop, nil
}

// MemoryChangeFeed delivers changes inside the current process only. Publish runs the
// listeners before returning, so a write is visible to subscribers when it completes.
type MemoryChangeFeed struct {
	mu        sync.Mutex
	listeners map[string]map[int]func()
	nextID    int
}

func NewMemoryChangeFeed() *MemoryChangeFeed {
	return &MemoryChangeFeed{listeners: make(map[string]map[int]func())}
}

func (f *MemoryChangeFeed) Publish(ctx context.Context, collection string) error {
	f.mu.Lock()
	targets := make([]func(), 0, len(f.listeners[collection]))
	for _, fn := range f.listeners[collection] {
		targets = append(targets, fn)
	}
	f.mu.Unlock()

	for _, fn := range targets {
		fn()
	}
	return nil
}

func (f *MemoryChangeFeed) Listen(ctx context.Context, collection string, onChange func()) (func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listeners[collection] == nil {
		f.listeners[collection] = make(map[int]func())
	}
	id := f.nextID
	f.nextID++
	f.listeners[collection][id] = onChange

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners[collection], id)
	}, nil
}
