package cache

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Loader runs cache-aside reads over a Cache. Every key carries a generation
// that Invalidate bumps; a load that overlaps an invalidation of its key is
// returned to the caller but never stored.
type Loader struct {
	cache Cache
	log   logrus.FieldLogger

	mu   sync.Mutex
	gens map[string]uint64
}

func NewLoader(c Cache, log logrus.FieldLogger) *Loader {
	if c == nil {
		c = Nop{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Loader{cache: c, log: log, gens: map[string]uint64{}}
}

func (l *Loader) generation(key string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gens[key]
}

// Invalidate drops keys from the cache. Failures are logged.
func (l *Loader) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, key := range keys {
		l.gens[key]++
	}
	if err := l.cache.Delete(ctx, keys...); err != nil {
		l.log.WithError(err).WithField("keys", keys).Warn("cache invalidation failed")
	}
}

// store writes value under key unless key was invalidated since gen was read.
func (l *Loader) store(ctx context.Context, key string, gen uint64, value any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gens[key] != gen {
		return
	}
	if err := l.cache.Set(ctx, key, value); err != nil {
		l.log.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}

// Load serves key from the cache, calling load and storing its result on a
// miss. Cache failures degrade to a direct load.
func Load[T any](ctx context.Context, l *Loader, key string, load func() (T, error)) (T, error) {
	var v T
	gen := l.generation(key)
	found, err := l.cache.Get(ctx, key, &v)
	if err != nil {
		l.log.WithError(err).WithField("key", key).Warn("cache read failed")
	}
	if found {
		return v, nil
	}

	v, err = load()
	if err != nil {
		return v, err
	}
	l.store(ctx, key, gen, v)
	return v, nil
}
