package carousel

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/FACorreiaa/northern-oak/internal/pkg/cache"
)

// DefaultIdleTTL is how long an unused visitor carousel is kept.
const DefaultIdleTTL = 30 * time.Minute

type entry struct {
	carousel *Carousel
	mounts   int
}

// Registry keeps one carousel per visitor session. A carousel runs while at
// least one view of it is mounted and is stopped when the last view goes
// away or the session entry expires.
type Registry struct {
	mu      sync.Mutex
	entries *cache.UnifiedCache[*entry]
	length  int
	every   time.Duration
	opts    []Option
	logger  *zap.Logger
}

func NewRegistry(length int, interval, idleTTL time.Duration, logger *zap.Logger, opts ...Option) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		entries: cache.NewUnifiedCache[*entry](idleTTL, "carousels", logger),
		length:  length,
		every:   interval,
		opts:    opts,
		logger:  logger,
	}
	r.entries.OnEvicted(func(key string, e *entry) {
		e.carousel.Stop()
		r.logger.Debug("Carousel released", zap.String("session", key))
	})
	return r
}

// Get returns the session's carousel, creating a stopped one if needed.
func (r *Registry) Get(sessionID string) (*Carousel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, err := r.getLocked(sessionID)
	if err != nil {
		return nil, err
	}
	return e.carousel, nil
}

// Mount starts the session's carousel and returns a release func. The
// carousel stops when every mount has been released.
func (r *Registry) Mount(sessionID string) (*Carousel, func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.getLocked(sessionID)
	if err != nil {
		return nil, nil, err
	}
	e.mounts++
	e.carousel.Start()

	var once sync.Once
	release := func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			e.mounts--
			if e.mounts <= 0 {
				e.mounts = 0
				e.carousel.Stop()
			}
		})
	}
	return e.carousel, release, nil
}

// Cursor returns the session's current index without creating a carousel.
// A session that has none is at the first testimonial.
func (r *Registry) Cursor(sessionID string) int {
	if e, ok := r.entries.Get(sessionID); ok {
		return e.carousel.Index()
	}
	return 0
}

// Touch extends the idle lifetime of a session's carousel.
func (r *Registry) Touch(sessionID string) {
	r.entries.Touch(sessionID)
}

// Active counts running carousels.
func (r *Registry) Active() int {
	n := 0
	for _, e := range r.entries.Items() {
		if e.carousel.Running() {
			n++
		}
	}
	return n
}

// Close stops every carousel and drops all sessions.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries.Items() {
		e.carousel.Stop()
	}
	r.entries.Clear()
}

func (r *Registry) getLocked(sessionID string) (*entry, error) {
	if e, ok := r.entries.Get(sessionID); ok {
		r.entries.Touch(sessionID)
		return e, nil
	}
	c, err := New(r.length, r.every, r.opts...)
	if err != nil {
		return nil, err
	}
	e := &entry{carousel: c}
	r.entries.Set(sessionID, e)
	return e, nil
}

// Stats exposes the session cache for reporting.
func (r *Registry) Stats() cache.Source { return r.entries }
