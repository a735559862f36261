// Package carousel implements the auto-advancing testimonial cursor.
//
// A Carousel owns at most one pending timer. Every operation that moves the
// cursor cancels that timer before scheduling the next one, and each timer
// carries a generation number so a callback that already fired when it was
// cancelled cannot advance the cursor a second time.
package carousel

import (
	"fmt"
	"sync"
	"time"

	"github.com/FACorreiaa/northern-oak/internal/app/models"
)

// DefaultInterval is the auto-advance period.
const DefaultInterval = 5 * time.Second

// Timer is the handle of a scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Trigger records what moved the cursor.
type Trigger string

const (
	TriggerAuto     Trigger = "auto"
	TriggerNext     Trigger = "next"
	TriggerPrevious Trigger = "previous"
	TriggerSelect   Trigger = "select"
)

// Change is reported to the observer after every cursor move.
type Change struct {
	Index   int
	Trigger Trigger
}

type Option func(*Carousel)

func WithScheduler(s Scheduler) Option {
	return func(c *Carousel) { c.sched = s }
}

// WithObserver registers fn to be called, outside the carousel lock, after
// each cursor change.
func WithObserver(fn func(Change)) Option {
	return func(c *Carousel) { c.observer = fn }
}

type Carousel struct {
	mu         sync.Mutex
	length     int
	interval   time.Duration
	cursor     int
	running    bool
	timer      Timer
	generation uint64

	subs    map[uint64]chan int
	nextSub uint64

	sched    Scheduler
	observer func(Change)
}

// New returns a stopped carousel over a sequence of length items.
func New(length int, interval time.Duration, opts ...Option) (*Carousel, error) {
	if length <= 0 {
		return nil, fmt.Errorf("carousel length must be positive, got %d", length)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("carousel interval must be positive, got %s", interval)
	}
	c := &Carousel{
		length:   length,
		interval: interval,
		subs:     make(map[uint64]chan int),
		sched:    realScheduler{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Carousel) Len() int { return c.length }

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

func (c *Carousel) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Start begins auto-advancing. Starting a running carousel does nothing.
func (c *Carousel) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.rescheduleLocked()
}

// Stop cancels the pending timer. The cursor keeps its position.
func (c *Carousel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	c.cancelLocked()
}

// Next moves forward one item, wrapping to 0 after the last.
func (c *Carousel) Next() int {
	return c.move(TriggerNext, func(i int) int { return (i + 1) % c.length })
}

// Previous moves back one item, wrapping to the last from 0.
func (c *Carousel) Previous() int {
	return c.move(TriggerPrevious, func(i int) int { return (i - 1 + c.length) % c.length })
}

// Select jumps to index k.
func (c *Carousel) Select(k int) error {
	if k < 0 || k >= c.length {
		return fmt.Errorf("%w: testimonial %d not in [0,%d)", models.ErrIndexOutOfRange, k, c.length)
	}
	c.move(TriggerSelect, func(int) int { return k })
	return nil
}

// Subscribe returns a channel that receives the cursor after every change.
// Only the most recent value is buffered. The returned func unsubscribes and
// closes the channel.
func (c *Carousel) Subscribe() (<-chan int, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan int, 1)
	c.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, id)
			close(ch)
		})
	}
}

func (c *Carousel) move(trigger Trigger, step func(int) int) int {
	c.mu.Lock()
	c.cancelLocked()
	c.cursor = step(c.cursor)
	if c.running {
		c.rescheduleLocked()
	}
	idx := c.cursor
	c.publishLocked(idx)
	c.mu.Unlock()

	c.notify(Change{Index: idx, Trigger: trigger})
	return idx
}

func (c *Carousel) tick(generation uint64) {
	c.mu.Lock()
	if !c.running || generation != c.generation {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.cursor = (c.cursor + 1) % c.length
	c.rescheduleLocked()
	idx := c.cursor
	c.publishLocked(idx)
	c.mu.Unlock()

	c.notify(Change{Index: idx, Trigger: TriggerAuto})
}

// cancelLocked stops the pending timer and invalidates its callback.
func (c *Carousel) cancelLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.generation++
}

func (c *Carousel) rescheduleLocked() {
	c.cancelLocked()
	gen := c.generation
	c.timer = c.sched.AfterFunc(c.interval, func() { c.tick(gen) })
}

func (c *Carousel) publishLocked(idx int) {
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- idx:
		default:
		}
	}
}

func (c *Carousel) notify(change Change) {
	if c.observer != nil {
		c.observer(change)
	}
}
