package bounded

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ib-77/handoff/pkg/handoff"
)

// Hooks observe channel activity. They run with the channel lock held and
// receive the buffer depth at that instant; they must not call back into the
// channel.
type Hooks struct {
	OnPut   func(depth int)
	OnGet   func(depth int)
	OnFull  func(depth int)
	OnEmpty func()
}

type Stats struct {
	Puts     int64
	Gets     int64
	MaxDepth int
	PutWaits int64
	GetWaits int64
}

type Option func(*options)

type options struct {
	hooks Hooks
}

func WithHooks(h Hooks) Option {
	return func(o *options) { o.hooks = h }
}

type Channel[E any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	buf      []E
	capacity int
	aborted  error
	stats    Stats
	hooks    Hooks

	producer atomic.Bool
	consumer atomic.Bool
	putting  atomic.Bool
	getting  atomic.Bool
}

var _ handoff.Channel[int] = (*Channel[int])(nil)

// New creates a channel holding at most capacity elements; 0 means unbounded.
func New[E any](capacity int, opts ...Option) (*Channel[E], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", handoff.ErrNegativeCapacity, capacity)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Channel[E]{
		capacity: capacity,
		hooks:    o.hooks,
	}
	if capacity > 0 {
		c.buf = make([]E, 0, capacity)
	}
	c.notFull = sync.NewCond(&c.mu)
	c.notEmpty = sync.NewCond(&c.mu)
	return c, nil
}

func (c *Channel[E]) ClaimProducer() error {
	if !c.producer.CompareAndSwap(false, true) {
		return handoff.ErrProducerAttached
	}
	return nil
}

func (c *Channel[E]) ClaimConsumer() error {
	if !c.consumer.CompareAndSwap(false, true) {
		return handoff.ErrConsumerAttached
	}
	return nil
}

// Put appends e at the tail, waiting while the buffer is at capacity.
func (c *Channel[E]) Put(e E) error {
	if !c.putting.CompareAndSwap(false, true) {
		return handoff.ErrConcurrentPut
	}
	defer c.putting.Store(false)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.full() && c.aborted == nil {
		c.stats.PutWaits++
		if c.hooks.OnFull != nil {
			c.hooks.OnFull(len(c.buf))
		}
		for c.full() && c.aborted == nil {
			c.notFull.Wait()
		}
	}
	if c.aborted != nil {
		return c.aborted
	}

	c.buf = append(c.buf, e)
	c.stats.Puts++
	if len(c.buf) > c.stats.MaxDepth {
		c.stats.MaxDepth = len(c.buf)
	}
	if c.hooks.OnPut != nil {
		c.hooks.OnPut(len(c.buf))
	}

	c.notEmpty.Signal()
	return nil
}

// Get removes and returns the head element, waiting while the buffer is empty.
func (c *Channel[E]) Get() (E, error) {
	var zero E

	if !c.getting.CompareAndSwap(false, true) {
		return zero, handoff.ErrConcurrentGet
	}
	defer c.getting.Store(false)

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.buf) == 0 && c.aborted == nil {
		c.stats.GetWaits++
		if c.hooks.OnEmpty != nil {
			c.hooks.OnEmpty()
		}
		for len(c.buf) == 0 && c.aborted == nil {
			c.notEmpty.Wait()
		}
	}
	if c.aborted != nil {
		return zero, c.aborted
	}

	e := c.buf[0]
	c.buf[0] = zero
	c.buf = c.buf[1:]
	c.stats.Gets++
	if c.hooks.OnGet != nil {
		c.hooks.OnGet(len(c.buf))
	}

	c.notFull.Signal()
	return e, nil
}

// Abort releases every blocked and future Put and Get with an error wrapping
// handoff.ErrAborted and cause. Only the first call has an effect.
func (c *Channel[E]) Abort(cause error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.aborted != nil {
		return
	}
	if cause == nil {
		c.aborted = handoff.ErrAborted
	} else {
		c.aborted = fmt.Errorf("%w: %w", handoff.ErrAborted, cause)
	}
	c.notFull.Broadcast()
	c.notEmpty.Broadcast()
}

func (c *Channel[E]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.buf)
}

func (c *Channel[E]) Cap() int {
	return c.capacity
}

func (c *Channel[E]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Channel[E]) full() bool {
	return c.capacity > 0 && len(c.buf) >= c.capacity
}
