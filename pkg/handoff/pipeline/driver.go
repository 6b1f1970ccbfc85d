package pipeline

import (
	"context"
	"errors"
	"iter"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/handoff/pkg/handoff"
	"github.com/ib-77/handoff/pkg/handoff/bounded"
	"github.com/ib-77/handoff/pkg/handoff/core"
	"github.com/ib-77/handoff/pkg/handoff/logging"
	"github.com/rs/zerolog"
)

type Stats struct {
	ID      uuid.UUID
	Channel bounded.Stats
	Elapsed time.Duration
}

type Option func(*driverOptions)

type driverOptions struct {
	hooks bounded.Hooks
}

// WithHooks installs channel hooks in addition to the driver's own logging.
func WithHooks(h bounded.Hooks) Option {
	return func(o *driverOptions) { o.hooks = h }
}

type Driver[T any] struct {
	id    uuid.UUID
	opts  driverOptions
	state atomic.Int32

	mu     sync.Mutex
	result []T
	stats  Stats
}

func New[T any](opts ...Option) *Driver[T] {
	d := &Driver[T]{id: uuid.New()}
	for _, opt := range opts {
		opt(&d.opts)
	}
	d.stats.ID = d.id
	return d
}

// Execute runs source through a fresh channel with the given capacity
// (0 = unbounded) using a new Driver.
func Execute[T any](ctx context.Context, source []T, capacity int, opts ...Option) ([]T, error) {
	return New[T](opts...).Execute(ctx, source, capacity)
}

func (d *Driver[T]) ID() uuid.UUID {
	return d.id
}

func (d *Driver[T]) State() State {
	return State(d.state.Load())
}

// Result returns the consumer's sequence once the driver is Done.
func (d *Driver[T]) Result() ([]T, bool) {
	if d.State() != StateDone {
		return nil, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.result, true
}

func (d *Driver[T]) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

func (d *Driver[T]) Execute(ctx context.Context, source []T, capacity int) ([]T, error) {
	return d.ExecuteSeq(ctx, slices.Values(source), capacity)
}

// ExecuteSeq runs the pipeline over seq and blocks until both units finish.
func (d *Driver[T]) ExecuteSeq(ctx context.Context, seq iter.Seq[T], capacity int) ([]T, error) {
	if !d.state.CompareAndSwap(int32(StateCreated), int32(StateRunning)) {
		return nil, handoff.ErrDriverReused
	}

	log := zerolog.Ctx(ctx).With().
		Str(logging.FieldRunID, d.id.String()).
		Int(logging.FieldCapacity, capacity).
		Logger()
	ctx = log.WithContext(ctx)

	ch, err := bounded.New[handoff.Item[T]](capacity, bounded.WithHooks(d.hooks(&log)))
	if err != nil {
		d.state.Store(int32(StateFailed))
		log.Error().Err(err).Msg("invalid channel configuration")
		return nil, err
	}

	producer := core.NewProducer(seq, ch)
	consumer := core.NewConsumer(ch)

	log.Info().Msg("pipeline started")
	start := time.Now()

	errs := make([]error, 2)
	wg := &sync.WaitGroup{}
	wg.Add(2)
	go runUnit(ctx, ch, handoff.RoleProducer, producer.Run, &errs[0], wg)
	go runUnit(ctx, ch, handoff.RoleConsumer, consumer.Run, &errs[1], wg)
	wg.Wait()

	d.state.Store(int32(StateJoined))
	elapsed := time.Since(start)

	d.mu.Lock()
	d.stats.Channel = ch.Stats()
	d.stats.Elapsed = elapsed
	d.mu.Unlock()

	if err := errors.Join(errs...); err != nil {
		d.state.Store(int32(StateFailed))
		log.Error().Err(err).Dur(logging.FieldElapsed, elapsed).Msg("pipeline failed")
		return nil, err
	}

	result := consumer.Result()
	d.mu.Lock()
	d.result = result
	d.mu.Unlock()
	d.state.Store(int32(StateDone))

	log.Info().
		Int("items", len(result)).
		Int("max_depth", d.stats.Channel.MaxDepth).
		Int64("put_waits", d.stats.Channel.PutWaits).
		Dur(logging.FieldElapsed, elapsed).
		Msg("pipeline done")
	return result, nil
}

// runUnit runs one side and turns an error or panic into a UnitError. On
// failure the channel is aborted so the other side cannot wait forever.
func runUnit[E any](ctx context.Context, ch *bounded.Channel[E], role handoff.Role,
	run func(ctx context.Context) error, errOut *error, wg *sync.WaitGroup) {
	defer wg.Done()

	var err error
	defer func() {
		if r := recover(); r != nil {
			err = &handoff.PanicError{Value: r}
		}
		if err != nil {
			ue := &handoff.UnitError{Role: role, Cause: err}
			*errOut = ue
			zerolog.Ctx(ctx).Error().Err(err).Str(logging.FieldRole, string(role)).Msg("unit failed")
			ch.Abort(ue)
		}
	}()

	err = run(ctx)
}

func (d *Driver[T]) hooks(log *zerolog.Logger) bounded.Hooks {
	user := d.opts.hooks
	return bounded.Hooks{
		OnPut: user.OnPut,
		OnGet: user.OnGet,
		OnFull: func(depth int) {
			log.Debug().Int(logging.FieldDepth, depth).Str(logging.FieldRole, string(handoff.RoleProducer)).
				Msg("channel full, waiting")
			if user.OnFull != nil {
				user.OnFull(depth)
			}
		},
		OnEmpty: func() {
			log.Debug().Str(logging.FieldRole, string(handoff.RoleConsumer)).
				Msg("channel empty, waiting")
			if user.OnEmpty != nil {
				user.OnEmpty()
			}
		},
	}
}
