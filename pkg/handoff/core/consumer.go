package core

import (
	"context"
	"sync/atomic"

	"github.com/ib-77/handoff/pkg/handoff"
	"github.com/rs/zerolog"
)

type Consumer[T any] struct {
	in     handoff.Getter[handoff.Item[T]]
	result []T
	done   atomic.Bool
}

func NewConsumer[T any](in handoff.Getter[handoff.Item[T]]) *Consumer[T] {
	return &Consumer[T]{in: in, result: make([]T, 0)}
}

// Run appends received values to the result until the end marker arrives.
// The marker itself is not appended.
func (c *Consumer[T]) Run(ctx context.Context) error {
	if err := c.in.ClaimConsumer(); err != nil {
		return err
	}

	log := zerolog.Ctx(ctx).With().Str("role", string(handoff.RoleConsumer)).Logger()
	opts := GetConsumerOptions(ctx)
	pause(opts.Warmup)

	for {
		item, err := c.in.Get()
		if err != nil {
			return err
		}
		if item.IsEnd() {
			break
		}
		c.result = append(c.result, item.Value())
		log.Trace().Int("received", len(c.result)).Msg("get")
		pause(opts.Delay)
	}

	c.done.Store(true)
	log.Debug().Int("received", len(c.result)).Msg("end marker received")
	return nil
}

// Done reports whether Run has observed the end marker.
func (c *Consumer[T]) Done() bool {
	return c.done.Load()
}

// Result returns the received values. It is only complete once Done is true.
func (c *Consumer[T]) Result() []T {
	return c.result
}
