package core

import (
	"context"
	"iter"
	"slices"

	"github.com/ib-77/handoff/pkg/handoff"
	"github.com/rs/zerolog"
)

type Producer[T any] struct {
	source iter.Seq[T]
	out    handoff.Putter[handoff.Item[T]]
	sent   int
}

func NewProducer[T any](source iter.Seq[T], out handoff.Putter[handoff.Item[T]]) *Producer[T] {
	if source == nil {
		source = func(func(T) bool) {}
	}
	return &Producer[T]{source: source, out: out}
}

// FromSlice builds a producer over the elements of values in index order.
func FromSlice[T any](values []T, out handoff.Putter[handoff.Item[T]]) *Producer[T] {
	return NewProducer(slices.Values(values), out)
}

// Run puts every source value in order and then exactly one end marker,
// also when the source is empty.
func (p *Producer[T]) Run(ctx context.Context) error {
	if err := p.out.ClaimProducer(); err != nil {
		return err
	}

	log := zerolog.Ctx(ctx).With().Str("role", string(handoff.RoleProducer)).Logger()
	delay := GetProducerOptions(ctx).Delay

	for v := range p.source {
		if err := p.out.Put(handoff.Value(v)); err != nil {
			return err
		}
		p.sent++
		log.Trace().Int("sent", p.sent).Msg("put")
		pause(delay)
	}

	if err := p.out.Put(handoff.End[T]()); err != nil {
		return err
	}
	log.Debug().Int("sent", p.sent).Msg("end marker sent")
	return nil
}

// Sent reports how many values have been put, the end marker excluded.
func (p *Producer[T]) Sent() int {
	return p.sent
}
