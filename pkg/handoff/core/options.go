package core

import (
	"context"
	"time"
)

type OptionKey string

const (
	ProducerOptionKey OptionKey = "producer_options"
	ConsumerOptionKey OptionKey = "consumer_options"
)

type ProducerOptions struct {
	Delay time.Duration
}

type ConsumerOptions struct {
	Delay  time.Duration
	Warmup time.Duration
}

// WithProducerDelay makes the producer pause after every put.
func WithProducerDelay(ctx context.Context, delay time.Duration) context.Context {
	return context.WithValue(ctx, ProducerOptionKey, ProducerOptions{Delay: delay})
}

// WithConsumerDelay makes the consumer pause after every appended item.
func WithConsumerDelay(ctx context.Context, delay time.Duration) context.Context {
	opts := GetConsumerOptions(ctx)
	opts.Delay = delay
	return context.WithValue(ctx, ConsumerOptionKey, opts)
}

// WithConsumerWarmup makes the consumer wait once before its first get.
func WithConsumerWarmup(ctx context.Context, warmup time.Duration) context.Context {
	opts := GetConsumerOptions(ctx)
	opts.Warmup = warmup
	return context.WithValue(ctx, ConsumerOptionKey, opts)
}

func GetProducerOptions(ctx context.Context) ProducerOptions {
	options, ok := ctx.Value(ProducerOptionKey).(ProducerOptions)
	if ok {
		return options
	}
	return ProducerOptions{}
}

func GetConsumerOptions(ctx context.Context) ConsumerOptions {
	options, ok := ctx.Value(ConsumerOptionKey).(ConsumerOptions)
	if ok {
		return options
	}
	return ConsumerOptions{}
}

func pause(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
