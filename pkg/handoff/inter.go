package handoff

// Role names one side of a single-producer/single-consumer channel.
type Role string

const (
	RoleProducer Role = "producer"
	RoleConsumer Role = "consumer"
)

// Putter is the producer side of a handoff channel.
type Putter[E any] interface {
	// ClaimProducer attaches the caller as the only producer
	ClaimProducer() error
	// Put appends e, blocking while the channel is full
	Put(e E) error
}

// Getter is the consumer side of a handoff channel.
type Getter[E any] interface {
	// ClaimConsumer attaches the caller as the only consumer
	ClaimConsumer() error
	// Get removes the head element, blocking while the channel is empty
	Get() (E, error)
}

// Channel combines both sides.
type Channel[E any] interface {
	Putter[E]
	Getter[E]
}
