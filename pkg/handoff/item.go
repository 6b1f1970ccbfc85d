package handoff

import (
	"time"

	"github.com/google/uuid"
)

// Item is the element type carried by a handoff channel: either a payload
// value or the end-of-stream marker. The marker is told apart by its tag,
// never by comparing the payload.
type Item[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	isEnd     bool
}

func Value[T any](v T) Item[T] {
	return Item[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		isEnd:     false,
	}
}

// End returns the end-of-stream marker for a stream of T.
func End[T any]() Item[T] {
	return Item[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		isEnd:     true,
	}
}

func (i Item[T]) Value() T {
	return i.value
}

func (i Item[T]) IsEnd() bool {
	return i.isEnd
}

func (i Item[T]) Id() uuid.UUID {
	return i.id
}

func (i Item[T]) CreatedAt() time.Time {
	return i.createdAt
}
