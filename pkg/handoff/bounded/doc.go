// Package bounded implements the blocking FIFO at the center of the handoff
// pipeline. A Channel is a mutex-guarded buffer with two conditions: Put waits
// on not-full, Get waits on not-empty, and each wakes the other after
// changing the buffer. Capacity 0 means unbounded and Put never waits.
//
// A Channel serves exactly one producer and one consumer. The roles are
// claimed once, and overlapping calls on the same side fail fast instead of
// corrupting the order. Waits have no timeout; Abort is the only way to
// release a blocked caller early.
package bounded
