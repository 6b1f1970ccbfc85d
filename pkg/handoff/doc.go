// Package handoff holds the shared vocabulary of the handoff pipeline: the
// Item envelope that tags payloads and the end-of-stream marker, the Putter
// and Getter sides of a channel, and the errors raised on contract misuse.
//
// The pieces live in subpackages:
// - bounded: the blocking FIFO channel (mutex plus not-full/not-empty conditions)
// - core: Producer and Consumer units and their context options
// - pipeline: the Driver that runs one producer and one consumer to completion
// - logging, config: zerolog and viper setup used by runnable harnesses
package handoff
