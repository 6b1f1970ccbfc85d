// Package pipeline runs a complete handoff: it creates the bounded channel,
// starts one Producer and one Consumer goroutine over it, joins both and
// returns the consumer's result.
//
// Common usage:
// - Execute: one-shot helper that builds a fresh Driver per call
// - New + Driver.Execute / ExecuteSeq: when stats or state are needed afterwards
//
// A Driver is single-use. Its state moves Created -> Running -> Joined -> Done,
// or to Failed when either unit reports an error or panics. A failing unit
// aborts the channel so its peer never stays blocked.
package pipeline
