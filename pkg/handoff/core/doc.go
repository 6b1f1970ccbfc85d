// Package core contains the two units of a handoff pipeline: the Producer
// that feeds an ordered source into a channel and finishes with the end
// marker, and the Consumer that drains the channel into its result until it
// sees that marker. Per-item work delays are carried on the context.
package core
