// Package logging builds zerolog loggers for handoff runners from a small
// Config. Library packages never log globally; they read the logger attached
// to the context with zerolog.Ctx, so attach one with WithLogger.
package logging
