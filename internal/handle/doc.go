// Package handle implements two ownership disciplines over an arbitrary
// payload type: Unique, a single-owner transferable handle, and Shared,
// a reference-counted copyable handle whose last release runs a
// finalizer.
//
// Unique models exclusive ownership: the payload has exactly one live
// handle at a time, Move transfers it and leaves the source empty, and
// using an emptied handle reports failure rather than yielding a stale
// payload. Shared models shared ownership: Clone hands out additional
// handles, each handle releases at most once, and the payload's
// finalizer runs exactly once when the count reaches zero.
//
// Promote converts a Unique into a Shared, mirroring the usual
// release-then-wrap hand-off between the two disciplines.
//
// Both handles use atomic counters for their one-shot and refcount
// bookkeeping, so they remain correct under concurrent use even though
// the demos are single-threaded.
package handle
