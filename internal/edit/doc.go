// Package edit implements the subtitle frame/word editing engine: the
// invariant enforcer, the mutation operations (split, merge, combine, word
// edit-state transitions), and the playhead highlight resolver.
//
// Every operation is a pure function over immutable [caption.Document]
// snapshots: the input is never mutated, and a successful mutation returns a
// brand-new snapshot with a strictly larger LastModified stamp. There is no
// shared mutable state and nothing to lock.
//
// Lookup failures (unknown frame or word id) are silent no-ops, not errors.
// They are routinely triggered by stale host UI state — a double-click racing
// a merge, for instance — and must never crash the editor. Every operation
// therefore returns the unmodified input plus changed=false when there is
// nothing to do.
//
// Malformed input is corrected rather than rejected: [Repair] always produces
// a document satisfying the timing invariants, whatever it is handed.
package edit
