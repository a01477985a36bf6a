// Package collector is the stateful core of testswag: it tracks the
// current path and operation as test-declaration scopes nest, snapshots
// finalized ApiSpecs at each response declaration, and accumulates them
// with deterministic deduplication.
//
// A Context maintains an explicit stack of cursor frames. Scope entry
// (Path, Operation) pushes a deep-copied frame and scope exit pops it, so
// nesting discipline is an invariant rather than a convention. Response
// declaration is two-phase: a structural snapshot is submitted
// immediately so the document reflects declared shape even when a test is
// skipped, and if a run function captures a live payload the snapshot is
// resubmitted with the inferred content, superseding the first for the
// same identity key.
//
// A Collector holds the accumulated snapshots. Competing snapshots for
// one (path, method, summary) key are resolved by serialized size: the
// strictly larger one wins. Declaration bodies must not call t.Parallel -
// the declaration pass has to run to completion synchronously - but
// Submit is mutex-guarded so hosts that run captured test bodies
// concurrently cannot lose updates.
package collector
