// Package sink persists accumulated ApiSpec snapshots across process
// boundaries, so a documentation-generation pass can run separately from
// the test-execution pass that produced the specs.
//
// FileSink writes a JSON array of specs to a temp file namespaced by a
// hash of the working directory and the process id, avoiding collisions
// between concurrent runs. Writes are debounced because declarations can
// arrive in tight loops; the explicit synchronous Flush is the
// flush-before-exit contract - hosts call it before relying on persisted
// state, which removes any teardown race.
package sink
