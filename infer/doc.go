// Package infer derives a spec.Schema from an arbitrary runtime value,
// typically a payload captured from a live HTTP exchange.
//
// Captured values are frequently hostile to naive introspection: response
// wrappers carry circular back-references (connection, request, response)
// and transport internals that are unsafe to serialize. Inference
// therefore combines three guards: a visited-identity set that
// short-circuits cycles on the current inference path, a recursion depth
// cap, and sanitization of well-known transport-internal keys. The
// combination guarantees Infer terminates for any input and never
// panics; failures are local, yielding sentinel schemas for the affected
// branch only.
package infer
