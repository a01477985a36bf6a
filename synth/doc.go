// Package synth turns an accumulated ApiSpec collection into the final
// OpenAPI document.
//
// Synthesis is deterministic for a fixed input order: specs are grouped
// by path then method (last one wins per pair), suffixed response keys
// render as "<code> (<n>)", and an operation never ends up without at
// least one response. A content-hash keyed cache memoizes synthesized
// documents, so regenerating from an unchanged collection is free and
// byte-identical.
package synth
