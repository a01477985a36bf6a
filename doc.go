// Package testswag generates OpenAPI documentation from API declarations
// made inline in Go test code.
//
// Test authors describe HTTP API shape - paths, operations, parameters,
// bodies, responses - while writing tests; testswag collects the
// declarations across the test run and synthesizes one deterministic
// OpenAPI 3.0 document, inferring response schemas from live payloads
// when test bodies capture them.
//
// # Overview
//
// The library consists of five packages:
//
//   - spec: the OpenAPI-subset data model and generation config
//   - infer: runtime schema inference with cycle and depth protection
//   - collector: the declaration context and spec accumulator
//   - synth: the document synthesizer and writer
//   - sink: cross-process persistence of collected specs
//
// # Quick Start
//
// Declare an API inside a test:
//
//	func TestUsersAPI(t *testing.T) {
//		docs := collector.NewContext(nil)
//		docs.Path(t, "/users", func(t *testing.T) {
//			docs.Operation(t, "get", "List users", func(t *testing.T) {
//				docs.Response(t, 200, "Successful response",
//					collector.WithRun(func(t *testing.T) (any, error) {
//						return httpGetJSON(srv.URL + "/users")
//					}),
//				)
//			})
//		})
//	}
//
// Then synthesize the document, either in-process:
//
//	doc, err := synth.New(cfg).Generate(collector.Default().Specs())
//
// or from a separate process with the testswag CLI after the test run
// persisted its specs through a sink.
package testswag
