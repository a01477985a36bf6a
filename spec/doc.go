// Package spec defines the OpenAPI-subset data model shared by every
// testswag component: Schema, ApiSpec, the final Document, and the
// generation Config.
//
// The types here are deliberately a small slice of OpenAPI 3.0 - just the
// fields that test-declared documentation can produce. Schema property
// order is preserved (first-seen wins) through the ordered Properties
// type, so repeated document generation is byte-identical.
//
// Constructors such as StringSchema and ObjectSchema build schemas for
// manually declared shapes. They are total: no input causes a panic, and
// the returned schema shares no mutable substructure with its inputs
// beyond the example value.
package spec
