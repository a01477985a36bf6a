package infer

import (
	"encoding/json"
	"math"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/dev-jwshin/testswag/spec"
)

const (
	// maxDepth bounds recursion over nested values.
	maxDepth = 10

	// maxProperties bounds the number of object keys inspected per level.
	maxProperties = 10
)

// Sentinel descriptions attached to guard schemas.
const (
	DescCircular = "Circular reference detected"
	DescMaxDepth = "Maximum depth reached"
	DescFailed   = "Processing failed"
)

// dangerousKeys are transport-internal field names stripped before
// inference. These carry sockets, parsers, and connection state that is
// unsafe to walk.
var dangerousKeys = map[string]bool{
	"connection":  true,
	"socket":      true,
	"agent":       true,
	"parser":      true,
	"client":      true,
	"httpmessage": true,
}

// privatePrefix marks implementation-private keys stripped before
// inference.
const privatePrefix = "_"

// refKey identifies a reference value on the current inference path.
type refKey struct {
	ptr  uintptr
	kind reflect.Kind
}

// Infer derives a schema describing the shape of value. It terminates for
// any input, including self-referential graphs, and never panics.
func Infer(value any) (schema *spec.Schema) {
	defer func() {
		if r := recover(); r != nil {
			schema = &spec.Schema{}
		}
	}()
	if value == nil {
		return &spec.Schema{Type: spec.TypeNull}
	}
	return inferValue(reflect.ValueOf(value), make(map[refKey]bool), 0)
}

// inferValue dispatches on the runtime kind of v. visited holds the
// reference identities on the current inference path; depth counts
// recursion levels.
func inferValue(v reflect.Value, visited map[refKey]bool, depth int) *spec.Schema {
	if !v.IsValid() {
		return &spec.Schema{}
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return &spec.Schema{Type: spec.TypeNull}
		}
		if v.Kind() == reflect.Pointer {
			key := refKey{ptr: v.Pointer(), kind: reflect.Pointer}
			if visited[key] {
				return &spec.Schema{Type: spec.TypeObject, Description: DescCircular}
			}
			visited[key] = true
			defer delete(visited, key)
		}
		return inferValue(v.Elem(), visited, depth)

	case reflect.Bool:
		return &spec.Schema{Type: spec.TypeBoolean, Example: v.Bool()}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &spec.Schema{Type: spec.TypeInteger, Example: v.Int()}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &spec.Schema{Type: spec.TypeInteger, Example: v.Uint()}

	case reflect.Float32, reflect.Float64:
		return inferFloat(v.Float())

	case reflect.String:
		return inferString(v)

	case reflect.Slice, reflect.Array:
		return inferArray(v, visited, depth)

	case reflect.Map:
		return inferMap(v, visited, depth)

	case reflect.Struct:
		return inferStruct(v, visited, depth)

	default:
		// func, chan, unsafe pointer: unknown shape.
		return &spec.Schema{}
	}
}

func inferFloat(f float64) *spec.Schema {
	if !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f) {
		return &spec.Schema{Type: spec.TypeInteger, Example: f}
	}
	return &spec.Schema{Type: spec.TypeNumber, Example: f}
}

func inferString(v reflect.Value) *spec.Schema {
	s := v.String()
	if n, ok := v.Interface().(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return &spec.Schema{Type: spec.TypeInteger, Example: i}
		}
		if f, err := n.Float64(); err == nil {
			return inferFloat(f)
		}
	}
	schema := &spec.Schema{Type: spec.TypeString, Example: s}
	if format := DetectFormat(s); format != "" {
		schema.Format = format
	}
	return schema
}

func inferArray(v reflect.Value, visited map[refKey]bool, depth int) *spec.Schema {
	if v.Kind() == reflect.Slice {
		if v.IsNil() {
			return &spec.Schema{Type: spec.TypeNull}
		}
		key := refKey{ptr: v.Pointer(), kind: reflect.Slice}
		if visited[key] {
			return &spec.Schema{Type: spec.TypeArray, Description: DescCircular}
		}
		visited[key] = true
		defer delete(visited, key)
	}
	if depth >= maxDepth {
		return &spec.Schema{Type: spec.TypeObject, Description: DescMaxDepth}
	}

	if v.Len() == 0 {
		return &spec.Schema{Type: spec.TypeArray, Items: &spec.Schema{}, Example: []any{}}
	}

	// Element shape is inferred from the first element only.
	items := inferValue(v.Index(0), visited, depth+1)
	example := []any{}
	if items.Description != DescCircular && items.Example != nil {
		example = []any{items.Example}
	}
	return &spec.Schema{Type: spec.TypeArray, Items: items, Example: example}
}

func inferMap(v reflect.Value, visited map[refKey]bool, depth int) *spec.Schema {
	if v.IsNil() {
		return &spec.Schema{Type: spec.TypeNull}
	}
	key := refKey{ptr: v.Pointer(), kind: reflect.Map}
	if visited[key] {
		return &spec.Schema{Type: spec.TypeObject, Description: DescCircular}
	}
	visited[key] = true
	defer delete(visited, key)

	if depth >= maxDepth {
		return &spec.Schema{Type: spec.TypeObject, Description: DescMaxDepth}
	}

	if v.Type().Key().Kind() != reflect.String {
		// Non-string keys cannot become JSON object properties.
		return &spec.Schema{Type: spec.TypeObject}
	}

	// Go randomizes map iteration; sorting keeps inference deterministic.
	keys := make([]string, 0, v.Len())
	for _, k := range v.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	obj := newObjectBuilder()
	for _, name := range keys {
		if obj.full() {
			break
		}
		if skipKey(name) {
			continue
		}
		obj.add(name, v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key())), visited, depth)
	}
	return obj.schema()
}

func inferStruct(v reflect.Value, visited map[refKey]bool, depth int) *spec.Schema {
	// Special types first, matching their conventional JSON encoding.
	if t, ok := v.Interface().(time.Time); ok {
		return &spec.Schema{
			Type:    spec.TypeString,
			Format:  spec.FormatDateTime,
			Example: t.Format(time.RFC3339),
		}
	}

	if depth >= maxDepth {
		return &spec.Schema{Type: spec.TypeObject, Description: DescMaxDepth}
	}

	obj := newObjectBuilder()
	t := v.Type()
	for i := 0; i < t.NumField() && !obj.full(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, skip := fieldName(field)
		if skip || skipKey(name) {
			continue
		}
		obj.add(name, v.Field(i), visited, depth)
	}
	return obj.schema()
}

// objectBuilder accumulates object properties, required names, and the
// parallel example object.
type objectBuilder struct {
	props    *spec.Properties
	required []string
	example  map[string]any
}

func newObjectBuilder() *objectBuilder {
	return &objectBuilder{
		props:   spec.NewProperties(),
		example: make(map[string]any),
	}
}

func (b *objectBuilder) full() bool {
	return b.props.Len() >= maxProperties
}

// add infers one property. A per-key panic yields a local failure schema
// for that key only.
func (b *objectBuilder) add(name string, v reflect.Value, visited map[refKey]bool, depth int) {
	child := inferProperty(v, visited, depth)
	if child == nil {
		// Unreadable value, treated like an absent key.
		return
	}
	b.props.Set(name, child)
	if child.Type != spec.TypeNull {
		b.required = append(b.required, name)
	}
	// Keys that triggered a cycle are excluded from the example so the
	// example stays a plain tree.
	if child.Description != DescCircular {
		b.example[name] = child.Example
	}
}

func (b *objectBuilder) schema() *spec.Schema {
	s := &spec.Schema{
		Type:       spec.TypeObject,
		Properties: b.props,
		Example:    b.example,
	}
	if len(b.required) > 0 {
		s.Required = b.required
	}
	return s
}

// inferProperty wraps inferValue with per-key recovery.
func inferProperty(v reflect.Value, visited map[refKey]bool, depth int) (schema *spec.Schema) {
	defer func() {
		if r := recover(); r != nil {
			schema = &spec.Schema{Type: spec.TypeString, Description: DescFailed}
		}
	}()
	if !v.IsValid() {
		return nil
	}
	return inferValue(v, visited, depth+1)
}

// skipKey reports whether a property name is sanitized away before
// inference.
func skipKey(name string) bool {
	if strings.HasPrefix(name, privatePrefix) {
		return true
	}
	return dangerousKeys[strings.ToLower(name)]
}

// fieldName resolves the JSON-visible name of a struct field.
func fieldName(field reflect.StructField) (name string, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	name = field.Name
	if tag != "" {
		if tagName, _, _ := strings.Cut(tag, ","); tagName != "" {
			name = tagName
		}
	}
	return name, false
}
