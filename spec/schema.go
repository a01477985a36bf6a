package spec

// Schema type names used by the inference engine and the constructors.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
	TypeNull    = "null"
)

// String format hints produced by inference. Formats are refinements,
// never requirements.
const (
	FormatEmail    = "email"
	FormatUUID     = "uuid"
	FormatDate     = "date"
	FormatDateTime = "date-time"
	FormatURI      = "uri"
	FormatIPv4     = "ipv4"
	FormatIPv6     = "ipv6"
)

// Schema is a recursive structural description of a value.
//
// An empty Type means the shape is unknown (accepts anything). Schema is
// always a tree: the inference engine guarantees termination over cyclic
// runtime graphs by replacing revisited branches with sentinel schemas.
//
// AllOf, OneOf and AnyOf are passthrough fields for manually authored
// schemas; inference never produces them.
type Schema struct {
	Type        string      `yaml:"type,omitempty" json:"type,omitempty"`
	Format      string      `yaml:"format,omitempty" json:"format,omitempty"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Properties  *Properties `yaml:"properties,omitempty" json:"properties,omitempty"`
	Items       *Schema     `yaml:"items,omitempty" json:"items,omitempty"`
	Required    []string    `yaml:"required,omitempty" json:"required,omitempty"`
	Example     any         `yaml:"example,omitempty" json:"example,omitempty"`
	AllOf       []*Schema   `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	OneOf       []*Schema   `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	AnyOf       []*Schema   `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
}

// Clone returns a deep copy of the schema. The example value is shared,
// not copied; everything else is independent.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := &Schema{
		Type:        s.Type,
		Format:      s.Format,
		Description: s.Description,
		Items:       s.Items.Clone(),
		Example:     s.Example,
	}
	if s.Properties != nil {
		out.Properties = s.Properties.Clone()
	}
	if s.Required != nil {
		out.Required = append([]string(nil), s.Required...)
	}
	out.AllOf = cloneSchemas(s.AllOf)
	out.OneOf = cloneSchemas(s.OneOf)
	out.AnyOf = cloneSchemas(s.AnyOf)
	return out
}

func cloneSchemas(in []*Schema) []*Schema {
	if in == nil {
		return nil
	}
	out := make([]*Schema, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}

// Field pairs a property name with its schema for ordered object
// construction.
type Field struct {
	Name   string
	Schema *Schema
}

// StringSchema builds a string schema with an optional example.
func StringSchema(example any) *Schema {
	return &Schema{Type: TypeString, Example: example}
}

// NumberSchema builds a number schema with an optional example.
func NumberSchema(example any) *Schema {
	return &Schema{Type: TypeNumber, Example: example}
}

// IntegerSchema builds an integer schema with an optional example.
func IntegerSchema(example any) *Schema {
	return &Schema{Type: TypeInteger, Example: example}
}

// BooleanSchema builds a boolean schema with an optional example.
func BooleanSchema(example any) *Schema {
	return &Schema{Type: TypeBoolean, Example: example}
}

// ArraySchema builds an array schema. The items schema is deep-copied so
// the result shares no mutable state with the caller.
func ArraySchema(items *Schema, example any) *Schema {
	return &Schema{Type: TypeArray, Items: items.Clone(), Example: example}
}

// ObjectSchema builds an object schema from ordered fields. Field schemas
// are deep-copied and the required list is copied. Nil field schemas are
// kept as unknown (empty) schemas rather than dropped, so a declared
// field name is never silently lost.
func ObjectSchema(required []string, fields ...Field) *Schema {
	props := NewProperties()
	for _, f := range fields {
		child := f.Schema.Clone()
		if child == nil {
			child = &Schema{}
		}
		props.Set(f.Name, child)
	}
	s := &Schema{Type: TypeObject, Properties: props}
	if len(required) > 0 {
		s.Required = append([]string(nil), required...)
	}
	return s
}
