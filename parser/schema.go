// This file defines the schema node model: structural type flags, format,
// items, enumeration literals, dictionary value schemas, and the ActualSchema
// dereferencing accessor.

package parser

// JSONType is a structural type category a schema node may satisfy.
// A node may satisfy more than one category at once (OAS 3.1+ type arrays).
type JSONType string

// Structural type categories.
const (
	TypeObject  JSONType = "object"
	TypeArray   JSONType = "array"
	TypeString  JSONType = "string"
	TypeNumber  JSONType = "number"
	TypeInteger JSONType = "integer"
	TypeBoolean JSONType = "boolean"
	TypeFile    JSONType = "file"
	TypeNull    JSONType = "null"
)

// Schema represents one node of the schema graph.
//
// Nodes are produced by parsing a document; the parser binds every $ref so
// that ActualSchema can follow indirection without further lookups. All type
// resolution operates on the dereferenced node.
type Schema struct {
	// Ref is the raw $ref string, empty for concrete nodes
	Ref string
	// Title is the schema title, used as a naming hint for generated types
	Title string
	// Description is the schema description
	Description string
	// Type is the set of structural type flags declared on the node.
	// Empty for untyped nodes; "null" entries are folded into Nullable.
	Type []JSONType
	// Format is the free-form format discriminator (e.g. "date-time", "uuid")
	Format string
	// Enum is the enumeration literal set, nil for non-enumerations
	Enum []any
	// Default is the declared default value, if any
	Default any
	// Item is the single item schema of an array-of-T node
	Item *Schema
	// TupleItems is the ordered item schema list of a fixed-arity tuple node
	TupleItems []*Schema
	// Properties maps property name to property schema
	Properties map[string]*Schema
	// Required lists the property names that must be present
	Required []string
	// AdditionalProperties is the dictionary value schema, nil when
	// additionalProperties is absent or false
	AdditionalProperties *Schema
	// AdditionalAllowed is true when additionalProperties is explicitly true
	AdditionalAllowed bool
	// AllOf lists composed schemas; a $ref entry marks the base type
	AllOf []*Schema
	// Nullable is true when the node declares itself nullable
	// (OAS 3.0 nullable, x-nullable, or a "null" entry in the type array)
	Nullable bool
	// Discriminator is the property name used for polymorphic dispatch
	Discriminator string

	// resolved is the bound $ref target, set by the document resolver
	resolved *Schema
}

// ActualSchema follows $ref indirection to the concrete node backing this
// schema. For concrete nodes it returns the receiver. The parser rejects
// purely circular reference chains, so the walk always terminates.
func (s *Schema) ActualSchema() *Schema {
	actual := s
	for actual.resolved != nil {
		actual = actual.resolved
	}
	return actual
}

// HasType reports whether the node declares the given structural type flag.
func (s *Schema) HasType(t JSONType) bool {
	for _, st := range s.Type {
		if st == t {
			return true
		}
	}
	return false
}

// IsEnumeration reports whether the node carries an enumeration literal set.
func (s *Schema) IsEnumeration() bool {
	return len(s.Enum) > 0
}

// IsAnyType reports whether the node accepts any value: no structural type,
// no format, and none of the shape-constraining keywords.
func (s *Schema) IsAnyType() bool {
	return len(s.Type) == 0 &&
		s.Ref == "" &&
		s.Format == "" &&
		len(s.Properties) == 0 &&
		len(s.Enum) == 0 &&
		len(s.AllOf) == 0 &&
		s.Item == nil &&
		len(s.TupleItems) == 0 &&
		s.AdditionalProperties == nil &&
		!s.AdditionalAllowed
}

// IsDictionary reports whether the node is a string-keyed map: no declared
// properties, additional properties allowed or schema-constrained, and not an
// enumeration.
func (s *Schema) IsDictionary() bool {
	if len(s.Properties) > 0 || s.IsEnumeration() {
		return false
	}
	return s.AdditionalProperties != nil || s.AdditionalAllowed
}

// IsTuple reports whether the node declares an ordered item schema list
// rather than a single item schema.
func (s *Schema) IsTuple() bool {
	return s.Item == nil && len(s.TupleItems) > 0
}

// IsRequired reports whether the named property is in the required list.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// BaseSchema returns the $ref entry of an allOf composition, dereferenced,
// or nil when the node has no base type.
func (s *Schema) BaseSchema() *Schema {
	for _, sub := range s.AllOf {
		if sub.Ref != "" {
			return sub.ActualSchema()
		}
	}
	return nil
}

// InlineAllOf returns the non-$ref entries of an allOf composition, in
// declared order. These contribute properties directly to the composed type.
func (s *Schema) InlineAllOf() []*Schema {
	var inline []*Schema
	for _, sub := range s.AllOf {
		if sub.Ref == "" {
			inline = append(inline, sub)
		}
	}
	return inline
}
