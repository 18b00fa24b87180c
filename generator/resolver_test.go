package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typesmith/typesmith/parser"
)

func newTestResolver() *TypeResolver {
	return NewTypeResolver(DefaultSettings(), defaultLanguage)
}

func TestResolve_AnyType(t *testing.T) {
	r := newTestResolver()
	s := &parser.Schema{}

	assert.Equal(t, "object", r.Resolve(s, false, ""))
	assert.Equal(t, "object", r.Resolve(s, true, ""), "top type is already nullable, no marker")
}

func TestResolve_Number(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name     string
		format   string
		nullable bool
		want     string
	}{
		{"plain number", "", false, "double"},
		{"nullable number", "", true, "double?"},
		{"decimal format", "decimal", false, "decimal"},
		{"nullable decimal", "decimal", true, "decimal?"},
		{"unknown format", "float128", false, "double"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &parser.Schema{Type: []parser.JSONType{parser.TypeNumber}, Format: tt.format}
			assert.Equal(t, tt.want, r.Resolve(s, tt.nullable, ""))
		})
	}
}

func TestResolve_Integer(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name     string
		format   string
		nullable bool
		want     string
	}{
		{"plain integer", "", false, "int"},
		{"nullable integer", "", true, "int?"},
		{"byte format", "byte", false, "byte"},
		{"nullable byte", "byte", true, "byte?"},
		{"long format", "long", false, "long"},
		{"int64 format", "int64", false, "long"},
		{"nullable long", "int64", true, "long?"},
		{"int32 format", "int32", false, "int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &parser.Schema{Type: []parser.JSONType{parser.TypeInteger}, Format: tt.format}
			assert.Equal(t, tt.want, r.Resolve(s, tt.nullable, ""))
		})
	}
}

func TestResolve_Boolean(t *testing.T) {
	r := newTestResolver()
	s := &parser.Schema{Type: []parser.JSONType{parser.TypeBoolean}}

	assert.Equal(t, "bool", r.Resolve(s, false, ""))
	assert.Equal(t, "bool?", r.Resolve(s, true, ""))
}

func TestResolve_StringFormats(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name     string
		format   string
		nullable bool
		want     string
	}{
		{"plain string", "", false, "string"},
		{"plain string stays unmarked", "", true, "string"},
		{"date", "date", false, "DateTime"},
		{"nullable date", "date", true, "DateTime?"},
		{"date-time", "date-time", true, "DateTime?"},
		{"time", "time", false, "TimeSpan"},
		{"duration", "duration", true, "TimeSpan?"},
		{"time-span legacy", "time-span", false, "TimeSpan"},
		{"guid", "guid", false, "Guid"},
		{"uuid nullable", "uuid", true, "Guid?"},
		{"byte is a reference type", "byte", true, "byte[]"},
		{"base64", "base64", false, "byte[]"},
		{"binary", "binary", false, "byte[]"},
		{"unknown format falls back", "email", false, "string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &parser.Schema{Type: []parser.JSONType{parser.TypeString}, Format: tt.format}
			assert.Equal(t, tt.want, r.Resolve(s, tt.nullable, ""))
		})
	}
}

func TestResolve_ConfiguredScalarAsString(t *testing.T) {
	// A date type configured as "string" is already nullable by convention
	// and must not receive a redundant marker.
	settings := DefaultSettings()
	settings.DateType = "string"
	r := NewTypeResolver(settings, defaultLanguage)

	s := &parser.Schema{Type: []parser.JSONType{parser.TypeString}, Format: "date"}
	assert.Equal(t, "string", r.Resolve(s, true, ""))
}

func TestResolve_File(t *testing.T) {
	r := newTestResolver()
	s := &parser.Schema{Type: []parser.JSONType{parser.TypeFile}}

	assert.Equal(t, "byte[]", r.Resolve(s, false, ""))
}

func TestResolve_ArrayVsTuple(t *testing.T) {
	r := newTestResolver()

	t.Run("single item schema", func(t *testing.T) {
		s := &parser.Schema{
			Type: []parser.JSONType{parser.TypeArray},
			Item: &parser.Schema{Type: []parser.JSONType{parser.TypeString}},
		}
		assert.Equal(t, "ObservableCollection<string>", r.Resolve(s, false, ""))
	})

	t.Run("element nullability is never propagated", func(t *testing.T) {
		s := &parser.Schema{
			Type: []parser.JSONType{parser.TypeArray},
			Item: &parser.Schema{Type: []parser.JSONType{parser.TypeInteger}, Nullable: true},
		}
		assert.Equal(t, "ObservableCollection<int>", r.Resolve(s, false, ""))
	})

	t.Run("ordered item list yields a tuple", func(t *testing.T) {
		s := &parser.Schema{
			Type: []parser.JSONType{parser.TypeArray},
			TupleItems: []*parser.Schema{
				{Type: []parser.JSONType{parser.TypeInteger}},
				{Type: []parser.JSONType{parser.TypeString}},
			},
		}
		assert.Equal(t, "Tuple<int, string>", r.Resolve(s, false, ""))
	})

	t.Run("underspecified array", func(t *testing.T) {
		s := &parser.Schema{Type: []parser.JSONType{parser.TypeArray}}
		assert.Equal(t, "ObservableCollection<object>", r.Resolve(s, false, ""))
		assert.NotEmpty(t, r.Issues(), "underspecified array records a warning")
	})
}

func TestResolve_Dictionary(t *testing.T) {
	t.Run("boolean value schema", func(t *testing.T) {
		r := newTestResolver()
		s := &parser.Schema{
			Type:                 []parser.JSONType{parser.TypeObject},
			AdditionalProperties: &parser.Schema{Type: []parser.JSONType{parser.TypeBoolean}},
		}
		assert.Equal(t, "Dictionary<string, bool>", r.Resolve(s, false, ""))
	})

	t.Run("absent value schema defaults to the top type", func(t *testing.T) {
		r := newTestResolver()
		s := &parser.Schema{Type: []parser.JSONType{parser.TypeObject}, AdditionalAllowed: true}
		assert.Equal(t, "Dictionary<string, object>", r.Resolve(s, false, ""))
	})

	t.Run("nullable value policy", func(t *testing.T) {
		settings := DefaultSettings()
		settings.NullableDictionaryValues = true
		r := NewTypeResolver(settings, defaultLanguage)

		s := &parser.Schema{
			Type:                 []parser.JSONType{parser.TypeObject},
			AdditionalProperties: &parser.Schema{Type: []parser.JSONType{parser.TypeInteger}},
		}
		assert.Equal(t, "Dictionary<string, int?>", r.Resolve(s, false, ""))
	})
}

func TestResolve_EnumInference(t *testing.T) {
	t.Run("all integer literals infer an integer-backed enum", func(t *testing.T) {
		r := newTestResolver()
		s := &parser.Schema{Enum: []any{1, 2, 3}}

		name := r.Resolve(s, false, "Priority")
		assert.Equal(t, "Priority", name)

		gen, ok := r.Registry().Get("Priority")
		require.True(t, ok)
		enumGen, ok := gen.(*EnumGenerator)
		require.True(t, ok, "integer enumeration must reserve an enum generator")
		assert.True(t, enumGen.IsIntegerBacked())
	})

	t.Run("string literals infer a string-backed enum", func(t *testing.T) {
		r := newTestResolver()
		s := &parser.Schema{Enum: []any{"a", "b"}}

		name := r.Resolve(s, false, "Letter")
		assert.Equal(t, "Letter", name)

		gen, ok := r.Registry().Get("Letter")
		require.True(t, ok)
		enumGen, ok := gen.(*EnumGenerator)
		require.True(t, ok)
		assert.False(t, enumGen.IsIntegerBacked())
	})

	t.Run("mixed literals infer a string-backed enum", func(t *testing.T) {
		r := newTestResolver()
		s := &parser.Schema{Enum: []any{1, "b"}}

		r.Resolve(s, false, "Mixed")
		gen, ok := r.Registry().Get("Mixed")
		require.True(t, ok)
		assert.False(t, gen.(*EnumGenerator).IsIntegerBacked())
	})

	t.Run("integral float literals count as integers", func(t *testing.T) {
		// JSON decoding produces float64 for every number.
		r := newTestResolver()
		s := &parser.Schema{Enum: []any{float64(1), float64(2)}}

		r.Resolve(s, false, "FromJSON")
		gen, ok := r.Registry().Get("FromJSON")
		require.True(t, ok)
		assert.True(t, gen.(*EnumGenerator).IsIntegerBacked())
	})
}

func TestResolve_EnumNullability(t *testing.T) {
	r := newTestResolver()
	intEnum := &parser.Schema{Type: []parser.JSONType{parser.TypeInteger}, Enum: []any{1, 2}}
	strEnum := &parser.Schema{Type: []parser.JSONType{parser.TypeString}, Enum: []any{"a"}}

	assert.Equal(t, "Level?", r.Resolve(intEnum, true, "Level"))
	assert.Equal(t, "Level", r.Resolve(intEnum, false, "Level"))
	assert.Equal(t, "Kind?", r.Resolve(strEnum, true, "Kind"))
	assert.Equal(t, "Kind", r.Resolve(strEnum, false, "Kind"))
}

func TestResolve_NullabilityIdempotence(t *testing.T) {
	r := newTestResolver()
	s := &parser.Schema{Type: []parser.JSONType{parser.TypeInteger}}

	first := r.Resolve(s, true, "")
	second := r.Resolve(s, true, "")
	assert.Equal(t, first, second, "same inputs must yield the identical expression")
	assert.Equal(t, "int?", first)
	assert.Equal(t, "int", r.Resolve(s, false, ""), "non-nullable never includes the marker")
}

func TestResolve_NameStabilityUnderCycles(t *testing.T) {
	// A self-referential object resolves to the same name on every visit and
	// the run terminates with exactly one named type.
	node := &parser.Schema{Type: []parser.JSONType{parser.TypeObject}}
	node.Properties = map[string]*parser.Schema{"next": node}
	node.Required = []string{"next"}

	r := newTestResolver()
	first := r.Resolve(node, false, "Node")
	second := r.Resolve(node, false, "Node")

	assert.Equal(t, "Node", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.Registry().Len())

	gen, ok := r.Registry().Get("Node")
	require.True(t, ok)
	text, err := gen.Render("Node")
	require.NoError(t, err)
	assert.Contains(t, text, "public Node Next { get; set; }",
		"the member type expression refers to the type's own name")
	assert.Equal(t, 1, r.Registry().Len(), "rendering must not reserve a second copy")
}

func TestResolve_UpgradeInPlace(t *testing.T) {
	intEnum := &parser.Schema{Type: []parser.JSONType{parser.TypeInteger}, Enum: []any{1, 2, 3}}
	r := newTestResolver()

	// Simulate a first visit on a path without enumeration knowledge: the
	// name is reserved and bound to a generic class generator.
	name := r.names.GetOrAllocate(intEnum, "Status")
	r.registry.AddOrReplace(name, NewClassGenerator(intEnum, r.settings, r))
	r.registry.AddOrReplace("Other", NewClassGenerator(&parser.Schema{}, r.settings, r))

	// Revisiting with full knowledge rebinds the generator in place.
	got := r.Resolve(intEnum, false, "IgnoredLaterHint")
	assert.Equal(t, "Status", got, "the original name must be preserved")

	gen, ok := r.Registry().Get("Status")
	require.True(t, ok)
	assert.IsType(t, &EnumGenerator{}, gen, "binding upgraded to an enum generator")
	assert.Equal(t, []string{"Status", "Other"}, r.Registry().Names(),
		"replacement keeps the insertion position")
}

func TestResolve_SameNodeDifferentHints(t *testing.T) {
	s := &parser.Schema{Type: []parser.JSONType{parser.TypeObject}}
	r := newTestResolver()

	first := r.Resolve(s, false, "Order")
	second := r.Resolve(s, false, "Invoice")
	assert.Equal(t, "Order", first)
	assert.Equal(t, first, second, "first-come naming wins; later hints are ignored")
}

func TestResolve_HintCollision(t *testing.T) {
	r := newTestResolver()
	a := &parser.Schema{Type: []parser.JSONType{parser.TypeObject}}
	b := &parser.Schema{Type: []parser.JSONType{parser.TypeObject}}

	assert.Equal(t, "Item", r.Resolve(a, false, "Item"))
	assert.Equal(t, "Item2", r.Resolve(b, false, "Item"))
}

func TestResolve_MalformedFallsBackToObject(t *testing.T) {
	// An unrecognized structural combination degrades to the generic object
	// fallback rather than raising an error.
	r := newTestResolver()
	s := &parser.Schema{Type: []parser.JSONType{"frobnicate"}}

	name := r.Resolve(s, false, "Weird")
	assert.Equal(t, "Weird", name)
	_, ok := r.Registry().Get("Weird")
	assert.True(t, ok)
}

func TestResolve_DereferencedIdentity(t *testing.T) {
	// Two differently-hinted references to the same node converge on one name.
	doc := []byte(`
definitions:
  Shared:
    type: object
  UserA:
    type: object
    properties:
      left:
        $ref: '#/definitions/Shared'
  UserB:
    type: object
    properties:
      right:
        $ref: '#/definitions/Shared'
`)
	parsed, err := parser.ParseWithOptions(parser.WithBytes(doc))
	require.NoError(t, err)

	r := newTestResolver()
	left := parsed.Definition("UserA").Properties["left"]
	right := parsed.Definition("UserB").Properties["right"]

	nameA := r.Resolve(left, false, "LeftThing")
	nameB := r.Resolve(right, false, "RightThing")
	assert.Equal(t, nameA, nameB, "identity is the dereferenced node, not the hint")
	assert.Equal(t, 1, r.Registry().Len())
}

func TestDrainRegistry_TransitiveReservations(t *testing.T) {
	// Rendering a class can reserve further types; the drain loop must pick
	// them up in the same run.
	inner := &parser.Schema{Type: []parser.JSONType{parser.TypeObject}}
	outer := &parser.Schema{
		Type:       []parser.JSONType{parser.TypeObject},
		Properties: map[string]*parser.Schema{"inner": inner},
	}

	r := newTestResolver()
	r.Resolve(outer, false, "Outer")
	require.Equal(t, 1, r.Registry().Len(), "member types are reserved lazily")

	body, err := drainRegistry(r)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Registry().Len())
	assert.Contains(t, body, "public partial class Outer")
	assert.Contains(t, body, "public partial class OuterInner")
	assert.Less(t, strings.Index(body, "class Outer"), strings.Index(body, "class OuterInner"),
		"output is emitted in insertion order")
}
