// This file implements the type resolver: the recursive mapping from a schema
// node to a C# type expression, either an inline primitive expression or the
// name of a registry-reserved generated type.

package generator

import (
	"fmt"
	"strings"

	"github.com/typesmith/typesmith/internal/issues"
	"github.com/typesmith/typesmith/internal/severity"
	"github.com/typesmith/typesmith/parser"
)

// TypeResolver maps schema nodes to C# type expressions, reserving named
// types in its registry as it goes. One resolver instance drives one
// generation run; it owns the run's registry and name allocator and is not
// safe for concurrent use.
type TypeResolver struct {
	settings *Settings
	language string
	registry *TypeRegistry
	names    *TypeNameAllocator
	issues   []issues.Issue
}

// NewTypeResolver creates a resolver with a fresh registry and allocator for
// one generation run.
func NewTypeResolver(settings *Settings, language string) *TypeResolver {
	return &TypeResolver{
		settings: settings,
		language: language,
		registry: NewTypeRegistry(),
		names:    NewTypeNameAllocator(),
	}
}

// Registry returns the run's generator registry.
func (r *TypeResolver) Registry() *TypeRegistry {
	return r.registry
}

// Resolve maps a schema node to a C# type expression. It never fails:
// malformed or ambiguous nodes degrade to the most permissive applicable
// type rather than raising an error, mirroring the permissiveness of the
// schema format itself.
//
// Resolution operates on the dereferenced node. The hint feeds the name
// allocator when the node needs a generated named type; nullability appends
// the C# nullable marker for value types.
func (r *TypeResolver) Resolve(schema *parser.Schema, isNullable bool, typeNameHint string) string {
	schema = schema.ActualSchema()

	if schema.IsAnyType() {
		// Already implicitly nullable, no marker regardless of the caller.
		return r.settings.AnyType
	}

	types := schema.Type
	if len(types) == 0 && schema.IsEnumeration() {
		// An untyped enumeration still routes through the typed branches:
		// integer-backed when every literal is integral, string-backed
		// otherwise (mixed sets included).
		if allIntegerLiterals(schema.Enum) {
			types = []parser.JSONType{parser.TypeInteger}
		} else {
			types = []parser.JSONType{parser.TypeString}
		}
	}

	switch {
	case hasFlag(types, parser.TypeArray):
		return r.resolveArray(schema, typeNameHint)
	case hasFlag(types, parser.TypeNumber):
		return r.resolveNumber(schema, isNullable)
	case hasFlag(types, parser.TypeInteger):
		return r.resolveInteger(schema, isNullable, typeNameHint)
	case hasFlag(types, parser.TypeBoolean):
		return nullableSuffix("bool", isNullable)
	case hasFlag(types, parser.TypeString):
		return r.resolveString(schema, isNullable, typeNameHint)
	case hasFlag(types, parser.TypeFile):
		return "byte[]"
	case schema.IsDictionary():
		return r.resolveDictionary(schema)
	default:
		// Object schemas land here, and so does every unrecognized
		// structural combination.
		return r.GenerateOrGetType(schema, typeNameHint)
	}
}

// resolveArray maps array nodes: a single item schema yields a sequence
// container, an ordered item list yields a fixed-arity tuple, and neither
// yields a sequence of the top type. Element nullability is never propagated.
func (r *TypeResolver) resolveArray(schema *parser.Schema, typeNameHint string) string {
	if schema.Item != nil {
		itemType := r.Resolve(schema.Item, false, typeNameHint)
		return fmt.Sprintf("%s<%s>", r.settings.ArrayType, itemType)
	}

	if len(schema.TupleItems) > 0 {
		itemTypes := make([]string, len(schema.TupleItems))
		for i, item := range schema.TupleItems {
			itemTypes[i] = r.Resolve(item, false, typeNameHint)
		}
		return fmt.Sprintf("Tuple<%s>", strings.Join(itemTypes, ", "))
	}

	r.addIssue(typeNameHint, severity.SeverityWarning, "array without item schema, using %s items", r.settings.AnyType)
	return fmt.Sprintf("%s<%s>", r.settings.ArrayType, r.settings.AnyType)
}

// resolveNumber maps number nodes: the "decimal" format gets the fixed-point
// scalar, everything else the double-precision scalar.
func (r *TypeResolver) resolveNumber(schema *parser.Schema, isNullable bool) string {
	if schema.Format == "decimal" {
		return nullableSuffix("decimal", isNullable)
	}
	return nullableSuffix("double", isNullable)
}

// resolveInteger maps integer nodes. Integer enumerations are always named
// types, never inline scalars, and take the upgrade path: a name previously
// bound to a less-informed generator is rebound to an enum generator.
func (r *TypeResolver) resolveInteger(schema *parser.Schema, isNullable bool, typeNameHint string) string {
	if schema.IsEnumeration() {
		return nullableSuffix(r.generateOrUpgradeEnum(schema, typeNameHint), isNullable)
	}

	switch schema.Format {
	case "byte":
		return nullableSuffix("byte", isNullable)
	case "long", "int64":
		return nullableSuffix("long", isNullable)
	default:
		return nullableSuffix("int", isNullable)
	}
}

// resolveString maps string nodes. Date, time, and duration formats map to
// configured scalar types; a scalar configured as "string" is already
// nullable by convention and never gets a marker. Byte sequences are
// reference types and never get a marker either.
func (r *TypeResolver) resolveString(schema *parser.Schema, isNullable bool, typeNameHint string) string {
	switch schema.Format {
	case "date":
		return r.configuredScalar(r.settings.DateType, isNullable)
	case "date-time":
		return r.configuredScalar(r.settings.DateTimeType, isNullable)
	case "time":
		return r.configuredScalar(r.settings.TimeType, isNullable)
	case "time-span", "duration":
		return r.configuredScalar(r.settings.TimeSpanType, isNullable)
	case "guid", "uuid":
		return nullableSuffix("Guid", isNullable)
	case "base64", "byte", "binary":
		return "byte[]"
	}

	if schema.IsEnumeration() {
		return nullableSuffix(r.GenerateOrGetType(schema, typeNameHint), isNullable)
	}

	return "string"
}

// resolveDictionary maps dictionary nodes to the configured map container
// parameterized by (string, value type). An absent value schema defaults to
// the top type; a present one respects the nullable-value policy.
func (r *TypeResolver) resolveDictionary(schema *parser.Schema) string {
	valueType := r.settings.AnyType
	if schema.AdditionalProperties != nil {
		valueType = r.Resolve(schema.AdditionalProperties, r.settings.NullableDictionaryValues, "")
	}
	return fmt.Sprintf("%s<string, %s>", r.settings.DictionaryType, valueType)
}

// GenerateOrGetType reserves a named type for the schema and returns its
// allocated name. The name is reserved before the generator ever resolves
// member types, so re-entry through a reference cycle terminates here.
func (r *TypeResolver) GenerateOrGetType(schema *parser.Schema, typeNameHint string) string {
	schema = schema.ActualSchema()
	name := r.names.GetOrAllocate(schema, typeNameHint)
	if _, reserved := r.registry.Get(name); !reserved {
		r.registry.AddOrReplace(name, r.newGeneratorFor(schema))
	}
	return name
}

// generateOrUpgradeEnum reserves a named enum type for an integer-backed
// enumeration. If the name is already bound to a non-enum generator — the
// node was first seen on a path without enumeration knowledge — the binding
// is replaced in place; the name and its insertion position are preserved so
// references held by earlier callers stay valid.
//
// Only integer enumerations upgrade. String enumerations carry their literal
// knowledge on first sight, so the asymmetry is deliberate.
func (r *TypeResolver) generateOrUpgradeEnum(schema *parser.Schema, typeNameHint string) string {
	schema = schema.ActualSchema()
	name := r.names.GetOrAllocate(schema, typeNameHint)
	if existing, reserved := r.registry.Get(name); !reserved || !isEnumGenerator(existing) {
		if reserved {
			r.addIssue(name, severity.SeverityInfo, "upgraded to integer enum generator")
		}
		r.registry.AddOrReplace(name, NewEnumGenerator(schema, r.settings, r))
	}
	return name
}

// newGeneratorFor picks the generator kind for a named type.
func (r *TypeResolver) newGeneratorFor(schema *parser.Schema) TypeGenerator {
	if schema.IsEnumeration() {
		return NewEnumGenerator(schema, r.settings, r)
	}
	return NewClassGenerator(schema, r.settings, r)
}

// Issues returns the issues recorded while resolving, in order.
func (r *TypeResolver) Issues() []issues.Issue {
	return r.issues
}

func (r *TypeResolver) addIssue(typeName string, sev severity.Severity, format string, args ...any) {
	r.issues = append(r.issues, issues.Issue{
		TypeName: typeName,
		Message:  fmt.Sprintf(format, args...),
		Severity: sev,
	})
}

func isEnumGenerator(gen TypeGenerator) bool {
	_, ok := gen.(*EnumGenerator)
	return ok
}

func hasFlag(types []parser.JSONType, t parser.JSONType) bool {
	for _, st := range types {
		if st == t {
			return true
		}
	}
	return false
}

// nullableSuffix appends the C# nullable marker to value types on request.
func nullableSuffix(typeName string, isNullable bool) string {
	if isNullable {
		return typeName + "?"
	}
	return typeName
}

// configuredScalar applies nullability to a configured scalar type. A type
// configured as "string" is already nullable by convention and must not
// receive a redundant marker.
func (r *TypeResolver) configuredScalar(typeName string, isNullable bool) string {
	if isNullable && typeName != "string" {
		return typeName + "?"
	}
	return typeName
}

// allIntegerLiterals reports whether every enumeration literal is an integer
// value. YAML decodes integers as int or uint64; JSON decodes all numbers as
// float64, so integral floats count too.
func allIntegerLiterals(literals []any) bool {
	for _, v := range literals {
		switch n := v.(type) {
		case int, int64, uint64:
			// integral
		case float64:
			if n != float64(int64(n)) {
				return false
			}
		default:
			return false
		}
	}
	return true
}
