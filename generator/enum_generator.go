// This file implements the enum generator: per named enumeration type, it
// derives member names and values from the literal set and produces the
// rendering model for the enum template.

package generator

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/typesmith/typesmith/parser"
)

// EnumGenerator produces the declaration of one generated C# enum.
// Enumerations are always named types, never inline expressions.
type EnumGenerator struct {
	schema   *parser.Schema
	settings *Settings
	resolver *TypeResolver
}

// NewEnumGenerator creates an enum generator for a reserved type name.
func NewEnumGenerator(schema *parser.Schema, settings *Settings, resolver *TypeResolver) *EnumGenerator {
	return &EnumGenerator{schema: schema, settings: settings, resolver: resolver}
}

// EnumModel is the rendering model consumed by the enum template.
type EnumModel struct {
	Name        string
	Description string
	// IsStringBacked selects EnumMember attributes with ordinal values;
	// integer-backed enums carry their literal values directly.
	IsStringBacked bool
	Members        []EnumMemberModel
}

// EnumMemberModel is one member of an enum rendering model.
type EnumMemberModel struct {
	// Name is the C# member name
	Name string
	// Value is the numeric value assigned to the member
	Value string
	// Literal is the wire literal, used by string-backed enums
	Literal string
}

// IsIntegerBacked reports whether the enumeration carries integer values:
// either declared integer-typed, or untyped with an all-integer literal set.
func (g *EnumGenerator) IsIntegerBacked() bool {
	schema := g.schema
	if schema.HasType(parser.TypeInteger) {
		return true
	}
	return len(schema.Type) == 0 && allIntegerLiterals(schema.Enum)
}

// Render renders the enum declaration.
func (g *EnumGenerator) Render(name string) (string, error) {
	return renderTemplate(g.resolver.language, "enum", g.model(name))
}

func (g *EnumGenerator) model(name string) EnumModel {
	model := EnumModel{
		Name:           name,
		Description:    g.schema.Description,
		IsStringBacked: !g.IsIntegerBacked(),
	}

	for i, literal := range g.schema.Enum {
		member := EnumMemberModel{
			Name:    toEnumMemberName(literal),
			Literal: fmt.Sprint(literal),
		}
		if model.IsStringBacked {
			member.Value = strconv.Itoa(i)
		} else {
			member.Value = formatIntegerLiteral(literal)
		}
		model.Members = append(model.Members, member)
	}
	return model
}

// toEnumMemberName derives a C# member name from an enumeration literal.
// Numeric literals get an underscore prefix since identifiers cannot start
// with a digit.
func toEnumMemberName(literal any) string {
	if s, ok := literal.(string); ok {
		name := toTypeName(s)
		if name != "Anonymous" {
			return name
		}
	}
	name := "_" + formatIntegerLiteral(literal)
	if len(name) > 1 && unicode.IsLetter(rune(name[1])) {
		return toTypeName(name[1:])
	}
	return name
}

// formatIntegerLiteral renders an integral literal without a decimal point,
// regardless of whether the decoder produced an int or a float64.
func formatIntegerLiteral(literal any) string {
	switch n := literal.(type) {
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float64:
		return strconv.FormatInt(int64(n), 10)
	default:
		return fmt.Sprint(literal)
	}
}
