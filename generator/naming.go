// This file implements type name allocation: converting naming hints to valid
// C# type names and issuing exactly one stable name per schema identity.

package generator

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/typesmith/typesmith/parser"
)

// titleCaser uppercases the first letter of a word without lowering the rest,
// so acronym-style hints like "APIKey" survive conversion.
var titleCaser = cases.Title(language.English, cases.NoLower)

// toTypeName converts a naming hint to a valid C# type name (PascalCase).
// Non-alphanumeric characters split words; a leading digit is prefixed.
func toTypeName(s string) string {
	if s == "" {
		return "Anonymous"
	}

	var result strings.Builder
	word := strings.Builder{}
	flush := func() {
		if word.Len() > 0 {
			result.WriteString(titleCaser.String(word.String()))
			word.Reset()
		}
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	name := result.String()
	if name == "" {
		return "Anonymous"
	}
	if !unicode.IsLetter(rune(name[0])) {
		name = "_" + name
	}
	return name
}

// TypeNameAllocator issues unique type names, stable for the lifetime of one
// generation run.
//
// Allocation is idempotent per schema identity: the identity is the
// dereferenced node, not the hint string, so two differently-hinted
// references to the same node converge on one name. First-come naming wins;
// later hints are ignored. Hint collisions between distinct nodes get a
// numeric suffix.
type TypeNameAllocator struct {
	bySchema map[*parser.Schema]string
	taken    map[string]bool
}

// NewTypeNameAllocator creates an empty allocator for one generation run.
func NewTypeNameAllocator() *TypeNameAllocator {
	return &TypeNameAllocator{
		bySchema: make(map[*parser.Schema]string),
		taken:    make(map[string]bool),
	}
}

// GetOrAllocate returns the name already issued for the schema's identity, or
// allocates a new one derived from the hint (falling back to the schema title,
// then to a synthesized name).
func (a *TypeNameAllocator) GetOrAllocate(schema *parser.Schema, hint string) string {
	schema = schema.ActualSchema()
	if name, ok := a.bySchema[schema]; ok {
		return name
	}

	if hint == "" {
		hint = schema.Title
	}
	base := toTypeName(hint)

	name := base
	for i := 2; a.taken[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	a.taken[name] = true
	a.bySchema[schema] = name
	return name
}
