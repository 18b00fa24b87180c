// This file implements document decoding: building the schema graph from the
// generic map produced by the YAML/JSON decoders.

package parser

import "sort"

// Document is a parsed schema document: the named definitions plus an
// optional root schema when the document is itself a schema.
type Document struct {
	// Title is the document title, if declared
	Title string
	// Root is the document's own schema, nil for pure definition collections
	Root *Schema
	// Definitions maps definition name to schema
	Definitions map[string]*Schema
	// SourceFormat is the serialization format the document was decoded from
	SourceFormat SourceFormat

	// definitionOrder holds definition names sorted for deterministic output
	definitionOrder []string
}

// DefinitionNames returns the definition names in deterministic (sorted) order.
func (d *Document) DefinitionNames() []string {
	return d.definitionOrder
}

// Definition returns the named definition schema, or nil if not present.
func (d *Document) Definition(name string) *Schema {
	return d.Definitions[name]
}

// schemaKeywords are the top-level keys that mark a document as being a
// schema itself rather than a bare definition collection.
var schemaKeywords = []string{
	"type", "properties", "items", "enum", "allOf", "$ref",
	"additionalProperties", "format",
}

// documentFromMap builds a Document from a decoded document map.
func documentFromMap(data map[string]any) *Document {
	doc := &Document{Definitions: make(map[string]*Schema)}
	doc.Title = asString(data["title"])
	if info, ok := data["info"].(map[string]any); ok && doc.Title == "" {
		doc.Title = asString(info["title"])
	}

	for name, raw := range definitionsIn(data) {
		if m, ok := raw.(map[string]any); ok {
			s := schemaFromMap(m)
			// A definition without an explicit title carries its definition
			// key, so consumers naming the node see the declared name no
			// matter which path reached it first.
			if s.Title == "" {
				s.Title = name
			}
			doc.Definitions[name] = s
			doc.definitionOrder = append(doc.definitionOrder, name)
		}
	}
	sort.Strings(doc.definitionOrder)

	for _, key := range schemaKeywords {
		if _, ok := data[key]; ok {
			doc.Root = schemaFromMap(data)
			break
		}
	}
	return doc
}

// definitionsIn locates the definition collection of a document, checking
// "definitions", "$defs", and "components.schemas" in that order.
func definitionsIn(data map[string]any) map[string]any {
	for _, key := range []string{"definitions", "$defs"} {
		if defs, ok := data[key].(map[string]any); ok {
			return defs
		}
	}
	if components, ok := data["components"].(map[string]any); ok {
		if schemas, ok := components["schemas"].(map[string]any); ok {
			return schemas
		}
	}
	return nil
}

// schemaFromMap builds a Schema node from a decoded schema map.
// Unrecognized keywords are ignored; the schema format is permissive and so
// is this decoder.
func schemaFromMap(m map[string]any) *Schema {
	s := &Schema{
		Ref:         asString(m["$ref"]),
		Title:       asString(m["title"]),
		Description: asString(m["description"]),
		Format:      asString(m["format"]),
		Default:     m["default"],
		Required:    asStringSlice(m["required"]),
	}

	// type: string or []string; "null" folds into Nullable
	switch t := m["type"].(type) {
	case string:
		s.Type = []JSONType{JSONType(t)}
	case []any:
		for _, entry := range t {
			if name, ok := entry.(string); ok {
				if JSONType(name) == TypeNull {
					s.Nullable = true
					continue
				}
				s.Type = append(s.Type, JSONType(name))
			}
		}
	}

	if enum, ok := m["enum"].([]any); ok {
		s.Enum = enum
	}

	// items: mapping for array-of-T, sequence for fixed tuples
	switch items := m["items"].(type) {
	case map[string]any:
		s.Item = schemaFromMap(items)
	case []any:
		for _, entry := range items {
			if im, ok := entry.(map[string]any); ok {
				s.TupleItems = append(s.TupleItems, schemaFromMap(im))
			}
		}
	}
	if prefix, ok := m["prefixItems"].([]any); ok && len(s.TupleItems) == 0 {
		for _, entry := range prefix {
			if im, ok := entry.(map[string]any); ok {
				s.TupleItems = append(s.TupleItems, schemaFromMap(im))
			}
		}
	}

	if props, ok := m["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*Schema, len(props))
		for name, raw := range props {
			if pm, ok := raw.(map[string]any); ok {
				s.Properties[name] = schemaFromMap(pm)
			}
		}
	}

	switch ap := m["additionalProperties"].(type) {
	case bool:
		s.AdditionalAllowed = ap
	case map[string]any:
		s.AdditionalProperties = schemaFromMap(ap)
	}

	if allOf, ok := m["allOf"].([]any); ok {
		for _, entry := range allOf {
			if am, ok := entry.(map[string]any); ok {
				s.AllOf = append(s.AllOf, schemaFromMap(am))
			}
		}
	}

	// nullable: OAS 3.0 keyword or the older x-nullable extension
	if nullable, ok := m["nullable"].(bool); ok && nullable {
		s.Nullable = true
	}
	if nullable, ok := m["x-nullable"].(bool); ok && nullable {
		s.Nullable = true
	}

	// discriminator: property name string (Swagger 2.0) or object (OAS 3.x)
	switch disc := m["discriminator"].(type) {
	case string:
		s.Discriminator = disc
	case map[string]any:
		s.Discriminator = asString(disc["propertyName"])
	}

	return s
}

// PropertyNames returns the property names of a schema in deterministic
// (sorted) order.
func (s *Schema) PropertyNames() []string {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func asString(v any) string {
	str, _ := v.(string)
	return str
}

func asStringSlice(v any) []string {
	entries, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if str, ok := entry.(string); ok {
			out = append(out, str)
		}
	}
	return out
}
