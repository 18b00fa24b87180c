// This file implements the class generator: per named object type, it
// resolves member schemas through the run's resolver and produces the
// rendering model for the class template.

package generator

import "github.com/typesmith/typesmith/parser"

// ClassGenerator produces the declaration of one generated C# class. Member
// resolution is deferred to Render so that all sibling reservations of the
// current resolution step complete first; recursive member resolution goes
// through the same resolver instance as the enclosing run, keeping
// cross-references between sibling types consistently named.
type ClassGenerator struct {
	schema   *parser.Schema
	settings *Settings
	resolver *TypeResolver
}

// NewClassGenerator creates a class generator for a reserved type name.
func NewClassGenerator(schema *parser.Schema, settings *Settings, resolver *TypeResolver) *ClassGenerator {
	return &ClassGenerator{schema: schema, settings: settings, resolver: resolver}
}

// ClassModel is the rendering model consumed by the class template.
type ClassModel struct {
	Name          string
	Description   string
	BaseClass     string
	Discriminator string
	Properties    []PropertyModel
}

// PropertyModel is one member of a class rendering model.
type PropertyModel struct {
	// Name is the C# property name
	Name string
	// JSONName is the wire name carried in the serialization attribute
	JSONName string
	// Type is the resolved C# type expression
	Type string
	// Required marks properties that must be present on the wire
	Required bool
}

// Render resolves the member schemas and renders the class declaration.
func (g *ClassGenerator) Render(name string) (string, error) {
	return renderTemplate(g.resolver.language, "class", g.model(name))
}

// model builds the rendering model, resolving every member type through the
// run's resolver. This is the point where transitive named types get
// reserved.
func (g *ClassGenerator) model(name string) ClassModel {
	model := ClassModel{
		Name:          name,
		Description:   g.schema.Description,
		Discriminator: g.schema.Discriminator,
	}

	if base := g.schema.BaseSchema(); base != nil {
		model.BaseClass = g.resolver.GenerateOrGetType(base, base.Title)
	}

	model.Properties = g.appendProperties(model.Properties, name, g.schema)
	for _, sub := range g.schema.InlineAllOf() {
		model.Properties = g.appendProperties(model.Properties, name, sub)
	}
	return model
}

// appendProperties resolves the declared properties of one schema (the class
// schema itself, or an inline allOf fragment) in deterministic order.
func (g *ClassGenerator) appendProperties(props []PropertyModel, typeName string, schema *parser.Schema) []PropertyModel {
	for _, propName := range schema.PropertyNames() {
		propSchema := schema.Properties[propName]
		required := schema.IsRequired(propName)
		nullable := !required || propSchema.ActualSchema().Nullable

		props = append(props, PropertyModel{
			Name:     toTypeName(propName),
			JSONName: propName,
			Type:     g.resolver.Resolve(propSchema, nullable, typeName+toTypeName(propName)),
			Required: required,
		})
	}
	return props
}
