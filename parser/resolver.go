// This file implements $ref binding: every reference node in the graph is
// bound to its concrete target so ActualSchema never performs lookups.

package parser

import (
	"strings"

	"github.com/typesmith/typesmith/tserrors"
)

// refPrefixes are the local reference pointer forms the resolver accepts.
var refPrefixes = []string{
	"#/definitions/",
	"#/$defs/",
	"#/components/schemas/",
}

// refResolver binds $ref nodes in one document to their targets.
type refResolver struct {
	doc    *Document
	logger Logger
	// visited guards the graph walk against revisiting shared nodes
	visited map[*Schema]bool
}

func newRefResolver(doc *Document, logger Logger) *refResolver {
	return &refResolver{
		doc:     doc,
		logger:  logger,
		visited: make(map[*Schema]bool),
	}
}

// bindAll binds every reference in the document and rejects purely circular
// reference chains (a $ref whose dereferencing never reaches a concrete node).
func (r *refResolver) bindAll() error {
	for _, name := range r.doc.DefinitionNames() {
		if err := r.bind(r.doc.Definitions[name]); err != nil {
			return err
		}
	}
	if r.doc.Root != nil {
		if err := r.bind(r.doc.Root); err != nil {
			return err
		}
	}
	return r.checkRefChains()
}

// bind recursively binds refs below one schema node.
func (r *refResolver) bind(s *Schema) error {
	if s == nil || r.visited[s] {
		return nil
	}
	r.visited[s] = true

	if s.Ref != "" {
		target := r.lookup(s.Ref)
		if target == nil {
			return &tserrors.ReferenceError{Ref: s.Ref, Message: "target not found"}
		}
		s.resolved = target
		r.logger.Debug("bound reference", "ref", s.Ref)
	}

	for _, name := range s.PropertyNames() {
		if err := r.bind(s.Properties[name]); err != nil {
			return err
		}
	}
	if err := r.bind(s.Item); err != nil {
		return err
	}
	for _, item := range s.TupleItems {
		if err := r.bind(item); err != nil {
			return err
		}
	}
	if err := r.bind(s.AdditionalProperties); err != nil {
		return err
	}
	for _, sub := range s.AllOf {
		if err := r.bind(sub); err != nil {
			return err
		}
	}
	return nil
}

// lookup resolves a local pointer to its definition schema, or nil.
func (r *refResolver) lookup(ref string) *Schema {
	for _, prefix := range refPrefixes {
		if name, ok := strings.CutPrefix(ref, prefix); ok {
			return r.doc.Definitions[name]
		}
	}
	return nil
}

// checkRefChains rejects reference chains that never reach a concrete node.
// Chains through concrete nodes (self-referential objects) are fine; only a
// pure ref-to-ref cycle is an error, because ActualSchema could not terminate.
func (r *refResolver) checkRefChains() error {
	for node := range r.visited {
		if node.Ref == "" {
			continue
		}
		seen := map[*Schema]bool{node: true}
		current := node
		for current.resolved != nil {
			current = current.resolved
			if seen[current] {
				return &tserrors.ReferenceError{Ref: node.Ref, IsCircular: true}
			}
			seen[current] = true
		}
	}
	return nil
}
