package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typesmith/typesmith/tserrors"
)

func TestRefResolver_BindsNestedRefs(t *testing.T) {
	data := []byte(`
definitions:
  Address:
    type: object
    properties:
      city:
        type: string
  Person:
    type: object
    properties:
      home:
        $ref: '#/definitions/Address'
      addresses:
        type: array
        items:
          $ref: '#/definitions/Address'
      meta:
        type: object
        additionalProperties:
          $ref: '#/definitions/Address'
`)
	doc, err := ParseWithOptions(WithBytes(data))
	require.NoError(t, err)

	address := doc.Definition("Address")
	person := doc.Definition("Person")
	require.NotNil(t, address)
	require.NotNil(t, person)

	assert.Same(t, address, person.Properties["home"].ActualSchema())
	assert.Same(t, address, person.Properties["addresses"].Item.ActualSchema())
	assert.Same(t, address, person.Properties["meta"].AdditionalProperties.ActualSchema())
}

func TestRefResolver_MissingTarget(t *testing.T) {
	data := []byte(`
definitions:
  Person:
    type: object
    properties:
      home:
        $ref: '#/definitions/Nowhere'
`)
	_, err := ParseWithOptions(WithBytes(data))
	require.Error(t, err)

	var refErr *tserrors.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "#/definitions/Nowhere", refErr.Ref)
	assert.False(t, refErr.IsCircular)
}

func TestRefResolver_CircularRefChain(t *testing.T) {
	data := []byte(`
definitions:
  A:
    $ref: '#/definitions/B'
  B:
    $ref: '#/definitions/A'
`)
	_, err := ParseWithOptions(WithBytes(data))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tserrors.ErrCircularReference))
}

func TestRefResolver_SelfReferenceThroughConcreteNode(t *testing.T) {
	// A node referencing itself through a property is not a pure ref cycle:
	// dereferencing reaches a concrete node, so this must parse cleanly.
	data := []byte(`
definitions:
  Node:
    type: object
    properties:
      next:
        $ref: '#/definitions/Node'
`)
	doc, err := ParseWithOptions(WithBytes(data))
	require.NoError(t, err)

	node := doc.Definition("Node")
	assert.Same(t, node, node.Properties["next"].ActualSchema())
}

func TestRefResolver_AllOfRefs(t *testing.T) {
	data := []byte(`
definitions:
  Animal:
    type: object
    properties:
      name:
        type: string
  Dog:
    allOf:
      - $ref: '#/definitions/Animal'
      - type: object
        properties:
          barks:
            type: boolean
`)
	doc, err := ParseWithOptions(WithBytes(data))
	require.NoError(t, err)

	dog := doc.Definition("Dog")
	require.NotNil(t, dog.BaseSchema())
	assert.Same(t, doc.Definition("Animal"), dog.BaseSchema())
}
