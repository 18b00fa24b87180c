package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/typesmith/typesmith/parser"
)

func TestToTypeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"pet", "Pet"},
		{"pet-store", "PetStore"},
		{"pet_store_item", "PetStoreItem"},
		{"APIKey", "APIKey"},
		{"order.line item", "OrderLineItem"},
		{"", "Anonymous"},
		{"---", "Anonymous"},
		{"2-fast", "_2Fast"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, toTypeName(tt.input))
		})
	}
}

func TestTypeNameAllocator_Idempotent(t *testing.T) {
	a := NewTypeNameAllocator()
	s := &parser.Schema{}

	first := a.GetOrAllocate(s, "Pet")
	second := a.GetOrAllocate(s, "Animal")

	assert.Equal(t, "Pet", first)
	assert.Equal(t, first, second, "same identity must keep its first name")
}

func TestTypeNameAllocator_Collision(t *testing.T) {
	a := NewTypeNameAllocator()

	assert.Equal(t, "Pet", a.GetOrAllocate(&parser.Schema{}, "Pet"))
	assert.Equal(t, "Pet2", a.GetOrAllocate(&parser.Schema{}, "Pet"))
	assert.Equal(t, "Pet3", a.GetOrAllocate(&parser.Schema{}, "pet"))
}

func TestTypeNameAllocator_TitleFallback(t *testing.T) {
	a := NewTypeNameAllocator()
	s := &parser.Schema{Title: "line item"}

	assert.Equal(t, "LineItem", a.GetOrAllocate(s, ""))
}

func TestTypeNameAllocator_SynthesizedFallback(t *testing.T) {
	a := NewTypeNameAllocator()

	assert.Equal(t, "Anonymous", a.GetOrAllocate(&parser.Schema{}, ""))
	assert.Equal(t, "Anonymous2", a.GetOrAllocate(&parser.Schema{}, ""))
}
