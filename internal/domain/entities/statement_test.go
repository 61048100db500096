package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraph_AddKeepsInsertionOrder(t *testing.T) {
	g := NewGraph()
	assert.Equal(t, 0, g.Len())

	first := Statement{Subject: "a", Predicate: SchemaName, Object: Text("one")}
	second := Statement{Subject: "b", Predicate: SchemaName, Object: Text("two")}
	g.Add(first)
	g.Add(second)

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []Statement{first, second}, g.Statements())
}

func TestText(t *testing.T) {
	lit := Text("Gandalf")
	assert.Equal(t, "Gandalf", lit.Value)
	assert.Equal(t, "en", lit.Lang)
	assert.Empty(t, lit.Datatype)
}
