// Package entities contains core domain data structures.
package entities

// IRI identifies a graph node or predicate.
type IRI string

// Term is the object position of a statement: an IRI or a Literal.
type Term interface {
	isTerm()
}

func (IRI) isTerm() {}

// Literal is a string value, optionally language-tagged or datatyped.
// Lang and Datatype are mutually exclusive.
type Literal struct {
	Value    string
	Lang     string
	Datatype IRI
}

func (Literal) isTerm() {}

// Text returns an English-tagged literal.
func Text(value string) Literal {
	return Literal{Value: value, Lang: "en"}
}

// Statement is a single subject-predicate-object fact in the graph.
type Statement struct {
	Subject   IRI
	Predicate IRI
	Object    Term
}

// Graph is an in-memory, insertion-ordered statement collection.
// During an enrichment run it is append-only: statements are never
// deleted or rewritten, and re-insertion may duplicate statements.
type Graph struct {
	statements []Statement
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add appends a statement to the graph.
func (g *Graph) Add(st Statement) {
	g.statements = append(g.statements, st)
}

// Len returns the number of statements in the graph.
func (g *Graph) Len() int {
	return len(g.statements)
}

// Statements returns the statements in insertion order.
// The returned slice is owned by the graph and must not be modified.
func (g *Graph) Statements() []Statement {
	return g.statements
}
