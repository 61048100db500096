package services

import (
	"strings"

	"github.com/ersonp/cardlink/internal/domain/entities"
)

// Linker emits the statements that attach a card record to its matched
// entity. Identifier derivation is deterministic: re-running the same
// catalog over the same graph mints the same card IRIs.
type Linker struct{}

// NewLinker creates a new Linker.
func NewLinker() *Linker {
	return &Linker{}
}

// CardIRI derives the card node identifier: the card id when present,
// otherwise the resolved name with spaces replaced by underscores.
func (l *Linker) CardIRI(card entities.CardRecord) entities.IRI {
	id := card.ID
	if id == "" {
		id = strings.ReplaceAll(card.Name, " ", "_")
	}
	return entities.IRI(entities.CardNamespace + id)
}

// Link returns the statements describing card and its relation to the
// matched entity. All textual literals are tagged as English regardless of
// the record's source language. Optional property statements are emitted
// only when the source field is non-empty.
func (l *Linker) Link(card entities.CardRecord, entity entities.IRI) []entities.Statement {
	cardIRI := l.CardIRI(card)

	statements := []entities.Statement{
		{Subject: cardIRI, Predicate: entities.RDFType, Object: entities.SchemaThing},
		{Subject: cardIRI, Predicate: entities.RDFSLabel, Object: entities.Text(card.Name)},
		{Subject: entity, Predicate: entities.SchemaSubjectOf, Object: cardIRI},
	}

	if card.Type != "" {
		statements = append(statements, entities.Statement{
			Subject:   cardIRI,
			Predicate: entities.SchemaAdditionalType,
			Object:    entities.Text(card.Type),
		})
	}
	if card.Alignment != "" {
		statements = append(statements, entities.Statement{
			Subject:   cardIRI,
			Predicate: entities.SchemaAdditionalProperty,
			Object:    entities.Text("alignment: " + card.Alignment),
		})
	}
	if card.Set != "" {
		statements = append(statements, entities.Statement{
			Subject:   cardIRI,
			Predicate: entities.SchemaIsPartOf,
			Object:    entities.Text("METW Set: " + card.Set),
		})
	}

	return statements
}
