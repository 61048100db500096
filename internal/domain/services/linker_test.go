package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/cardlink/internal/domain/entities"
)

func TestLinker_CardIRI(t *testing.T) {
	linker := NewLinker()

	tests := []struct {
		name     string
		card     entities.CardRecord
		expected entities.IRI
	}{
		{
			name:     "id wins over name",
			card:     entities.CardRecord{ID: "1", Name: "Gandalf"},
			expected: entities.IRI(entities.CardNamespace + "1"),
		},
		{
			name:     "name with spaces underscored",
			card:     entities.CardRecord{Name: "Gandalf the Grey"},
			expected: entities.IRI(entities.CardNamespace + "Gandalf_the_Grey"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, linker.CardIRI(tt.card))
		})
	}
}

func TestLinker_CardIRIIsIdempotent(t *testing.T) {
	linker := NewLinker()
	card := entities.CardRecord{Name: "Gandalf the Grey", Type: "Hero"}

	assert.Equal(t, linker.CardIRI(card), linker.CardIRI(card))
	assert.Equal(t, linker.Link(card, e1), linker.Link(card, e1))
}

func TestLinker_Link_FullCard(t *testing.T) {
	linker := NewLinker()
	card := entities.CardRecord{ID: "1", Name: "Gandalf", Type: "Hero", Set: "AS"}

	statements := linker.Link(card, e1)

	require.Len(t, statements, 5)
	cardIRI := entities.IRI(entities.CardNamespace + "1")

	assert.Equal(t, entities.Statement{
		Subject: cardIRI, Predicate: entities.RDFType, Object: entities.SchemaThing,
	}, statements[0])
	assert.Equal(t, entities.Statement{
		Subject: cardIRI, Predicate: entities.RDFSLabel, Object: entities.Text("Gandalf"),
	}, statements[1])
	assert.Equal(t, entities.Statement{
		Subject: e1, Predicate: entities.SchemaSubjectOf, Object: cardIRI,
	}, statements[2])
	assert.Equal(t, entities.Statement{
		Subject: cardIRI, Predicate: entities.SchemaAdditionalType, Object: entities.Text("Hero"),
	}, statements[3])
	assert.Equal(t, entities.Statement{
		Subject: cardIRI, Predicate: entities.SchemaIsPartOf, Object: entities.Text("METW Set: AS"),
	}, statements[4])
}

func TestLinker_Link_AlignmentFormatting(t *testing.T) {
	linker := NewLinker()
	card := entities.CardRecord{ID: "7", Name: "Witch-king", Alignment: "Minion"}

	statements := linker.Link(card, e1)

	require.Len(t, statements, 4)
	assert.Equal(t, entities.Statement{
		Subject:   entities.IRI(entities.CardNamespace + "7"),
		Predicate: entities.SchemaAdditionalProperty,
		Object:    entities.Text("alignment: Minion"),
	}, statements[3])
}

func TestLinker_Link_OmitsEmptyOptionalFields(t *testing.T) {
	linker := NewLinker()
	card := entities.CardRecord{Name: "Gandalf"}

	statements := linker.Link(card, e1)

	require.Len(t, statements, 3)
	for _, st := range statements {
		assert.NotEqual(t, entities.SchemaAdditionalType, st.Predicate)
		assert.NotEqual(t, entities.SchemaAdditionalProperty, st.Predicate)
		assert.NotEqual(t, entities.SchemaIsPartOf, st.Predicate)
	}
}
