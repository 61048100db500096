// Package parsers decodes external card-catalog payloads into card records.
package parsers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"golang.org/x/text/language"

	"github.com/ersonp/cardlink/internal/domain/entities"
)

// namePriority is the fixed fallback order for multilingual name fields.
var namePriority = []language.Tag{language.English, language.Spanish, language.French}

// CatalogParser parses a card catalog payload into card records.
//
// Three payload shapes are supported, tried in order: a mapping from
// set-key to {"cards": {id: card}} (nested-by-set form, newer exports); a
// mapping with a top-level "cards" or "data" sequence (flat legacy form);
// a bare sequence of card objects. A nested form that yields zero records
// silently falls through to the flat form. This fallback order is a
// compatibility policy and must be preserved.
type CatalogParser struct{}

// NewCatalogParser creates a new CatalogParser.
func NewCatalogParser() *CatalogParser {
	return &CatalogParser{}
}

// Parse reads a JSON catalog payload and returns the extracted card
// records. Records without a resolvable non-empty name are skipped.
func (p *CatalogParser) Parse(r io.Reader) ([]entities.CardRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	cards, err := extractCards(data)
	if err != nil {
		return nil, err
	}

	records := make([]entities.CardRecord, 0, len(cards))
	for _, card := range cards {
		name := card.Name.resolve()
		if name == "" {
			continue
		}
		records = append(records, entities.CardRecord{
			ID:        string(card.ID),
			Name:      name,
			Type:      card.Type,
			Alignment: card.Alignment,
			Set:       card.Set,
		})
	}

	return records, nil
}

// rawCard mirrors one catalog card object. Fields beyond these are ignored.
type rawCard struct {
	ID        cardID   `json:"id"`
	Name      cardName `json:"name"`
	Type      string   `json:"type"`
	Alignment string   `json:"alignment"`
	Set       string   `json:"set"`
}

func extractCards(data []byte) ([]rawCard, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		// Not a mapping: bare sequence form.
		var cards []rawCard
		if err := json.Unmarshal(data, &cards); err != nil {
			return nil, fmt.Errorf("parsing catalog JSON: %w", err)
		}
		return cards, nil
	}

	// Nested-by-set form: scan all top-level values for a "cards"
	// sub-mapping and flatten every nested card object. Set keys and card
	// ids are visited in sorted order so extraction is deterministic.
	var cards []rawCard
	for _, setKey := range sortedKeys(top) {
		var set struct {
			Cards map[string]rawCard `json:"cards"`
		}
		if err := json.Unmarshal(top[setKey], &set); err != nil || set.Cards == nil {
			continue
		}
		for _, id := range sortedKeys(set.Cards) {
			cards = append(cards, set.Cards[id])
		}
	}
	if len(cards) > 0 {
		return cards, nil
	}

	// Flat legacy form.
	for _, key := range []string{"cards", "data"} {
		raw, ok := top[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &cards); err != nil {
			return nil, fmt.Errorf("parsing catalog %q sequence: %w", key, err)
		}
		return cards, nil
	}

	return nil, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// cardID accepts either a JSON string or a number; numbers keep their
// source decimal form.
type cardID string

func (id *cardID) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch value := v.(type) {
	case string:
		*id = cardID(value)
	case json.Number:
		*id = cardID(value.String())
	case nil:
		*id = ""
	default:
		return fmt.Errorf("card id must be a string or number, got %T", v)
	}
	return nil
}

// cardName accepts either a plain string or a mapping from language code
// to string. The union is resolved once here, so the matcher and linker
// never see source-format quirks.
type cardName struct {
	value  string
	byLang map[string]string
}

func (n *cardName) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '{' {
		return json.Unmarshal(data, &n.byLang)
	}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	return json.Unmarshal(data, &n.value)
}

// resolve picks the display name in fixed priority order English ->
// Spanish -> French. Language keys are parsed as BCP 47 tags, so a
// regional variant like "en-GB" still resolves as English. Returns ""
// when no prioritized language carries a non-empty name.
func (n cardName) resolve() string {
	if n.byLang == nil {
		return n.value
	}

	codes := sortedKeys(n.byLang)
	for _, want := range namePriority {
		wantBase, _ := want.Base()
		for _, code := range codes {
			tag, err := language.Parse(code)
			if err != nil {
				continue
			}
			base, _ := tag.Base()
			if base == wantBase && n.byLang[code] != "" {
				return n.byLang[code]
			}
		}
	}
	return ""
}
