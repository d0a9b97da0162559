package mapper

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
)

// ReplacementTable holds ordered substring replacements applied to names.
// From[i] is replaced by To[i].
type ReplacementTable struct {
	From []string
	To   []string
}

// NewReplacementTable returns nil unless both sides are given, so that
// callers can pass optional configuration straight through.
func NewReplacementTable(from, to []string) *ReplacementTable {
	if from == nil || to == nil {
		return nil
	}
	return &ReplacementTable{From: from, To: to}
}

// DefaultReplacementTable strips Portuguese accents and spells out currency
// and percent signs.
func DefaultReplacementTable() *ReplacementTable {
	return &ReplacementTable{
		From: []string{"á", "à", "ã", "é", "ê", "í", "ó", "ú", "Á", "À", "Ã", "É", "Ê", "Í", "Ó", "Ú", "ç", "Ç", "R$", "%"},
		To:   []string{"a", "a", "a", "e", "e", "i", "o", "u", "A", "A", "A", "E", "E", "I", "O", "U", "c", "C", "Reais", "Perc"},
	}
}

// Sanitize applies table to every name and then replaces whitespace with
// underscores. Rules run in order and each rule sees the output of the
// previous one, so tables whose "to" values reappear as later "from" values
// are not idempotent. A nil table leaves names unchanged.
func Sanitize(names models.HeaderSet, table *ReplacementTable) (models.HeaderSet, error) {
	if table == nil {
		return names, nil
	}
	if len(table.From) != len(table.To) {
		return nil, fmt.Errorf("%w: %d from, %d to", models.ErrMismatchedReplacementLength, len(table.From), len(table.To))
	}

	out := make(models.HeaderSet, len(names))
	for i, name := range names {
		for j, from := range table.From {
			if from == "" {
				continue
			}
			name = strings.ReplaceAll(name, from, table.To[j])
		}
		out[i] = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return '_'
			}
			return r
		}, name)
	}
	return out, nil
}
