package translation

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Term is one glossary entry: a source-script term and its canonical English gloss.
type Term struct {
	Source string `json:"source"`
	Gloss  string `json:"gloss"`
}

// Category groups glossary glosses for display.
type Category struct {
	Name  string   `json:"name"`
	Terms []string `json:"terms"`
}

// Glossary forces canonical renderings of fixed land-record vocabulary.
// It is immutable after construction and safe for concurrent use.
type Glossary struct {
	terms      []Term // table order
	applyOrder []Term // longest source first
	categories []Category
}

// NewGlossary builds a Glossary. Substitution runs in descending source
// length so a term is never rewritten inside a longer term that contains it;
// equal lengths keep table order.
func NewGlossary(terms []Term, categories []Category) *Glossary {
	g := &Glossary{
		terms:      append([]Term(nil), terms...),
		categories: append([]Category(nil), categories...),
	}
	g.applyOrder = append([]Term(nil), terms...)
	sort.SliceStable(g.applyOrder, func(i, j int) bool {
		return utf8.RuneCountInString(g.applyOrder[i].Source) > utf8.RuneCountInString(g.applyOrder[j].Source)
	})
	return g
}

// Apply replaces every non-overlapping occurrence of each source term with its gloss.
func (g *Glossary) Apply(text string) string {
	if text == "" {
		return text
	}
	for _, t := range g.applyOrder {
		if t.Source == "" {
			continue
		}
		text = strings.ReplaceAll(text, t.Source, t.Gloss)
	}
	return text
}

// DetectedTerms lists the entries whose source term occurs in text, in table order.
func (g *Glossary) DetectedTerms(text string) []Term {
	detected := []Term{}
	if text == "" {
		return detected
	}
	for _, t := range g.terms {
		if t.Source != "" && strings.Contains(text, t.Source) {
			detected = append(detected, t)
		}
	}
	return detected
}

// Categories returns the display grouping of glossary glosses.
func (g *Glossary) Categories() []Category {
	return append([]Category(nil), g.categories...)
}

// Terms returns all entries in table order.
func (g *Glossary) Terms() []Term {
	return append([]Term(nil), g.terms...)
}

// Len returns the number of entries.
func (g *Glossary) Len() int {
	return len(g.terms)
}
