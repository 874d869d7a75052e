// Package catalog holds the merchandise and service price lists, the named
// arrangement packages, and lookup over both.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind identifies one of the independently maintained catalogues.
type Kind string

const (
	KindCasket            Kind = "casket"
	KindUrn               Kind = "urn"
	KindViewing           Kind = "viewing"
	KindLimousine         Kind = "limousine"
	KindCrematorium       Kind = "crematorium"
	KindReceptionFacility Kind = "reception_facility"
	KindWeekend           Kind = "weekend"
	KindMiscOther         Kind = "misc_other"
)

// Kinds lists every catalogue in display order.
var Kinds = []Kind{
	KindCasket, KindUrn, KindViewing, KindLimousine,
	KindCrematorium, KindReceptionFacility, KindWeekend, KindMiscOther,
}

// ParseKind validates a catalogue name from external input.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}

	return "", fmt.Errorf("unknown catalog kind %q", s)
}

// Item is a single catalogue entry.
type Item struct {
	Label string
	Price decimal.Decimal
}

// Set is a runtime copy of all catalogues. The built-in tables are never
// mutated; price-list overrides apply to a Set only.
type Set struct {
	items map[Kind]map[string]decimal.Decimal
}

// NewSet returns a Set seeded from the built-in price tables.
func NewSet() *Set {
	items := make(map[Kind]map[string]decimal.Decimal, len(builtin))
	for kind, table := range builtin {
		cp := make(map[string]decimal.Decimal, len(table))
		for label, price := range table {
			cp[label] = price
		}

		items[kind] = cp
	}

	return &Set{items: items}
}

// Price looks up an item by exact label.
func (s *Set) Price(kind Kind, label string) (decimal.Decimal, bool) {
	price, ok := s.items[kind][label]
	return price, ok
}

// Search returns the items of a catalogue whose label contains the query,
// case-insensitively, sorted by label. An empty query returns the whole
// catalogue. This single function backs every autocomplete listbox.
func (s *Set) Search(kind Kind, query string) []Item {
	table := s.items[kind]
	query = strings.ToLower(strings.TrimSpace(query))

	items := make([]Item, 0, len(table))

	for label, price := range table {
		if query != "" && !strings.Contains(strings.ToLower(label), query) {
			continue
		}

		items = append(items, Item{Label: label, Price: price})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Label < items[j].Label })

	return items
}

// Len reports the number of items in a catalogue.
func (s *Set) Len(kind Kind) int {
	return len(s.items[kind])
}
