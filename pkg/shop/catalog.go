package shop

import (
	"errors"
	"fmt"
	"strings"
)

// Entry is one sellable item. Price is a display string (currency sign plus
// amount, sometimes with an availability suffix) and is only ever parsed
// best-effort for the cart subtotal.
type Entry struct {
	Name     string
	Price    string
	Category string
}

// Category is an ordered group of entries. Iteration order is the order
// replies are rendered in, so it is preserved from the source data.
type Category struct {
	Name    string
	Entries []Entry
}

// Catalog is the static product dataset. It is built once at startup and
// never mutated afterwards, so it needs no synchronization.
type Catalog struct {
	categories []Category
}

type rawItem struct {
	name  string
	price string
}

// rawGroup is a sub-category inside a category (only "Marinated Meats" uses
// these). Grouped items are flattened into "<Group> - <Name>" entries.
type rawGroup struct {
	name  string
	items []rawItem
}

type rawCategory struct {
	name   string
	items  []rawItem
	groups []rawGroup
}

// NewCatalog normalizes raw category data into a flat, validated catalog.
// Malformed entries are rejected here so lookups never have to deal with
// them.
func NewCatalog(raw []rawCategory) (*Catalog, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty catalog")
	}

	categories := make([]Category, 0, len(raw))
	for _, rc := range raw {
		if rc.name == "" {
			return nil, errors.New("category with empty name")
		}

		cat := Category{Name: rc.name}
		for _, it := range rc.items {
			entry, err := newEntry(rc.name, it.name, it.price)
			if err != nil {
				return nil, err
			}
			cat.Entries = append(cat.Entries, entry)
		}
		for _, g := range rc.groups {
			if g.name == "" {
				return nil, fmt.Errorf("category %q: group with empty name", rc.name)
			}
			for _, it := range g.items {
				entry, err := newEntry(rc.name, g.name+" - "+it.name, it.price)
				if err != nil {
					return nil, err
				}
				cat.Entries = append(cat.Entries, entry)
			}
		}
		if len(cat.Entries) == 0 {
			return nil, fmt.Errorf("category %q has no entries", rc.name)
		}
		categories = append(categories, cat)
	}

	return &Catalog{categories: categories}, nil
}

func newEntry(category, name, price string) (Entry, error) {
	name = strings.TrimSpace(name)
	price = strings.TrimSpace(price)
	if name == "" || price == "" {
		return Entry{}, fmt.Errorf("category %q: entry with empty name or price", category)
	}
	return Entry{Name: name, Price: price, Category: category}, nil
}

// Categories returns all categories in catalog order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// CategoryByName returns the category with the given label, case-insensitive.
func (c *Catalog) CategoryByName(name string) (Category, bool) {
	name = strings.ToLower(name)
	for _, cat := range c.categories {
		if strings.ToLower(cat.Name) == name {
			return cat, true
		}
	}
	return Category{}, false
}

// DefaultCatalog builds the built-in product dataset. It panics on malformed
// data, which can only happen on a bad edit to catalog_data.go.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultCategories())
	if err != nil {
		panic(err)
	}
	return c
}

// titleCase renders an uppercase category label for output, e.g.
// "EXOTIC MEATS" -> "Exotic Meats".
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
