// Package catalog holds the immutable item catalog: two-level class
// definitions and the name → (class, subclass) lookup table consulted by
// the by-name creation strategy.
package catalog

import "github.com/nathoo/questitem/types"

// Well-known class IDs. Content is free to redefine the categories these
// point at, so they are variables rather than constants.
var (
	// CurrencyClass is the class gold pieces are created under.
	// Subclass 0 of this class is plain stackable gold.
	CurrencyClass = 24

	// MagicItemsClass is the placeholder magic-item category. Declaring it
	// with an unspecified subclass redirects creation to a mundane class
	// and attaches a stand-in enchantment payload.
	MagicItemsClass = 19
)

// Defs is the immutable catalog loaded from Lua content.
type Defs struct {
	Classes map[int]types.ClassDef
	Lookup  map[string]types.LookupEntry
}

// HasEntry reports whether the lookup table knows the given item name.
func (d *Defs) HasEntry(name string) bool {
	_, ok := d.Lookup[name]
	return ok
}

// Entry returns the (class, subclass) parameters for a named item.
func (d *Defs) Entry(name string) (class, subclass int, ok bool) {
	e, ok := d.Lookup[name]
	if !ok {
		return 0, 0, false
	}
	return e.Class, e.Subclass, true
}

// VariantCount returns the number of valid subclass variants for a class,
// or 0 if the class is unknown.
func (d *Defs) VariantCount(class int) int {
	c, ok := d.Classes[class]
	if !ok {
		return 0
	}
	return len(c.Templates)
}

// Template returns the name template for a (class, subclass) pair.
func (d *Defs) Template(class, subclass int) (types.TemplateDef, bool) {
	c, ok := d.Classes[class]
	if !ok || subclass < 0 || subclass >= len(c.Templates) {
		return types.TemplateDef{}, false
	}
	return c.Templates[subclass], true
}
