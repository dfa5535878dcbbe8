// Package types defines the shared data structures for the QuestItem engine.
// This package contains only type definitions — no logic, no methods.
package types

// Unspecified is the sentinel for "no class/subclass given"; the factory
// rolls a random variant when it sees this value as a subclass.
const Unspecified = -1

// Strategy identifies which creation path a declaration selects.
// Exactly one strategy applies to any successfully parsed line.
type Strategy int

const (
	StrategyByName  Strategy = iota // resolve name through the lookup table
	StrategyByClass                 // explicit class/subclass pair
	StrategyGold                    // currency with rolled amount
)

// ItemSpec is the parsed representation of one item declaration line.
type ItemSpec struct {
	Symbol   string
	Artifact bool
	Strategy Strategy

	// StrategyByName
	Name string

	// StrategyByClass
	Class    int
	Subclass int // Unspecified = pick at random

	// StrategyGold
	HasRange  bool
	RangeLow  int
	RangeHigh int
}

// Enchantment is one entry of an item's enchantment payload.
type Enchantment struct {
	Kind  int `json:"kind"`
	Param int `json:"param"`
}

// TemplateDef names one concrete item variant within a class.
type TemplateDef struct {
	Short string // short catalog name ("Talisman")
	Long  string // full descriptive name ("Magical Talisman")
}

// ClassDef is one two-level item category from the catalog.
type ClassDef struct {
	ID        int
	Name      string
	Templates []TemplateDef // index = subclass
}

// LookupEntry maps a named item to its class/subclass parameters.
type LookupEntry struct {
	Class    int
	Subclass int
}

// Player is the player-state snapshot consumed by the gold formula.
type Player struct {
	Level                 int `json:"level"`
	RegionPriceAdjustment int `json:"region_price_adjustment"`
}

// MessageDef is a quest message with its alternative text renderings.
// Variants are stored unexpanded; macro substitution happens at render time.
type MessageDef struct {
	ID       string
	Variants []string
}

// DialogueBinding associates an item symbol with its info and rumor messages.
type DialogueBinding struct {
	Info   string
	Rumors string // optional; empty = no rumors message
}

// QuestDef is the raw quest content produced by the loader: declaration
// lines are kept as source text and parsed when the quest is instantiated.
type QuestDef struct {
	Name     string
	Items    []string // raw declaration lines
	Messages map[string]MessageDef
	Dialogue map[string]DialogueBinding // symbol → message binding
}
