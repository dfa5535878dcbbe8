// Package item implements the quest-item resource: the factory that turns
// a parsed declaration into a concrete inventory object, and the resource
// wrapper that owns that object's lifecycle (macros, dialogue exposure,
// disposal, save/restore).
package item

import (
	"github.com/google/uuid"

	"github.com/nathoo/questitem/engine/catalog"
	"github.com/nathoo/questitem/types"
)

// Instance is the concrete inventory object a resource wraps. It is created
// exactly once by the factory (or rebuilt verbatim during restore) and may
// additionally live inside the player's inventory collection.
type Instance struct {
	Class        int
	Subclass     int
	StackCount   int
	ShortName    string
	LongName     string
	Enchantments []types.Enchantment

	// Quest link. Set before the instance is handed out; identifies the
	// declaring quest without owning it.
	IsQuestItem bool
	QuestUID    uuid.UUID
	QuestSymbol string
}

// LinkToQuest tags the instance with its declaring quest and symbol.
func (i *Instance) LinkToQuest(questUID uuid.UUID, symbol string) {
	i.IsQuestItem = true
	i.QuestUID = questUID
	i.QuestSymbol = symbol
}

// IsPlainGold reports whether the instance is plain stackable currency
// (currency class, subclass 0) rather than a named valuable.
func (i *Instance) IsPlainGold() bool {
	return i.Class == catalog.CurrencyClass && i.Subclass == 0
}

// IsEnchanted reports whether the instance carries any enchantment payload.
func (i *Instance) IsEnchanted() bool {
	return len(i.Enchantments) > 0
}
