// Package inventory implements the player's live item collection. Quest
// resources only ever remove their own linked instance from it, so the
// collection stays consistent when a quest is torn down.
package inventory

import (
	"github.com/google/uuid"

	"github.com/nathoo/questitem/engine/item"
)

// Inventory is an ordered collection of item instances.
type Inventory struct {
	items []*item.Instance
}

// New creates an empty inventory.
func New() *Inventory {
	return &Inventory{}
}

// Add appends an instance. Duplicate pointers are not added twice.
func (v *Inventory) Add(inst *item.Instance) {
	if inst == nil || v.Contains(inst) {
		return
	}
	v.items = append(v.items, inst)
}

// Remove takes the instance out of the collection. Reports whether it was
// present; removing an absent instance is a no-op.
func (v *Inventory) Remove(inst *item.Instance) bool {
	for i, it := range v.items {
		if it == inst {
			v.items = append(v.items[:i], v.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the instance is in the collection.
func (v *Inventory) Contains(inst *item.Instance) bool {
	for _, it := range v.items {
		if it == inst {
			return true
		}
	}
	return false
}

// FindQuestItem returns the instance linked to (questUID, symbol), or nil.
func (v *Inventory) FindQuestItem(questUID uuid.UUID, symbol string) *item.Instance {
	for _, it := range v.items {
		if it.IsQuestItem && it.QuestUID == questUID && it.QuestSymbol == symbol {
			return it
		}
	}
	return nil
}

// Items returns the instances in insertion order. The slice is a copy;
// the instances are shared.
func (v *Inventory) Items() []*item.Instance {
	return append([]*item.Instance(nil), v.items...)
}

// Len returns the number of instances held.
func (v *Inventory) Len() int {
	return len(v.items)
}
