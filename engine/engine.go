// Package engine wires the declaration parser, item factory, inventory,
// and dialogue registry into a quest registry with lifecycle entry points.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nathoo/questitem/engine/catalog"
	"github.com/nathoo/questitem/engine/dialogue"
	"github.com/nathoo/questitem/engine/inventory"
	"github.com/nathoo/questitem/engine/item"
	"github.com/nathoo/questitem/engine/parser"
	"github.com/nathoo/questitem/types"
)

// Quest is one active quest: a UID, its declared item resources in
// declaration order, and its message table.
type Quest struct {
	UID       uuid.UUID
	Name      string
	Resources map[string]*item.Resource
	Symbols   []string // declaration order
	Messages  map[string]types.MessageDef
}

// Resource returns the item resource declared under the given symbol.
func (q *Quest) Resource(symbol string) (*item.Resource, bool) {
	r, ok := q.Resources[symbol]
	return r, ok
}

// Engine holds the catalog, shared player state, and the quest registry.
// Single-threaded by contract: the surrounding loop serializes all access.
type Engine struct {
	Catalog   *catalog.Defs
	Player    *types.Player
	Inventory *inventory.Inventory
	Dialogue  *dialogue.Registry
	RNG       *RNG

	Quests     map[uuid.UUID]*Quest
	questOrder []uuid.UUID

	factory *item.Factory
}

// New creates an engine over the given catalog with a seeded RNG.
func New(defs *catalog.Defs, seed int64) *Engine {
	e := &Engine{
		Catalog:   defs,
		Player:    &types.Player{Level: 1},
		Inventory: inventory.New(),
		Dialogue:  dialogue.NewRegistry(),
		RNG:       NewRNG(seed),
		Quests:    map[uuid.UUID]*Quest{},
	}
	e.factory = item.NewFactory(defs, e.RNG, e.Player)
	return e
}

// RestoreRNG re-creates the RNG from seed and advances to the saved
// position, so restored games continue the same random stream.
func (e *Engine) RestoreRNG(seed int64, position int64) {
	e.RNG = RestoreRNG(seed, position)
	e.factory = item.NewFactory(e.Catalog, e.RNG, e.Player)
}

// NewQuest registers an empty quest under a fresh UID.
func (e *Engine) NewQuest(name string) *Quest {
	return e.addQuest(uuid.New(), name)
}

func (e *Engine) addQuest(uid uuid.UUID, name string) *Quest {
	q := &Quest{
		UID:       uid,
		Name:      name,
		Resources: map[string]*item.Resource{},
		Messages:  map[string]types.MessageDef{},
	}
	e.Quests[uid] = q
	e.questOrder = append(e.questOrder, uid)
	return q
}

// RestoreQuest registers an empty quest under a persisted UID. Used by the
// save layer, which refills the quest from its save record.
func (e *Engine) RestoreQuest(uid uuid.UUID, name string) *Quest {
	return e.addQuest(uid, name)
}

// Reset drops all quests, the inventory, and the dialogue registry,
// returning the engine to its post-New state. The catalog and player
// snapshot are kept.
func (e *Engine) Reset() {
	e.Quests = map[uuid.UUID]*Quest{}
	e.questOrder = nil
	e.Inventory = inventory.New()
	e.Dialogue = dialogue.NewRegistry()
}

// FindQuest looks a quest up by UID.
func (e *Engine) FindQuest(uid uuid.UUID) (*Quest, bool) {
	q, ok := e.Quests[uid]
	return q, ok
}

// ActiveQuests returns quests in registration order.
func (e *Engine) ActiveQuests() []*Quest {
	result := make([]*Quest, 0, len(e.questOrder))
	for _, uid := range e.questOrder {
		if q, ok := e.Quests[uid]; ok {
			result = append(result, q)
		}
	}
	return result
}

// DeclareItem parses one declaration line and adds the resulting resource
// to the quest. Parse and factory failures abort before anything is stored,
// so a malformed line never leaves a partial resource behind.
func (e *Engine) DeclareItem(q *Quest, line string) (*item.Resource, error) {
	spec, err := parser.ParseDeclaration(line)
	if err != nil {
		return nil, err
	}
	if _, exists := q.Resources[spec.Symbol]; exists {
		return nil, fmt.Errorf("quest %s: duplicate item symbol %q", q.Name, spec.Symbol)
	}
	r, err := item.NewResource(q.UID, spec, e.factory)
	if err != nil {
		return nil, err
	}
	q.Resources[spec.Symbol] = r
	q.Symbols = append(q.Symbols, spec.Symbol)
	return r, nil
}

// InstantiateQuest builds an active quest from loaded content: every
// declaration line is parsed and built, messages are attached, and
// dialogue-bound items are registered as conversation topics. The first
// failing line aborts the whole quest.
func (e *Engine) InstantiateQuest(def types.QuestDef) (*Quest, error) {
	q := e.NewQuest(def.Name)
	for id, msg := range def.Messages {
		q.Messages[id] = msg
	}
	for _, line := range def.Items {
		if _, err := e.DeclareItem(q, line); err != nil {
			e.discardQuest(q.UID)
			return nil, fmt.Errorf("quest %s: %w", def.Name, err)
		}
	}
	for symbol, binding := range def.Dialogue {
		r, ok := q.Resources[symbol]
		if !ok {
			e.discardQuest(q.UID)
			return nil, fmt.Errorf("quest %s: dialogue binding for undeclared symbol %q", def.Name, symbol)
		}
		r.InfoMessage = binding.Info
		r.RumorsMessage = binding.Rumors
		r.RegisterConversation(e.Dialogue, q.Messages)
	}
	return q, nil
}

// GiveToPlayer places a resource's instance into the live inventory.
func (e *Engine) GiveToPlayer(r *item.Resource) {
	e.Inventory.Add(r.Instance)
}

// TearDownQuest disposes every resource of the quest, drops its dialogue
// topics, and removes it from the registry. Disposal pulls any still
// quest-owned instance out of the live inventory so no quest-tagged item
// outlives its quest.
func (e *Engine) TearDownQuest(uid uuid.UUID) {
	q, ok := e.Quests[uid]
	if !ok {
		return
	}
	for _, symbol := range q.Symbols {
		q.Resources[symbol].Dispose(e.Inventory)
	}
	e.Dialogue.RemoveQuestTopics(uid)
	e.discardQuest(uid)
}

func (e *Engine) discardQuest(uid uuid.UUID) {
	delete(e.Quests, uid)
	for i, u := range e.questOrder {
		if u == uid {
			e.questOrder = append(e.questOrder[:i], e.questOrder[i+1:]...)
			return
		}
	}
}
