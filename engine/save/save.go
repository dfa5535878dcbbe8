// Package save implements JSON serialization and deserialization of engine
// state: every quest's item resources, inventory membership, player
// snapshot, and the RNG stream position.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/nathoo/questitem/engine"
	"github.com/nathoo/questitem/engine/item"
	"github.com/nathoo/questitem/types"
)

// Version tags the top-level save schema.
const Version = "v1"

// QuestSaveData is the persisted shape of one active quest.
type QuestSaveData struct {
	UID       uuid.UUID                        `json:"uid"`
	Name      string                           `json:"name"`
	Symbols   []string                         `json:"symbols"` // declaration order
	Resources map[string]item.ResourceSaveData `json:"resources"`
	Messages  map[string]types.MessageDef      `json:"messages,omitempty"`
}

// InventoryRef records that a quest item was in the live inventory.
type InventoryRef struct {
	QuestUID uuid.UUID `json:"quest_uid"`
	Symbol   string    `json:"symbol"`
}

// SaveData is the JSON-serializable save format.
type SaveData struct {
	Version     string          `json:"version"`
	Player      types.Player    `json:"player"`
	RNGSeed     int64           `json:"rng_seed"`
	RNGPosition int64           `json:"rng_position"`
	Quests      []QuestSaveData `json:"quests"`
	Inventory   []InventoryRef  `json:"inventory"`
}

// Save serializes the engine state to JSON bytes.
func Save(e *engine.Engine) ([]byte, error) {
	data := SaveData{
		Version:     Version,
		Player:      *e.Player,
		RNGSeed:     e.RNG.Seed(),
		RNGPosition: e.RNG.Position(),
	}

	for _, q := range e.ActiveQuests() {
		qsd := QuestSaveData{
			UID:       q.UID,
			Name:      q.Name,
			Symbols:   append([]string(nil), q.Symbols...),
			Resources: map[string]item.ResourceSaveData{},
			Messages:  q.Messages,
		}
		for symbol, r := range q.Resources {
			qsd.Resources[symbol] = r.GetSaveData()
		}
		data.Quests = append(data.Quests, qsd)
	}

	for _, inst := range e.Inventory.Items() {
		if inst.IsQuestItem {
			data.Inventory = append(data.Inventory, InventoryRef{
				QuestUID: inst.QuestUID,
				Symbol:   inst.QuestSymbol,
			})
		}
	}

	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	// Ensure maps are never nil after load.
	for i := range sd.Quests {
		if sd.Quests[i].Resources == nil {
			sd.Quests[i].Resources = map[string]item.ResourceSaveData{}
		}
		if sd.Quests[i].Messages == nil {
			sd.Quests[i].Messages = map[string]types.MessageDef{}
		}
	}
	return &sd, nil
}

// Apply rebuilds the engine from loaded save data. Resources are restored
// verbatim from their persisted payloads — the parser and factory are
// bypassed — and conversation topics are re-registered for items that
// carry an info message.
func Apply(e *engine.Engine, sd *SaveData) error {
	e.Reset()
	*e.Player = sd.Player
	e.RestoreRNG(sd.RNGSeed, sd.RNGPosition)

	for _, qsd := range sd.Quests {
		q := e.RestoreQuest(qsd.UID, qsd.Name)
		for id, msg := range qsd.Messages {
			q.Messages[id] = msg
		}
		for _, symbol := range qsd.Symbols {
			rsd, ok := qsd.Resources[symbol]
			if !ok {
				return fmt.Errorf("quest %s: symbol %q listed but has no save record", qsd.Name, symbol)
			}
			r := item.RestoreResource(qsd.UID, symbol, &rsd)
			q.Resources[symbol] = r
			q.Symbols = append(q.Symbols, symbol)
			r.RegisterConversation(e.Dialogue, q.Messages)
		}
	}

	for _, ref := range sd.Inventory {
		q, ok := e.FindQuest(ref.QuestUID)
		if !ok {
			return fmt.Errorf("inventory references unknown quest %s", ref.QuestUID)
		}
		r, ok := q.Resource(ref.Symbol)
		if !ok {
			return fmt.Errorf("inventory references unknown symbol %q in quest %s", ref.Symbol, q.Name)
		}
		e.Inventory.Add(r.Instance)
	}

	return nil
}
