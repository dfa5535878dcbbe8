package item

import (
	"github.com/google/uuid"

	"github.com/nathoo/questitem/types"
)

// SaveVersion tags the resource save record schema.
const SaveVersion = "v1"

// InstanceSaveData is the persisted shape of a created item instance. This
// payload is authoritative on restore: the parser and factory never re-run.
type InstanceSaveData struct {
	Class        int                 `json:"class"`
	Subclass     int                 `json:"subclass"`
	StackCount   int                 `json:"stack_count"`
	ShortName    string              `json:"short_name"`
	LongName     string              `json:"long_name"`
	Enchantments []types.Enchantment `json:"enchantments,omitempty"`
	IsQuestItem  bool                `json:"is_quest_item"`
	QuestUID     uuid.UUID           `json:"quest_uid"`
	QuestSymbol  string              `json:"quest_symbol"`
}

// ResourceSaveData is the versioned save record for one item resource.
type ResourceSaveData struct {
	Version        string            `json:"version"`
	Artifact       bool              `json:"artifact"`
	UseClicked     bool              `json:"use_clicked"`
	ActionWatching bool              `json:"action_watching"`
	PlayerDropped  bool              `json:"player_dropped"`
	InfoMessage    string            `json:"info_message,omitempty"`
	RumorsMessage  string            `json:"rumors_message,omitempty"`
	Item           *InstanceSaveData `json:"item"`
}

// GetSaveData captures the resource's flags and the wrapped instance.
func (r *Resource) GetSaveData() ResourceSaveData {
	sd := ResourceSaveData{
		Version:        SaveVersion,
		Artifact:       r.Artifact,
		UseClicked:     r.UseClicked,
		ActionWatching: r.ActionWatching,
		PlayerDropped:  r.PlayerDropped,
		InfoMessage:    r.InfoMessage,
		RumorsMessage:  r.RumorsMessage,
	}
	if r.Instance != nil {
		sd.Item = &InstanceSaveData{
			Class:        r.Instance.Class,
			Subclass:     r.Instance.Subclass,
			StackCount:   r.Instance.StackCount,
			ShortName:    r.Instance.ShortName,
			LongName:     r.Instance.LongName,
			Enchantments: append([]types.Enchantment(nil), r.Instance.Enchantments...),
			IsQuestItem:  r.Instance.IsQuestItem,
			QuestUID:     r.Instance.QuestUID,
			QuestSymbol:  r.Instance.QuestSymbol,
		}
	}
	return sd
}

// RestoreSaveData rebuilds the resource from a persisted record. The flags
// are copied verbatim and the instance is reconstructed from its nested
// payload, bypassing the parser and factory entirely. A nil record is a
// no-op: the resource keeps its pre-restore state.
func (r *Resource) RestoreSaveData(sd *ResourceSaveData) {
	if sd == nil {
		return
	}
	r.Artifact = sd.Artifact
	r.UseClicked = sd.UseClicked
	r.ActionWatching = sd.ActionWatching
	r.PlayerDropped = sd.PlayerDropped
	r.InfoMessage = sd.InfoMessage
	r.RumorsMessage = sd.RumorsMessage
	if sd.Item != nil {
		r.Instance = &Instance{
			Class:        sd.Item.Class,
			Subclass:     sd.Item.Subclass,
			StackCount:   sd.Item.StackCount,
			ShortName:    sd.Item.ShortName,
			LongName:     sd.Item.LongName,
			Enchantments: append([]types.Enchantment(nil), sd.Item.Enchantments...),
			IsQuestItem:  sd.Item.IsQuestItem,
			QuestUID:     sd.Item.QuestUID,
			QuestSymbol:  sd.Item.QuestSymbol,
		}
	}
}

// RestoreResource reconstructs a whole resource for the given quest and
// symbol from its save record.
func RestoreResource(questUID uuid.UUID, symbol string, sd *ResourceSaveData) *Resource {
	r := &Resource{Symbol: symbol, QuestUID: questUID}
	r.RestoreSaveData(sd)
	return r
}
