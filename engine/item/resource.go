package item

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/nathoo/questitem/types"
)

// MacroKind selects which placeholder a quest text wants expanded.
type MacroKind int

const (
	MacroName    MacroKind = iota // item display name
	MacroDetails                  // item details; currently same text as name
)

// TopicKindThing is the dialogue topic category item resources register as.
const TopicKindThing = "thing"

// InstanceRemover is the slice of the player inventory disposal needs.
type InstanceRemover interface {
	// Remove takes the instance out of the collection. Reports whether the
	// instance was present; absent instances are a no-op.
	Remove(*Instance) bool
}

// TopicRegistrar receives dialogue topics for declared items.
type TopicRegistrar interface {
	RegisterTopic(questUID uuid.UUID, symbol, displayName, kind string, infoVariants, rumorVariants []string)
}

// Resource is the quest-owned wrapper around one created item instance.
// The symbol is unique within the declaring quest and immutable; the quest
// itself is referenced by UID, never owned.
type Resource struct {
	Symbol   string
	QuestUID uuid.UUID
	Artifact bool

	// Transient interaction state, set by external events and read by
	// quest logic. Independent of each other.
	UseClicked     bool
	ActionWatching bool
	PlayerDropped  bool

	// Dialogue association; empty = the item is not a conversation topic.
	InfoMessage   string
	RumorsMessage string

	// Never nil after successful construction.
	Instance *Instance

	disposed bool
}

// NewResource parses nothing: it takes an already parsed spec, runs the
// factory, and wires the result. On factory failure no partial resource is
// returned.
func NewResource(questUID uuid.UUID, spec types.ItemSpec, f *Factory) (*Resource, error) {
	inst, err := f.Build(questUID, spec)
	if err != nil {
		return nil, err
	}
	return &Resource{
		Symbol:   spec.Symbol,
		QuestUID: questUID,
		Artifact: spec.Artifact,
		Instance: inst,
	}, nil
}

// ExpandMacro returns display text for the given macro kind. Only the name
// and details kinds produce text; every other kind returns
// ErrUnsupportedMacro so the caller can fall back without treating it as a
// failure.
//
// Text selection: artifacts always show the short catalog name; plain
// currency shows its decimal stack count; everything else shows the full
// descriptive name.
func (r *Resource) ExpandMacro(kind MacroKind) (string, error) {
	switch kind {
	case MacroName, MacroDetails:
		return r.displayName(), nil
	default:
		return "", ErrUnsupportedMacro
	}
}

func (r *Resource) displayName() string {
	switch {
	case r.Artifact:
		return r.Instance.ShortName
	case r.Instance.IsPlainGold():
		return strconv.Itoa(r.Instance.StackCount)
	default:
		return r.Instance.LongName
	}
}

// RegisterConversation exposes the item as a dialogue topic if it carries
// an info message. Every text variant of the info and rumors messages is
// collected unexpanded — macro substitution is deferred to render time. An
// absent message contributes an empty variant set, not an error.
func (r *Resource) RegisterConversation(reg TopicRegistrar, messages map[string]types.MessageDef) {
	if r.InfoMessage == "" {
		return
	}
	info := messageVariants(messages, r.InfoMessage)
	rumors := messageVariants(messages, r.RumorsMessage)
	reg.RegisterTopic(r.QuestUID, r.Symbol, r.displayName(), TopicKindThing, info, rumors)
}

func messageVariants(messages map[string]types.MessageDef, id string) []string {
	if id == "" {
		return nil
	}
	msg, ok := messages[id]
	if !ok {
		return nil
	}
	return append([]string(nil), msg.Variants...)
}

// Dispose removes the wrapped instance from the player's live inventory if
// it is still flagged as quest-owned. Idempotent: the second call does not
// attempt another removal.
func (r *Resource) Dispose(inv InstanceRemover) {
	if r.disposed || r.Instance == nil || !r.Instance.IsQuestItem {
		return
	}
	r.disposed = true
	inv.Remove(r.Instance)
}
