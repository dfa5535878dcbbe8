// Package cli provides terminal I/O, inspector commands, and meta-command
// dispatch for the QuestItem engine.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/questitem/engine"
	"github.com/nathoo/questitem/engine/item"
	"github.com/nathoo/questitem/loader"
)

// Session dispatches inspector commands against an engine. It is shared by
// the plain CLI and the TUI so both surfaces behave identically.
type Session struct {
	Engine  *engine.Engine
	Content *loader.Content

	current *engine.Quest
}

// NewSession creates a session over the engine and loaded content.
func NewSession(eng *engine.Engine, content *loader.Content) *Session {
	return &Session{Engine: eng, Content: content}
}

// Current returns the selected quest, or nil if none is selected.
func (s *Session) Current() *engine.Quest {
	return s.current
}

// ClearSelection drops the quest selection. Called after a state load,
// when the selected quest may no longer exist.
func (s *Session) ClearSelection() {
	s.current = nil
}

// Exec runs one inspector command and returns its output lines.
func (s *Session) Exec(input string) []string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		return helpLines()
	case "quests":
		return s.cmdQuests()
	case "start":
		return s.cmdStart(args)
	case "quest":
		return s.cmdQuest(args)
	case "declare":
		return s.cmdDeclare(input)
	case "list":
		return s.cmdList()
	case "show":
		return s.cmdShow(args)
	case "macro":
		return s.cmdMacro(args)
	case "give":
		return s.cmdFlag(args, "give")
	case "use":
		return s.cmdFlag(args, "use")
	case "dropped":
		return s.cmdFlag(args, "dropped")
	case "watch":
		return s.cmdFlag(args, "watch")
	case "dispose":
		return s.cmdDispose(args)
	case "teardown":
		return s.cmdTeardown()
	case "inventory":
		return s.cmdInventory()
	case "topics":
		return s.cmdTopics()
	case "player":
		return s.cmdPlayer(args)
	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type help for available commands.", cmd)}
	}
}

func helpLines() []string {
	return []string{
		"Quests:",
		"  quests               — List active quests",
		"  start <name>         — Instantiate a quest from loaded content",
		"  quest <name>         — Select (or create) a scratch quest",
		"  teardown             — Tear down the selected quest",
		"",
		"Items:",
		"  declare <line>       — Declare an item (e.g. declare Item _gold1_ gold range 5 to 25)",
		"  list                 — List resources of the selected quest",
		"  show <symbol>        — Dump one resource",
		"  macro <symbol> [kind]— Expand a macro (kind: name, details)",
		"  give <symbol>        — Put the item into the player inventory",
		"  use / dropped / watch <symbol> — Flip interaction flags",
		"  dispose <symbol>     — Dispose one resource",
		"",
		"World:",
		"  inventory            — List the player inventory",
		"  topics               — List registered dialogue topics",
		"  player [level|region <n>] — Show or set player state",
	}
}

func (s *Session) cmdQuests() []string {
	quests := s.Engine.ActiveQuests()
	if len(quests) == 0 {
		return []string{"No active quests."}
	}
	var out []string
	for _, q := range quests {
		marker := " "
		if q == s.current {
			marker = "*"
		}
		out = append(out, fmt.Sprintf("%s %s  %s  (%d items)", marker, q.UID, q.Name, len(q.Symbols)))
	}
	return out
}

func (s *Session) cmdStart(args []string) []string {
	if len(args) != 1 {
		return []string{"Usage: start <quest name>"}
	}
	if s.Content == nil {
		return []string{"No content loaded."}
	}
	for _, def := range s.Content.Quests {
		if def.Name == args[0] {
			q, err := s.Engine.InstantiateQuest(def)
			if err != nil {
				return []string{fmt.Sprintf("Start failed: %v", err)}
			}
			s.current = q
			return []string{fmt.Sprintf("Quest %s started with %d item(s).", q.Name, len(q.Symbols))}
		}
	}
	return []string{fmt.Sprintf("No quest named %q in loaded content.", args[0])}
}

func (s *Session) cmdQuest(args []string) []string {
	if len(args) != 1 {
		return []string{"Usage: quest <name>"}
	}
	for _, q := range s.Engine.ActiveQuests() {
		if q.Name == args[0] {
			s.current = q
			return []string{fmt.Sprintf("Selected quest %s.", q.Name)}
		}
	}
	s.current = s.Engine.NewQuest(args[0])
	return []string{fmt.Sprintf("Created quest %s (%s).", s.current.Name, s.current.UID)}
}

func (s *Session) cmdDeclare(input string) []string {
	line := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), "declare"))
	if line == "" {
		return []string{"Usage: declare Item <symbol> ..."}
	}
	if s.current == nil {
		return []string{"No quest selected. Use quest <name> first."}
	}
	r, err := s.Engine.DeclareItem(s.current, line)
	if err != nil {
		return []string{fmt.Sprintf("Declaration failed: %v", err)}
	}
	name, _ := r.ExpandMacro(item.MacroName)
	return []string{fmt.Sprintf("Declared %s → %s (class %d, subclass %d, stack %d)",
		r.Symbol, name, r.Instance.Class, r.Instance.Subclass, r.Instance.StackCount)}
}

func (s *Session) cmdList() []string {
	if s.current == nil {
		return []string{"No quest selected."}
	}
	if len(s.current.Symbols) == 0 {
		return []string{"No items declared."}
	}
	var out []string
	for _, symbol := range s.current.Symbols {
		r := s.current.Resources[symbol]
		name, _ := r.ExpandMacro(item.MacroName)
		out = append(out, fmt.Sprintf("%s  %s", symbol, name))
	}
	return out
}

func (s *Session) resource(args []string) (*item.Resource, []string) {
	if s.current == nil {
		return nil, []string{"No quest selected."}
	}
	if len(args) < 1 {
		return nil, []string{"Missing item symbol."}
	}
	r, ok := s.current.Resource(args[0])
	if !ok {
		return nil, []string{fmt.Sprintf("No item %q in quest %s.", args[0], s.current.Name)}
	}
	return r, nil
}

func (s *Session) cmdShow(args []string) []string {
	r, errOut := s.resource(args)
	if r == nil {
		return errOut
	}
	inst := r.Instance
	out := []string{
		fmt.Sprintf("Symbol:    %s", r.Symbol),
		fmt.Sprintf("Quest:     %s", r.QuestUID),
		fmt.Sprintf("Artifact:  %v", r.Artifact),
		fmt.Sprintf("Flags:     use=%v watch=%v dropped=%v", r.UseClicked, r.ActionWatching, r.PlayerDropped),
		fmt.Sprintf("Item:      %s / %s (class %d, subclass %d)", inst.ShortName, inst.LongName, inst.Class, inst.Subclass),
		fmt.Sprintf("Stack:     %d", inst.StackCount),
	}
	if inst.IsEnchanted() {
		out = append(out, fmt.Sprintf("Enchanted: %v", inst.Enchantments))
	}
	if s.Engine.Inventory.Contains(inst) {
		out = append(out, "Carried:   yes")
	}
	return out
}

func (s *Session) cmdMacro(args []string) []string {
	r, errOut := s.resource(args)
	if r == nil {
		return errOut
	}
	kind := item.MacroName
	if len(args) > 1 {
		switch args[1] {
		case "name":
			kind = item.MacroName
		case "details":
			kind = item.MacroDetails
		default:
			kind = item.MacroKind(-1)
		}
	}
	text, err := r.ExpandMacro(kind)
	if err != nil {
		return []string{fmt.Sprintf("No text: %v", err)}
	}
	return []string{text}
}

func (s *Session) cmdFlag(args []string, action string) []string {
	r, errOut := s.resource(args)
	if r == nil {
		return errOut
	}
	switch action {
	case "give":
		s.Engine.GiveToPlayer(r)
		return []string{fmt.Sprintf("%s added to inventory.", r.Symbol)}
	case "use":
		r.UseClicked = true
		return []string{fmt.Sprintf("%s marked as used.", r.Symbol)}
	case "dropped":
		r.PlayerDropped = true
		return []string{fmt.Sprintf("%s marked as dropped.", r.Symbol)}
	case "watch":
		r.ActionWatching = true
		return []string{fmt.Sprintf("%s marked as watched.", r.Symbol)}
	}
	return nil
}

func (s *Session) cmdDispose(args []string) []string {
	r, errOut := s.resource(args)
	if r == nil {
		return errOut
	}
	r.Dispose(s.Engine.Inventory)
	return []string{fmt.Sprintf("%s disposed.", r.Symbol)}
}

func (s *Session) cmdTeardown() []string {
	if s.current == nil {
		return []string{"No quest selected."}
	}
	name := s.current.Name
	s.Engine.TearDownQuest(s.current.UID)
	s.current = nil
	return []string{fmt.Sprintf("Quest %s torn down.", name)}
}

func (s *Session) cmdInventory() []string {
	items := s.Engine.Inventory.Items()
	if len(items) == 0 {
		return []string{"Inventory is empty."}
	}
	var out []string
	for _, inst := range items {
		line := fmt.Sprintf("%s (x%d)", inst.LongName, inst.StackCount)
		if inst.IsQuestItem {
			line += fmt.Sprintf("  [quest %s / %s]", inst.QuestUID, inst.QuestSymbol)
		}
		out = append(out, line)
	}
	return out
}

func (s *Session) cmdTopics() []string {
	topics := s.Engine.Dialogue.Topics()
	if len(topics) == 0 {
		return []string{"No dialogue topics registered."}
	}
	var out []string
	for _, t := range topics {
		out = append(out, fmt.Sprintf("%s (%s)  info: %d variant(s), rumors: %d variant(s)",
			t.DisplayName, t.Kind, len(t.InfoVariants), len(t.RumorVariants)))
	}
	return out
}

func (s *Session) cmdPlayer(args []string) []string {
	p := s.Engine.Player
	if len(args) == 0 {
		return []string{fmt.Sprintf("Level: %d  Region price adjustment: %d", p.Level, p.RegionPriceAdjustment)}
	}
	if len(args) != 2 {
		return []string{"Usage: player [level <n> | region <n>]"}
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return []string{fmt.Sprintf("Not a number: %q", args[1])}
	}
	switch args[0] {
	case "level":
		p.Level = n
		return []string{fmt.Sprintf("Player level set to %d.", n)}
	case "region":
		p.RegionPriceAdjustment = n
		return []string{fmt.Sprintf("Region price adjustment set to %d.", n)}
	default:
		return []string{"Usage: player [level <n> | region <n>]"}
	}
}
