package tui

import (
	"strings"
	"testing"

	"github.com/nathoo/questitem/cli"
	"github.com/nathoo/questitem/engine"
	"github.com/nathoo/questitem/engine/catalog"
	"github.com/nathoo/questitem/loader"
	"github.com/nathoo/questitem/types"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"[State saved to quicksave.]", kindSystem},
		{"Declaration failed: could not parse item declaration \"Widget _X_\"", kindError},
		{"Start failed: quest broken: duplicate item symbol", kindError},
		{"Unknown command: frobnicate. Type help for available commands.", kindError},
		{"No quest selected.", kindError},
		{"Quests:", kindHeading},
		{"Items:", kindHeading},
		{"Declared _T_ → Magical Talisman (class 9, subclass 3, stack 1)", kindNormal},
		{"", kindNormal},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"The talisman hums faintly whenever the moon is full.", 25,
			"The talisman hums faintly\nwhenever the moon is\nfull."},
		{"", 80, ""},
		{"a b c d e", 3, "a b\nc d\ne"},
	}
	for _, tt := range tests {
		got := wordWrap(tt.text, tt.width)
		if got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestHistory_PushAndPrev(t *testing.T) {
	h := NewHistory(5)
	h.Push("quests")
	h.Push("start tutorial")
	h.Push("list")

	prev, ok := h.Prev()
	if !ok || prev != "list" {
		t.Errorf("expected 'list', got %q (ok=%v)", prev, ok)
	}

	prev, ok = h.Prev()
	if !ok || prev != "start tutorial" {
		t.Errorf("expected 'start tutorial', got %q (ok=%v)", prev, ok)
	}

	prev, ok = h.Prev()
	if !ok || prev != "quests" {
		t.Errorf("expected 'quests', got %q (ok=%v)", prev, ok)
	}

	// At oldest, stays there.
	prev, ok = h.Prev()
	if !ok || prev != "quests" {
		t.Errorf("expected 'quests' at boundary, got %q (ok=%v)", prev, ok)
	}
}

func TestHistory_Next(t *testing.T) {
	h := NewHistory(5)
	h.Push("quests")
	h.Push("list")

	h.Prev() // "list"
	h.Prev() // "quests"

	next, ok := h.Next()
	if !ok || next != "list" {
		t.Errorf("expected 'list', got %q (ok=%v)", next, ok)
	}

	_, ok = h.Next()
	if ok {
		t.Error("expected false when past newest entry")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Prev(); ok {
		t.Error("expected false on empty history")
	}
	if _, ok := h.Next(); ok {
		t.Error("expected false on empty history")
	}
}

func TestHistory_MaxSize(t *testing.T) {
	h := NewHistory(2)
	h.Push("a")
	h.Push("b")
	h.Push("c") // "a" evicted

	prev, _ := h.Prev()
	if prev != "c" {
		t.Errorf("expected 'c', got %q", prev)
	}
	prev, _ = h.Prev()
	if prev != "b" {
		t.Errorf("expected 'b', got %q", prev)
	}
	prev, _ = h.Prev()
	if prev != "b" {
		t.Errorf("expected 'b' at boundary, got %q", prev)
	}
}

func TestHistory_NoDuplicates(t *testing.T) {
	h := NewHistory(5)
	h.Push("list")
	h.Push("list") // skipped

	if h.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", h.Len())
	}
}

// testSession returns a minimal session for TUI testing.
func testSession() *cli.Session {
	defs := &catalog.Defs{
		Classes: map[int]types.ClassDef{
			9: {ID: 9, Name: "Gems", Templates: []types.TemplateDef{
				{Short: "Ruby", Long: "Ruby"},
			}},
			24: {ID: 24, Name: "Currency", Templates: []types.TemplateDef{
				{Short: "Gold", Long: "Gold pieces"},
			}},
		},
		Lookup: map[string]types.LookupEntry{
			"ruby": {Class: 9, Subclass: 0},
		},
	}
	content := &loader.Content{Catalog: defs}
	return cli.NewSession(engine.New(defs, 1), content)
}

func TestHandleMeta_Quit(t *testing.T) {
	m := New(testSession())

	if _, quit := m.handleMeta("/quit"); !quit {
		t.Error("expected quit=true for /quit")
	}
	if _, quit := m.handleMeta("/exit"); !quit {
		t.Error("expected quit=true for /exit")
	}
}

func TestHandleMeta_SaveAndLoad(t *testing.T) {
	m := New(testSession())
	m.saveDir = t.TempDir()

	output, quit := m.handleMeta("/save test")
	if quit {
		t.Error("save should not quit")
	}
	if len(output) == 0 || !strings.Contains(output[0], "State saved") {
		t.Errorf("expected save confirmation, got %v", output)
	}

	output, quit = m.handleMeta("/load test")
	if quit {
		t.Error("load should not quit")
	}
	if len(output) == 0 || !strings.Contains(output[0], "State loaded") {
		t.Errorf("expected load confirmation, got %v", output)
	}
}

func TestHandleMeta_LoadNonexistent(t *testing.T) {
	m := New(testSession())
	m.saveDir = t.TempDir()

	output, quit := m.handleMeta("/load nonexistent")
	if quit {
		t.Error("load should not quit")
	}
	if len(output) == 0 || !strings.Contains(output[0], "Load failed") {
		t.Errorf("expected load failure, got %v", output)
	}
}

func TestHandleMeta_LoadClearsSelection(t *testing.T) {
	m := New(testSession())
	m.saveDir = t.TempDir()

	m.session.Exec("quest scratch")
	if out, _ := m.handleMeta("/save s"); !strings.Contains(out[0], "saved") {
		t.Fatalf("save failed: %v", out)
	}
	if out, _ := m.handleMeta("/load s"); !strings.Contains(out[0], "loaded") {
		t.Fatalf("load failed: %v", out)
	}

	if m.session.Current() != nil {
		t.Error("load must drop the quest selection")
	}
}

func TestHandleMeta_Help(t *testing.T) {
	m := New(testSession())

	output, quit := m.handleMeta("/help")
	if quit {
		t.Error("help should not quit")
	}

	joined := strings.Join(output, "\n")
	for _, expected := range []string{"/save", "/load", "/quit"} {
		if !strings.Contains(joined, expected) {
			t.Errorf("expected %q in help output", expected)
		}
	}
}

func TestHandleMeta_Unknown(t *testing.T) {
	m := New(testSession())

	output, quit := m.handleMeta("/bogus")
	if quit {
		t.Error("unknown command should not quit")
	}
	if len(output) == 0 || !strings.Contains(output[0], "Unknown command") {
		t.Errorf("expected unknown command message, got %v", output)
	}
}

func TestRenderStatusBar(t *testing.T) {
	m := New(testSession())
	m.width = 60

	m.session.Exec("quest scratch")
	m.session.Exec("declare Item _R_ ruby")

	bar := m.renderStatusBar()
	if !strings.Contains(bar, "scratch") || !strings.Contains(bar, "Items: 1") {
		t.Errorf("status bar missing quest info: %q", bar)
	}
	if !strings.Contains(bar, "Lvl 1") {
		t.Errorf("status bar missing player info: %q", bar)
	}
}
