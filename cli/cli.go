package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathoo/questitem/engine/save"
)

// CLI handles terminal interaction with the inspector session.
type CLI struct {
	Session   *Session
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	EchoInput bool // echo each input line after the prompt (for script playback)
}

// New creates a CLI wired to the given session.
func New(session *Session) *CLI {
	home, _ := os.UserHomeDir()
	saveDir := filepath.Join(home, ".questitem", "saves")
	return &CLI{
		Session: session,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: saveDir,
	}
}

// Run starts the inspector loop: prompt → input → dispatch → output.
func (c *CLI) Run() {
	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		for _, line := range c.Session.Exec(input) {
			c.printLine(line)
		}
	}
}

// handleMeta dispatches meta-commands. Returns true if the loop should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(arg)

	case "/load":
		c.cmdLoad(arg)

	case "/help":
		c.printSystem("Meta: /save [name], /load [name], /quit. Type help for inspector commands.")

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdSave(name string) {
	if name == "" {
		name = "quicksave"
	}

	data, err := save.Save(c.Session.Engine)
	if err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	if err := os.MkdirAll(c.SaveDir, 0o755); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	path := filepath.Join(c.SaveDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}

	c.printSystem(fmt.Sprintf("State saved to %s.", name))
}

func (c *CLI) cmdLoad(name string) {
	if name == "" {
		name = "quicksave"
	}

	path := filepath.Join(c.SaveDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	sd, err := save.Load(data)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	if err := save.Apply(c.Session.Engine, sd); err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	c.Session.ClearSelection()
	c.printSystem(fmt.Sprintf("State loaded from %s (%d quest(s)).", name, len(sd.Quests)))
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
