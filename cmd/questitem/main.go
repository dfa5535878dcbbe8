// QuestItem is an inspector for quest-item declarations: it loads an item
// catalog and quest scripts from Lua content, then lets you declare,
// examine, and save/restore quest item resources.
// Usage: questitem [--version] [--plain] [--script <file>] [--seed <n>] <content_directory>
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nathoo/questitem/cli"
	"github.com/nathoo/questitem/engine"
	"github.com/nathoo/questitem/loader"
	"github.com/nathoo/questitem/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	var contentDir string
	var scriptFile string
	seed := time.Now().UnixNano()

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("questitem %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		case "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--seed requires an integer\n")
				os.Exit(1)
			}
			i++
			n, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "--seed requires an integer, got %q\n", args[i])
				os.Exit(1)
			}
			seed = n
		default:
			if contentDir == "" {
				contentDir = args[i]
			}
		}
	}

	if contentDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: questitem [--version] [--plain] [--script <file>] [--seed <n>] <content_directory>\n")
		os.Exit(1)
	}

	// Load and compile Lua content.
	content, err := loader.Load(contentDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
		if ve, ok := loader.AsValidationError(err); ok {
			for _, w := range ve.Warnings {
				fmt.Fprintf(os.Stderr, "warning: %s\n", w)
			}
		}
		os.Exit(1)
	}
	for _, w := range content.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	eng := engine.New(content.Catalog, seed)
	session := cli.NewSession(eng, content)

	// Script playback implies the plain CLI.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		c := cli.New(session)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	if plain {
		cli.New(session).Run()
		return
	}

	if err := tui.Run(session); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
