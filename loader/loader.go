// Package loader loads Lua item-catalog and quest content into Go structs
// at startup. The Lua VM is discarded after loading — zero Lua at runtime.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/questitem/engine/catalog"
	"github.com/nathoo/questitem/types"
)

// Content is everything the loader produces: the immutable item catalog and
// the raw quest definitions ready for instantiation.
type Content struct {
	Catalog *catalog.Defs
	Quests  []types.QuestDef

	// Non-fatal validation findings, for the caller to report.
	Warnings []string
}

// collector accumulates Lua definitions during file execution.
type collector struct {
	classes  []rawClass
	lookups  []rawLookup
	quests   []rawQuest
	settings *lua.LTable
}

// Load reads all .lua files from dir, compiles them into content,
// validates references, and returns the result. Files are executed with
// catalog.lua first so quests can rely on the catalog being complete.
func Load(dir string) (*Content, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}

	luaFiles = sortedLuaFiles(luaFiles)

	// Create sandboxed VM.
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		path := filepath.Join(dir, f)
		if err := L.DoFile(path); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	content, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling content: %w", err)
	}

	if err := validate(content); err != nil {
		return nil, err
	}

	return content, nil
}

// sortedLuaFiles puts catalog.lua first, the rest alphabetical.
func sortedLuaFiles(files []string) []string {
	sort.Strings(files)
	for i, f := range files {
		if f == "catalog.lua" && i != 0 {
			copy(files[1:i+1], files[:i])
			files[0] = f
			break
		}
	}
	return files
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Remove math.randomseed to preserve determinism.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
