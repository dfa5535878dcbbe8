package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors as globals.
//
//	Class(9, "Gems") { { short = "Ruby", name = "Ruby" }, ... }
//	Lookup "talisman" { class = 9, subclass = 3 }
//	Quest "tutorial" { items = {...}, messages = {...}, dialogue = {...} }
//	Settings { currency = 24, magic_items = 19 }
func registerAPI(L *lua.LState, coll *collector) {
	// Class(id, name) — curried: returns a function that takes the
	// template table. Template index (1-based in Lua) becomes the
	// subclass (0-based).
	L.SetGlobal("Class", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckInt(1)
		name := L.CheckString(2)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.classes = append(coll.classes, rawClass{id: id, name: name, table: tbl})
			return 0
		}))
		return 1
	}))

	// Lookup "name" { class = ..., subclass = ... } — curried.
	L.SetGlobal("Lookup", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.lookups = append(coll.lookups, rawLookup{name: name, table: tbl})
			return 0
		}))
		return 1
	}))

	// Quest "name" { ... } — curried.
	L.SetGlobal("Quest", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.quests = append(coll.quests, rawQuest{name: name, table: tbl})
			return 0
		}))
		return 1
	}))

	// Settings { ... } — direct, last one wins.
	L.SetGlobal("Settings", L.NewFunction(func(L *lua.LState) int {
		coll.settings = L.CheckTable(1)
		return 0
	}))
}
