package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/questitem/engine/catalog"
	"github.com/nathoo/questitem/types"
)

// rawClass holds a class table before compilation.
type rawClass struct {
	id    int
	name  string
	table *lua.LTable
}

// rawLookup holds a lookup entry before compilation.
type rawLookup struct {
	name  string
	table *lua.LTable
}

// rawQuest holds a quest table before compilation.
type rawQuest struct {
	name  string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getInt returns an int field from a Lua table, or def if missing.
func getInt(tbl *lua.LTable, key string, def int) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// stringList converts the array part of a Lua table to a string slice,
// preserving order.
func stringList(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var result []string
	for i := 1; i <= tbl.Len(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			result = append(result, string(s))
		}
	}
	return result
}

// compile turns collected raw Lua tables into Content.
func compile(coll *collector) (*Content, error) {
	defs := &catalog.Defs{
		Classes: map[int]types.ClassDef{},
		Lookup:  map[string]types.LookupEntry{},
	}

	for _, rc := range coll.classes {
		if _, exists := defs.Classes[rc.id]; exists {
			return nil, fmt.Errorf("duplicate class id %d (%s)", rc.id, rc.name)
		}
		cd, err := compileClass(rc)
		if err != nil {
			return nil, err
		}
		defs.Classes[rc.id] = cd
	}

	for _, rl := range coll.lookups {
		if _, exists := defs.Lookup[rl.name]; exists {
			return nil, fmt.Errorf("duplicate lookup entry %q", rl.name)
		}
		defs.Lookup[rl.name] = types.LookupEntry{
			Class:    getInt(rl.table, "class", types.Unspecified),
			Subclass: getInt(rl.table, "subclass", types.Unspecified),
		}
	}

	var quests []types.QuestDef
	seen := map[string]bool{}
	for _, rq := range coll.quests {
		if seen[rq.name] {
			return nil, fmt.Errorf("duplicate quest %q", rq.name)
		}
		seen[rq.name] = true
		qd, err := compileQuest(rq)
		if err != nil {
			return nil, err
		}
		quests = append(quests, qd)
	}

	if coll.settings != nil {
		catalog.CurrencyClass = getInt(coll.settings, "currency", catalog.CurrencyClass)
		catalog.MagicItemsClass = getInt(coll.settings, "magic_items", catalog.MagicItemsClass)
	}

	return &Content{Catalog: defs, Quests: quests}, nil
}

// compileClass builds a ClassDef. The table's array part lists the
// templates in subclass order.
func compileClass(rc rawClass) (types.ClassDef, error) {
	cd := types.ClassDef{ID: rc.id, Name: rc.name}

	// Lua index 1 becomes subclass 0.
	for i := 1; i <= rc.table.Len(); i++ {
		entry, ok := rc.table.RawGetInt(i).(*lua.LTable)
		if !ok {
			return types.ClassDef{}, fmt.Errorf("class %d (%s): template entries must be tables", rc.id, rc.name)
		}
		tmpl := types.TemplateDef{
			Short: getString(entry, "short"),
			Long:  getString(entry, "name"),
		}
		if tmpl.Short == "" {
			return types.ClassDef{}, fmt.Errorf("class %d (%s): template %d missing short name", rc.id, rc.name, i-1)
		}
		if tmpl.Long == "" {
			tmpl.Long = tmpl.Short
		}
		cd.Templates = append(cd.Templates, tmpl)
	}
	return cd, nil
}

// compileQuest builds a QuestDef, keeping declaration lines as raw text.
func compileQuest(rq rawQuest) (types.QuestDef, error) {
	qd := types.QuestDef{
		Name:     rq.name,
		Items:    stringList(getTable(rq.table, "items")),
		Messages: map[string]types.MessageDef{},
		Dialogue: map[string]types.DialogueBinding{},
	}

	if msgs := getTable(rq.table, "messages"); msgs != nil {
		var err error
		msgs.ForEach(func(k, v lua.LValue) {
			if err != nil {
				return
			}
			id, ok := k.(lua.LString)
			if !ok {
				err = fmt.Errorf("quest %q: message keys must be strings", rq.name)
				return
			}
			variants, ok := v.(*lua.LTable)
			if !ok {
				err = fmt.Errorf("quest %q: message %s must be a table of variants", rq.name, id)
				return
			}
			qd.Messages[string(id)] = types.MessageDef{
				ID:       string(id),
				Variants: stringList(variants),
			}
		})
		if err != nil {
			return types.QuestDef{}, err
		}
	}

	if dlg := getTable(rq.table, "dialogue"); dlg != nil {
		var err error
		dlg.ForEach(func(k, v lua.LValue) {
			if err != nil {
				return
			}
			symbol, ok := k.(lua.LString)
			if !ok {
				err = fmt.Errorf("quest %q: dialogue keys must be item symbols", rq.name)
				return
			}
			binding, ok := v.(*lua.LTable)
			if !ok {
				err = fmt.Errorf("quest %q: dialogue entry %s must be a table", rq.name, symbol)
				return
			}
			qd.Dialogue[string(symbol)] = types.DialogueBinding{
				Info:   getString(binding, "info"),
				Rumors: getString(binding, "rumors"),
			}
		})
		if err != nil {
			return types.QuestDef{}, err
		}
	}

	return qd, nil
}
