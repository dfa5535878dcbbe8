package item

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/nathoo/questitem/engine/catalog"
	"github.com/nathoo/questitem/types"
)

// testRNG is a seeded RandomSource for deterministic factory tests.
type testRNG struct {
	src *rand.Rand
}

func newTestRNG(seed int64) *testRNG {
	return &testRNG{src: rand.New(rand.NewSource(seed))}
}

func (r *testRNG) Intn(n int) int {
	return r.src.Intn(n)
}

func (r *testRNG) IntRange(min, max int) int {
	return min + r.src.Intn(max-min+1)
}

func testDefs() *catalog.Defs {
	return &catalog.Defs{
		Classes: map[int]types.ClassDef{
			2: {ID: 2, Name: "Armor", Templates: []types.TemplateDef{
				{Short: "Cuirass", Long: "Iron Cuirass"},
				{Short: "Helm", Long: "Iron Helm"},
			}},
			3: {ID: 3, Name: "Weapons", Templates: []types.TemplateDef{
				{Short: "Dagger", Long: "Steel Dagger"},
				{Short: "Sword", Long: "Steel Sword"},
				{Short: "Bow", Long: "Short Bow"},
			}},
			9: {ID: 9, Name: "Gems", Templates: []types.TemplateDef{
				{Short: "Ruby", Long: "Ruby"},
				{Short: "Emerald", Long: "Emerald"},
				{Short: "Sapphire", Long: "Sapphire"},
				{Short: "Talisman", Long: "Magical Talisman"},
			}},
			13: {ID: 13, Name: "Religious", Templates: []types.TemplateDef{
				{Short: "Icon", Long: "Holy Icon"},
			}},
			17: {ID: 17, Name: "Trinkets", Templates: []types.TemplateDef{
				{Short: "Bracelet", Long: "Silver Bracelet"},
				{Short: "Ring", Long: "Silver Ring"},
				{Short: "Locket", Long: "Silver Locket"},
			}},
			24: {ID: 24, Name: "Currency", Templates: []types.TemplateDef{
				{Short: "Gold", Long: "Gold pieces"},
			}},
		},
		Lookup: map[string]types.LookupEntry{
			"talisman": {Class: 9, Subclass: 3},
			"dagger":   {Class: 3, Subclass: 0},
		},
	}
}

func testFactory(seed int64) (*Factory, uuid.UUID) {
	player := &types.Player{Level: 1}
	return NewFactory(testDefs(), newTestRNG(seed), player), uuid.New()
}

func TestFactory_ByName(t *testing.T) {
	f, questUID := testFactory(1)

	inst, err := f.Build(questUID, types.ItemSpec{
		Symbol:   "talisman",
		Strategy: types.StrategyByName,
		Name:     "talisman",
		Class:    types.Unspecified,
		Subclass: types.Unspecified,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if inst.Class != 9 || inst.Subclass != 3 {
		t.Errorf("expected class 9 subclass 3 from lookup table, got %d/%d", inst.Class, inst.Subclass)
	}
	if inst.ShortName != "Talisman" || inst.LongName != "Magical Talisman" {
		t.Errorf("template names not applied: %q / %q", inst.ShortName, inst.LongName)
	}
	if !inst.IsQuestItem || inst.QuestUID != questUID || inst.QuestSymbol != "talisman" {
		t.Errorf("instance not linked to quest: %+v", inst)
	}
	if inst.StackCount != 1 {
		t.Errorf("expected stack count 1, got %d", inst.StackCount)
	}
}

func TestFactory_ByName_NotFound(t *testing.T) {
	f, questUID := testFactory(1)

	_, err := f.Build(questUID, types.ItemSpec{
		Symbol:   "_x_",
		Strategy: types.StrategyByName,
		Name:     "excalibur",
		Class:    types.Unspecified,
		Subclass: types.Unspecified,
	})
	if err == nil {
		t.Fatal("unknown name should fail")
	}
	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LookupError, got %T", err)
	}
	if le.Name != "excalibur" {
		t.Errorf("LookupError should carry the name, got %q", le.Name)
	}
}

func TestFactory_ByClass_ExplicitSubclass(t *testing.T) {
	// Explicit subclass is used exactly, never randomized.
	for seed := int64(0); seed < 10; seed++ {
		f, questUID := testFactory(seed)
		inst, err := f.Build(questUID, types.ItemSpec{
			Symbol:   "_I.07_",
			Strategy: types.StrategyByClass,
			Class:    17,
			Subclass: 2,
		})
		if err != nil {
			t.Fatalf("seed %d: Build failed: %v", seed, err)
		}
		if inst.Class != 17 || inst.Subclass != 2 {
			t.Fatalf("seed %d: expected class 17 subclass 2, got %d/%d", seed, inst.Class, inst.Subclass)
		}
	}
}

func TestFactory_ByClass_RandomSubclass(t *testing.T) {
	// Unspecified subclass is rolled uniformly over the class variants.
	seen := map[int]bool{}
	for seed := int64(0); seed < 50; seed++ {
		f, questUID := testFactory(seed)
		inst, err := f.Build(questUID, types.ItemSpec{
			Symbol:   "_I.06_",
			Strategy: types.StrategyByClass,
			Class:    17,
			Subclass: types.Unspecified,
		})
		if err != nil {
			t.Fatalf("seed %d: Build failed: %v", seed, err)
		}
		if inst.Subclass < 0 || inst.Subclass > 2 {
			t.Fatalf("seed %d: subclass %d outside valid variants of class 17", seed, inst.Subclass)
		}
		seen[inst.Subclass] = true
	}
	if len(seen) < 2 {
		t.Errorf("50 seeds should produce more than one subclass, got %v", seen)
	}
}

func TestFactory_MagicItemsRedirect(t *testing.T) {
	redirects := map[int]bool{}
	for _, c := range MagicRedirectClasses {
		redirects[c] = true
	}

	for seed := int64(0); seed < 50; seed++ {
		f, questUID := testFactory(seed)
		inst, err := f.Build(questUID, types.ItemSpec{
			Symbol:   "_magic_",
			Strategy: types.StrategyByClass,
			Class:    catalog.MagicItemsClass,
			Subclass: types.Unspecified,
		})
		if err != nil {
			t.Fatalf("seed %d: Build failed: %v", seed, err)
		}
		if !redirects[inst.Class] {
			t.Fatalf("seed %d: redirected class %d not in %v", seed, inst.Class, MagicRedirectClasses)
		}
		if inst.Subclass < 0 || inst.Subclass >= f.Catalog.VariantCount(inst.Class) {
			t.Fatalf("seed %d: subclass %d invalid for class %d", seed, inst.Subclass, inst.Class)
		}
		if !inst.IsEnchanted() {
			t.Fatalf("seed %d: redirected magic item should carry the placeholder enchantment", seed)
		}
		if inst.Enchantments[0] != EnchantmentUnspecified {
			t.Fatalf("seed %d: expected placeholder payload, got %v", seed, inst.Enchantments)
		}
	}
}

func TestFactory_MagicItems_ExplicitSubclassNotRedirected(t *testing.T) {
	// An explicit subclass skips the redirect; the magic-items class has no
	// templates of its own, so creation fails.
	f, questUID := testFactory(1)
	_, err := f.Build(questUID, types.ItemSpec{
		Symbol:   "_magic_",
		Strategy: types.StrategyByClass,
		Class:    catalog.MagicItemsClass,
		Subclass: 0,
	})
	if err == nil {
		t.Fatal("magic-items class with explicit subclass should fail without templates")
	}
}

func TestFactory_ByClass_Errors(t *testing.T) {
	tests := []struct {
		name  string
		class int
	}{
		{name: "unspecified sentinel", class: types.Unspecified},
		{name: "unknown class", class: 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, questUID := testFactory(1)
			_, err := f.Build(questUID, types.ItemSpec{
				Symbol:   "_x_",
				Strategy: types.StrategyByClass,
				Class:    tt.class,
				Subclass: 0,
			})
			var ice *InvalidClassError
			if !errors.As(err, &ice) {
				t.Fatalf("expected *InvalidClassError, got %v", err)
			}
		})
	}
}

func TestFactory_Gold_Range(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		f, questUID := testFactory(seed)
		inst, err := f.Build(questUID, types.ItemSpec{
			Symbol:   "_gold1_",
			Strategy: types.StrategyGold,
			HasRange: true, RangeLow: 5, RangeHigh: 25,
		})
		if err != nil {
			t.Fatalf("seed %d: Build failed: %v", seed, err)
		}
		if inst.StackCount < 5 || inst.StackCount > 25 {
			t.Fatalf("seed %d: amount %d outside [5,25]", seed, inst.StackCount)
		}
		if inst.Class != catalog.CurrencyClass || inst.Subclass != 0 {
			t.Fatalf("seed %d: gold should be currency subclass 0, got %d/%d", seed, inst.Class, inst.Subclass)
		}
		if !inst.IsPlainGold() {
			t.Fatalf("seed %d: instance should report as plain gold", seed)
		}
	}
}

func TestFactory_Gold_DegenerateRange(t *testing.T) {
	f, questUID := testFactory(1)
	inst, err := f.Build(questUID, types.ItemSpec{
		Symbol:   "_g_",
		Strategy: types.StrategyGold,
		HasRange: true, RangeLow: 10, RangeHigh: 10,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if inst.StackCount != 10 {
		t.Errorf("degenerate range should always yield 10, got %d", inst.StackCount)
	}
}

func TestFactory_Gold_Formula(t *testing.T) {
	tests := []struct {
		name   string
		level  int
		region int
	}{
		{name: "fresh character", level: 1, region: 0},
		{name: "mid level", level: 10, region: 100},
		{name: "level above cap", level: 40, region: 0},
		{name: "crashed region economy", level: 1, region: -1000},
		{name: "zero level", level: 0, region: -1000},
		{name: "negative level", level: -4, region: 0},
		{name: "negative level and crashed region", level: -20, region: -1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(0); seed < 50; seed++ {
				player := &types.Player{Level: tt.level, RegionPriceAdjustment: tt.region}
				f := NewFactory(testDefs(), newTestRNG(seed), player)
				inst, err := f.Build(uuid.New(), types.ItemSpec{
					Symbol:   "_reward_",
					Strategy: types.StrategyGold,
				})
				if err != nil {
					t.Fatalf("seed %d: Build failed: %v", seed, err)
				}
				if inst.StackCount < 1 {
					t.Fatalf("seed %d: gold amount must be floored at 1, got %d", seed, inst.StackCount)
				}
			}
		})
	}
}

func TestFactory_Gold_LevelScaling(t *testing.T) {
	// A capped high-level character draws from [1500, 2000] before the
	// region/faction adjustments; with neutral region that lands well above
	// a fresh character's ceiling.
	player := &types.Player{Level: 40, RegionPriceAdjustment: 0}
	f := NewFactory(testDefs(), newTestRNG(7), player)
	inst, err := f.Build(uuid.New(), types.ItemSpec{
		Symbol:   "_reward_",
		Strategy: types.StrategyGold,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	// roll in [1500,2000], then *500/1000 then *100/100.
	if inst.StackCount < 750 || inst.StackCount > 1000 {
		t.Errorf("capped-level amount should be in [750,1000], got %d", inst.StackCount)
	}
}

func TestFactory_Gold_NegativeLevelClamped(t *testing.T) {
	// A negative level clamps to the fresh-character modifier instead of
	// inverting the roll interval.
	player := &types.Player{Level: -4, RegionPriceAdjustment: 0}
	f := NewFactory(testDefs(), newTestRNG(11), player)
	inst, err := f.Build(uuid.New(), types.ItemSpec{
		Symbol:   "_reward_",
		Strategy: types.StrategyGold,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	// roll in [150,200], then *500/1000 then *100/100.
	if inst.StackCount < 75 || inst.StackCount > 100 {
		t.Errorf("negative-level amount should match a level-1 character's [75,100], got %d", inst.StackCount)
	}
}

func TestFactory_UnknownStrategy(t *testing.T) {
	f, questUID := testFactory(1)
	_, err := f.Build(questUID, types.ItemSpec{Symbol: "_x_", Strategy: types.Strategy(99)})
	if err == nil {
		t.Fatal("unknown strategy tag should fail")
	}
}
