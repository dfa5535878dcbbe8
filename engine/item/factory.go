package item

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nathoo/questitem/engine/catalog"
	"github.com/nathoo/questitem/types"
)

// RandomSource supplies the uniform integers the creation strategies need.
// Injected so tests can drive every randomized path from a fixed seed.
type RandomSource interface {
	// Intn returns a random integer in [0, n).
	Intn(n int) int
	// IntRange returns a random integer in [min, max] inclusive.
	IntRange(min, max int) int
}

// Stand-ins for a real magic-item system. A magic-items declaration with no
// subclass redirects to one of these mundane classes and gets the
// placeholder payload attached, so the object behaves as enchanted until an
// actual effect system fills it in.
var (
	MagicRedirectClasses = []int{2, 3, 9, 13}

	// EnchantmentUnspecified marks an active enchantment slot whose effect
	// is not yet defined.
	EnchantmentUnspecified = types.Enchantment{Kind: 0, Param: types.Unspecified}
)

// PlaceholderEnchantment returns the sentinel payload attached to
// randomly redirected magic items.
func PlaceholderEnchantment() []types.Enchantment {
	return []types.Enchantment{EnchantmentUnspecified}
}

// Gold-formula constants. The faction modifier is a fixed placeholder until
// faction standings exist.
const (
	goldRollLowFactor  = 150
	goldRollHighFactor = 200
	goldPlayerModCap   = 10
	goldFactionMod     = 50
)

// Factory builds item instances from parsed declarations. It selects
// exactly one creation strategy per spec and links every instance it
// produces to the declaring quest before returning it.
type Factory struct {
	Catalog *catalog.Defs
	RNG     RandomSource
	Player  *types.Player
}

// NewFactory creates a factory over the given catalog, random source, and
// player-state snapshot.
func NewFactory(defs *catalog.Defs, rng RandomSource, player *types.Player) *Factory {
	return &Factory{Catalog: defs, RNG: rng, Player: player}
}

// Build executes the creation strategy carried by the spec and returns the
// linked instance. The switch is exhaustive over the strategy union; an
// unknown tag means the parser and factory are out of sync.
func (f *Factory) Build(questUID uuid.UUID, spec types.ItemSpec) (*Instance, error) {
	switch spec.Strategy {
	case types.StrategyByName:
		return f.buildByName(questUID, spec.Symbol, spec.Name)
	case types.StrategyByClass:
		return f.buildByClass(questUID, spec.Symbol, spec.Class, spec.Subclass)
	case types.StrategyGold:
		return f.buildGold(questUID, spec)
	default:
		return nil, fmt.Errorf("unknown creation strategy %d for symbol %q", spec.Strategy, spec.Symbol)
	}
}

// buildByName resolves the name through the lookup table and delegates to
// the by-class strategy with the resolved parameters.
func (f *Factory) buildByName(questUID uuid.UUID, symbol, name string) (*Instance, error) {
	class, subclass, ok := f.Catalog.Entry(name)
	if !ok {
		return nil, &LookupError{Name: name}
	}
	return f.buildByClass(questUID, symbol, class, subclass)
}

// buildByClass instantiates a concrete item of the given class/subclass.
// An unspecified subclass is rolled uniformly over the class's variants;
// the magic-items class with an unspecified subclass first redirects to a
// mundane class and marks the result enchanted.
func (f *Factory) buildByClass(questUID uuid.UUID, symbol string, class, subclass int) (*Instance, error) {
	if class == types.Unspecified {
		return nil, &InvalidClassError{Class: class}
	}

	magic := false
	if class == catalog.MagicItemsClass && subclass == types.Unspecified {
		class = MagicRedirectClasses[f.RNG.Intn(len(MagicRedirectClasses))]
		magic = true
	}

	variants := f.Catalog.VariantCount(class)
	if variants == 0 {
		return nil, &InvalidClassError{Class: class}
	}
	if subclass == types.Unspecified {
		subclass = f.RNG.Intn(variants)
	}

	tmpl, ok := f.Catalog.Template(class, subclass)
	if !ok {
		return nil, fmt.Errorf("item class %d has no subclass %d", class, subclass)
	}

	inst := &Instance{
		Class:      class,
		Subclass:   subclass,
		StackCount: 1,
		ShortName:  tmpl.Short,
		LongName:   tmpl.Long,
	}
	if magic {
		inst.Enchantments = PlaceholderEnchantment()
	}
	inst.LinkToQuest(questUID, symbol)
	return inst, nil
}

// buildGold creates a currency instance. An explicit range rolls uniformly
// inside it; otherwise the amount scales with player level and the current
// region's price adjustment, floored at 1.
func (f *Factory) buildGold(questUID uuid.UUID, spec types.ItemSpec) (*Instance, error) {
	var amount int
	if spec.HasRange {
		amount = f.RNG.IntRange(spec.RangeLow, spec.RangeHigh)
	} else {
		// Clamp to [1, cap] so hostile player state can never produce an
		// empty or inverted roll interval.
		playerMod := f.Player.Level/2 + 1
		if playerMod < 1 {
			playerMod = 1
		}
		if playerMod > goldPlayerModCap {
			playerMod = goldPlayerModCap
		}
		regionMod := f.Player.RegionPriceAdjustment / 2
		roll := f.RNG.IntRange(goldRollLowFactor*playerMod, goldRollHighFactor*playerMod)
		amount = roll * (regionMod + 500) / 1000 * (goldFactionMod + 50) / 100
	}
	if amount < 1 {
		amount = 1
	}

	tmpl, ok := f.Catalog.Template(catalog.CurrencyClass, 0)
	if !ok {
		return nil, &InvalidClassError{Class: catalog.CurrencyClass}
	}

	inst := &Instance{
		Class:      catalog.CurrencyClass,
		Subclass:   0,
		StackCount: amount,
		ShortName:  tmpl.Short,
		LongName:   tmpl.Long,
	}
	inst.LinkToQuest(questUID, spec.Symbol)
	return inst, nil
}
