package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nathoo/questitem/engine/catalog"
	"github.com/nathoo/questitem/engine/parser"
	"github.com/nathoo/questitem/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate cross-checks the compiled content: lookup entries must reference
// real class/subclass pairs, every declaration line must parse (and its
// by-name reference must resolve), and dialogue bindings must point at
// declared symbols and defined messages. Declaration lines are only parsed
// here, never built — building depends on runtime player state.
func validate(content *Content) error {
	ve := &ValidationError{}
	defs := content.Catalog

	for name, entry := range defs.Lookup {
		tmplCount := defs.VariantCount(entry.Class)
		if tmplCount == 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("lookup %q references unknown class %d", name, entry.Class))
			continue
		}
		if entry.Subclass < 0 || entry.Subclass >= tmplCount {
			ve.Errors = append(ve.Errors, fmt.Sprintf("lookup %q references class %d subclass %d, which has no template", name, entry.Class, entry.Subclass))
		}
	}

	if defs.VariantCount(catalog.CurrencyClass) == 0 {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf("no currency class %d defined; gold declarations will fail", catalog.CurrencyClass))
	}

	for _, qd := range content.Quests {
		validateQuest(ve, defs, qd)
	}

	content.Warnings = ve.Warnings
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateQuest(ve *ValidationError, defs *catalog.Defs, qd types.QuestDef) {
	declared := map[string]bool{}

	for _, line := range qd.Items {
		spec, err := parser.ParseDeclaration(line)
		if err != nil {
			ve.Errors = append(ve.Errors, fmt.Sprintf("quest %q: %v", qd.Name, err))
			continue
		}
		if declared[spec.Symbol] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("quest %q: duplicate item symbol %q", qd.Name, spec.Symbol))
			continue
		}
		declared[spec.Symbol] = true

		switch spec.Strategy {
		case types.StrategyByName:
			if !defs.HasEntry(spec.Name) {
				ve.Errors = append(ve.Errors, fmt.Sprintf("quest %q: item name %q not in lookup table", qd.Name, spec.Name))
			}
		case types.StrategyByClass:
			if spec.Class != catalog.MagicItemsClass && defs.VariantCount(spec.Class) == 0 {
				ve.Errors = append(ve.Errors, fmt.Sprintf("quest %q: item class %d not in catalog", qd.Name, spec.Class))
			}
		}
	}

	for symbol, binding := range qd.Dialogue {
		if !declared[symbol] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("quest %q: dialogue binding for undeclared symbol %q", qd.Name, symbol))
		}
		if binding.Info == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("quest %q: dialogue for %q missing info message", qd.Name, symbol))
		} else if _, ok := qd.Messages[binding.Info]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf("quest %q: dialogue for %q references unknown message %q", qd.Name, symbol, binding.Info))
		}
		if binding.Rumors != "" {
			if _, ok := qd.Messages[binding.Rumors]; !ok {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf("quest %q: dialogue for %q references unknown rumors message %q", qd.Name, symbol, binding.Rumors))
			}
		}
	}
}

// AsValidationError unwraps a *ValidationError if err carries one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
