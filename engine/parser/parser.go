// Package parser converts item declaration lines into ItemSpec structs.
// Intentionally dumb: a two-part regular grammar, no lookahead beyond it.
package parser

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/nathoo/questitem/types"
)

// goldKeyword is the item name literal that selects the gold strategy
// instead of a lookup-table resolution.
const goldKeyword = "gold"

// Primary grammar, first match wins. Only the leading keyword is
// case-insensitive; symbols and item names are case-sensitive.
var (
	artifactDecl = regexp.MustCompile(`^(?:Item|item)\s+(?P<symbol>[a-zA-Z0-9_.-]+)\s+artifact\s+(?P<name>[a-zA-Z0-9_.-]+)`)
	genericDecl  = regexp.MustCompile(`^(?:Item|item)\s+(?P<symbol>[a-zA-Z0-9_.-]+)\s+(?P<name>[a-zA-Z0-9_.-]+)`)
)

// Trailing option clauses, order-independent, zero or more.
var (
	rangeOpt = regexp.MustCompile(`range\s+(?P<low>\d+)\s+to\s+(?P<high>\d+)`)
	classOpt = regexp.MustCompile(`item\s+class\s+(?P<class>-?\d+)\s+subclass\s+(?P<subclass>-?\d+)`)
)

// ParseError reports a declaration line that matches no grammar alternative.
type ParseError struct {
	Line string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse item declaration %q", e.Line)
}

// ParseDeclaration matches a single declaration line against the item
// grammar and returns the fully populated spec. The primary match binds
// symbol, item name, and the artifact flag; the rest of the line is then
// scanned for range and class/subclass option clauses. The returned spec
// carries exactly one creation strategy.
func ParseDeclaration(line string) (types.ItemSpec, error) {
	spec := types.ItemSpec{
		Class:    types.Unspecified,
		Subclass: types.Unspecified,
	}

	if m := artifactDecl.FindStringSubmatch(line); m != nil {
		spec.Artifact = true
		spec.Symbol = m[1]
		spec.Name = m[2]
	} else if m := genericDecl.FindStringSubmatch(line); m != nil {
		spec.Symbol = m[1]
		spec.Name = m[2]
	} else {
		return types.ItemSpec{}, &ParseError{Line: line}
	}

	// Option clauses are scanned over the whole line, not a remainder: the
	// generic form's item name may itself be the first word of a class
	// clause ("Item _I.06_ item class 17 subclass -1").
	if m := rangeOpt.FindStringSubmatch(line); m != nil {
		spec.HasRange = true
		spec.RangeLow = mustAtoi(m[1])
		spec.RangeHigh = mustAtoi(m[2])
	}

	if m := classOpt.FindStringSubmatch(line); m != nil {
		spec.Class = mustAtoi(m[1])
		// The clause regex captures class and subclass together or not at
		// all, so a matched clause always carries a subclass value.
		spec.Subclass = mustAtoi(m[2])
	}

	// Resolve the strategy. The gold keyword overrides the by-name path;
	// an explicit class clause overrides name resolution.
	switch {
	case spec.Name == goldKeyword:
		spec.Strategy = types.StrategyGold
		spec.Name = ""
	case spec.Class != types.Unspecified:
		spec.Strategy = types.StrategyByClass
		spec.Name = ""
	default:
		spec.Strategy = types.StrategyByName
	}

	return spec, nil
}

// mustAtoi converts a digit sequence already vetted by a regex.
func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("parser regex admitted non-integer %q: %v", s, err))
	}
	return n
}
