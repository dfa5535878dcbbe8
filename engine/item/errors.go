package item

import (
	"errors"
	"fmt"
)

// ErrUnsupportedMacro signals a macro kind this resource produces no text
// for. Callers treat it as "not applicable", not as a failure.
var ErrUnsupportedMacro = errors.New("macro not supported by item resource")

// LookupError reports a by-name declaration whose name is absent from the
// catalog's lookup table. Fatal: the resource is not constructed.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("item name %q not found in lookup table", e.Name)
}

// InvalidClassError reports a by-class creation with the unspecified
// sentinel, or a class the catalog does not define. Fatal.
type InvalidClassError struct {
	Class int
}

func (e *InvalidClassError) Error() string {
	return fmt.Sprintf("invalid item class %d", e.Class)
}
