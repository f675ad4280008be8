package form

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrUnknownField matches any *UnknownFieldError.
	ErrUnknownField = errors.New("unknown field")
	// ErrNotSelectable reports a combo value or index that is not among its items.
	ErrNotSelectable = errors.New("value not selectable")
	// ErrWrongKind reports an operation on a field of the wrong kind.
	ErrWrongKind = errors.New("wrong field kind")
)

// UnknownFieldError reports a field name that is not on the form, with the
// closest known name when one is near enough.
type UnknownFieldError struct {
	Name       string
	Suggestion string
}

func (e *UnknownFieldError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown field %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown field %q", e.Name)
}

func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}

// maxSuggestDistance bounds how far a suggestion may be from the input.
const maxSuggestDistance = 3

// suggest returns the candidate closest to name within maxSuggestDistance.
func suggest(name string, candidates []string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
