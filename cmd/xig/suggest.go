package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/conn-castle/xig/internal/gateway"
	"github.com/conn-castle/xig/internal/messages"
)

// suggestionError decorates a rejected-names error with close matches.
type suggestionError struct {
	err   error
	hints []string
}

func (e *suggestionError) Error() string {
	return fmt.Sprintf(messages.ErrorSuggestionFmt, e.err, strings.Join(e.hints, ", "))
}

func (e *suggestionError) Unwrap() error {
	return e.err
}

// withSuggestions adds the best fuzzy match for each rejected name. Names rejected by
// install are matched against available gateways, all others against installed ones.
func withSuggestions(err error, catalog *gateway.Catalog) error {
	names, ok := gateway.RejectedNames(err)
	if !ok {
		return err
	}
	list := catalog.ListInstalled
	if errors.Is(err, gateway.ErrInvalidTarget) {
		list = catalog.ListAvailable
	}
	candidates, lerr := list()
	if lerr != nil || len(candidates) == 0 {
		return err
	}
	hints := suggest(names, candidates)
	if len(hints) == 0 {
		return err
	}
	return &suggestionError{err: err, hints: hints}
}

func suggest(names []string, candidates []string) []string {
	var hints []string
	for _, name := range names {
		matches := fuzzy.Find(name, candidates)
		if len(matches) == 0 {
			continue
		}
		if best := matches[0].Str; !slices.Contains(hints, best) {
			hints = append(hints, best)
		}
	}
	return hints
}
