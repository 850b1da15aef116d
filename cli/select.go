package cli

import (
	"slices"
	"strings"

	"github.com/manifoldco/promptui"
)

// prefixSearcher matches items that start with the typed input, ignoring case.
// An empty input matches nothing so the full list stays visible.
func prefixSearcher(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" || index < 0 || index >= len(items) {
			return false
		}

		return strings.HasPrefix(strings.ToLower(items[index]), strings.ToLower(input))
	}
}

// Select lets the user pick one of choices, shown in sorted order.
func (t Terminal) Select(label string, choices ...string) (string, error) {
	items := slices.Clone(choices)
	slices.Sort(items)
	items = slices.Compact(items)

	sel := &promptui.Select{
		Label:    label,
		Items:    items,
		Searcher: prefixSearcher(items),
		Stdin:    t.stdin(),
		Stdout:   t.stdout(),
	}

	_, value, err := sel.Run()

	return value, err
}
