package kinds

import (
	"slices"
	"strings"

	"facette.io/natsort"
	"github.com/amp-labs/amp-dependent/dependent"
	"github.com/amp-labs/amp-dependent/optional"
	"github.com/amp-labs/amp-dependent/validator"
)

// SetConfig limits the size of a non-empty set. MaxSize 0 means no limit.
type SetConfig struct {
	MaxSize int `yaml:"max_size"`
}

// StringSet is a deduplicated, naturally ordered ("a2" before "a10") list of strings.
type StringSet []string

// Contains reports whether s holds item.
func (s StringSet) Contains(item string) bool {
	return slices.Contains(s, item)
}

func (s StringSet) String() string {
	return "{" + strings.Join(s, ", ") + "}"
}

// NonEmptySetRule deduplicates candidate and accepts it if at least one distinct
// element remains and the size limit holds. The candidate slice is not modified.
func NonEmptySetRule(config SetConfig, candidate []string) optional.Value[StringSet] {
	set := slices.Clone(candidate)
	slices.Sort(set)
	set = slices.Compact(set)
	natsort.Sort(set)

	if len(set) == 0 || (config.MaxSize > 0 && len(set) > config.MaxSize) {
		return optional.None[StringSet]()
	}

	return optional.Some(StringSet(set))
}

// NonEmptySetValidator returns the non-empty set validator for config.
func NonEmptySetValidator(config SetConfig) validator.Validator[SetConfig, []string, StringSet] {
	return validator.New(config, validator.Rule[SetConfig, []string, StringSet](NonEmptySetRule))
}

// NonEmptyStrings is a set of strings with at least one element.
type NonEmptyStrings struct{}

var NonEmptyStringSets = dependent.Bind[NonEmptyStrings](NonEmptySetValidator(SetConfig{})) //nolint:gochecknoglobals
