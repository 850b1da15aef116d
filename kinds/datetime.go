package kinds

import (
	"time"

	"github.com/amp-labs/amp-dependent/dependent"
	"github.com/amp-labs/amp-dependent/optional"
	"github.com/amp-labs/amp-dependent/validator"
)

// ParseUTC parses candidate with layout and keeps it only if it carries a zero UTC
// offset ("Z" or "+00:00"). Local times and other offsets are rejected rather than
// converted. The result is normalized to the UTC location.
func ParseUTC(layout string, candidate string) optional.Value[time.Time] {
	parsed, err := time.Parse(layout, candidate)
	if err != nil {
		return optional.None[time.Time]()
	}

	if _, offset := parsed.Zone(); offset != 0 {
		return optional.None[time.Time]()
	}

	return optional.Some(parsed.UTC())
}

// UTCDateTimeValidator parses with layout. Parsing has a natural "nothing found"
// outcome, so the rule is optional-producing and meant for BindSome.
func UTCDateTimeValidator(layout string) validator.Validator[string, string, optional.Value[time.Time]] {
	return validator.New(layout, validator.Optional(ParseUTC))
}

// UTCDateTime is an RFC 3339 timestamp in UTC.
type UTCDateTime struct{}

var UTCDateTimes = dependent.BindSome[UTCDateTime](UTCDateTimeValidator(time.RFC3339)) //nolint:gochecknoglobals

// CompareTimes orders UTCDateTime payloads, for dependent.SortFunc and CompareFunc.
func CompareTimes(a, b time.Time) int {
	return a.Compare(b)
}
