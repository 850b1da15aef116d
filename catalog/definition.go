package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amp-labs/amp-dependent/errors"
	"github.com/amp-labs/amp-dependent/kinds"
	"github.com/amp-labs/amp-dependent/optional"
	"github.com/amp-labs/amp-dependent/pointer"
	"github.com/amp-labs/amp-dependent/validator"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

const maxUUIDVersion = 8

// Kind types understood by the catalog.
const (
	TypeDigits      = "digits"
	TypeRange       = "range"
	TypeUppercase   = "uppercase"
	TypeUTCDateTime = "utc-datetime"
	TypeSet         = "set"
	TypeUUID        = "uuid"
)

// Definition is one catalog entry as written in YAML. Which fields apply depends on Type:
//
//   - digits: Length (0 for any length)
//   - range: Min and Max, both required; candidates are base-10 integers
//   - uppercase: Language (BCP 47, default language-neutral)
//   - utc-datetime: Layout (Go time layout, default RFC 3339)
//   - set: Separator (default ","), MaxSize (0 for no limit)
//   - uuid: Version (0 for any); accepted values render in canonical lowercase form
type Definition struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Length    int    `yaml:"length,omitempty"`
	Min       *int   `yaml:"min,omitempty"`
	Max       *int   `yaml:"max,omitempty"`
	Language  string `yaml:"language,omitempty"`
	Layout    string `yaml:"layout,omitempty"`
	Separator string `yaml:"separator,omitempty"`
	MaxSize   int    `yaml:"max_size,omitempty"`
	Version   int    `yaml:"version,omitempty"`
}

func (d Definition) invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %q: %s", errors.ErrInvalidKind, d.Name, fmt.Sprintf(format, args...))
}

// validator turns the definition into a string validator whose output is the
// normalized rendering of the accepted candidate.
func (d Definition) validator() (validator.Validator[Definition, string, string], error) {
	if d.Name == "" {
		return validator.Validator[Definition, string, string]{}, d.invalid("name is required")
	}

	var run func(string) optional.Value[string]

	switch d.Type {
	case TypeDigits:
		if d.Length < 0 {
			return validator.Validator[Definition, string, string]{}, d.invalid("negative length %d", d.Length)
		}

		run = kinds.DigitsValidator(d.Length).Run
	case TypeRange:
		lo, hasMin := pointer.Optional(d.Min).Get()
		hi, hasMax := pointer.Optional(d.Max).Get()

		if !hasMin || !hasMax {
			return validator.Validator[Definition, string, string]{}, d.invalid("range needs min and max")
		}

		if lo > hi {
			return validator.Validator[Definition, string, string]{}, d.invalid("min %d above max %d", lo, hi)
		}

		parse := validator.New(10, validator.Fallible(func(base int, s string) (int, error) {
			n, err := strconv.ParseInt(strings.TrimSpace(s), base, 0)

			return int(n), err
		}))
		render := validator.New(struct{}{}, validator.Total(func(_ struct{}, n int) string {
			return strconv.Itoa(n)
		}))

		run = validator.Then(validator.Then(parse, kinds.RangeValidator(lo, hi)), render).Run
	case TypeUppercase:
		tag := language.Und

		if d.Language != "" {
			parsed, err := language.Parse(d.Language)
			if err != nil {
				return validator.Validator[Definition, string, string]{}, d.invalid("language %q: %v", d.Language, err)
			}

			tag = parsed
		}

		run = kinds.UppercaseValidator(tag).Run
	case TypeUTCDateTime:
		layout := d.Layout
		if layout == "" {
			layout = time.RFC3339
		}

		parse := kinds.UTCDateTimeValidator(layout)
		run = func(s string) optional.Value[string] {
			return optional.Map(optional.Flatten(parse.Run(s)), func(t time.Time) string {
				return t.Format(layout)
			})
		}
	case TypeSet:
		if d.MaxSize < 0 {
			return validator.Validator[Definition, string, string]{}, d.invalid("negative max_size %d", d.MaxSize)
		}

		separator := d.Separator
		if separator == "" {
			separator = ","
		}

		set := kinds.NonEmptySetValidator(kinds.SetConfig{MaxSize: d.MaxSize})
		run = func(s string) optional.Value[string] {
			items := strings.Split(s, separator)

			kept := items[:0]
			for _, item := range items {
				if trimmed := strings.TrimSpace(item); trimmed != "" {
					kept = append(kept, trimmed)
				}
			}

			return optional.Map(set.Run(kept), func(ss kinds.StringSet) string {
				return strings.Join(ss, separator)
			})
		}
	case TypeUUID:
		if d.Version < 0 || d.Version > maxUUIDVersion {
			return validator.Validator[Definition, string, string]{}, d.invalid("uuid version %d", d.Version)
		}

		ids := kinds.UUIDValidator(uuid.Version(d.Version))
		run = func(s string) optional.Value[string] {
			return optional.Map(ids.Run(strings.TrimSpace(s)), uuid.UUID.String)
		}
	default:
		return validator.Validator[Definition, string, string]{}, fmt.Errorf("%w: %q: type %q",
			errors.ErrUnknownKind, d.Name, d.Type)
	}

	return validator.New[Definition, string, string](d, func(_ Definition, candidate string) optional.Value[string] {
		return run(candidate)
	}), nil
}
