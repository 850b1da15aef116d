package kinds

import (
	"cmp"
	"fmt"

	"github.com/amp-labs/amp-dependent/dependent"
	"github.com/amp-labs/amp-dependent/optional"
	"github.com/amp-labs/amp-dependent/validator"
)

// Sign tags an integer as negative, zero or positive.
type Sign uint8

const (
	Negative Sign = iota
	Zero
	Positive
)

func (s Sign) String() string {
	switch s {
	case Negative:
		return "Negative"
	case Zero:
		return "Zero"
	case Positive:
		return "Positive"
	default:
		return fmt.Sprintf("Sign(%d)", uint8(s))
	}
}

// SignOf classifies n.
func SignOf(n int) Sign {
	switch {
	case n < 0:
		return Negative
	case n == 0:
		return Zero
	default:
		return Positive
	}
}

// Signed is an integer together with its sign tag.
type Signed struct {
	Sign  Sign
	Value int
}

func (s Signed) String() string {
	return fmt.Sprintf("%s(%d)", s.Sign, s.Value)
}

// CompareSigned orders Signed payloads by their integer value.
func CompareSigned(a, b Signed) int {
	return cmp.Compare(a.Value, b.Value)
}

// SignedValidator tags every integer; it never rejects, so Create is safe on it.
func SignedValidator() validator.Validator[struct{}, int, Signed] {
	return validator.New(struct{}{}, validator.Total(func(_ struct{}, n int) Signed {
		return Signed{Sign: SignOf(n), Value: n}
	}))
}

// SignedInt is an integer tagged with its Sign.
type SignedInt struct{}

var SignedInts = dependent.Bind[SignedInt](SignedValidator()) //nolint:gochecknoglobals

// Polarity is the two-variant coarsening of Sign.
type Polarity uint8

const (
	NonNegativePolarity Polarity = iota
	NegativePolarity
)

func (p Polarity) String() string {
	switch p {
	case NonNegativePolarity:
		return "NonNegative"
	case NegativePolarity:
		return "Negative"
	default:
		return fmt.Sprintf("Polarity(%d)", uint8(p))
	}
}

// Polar is an integer together with its Polarity tag.
type Polar struct {
	Polarity Polarity
	Value    int
}

func (p Polar) String() string {
	return fmt.Sprintf("%s(%d)", p.Polarity, p.Value)
}

// PolarRule maps a Signed to its Polar form. Zero and Positive both become
// NonNegative. A Signed whose tag contradicts its value is rejected.
func PolarRule(_ struct{}, candidate Signed) optional.Value[Polar] {
	if SignOf(candidate.Value) != candidate.Sign {
		return optional.None[Polar]()
	}

	polarity := NonNegativePolarity
	if candidate.Sign == Negative {
		polarity = NegativePolarity
	}

	return optional.Some(Polar{Polarity: polarity, Value: candidate.Value})
}

// PolarInt is an integer tagged with its Polarity. Its candidates are Signed
// payloads, so SignedInt wrappers convert into it.
type PolarInt struct{}

var (
	PolarInts = dependent.Bind[PolarInt](validator.New(struct{}{}, //nolint:gochecknoglobals
		validator.Rule[struct{}, Signed, Polar](PolarRule)))

	// SignedToPolar converts SignedInt wrappers into PolarInt wrappers.
	SignedToPolar = dependent.To[SignedInt](PolarInts) //nolint:gochecknoglobals
)
