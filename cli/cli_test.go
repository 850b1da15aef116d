package cli

import (
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/amp-labs/amp-dependent/errors"
	"github.com/amp-labs/amp-dependent/kinds"
	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptedBy(t *testing.T) {
	t.Parallel()

	validate := acceptedBy(kinds.ThreeDigitsStrings)

	require.NoError(t, validate("007"))

	err := validate("0007")
	require.ErrorIs(t, err, errors.ErrValidationRejected)
	assert.Contains(t, err.Error(), "kinds.ThreeDigits")
}

type discard struct {
	io.Writer
}

func (discard) Close() error {
	return nil
}

// typing returns a terminal that reads keystrokes from keys. Each terminal
// serves a single prompt because readline buffers ahead of what it consumes.
func typing(keys string) Terminal {
	return Terminal{
		In:  io.NopCloser(strings.NewReader(keys)),
		Out: discard{io.Discard},
	}
}

func TestPromptValidated(t *testing.T) {
	t.Parallel()

	w, err := PromptValidated(typing("007\r"), "Code", kinds.ThreeDigitsStrings)
	require.NoError(t, err)
	assert.Equal(t, "007", w.Value())
}

func TestPromptValidated_RefusesUntilEOF(t *testing.T) {
	t.Parallel()

	w, err := PromptValidated(typing("0007\r"), "Code", kinds.ThreeDigitsStrings)
	require.ErrorIs(t, err, promptui.ErrEOF)
	assert.False(t, w.Valid())
}

func TestTerminal_Prompt(t *testing.T) {
	t.Parallel()

	got, err := typing("anything goes\r").Prompt("Note", nil)
	require.NoError(t, err)
	assert.Equal(t, "anything goes", got)
}

func TestTerminal_Confirm(t *testing.T) {
	t.Parallel()

	yes, err := typing("y\r").Confirm("Again")
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := typing("n\r").Confirm("Again")
	require.NoError(t, err, "declining is not an error")
	assert.False(t, no)
}

func TestTerminal_Select(t *testing.T) {
	t.Parallel()

	first, err := typing("\r").Select("Kind", "zip", "percent", "zip")
	require.NoError(t, err)
	assert.Equal(t, "percent", first, "choices are offered sorted")

	second, err := typing("j\r").Select("Kind", "zip", "percent", "zip")
	require.NoError(t, err)
	assert.Equal(t, "zip", second)

	_, err = typing("").Select("Kind", "zip")
	require.ErrorIs(t, err, promptui.ErrEOF)
}

func TestPrefixSearcher(t *testing.T) {
	t.Parallel()

	items := []string{"percent", "Postcode", "zip"}
	search := prefixSearcher(items)

	assert.True(t, search("p", 0))
	assert.True(t, search("po", 1))
	assert.False(t, search("po", 0))
	assert.False(t, search("", 2))
	assert.False(t, search("z", 7))
}

func TestBanner(t *testing.T) {
	t.Parallel()

	got := Banner("catalog\nzip", 12, AlignCenter)
	assert.Equal(t, strings.Join([]string{
		"╒══════════╕",
		"│ catalog  │",
		"│   zip    │",
		"└──────────┘",
	}, "\n"), got)

	left := strings.Split(Banner("ab", 6, AlignLeft), "\n")
	assert.Equal(t, "│ab  │", left[1])

	right := strings.Split(Banner("ab", 6, AlignRight), "\n")
	assert.Equal(t, "│  ab│", right[1])

	truncated := strings.Split(Banner("abcdefgh", 7, AlignLeft), "\n")
	assert.Equal(t, "│abcd…│", truncated[1])
	assert.Equal(t, 7, utf8.RuneCountInString(truncated[1]))

	assert.Empty(t, Banner("x", 2, AlignLeft))
	assert.Empty(t, Banner("", 10, AlignLeft))
	assert.Empty(t, Banner("x", 10, Alignment(9)))
}

func TestDivider(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "┠───┨\n", Divider(5))
	assert.Empty(t, Divider(1))
}
