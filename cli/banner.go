package cli

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

// Alignment positions text inside a banner.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

const (
	DefaultTerminalWidth = 80

	bannerPadding   = 2
	dividerPadding  = 2
	truncateReserve = 1
	halfDivisor     = 2
)

// Divider draws a horizontal rule width runes wide.
func Divider(width int) string {
	if width < dividerPadding {
		return ""
	}

	return fmt.Sprintf("%s%s%s\n", dividerLeft, strings.Repeat(dividerMiddle, width-dividerPadding), dividerRight)
}

// Banner draws s inside a box width runes wide. Lines that do not fit are
// truncated with an ellipsis. An empty result means the input cannot be drawn.
func Banner(s string, width int, alignment Alignment) string {
	if width <= bannerPadding || s == "" {
		return ""
	}

	inner := width - bannerPadding
	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, l := range getLines(s) {
		var line string

		switch alignment {
		case AlignCenter:
			line = pad(l, inner, halfDivisor)
		case AlignLeft:
			line = pad(l, inner, 0)
		case AlignRight:
			line = pad(l, inner, 1)
		default:
			return ""
		}

		parts = append(parts, boxSide+line+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n")
}

func getLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.Split(s, "\n")
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

func truncateGraphic(s string, n int) (string, int) {
	var out strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			if count == n {
				break
			}

			count++
		}

		out.WriteRune(r)
	}

	return out.String(), count
}

// pad fits text into width. divisor picks where the spare space goes: 0 puts
// it all on the right, 1 all on the left, 2 splits it.
func pad(text string, width int, divisor int) string {
	length := countGraphic(text)

	if length > width {
		text, length = truncateGraphic(text, width-truncateReserve)
		text += ellipsis
		length++
	}

	diff := width - length

	var left int

	switch divisor {
	case 0:
		left = 0
	case 1:
		left = diff
	default:
		left = diff / divisor
	}

	return strings.Repeat(" ", left) + text + strings.Repeat(" ", diff-left)
}
