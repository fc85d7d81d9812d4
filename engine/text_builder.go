package engine

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ============================================================================
// TEXT BUILDER — One-line summary of a Spec
// ============================================================================
// Used as the HTML caption and in session logs:
//   "Bar chart of score by age, colored by city (8 rows)"
// ============================================================================

// Summarize describes spec in one line. A nil spec yields Placeholder.
func Summarize(spec *Spec) string {
	if spec == nil {
		return Placeholder
	}

	var b strings.Builder
	b.WriteString(cases.Title(language.English).String(string(spec.Mark)))
	b.WriteString(" chart of ")

	x, hasX := spec.Encoding[ChannelX]
	y, hasY := spec.Encoding[ChannelY]
	switch {
	case hasX && hasY:
		fmt.Fprintf(&b, "%s by %s", y.Name, x.Name)
	case hasY:
		b.WriteString(y.Name)
	default:
		b.WriteString(x.Name)
	}

	if c, ok := spec.Encoding[ChannelColor]; ok {
		fmt.Fprintf(&b, ", colored by %s", c.Name)
	}

	rows := spec.Data.Values.Len()
	unit := "rows"
	if rows == 1 {
		unit = "row"
	}
	fmt.Fprintf(&b, " (%s %s)", humanize.Comma(int64(rows)), unit)
	return b.String()
}
