package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"lobcore/internal/engine"
)

const barGlyph = "#"

// DepthSource is the read-only view of a book the renderer needs. Asks come
// best (lowest) first, bids best (highest) first.
type DepthSource interface {
	Asks() []engine.Level
	Bids() []engine.Level
}

// RenderDepth writes one line per price level, asks above bids so the two
// best prices meet at the spread. Bars are scaled against the largest level
// on either side, width is the length of the longest bar.
func RenderDepth(w io.Writer, book DepthSource, width int) error {
	asks, bids := book.Asks(), book.Bids()
	if len(asks) == 0 && len(bids) == 0 {
		_, err := fmt.Fprintln(w, "book is empty")
		return err
	}

	largest := 0.0
	for _, level := range asks {
		largest = math.Max(largest, level.Volume)
	}
	for _, level := range bids {
		largest = math.Max(largest, level.Volume)
	}

	for i := len(asks) - 1; i >= 0; i-- {
		if err := writeLevel(w, "ASK", asks[i], largest, width); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", width+24)); err != nil {
		return err
	}
	for _, level := range bids {
		if err := writeLevel(w, "BID", level, largest, width); err != nil {
			return err
		}
	}
	return nil
}

func writeLevel(w io.Writer, label string, level engine.Level, largest float64, width int) error {
	_, err := fmt.Fprintf(w, "%s %10.4f | %-*s | %g\n",
		label, level.Price, width, bar(level.Volume, largest, width), level.Volume)
	return err
}

// bar never drops a non-empty level to zero length.
func bar(volume, largest float64, width int) string {
	if largest <= 0 || volume <= 0 {
		return ""
	}
	n := int(math.Round(volume / largest * float64(width)))
	return strings.Repeat(barGlyph, max(n, 1))
}
