// Package memfmt renders byte quantities and allocator statistics as
// human-readable text for diagnostic output. It is a consumer of the
// allocator stack, not part of it.
package memfmt

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/RDFacendola/Syntropy-sub001/alloc"
	"github.com/RDFacendola/Syntropy-sub001/memory"
)

var printer = message.NewPrinter(language.English)

// Size renders a byte count in the largest binary unit that keeps the
// value above one, with the exact grouped count alongside once it stops
// being obvious: "300 B", "4.0 KiB (4,096 B)".
func Size(size memory.Bytes) string {
	if size < memory.KiByte {
		return printer.Sprintf("%d B", int64(size))
	}

	value := float64(size)
	units := []string{"KiB", "MiB", "GiB", "TiB"}
	unit := ""
	for _, unit = range units {
		value /= 1024
		if value < 1024 {
			break
		}
	}
	return printer.Sprintf("%.1f %s (%d B)", value, unit, int64(size))
}

// Report renders one allocator's statistics as an aligned multi-line
// block, suitable for console output.
func Report(name string, stats alloc.Stats) string {
	var b strings.Builder
	printer.Fprintf(&b, "%s\n", name)
	printer.Fprintf(&b, "  allocations:   %d\n", stats.Allocations)
	printer.Fprintf(&b, "  deallocations: %d\n", stats.Deallocations)
	printer.Fprintf(&b, "  in use:        %s\n", Size(stats.InUse))
	printer.Fprintf(&b, "  peak:          %s\n", Size(stats.Peak))
	return b.String()
}
