package pod

import (
	"fmt"
	"strings"
)

// InfoTitle is the frame title of the Pod Info screen.
const InfoTitle = "Pod Info"

// Info renders the catalog against snap as aligned "label  value" lines,
// one block per section.
func Info(snap Snapshot, c *Catalog) string {
	width := 0
	for _, s := range c.Sections() {
		for _, f := range s.Fields {
			width = max(width, len(f.Label))
		}
	}

	var b strings.Builder
	for i, s := range c.Sections() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s\n", s.Name)
		for _, f := range s.Fields {
			fmt.Fprintf(&b, "  %-*s  %s\n", width, f.Label, value(snap, f))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func value(snap Snapshot, f Field) string {
	v, ok := snap.Lookup(f.Key)
	if !ok {
		return NotAvailable
	}
	if f.Unit != "" {
		return v + " " + f.Unit
	}
	return v
}
