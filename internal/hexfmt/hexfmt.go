// Package hexfmt renders byte slices as short hex/ASCII previews for
// human-facing dump output.
package hexfmt

import (
	"fmt"
	"strings"
)

// Preview renders up to max bytes of b as "xx xx xx |ascii|", appending an
// ellipsis when b is longer.
func Preview(b []byte, max int) string {
	n := len(b)
	trunc := false
	if n > max {
		n = max
		trunc = true
	}
	var hex, ascii strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			hex.WriteByte(' ')
		}
		fmt.Fprintf(&hex, "%02x", b[i])
		if b[i] >= 0x20 && b[i] < 0x7f {
			ascii.WriteByte(b[i])
		} else {
			ascii.WriteByte('.')
		}
	}
	out := fmt.Sprintf("%s |%s|", hex.String(), ascii.String())
	if trunc {
		out += fmt.Sprintf(" ... (%d bytes)", len(b))
	}
	return out
}
