package bytewire

import "errors"

// ErrMalformedVarint is returned when a varint's continuation chain runs past
// the bit-width limit (28 bits of shift for varint32, 63 for varint64). It is
// the only input validation the codec performs; everything else is the
// caller's framing responsibility.
var ErrMalformedVarint = errors.New("bytewire: malformed varint")
