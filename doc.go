// Package bytewire implements the binary wire format used by the protocol
// client: big-endian fixed-width integers, zig-zag varints, and
// length-prefixed strings, byte sequences and arrays with a -1 null sentinel.
//
// The package has two layers. The primitive functions operate on a Segment
// (a borrowed window over a caller-owned buffer) and return an advanced
// Segment, so composite encodings thread the view from one call to the next.
// The Cursor wraps one Segment and tracks the offset internally, which is
// what message-level encode/decode code normally wants.
//
// The codec trusts the caller to have sized the buffer: apart from malformed
// varints, which return ErrMalformedVarint, there is no bounds validation and
// an undersized buffer panics. Neither Segment nor Cursor is safe for
// concurrent use.
package bytewire
