package bytewire

// Segment is a window over a caller-owned byte buffer: the bytes
// Buf[Off : Off+Len]. It never copies or grows the underlying storage, and
// codec operations never touch bytes outside the window. Reads and writes
// return a new Segment advanced past the bytes they consumed, so a Segment
// value behaves like a position that is threaded through a sequence of calls.
type Segment struct {
	Buf []byte
	Off int
	Len int
}

// NewSegment returns a Segment spanning all of buf.
func NewSegment(buf []byte) Segment {
	return Segment{Buf: buf, Len: len(buf)}
}

// Bytes returns the window's contents. The slice aliases the underlying
// buffer.
func (s Segment) Bytes() []byte {
	return s.Buf[s.Off : s.Off+s.Len]
}

// Remaining reports how many bytes are left in the window.
func (s Segment) Remaining() int {
	return s.Len
}

// advance moves the window start past n consumed bytes.
func (s Segment) advance(n int) Segment {
	return Segment{Buf: s.Buf, Off: s.Off + n, Len: s.Len - n}
}

// Slice returns a sub-window of the next n bytes. The result aliases the
// same storage; the receiver is unchanged.
func (s Segment) Slice(n int) Segment {
	return Segment{Buf: s.Buf, Off: s.Off, Len: n}
}
