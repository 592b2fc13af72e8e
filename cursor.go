package bytewire

// Cursor wraps one Segment and advances an internal offset on every read or
// write, so multi-field encode/decode code does not have to thread Segment
// values by hand. Peek methods never move the offset. A Cursor is owned by a
// single flow of control; it has no internal synchronization.
type Cursor struct {
	seg      Segment
	consumed int
}

// NewCursor returns a cursor positioned at the start of seg.
func NewCursor(seg Segment) *Cursor {
	return &Cursor{seg: seg}
}

// Offset reports how many bytes this cursor has consumed or produced since
// construction.
func (c *Cursor) Offset() int {
	return c.consumed
}

// Remaining reports how many bytes are left in the cursor's window.
func (c *Cursor) Remaining() int {
	return c.seg.Len
}

// Segment returns the cursor's current window, from the current position to
// the end.
func (c *Cursor) Segment() Segment {
	return c.seg
}

func (c *Cursor) set(s Segment) {
	c.consumed += c.seg.Len - s.Len
	c.seg = s
}

// Skip advances the cursor past n bytes without decoding them. It is how a
// parent cursor catches up after handing a Limit child to nested decode code.
func (c *Cursor) Skip(n int) {
	c.set(c.seg.advance(n))
}

// Limit returns a new independent cursor over the next n bytes of this
// cursor's window. The parent does NOT advance: once done with the child, the
// caller must Skip(n) the parent itself. The child cannot read past its n
// bytes, which bounds the decode of a nested structure of known length.
func (c *Cursor) Limit(n int) *Cursor {
	return &Cursor{seg: c.seg.Slice(n)}
}

// PeekByteAt returns the byte fwd positions ahead of the current offset
// without advancing, or def when that position is out of bounds. It exists to
// probe for optional trailing data without risking a fault.
func (c *Cursor) PeekByteAt(fwd int, def byte) byte {
	if fwd < 0 || fwd >= c.seg.Len {
		return def
	}
	return c.seg.Buf[c.seg.Off+fwd]
}

func (c *Cursor) WriteBool(v bool) { c.set(WriteBool(c.seg, v)) }

func (c *Cursor) ReadBool() bool {
	v, s := ReadBool(c.seg)
	c.set(s)
	return v
}

func (c *Cursor) PeekBool() bool { return PeekBool(c.seg) }

func (c *Cursor) WriteInt8(v int8) { c.set(WriteInt8(c.seg, v)) }

func (c *Cursor) ReadInt8() int8 {
	v, s := ReadInt8(c.seg)
	c.set(s)
	return v
}

func (c *Cursor) PeekInt8() int8 { return PeekInt8(c.seg) }

func (c *Cursor) WriteInt16(v int16) { c.set(WriteInt16(c.seg, v)) }

func (c *Cursor) ReadInt16() int16 {
	v, s := ReadInt16(c.seg)
	c.set(s)
	return v
}

func (c *Cursor) PeekInt16() int16 { return PeekInt16(c.seg) }

func (c *Cursor) WriteInt32(v int32) { c.set(WriteInt32(c.seg, v)) }

func (c *Cursor) ReadInt32() int32 {
	v, s := ReadInt32(c.seg)
	c.set(s)
	return v
}

func (c *Cursor) PeekInt32() int32 { return PeekInt32(c.seg) }

func (c *Cursor) WriteInt64(v int64) { c.set(WriteInt64(c.seg, v)) }

func (c *Cursor) ReadInt64() int64 {
	v, s := ReadInt64(c.seg)
	c.set(s)
	return v
}

func (c *Cursor) PeekInt64() int64 { return PeekInt64(c.seg) }

func (c *Cursor) WriteVarint32(v int32) { c.set(WriteVarint32(c.seg, v)) }

func (c *Cursor) ReadVarint32() (int32, error) {
	v, s, err := ReadVarint32(c.seg)
	if err != nil {
		return 0, err
	}
	c.set(s)
	return v, nil
}

func (c *Cursor) WriteVarint64(v int64) { c.set(WriteVarint64(c.seg, v)) }

func (c *Cursor) ReadVarint64() (int64, error) {
	v, s, err := ReadVarint64(c.seg)
	if err != nil {
		return 0, err
	}
	c.set(s)
	return v, nil
}

func (c *Cursor) WriteRaw(b []byte) { c.set(WriteRaw(c.seg, b)) }

func (c *Cursor) ReadRaw(n int) []byte {
	b, s := ReadRaw(c.seg, n)
	c.set(s)
	return b
}

func (c *Cursor) WriteBytes(b []byte) { c.set(WriteBytes(c.seg, b)) }

func (c *Cursor) ReadBytes() []byte {
	b, s := ReadBytes(c.seg)
	c.set(s)
	return b
}

func (c *Cursor) WriteVarintBytes(b []byte) { c.set(WriteVarintBytes(c.seg, b)) }

func (c *Cursor) ReadVarintBytes() ([]byte, error) {
	b, s, err := ReadVarintBytes(c.seg)
	if err != nil {
		return nil, err
	}
	c.set(s)
	return b, nil
}

func (c *Cursor) WriteString(v string) { c.set(WriteString(c.seg, v)) }

func (c *Cursor) ReadString() string {
	v, s := ReadString(c.seg)
	c.set(s)
	return v
}

func (c *Cursor) WriteNullableString(v *string) { c.set(WriteNullableString(c.seg, v)) }

func (c *Cursor) ReadNullableString() *string {
	v, s := ReadNullableString(c.seg)
	c.set(s)
	return v
}

// ReadN reads exactly n elements with fn, which advances c by one element per
// call. A non-positive n, including the -1 null sentinel read from a count
// prefix, yields an empty slice; absent vs empty is the caller's distinction
// to make.
func ReadN[T any](c *Cursor, n int, fn func(*Cursor) (T, error)) ([]T, error) {
	if n <= 0 {
		return []T{}, nil
	}
	items := make([]T, 0, n)
	for i := 0; i < n; i++ {
		it, err := fn(c)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// ReadBounded decodes elements with fn until total bytes have been consumed
// or the cursor's window is exhausted, whichever comes first. fn may decline
// to produce a value (ok=false) after consuming an element's bytes, which is
// how callers skip entries they do not understand; only produced elements are
// returned, in encounter order. Unknown trailing content inside a known total
// length is therefore skipped rather than fatal.
func ReadBounded[T any](c *Cursor, total int, fn func(*Cursor) (T, bool, error)) ([]T, error) {
	var items []T
	start := c.Offset()
	for c.Offset()-start < total && c.Remaining() > 0 {
		it, ok, err := fn(c)
		if err != nil {
			return nil, err
		}
		if ok {
			items = append(items, it)
		}
	}
	return items, nil
}
