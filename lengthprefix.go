package bytewire

// Length-prefixed values. A length of -1 is the null sentinel: it means the
// value is absent, no payload bytes follow, and it is distinct from a present
// zero-length value. Nil slices and nil string pointers map to null; empty
// ones map to a zero length.

// SizeOfBytes returns the on-wire size of b: the 4-byte prefix plus payload.
func SizeOfBytes(b []byte) int {
	return Int32Size + len(b)
}

// WriteBytes writes an int32 length prefix followed by the raw bytes.
// A nil slice writes the -1 sentinel and nothing else.
func WriteBytes(s Segment, b []byte) Segment {
	if b == nil {
		return WriteInt32(s, -1)
	}
	s = WriteInt32(s, int32(len(b)))
	return WriteRaw(s, b)
}

// ReadBytes reads an int32-prefixed byte sequence. The -1 sentinel decodes to
// nil; a zero length decodes to an empty non-nil slice. The returned slice
// aliases the underlying buffer.
func ReadBytes(s Segment) ([]byte, Segment) {
	n, s := ReadInt32(s)
	if n < 0 {
		return nil, s
	}
	return ReadRaw(s, int(n))
}

// SizeOfVarintBytes returns the on-wire size of b under the varint-length
// encoding.
func SizeOfVarintBytes(b []byte) int {
	if b == nil {
		return SizeOfVarint32(-1)
	}
	return SizeOfVarint32(int32(len(b))) + len(b)
}

// WriteVarintBytes is WriteBytes with a zig-zag varint length prefix instead
// of the fixed int32.
func WriteVarintBytes(s Segment, b []byte) Segment {
	if b == nil {
		return WriteVarint32(s, -1)
	}
	s = WriteVarint32(s, int32(len(b)))
	return WriteRaw(s, b)
}

// ReadVarintBytes reads a varint-length-prefixed byte sequence.
func ReadVarintBytes(s Segment) ([]byte, Segment, error) {
	n, s, err := ReadVarint32(s)
	if err != nil {
		return nil, s, err
	}
	if n < 0 {
		return nil, s, nil
	}
	b, s := ReadRaw(s, int(n))
	return b, s, nil
}

// SizeOfString returns the on-wire size of v: the 2-byte prefix plus the
// encoded bytes. The prefix counts bytes, not characters; multi-byte UTF-8
// content is longer on the wire than its rune count.
func SizeOfString(v string) int {
	return Int16Size + len(v)
}

// SizeOfNullableString is SizeOfString treating a nil pointer as the 2-byte
// null sentinel.
func SizeOfNullableString(v *string) int {
	if v == nil {
		return Int16Size
	}
	return SizeOfString(*v)
}

// WriteString writes an int16 byte-count prefix followed by the UTF-8 bytes
// of v. Strings longer than 32767 bytes do not fit this encoding; the length
// is truncated to int16 like every other fixed-width write.
func WriteString(s Segment, v string) Segment {
	s = WriteInt16(s, int16(len(v)))
	return WriteRaw(s, []byte(v))
}

// WriteNullableString writes v, or the -1 sentinel when v is nil.
func WriteNullableString(s Segment, v *string) Segment {
	if v == nil {
		return WriteInt16(s, -1)
	}
	return WriteString(s, *v)
}

// ReadString reads an int16-prefixed string. The null sentinel decodes to the
// empty string; use ReadNullableString when the distinction matters.
func ReadString(s Segment) (string, Segment) {
	n, s := ReadInt16(s)
	if n < 0 {
		return "", s
	}
	b, s := ReadRaw(s, int(n))
	return string(b), s
}

// ReadNullableString reads an int16-prefixed string, keeping null distinct
// from empty.
func ReadNullableString(s Segment) (*string, Segment) {
	n, s := ReadInt16(s)
	if n < 0 {
		return nil, s
	}
	b, s := ReadRaw(s, int(n))
	v := string(b)
	return &v, s
}

// SizeOfArray returns the on-wire size of items: the 4-byte count prefix plus
// each element's size.
func SizeOfArray[T any](items []T, size func(T) int) int {
	n := Int32Size
	for _, it := range items {
		n += size(it)
	}
	return n
}

// WriteArray writes an int32 element-count prefix and then each element with
// w, threading the segment left to right. A nil slice writes the -1 sentinel.
func WriteArray[T any](s Segment, items []T, w func(Segment, T) Segment) Segment {
	if items == nil {
		return WriteInt32(s, -1)
	}
	s = WriteInt32(s, int32(len(items)))
	for _, it := range items {
		s = w(s, it)
	}
	return s
}

// ReadArray reads an int32 count prefix and then that many elements with r.
// The -1 sentinel decodes to nil.
func ReadArray[T any](s Segment, r func(Segment) (T, Segment)) ([]T, Segment) {
	n, s := ReadInt32(s)
	if n < 0 {
		return nil, s
	}
	items := make([]T, 0, n)
	for i := int32(0); i < n; i++ {
		var it T
		it, s = r(s)
		items = append(items, it)
	}
	return items, s
}
