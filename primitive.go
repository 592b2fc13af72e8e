package bytewire

import "encoding/binary"

// On-wire widths of the fixed-size types.
const (
	BoolSize  = 1
	Int8Size  = 1
	Int16Size = 2
	Int32Size = 4
	Int64Size = 8
)

// WriteFunc writes one value at the start of the segment and returns the
// segment advanced past the written bytes.
type WriteFunc func(Segment) Segment

// WriteAll applies each writer in order, threading the advanced segment from
// one into the next, and returns the final position. Call sites composing
// multi-field records use this instead of repeating the offset bookkeeping.
func WriteAll(s Segment, writers ...WriteFunc) Segment {
	for _, w := range writers {
		s = w(s)
	}
	return s
}

// WriteBool writes v as a single 0 or 1 byte.
func WriteBool(s Segment, v bool) Segment {
	b := byte(0)
	if v {
		b = 1
	}
	s.Buf[s.Off] = b
	return s.advance(BoolSize)
}

// ReadBool reads a single byte as a bool; any non-zero byte is true.
func ReadBool(s Segment) (bool, Segment) {
	return s.Buf[s.Off] != 0, s.advance(BoolSize)
}

// PeekBool reads a bool without consuming it.
func PeekBool(s Segment) bool {
	return s.Buf[s.Off] != 0
}

func WriteInt8(s Segment, v int8) Segment {
	s.Buf[s.Off] = byte(v)
	return s.advance(Int8Size)
}

func ReadInt8(s Segment) (int8, Segment) {
	return int8(s.Buf[s.Off]), s.advance(Int8Size)
}

func PeekInt8(s Segment) int8 {
	return int8(s.Buf[s.Off])
}

func WriteInt16(s Segment, v int16) Segment {
	binary.BigEndian.PutUint16(s.Buf[s.Off:], uint16(v))
	return s.advance(Int16Size)
}

func ReadInt16(s Segment) (int16, Segment) {
	return int16(binary.BigEndian.Uint16(s.Buf[s.Off:])), s.advance(Int16Size)
}

func PeekInt16(s Segment) int16 {
	return int16(binary.BigEndian.Uint16(s.Buf[s.Off:]))
}

func WriteInt32(s Segment, v int32) Segment {
	binary.BigEndian.PutUint32(s.Buf[s.Off:], uint32(v))
	return s.advance(Int32Size)
}

func ReadInt32(s Segment) (int32, Segment) {
	return int32(binary.BigEndian.Uint32(s.Buf[s.Off:])), s.advance(Int32Size)
}

func PeekInt32(s Segment) int32 {
	return int32(binary.BigEndian.Uint32(s.Buf[s.Off:]))
}

func WriteInt64(s Segment, v int64) Segment {
	binary.BigEndian.PutUint64(s.Buf[s.Off:], uint64(v))
	return s.advance(Int64Size)
}

func ReadInt64(s Segment) (int64, Segment) {
	return int64(binary.BigEndian.Uint64(s.Buf[s.Off:])), s.advance(Int64Size)
}

func PeekInt64(s Segment) int64 {
	return int64(binary.BigEndian.Uint64(s.Buf[s.Off:]))
}

// WriteRaw copies b verbatim into the segment.
func WriteRaw(s Segment, b []byte) Segment {
	copy(s.Buf[s.Off:], b)
	return s.advance(len(b))
}

// ReadRaw reads the next n bytes. The returned slice aliases the underlying
// buffer.
func ReadRaw(s Segment, n int) ([]byte, Segment) {
	return s.Buf[s.Off : s.Off+n], s.advance(n)
}
