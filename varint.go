package bytewire

// Zig-zag varints: the value is mapped through (v << 1) XOR (v >> 31) so that
// small magnitudes of either sign encode short, then emitted 7 bits at a time
// least-significant group first, high bit set on every byte but the last.

// SizeOfVarint32 returns the exact number of bytes WriteVarint32 emits for v.
func SizeOfVarint32(v int32) int {
	zz := uint32(v<<1) ^ uint32(v>>31)
	n := 1
	for zz >= 0x80 {
		zz >>= 7
		n++
	}
	return n
}

// WriteVarint32 writes v zig-zag varint encoded.
func WriteVarint32(s Segment, v int32) Segment {
	zz := uint32(v<<1) ^ uint32(v>>31)
	for zz >= 0x80 {
		s.Buf[s.Off] = byte(zz) | 0x80
		s = s.advance(1)
		zz >>= 7
	}
	s.Buf[s.Off] = byte(zz)
	return s.advance(1)
}

// ReadVarint32 reads a zig-zag varint. It fails with ErrMalformedVarint when
// the continuation chain runs past 28 bits of shift, which is the longest a
// well-formed 32-bit value can need.
func ReadVarint32(s Segment) (int32, Segment, error) {
	var zz uint32
	for shift := uint(0); ; shift += 7 {
		if shift > 28 {
			return 0, s, ErrMalformedVarint
		}
		b := s.Buf[s.Off]
		s = s.advance(1)
		zz |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
	}
	return int32(zz>>1) ^ -int32(zz&1), s, nil
}

// SizeOfVarint64 returns the exact number of bytes WriteVarint64 emits for v.
func SizeOfVarint64(v int64) int {
	zz := uint64(v<<1) ^ uint64(v>>63)
	n := 1
	for zz >= 0x80 {
		zz >>= 7
		n++
	}
	return n
}

// WriteVarint64 writes v zig-zag varint encoded at 64-bit width.
func WriteVarint64(s Segment, v int64) Segment {
	zz := uint64(v<<1) ^ uint64(v>>63)
	for zz >= 0x80 {
		s.Buf[s.Off] = byte(zz) | 0x80
		s = s.advance(1)
		zz >>= 7
	}
	s.Buf[s.Off] = byte(zz)
	return s.advance(1)
}

// ReadVarint64 is ReadVarint32 at 64-bit width; the shift limit is 63.
func ReadVarint64(s Segment) (int64, Segment, error) {
	var zz uint64
	for shift := uint(0); ; shift += 7 {
		if shift > 63 {
			return 0, s, ErrMalformedVarint
		}
		b := s.Buf[s.Off]
		s = s.advance(1)
		zz |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
	}
	return int64(zz>>1) ^ -int64(zz&1), s, nil
}
