package bytewire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorOffsetDiscipline(t *testing.T) {
	buf := make([]byte, 64)
	w := NewCursor(NewSegment(buf))
	w.WriteInt8(1)
	assert.Equal(t, 1, w.Offset())
	w.WriteInt16(2)
	assert.Equal(t, 3, w.Offset())
	w.WriteInt32(3)
	assert.Equal(t, 7, w.Offset())
	w.WriteInt64(4)
	assert.Equal(t, 15, w.Offset())
	w.WriteVarint32(-300)
	assert.Equal(t, 15+SizeOfVarint32(-300), w.Offset())

	r := NewCursor(NewSegment(buf))
	assert.Equal(t, int8(1), r.PeekInt8())
	assert.Equal(t, 0, r.Offset()) // peek never advances
	assert.Equal(t, int8(1), r.ReadInt8())
	assert.Equal(t, int16(2), r.ReadInt16())
	assert.Equal(t, int32(3), r.ReadInt32())
	assert.Equal(t, int64(4), r.ReadInt64())
	v, err := r.ReadVarint32()
	require.NoError(t, err)
	assert.Equal(t, int32(-300), v)
	assert.Equal(t, w.Offset(), r.Offset())
}

func TestCursorStringAndBytes(t *testing.T) {
	buf := make([]byte, 64)
	w := NewCursor(NewSegment(buf))
	w.WriteString("topic-a")
	w.WriteBytes([]byte{9, 8, 7})
	w.WriteNullableString(nil)

	r := NewCursor(NewSegment(buf))
	assert.Equal(t, "topic-a", r.ReadString())
	assert.Equal(t, []byte{9, 8, 7}, r.ReadBytes())
	assert.Nil(t, r.ReadNullableString())
	assert.Equal(t, w.Offset(), r.Offset())
}

func TestLimitDoesNotAdvanceParent(t *testing.T) {
	buf := make([]byte, 32)
	w := NewCursor(NewSegment(buf))
	w.WriteInt32(11)
	w.WriteInt32(22)
	w.WriteInt32(33)

	parent := NewCursor(NewSegment(buf))
	child := parent.Limit(8)
	assert.Equal(t, int32(11), child.ReadInt32())
	assert.Equal(t, int32(22), child.ReadInt32())
	assert.Equal(t, 0, child.Remaining()) // child cannot see the third value
	assert.Equal(t, 0, parent.Offset())   // parent untouched

	parent.Skip(8)
	assert.Equal(t, int32(33), parent.ReadInt32())
}

func TestPeekByteAt(t *testing.T) {
	buf := []byte{0xaa, 0xbb, 0xcc}
	c := NewCursor(NewSegment(buf))
	c.Skip(1)
	assert.Equal(t, byte(0xbb), c.PeekByteAt(0, 0x00))
	assert.Equal(t, byte(0xcc), c.PeekByteAt(1, 0x00))
	assert.Equal(t, byte(0x5f), c.PeekByteAt(2, 0x5f)) // out of bounds: default
	assert.Equal(t, byte(0x5f), c.PeekByteAt(-1, 0x5f))
	assert.Equal(t, 1, c.Offset())
}

func TestReadNByElementCount(t *testing.T) {
	in := []int32{5, 10, 15}
	buf := make([]byte, SizeOfArray(in, func(int32) int { return Int32Size }))
	WriteArray(NewSegment(buf), in, WriteInt32)

	c := NewCursor(NewSegment(buf))
	n := int(c.ReadInt32())
	got, err := ReadN(c, n, func(c *Cursor) (int32, error) { return c.ReadInt32(), nil })
	require.NoError(t, err)
	assert.Equal(t, in, got)
	assert.Equal(t, len(buf), c.Offset())
}

func TestReadNNegativeCountYieldsEmpty(t *testing.T) {
	c := NewCursor(NewSegment(nil))
	got, err := ReadN(c, -1, func(c *Cursor) (int32, error) { return c.ReadInt32(), nil })
	require.NoError(t, err)
	assert.Len(t, got, 0)
	assert.Equal(t, 0, c.Offset())
}

func TestReadBoundedSkipsDeclinedElements(t *testing.T) {
	// entries are (tag int8, value int32); tag 0 entries are "unknown"
	type entry struct {
		tag int8
		val int32
	}
	in := []entry{{1, 100}, {0, -5}, {2, 200}, {0, -6}, {3, 300}}
	buf := make([]byte, len(in)*(Int8Size+Int32Size))
	w := NewCursor(NewSegment(buf))
	for _, e := range in {
		w.WriteInt8(e.tag)
		w.WriteInt32(e.val)
	}

	c := NewCursor(NewSegment(buf))
	got, err := ReadBounded(c, len(buf), func(c *Cursor) (int32, bool, error) {
		tag := c.ReadInt8()
		val := c.ReadInt32()
		return val, tag != 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int32{100, 200, 300}, got)
	assert.Equal(t, len(buf), c.Offset())
}

func TestReadBoundedStopsAtBudget(t *testing.T) {
	buf := make([]byte, 20)
	w := NewCursor(NewSegment(buf))
	for i := int32(0); i < 5; i++ {
		w.WriteInt32(i)
	}

	c := NewCursor(NewSegment(buf))
	got, err := ReadBounded(c, 12, func(c *Cursor) (int32, bool, error) {
		return c.ReadInt32(), true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2}, got)
	assert.Equal(t, 12, c.Offset())
}

func TestReadBoundedOverrunsByAtMostOneElement(t *testing.T) {
	buf := make([]byte, 20)
	w := NewCursor(NewSegment(buf))
	for i := int32(0); i < 5; i++ {
		w.WriteInt32(i)
	}

	c := NewCursor(NewSegment(buf))
	// budget lands mid-element: the element straddling it is still decoded
	got, err := ReadBounded(c, 10, func(c *Cursor) (int32, bool, error) {
		return c.ReadInt32(), true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2}, got)
	assert.LessOrEqual(t, c.Offset()-10, Int32Size)
}

func TestReadBoundedStopsAtExhaustion(t *testing.T) {
	buf := make([]byte, 8)
	w := NewCursor(NewSegment(buf))
	w.WriteInt32(1)
	w.WriteInt32(2)

	c := NewCursor(NewSegment(buf))
	// budget larger than the window: exhaustion wins
	got, err := ReadBounded(c, 1000, func(c *Cursor) (int32, bool, error) {
		return c.ReadInt32(), true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, got)
}

func TestCursorMalformedVarintSurfaces(t *testing.T) {
	bad := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80}
	c := NewCursor(NewSegment(bad))
	_, err := c.ReadVarint32()
	require.ErrorIs(t, err, ErrMalformedVarint)
}
