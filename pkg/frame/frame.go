// Package frame implements the message envelope carried between peers: a
// magic-tagged, CRC-trailed frame whose payload may be zstd compressed. It is
// the first consumer of the bytewire cursor and exists both as the transport
// framing and as a reference for encoding composite structures with it.
package frame

import (
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/bytewire"
)

// Magic tags every frame so a desynchronized stream is caught before the CRC.
const Magic int16 = 0x5B77

// Frame types.
const (
	TypeData      int8 = 1
	TypeError     int8 = 2
	TypeHandshake int8 = 3
)

// Codec identifies the payload compression.
type Codec int8

const (
	CodecNone Codec = 0
	CodecZstd Codec = 1
)

var (
	ErrTruncated    = errors.New("frame: truncated")
	ErrBadMagic     = errors.New("frame: bad magic")
	ErrChecksum     = errors.New("frame: checksum mismatch")
	ErrUnknownCodec = errors.New("frame: unknown codec")
)

// Frame is one decoded envelope. Payload holds the uncompressed bytes.
type Frame struct {
	Type    int8
	Codec   Codec
	Payload []byte
}

// headerSize covers magic, type, codec and the payload length prefix.
const headerSize = bytewire.Int16Size + 2*bytewire.Int8Size + bytewire.Int32Size

// Encode serializes f, compressing the payload per f.Codec. The CRC32 (IEEE)
// trailer covers every preceding byte including the magic.
func Encode(f Frame) ([]byte, error) {
	payload, err := compress(f.Codec, f.Payload)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, headerSize+len(payload)+bytewire.Int32Size)
	c := bytewire.NewCursor(bytewire.NewSegment(buf))
	c.WriteInt16(Magic)
	c.WriteInt8(f.Type)
	c.WriteInt8(int8(f.Codec))
	c.WriteBytes(payload)
	crc := crc32.ChecksumIEEE(buf[:c.Offset()])
	c.WriteInt32(int32(crc))
	return buf, nil
}

// Decode parses one frame from buf, verifying magic and CRC and decompressing
// the payload. buf must contain exactly one frame.
func Decode(buf []byte) (Frame, error) {
	if len(buf) < headerSize+bytewire.Int32Size {
		return Frame{}, ErrTruncated
	}
	c := bytewire.NewCursor(bytewire.NewSegment(buf))
	if c.ReadInt16() != Magic {
		return Frame{}, ErrBadMagic
	}
	f := Frame{Type: c.ReadInt8(), Codec: Codec(c.ReadInt8())}

	n := int(c.ReadInt32())
	var payload []byte
	if n >= 0 {
		if c.Remaining() < n+bytewire.Int32Size {
			return Frame{}, ErrTruncated
		}
		// bound the payload read so a corrupt body cannot run into the CRC
		body := c.Limit(n)
		payload = body.ReadRaw(n)
		c.Skip(n)
	}

	sum := crc32.ChecksumIEEE(buf[:c.Offset()])
	if int32(sum) != c.ReadInt32() {
		return Frame{}, ErrChecksum
	}

	out, err := decompress(f.Codec, payload)
	if err != nil {
		return Frame{}, err
	}
	f.Payload = out
	return f, nil
}

func compress(codec Codec, raw []byte) ([]byte, error) {
	switch codec {
	case CodecNone:
		return raw, nil
	case CodecZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(raw, nil), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCodec, codec)
	}
}

func decompress(codec Codec, raw []byte) ([]byte, error) {
	switch codec {
	case CodecNone:
		return raw, nil
	case CodecZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(raw, nil)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCodec, codec)
	}
}
