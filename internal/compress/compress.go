package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type identifies a block compression algorithm.
type Type uint8

const (
	// None stores blocks raw.
	None Type = 0
	// LZ4 favours speed.
	LZ4 Type = 1
	// ZSTD favours ratio.
	ZSTD Type = 2
)

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compress.Type(%d)", uint8(t))
	}
}

// ParseType parses the names produced by Type.String.
func ParseType(s string) (Type, error) {
	switch s {
	case "", "none":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return ZSTD, nil
	default:
		return None, fmt.Errorf("unknown compression %q", s)
	}
}

// HeaderSize is the size of the block header in bytes.
const HeaderSize = 8

var (
	// ErrCorrupt is returned for blocks that cannot be decoded.
	ErrCorrupt = errors.New("corrupt block")
	// ErrTooLarge is returned for inputs whose size does not fit the header.
	ErrTooLarge = errors.New("block too large")
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil)
}

// Block compresses data and prepends the block header. Blocks that do not
// shrink below 90% of their input are stored raw.
func Block(data []byte, t Type) ([]byte, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	var (
		compressed []byte
		err        error
	)
	switch {
	case t > ZSTD:
		return nil, fmt.Errorf("unsupported compression %s", t)
	case len(data) == 0 || t == None:
	case t == LZ4:
		compressed, err = blockLZ4(data)
	case t == ZSTD:
		compressed, err = blockZSTD(data)
	}
	if err != nil {
		return nil, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		out := make([]byte, HeaderSize+len(data))
		binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(out[4:], 0)
		copy(out[HeaderSize:], data)
		return out, nil
	}

	out := make([]byte, HeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(compressed)))
	copy(out[HeaderSize:], compressed)
	return out, nil
}

func blockLZ4(data []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, dst, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return dst[:n], nil
}

func blockZSTD(data []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer zstdEncoderPool.Put(enc)
	return enc.EncodeAll(data, nil), nil
}

// Unblock decodes a block produced by Block with the same Type.
func Unblock(data []byte, t Type) ([]byte, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is smaller than the header", ErrCorrupt, len(data))
	}
	size := binary.LittleEndian.Uint32(data[0:])
	csize := binary.LittleEndian.Uint32(data[4:])
	body := data[HeaderSize:]

	if csize == 0 {
		if uint64(len(body)) < uint64(size) {
			return nil, fmt.Errorf("%w: raw block truncated", ErrCorrupt)
		}
		return body[:size], nil
	}
	if uint64(len(body)) < uint64(csize) {
		return nil, fmt.Errorf("%w: compressed block truncated", ErrCorrupt)
	}
	body = body[:csize]
	out := make([]byte, size)

	switch t {
	case LZ4:
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if uint32(n) != size {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return out, nil
	case ZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoderPool.Put(dec)

		decoded, err := dec.DecodeAll(body, out[:0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if uint32(len(decoded)) != size {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("%w: compressed block with compression %s", ErrCorrupt, t)
	}
}
