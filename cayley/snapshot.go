package cayley

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/cliffgo/internal/compress"
	"github.com/hupe1980/cliffgo/internal/hash"
	"github.com/hupe1980/cliffgo/internal/resource"
	"github.com/hupe1980/cliffgo/signature"
)

// Snapshot layout (little endian):
//
//	[0:4]   magic "CAYL"
//	[4:6]   version
//	[6]     compression
//	[7]     reserved
//	[8:11]  positive, negative, zero vector counts
//	[11]    reserved
//	[12:16] CRC32C of the block
//	[16:20] block length
//	[20:]   compressed block of one sign byte per entry, row-major
//
// Entry blades are not stored; they are always lhs ^ rhs.
const (
	snapshotMagic      = "CAYL"
	snapshotVersion    = 1
	snapshotHeaderSize = 20
)

// Sign bytes.
const (
	signZero     byte = 0
	signPositive byte = 1
	signNegative byte = 2
)

// Compression selects the snapshot block codec.
type Compression = compress.Type

const (
	CompressionNone = compress.None
	CompressionLZ4  = compress.LZ4
	CompressionZSTD = compress.ZSTD
)

// ParseCompression parses "none", "lz4" or "zstd".
func ParseCompression(s string) (Compression, error) { return compress.ParseType(s) }

type snapshotOptions struct {
	compression Compression
	trusted     bool
	rc          *resource.Controller
}

// SnapshotOption configures WriteSnapshot and ReadSnapshot.
type SnapshotOption func(*snapshotOptions)

// WithCompression sets the block codec used by WriteSnapshot.
func WithCompression(c Compression) SnapshotOption {
	return func(o *snapshotOptions) {
		o.compression = c
	}
}

// WithoutVerify skips recomputing the entries of a decoded snapshot. Only
// use it for snapshots from a trusted source: the checksum catches
// accidental corruption but not edited sign bytes.
func WithoutVerify() SnapshotOption {
	return func(o *snapshotOptions) {
		o.trusted = true
	}
}

// WithSnapshotIORate throttles snapshot IO to bytesPerSec.
func WithSnapshotIORate(bytesPerSec int64) SnapshotOption {
	return withController(resource.NewController(resource.Config{IOLimitBytesPerSec: bytesPerSec}))
}

func withController(rc *resource.Controller) SnapshotOption {
	return func(o *snapshotOptions) {
		o.rc = rc
	}
}

// WriteSnapshot encodes t to w.
func WriteSnapshot(ctx context.Context, w io.Writer, t *Table, opts ...SnapshotOption) error {
	o := snapshotOptions{compression: CompressionZSTD}
	for _, opt := range opts {
		opt(&o)
	}

	payload := make([]byte, len(t.entries))
	for i, e := range t.entries {
		payload[i] = encodeSign(e.Sign)
	}
	block, err := compress.Block(payload, o.compression)
	if err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}

	var hdr [snapshotHeaderSize]byte
	copy(hdr[0:4], snapshotMagic)
	binary.LittleEndian.PutUint16(hdr[4:], snapshotVersion)
	hdr[6] = byte(o.compression)
	hdr[8] = byte(t.sig.Positive)
	hdr[9] = byte(t.sig.Negative)
	hdr[10] = byte(t.sig.Zero)
	binary.LittleEndian.PutUint32(hdr[12:], hash.CRC32C(block))
	binary.LittleEndian.PutUint32(hdr[16:], uint32(len(block)))

	rw := resource.NewRateLimitedWriter(ctx, w, o.rc)
	if _, err := rw.Write(hdr[:]); err != nil {
		return fmt.Errorf("write snapshot header: %w", err)
	}
	if _, err := rw.Write(block); err != nil {
		return fmt.Errorf("write snapshot block: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a table written by WriteSnapshot and, unless
// WithoutVerify is given, checks every entry against its signature.
func ReadSnapshot(ctx context.Context, r io.Reader, opts ...SnapshotOption) (*Table, error) {
	o := snapshotOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	rr := resource.NewRateLimitedReader(ctx, r, o.rc)

	var hdr [snapshotHeaderSize]byte
	if _, err := io.ReadFull(rr, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrInvalidSnapshot, err)
	}
	if !bytes.Equal(hdr[0:4], []byte(snapshotMagic)) {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidSnapshot, hdr[0:4])
	}
	if v := binary.LittleEndian.Uint16(hdr[4:]); v != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, v)
	}
	codec := Compression(hdr[6])
	if codec > CompressionZSTD {
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidSnapshot, hdr[6])
	}

	sig, err := signature.New(int(hdr[8]), int(hdr[9]), int(hdr[10]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if err := CheckSize(sig); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	n := sig.BladeCount() * sig.BladeCount()
	length := binary.LittleEndian.Uint32(hdr[16:])
	if uint64(length) > uint64(compress.HeaderSize)+n {
		return nil, fmt.Errorf("%w: block length %d exceeds %d entries", ErrInvalidSnapshot, length, n)
	}
	block := make([]byte, length)
	if _, err := io.ReadFull(rr, block); err != nil {
		return nil, fmt.Errorf("%w: block: %w", ErrInvalidSnapshot, err)
	}
	if !hash.VerifyCRC32C(block, binary.LittleEndian.Uint32(hdr[12:])) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidSnapshot)
	}

	payload, err := compress.Unblock(block, codec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if uint64(len(payload)) != n {
		return nil, fmt.Errorf("%w: %d entries, want %d", ErrInvalidSnapshot, len(payload), n)
	}

	t, err := allocate(sig, o.rc)
	if err != nil {
		return nil, err
	}
	for i := range t.blades {
		row := payload[i*t.blades : (i+1)*t.blades]
		for j, b := range row {
			sign, ok := decodeSign(b)
			if !ok {
				t.Release()
				return nil, fmt.Errorf("%w: entry (%d,%d) has sign byte %d", ErrInvalidSnapshot, i, j, b)
			}
			t.entries[i*t.blades+uint64(j)] = Entry{Blade: i ^ uint64(j), Sign: sign}
		}
	}

	if !o.trusted {
		if err := t.Verify(); err != nil {
			t.Release()
			return nil, err
		}
	}
	t.finish()
	return t, nil
}

func encodeSign(s int8) byte {
	switch s {
	case 1:
		return signPositive
	case -1:
		return signNegative
	default:
		return signZero
	}
}

func decodeSign(b byte) (int8, bool) {
	switch b {
	case signZero:
		return 0, true
	case signPositive:
		return 1, true
	case signNegative:
		return -1, true
	default:
		return 0, false
	}
}
