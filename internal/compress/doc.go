// Package compress implements the self-describing block format used by
// Cayley table snapshots.
//
// Block layout:
//
//	[UncompressedSize uint32][CompressedSize uint32][Data...]
//
// CompressedSize == 0 marks a block stored raw, either because compression
// was disabled or because it did not pay off.
package compress
