// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

// LZXD format constants: window bounds, chunking, block types, tree geometry
// and the fixed position-slot tables.

// Window size exponents. The history window holds 1<<W bytes.
const (
	// MinWindowSize is the smallest valid window exponent (32 KiB window).
	MinWindowSize = 15
	// MaxWindowSize is the largest valid window exponent (2 MiB window).
	MaxWindowSize = 21
	// DefaultWindowSize is the window exponent used when options leave it zero (64 KiB window).
	DefaultWindowSize = 16
)

// Chunk framing.
const (
	// DefaultChunkSize is the standard LZXD chunk size in uncompressed bytes.
	DefaultChunkSize = 0x8000
	// MaxChunkSize bounds the uncompressed size of a single chunk. The stream
	// helpers frame each compressed chunk with a 16-bit length prefix, which
	// this bound keeps representable.
	MaxChunkSize = 0x8000
)

// Block types (3-bit field at the start of every block).
const (
	blockVerbatim     = 1
	blockAligned      = 2
	blockUncompressed = 3
)

// Tree geometry.
const (
	numChars            = 256 // literal symbols in the main tree
	numPrimaryLengths   = 7   // match lengths encoded directly in the main symbol
	numSecondaryLengths = 249 // symbols in the length tree
	numPretreeElements  = 20  // symbols in the pretree
	numAlignedElements  = 8   // symbols in the aligned offset tree
	pretreePathBits     = 4   // bits per pretree path length
	alignedPathBits     = 3   // bits per aligned tree path length
	maxCodeLength       = 16  // longest permitted Huffman code
	minMatchLength      = 2
)

// E8 call translation bounds.
const (
	// maxE8Offset is the output offset past which E8 translation is disabled.
	maxE8Offset = 0x3fffffff
	// maxE8Boundary bounds the configurable translation boundary so the
	// signed 32-bit displacement arithmetic cannot overflow.
	maxE8Boundary = 1 << 30
	// e8TailGuard: the last bytes of a chunk are never translated, since a
	// displacement there could not be read in full.
	e8TailGuard = 10
)

// positionSlotCounts maps window exponent (index W-MinWindowSize) to the
// number of position slots in the main tree. Fixed by the LZXD format; the
// values must be looked up, not derived.
var positionSlotCounts = [MaxWindowSize - MinWindowSize + 1]int{
	30, 32, 34, 36, 38, 42, 50,
}

// footerBits holds the number of extra offset bits read for each position
// slot. Slots 36 and above all use 17 bits.
var footerBits = [51]byte{
	0, 0, 0, 0, 1, 1, 2, 2,
	3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10,
	11, 11, 12, 12, 13, 13, 14, 14,
	15, 15, 16, 16, 17, 17, 17, 17,
	17, 17, 17, 17, 17, 17, 17, 17,
	17, 17, 17,
}

// basePosition holds the formatted-offset base for each position slot:
// the running sum of 1<<footerBits over the preceding slots.
var basePosition = [51]uint32{
	0, 1, 2, 3, 4, 6, 8, 12,
	16, 24, 32, 48, 64, 96, 128, 192,
	256, 384, 512, 768, 1024, 1536, 2048, 3072,
	4096, 6144, 8192, 12288, 16384, 24576, 32768, 49152,
	65536, 98304, 131072, 196608, 262144, 393216, 524288, 655360,
	786432, 917504, 1048576, 1179648, 1310720, 1441792, 1572864, 1703936,
	1835008, 1966080, 2097152,
}

// mainTreeSize returns the number of symbols in the main tree for the given
// window exponent: 256 literals plus 8 length headers per position slot.
func mainTreeSize(windowSize uint8) int {
	return numChars + 8*positionSlotCounts[windowSize-MinWindowSize]
}

// validWindowSize reports whether w is a legal window exponent.
func validWindowSize(w uint8) bool {
	return w >= MinWindowSize && w <= MaxWindowSize
}
