// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

// bitWriter is the exact mirror of bitReader: bits accumulate MSB-first and
// are flushed as 16-bit little-endian units.
type bitWriter struct {
	out   []byte
	buf   uint32
	nbits uint
}

// writeBits appends the low n bits of v (n <= 16), MSB-first.
func (bw *bitWriter) writeBits(n uint, v uint32) {
	if n == 0 {
		return
	}

	bw.buf |= (v & (1<<n - 1)) << (32 - n - bw.nbits)
	bw.nbits += n

	for bw.nbits >= 16 {
		unit := uint16(bw.buf >> 16)
		bw.out = append(bw.out, byte(unit), byte(unit>>8))
		bw.buf <<= 16
		bw.nbits -= 16
	}
}

// alignTo16 pads the current 16-bit unit with zero bits.
func (bw *bitWriter) alignTo16() {
	if bw.nbits != 0 {
		bw.writeBits(16-bw.nbits, 0)
	}
}

// writeAlignedU16 emits one raw 16-bit unit. The writer must be aligned.
func (bw *bitWriter) writeAlignedU16(v uint16) {
	bw.writeBits(16, uint32(v))
}

// writeAlignedU32 emits a 32-bit value as two 16-bit units, low half first.
func (bw *bitWriter) writeAlignedU32(v uint32) {
	bw.writeAlignedU16(uint16(v))
	bw.writeAlignedU16(uint16(v >> 16))
}

// writeRawBytes appends raw bytes. The writer must be aligned and flushed.
func (bw *bitWriter) writeRawBytes(b []byte) {
	bw.out = append(bw.out, b...)
}

// padToEven appends one zero byte if an odd number of bytes has been
// emitted, restoring the 16-bit unit lattice after an odd-length raw copy.
func (bw *bitWriter) padToEven() {
	if len(bw.out)%2 != 0 {
		bw.out = append(bw.out, 0)
	}
}

// bytes returns the emitted stream. Pending bits must be aligned out first.
func (bw *bitWriter) bytes() []byte {
	return bw.out
}
