// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

// bitReader consumes an LZXD bitstream from a byte slice. The stream is a
// sequence of 16-bit units, each loaded as two bytes low byte first; bits are
// then drawn MSB-first from the resulting 16-bit value. All bit-ordering
// quirks of the format live here; the rest of the decoder only asks for
// "n bits" or "one aligned unit".
type bitReader struct {
	data  []byte
	pos   int    // byte offset of the next unit to load
	buf   uint32 // pending bits, left-aligned in the high bits
	nbits uint   // number of valid bits in buf
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{data: data}
}

// load pulls the next 16-bit unit into the buffer. Requires nbits <= 15.
func (br *bitReader) load() error {
	if br.pos+2 > len(br.data) {
		return ErrTruncated
	}

	unit := uint32(br.data[br.pos]) | uint32(br.data[br.pos+1])<<8
	br.buf |= unit << (16 - br.nbits)
	br.nbits += 16
	br.pos += 2

	return nil
}

// readBits returns the next n bits (n <= 16), MSB-first.
func (br *bitReader) readBits(n uint) (uint32, error) {
	if n == 0 {
		return 0, nil
	}

	if br.nbits < n {
		if err := br.load(); err != nil {
			return 0, err
		}
	}

	v := br.buf >> (32 - n)
	br.buf <<= n
	br.nbits -= n

	return v, nil
}

// peek16 returns the next 16 bits without consuming them. Near the end of
// the stream the low bits are zero-filled; callers must check availBits
// against the length of whatever they decode from the peeked value.
func (br *bitReader) peek16() uint16 {
	if br.nbits < 16 && br.pos+2 <= len(br.data) {
		_ = br.load()
	}

	return uint16(br.buf >> 16)
}

// availBits reports how many bits remain in the stream, buffered or not.
func (br *bitReader) availBits() int {
	return int(br.nbits) + 8*(len(br.data)-br.pos)
}

// consume discards n already-peeked bits.
func (br *bitReader) consume(n uint) error {
	if n == 0 {
		return nil
	}

	if br.nbits < n {
		return ErrTruncated
	}

	br.buf <<= n
	br.nbits -= n

	return nil
}

// alignTo16 discards any partially consumed 16-bit unit.
func (br *bitReader) alignTo16() {
	drop := br.nbits % 16
	if drop != 0 {
		br.buf <<= drop
		br.nbits -= drop
	}
}

// readAlignedU16 reads one raw 16-bit unit. Must be called at a unit
// boundary; the unit's little-endian value equals its 16 stream bits.
func (br *bitReader) readAlignedU16() (uint16, error) {
	v, err := br.readBits(16)
	return uint16(v), err
}

// readAlignedU32 reads a 32-bit value stored as two 16-bit units with the
// low half first. The halves are in swapped order on the wire; this is a
// format quirk and must not be "corrected".
func (br *bitReader) readAlignedU32() (uint32, error) {
	lo, err := br.readAlignedU16()
	if err != nil {
		return 0, err
	}

	hi, err := br.readAlignedU16()
	if err != nil {
		return 0, err
	}

	return uint32(lo) | uint32(hi)<<16, nil
}

// readRawBytes copies len(dst) raw bytes from the stream, bypassing bit
// interpretation. The reader must be at a 16-bit boundary; a fully buffered
// unit is put back before copying.
func (br *bitReader) readRawBytes(dst []byte) error {
	if br.nbits == 16 {
		br.pos -= 2
		br.buf = 0
		br.nbits = 0
	}

	if br.nbits != 0 {
		return ErrCorruptStream
	}

	if br.pos+len(dst) > len(br.data) {
		return ErrTruncated
	}

	copy(dst, br.data[br.pos:br.pos+len(dst)])
	br.pos += len(dst)

	return nil
}

// skipPadByte discards the single padding byte that follows an odd-length
// raw copy, restoring the 16-bit unit lattice. Missing padding at the very
// end of the stream is tolerated.
func (br *bitReader) skipPadByte() {
	if br.pos < len(br.data) {
		br.pos++
	}
}
