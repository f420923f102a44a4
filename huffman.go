// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

// Canonical Huffman decoding. Symbols are assigned codes in order of
// (length, symbol index), shortest first. Decoding uses a primary lookup
// table of huffTableBits bits; longer codes spill into per-prefix extra
// tables. Table entries pack the code length in the high bits and the
// symbol in the low bits.

const (
	huffTableBits = 9
	huffTableSize = 1 << huffTableBits
	huffLenShift  = 10 // main tree can exceed 512 symbols, so 10 symbol bits
	huffCodeMask  = 1<<huffLenShift - 1
)

type huffmanTable struct {
	extra  [][]uint16
	maxLen byte
	table  [huffTableSize]uint16
}

// buildHuffmanTable constructs the decode table for the given per-symbol
// code lengths. A zero length marks an unused symbol. An all-zero array
// builds an empty table (valid to hold, corrupt to decode from). Lengths
// that over- or under-subscribe the code space return ErrInvalidTable.
func buildHuffmanTable(codeLens []byte) (*huffmanTable, error) {
	var count [maxCodeLength + 1]uint
	var max byte
	for _, cl := range codeLens {
		if cl > maxCodeLength {
			return nil, ErrInvalidTable
		}

		count[cl]++
		if max < cl {
			max = cl
		}
	}

	if max == 0 {
		return &huffmanTable{}, nil
	}

	// First canonical code of each length. The lengths form a valid prefix
	// code exactly when the final code lands on 1<<max.
	var first [maxCodeLength + 1]uint
	code := uint(0)
	for i := byte(1); i <= max; i++ {
		code <<= 1
		first[i] = code
		code += count[i]
	}

	if code != 1<<max {
		return nil, ErrInvalidTable
	}

	h := &huffmanTable{maxLen: max}
	if max > huffTableBits {
		// Codes longer than the primary table get per-prefix suffix tables.
		core := first[huffTableBits+1] / 2
		nextra := uint(huffTableSize) - core
		h.extra = make([][]uint16, nextra)
		for c := core; c < huffTableSize; c++ {
			h.table[c] = uint16(c - core)
			h.extra[c-core] = make([]uint16, 1<<(max-huffTableBits))
		}
	}

	for i, cl := range codeLens {
		if cl == 0 {
			continue
		}

		c := first[cl]
		first[cl]++
		v := uint16(cl)<<huffLenShift | uint16(i)
		if cl <= huffTableBits {
			// Fill every possible suffix so any peek resolves directly.
			base := c << (huffTableBits - cl)
			for j := uint(0); j < 1<<(huffTableBits-cl); j++ {
				h.table[base+j] = v
			}
		} else {
			prefix := c >> (cl - huffTableBits)
			suffix := c & (1<<(cl-huffTableBits) - 1)
			base := suffix << (max - cl)
			for j := uint(0); j < 1<<(max-cl); j++ {
				h.extra[h.table[prefix]][base+j] = v
			}
		}
	}

	return h, nil
}

// decodeSymbol reads one symbol from the bitstream. Decoding from an empty
// table means the stream referenced a tree that was never transmitted.
func (h *huffmanTable) decodeSymbol(br *bitReader) (uint16, error) {
	if h.maxLen == 0 {
		return 0, ErrCorruptStream
	}

	bits := br.peek16()
	c := h.table[bits>>(16-huffTableBits)]
	if c < 1<<huffLenShift {
		// Spilled code: index the suffix table with the bits after the prefix.
		suffix := (bits & (1<<(16-huffTableBits) - 1)) >> (16 - uint(h.maxLen))
		c = h.extra[c][suffix]
	}

	n := uint(c >> huffLenShift)
	if br.availBits() < int(n) {
		return 0, ErrTruncated
	}

	if err := br.consume(n); err != nil {
		return 0, err
	}

	return c & huffCodeMask, nil
}

// canonicalCodes assigns canonical code values for the given lengths,
// returning one code per symbol (unused symbols get zero). The encoder and
// the table builder must agree on this assignment exactly.
func canonicalCodes(codeLens []byte) ([]uint32, error) {
	var count [maxCodeLength + 1]uint32
	var max byte
	for _, cl := range codeLens {
		if cl > maxCodeLength {
			return nil, ErrInvalidTable
		}

		count[cl]++
		if max < cl {
			max = cl
		}
	}

	var first [maxCodeLength + 1]uint32
	code := uint32(0)
	for i := byte(1); i <= max; i++ {
		code <<= 1
		first[i] = code
		code += count[i]
	}

	if max > 0 && code != 1<<max {
		return nil, ErrInvalidTable
	}

	codes := make([]uint32, len(codeLens))
	for i, cl := range codeLens {
		if cl != 0 {
			codes[i] = first[cl]
			first[cl]++
		}
	}

	return codes, nil
}
