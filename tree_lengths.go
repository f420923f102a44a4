// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

// Tree-length transmission. Each tree's code lengths are sent as deltas
// against the previous block's lengths (all-zero baseline at a reset
// boundary), themselves coded by a 20-symbol pretree whose 4-bit path
// lengths are read literally. Three pretree symbols are run-length escapes.
const (
	pretreeZeroShort = 17 // 4 extra bits: 4..19 zero lengths
	pretreeZeroLong  = 18 // 5 extra bits: 20..51 zero lengths
	pretreeSameRun   = 19 // 1 extra bit: 4..5 repeats of a delta-decoded length
)

// readTreeLengths updates lens in place by reading one pretree-coded length
// run from the bitstream. lens must hold the previous block's lengths for
// this tree region (zero for the first block after a reset).
func readTreeLengths(br *bitReader, lens []byte) error {
	var pretreeLens [numPretreeElements]byte
	for i := range pretreeLens {
		v, err := br.readBits(pretreePathBits)
		if err != nil {
			return err
		}

		pretreeLens[i] = byte(v)
	}

	pretree, err := buildHuffmanTable(pretreeLens[:])
	if err != nil {
		return err
	}

	for i := 0; i < len(lens); {
		sym, err := pretree.decodeSymbol(br)
		if err != nil {
			return err
		}

		switch {
		case sym <= 16:
			// Length is a delta from the previous table, mod 17.
			lens[i] = (lens[i] + 17 - byte(sym)) % 17
			i++

		case sym == pretreeZeroShort:
			n, err := br.readBits(4)
			if err != nil {
				return err
			}

			zeros := int(n) + 4
			if i+zeros > len(lens) {
				return ErrCorruptStream
			}

			for j := 0; j < zeros; j++ {
				lens[i+j] = 0
			}
			i += zeros

		case sym == pretreeZeroLong:
			n, err := br.readBits(5)
			if err != nil {
				return err
			}

			zeros := int(n) + 20
			if i+zeros > len(lens) {
				return ErrCorruptStream
			}

			for j := 0; j < zeros; j++ {
				lens[i+j] = 0
			}
			i += zeros

		case sym == pretreeSameRun:
			n, err := br.readBits(1)
			if err != nil {
				return err
			}

			same := int(n) + 4
			if i+same > len(lens) {
				return ErrCorruptStream
			}

			d, err := pretree.decodeSymbol(br)
			if err != nil {
				return err
			}
			if d > 16 {
				return ErrCorruptStream
			}

			l := (lens[i] + 17 - byte(d)) % 17
			for j := 0; j < same; j++ {
				lens[i+j] = l
			}
			i += same

		default:
			return ErrCorruptStream
		}
	}

	return nil
}
