// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import "fmt"

// Block decoding: header, per-block Huffman trees, and the token loop for
// compressed (verbatim/aligned) blocks. All window writes for a block go
// through the decoder's history window.

type blockHeader struct {
	kind byte
	size int // uncompressed bytes this block is responsible for
}

// readBlockHeader reads the 3-bit block type and the 24-bit block size
// (three 8-bit reads, most significant first).
func readBlockHeader(br *bitReader) (blockHeader, error) {
	kind, err := br.readBits(3)
	if err != nil {
		return blockHeader{}, err
	}

	if kind < blockVerbatim || kind > blockUncompressed {
		return blockHeader{}, fmt.Errorf("%w: block type %d", ErrCorruptStream, kind)
	}

	var size uint32
	for i := 0; i < 3; i++ {
		b, err := br.readBits(8)
		if err != nil {
			return blockHeader{}, err
		}

		size = size<<8 | b
	}

	return blockHeader{kind: byte(kind), size: int(size)}, nil
}

// readBlockTrees reads the Huffman trees for a verbatim or aligned block.
// Aligned blocks carry an 8-entry aligned-offset tree (3 bits per length)
// before the main tables. The main tree arrives in two pretree passes (256
// literals, then the position-slot symbols); the length tree in one. The
// deltas apply against d.mainLens/d.lenLens, which carry across blocks.
func (d *Decoder) readBlockTrees(br *bitReader, aligned bool) (main, length, alignedTbl *huffmanTable, err error) {
	if aligned {
		var alignedLens [numAlignedElements]byte
		for i := range alignedLens {
			v, err := br.readBits(alignedPathBits)
			if err != nil {
				return nil, nil, nil, err
			}

			alignedLens[i] = byte(v)
		}

		alignedTbl, err = buildHuffmanTable(alignedLens[:])
		if err != nil {
			return nil, nil, nil, err
		}
	}

	if err = readTreeLengths(br, d.mainLens[:numChars]); err != nil {
		return nil, nil, nil, err
	}
	if err = readTreeLengths(br, d.mainLens[numChars:]); err != nil {
		return nil, nil, nil, err
	}

	main, err = buildHuffmanTable(d.mainLens)
	if err != nil {
		return nil, nil, nil, err
	}

	if err = readTreeLengths(br, d.lenLens[:]); err != nil {
		return nil, nil, nil, err
	}

	length, err = buildHuffmanTable(d.lenLens[:])
	if err != nil {
		return nil, nil, nil, err
	}

	return main, length, alignedTbl, nil
}

// readUncompressedHeader consumes the 1..16 padding bits after the block
// header (one explicit bit, then unit alignment) and the three raw 32-bit
// repeated-offset values that override R0..R2.
func (d *Decoder) readUncompressedHeader(br *bitReader) error {
	if _, err := br.readBits(1); err != nil {
		return err
	}
	br.alignTo16()

	for i := range d.r {
		v, err := br.readAlignedU32()
		if err != nil {
			return err
		}

		if v == 0 {
			return fmt.Errorf("%w: zero repeated offset", ErrCorruptStream)
		}

		d.r[i] = v
	}

	return nil
}

// decodeCompressedBlock runs the token loop for one verbatim or aligned
// block: literals below 256, otherwise a (length slot, position slot) pair
// resolved through the length tree, footer bits and the R0..R2 slots.
func (d *Decoder) decodeCompressedBlock(br *bitReader, main, length, alignedTbl *huffmanTable, size int) error {
	remaining := size
	for remaining > 0 {
		sym, err := main.decodeSymbol(br)
		if err != nil {
			return err
		}

		if sym < numChars {
			d.window.pushLiteral(byte(sym))
			remaining--
			continue
		}

		elem := int(sym) - numChars
		matchLen := elem & numPrimaryLengths
		slot := elem >> 3

		if matchLen == numPrimaryLengths {
			footer, err := length.decodeSymbol(br)
			if err != nil {
				return err
			}

			matchLen += int(footer)
		}
		matchLen += minMatchLength

		var dist int
		switch slot {
		case 0:
			dist = int(d.r[0])

		case 1:
			// Swap to front; the remaining slot keeps its position.
			dist = int(d.r[1])
			d.r[1] = d.r[0]
			d.r[0] = uint32(dist)

		case 2:
			dist = int(d.r[2])
			d.r[2] = d.r[0]
			d.r[0] = uint32(dist)

		default:
			extra := uint(footerBits[slot])
			var verbatim, alignedLow uint32
			switch {
			case alignedTbl != nil && extra >= alignedPathBits:
				// Aligned block: low 3 offset bits come from the aligned
				// tree, the rest are raw.
				verbatim, err = br.readBits(extra - alignedPathBits)
				if err != nil {
					return err
				}
				verbatim <<= alignedPathBits

				low, err := alignedTbl.decodeSymbol(br)
				if err != nil {
					return err
				}

				alignedLow = uint32(low)

			case extra > 16:
				// Slots 36+ use 17 verbatim bits; the reader serves at most
				// 16 per call, so split the read MSB-first.
				hi, err := br.readBits(extra - 16)
				if err != nil {
					return err
				}

				lo, err := br.readBits(16)
				if err != nil {
					return err
				}

				verbatim = hi<<16 | lo

			case extra > 0:
				verbatim, err = br.readBits(extra)
				if err != nil {
					return err
				}
			}

			formatted := basePosition[slot] + verbatim + alignedLow
			dist = int(formatted) - 2
			d.r[2] = d.r[1]
			d.r[1] = d.r[0]
			d.r[0] = uint32(dist)
		}

		if matchLen > remaining {
			return fmt.Errorf("%w: match overruns block", ErrCorruptStream)
		}

		if err := d.window.copyMatch(dist, matchLen); err != nil {
			return err
		}

		remaining -= matchLen
	}

	return nil
}
