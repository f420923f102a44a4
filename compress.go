// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import "fmt"

// Compress compresses src into an LZXD chunk stream (16-bit compressed-size
// prefix per chunk, as Decompress expects). opts may be nil (default level 1).
// Level 0 stores every chunk in an UNCOMPRESSED block; level 1 and above
// entropy-codes literals in VERBATIM blocks, falling back to storing when
// the coded form would be larger. Match finding is a container/caller
// concern and is not performed here.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	windowSize := opts.WindowSize
	if windowSize == 0 {
		windowSize = DefaultWindowSize
	}
	if !validWindowSize(windowSize) {
		return nil, fmt.Errorf("%w: %d", ErrWindowSize, windowSize)
	}

	chunkSize := opts.ChunkSize
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkSize < 1 || chunkSize > MaxChunkSize {
		return nil, fmt.Errorf("%w: %d", ErrChunkSize, chunkSize)
	}

	if opts.E8Boundary >= maxE8Boundary {
		return nil, fmt.Errorf("%w: %d", ErrE8Boundary, opts.E8Boundary)
	}

	level := max(opts.Level, 0)

	data := src
	if opts.E8Boundary != 0 && len(src) > 0 {
		// The E8 pre-pass rewrites displacements in place; work on a copy so
		// the caller's buffer stays untouched. Chunk boundaries here must
		// match the decoder's post-pass exactly.
		data = append([]byte(nil), src...)
		for off := 0; off < len(data); off += chunkSize {
			end := min(off+chunkSize, len(data))
			e8Encode(data[off:end], int64(off), opts.E8Boundary)
		}
	}

	enc := &encoder{mainLens: make([]byte, mainTreeSize(windowSize))}

	var out []byte
	chunkIndex := 0
	for off := 0; off < len(data); off += chunkSize {
		end := min(off+chunkSize, len(data))

		// Reset boundaries must mirror the decoder's schedule so both sides
		// agree on the delta baseline for tree transmission.
		if opts.ResetInterval > 0 && chunkIndex%opts.ResetInterval == 0 {
			clear(enc.mainLens)
			clear(enc.lenLens[:])
		}

		body, err := enc.encodeChunk(data[off:end], level)
		if err != nil {
			return nil, err
		}

		if len(body) > 0xffff {
			return nil, fmt.Errorf("%w: chunk body of %d bytes", ErrCompressInternal, len(body))
		}

		out = append(out, byte(len(body)), byte(len(body)>>8))
		out = append(out, body...)
		chunkIndex++
	}

	return out, nil
}

// encoder carries the state the decoder carries: the previous block's tree
// lengths, against which each transmitted tree is delta-coded.
type encoder struct {
	mainLens []byte
	lenLens  [numSecondaryLengths]byte
}

// encodeChunk produces one chunk body holding a single block.
func (e *encoder) encodeChunk(data []byte, level int) ([]byte, error) {
	stored := encodeStoredBlock(data)
	if level <= 0 {
		return stored, nil
	}

	coded, newMain, err := e.encodeVerbatimBlock(data)
	if err != nil {
		return nil, err
	}

	if len(coded) >= len(stored) {
		// Stored blocks transmit no trees, so the carried lengths stay as
		// they were on both sides.
		return stored, nil
	}

	copy(e.mainLens, newMain)
	clear(e.lenLens[:])

	return coded, nil
}

// writeBlockHeader emits the 3-bit type and 24-bit size, most significant
// size bits first.
func writeBlockHeader(bw *bitWriter, kind byte, size int) {
	bw.writeBits(3, uint32(kind))
	bw.writeBits(8, uint32(size>>16))
	bw.writeBits(8, uint32(size>>8)&0xff)
	bw.writeBits(8, uint32(size)&0xff)
}

// encodeStoredBlock wraps data in an UNCOMPRESSED block: 1..16 padding bits,
// the three raw repeated-offset values, the bytes themselves, and a padding
// byte after odd lengths.
func encodeStoredBlock(data []byte) []byte {
	bw := &bitWriter{}
	writeBlockHeader(bw, blockUncompressed, len(data))
	bw.writeBits(1, 0)
	bw.alignTo16()

	for i := 0; i < 3; i++ {
		bw.writeAlignedU32(1)
	}

	bw.writeRawBytes(data)
	bw.padToEven()

	return bw.bytes()
}

// encodeVerbatimBlock entropy-codes data as literals in a VERBATIM block and
// returns the body plus the main-tree lengths the decoder will carry after
// reading it. The length tree is transmitted empty: no match symbols exist
// to need it.
func (e *encoder) encodeVerbatimBlock(data []byte) ([]byte, []byte, error) {
	var freq [numChars]int
	for _, b := range data {
		freq[b]++
	}

	litLens := literalCodeLengths(&freq)
	codes, err := canonicalCodes(litLens[:])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: literal code assignment: %v", ErrCompressInternal, err)
	}

	newMain := make([]byte, len(e.mainLens))
	copy(newMain, litLens[:])

	bw := &bitWriter{}
	writeBlockHeader(bw, blockVerbatim, len(data))

	if err := writeTreeLengths(bw, e.mainLens[:numChars], newMain[:numChars]); err != nil {
		return nil, nil, err
	}
	if err := writeTreeLengths(bw, e.mainLens[numChars:], newMain[numChars:]); err != nil {
		return nil, nil, err
	}

	var emptyLenTree [numSecondaryLengths]byte
	if err := writeTreeLengths(bw, e.lenLens[:], emptyLenTree[:]); err != nil {
		return nil, nil, err
	}

	for _, b := range data {
		bw.writeBits(uint(litLens[b]), codes[b])
	}
	bw.alignTo16()

	return bw.bytes(), newMain, nil
}

// literalCodeLengths builds code lengths for the literal half of the main
// tree from byte frequencies. Lengths come from an optimal Huffman build;
// if that exceeds the 16-bit code limit the chunk falls back to a flat
// 8-bit code for all 256 literals, which is always a valid prefix code.
func literalCodeLengths(freq *[numChars]int) [numChars]byte {
	var lens [numChars]byte
	if ok := huffmanCodeLengths(freq[:], maxCodeLength, lens[:]); !ok {
		for i := range lens {
			lens[i] = 8
		}
	}

	return lens
}

// lengthToken is one pretree-coded element of a transmitted length run:
// either a literal delta or a zero-run escape with its extra bits.
type lengthToken struct {
	sym    byte
	nExtra uint
	extra  uint32
}

// deltaTokens encodes new against prev as pretree symbols. Runs of at least
// four zeros use the run escapes (chunked so no remainder falls below the
// escapes' minimums); everything else is a literal delta mod 17.
func deltaTokens(prev, new []byte) []lengthToken {
	var toks []lengthToken

	i := 0
	for i < len(new) {
		if new[i] != 0 {
			c := (int(prev[i]) - int(new[i]) + 17) % 17
			toks = append(toks, lengthToken{sym: byte(c)})
			i++
			continue
		}

		j := i
		for j < len(new) && new[j] == 0 {
			j++
		}

		r := j - i
		for r >= 4 {
			var k int
			if r >= 20 {
				k = min(r, 51)
				if rem := r - k; rem > 0 && rem < 4 {
					k -= 4 - rem
				}

				toks = append(toks, lengthToken{sym: pretreeZeroLong, nExtra: 5, extra: uint32(k - 20)})
			} else {
				k = r
				toks = append(toks, lengthToken{sym: pretreeZeroShort, nExtra: 4, extra: uint32(k - 4)})
			}

			i += k
			r -= k
		}

		// Short zero tails ride as literal deltas (delta from prev to zero).
		for ; r > 0; r-- {
			toks = append(toks, lengthToken{sym: prev[i] % 17})
			i++
		}
	}

	return toks
}

// writeTreeLengths transmits one tree region: a pretree built over the token
// symbols (4-bit literal lengths), then the tokens themselves.
func writeTreeLengths(bw *bitWriter, prev, new []byte) error {
	toks := deltaTokens(prev, new)

	var freq [numPretreeElements]int
	for _, t := range toks {
		freq[t.sym]++
	}

	plens := pretreeLengths(&freq)
	codes, err := canonicalCodes(plens[:])
	if err != nil {
		return fmt.Errorf("%w: pretree code assignment: %v", ErrCompressInternal, err)
	}

	for _, l := range plens {
		bw.writeBits(pretreePathBits, uint32(l))
	}

	for _, t := range toks {
		bw.writeBits(uint(plens[t.sym]), codes[t.sym])
		if t.nExtra > 0 {
			bw.writeBits(t.nExtra, t.extra)
		}
	}

	return nil
}

// pretreeLengths builds the pretree's own code lengths. Pretree lengths are
// sent in 4 bits, so the cap is 15; the (rarely needed) fallback is a fixed
// complete 20-symbol code: twelve 4-bit and eight 5-bit lengths.
func pretreeLengths(freq *[numPretreeElements]int) [numPretreeElements]byte {
	var lens [numPretreeElements]byte
	if ok := huffmanCodeLengths(freq[:], 15, lens[:]); !ok {
		for i := range lens {
			if i < 12 {
				lens[i] = 4
			} else {
				lens[i] = 5
			}
		}
	}

	return lens
}

// huffmanCodeLengths fills lens with optimal prefix-code lengths for the
// given frequencies using the sorted two-queue method. Unused symbols get
// zero. A lone used symbol is paired with a dummy so the code stays an
// exact prefix code. Returns false if any length would exceed maxLen.
func huffmanCodeLengths(freq []int, maxLen int, lens []byte) bool {
	clear(lens)

	var order []int
	for i, f := range freq {
		if f > 0 {
			order = append(order, i)
		}
	}

	switch len(order) {
	case 0:
		return true

	case 1:
		lens[order[0]] = 1
		lens[(order[0]+1)%len(freq)] = 1
		return true
	}

	// Insertion sort by (frequency, symbol); inputs are at most 256 entries.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && freq[order[j]] < freq[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	type hnode struct {
		weight int
		parent int
	}

	n := len(order)
	nodes := make([]hnode, n, 2*n-1)
	for i, sym := range order {
		nodes[i] = hnode{weight: freq[sym], parent: -1}
	}

	// Two-queue merge: leaves in sorted order, internal nodes appended in
	// nondecreasing weight order, so the smallest element is always at one
	// of the two queue fronts.
	li, ii := 0, n
	pick := func() int {
		if li < n && (ii >= len(nodes) || nodes[li].weight <= nodes[ii].weight) {
			li++
			return li - 1
		}

		ii++
		return ii - 1
	}

	for i := 0; i < n-1; i++ {
		a := pick()
		b := pick()
		nodes = append(nodes, hnode{weight: nodes[a].weight + nodes[b].weight, parent: -1})
		nodes[a].parent = len(nodes) - 1
		nodes[b].parent = len(nodes) - 1
	}

	for i, sym := range order {
		depth := 0
		for p := nodes[i].parent; p != -1; p = nodes[p].parent {
			depth++
		}

		if depth > maxLen {
			return false
		}

		lens[sym] = byte(depth)
	}

	return true
}
