// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import "fmt"

// Decoder holds all state that survives between chunks of one stream: the
// history window, the carried main/length tree code lengths (block N's
// lengths are deltas against block N-1's), the repeated-offset slots R0..R2
// and the running output offset used by E8 translation. A Decoder is an
// explicit, caller-owned context: independent streams each get their own
// Decoder and may be decoded concurrently, but a single Decoder must not be
// shared between goroutines.
type Decoder struct {
	window     *historyWindow
	mainLens   []byte // 256 literals + 8 per position slot
	lenLens    [numSecondaryLengths]byte
	r          [3]uint32
	outOffset  int64
	e8Boundary uint32
	windowSize uint8
}

// NewDecoder creates a decoder for one stream. The window exponent is
// immutable for the stream's lifetime.
func NewDecoder(opts *DecoderOptions) (*Decoder, error) {
	if opts == nil {
		opts = DefaultDecoderOptions(DefaultWindowSize)
	}

	windowSize := opts.WindowSize
	if windowSize == 0 {
		windowSize = DefaultWindowSize
	}
	if !validWindowSize(windowSize) {
		return nil, fmt.Errorf("%w: %d", ErrWindowSize, windowSize)
	}

	if opts.E8Boundary >= maxE8Boundary {
		return nil, fmt.Errorf("%w: %d", ErrE8Boundary, opts.E8Boundary)
	}

	d := &Decoder{
		windowSize: windowSize,
		e8Boundary: opts.E8Boundary,
		mainLens:   make([]byte, mainTreeSize(windowSize)),
		window:     newHistoryWindow(windowSize),
	}
	d.resetCarriedState()

	return d, nil
}

// resetCarriedState reinitializes the table baselines and the repeated
// offset slots. The window is deliberately left alone: it only resets with
// the stream itself.
func (d *Decoder) resetCarriedState() {
	clear(d.mainLens)
	clear(d.lenLens[:])
	d.r = [3]uint32{1, 1, 1}
}

// Reset returns the decoder to its initial state for a new stream: window,
// carried tables, slots and the E8 output offset.
func (d *Decoder) Reset() {
	d.resetCarriedState()
	d.window = newHistoryWindow(d.windowSize)
	d.outOffset = 0
}

// DecodeChunk decodes one compressed chunk into a new buffer of
// uncompressedLen bytes. resetBoundary reinitializes the carried tables and
// slots first (container formats define where those boundaries fall; the
// window persists regardless). Any decode error is terminal for the stream
// and no partial output is returned.
func (d *Decoder) DecodeChunk(src []byte, uncompressedLen int, resetBoundary bool) ([]byte, error) {
	if uncompressedLen < 0 || uncompressedLen > MaxChunkSize {
		return nil, fmt.Errorf("%w: chunk of %d bytes", ErrChunkSize, uncompressedLen)
	}

	dst := make([]byte, uncompressedLen)
	if err := d.DecodeChunkInto(src, dst, resetBoundary); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecodeChunkInto is DecodeChunk writing into a caller-provided buffer whose
// length declares the chunk's uncompressed size.
func (d *Decoder) DecodeChunkInto(src, dst []byte, resetBoundary bool) error {
	if len(dst) > MaxChunkSize {
		return fmt.Errorf("%w: chunk of %d bytes", ErrChunkSize, len(dst))
	}

	if len(src) == 0 {
		if len(dst) == 0 {
			return nil
		}

		return ErrEmptyInput
	}

	if resetBoundary {
		d.resetCarriedState()
	}

	br := newBitReader(src)
	produced := 0
	for produced < len(dst) {
		hdr, err := readBlockHeader(br)
		if err != nil {
			return err
		}

		// Blocks complete within their chunk: the block sizes of a chunk sum
		// to exactly its declared uncompressed size.
		if hdr.size == 0 || hdr.size > len(dst)-produced {
			return fmt.Errorf("%w: block of %d bytes with %d remaining in chunk",
				ErrCorruptStream, hdr.size, len(dst)-produced)
		}

		switch hdr.kind {
		case blockUncompressed:
			if err := d.readUncompressedHeader(br); err != nil {
				return err
			}

			if err := d.window.copyFrom(br, hdr.size); err != nil {
				return err
			}

			if hdr.size%2 != 0 {
				br.skipPadByte()
			}

		default:
			main, length, alignedTbl, err := d.readBlockTrees(br, hdr.kind == blockAligned)
			if err != nil {
				return err
			}

			if err := d.decodeCompressedBlock(br, main, length, alignedTbl, hdr.size); err != nil {
				return err
			}
		}

		produced += hdr.size
	}

	// Trailing padding up to the next unit boundary is expected; anything
	// after it belongs to the container, not to this chunk.
	br.alignTo16()

	d.window.copyRecent(dst)

	if d.e8Boundary != 0 {
		e8Decode(dst, d.outOffset, d.e8Boundary)
	}
	d.outOffset += int64(len(dst))

	return nil
}
