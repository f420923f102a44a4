// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Stream helpers over the chunk-level Decoder. A stream is a sequence of
// chunks, each preceded by a 16-bit little-endian compressed-size prefix;
// every chunk holds min(remaining, ChunkSize) uncompressed bytes. This is
// the framing Compress emits; cabinet-style containers carry their own
// chunk-length tables and should drive the Decoder directly.

// Decompress decompresses a whole stream from src into a new buffer of
// length opts.OutLen. Returns ErrOptionsRequired if opts is nil;
// ErrTrailingData if input remains after the final chunk.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, consumed, err := DecompressN(src, opts)
	if err != nil {
		return nil, err
	}

	if consumed != len(src) {
		return nil, fmt.Errorf("%w: consumed=%d input=%d", ErrTrailingData, consumed, len(src))
	}

	return out, nil
}

// DecompressN decompresses a whole stream and additionally returns the
// number of input bytes consumed. Unlike Decompress it ignores trailing
// bytes after the final chunk (e.g. back-to-back streams).
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if opts == nil {
		return nil, 0, ErrOptionsRequired
	}

	if opts.OutLen < 0 {
		return nil, 0, ErrOptionsRequired
	}

	dst := make([]byte, opts.OutLen)
	consumed, err := decompressStream(src, dst, opts)
	if err != nil {
		return nil, 0, err
	}

	return dst, consumed, nil
}

// DecompressInto decompresses a whole stream into the caller's buffer; the
// buffer length declares the expected output size (opts.OutLen is ignored).
func DecompressInto(src, dst []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	if _, err := decompressStream(src, dst, opts); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecompressFromReader reads the full stream then calls Decompress. No
// decoding logic of its own. If opts.MaxInputSize > 0 and more bytes are
// read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}

// decompressStream walks the chunk framing and drives a Decoder. It returns
// the number of input bytes consumed.
func decompressStream(src, dst []byte, opts *DecompressOptions) (int, error) {
	chunkSize := opts.ChunkSize
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkSize < 1 || chunkSize > MaxChunkSize {
		return 0, fmt.Errorf("%w: %d", ErrChunkSize, chunkSize)
	}

	if len(dst) == 0 {
		return 0, nil
	}

	if len(src) == 0 {
		return 0, ErrEmptyInput
	}

	dec, err := NewDecoder(&DecoderOptions{
		WindowSize: opts.WindowSize,
		E8Boundary: opts.E8Boundary,
	})
	if err != nil {
		return 0, err
	}

	pos := 0
	outPos := 0
	chunkIndex := 0
	for outPos < len(dst) {
		if pos+2 > len(src) {
			return 0, ErrTruncated
		}

		compLen := int(binary.LittleEndian.Uint16(src[pos:]))
		pos += 2
		if compLen == 0 {
			return 0, fmt.Errorf("%w: empty chunk frame", ErrCorruptStream)
		}
		if pos+compLen > len(src) {
			return 0, ErrTruncated
		}

		n := min(len(dst)-outPos, chunkSize)
		reset := opts.ResetInterval > 0 && chunkIndex%opts.ResetInterval == 0
		if err := dec.DecodeChunkInto(src[pos:pos+compLen], dst[outPos:outPos+n], reset); err != nil {
			return 0, err
		}

		pos += compLen
		outPos += n
		chunkIndex++
	}

	return pos, nil
}
