// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import "errors"

// Sentinel errors for decoding and encoding.
var (
	// ErrTruncated is returned when the compressed bitstream ends in the middle of a read.
	ErrTruncated = errors.New("compressed data truncated")
	// ErrInvalidTable is returned when a Huffman code-length array is not an exact prefix code.
	ErrInvalidTable = errors.New("invalid huffman table")
	// ErrCorruptStream is returned on an invalid block type, symbol, or block layout.
	// Corruption is terminal: the bitstream has no resynchronization markers.
	ErrCorruptStream = errors.New("corrupt lzxd stream")
	// ErrInvalidDistance is returned when a match references bytes before the start of
	// the stream or beyond what the window can still retrieve.
	ErrInvalidDistance = errors.New("invalid match distance")

	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrOptionsRequired is returned when required options are missing (OutLen must be set).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrWindowSize is returned for a window exponent outside [MinWindowSize, MaxWindowSize].
	ErrWindowSize = errors.New("window size exponent out of range")
	// ErrChunkSize is returned for a chunk size outside [1, MaxChunkSize].
	ErrChunkSize = errors.New("chunk size out of range")
	// ErrE8Boundary is returned when the E8 translation boundary is too large.
	ErrE8Boundary = errors.New("e8 translation boundary out of range")
	// ErrTrailingData is returned by Decompress when input remains after the final chunk.
	ErrTrailingData = errors.New("trailing bytes after lzxd stream")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")

	// ErrCompressInternal is returned when the compressor hits an internal invariant
	// violation. Callers can use errors.Is(err, lzxd.ErrCompressInternal).
	ErrCompressInternal = errors.New("internal compressor error")
)
