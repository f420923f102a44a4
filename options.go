// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

// DecoderOptions configures a chunk-level Decoder.
type DecoderOptions struct {
	// WindowSize is the window exponent W in [MinWindowSize, MaxWindowSize];
	// the history window holds 1<<W bytes. 0 means DefaultWindowSize.
	WindowSize uint8
	// E8Boundary enables reversal of the E8 call-address preprocessing
	// transform when nonzero, using this value as the translation boundary.
	E8Boundary uint32
}

// DefaultDecoderOptions returns options for the given window exponent with
// E8 translation disabled.
func DefaultDecoderOptions(windowSize uint8) *DecoderOptions {
	return &DecoderOptions{WindowSize: windowSize}
}

// DecompressOptions configures the whole-stream Decompress helpers.
// OutLen is required (expected decompressed size).
type DecompressOptions struct {
	// OutLen is the expected decompressed size of the whole stream.
	OutLen int
	// WindowSize is the window exponent; 0 means DefaultWindowSize.
	WindowSize uint8
	// ChunkSize is the uncompressed chunk size the stream was encoded with;
	// 0 means DefaultChunkSize.
	ChunkSize int
	// E8Boundary enables E8 translation reversal when nonzero.
	E8Boundary uint32
	// ResetInterval makes every Nth chunk a reset boundary (tables and
	// repeated-offset slots reinitialize). 0 means no resets.
	ResetInterval int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length,
// the default window and chunk size, and no resets.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

// CompressOptions configures Compress.
type CompressOptions struct {
	// Level selects the block strategy: 0 stores chunks in UNCOMPRESSED
	// blocks; 1 and above entropy-codes literals in VERBATIM blocks (with a
	// stored fallback when that would grow the chunk).
	Level int
	// WindowSize is the window exponent the decoder will use; it fixes the
	// main tree size. 0 means DefaultWindowSize.
	WindowSize uint8
	// ChunkSize is the uncompressed chunk size; 0 means DefaultChunkSize.
	ChunkSize int
	// E8Boundary enables the E8 call-address preprocessing transform when
	// nonzero. The decoder must be given the same boundary.
	E8Boundary uint32
	// ResetInterval makes every Nth chunk a reset boundary. 0 means no resets.
	ResetInterval int
}

// DefaultCompressOptions returns options for entropy-coded literals with the
// default window and chunk size.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: 1}
}
