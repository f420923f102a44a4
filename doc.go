// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

/*
Package lzxd implements the LZXD compression bit-format used inside cabinet
style containers: chunked, randomly seekable compressed blocks over a
persistent sliding window of 32 KiB to 2 MiB (window exponent 15..21).

The decode core is a precise binary state machine: 16-bit little-endian bit
units consumed MSB-first, canonical Huffman tables transmitted as
delta/run-length coded lengths through a 20-symbol pretree, three block
types (VERBATIM, ALIGNED, UNCOMPRESSED), three repeated-offset slots
R0..R2, and an optional reversible E8 call-address translation. A single
misread bit desynchronizes everything that follows, so every error is
terminal for the stream; there is no resynchronization or partial output.

# Decoding chunks

Container formats hand the decoder raw chunk bytes plus side metadata
(window size, chunk size, reset boundaries, E8 boundary). State carried
between chunks lives in an explicit Decoder value:

	dec, err := lzxd.NewDecoder(lzxd.DefaultDecoderOptions(17))
	if err != nil {
		return err
	}
	for _, c := range chunks {
		out, err := dec.DecodeChunk(c.Data, c.UncompressedLen, c.IsResetBoundary)
		if err != nil {
			return err // this stream is unreadable
		}
		// use out
	}

Independent streams may be decoded concurrently, one Decoder each.

# Whole streams

Compress and Decompress handle a simple self-contained framing: each chunk
is preceded by a 16-bit little-endian compressed-size prefix. OutLen is
required on the decode side (use DecompressOptions):

	enc, err := lzxd.Compress(data, nil)
	out, err := lzxd.Decompress(enc, lzxd.DefaultDecompressOptions(len(data)))

Compress performs no match finding (level 0 stores chunks, level 1
entropy-codes literals); the decoder accepts the full format either way.
*/
package lzxd
