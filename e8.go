// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

import "encoding/binary"

// E8 call-address translation. Before compression, the 32-bit little-endian
// displacement after each 0xE8 (x86 CALL) byte is rewritten from relative to
// absolute form when it falls inside the translation boundary, which makes
// repeated calls to one target compress better. Decoding reverses this as a
// post-pass over each chunk's output, with the running stream offset as the
// address base. Both passes scan identically: the four displacement bytes
// after an 0xE8 are always skipped, translated or not, and the last
// e8TailGuard bytes of a chunk are never touched. Translation stops entirely
// past output offset maxE8Offset.

// e8Decode rewrites absolute call targets back to their original form.
func e8Decode(b []byte, off int64, boundary uint32) {
	if off > maxE8Offset || len(b) < e8TailGuard {
		return
	}

	size := int32(boundary)
	for i := 0; i < len(b)-e8TailGuard; i++ {
		if b[i] != 0xe8 {
			continue
		}

		cur := int32(off) + int32(i)
		abs := int32(binary.LittleEndian.Uint32(b[i+1 : i+5]))
		if abs >= -cur && abs < size {
			var rel int32
			if abs >= 0 {
				rel = abs - cur
			} else {
				rel = abs + size
			}

			binary.LittleEndian.PutUint32(b[i+1:i+5], uint32(rel))
		}

		i += 4
	}
}

// e8Encode is the exact inverse of e8Decode: it maps each displacement the
// decoder would translate back to the value the decoder translates it from.
func e8Encode(b []byte, off int64, boundary uint32) {
	if off > maxE8Offset || len(b) < e8TailGuard {
		return
	}

	size := int32(boundary)
	for i := 0; i < len(b)-e8TailGuard; i++ {
		if b[i] != 0xe8 {
			continue
		}

		cur := int32(off) + int32(i)
		rel := int32(binary.LittleEndian.Uint32(b[i+1 : i+5]))
		if rel >= -cur && rel < size {
			var abs int32
			if rel >= size-cur {
				abs = rel - size
			} else {
				abs = rel + cur
			}

			binary.LittleEndian.PutUint32(b[i+1:i+5], uint32(abs))
		}

		i += 4
	}
}
