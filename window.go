// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzxd

package lzxd

// historyWindow is the circular buffer of the most recent 1<<W decoded
// bytes. It persists across chunk boundaries within one stream; matches read
// backwards through it, and a chunk's decoded output is extracted from it
// once the chunk completes.
type historyWindow struct {
	buf   []byte
	pos   int    // write cursor, mod len(buf)
	total uint64 // bytes produced over the stream's lifetime
}

func newHistoryWindow(windowSize uint8) *historyWindow {
	return &historyWindow{buf: make([]byte, 1<<windowSize)}
}

// pushLiteral appends one decoded byte, overwriting the oldest byte once
// the window is full.
func (w *historyWindow) pushLiteral(b byte) {
	w.buf[w.pos] = b
	w.pos++
	if w.pos == len(w.buf) {
		w.pos = 0
	}
	w.total++
}

// copyMatch copies length bytes from dist bytes behind the cursor to the
// cursor. When dist < length the regions overlap and every written byte must
// be visible to the next read (the classic self-referential LZ77 pattern),
// so the copy is byte-by-byte through the circular index; a bulk copy
// primitive would assume non-overlapping regions.
func (w *historyWindow) copyMatch(dist, length int) error {
	if dist <= 0 || uint64(dist) > w.total || dist > len(w.buf) {
		return ErrInvalidDistance
	}

	src := w.pos - dist
	if src < 0 {
		src += len(w.buf)
	}

	for i := 0; i < length; i++ {
		b := w.buf[src]
		src++
		if src == len(w.buf) {
			src = 0
		}

		w.buf[w.pos] = b
		w.pos++
		if w.pos == len(w.buf) {
			w.pos = 0
		}
		w.total++
	}

	return nil
}

// copyFrom fills the window with n raw bytes taken directly from the
// bitstream (uncompressed blocks bypass entropy decoding entirely).
func (w *historyWindow) copyFrom(br *bitReader, n int) error {
	for n > 0 {
		k := min(n, len(w.buf)-w.pos)
		if err := br.readRawBytes(w.buf[w.pos : w.pos+k]); err != nil {
			return err
		}

		w.pos += k
		if w.pos == len(w.buf) {
			w.pos = 0
		}
		w.total += uint64(k)
		n -= k
	}

	return nil
}

// copyRecent extracts the last len(dst) produced bytes into dst. Callers
// guarantee len(dst) does not exceed the window capacity or the total
// produced; chunks are bounded by MaxChunkSize which every window holds.
func (w *historyWindow) copyRecent(dst []byte) {
	start := w.pos - len(dst)
	if start < 0 {
		start += len(w.buf)
	}

	n := copy(dst, w.buf[start:min(start+len(dst), len(w.buf))])
	if n < len(dst) {
		copy(dst[n:], w.buf[:len(dst)-n])
	}
}
