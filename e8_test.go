package lzxd

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestE8_KnownVector(t *testing.T) {
	// CALL at offset 0 with relative displacement 0x1000; at chunk offset
	// 0x100 the absolute form is 0x1100.
	buf := make([]byte, 20)
	buf[0] = 0xe8
	binary.LittleEndian.PutUint32(buf[1:], 0x1000)

	e8Encode(buf, 0x100, 0x10000)
	if got := binary.LittleEndian.Uint32(buf[1:]); got != 0x1100 {
		t.Fatalf("encoded displacement = %#x, want 0x1100", got)
	}

	e8Decode(buf, 0x100, 0x10000)
	if got := binary.LittleEndian.Uint32(buf[1:]); got != 0x1000 {
		t.Fatalf("decoded displacement = %#x, want 0x1000", got)
	}
}

func TestE8_NegativeDisplacement(t *testing.T) {
	// Backward call: rel in [size-cur, size) maps to a negative absolute.
	buf := make([]byte, 20)
	buf[0] = 0xe8
	binary.LittleEndian.PutUint32(buf[1:], 0xfff0) // size 0x10000, cur 0x100: rel >= size-cur

	orig := append([]byte(nil), buf...)
	e8Encode(buf, 0x100, 0x10000)
	if bytes.Equal(buf, orig) {
		t.Fatal("in-range displacement was not translated")
	}

	e8Decode(buf, 0x100, 0x10000)
	if !bytes.Equal(buf, orig) {
		t.Fatal("decode did not invert encode")
	}
}

func TestE8_RoundTripProperty(t *testing.T) {
	for _, n := range []int{10, 64, 1000, 4096} {
		buf := callPatternInput(n)
		orig := append([]byte(nil), buf...)

		e8Encode(buf, 0, 0x100000)
		e8Decode(buf, 0, 0x100000)
		if !bytes.Equal(buf, orig) {
			t.Fatalf("n=%d: forward then reverse did not restore input", n)
		}

		// Same property at a nonzero stream offset.
		e8Encode(buf, 0x8000, 0x100000)
		e8Decode(buf, 0x8000, 0x100000)
		if !bytes.Equal(buf, orig) {
			t.Fatalf("n=%d off=0x8000: forward then reverse did not restore input", n)
		}
	}
}

func TestE8_DisabledPastOffsetLimit(t *testing.T) {
	buf := callPatternInput(64)
	orig := append([]byte(nil), buf...)

	e8Encode(buf, maxE8Offset+1, 0x100000)
	if !bytes.Equal(buf, orig) {
		t.Fatal("translation ran past the offset limit")
	}

	e8Decode(buf, maxE8Offset+1, 0x100000)
	if !bytes.Equal(buf, orig) {
		t.Fatal("reverse translation ran past the offset limit")
	}
}

func TestE8_TailGuard(t *testing.T) {
	// An E8 inside the final guard bytes is never touched.
	buf := make([]byte, 20)
	buf[10] = 0xe8
	binary.LittleEndian.PutUint32(buf[11:], 0x1000)

	orig := append([]byte(nil), buf...)
	e8Encode(buf, 0x100, 0x10000)
	if !bytes.Equal(buf, orig) {
		t.Fatal("guarded tail bytes were translated")
	}

	// Buffers shorter than the guard are left alone entirely.
	short := []byte{0xe8, 1, 2, 3, 4, 5, 6, 7, 8}
	origShort := append([]byte(nil), short...)
	e8Encode(short, 0, 0x10000)
	if !bytes.Equal(short, origShort) {
		t.Fatal("short buffer was translated")
	}
}

func TestE8_SkipsDisplacementBytes(t *testing.T) {
	// The 0xE8 at index 2 sits inside the first call's displacement and
	// must not start a translation of its own.
	buf := make([]byte, 20)
	buf[0] = 0xe8
	binary.LittleEndian.PutUint32(buf[1:], 0xe800) // displacement containing an E8 byte
	buf[5] = 0xe8
	binary.LittleEndian.PutUint32(buf[6:], 0x2000)

	e8Encode(buf, 0x100, 0x10000)
	if got := binary.LittleEndian.Uint32(buf[1:]); got != 0xe900 {
		t.Fatalf("first displacement = %#x, want 0xe900", got)
	}
	if got := binary.LittleEndian.Uint32(buf[6:]); got != 0x2105 {
		t.Fatalf("second displacement = %#x, want 0x2105", got)
	}

	e8Decode(buf, 0x100, 0x10000)
	if got := binary.LittleEndian.Uint32(buf[1:]); got != 0xe800 {
		t.Fatalf("first displacement after decode = %#x, want 0xe800", got)
	}
	if got := binary.LittleEndian.Uint32(buf[6:]); got != 0x2000 {
		t.Fatalf("second displacement after decode = %#x, want 0x2000", got)
	}
}
