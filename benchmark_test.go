package lzxd

import (
	"bytes"
	"math/rand"
	"testing"
)

func benchInput(n int) []byte {
	r := rand.New(rand.NewSource(1))
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"}

	var buf bytes.Buffer
	for buf.Len() < n {
		buf.WriteString(words[r.Intn(len(words))])
		buf.WriteByte(' ')
	}

	return buf.Bytes()[:n]
}

func BenchmarkCompress(b *testing.B) {
	data := benchInput(1 << 17)
	for _, level := range []int{0, 1} {
		b.Run(map[int]string{0: "stored", 1: "literals"}[level], func(b *testing.B) {
			opts := &CompressOptions{Level: level}
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Compress(data, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := benchInput(1 << 17)
	for _, level := range []int{0, 1} {
		b.Run(map[int]string{0: "stored", 1: "literals"}[level], func(b *testing.B) {
			enc, err := Compress(data, &CompressOptions{Level: level})
			if err != nil {
				b.Fatal(err)
			}

			opts := DefaultDecompressOptions(len(data))
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Decompress(enc, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecodeChunk(b *testing.B) {
	data := benchInput(DefaultChunkSize)
	enc, err := Compress(data, &CompressOptions{Level: 1})
	if err != nil {
		b.Fatal(err)
	}

	// Strip the stream framing down to the single chunk body.
	body := enc[2:]
	dst := make([]byte, len(data))

	dec, err := NewDecoder(nil)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := dec.DecodeChunkInto(body, dst, true); err != nil {
			b.Fatal(err)
		}
	}
}
