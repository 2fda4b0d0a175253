package lzav

import (
	"bytes"
	"fmt"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("lzav benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
		"random-256k":     randomBytes(3, 256<<10),
	}
}

func BenchmarkCompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		for _, hi := range []bool{false, true} {
			name := fmt.Sprintf("%s/hi-%v", inputName, hi)
			b.Run(name, func(b *testing.B) {
				opts := &CompressOptions{HighRatio: hi}
				dst := make([]byte, CompressBoundHi(len(inputData)))
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := CompressInto(inputData, dst, opts); err != nil {
						b.Fatalf("CompressInto failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		for _, hi := range []bool{false, true} {
			compressedData, err := Compress(inputData, &CompressOptions{HighRatio: hi})
			if err != nil {
				b.Fatalf("setup Compress failed for %s hi=%v: %v", inputName, hi, err)
			}

			dst := make([]byte, len(inputData))
			if _, err := DecompressInto(compressedData, dst); err != nil {
				b.Fatalf("setup Decompress failed for %s hi=%v: %v", inputName, hi, err)
			}

			name := fmt.Sprintf("%s/from-hi-%v", inputName, hi)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := DecompressInto(compressedData, dst); err != nil {
						b.Fatalf("DecompressInto failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	dst := make([]byte, CompressBound(len(inputData)))
	out := make([]byte, len(inputData))
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n, err := CompressInto(inputData, dst, nil)
		if err != nil {
			b.Fatalf("CompressInto failed: %v", err)
		}
		if _, err := DecompressInto(dst[:n], out); err != nil {
			b.Fatalf("DecompressInto failed: %v", err)
		}
	}
}
