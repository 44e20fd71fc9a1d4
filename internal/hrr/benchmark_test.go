package hrr

import (
	"fmt"
	"testing"
)

func benchmarkVectors(b *testing.B, n int) (Vector, Vector) {
	b.Helper()
	g := NewGenerator(42)
	x, err := g.Generate(n)
	if err != nil {
		b.Fatalf("generate: %v", err)
	}
	y, err := g.Generate(n)
	if err != nil {
		b.Fatalf("generate: %v", err)
	}
	return x, y
}

func BenchmarkConvolveFFT(b *testing.B) {
	for _, n := range []int{256, 512, 1024, 4096} {
		b.Run(fmt.Sprintf("n%d", n), func(b *testing.B) {
			x, y := benchmarkVectors(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Convolve(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkConvolveDirect(b *testing.B) {
	for _, n := range []int{256, 512, 1024} {
		b.Run(fmt.Sprintf("n%d", n), func(b *testing.B) {
			x, y := benchmarkVectors(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := ConvolveDirect(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCorrelate(b *testing.B) {
	x, y := benchmarkVectors(b, 512)
	c, err := Convolve(x, y)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Correlate(c, x); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	g := NewGenerator(42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(512); err != nil {
			b.Fatal(err)
		}
	}
}
