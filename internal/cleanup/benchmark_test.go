package cleanup

import (
	"fmt"
	"testing"

	"github.com/vsa-tools/holo/internal/hrr"
)

func benchmarkMemory(b *testing.B, dimensionality, entries int) (*Memory, hrr.Vector) {
	b.Helper()
	m, err := NewMemory(dimensionality, 42)
	if err != nil {
		b.Fatalf("new memory: %v", err)
	}
	for i := 0; i < entries; i++ {
		if _, err := m.NewSymbol(fmt.Sprintf("sym_%d", i)); err != nil {
			b.Fatalf("new symbol: %v", err)
		}
	}
	query, ok := m.Vector("sym_0")
	if !ok {
		b.Fatal("missing query vector")
	}
	return m, query
}

func BenchmarkCleanup(b *testing.B) {
	for _, entries := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("entries%d", entries), func(b *testing.B) {
			m, query := benchmarkMemory(b, 512, entries)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := m.Cleanup(query); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCleanest(b *testing.B) {
	m, query := benchmarkMemory(b, 512, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Cleanest(query); err != nil {
			b.Fatal(err)
		}
	}
}
