package oracle_test

import (
	"testing"

	"github.com/katalvlaran/keypadchain/oracle"
)

// BenchmarkOracle_Depth25Cold measures a full deep solve of one code,
// rebuilding the cache every iteration.
func BenchmarkOracle_Depth25Cold(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		o, _ := oracle.New(25)
		prev := 'A'
		for _, ch := range "379A" {
			_, _ = o.PressCost(o.TopLayer(), prev, ch)
			prev = ch
		}
	}
}

// BenchmarkOracle_Depth25Warm measures cache hits only.
func BenchmarkOracle_Depth25Warm(b *testing.B) {
	o, _ := oracle.New(25)
	_, _ = o.PressCost(o.TopLayer(), 'A', '7')
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = o.PressCost(o.TopLayer(), 'A', '7')
	}
}
