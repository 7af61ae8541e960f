package infomax_test

import (
	"testing"

	"github.com/katalvlaran/lvica/infomax"
)

// benchmarkSweep runs one sweep over whitened 2-component data of n samples.
// The state is rebuilt every iteration so each sweep starts from W = I.
func benchmarkSweep(b *testing.B, n int) {
	x, _ := whitened(b, n)
	o := infomax.New(infomax.WithSeed(1))

	b.ReportAllocs()
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		st, err := o.NewState(2)
		if err != nil {
			b.Fatalf("NewState failed: %v", err)
		}
		if _, err = o.Sweep(x, st); err != nil {
			b.Fatalf("Sweep failed: %v", err)
		}
	}
}

func BenchmarkSweep_3k(b *testing.B)  { benchmarkSweep(b, 3000) }
func BenchmarkSweep_30k(b *testing.B) { benchmarkSweep(b, 30000) }

// BenchmarkOptimize_Capped measures a full training run limited to 50 steps.
func BenchmarkOptimize_Capped(b *testing.B) {
	x, _ := whitened(b, 3000)
	cfg := infomax.DefaultConfig()
	cfg.MaxSteps = 50

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := infomax.Optimize(x, infomax.WithConfig(cfg)); err != nil {
			b.Fatalf("Optimize failed: %v", err)
		}
	}
}
