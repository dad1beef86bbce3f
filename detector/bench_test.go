package detector_test

import (
	"testing"

	"github.com/katalvlaran/solvability/deal"
	"github.com/katalvlaran/solvability/detector"
)

func BenchmarkEvaluate_KlondikePreset(b *testing.B) {
	d := detector.NewKlondikePreset()
	p := deal.Klondike(42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Evaluate(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluate_FreeCellPreset(b *testing.B) {
	d := detector.NewFreeCellPreset()
	p := deal.FreeCell(42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Evaluate(p); err != nil {
			b.Fatal(err)
		}
	}
}
