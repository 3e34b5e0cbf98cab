package benchmarks

import (
	"fmt"
	"testing"

	"github.com/KeyhanSalehi/LineEquation-Class/line_model"
)

func BenchmarkEvaluate1kTo1m(b *testing.B) {
	lin := line_model.NewLineModel()
	lin.Configure(line_model.Point{X: 0, Y: 0}, line_model.Point{X: 2, Y: 4}, -100, 100)

	for n := 1_000; n <= 1_000_000; n *= 10 {
		b.Run(fmt.Sprintf("Evaluate_%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for x := 0; x < n; x++ {
					lin.Evaluate(float32(x))
				}
			}
		})
	}
}

func BenchmarkConfigure(b *testing.B) {
	lin := line_model.NewLineModel()
	p1 := line_model.Point{X: 0, Y: 0}
	p2 := line_model.Point{X: 2, Y: 4}

	for i := 0; i < b.N; i++ {
		lin.Configure(p1, p2, -100, 100)
	}
}
