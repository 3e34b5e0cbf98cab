package main

import (
	"fmt"

	"github.com/KeyhanSalehi/LineEquation-Class/line_model"
)

func main() {
	// Map a 0..10 sensor reading onto a 0..100 command value, capped at 80.
	lin := line_model.NewLineModel()
	lin.Configure(line_model.Point{X: 0, Y: 0}, line_model.Point{X: 10, Y: 100}, 0, 80)

	for x := float32(0); x <= 12; x++ {
		fmt.Printf("x: %v, y: %v\n", x, lin.Evaluate(x))
	}
}
