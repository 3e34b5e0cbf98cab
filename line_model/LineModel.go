package line_model

import (
	"math"

	"github.com/KeyhanSalehi/LineEquation-Class/shared"
)

// Point is a position in 2D space. Fields are float32 in X-then-Y order
// so the value stays layout-compatible with raw binary consumers.
type Point struct {
	X float32
	Y float32
}

// LineModel holds a line in slope/intercept form together with output
// limits applied to every evaluation. The zero value behaves as a
// horizontal line at y=0 with limits 0/0.
type LineModel struct {
	slope      float32
	intercept  float32
	minOutput  float32
	maxOutput  float32
	isVertical bool
}

func NewLineModel() *LineModel {
	return &LineModel{}
}

func CopyLineModel(lin *LineModel) *LineModel {
	copied := *lin
	return &copied
}

// Configure derives the line through p1 and p2 and stores the output
// limits. When |p2.X - p1.X| falls below shared.VerticalEpsilon the
// line is marked vertical: the slope is zeroed and the intercept field
// holds the shared x-coordinate instead of a y-intercept. Configure
// never fails and fully replaces any previous state, so it can be
// called again to reconfigure the same instance.
func (lin *LineModel) Configure(p1, p2 Point, minOutput, maxOutput float32) {
	lin.minOutput = minOutput
	lin.maxOutput = maxOutput

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	if math.Abs(float64(dx)) < shared.VerticalEpsilon {
		lin.isVertical = true
		lin.slope = 0
		lin.intercept = p1.X
	} else {
		lin.isVertical = false
		lin.slope = dy / dx
		lin.intercept = p1.Y - lin.slope*p1.X
	}
}

// Evaluate returns the y-value of the line at x, limited to the
// configured output range. A vertical line evaluates to its stored
// x-coordinate regardless of x. The minimum check runs before the
// maximum check; with inverted limits (minOutput > maxOutput) every
// result is therefore one of the two limits, never a value in between.
func (lin *LineModel) Evaluate(x float32) float32 {
	var y float32

	if !lin.isVertical {
		y = lin.slope*x + lin.intercept
	} else {
		y = lin.intercept
	}

	if y < lin.minOutput {
		y = lin.minOutput
	} else if y > lin.maxOutput {
		y = lin.maxOutput
	}

	return y
}
