package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/vessel/pkg/animation"
	"github.com/go-drift/vessel/pkg/graphics"
	"github.com/go-drift/vessel/pkg/id"
)

// This example steps an animation by hand and maps it through tweens.
func ExampleAnimation() {
	a := animation.New(id.NewAllocator(), 40*time.Millisecond).WithInterval(10 * time.Millisecond)
	width := animation.TweenFloat64(100, 200)
	for !a.Step() {
		fmt.Printf("%.2f %.0f\n", a.Value(), width.Transform(a))
	}
	fmt.Printf("%.2f %.0f\n", a.Value(), width.Transform(a))
	// Output:
	// 0.25 125
	// 0.50 150
	// 0.75 175
	// 1.00 200
}

// This example eases a backward animation.
func ExampleAnimation_reversed() {
	a := animation.New(id.NewAllocator(), 20*time.Millisecond).
		WithInterval(10 * time.Millisecond).
		WithEasing(animation.Eased(animation.CubicIn)).
		Reversed()
	fmt.Printf("%.3f\n", a.Value())
	a.Step()
	fmt.Printf("%.3f\n", a.Value())
	a.Step()
	fmt.Printf("%.3f %v\n", a.Value(), a.Done())
	// Output:
	// 1.000
	// 0.125
	// 0.000 true
}

// This example shows a custom bezier curve.
func ExampleCubicBezier() {
	snappy := animation.Custom(animation.CubicBezier(0.2, 0.9, 0.1, 1))
	fmt.Println(snappy.Apply(0), snappy.Apply(1))
	// Output: 0 1
}

// This example interpolates colors.
func ExampleTweenColor() {
	tw := animation.TweenColor(graphics.RGB(0, 0, 0), graphics.RGB(200, 100, 50))
	fmt.Printf("%#08x\n", uint32(tw.Evaluate(0.5)))
	// Output: 0xff643219
}
