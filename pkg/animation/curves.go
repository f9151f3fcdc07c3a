package animation

import (
	"fmt"
	"math"
)

// Curve is a predefined easing curve. Every curve maps 0 to 0 and 1 to 1.
type Curve uint8

const (
	Linear Curve = iota
	EaseIn
	EaseOut
	EaseInOut
	Ease
	CubicIn
	CubicOut
	CubicInOut
	SineIn
	SineOut
	SineInOut
	ExpoIn
	ExpoOut
	BackOut
	ElasticOut
	BounceIn
	BounceOut
	BounceInOut

	curveCount
)

var curveNames = [curveCount]string{
	"linear", "ease-in", "ease-out", "ease-in-out", "ease",
	"cubic-in", "cubic-out", "cubic-in-out",
	"sine-in", "sine-out", "sine-in-out",
	"expo-in", "expo-out", "back-out", "elastic-out",
	"bounce-in", "bounce-out", "bounce-in-out",
}

// Curves returns every predefined curve.
func Curves() []Curve {
	out := make([]Curve, curveCount)
	for i := range out {
		out[i] = Curve(i)
	}
	return out
}

func (c Curve) String() string {
	if c < curveCount {
		return curveNames[c]
	}
	return fmt.Sprintf("Curve(%d)", int(c))
}

// ParseCurve returns the curve named s, as printed by String.
func ParseCurve(s string) (Curve, error) {
	for i, n := range curveNames {
		if n == s {
			return Curve(i), nil
		}
	}
	return Linear, fmt.Errorf("animation: unknown curve %q", s)
}

var (
	easeIn    = CubicBezier(0.42, 0, 1, 1)
	easeOut   = CubicBezier(0, 0, 0.58, 1)
	easeInOut = CubicBezier(0.42, 0, 0.58, 1)
	ease      = CubicBezier(0.25, 0.1, 0.25, 1)
)

// Apply maps progress t to eased progress. t is clamped to [0, 1] and the
// endpoints are exact.
func (c Curve) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch c {
	case EaseIn:
		return easeIn(t)
	case EaseOut:
		return easeOut(t)
	case EaseInOut:
		return easeInOut(t)
	case Ease:
		return ease(t)
	case CubicIn:
		return t * t * t
	case CubicOut:
		u := 1 - t
		return 1 - u*u*u
	case CubicInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	case SineIn:
		return 1 - math.Cos(t*math.Pi/2)
	case SineOut:
		return math.Sin(t * math.Pi / 2)
	case SineInOut:
		return -(math.Cos(math.Pi*t) - 1) / 2
	case ExpoIn:
		return math.Pow(2, 10*t-10)
	case ExpoOut:
		return 1 - math.Pow(2, -10*t)
	case BackOut:
		const c1 = 1.70158
		const c3 = c1 + 1
		u := t - 1
		return 1 + c3*u*u*u + c1*u*u
	case ElasticOut:
		const c4 = 2 * math.Pi / 3
		return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
	case BounceIn:
		return 1 - bounceOut(1-t)
	case BounceOut:
		return bounceOut(t)
	case BounceInOut:
		if t < 0.5 {
			return (1 - bounceOut(1-2*t)) / 2
		}
		return (1 + bounceOut(2*t-1)) / 2
	default:
		return t
	}
}

func bounceOut(t float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// Easing is either a predefined Curve or a custom function. The zero value
// is linear.
type Easing struct {
	curve Curve
	fn    func(float64) float64
}

// Eased wraps a predefined curve.
func Eased(c Curve) Easing { return Easing{curve: c} }

// Custom wraps fn. fn receives progress in [0, 1]; its endpoints are not
// adjusted.
func Custom(fn func(float64) float64) Easing { return Easing{fn: fn} }

// Apply eases t.
func (e Easing) Apply(t float64) float64 {
	if e.fn != nil {
		return e.fn(clampUnit(t))
	}
	return e.curve.Apply(t)
}

func (e Easing) String() string {
	if e.fn != nil {
		return "custom"
	}
	return e.curve.String()
}

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection fallback keeps u in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
