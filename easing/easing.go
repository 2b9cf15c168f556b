// Package easing provides progress-remapping functions for animation
// timing control.
//
// An easing function maps linear segment progress in [0, 1] to eased
// progress. The result is usually in [0, 1] but is not required to be
// monotonic or bounded: Back and Elastic variants overshoot by design.
package easing

import "math"

// Func maps normalized segment progress to eased progress.
type Func func(t float64) float64

// Linear returns progress unchanged.
func Linear(t float64) float64 { return t }

// None jumps straight to the end value.
func None(t float64) float64 { return 1 }

// Step switches from start to end at the segment midpoint.
func Step(t float64) float64 {
	if t < 0.5 {
		return 0
	}
	return 1
}

// InQuad accelerates quadratically.
func InQuad(t float64) float64 { return t * t }

// OutQuad decelerates quadratically.
func OutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

// InOutQuad accelerates then decelerates quadratically.
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// InCubic accelerates cubically.
func InCubic(t float64) float64 { return t * t * t }

// OutCubic decelerates cubically.
func OutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }

// InOutCubic accelerates then decelerates cubically.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// InQuart accelerates quartically.
func InQuart(t float64) float64 { return t * t * t * t }

// OutQuart decelerates quartically.
func OutQuart(t float64) float64 { return 1 - math.Pow(1-t, 4) }

// InOutQuart accelerates then decelerates quartically.
func InOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}

// InQuint accelerates quintically.
func InQuint(t float64) float64 { return t * t * t * t * t }

// OutQuint decelerates quintically.
func OutQuint(t float64) float64 { return 1 - math.Pow(1-t, 5) }

// InOutQuint accelerates then decelerates quintically.
func InOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

// InSine accelerates along a sine curve.
func InSine(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }

// OutSine decelerates along a sine curve.
func OutSine(t float64) float64 { return math.Sin(t * math.Pi / 2) }

// InOutSine accelerates then decelerates along a sine curve.
func InOutSine(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

// InExpo accelerates exponentially.
func InExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

// OutExpo decelerates exponentially.
func OutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// InOutExpo accelerates then decelerates exponentially.
func InOutExpo(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}

// InCirc accelerates along a circular arc.
func InCirc(t float64) float64 { return 1 - math.Sqrt(1-t*t) }

// OutCirc decelerates along a circular arc.
func OutCirc(t float64) float64 { return math.Sqrt(1 - (t-1)*(t-1)) }

// InOutCirc accelerates then decelerates along a circular arc.
func InOutCirc(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-math.Pow(2*t, 2))) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*t+2, 2)) + 1) / 2
}

const (
	backC1 = 1.70158
	backC2 = backC1 * 1.525
	backC3 = backC1 + 1
)

// InBack pulls back before accelerating (undershoots below 0).
func InBack(t float64) float64 {
	return backC3*t*t*t - backC1*t*t
}

// OutBack overshoots past 1 before settling.
func OutBack(t float64) float64 {
	return 1 + backC3*math.Pow(t-1, 3) + backC1*math.Pow(t-1, 2)
}

// InOutBack undershoots then overshoots.
func InOutBack(t float64) float64 {
	if t < 0.5 {
		return (math.Pow(2*t, 2) * ((backC2+1)*2*t - backC2)) / 2
	}
	return (math.Pow(2*t-2, 2)*((backC2+1)*(2*t-2)+backC2) + 2) / 2
}

const elasticC4 = 2 * math.Pi / 3

// InElastic oscillates with growing amplitude toward the end value.
func InElastic(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*elasticC4)
}

// OutElastic overshoots and oscillates toward the end value.
func OutElastic(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*elasticC4) + 1
}

const elasticC5 = 2 * math.Pi / 4.5

// InOutElastic oscillates at both ends.
func InOutElastic(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*elasticC5)) / 2
	default:
		return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*elasticC5))/2 + 1
	}
}

// OutBounce decelerates with bounces, like a ball dropped on the floor.
func OutBounce(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75

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

// InBounce bounces at the start.
func InBounce(t float64) float64 { return 1 - OutBounce(1-t) }

// InOutBounce bounces at both ends.
func InOutBounce(t float64) float64 {
	if t < 0.5 {
		return (1 - OutBounce(1-2*t)) / 2
	}
	return (1 + OutBounce(2*t-1)) / 2
}
