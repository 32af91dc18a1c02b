package motion

// Ease maps linear progress t in [0, 1] to eased progress
// Curves follow the usual polynomial families of UI tween libraries
type Ease func(t float64) float64

// Linear returns progress unchanged
func Linear(t float64) float64 { return t }

// InQuad accelerates from zero velocity
func InQuad(t float64) float64 { return t * t }

// OutQuad decelerates to zero velocity
func OutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

// InOutQuad accelerates until halfway, then decelerates
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// InCubic accelerates from zero velocity, steeper than quad
func InCubic(t float64) float64 { return t * t * t }

// OutCubic decelerates to zero velocity, steeper than quad
func OutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// InOutCubic is the cubic version of InOutQuad
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// apply evaluates e with clamped input, nil means Linear
func (e Ease) apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if e == nil {
		return t
	}
	return e(t)
}
