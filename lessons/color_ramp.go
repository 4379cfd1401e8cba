package lessons

import "math"

// ColorRamp moves a value between 0 and 1 at Speed units per second,
// turning around at either end.
type ColorRamp struct {
	Value float32
	Speed float32

	increment float32
}

func NewColorRamp(start, speed float32) ColorRamp {
	return ColorRamp{
		Value:     clamp01(start),
		Speed:     speed,
		increment: 1,
	}
}

// Step advances the ramp by dt seconds. Non-finite movement leaves the value unchanged.
func (c *ColorRamp) Step(dt float32) float32 {

	delta := float64(c.Speed) * float64(dt)
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return c.Value
	}

	// Position on a 0 to 2 cycle, where the second half runs back down
	phase := float64(c.Value)
	if c.increment < 0 {
		phase = 2 - phase
	}

	phase = math.Mod(phase+delta, 2)
	if phase < 0 {
		phase += 2
	}

	if phase > 1 {
		c.Value = float32(2 - phase)
		c.increment = -1
	} else {
		c.Value = float32(phase)
		c.increment = 1
	}

	return c.Value
}

func (c *ColorRamp) Uint8() uint8 {
	return uint8(clamp01(c.Value)*255 + 0.5)
}

func clamp01(f float32) float32 {

	if f < 0 {
		return 0
	}

	if f > 1 {
		return 1
	}

	return f
}
