package tetris

// SpeedCurve maps the score to the number of timer ticks between gravity steps.
// Each threshold the score reaches halves the interval, down to Min.
type SpeedCurve struct {
	Base       int
	Min        int
	Thresholds []int
}

// firmwareLineBonus is the points per line the default thresholds were tuned for.
const firmwareLineBonus = 5

// speedUpLines is the number of cleared lines at which each halving happens.
var speedUpLines = [...]int{2, 4, 8, 16}

// DefaultSpeedCurve returns 32 ticks per step, halving at 10, 20, 40 and 80 points.
func DefaultSpeedCurve() SpeedCurve {
	return SpeedCurveFor(firmwareLineBonus)
}

// SpeedCurveFor returns the default curve with its thresholds scaled to
// lineBonus points per line, so the game speeds up after 2, 4, 8 and 16
// cleared lines whatever a line is worth.
func SpeedCurveFor(lineBonus int) SpeedCurve {
	if lineBonus <= 0 {
		lineBonus = firmwareLineBonus
	}
	thresholds := make([]int, len(speedUpLines))
	for i, n := range speedUpLines {
		thresholds[i] = n * lineBonus
	}
	return SpeedCurve{
		Base:       32,
		Min:        2,
		Thresholds: thresholds,
	}
}

// Interval returns the gravity interval in ticks for score. It never returns less than 1.
func (c SpeedCurve) Interval(score int) int {
	interval := c.Base
	for _, t := range c.Thresholds {
		if score >= t {
			interval /= 2
		}
	}
	if interval < c.Min {
		interval = c.Min
	}
	if interval < 1 {
		interval = 1
	}
	return interval
}

// TickInterval is the default speed curve as a pure function of the score.
func TickInterval(score int) int {
	return DefaultSpeedCurve().Interval(score)
}
