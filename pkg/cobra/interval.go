package cobra

import "fmt"

// Interval is a task with a fixed Duration and a movable Start. Est/Lst are
// the earliest/latest legal start times, Ect/Lct the earliest/latest
// completion times, all tracked through Start's trailed domain.
type Interval struct {
	Name     string
	Start    *Variable
	Duration int
}

// NewInterval constructs and registers an interval whose start ranges over
// [est, lct-duration]; lct bounds the completion time, not the start.
func (m *Model) NewInterval(name string, est, duration, lct int) *Interval {
	m.guardBuildPhase()
	start := m.NewVariable(name, est, lct-duration)
	iv := &Interval{Name: name, Start: start, Duration: duration}
	m.registerInterval(iv)
	return iv
}

func (iv *Interval) Est() int { return iv.Start.Inf }
func (iv *Interval) Lst() int { return iv.Start.Sup }
func (iv *Interval) Ect() int { return iv.Start.Inf + iv.Duration }
func (iv *Interval) Lct() int { return iv.Start.Sup + iv.Duration }

func (iv *Interval) String() string {
	return fmt.Sprintf("%s:[%d, %d]+%d", iv.Name, iv.Est(), iv.Lst(), iv.Duration)
}

// The eight precedence helpers below relate two intervals' start or end
// instants with a minimum gap g (g may be zero or negative). Each posts a
// binary arithmetic constraint between the two intervals' Start variables,
// folding in each interval's own Duration as a constant offset.

// StartBeforeStart posts a.Start + g <= b.Start.
func StartBeforeStart(a, b *Interval, g int) (*GEXYConstraint, error) {
	return GEXY(b.Start, a.Start, g)
}

// StartBeforeEnd posts a.Start + g <= b.Start + b.Duration.
func StartBeforeEnd(a, b *Interval, g int) (*GEXYConstraint, error) {
	return GEXY(b.Start, a.Start, g-b.Duration)
}

// EndBeforeStart posts a.Start + a.Duration + g <= b.Start.
func EndBeforeStart(a, b *Interval, g int) (*GEXYConstraint, error) {
	return GEXY(b.Start, a.Start, g+a.Duration)
}

// EndBeforeEnd posts a.Start + a.Duration + g <= b.Start + b.Duration.
func EndBeforeEnd(a, b *Interval, g int) (*GEXYConstraint, error) {
	return GEXY(b.Start, a.Start, g+a.Duration-b.Duration)
}

// StartAtStart posts a.Start + g == b.Start.
func StartAtStart(a, b *Interval, g int) (*EQXYConstraint, error) {
	return EQXY(b.Start, a.Start, g)
}

// StartAtEnd posts a.Start + g == b.Start + b.Duration.
func StartAtEnd(a, b *Interval, g int) (*EQXYConstraint, error) {
	return EQXY(b.Start, a.Start, g-b.Duration)
}

// EndAtStart posts a.Start + a.Duration + g == b.Start.
func EndAtStart(a, b *Interval, g int) (*EQXYConstraint, error) {
	return EQXY(b.Start, a.Start, g+a.Duration)
}

// EndAtEnd posts a.Start + a.Duration + g == b.Start + b.Duration.
func EndAtEnd(a, b *Interval, g int) (*EQXYConstraint, error) {
	return EQXY(b.Start, a.Start, g+a.Duration-b.Duration)
}
