package core

// Interval represents a closed range [Min, Max] of ray parameters
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns the extent of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether val lies in the closed interval [Min, Max]
func (i Interval) Contains(val float64) bool {
	return i.Min <= val && val <= i.Max
}

// Surrounds reports whether val lies strictly inside the interval (Min, Max)
func (i Interval) Surrounds(val float64) bool {
	return i.Min < val && val < i.Max
}

// Expand returns the interval grown by delta on each side
func (i Interval) Expand(delta float64) Interval {
	return Interval{Min: i.Min - delta, Max: i.Max + delta}
}
