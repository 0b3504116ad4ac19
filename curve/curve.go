// Package curve implements the numeric reshaping pipeline for one day of
// photovoltaic telemetry: smoothing, stretching, gap interpolation and
// normalization over an ordered minute-of-day series. Every stage is a pure
// function that allocates a fresh slice; inputs are never mutated.
package curve

import "time"

// DefaultScale converts the grid logger's pv_power unit to chart units.
const DefaultScale = 10.0

// Sample is one raw telemetry reading from the grid logger.
type Sample struct {
	Time time.Time
	PV   float64
	Load float64
}

// PlotPoint is the unit of data threaded through the pipeline stages.
type PlotPoint struct {
	Minute int     // minute of day, 0..DayEndMinute
	X      float64 // chart x-coordinate; semantics change per stage
	PV     float64 // reshaped power value
}

// Config holds the day geometry shared by the stages.
type Config struct {
	// DayEndMinute is the last minute of the covered day. The stretch
	// stage maps the active window onto [0, DayEndMinute].
	DayEndMinute int
}

// DefaultConfig covers a full 24h day at minute resolution.
func DefaultConfig() Config {
	return Config{DayEndMinute: 1439}
}

// Points converts raw samples into pipeline points, one per sample, scaling
// pv by the given factor. X is left at zero until a stage assigns it.
func Points(samples []Sample, scale float64) []PlotPoint {
	pts := make([]PlotPoint, 0, len(samples))
	for _, s := range samples {
		pts = append(pts, PlotPoint{
			Minute: s.Time.Hour()*60 + s.Time.Minute(),
			PV:     s.PV * scale,
		})
	}
	return pts
}
