package curve

import "math"

// Stretch drops non-positive samples and rescales the surviving time axis so
// the first sample lands on minute 0 and the last on cfg.DayEndMinute.
// X carries the unrounded scaled minute in hours, keeping sub-minute chart
// resolution; Minute carries the rounded value clamped to the day. Rounding
// can leave adjacent points on the same minute; the interpolation stage
// tolerates that.
func Stretch(pts []PlotPoint, cfg Config) ([]PlotPoint, error) {
	kept := make([]PlotPoint, 0, len(pts))
	for _, p := range pts {
		if p.PV > 0 {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return nil, ErrNoDaylight
	}
	if len(kept) == 1 {
		return nil, ErrInsufficientDaylight
	}

	start := float64(kept[0].Minute)
	end := float64(kept[len(kept)-1].Minute)
	factor := float64(cfg.DayEndMinute) / (end - start)

	out := make([]PlotPoint, 0, len(kept))
	for _, p := range kept {
		scaled := (float64(p.Minute) - start) * factor
		out = append(out, PlotPoint{
			Minute: clampMinute(int(math.Round(scaled)), cfg.DayEndMinute),
			X:      scaled / 60,
			PV:     p.PV,
		})
	}
	return out, nil
}

func clampMinute(m, end int) int {
	if m < 0 {
		return 0
	}
	if m > end {
		return end
	}
	return m
}
