package curve

// Normalize rescales both axes onto the unit interval: x by the last minute
// of the series, pv by the series peak (floored at zero). A zero peak leaves
// pv untouched and a zero last minute leaves x untouched, so degenerate
// input cannot produce NaN or Inf.
func Normalize(pts []PlotPoint) []PlotPoint {
	maxPV := 0.0
	for _, p := range pts {
		if p.PV > maxPV {
			maxPV = p.PV
		}
	}
	lastMinute := 0
	if len(pts) > 0 {
		lastMinute = pts[len(pts)-1].Minute
	}

	out := make([]PlotPoint, 0, len(pts))
	for _, p := range pts {
		q := p
		if lastMinute > 0 {
			q.X = float64(p.Minute) / float64(lastMinute)
		}
		if maxPV > 0 {
			q.PV = p.PV / maxPV
		}
		out = append(out, q)
	}
	return out
}
