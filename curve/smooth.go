package curve

// Smooth applies a 3-tap box filter over pv. The first and last points pass
// through unchanged; every interior point becomes the mean of itself and its
// two neighbors' pre-smoothing values. Minute and X are untouched.
func Smooth(pts []PlotPoint) ([]PlotPoint, error) {
	if len(pts) < 3 {
		return nil, ErrTooFewPoints
	}

	out := make([]PlotPoint, 0, len(pts))
	out = append(out, pts[0])
	for i := 1; i < len(pts)-1; i++ {
		out = append(out, PlotPoint{
			Minute: pts[i].Minute,
			X:      pts[i].X,
			PV:     (pts[i-1].PV + pts[i].PV + pts[i+1].PV) / 3,
		})
	}
	out = append(out, pts[len(pts)-1])
	return out, nil
}
