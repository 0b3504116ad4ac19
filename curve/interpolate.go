package curve

// Interpolate fills every missing integer minute between consecutive points
// with a value on the straight line through them. Points that collided on
// the same minute during stretch rounding are merged first (mean pv), so the
// output is strictly increasing with adjacent minutes differing by exactly
// one. An already-dense series comes back unchanged.
func Interpolate(pts []PlotPoint) []PlotPoint {
	if len(pts) == 0 {
		return []PlotPoint{}
	}
	in := mergeDuplicateMinutes(pts)

	out := make([]PlotPoint, 0, in[len(in)-1].Minute-in[0].Minute+1)
	for i := 1; i < len(in); i++ {
		x1, x2 := in[i-1].Minute, in[i].Minute
		y1, y2 := in[i-1].PV, in[i].PV
		k := (y1 - y2) / float64(x1-x2)
		m := y1 - float64(x1)*k

		out = append(out, in[i-1])
		for x := x1 + 1; x < x2; x++ {
			out = append(out, PlotPoint{
				Minute: x,
				X:      float64(x) / 60,
				PV:     float64(x)*k + m,
			})
		}
	}
	out = append(out, in[len(in)-1])
	return out
}

// mergeDuplicateMinutes collapses each run of points sharing a minute into a
// single point carrying the run's mean pv. The first point of a run keeps
// its X.
func mergeDuplicateMinutes(pts []PlotPoint) []PlotPoint {
	out := make([]PlotPoint, 0, len(pts))
	for i := 0; i < len(pts); {
		j := i + 1
		sum := pts[i].PV
		for j < len(pts) && pts[j].Minute == pts[i].Minute {
			sum += pts[j].PV
			j++
		}
		p := pts[i]
		p.PV = sum / float64(j-i)
		out = append(out, p)
		i = j
	}
	return out
}
