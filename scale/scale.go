package scale

// Linear returns a function mapping the domain [d1, d2] linearly onto the
// range [r1, r2]. Inputs at or below d1 return r1 and inputs at or above d2
// return r2, so the output never leaves the range.
//
//	pct := scale.Linear([2]float64{0, 200}, [2]float64{0, 1})
//	pct(50)  // 0.25
//	pct(500) // 1
func Linear(domain, rng [2]float64) func(float64) float64 {
	d1, d2 := domain[0], domain[1]
	r1, r2 := rng[0], rng[1]
	dSpan, rSpan := d2-d1, r2-r1
	return func(v float64) float64 {
		switch {
		case v <= d1:
			return r1
		case v >= d2:
			return r2
		default:
			return r1 + rSpan*((v-d1)/dSpan)
		}
	}
}
