// Package scale provides numeric range mapping.
//
// # Linear scales
//
// [Linear] builds a function that maps a domain interval onto a range
// interval, in the manner of a chart axis. Inputs outside the domain are
// clamped to the nearest end of the range:
//
//	opacity := scale.Linear([2]float64{0, 200}, [2]float64{0, 1})
//	opacity(50)  // → 0.25
//	opacity(-10) // → 0
//	opacity(400) // → 1
//
// A descending range such as [1, 0] inverts the mapping. The domain must be
// ascending: inputs are compared against its first bound before its second.
package scale
