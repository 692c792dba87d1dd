package superbubble

// Range is the inclusive [Min,Max] length of all source-to-vertex walks
// considered so far, measured as cumulative node_length-overlap.
type Range struct {
	Min uint64
	Max uint64
}

// shift adds d to both ends of r (traversing one more link of length d).
func shift(r Range, d uint64) Range {
	return Range{Min: r.Min + d, Max: r.Max + d}
}

// merge takes the component-wise min/max of two ranges reaching the same
// vertex via different walks.
func merge(a, b Range) Range {
	r := Range{Min: a.Min, Max: a.Max}
	if b.Min < r.Min {
		r.Min = b.Min
	}
	if b.Max > r.Max {
		r.Max = b.Max
	}
	return r
}
