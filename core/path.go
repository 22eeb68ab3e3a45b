package core

// TotalWeight sums the weights of an edge path. An empty path weighs zero.
func TotalWeight[N comparable, W Number](path []Edge[N, W]) W {
	var sum W
	for _, e := range path {
		sum += e.Weight
	}

	return sum
}

// PathNodes expands an edge path into the node sequence it visits,
// starting with start. For an empty path the result is [start].
func PathNodes[N comparable, W Number](start N, path []Edge[N, W]) []N {
	nodes := make([]N, 0, len(path)+1)
	nodes = append(nodes, start)
	for _, e := range path {
		nodes = append(nodes, e.To)
	}

	return nodes
}

// Last returns the final element of a non-empty slice, reporting false for
// an empty one. Useful for chaining searches: the last node of one result
// seeds the next.
func Last[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}

	return s[len(s)-1], true
}
