package gridgraph

// ConnectedComponents finds all regions of free cells that are mutually
// reachable under the grid's movement rules.
// Returns a slice of components; each component is a slice of row-major
// cell indices in BFS order, and components appear in row-major order of
// their first cell. Use Coordinate to convert an index back to (x,y).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	_, comps := gg.label()

	return comps
}

// Reachable reports whether b can be reached from a. Walls and cells out of
// bounds reach nothing.
func (gg *GridGraph) Reachable(a, b Cell) bool {
	if gg.IsWall(a.X, a.Y) || gg.IsWall(b.X, b.Y) {
		return false
	}
	labels, _ := gg.label()

	return labels[gg.index(a.X, a.Y)] == labels[gg.index(b.X, b.Y)]
}

// label assigns every free cell its component number; walls get -1.
func (gg *GridGraph) label() ([]int, [][]int) {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if gg.IsWall(x, y) || labels[i0] >= 0 {
				continue
			}
			// BFS to collect component
			id := len(comps)
			queue := []int{i0}
			labels[i0] = id

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.offsets {
					if !gg.canStep(ux, uy, d[0], d[1]) {
						continue
					}
					vi := gg.index(ux+d[0], uy+d[1])
					if labels[vi] < 0 {
						labels[vi] = id
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return labels, comps
}
