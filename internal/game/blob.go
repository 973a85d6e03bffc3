package game

var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// ComputeBlob returns every cell of the given color reachable from any anchor
// through 4-directional neighbors of that color. Anchors that are off the board
// or not of the color seed nothing.
func ComputeBlob(b Board, anchors []Coord, color Color) Blob {
	return floodFill(b, anchors, color, nil)
}

// floodFill is ComputeBlob with an optional set of cells the search may not enter.
func floodFill(b Board, anchors []Coord, color Color, exclude Blob) Blob {
	visited := make([]bool, b.CellCount())
	for _, c := range exclude {
		if b.In(c) {
			visited[b.index(c)] = true
		}
	}

	queue := make([]Coord, 0, len(anchors))
	for _, a := range anchors {
		if !b.In(a) || visited[b.index(a)] || b.At(a) != color {
			continue
		}
		visited[b.index(a)] = true
		queue = append(queue, a)
	}

	found := make([]bool, b.CellCount())
	count := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		found[b.index(cur)] = true
		count++

		for _, d := range directions {
			n := Coord{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if !b.In(n) || visited[b.index(n)] || b.At(n) != color {
				continue
			}
			visited[b.index(n)] = true
			queue = append(queue, n)
		}
	}

	// Walking the mask row-major keeps the blob sorted.
	out := make(Blob, 0, count)
	for i, ok := range found {
		if ok {
			out = append(out, Coord{Row: i / b.Size, Col: i % b.Size})
		}
	}
	return out
}

// Frontier returns the cells outside the blob and outside taken that touch the blob.
func Frontier(b Board, blob Blob, taken Blob) []Coord {
	seen := make([]bool, b.CellCount())
	for _, c := range blob {
		seen[b.index(c)] = true
	}
	for _, c := range taken {
		seen[b.index(c)] = true
	}
	var out []Coord
	for _, c := range blob {
		for _, d := range directions {
			n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
			if !b.In(n) || seen[b.index(n)] {
				continue
			}
			seen[b.index(n)] = true
			out = append(out, n)
		}
	}
	return out
}

// Connected reports whether the blob forms a single 4-connected component.
// An empty blob counts as connected.
func Connected(blob Blob) bool {
	if len(blob) == 0 {
		return true
	}
	set := make(map[Coord]bool, len(blob))
	for _, c := range blob {
		set[c] = true
	}
	stack := []Coord{blob[0]}
	reached := map[Coord]bool{blob[0]: true}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range directions {
			n := Coord{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if set[n] && !reached[n] {
				reached[n] = true
				stack = append(stack, n)
			}
		}
	}
	return len(reached) == len(set)
}
