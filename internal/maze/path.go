package maze

// PathFromTo walks predecessor links backward from goal until start is
// reached and returns the path in start-to-goal order. It returns nil when
// the chain is broken or loops without reaching start.
func PathFromTo(start, goal NodeID, predecessor map[NodeID]NodeID) []NodeID {
	path := []NodeID{goal}
	current := goal
	for current != start {
		// a chain longer than the map must contain a cycle
		if len(path) > len(predecessor)+1 {
			return nil
		}
		previous, exists := predecessor[current]
		if !exists {
			return nil
		}
		path = append(path, previous)
		current = previous
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// IsValidPath reports whether path starts at m.Start(), ends on a goal and
// only steps between neighbors.
func IsValidPath(m Maze, path []NodeID) bool {
	if len(path) == 0 || path[0] != m.Start() || !m.HasGoal(path[len(path)-1]) {
		return false
	}
	for i := 1; i < len(path); i++ {
		if !isNeighbor(m, path[i-1], path[i]) {
			return false
		}
	}
	return true
}

func isNeighbor(m Maze, from, to NodeID) bool {
	for _, n := range m.Neighbors(from) {
		if n == to {
			return true
		}
	}
	return false
}
